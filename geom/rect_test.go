package geom

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	if r.Left() != 10 || r.Top() != 20 {
		t.Errorf("origin = %v, %v, want 10, 20", r.Left(), r.Top())
	}
	if r.Right() != 110 || r.Bottom() != 70 {
		t.Errorf("far edges = %v, %v, want 110, 70", r.Right(), r.Bottom())
	}
	if r.Size() != (Size{W: 100, H: 50}) {
		t.Errorf("Size() = %+v, want {100 50}", r.Size())
	}
}

func TestRectSetEdges(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Rect)
		want Rect
	}{
		{
			name: "SetLeft keeps right edge",
			set:  func(r *Rect) { r.SetLeft(20) },
			want: Rect{X: 20, Y: 20, W: 90, H: 50},
		},
		{
			name: "SetRight keeps left edge",
			set:  func(r *Rect) { r.SetRight(60) },
			want: Rect{X: 10, Y: 20, W: 50, H: 50},
		},
		{
			name: "SetTop keeps bottom edge",
			set:  func(r *Rect) { r.SetTop(30) },
			want: Rect{X: 10, Y: 30, W: 100, H: 40},
		},
		{
			name: "SetBottom keeps top edge",
			set:  func(r *Rect) { r.SetBottom(50) },
			want: Rect{X: 10, Y: 20, W: 100, H: 30},
		},
		{
			name: "SetWidth keeps left edge",
			set:  func(r *Rect) { r.SetWidth(40) },
			want: Rect{X: 10, Y: 20, W: 40, H: 50},
		},
		{
			name: "SetHeight keeps top edge",
			set:  func(r *Rect) { r.SetHeight(10) },
			want: Rect{X: 10, Y: 20, W: 100, H: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(10, 20, 100, 50)
			tt.set(&r)
			if r != tt.want {
				t.Errorf("got %+v, want %+v", r, tt.want)
			}
		})
	}
}

func TestRectValidity(t *testing.T) {
	if (Rect{}).IsValid() {
		t.Error("zero rect reported valid")
	}
	if !(Rect{}).IsEmpty() {
		t.Error("zero rect reported non-empty")
	}
	if (Rect{W: 10}).IsValid() {
		t.Error("zero-height rect reported valid")
	}
	if !NewRect(0, 0, 1, 1).IsValid() {
		t.Error("unit rect reported invalid")
	}
}

func TestRectNormalized(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: -4, H: -6}
	got := r.Normalized()
	want := Rect{X: 6, Y: 4, W: 4, H: 6}
	if got != want {
		t.Errorf("Normalized() = %+v, want %+v", got, want)
	}

	r = NewRect(1, 2, 3, 4)
	if r.Normalized() != r {
		t.Errorf("Normalized() changed a normal rect: %+v", r.Normalized())
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 3, 3), true},
		{"touching edges", NewRect(10, 0, 10, 10), false},
		{"disjoint", NewRect(20, 20, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects is not symmetric for %+v", tt.other)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !r.Contains(Point{X: 5, Y: 5}) {
		t.Error("center not contained")
	}
	if !r.Contains(Point{X: 10, Y: 10}) {
		t.Error("border not contained")
	}
	if r.Contains(Point{X: 11, Y: 5}) {
		t.Error("outside point contained")
	}
}
