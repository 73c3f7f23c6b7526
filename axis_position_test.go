package plotlayout

import "testing"

func TestAxisPositionString(t *testing.T) {
	tests := []struct {
		pos  AxisPosition
		want string
	}{
		{AxisLeft, "Left"},
		{AxisRight, "Right"},
		{AxisBottom, "Bottom"},
		{AxisTop, "Top"},
		{NumAxisPositions, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.pos, got, tt.want)
		}
	}
}

func TestAxisPositionOrientation(t *testing.T) {
	for _, pos := range []AxisPosition{AxisLeft, AxisRight} {
		if pos.IsHorizontal() || !pos.IsVertical() {
			t.Errorf("%v: want vertical", pos)
		}
	}
	for _, pos := range []AxisPosition{AxisBottom, AxisTop} {
		if !pos.IsHorizontal() || pos.IsVertical() {
			t.Errorf("%v: want horizontal", pos)
		}
	}
}

func TestAxisPositionOpposite(t *testing.T) {
	pairs := map[AxisPosition]AxisPosition{
		AxisLeft:   AxisRight,
		AxisRight:  AxisLeft,
		AxisBottom: AxisTop,
		AxisTop:    AxisBottom,
	}
	for pos, want := range pairs {
		if got := pos.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", pos, got, want)
		}
		if pos.Opposite().Opposite() != pos {
			t.Errorf("%v: Opposite is not an involution", pos)
		}
	}
}

func TestLegendPositionIsVertical(t *testing.T) {
	if LegendBottom.IsVertical() || LegendTop.IsVertical() {
		t.Error("top/bottom legend reported vertical")
	}
	if !LegendLeft.IsVertical() || !LegendRight.IsVertical() {
		t.Error("left/right legend reported horizontal")
	}
}

func TestOptionsHas(t *testing.T) {
	opts := IgnoreLegend | IgnoreTitle

	if !opts.Has(IgnoreLegend) || !opts.Has(IgnoreTitle) {
		t.Error("set bits not reported")
	}
	if opts.Has(IgnoreFooter) {
		t.Error("unset bit reported")
	}
	if !opts.Has(IgnoreLegend | IgnoreTitle) {
		t.Error("combined query of set bits failed")
	}
	if opts.Has(IgnoreLegend | IgnoreFooter) {
		t.Error("combined query with an unset bit succeeded")
	}
	if !opts.Has(0) {
		t.Error("empty query must always hold")
	}
}
