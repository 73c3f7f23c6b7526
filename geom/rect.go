package geom

// Rect is an axis-aligned rectangle with float64 coordinates.
// The origin is the top-left corner; X grows right and Y grows down.
//
// A zero Rect is invalid (zero width and height). The layout engine uses
// invalid rects to signal "component not drawn".
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a Rect from origin and extent.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the X coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the X coordinate of the right edge (X + W).
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge (Y + H).
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.W }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.H }

// Size returns the extent of the rectangle.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// IsValid reports whether both extents are positive.
func (r Rect) IsValid() bool { return r.W > 0 && r.H > 0 }

// IsEmpty reports whether the rectangle covers no area.
func (r Rect) IsEmpty() bool { return !r.IsValid() }

// SetLeft moves the left edge to x, keeping the right edge fixed.
func (r *Rect) SetLeft(x float64) {
	r.W = r.Right() - x
	r.X = x
}

// SetRight moves the right edge to x, keeping the left edge fixed.
func (r *Rect) SetRight(x float64) {
	r.W = x - r.X
}

// SetTop moves the top edge to y, keeping the bottom edge fixed.
func (r *Rect) SetTop(y float64) {
	r.H = r.Bottom() - y
	r.Y = y
}

// SetBottom moves the bottom edge to y, keeping the top edge fixed.
func (r *Rect) SetBottom(y float64) {
	r.H = y - r.Y
}

// SetWidth sets the horizontal extent, keeping the left edge fixed.
func (r *Rect) SetWidth(w float64) { r.W = w }

// SetHeight sets the vertical extent, keeping the top edge fixed.
func (r *Rect) SetHeight(h float64) { r.H = h }

// Normalized returns a rectangle with non-negative extents, flipping
// inverted edges.
func (r Rect) Normalized() Rect {
	n := r
	if n.W < 0 {
		n.X += n.W
		n.W = -n.W
	}
	if n.H < 0 {
		n.Y += n.H
		n.H = -n.H
	}
	return n
}

// Intersects reports whether the two rectangles overlap in area.
// Touching edges do not count as overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether the point lies inside or on the border of r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() &&
		p.Y >= r.Y && p.Y <= r.Bottom()
}
