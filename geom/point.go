package geom

// Point represents a 2D point in the plot coordinate space.
type Point struct {
	X, Y float64
}

// Size represents a 2D extent.
type Size struct {
	W, H float64
}

// IsEmpty reports whether either extent is not positive.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

// Margins holds per-side distances around a rectangle.
type Margins struct {
	Left, Top, Right, Bottom float64
}
