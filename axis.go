package plotlayout

// AxisPosition identifies one of the four sides of the canvas that can
// host axis scales.
type AxisPosition int

const (
	// AxisLeft is the left side of the canvas (vertical scales).
	AxisLeft AxisPosition = iota
	// AxisRight is the right side of the canvas (vertical scales).
	AxisRight
	// AxisBottom is the bottom side of the canvas (horizontal scales).
	AxisBottom
	// AxisTop is the top side of the canvas (horizontal scales).
	AxisTop

	// NumAxisPositions is the number of axis positions.
	NumAxisPositions
)

// AllAxisPositions addresses every axis position at once in
// configuration calls such as Layout.SetCanvasMargin.
const AllAxisPositions AxisPosition = -1

// String returns the string representation of the axis position.
func (p AxisPosition) String() string {
	switch p {
	case AxisLeft:
		return "Left"
	case AxisRight:
		return "Right"
	case AxisBottom:
		return "Bottom"
	case AxisTop:
		return "Top"
	default:
		return "Unknown"
	}
}

// IsHorizontal reports whether scales at this position run horizontally
// (top and bottom positions).
func (p AxisPosition) IsHorizontal() bool {
	return p == AxisTop || p == AxisBottom
}

// IsVertical reports whether scales at this position run vertically
// (left and right positions).
func (p AxisPosition) IsVertical() bool {
	return p == AxisLeft || p == AxisRight
}

// Opposite returns the position on the other side of the canvas.
func (p AxisPosition) Opposite() AxisPosition {
	switch p {
	case AxisLeft:
		return AxisRight
	case AxisRight:
		return AxisLeft
	case AxisBottom:
		return AxisTop
	case AxisTop:
		return AxisBottom
	default:
		return p
	}
}

// AxisID identifies a single axis slot: a position and an index within the
// stack of parallel axes at that position. Index 0 is the axis closest to
// the canvas.
type AxisID struct {
	Pos   AxisPosition
	Index int
}

// Axis is a convenience function to create an AxisID.
func Axis(pos AxisPosition, index int) AxisID {
	return AxisID{Pos: pos, Index: index}
}

// Orientation distinguishes horizontal from vertical extents, used for
// legend scrollbar queries.
type Orientation int

const (
	// Horizontal is the left-to-right orientation.
	Horizontal Orientation = iota
	// Vertical is the top-to-bottom orientation.
	Vertical
)

// String returns the string representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// LegendPosition specifies on which side of the plot the legend is placed.
type LegendPosition int

const (
	// LegendBottom places the legend below the canvas (default).
	LegendBottom LegendPosition = iota
	// LegendTop places the legend above the canvas.
	LegendTop
	// LegendLeft places the legend left of the canvas.
	LegendLeft
	// LegendRight places the legend right of the canvas.
	LegendRight
)

// String returns the string representation of the legend position.
func (p LegendPosition) String() string {
	switch p {
	case LegendBottom:
		return "Bottom"
	case LegendTop:
		return "Top"
	case LegendLeft:
		return "Left"
	case LegendRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsVertical reports whether the legend occupies a left or right band,
// running vertically beside the canvas.
func (p LegendPosition) IsVertical() bool {
	return p == LegendLeft || p == LegendRight
}
