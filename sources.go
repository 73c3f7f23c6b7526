package plotlayout

import "github.com/gogpu/plotlayout/geom"

// LabelSource supplies the measured properties of a text label
// (plot title or footer). The label height depends on the available
// width because text may wrap.
type LabelSource interface {
	// IsEmpty reports whether the label has no text. An empty label
	// occupies no space.
	IsEmpty() bool

	// FrameWidth returns the thickness of the frame drawn around the
	// label, counted once per side.
	FrameWidth() float64

	// HeightForWidth returns the label height when wrapped to the given
	// width.
	HeightForWidth(width float64) float64
}

// LegendSource supplies the measured properties of the plot legend.
type LegendSource interface {
	// IsEmpty reports whether the legend has no entries.
	IsEmpty() bool

	// FrameWidth returns the thickness of the legend frame.
	FrameWidth() float64

	// SizeHint returns the legend's preferred size.
	SizeHint() geom.Size

	// HeightForWidth returns the legend height when constrained to the
	// given width, or a non-positive value if unknown.
	HeightForWidth(width float64) float64

	// ScrollExtent returns the thickness of the legend's scrollbar for
	// the given orientation, needed when the content is clipped.
	ScrollExtent(o Orientation) float64
}

// ScaleSource supplies the measured properties of every axis scale.
// Each axis position hosts a stack of zero or more parallel axes,
// addressed by AxisID.
type ScaleSource interface {
	// AxisCount returns the number of axis slots configured at the
	// given position, visible or not.
	AxisCount(pos AxisPosition) int

	// IsVisible reports whether the axis is shown. An invisible axis
	// contributes nothing to the layout.
	IsVisible(id AxisID) bool

	// BorderDistHint returns the minimum pixel gap the scale needs
	// before its first and after its last tick so labels don't clip.
	BorderDistHint(id AxisID) (start, end float64)

	// Margin returns the distance between the scale baseline and the
	// widget border facing the canvas.
	Margin(id AxisID) float64

	// HasTicks reports whether the scale draws tick marks.
	HasTicks(id AxisID) bool

	// MaxTickLength returns the length of the longest tick mark.
	MaxTickLength(id AxisID) float64

	// IntrinsicDim returns the scale thickness without its title, for
	// an unconstrained length.
	IntrinsicDim(id AxisID) float64

	// HasTitle reports whether the axis carries its own title text.
	HasTitle(id AxisID) bool

	// TitleHeightForWidth returns the height of the axis title when
	// wrapped to the given width (the available axis length).
	TitleHeightForWidth(id AxisID, width float64) float64

	// MinimumExtent returns the smallest acceptable size of the scale,
	// used by the minimum-size estimate only.
	MinimumExtent(id AxisID) geom.Size
}

// CanvasSource supplies the measured properties of the plot canvas.
type CanvasSource interface {
	// ContentsMargins returns the canvas frame's per-side content
	// margins: the part of the canvas eaten by its own drawn frame.
	ContentsMargins() geom.Margins

	// MinimumSize returns the smallest acceptable canvas size, used by
	// the minimum-size estimate only.
	MinimumSize() geom.Size
}

// Sources bundles the measurable plot components consumed by a layout
// pass. Any field may be nil when the component is absent.
//
// The layout engine holds no back-reference to any source: all values are
// captured once per pass into a LayoutData snapshot and never re-queried
// mid-computation.
type Sources struct {
	Title  LabelSource
	Footer LabelSource
	Legend LegendSource
	Scales ScaleSource
	Canvas CanvasSource
}

// contentsMargin returns the canvas content margin for an axis position.
func contentsMargin(m geom.Margins, pos AxisPosition) float64 {
	switch pos {
	case AxisLeft:
		return m.Left
	case AxisRight:
		return m.Right
	case AxisTop:
		return m.Top
	case AxisBottom:
		return m.Bottom
	default:
		return 0
	}
}
