package plotlayout

import (
	"math"

	"github.com/gogpu/plotlayout/geom"
)

// FixedLabel is a LabelSource with precomputed measurements. It is
// useful for headless layout computation and for tests, where no real
// text engine is involved. For measured labels see the measure package.
type FixedLabel struct {
	// Text is the label text; an empty string means "not present".
	Text string

	// Frame is the thickness of the frame drawn around the label.
	Frame float64

	// Height is called for HeightForWidth when non-nil, modelling
	// wrapping behavior. When nil, ConstantHeight is returned for any
	// width.
	Height func(width float64) float64

	// ConstantHeight is the label height when Height is nil.
	ConstantHeight float64
}

// IsEmpty implements LabelSource.
func (l *FixedLabel) IsEmpty() bool { return l.Text == "" }

// FrameWidth implements LabelSource.
func (l *FixedLabel) FrameWidth() float64 { return l.Frame }

// HeightForWidth implements LabelSource.
func (l *FixedLabel) HeightForWidth(width float64) float64 {
	if l.Text == "" {
		return 0
	}
	if l.Height != nil {
		return l.Height(width)
	}
	return l.ConstantHeight
}

// WrappingLabelHeight returns a Height function that models greedy word
// wrapping of a single line of the given total width: the height grows
// in whole line steps as the available width shrinks. The returned
// function is monotone non-increasing in width, as the solver requires.
func WrappingLabelHeight(lineWidth, lineHeight float64) func(width float64) float64 {
	return func(width float64) float64 {
		if lineWidth <= 0 || lineHeight <= 0 {
			return 0
		}
		if width <= 0 {
			// Degenerate width: everything on one (clipped) line.
			return lineHeight
		}
		lines := math.Ceil(lineWidth / width)
		return lines * lineHeight
	}
}

// FixedLegend is a LegendSource with precomputed measurements.
type FixedLegend struct {
	// Hint is the legend's preferred size.
	Hint geom.Size

	// Frame is the thickness of the legend frame.
	Frame float64

	// HScroll and VScroll are the scrollbar extents.
	HScroll float64
	VScroll float64

	// Height is called for HeightForWidth when non-nil; when nil, the
	// hint height is used for any width.
	Height func(width float64) float64

	// Empty marks a legend without entries, which occupies no space.
	Empty bool
}

// IsEmpty implements LegendSource.
func (l *FixedLegend) IsEmpty() bool { return l.Empty }

// FrameWidth implements LegendSource.
func (l *FixedLegend) FrameWidth() float64 { return l.Frame }

// SizeHint implements LegendSource.
func (l *FixedLegend) SizeHint() geom.Size { return l.Hint }

// HeightForWidth implements LegendSource.
func (l *FixedLegend) HeightForWidth(width float64) float64 {
	if l.Height != nil {
		return l.Height(width)
	}
	return l.Hint.H
}

// ScrollExtent implements LegendSource.
func (l *FixedLegend) ScrollExtent(o Orientation) float64 {
	if o == Horizontal {
		return l.HScroll
	}
	return l.VScroll
}

// FixedScale is the per-axis record of a ScaleSet: one axis slot with
// precomputed measurements.
type FixedScale struct {
	// Hidden excludes the axis from the layout entirely.
	Hidden bool

	// Start and End are the border distance hints: minimum pixel gaps
	// before the first and after the last tick.
	Start float64
	End   float64

	// BaselineMargin is the distance between the scale baseline and
	// the border facing the canvas.
	BaselineMargin float64

	// Ticks reports whether the scale draws tick marks of TickLength.
	Ticks      bool
	TickLength float64

	// Dim is the scale thickness without its title.
	Dim float64

	// Title is the axis title text; empty means no title.
	// TitleHeight models its wrapping; when nil a titled axis
	// contributes ConstantTitleHeight.
	Title               string
	TitleHeight         func(width float64) float64
	ConstantTitleHeight float64

	// MinSize is the minimum extent used by Layout.MinimumSize.
	MinSize geom.Size
}

// ScaleSet is a ScaleSource over stacks of FixedScale slots, one stack
// per axis position. Index 0 in a stack is the axis bordering the
// canvas.
type ScaleSet struct {
	slots [NumAxisPositions][]*FixedScale
}

// NewScaleSet creates an empty ScaleSet.
func NewScaleSet() *ScaleSet {
	return &ScaleSet{}
}

// Add appends a scale to the stack at a position and returns its
// AxisID.
func (s *ScaleSet) Add(pos AxisPosition, scale *FixedScale) AxisID {
	s.slots[pos] = append(s.slots[pos], scale)
	return AxisID{Pos: pos, Index: len(s.slots[pos]) - 1}
}

// At returns the scale for an AxisID, or nil when out of range.
func (s *ScaleSet) At(id AxisID) *FixedScale {
	if id.Pos < 0 || id.Pos >= NumAxisPositions {
		return nil
	}
	if id.Index < 0 || id.Index >= len(s.slots[id.Pos]) {
		return nil
	}
	return s.slots[id.Pos][id.Index]
}

// AxisCount implements ScaleSource.
func (s *ScaleSet) AxisCount(pos AxisPosition) int {
	if pos < 0 || pos >= NumAxisPositions {
		return 0
	}
	return len(s.slots[pos])
}

// IsVisible implements ScaleSource.
func (s *ScaleSet) IsVisible(id AxisID) bool {
	sc := s.At(id)
	return sc != nil && !sc.Hidden
}

// BorderDistHint implements ScaleSource.
func (s *ScaleSet) BorderDistHint(id AxisID) (start, end float64) {
	if sc := s.At(id); sc != nil {
		return sc.Start, sc.End
	}
	return 0, 0
}

// Margin implements ScaleSource.
func (s *ScaleSet) Margin(id AxisID) float64 {
	if sc := s.At(id); sc != nil {
		return sc.BaselineMargin
	}
	return 0
}

// HasTicks implements ScaleSource.
func (s *ScaleSet) HasTicks(id AxisID) bool {
	sc := s.At(id)
	return sc != nil && sc.Ticks
}

// MaxTickLength implements ScaleSource.
func (s *ScaleSet) MaxTickLength(id AxisID) float64 {
	if sc := s.At(id); sc != nil {
		return sc.TickLength
	}
	return 0
}

// IntrinsicDim implements ScaleSource.
func (s *ScaleSet) IntrinsicDim(id AxisID) float64 {
	if sc := s.At(id); sc != nil {
		return sc.Dim
	}
	return 0
}

// HasTitle implements ScaleSource.
func (s *ScaleSet) HasTitle(id AxisID) bool {
	sc := s.At(id)
	return sc != nil && sc.Title != ""
}

// TitleHeightForWidth implements ScaleSource.
func (s *ScaleSet) TitleHeightForWidth(id AxisID, width float64) float64 {
	sc := s.At(id)
	if sc == nil || sc.Title == "" {
		return 0
	}
	if sc.TitleHeight != nil {
		return sc.TitleHeight(width)
	}
	return sc.ConstantTitleHeight
}

// MinimumExtent implements ScaleSource.
func (s *ScaleSet) MinimumExtent(id AxisID) geom.Size {
	if sc := s.At(id); sc != nil {
		return sc.MinSize
	}
	return geom.Size{}
}

// FixedCanvas is a CanvasSource with precomputed measurements.
type FixedCanvas struct {
	// Margins are the canvas frame's per-side content margins.
	Margins geom.Margins

	// MinSize is the minimum canvas size used by Layout.MinimumSize.
	MinSize geom.Size
}

// ContentsMargins implements CanvasSource.
func (c *FixedCanvas) ContentsMargins() geom.Margins { return c.Margins }

// MinimumSize implements CanvasSource.
func (c *FixedCanvas) MinimumSize() geom.Size { return c.MinSize }
