package measure

import (
	"math"

	"github.com/gogpu/plotlayout"
	"github.com/gogpu/plotlayout/geom"
)

// AxisMetrics derives the layout quantities of one axis scale from its
// tick label strings. Scale converts the metrics into a
// plotlayout.FixedScale for use in a ScaleSet.
type AxisMetrics struct {
	// M measures the tick label and title font.
	M *Measurer

	// Vertical marks a left or right axis, whose tick labels extend
	// the axis horizontally and whose title runs along the axis.
	Vertical bool

	// TickLabels are the texts drawn at the major ticks, in axis
	// order. The first and last determine the border distance hints.
	TickLabels []string

	// TickLength is the length of the major tick marks; zero draws no
	// ticks.
	TickLength float64

	// Margin is the distance between the scale and the canvas border
	// it faces.
	Margin float64

	// Spacing is the gap between the tick marks and their labels.
	Spacing float64

	// Title is the axis title; empty means none.
	Title string
}

// Dim returns the thickness of the scale without its title: backbone,
// tick marks, label band and canvas-side margin.
func (a *AxisMetrics) Dim() float64 {
	return math.Ceil(a.Margin + a.TickLength + a.Spacing + a.labelExtent() + 1)
}

// BorderDistHint returns the distances the first and last tick labels
// reach past their ticks along the axis. Horizontal axes center labels
// on the ticks; vertical axes center them vertically.
func (a *AxisMetrics) BorderDistHint() (start, end float64) {
	if len(a.TickLabels) == 0 {
		return 0, 0
	}
	if a.Vertical {
		half := math.Ceil(a.M.LineHeight() / 2)
		return half, half
	}
	start = math.Ceil(a.M.Advance(a.TickLabels[0]) / 2)
	end = math.Ceil(a.M.Advance(a.TickLabels[len(a.TickLabels)-1]) / 2)
	return start, end
}

// MinimumExtent returns the smallest rectangle the scale is legible
// in: its thickness across the axis, and room for the border hints
// plus two tick labels along it.
func (a *AxisMetrics) MinimumExtent() geom.Size {
	start, end := a.BorderDistHint()
	along := start + end
	if a.Vertical {
		along += 2 * math.Ceil(a.M.LineHeight())
		return geom.Size{W: a.Dim(), H: along}
	}
	along += 2 * math.Ceil(a.maxAdvance())
	return geom.Size{W: along, H: a.Dim()}
}

// Scale assembles a FixedScale from the metrics. The title height
// stays a live query against the Measurer so the dimension solver sees
// real wrapping behavior; everything else is computed here.
func (a *AxisMetrics) Scale() *plotlayout.FixedScale {
	start, end := a.BorderDistHint()
	s := &plotlayout.FixedScale{
		Start:          start,
		End:            end,
		BaselineMargin: a.Margin,
		Ticks:          a.TickLength > 0,
		TickLength:     a.TickLength,
		Dim:            a.Dim(),
		Title:          a.Title,
		MinSize:        a.MinimumExtent(),
	}
	if a.Title != "" {
		s.TitleHeight = func(width float64) float64 {
			return a.M.HeightForWidth(a.Title, width)
		}
	}
	return s
}

// labelExtent is how far the tick labels reach across the axis: their
// widest advance for vertical axes (horizontal text beside a vertical
// line), one line height for horizontal axes.
func (a *AxisMetrics) labelExtent() float64 {
	if len(a.TickLabels) == 0 {
		return 0
	}
	if a.Vertical {
		return a.maxAdvance()
	}
	return a.M.LineHeight()
}

func (a *AxisMetrics) maxAdvance() float64 {
	var w float64
	for _, label := range a.TickLabels {
		w = math.Max(w, a.M.Advance(label))
	}
	return w
}
