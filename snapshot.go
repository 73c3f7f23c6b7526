package plotlayout

import (
	"math"

	"github.com/gogpu/plotlayout/geom"
)

// legendData is the captured state of the legend.
type legendData struct {
	frameWidth    float64
	hScrollExtent float64
	vScrollExtent float64
	hint          geom.Size
}

func (d *legendData) capture(legend LegendSource, rect geom.Rect) {
	if legend == nil {
		return
	}

	d.frameWidth = legend.FrameWidth()
	d.hScrollExtent = legend.ScrollExtent(Horizontal)
	d.vScrollExtent = legend.ScrollExtent(Vertical)

	hint := legend.SizeHint()

	w := math.Min(hint.W, math.Floor(rect.Width()))

	h := legend.HeightForWidth(w)
	if h <= 0 {
		h = hint.H
	}

	// A legend taller than the plot needs room for its vertical
	// scrollbar.
	if h > rect.Height() {
		w += d.hScrollExtent
	}

	d.hint = geom.Size{W: w, H: h}
}

// labelData is the captured state of the title or footer label.
// heightForWidth is retained as a capability: label height is a function
// of the width the solver has not determined yet.
type labelData struct {
	present        bool
	frameWidth     float64
	heightForWidth func(width float64) float64
}

func (d *labelData) capture(label LabelSource) {
	if label == nil || label.IsEmpty() {
		return
	}

	d.present = true
	d.frameWidth = label.FrameWidth()
	d.heightForWidth = label.HeightForWidth
}

// scaleData is the captured state of one axis scale slot.
// An invisible axis keeps all fields zero and contributes nothing.
type scaleData struct {
	isVisible           bool
	start               float64
	end                 float64
	baseLineOffset      float64
	dimWithoutTitle     float64
	hasTitle            bool
	titleHeightForWidth func(width float64) float64
}

func (d *scaleData) capture(scales ScaleSource, id AxisID) {
	d.isVisible = true
	d.start, d.end = scales.BorderDistHint(id)
	d.baseLineOffset = scales.Margin(id)
	d.dimWithoutTitle = scales.IntrinsicDim(id)
	d.hasTitle = scales.HasTitle(id)
	if d.hasTitle {
		d.titleHeightForWidth = func(width float64) float64 {
			return scales.TitleHeightForWidth(id, width)
		}
	}
}

// canvasData is the captured state of the canvas widget.
type canvasData struct {
	contentsMargins geom.Margins
}

// LayoutData is the measurement snapshot of a layout pass: every
// externally measured quantity, captured once so that the iterative
// solver never re-queries mutable widget state mid-computation.
//
// The snapshot is transient; it does not outlive the pass that
// produced it.
type LayoutData struct {
	legend legendData
	title  labelData
	footer labelData
	canvas canvasData

	scales [NumAxisPositions][]scaleData

	// tickOffset is, per position, the margin plus max tick length of
	// the first visible axis. It is used to keep horizontal tick marks
	// from double-counting the border distance of vertical scales.
	tickOffset [NumAxisPositions]float64

	numVisible [NumAxisPositions]int
}

// captureLayoutData extracts all layout-relevant measurements from the
// plot components. Pure capture: no observable side effects.
func captureLayoutData(src Sources, rect geom.Rect) *LayoutData {
	data := &LayoutData{}

	data.legend.capture(src.Legend, rect)
	data.title.capture(src.Title)
	data.footer.capture(src.Footer)

	if src.Scales != nil {
		for pos := AxisPosition(0); pos < NumAxisPositions; pos++ {
			count := src.Scales.AxisCount(pos)
			data.scales[pos] = make([]scaleData, count)

			for i := 0; i < count; i++ {
				id := AxisID{Pos: pos, Index: i}
				if !src.Scales.IsVisible(id) {
					continue
				}

				if data.numVisible[pos] == 0 {
					data.tickOffset[pos] = src.Scales.Margin(id)
					if src.Scales.HasTicks(id) {
						data.tickOffset[pos] += src.Scales.MaxTickLength(id)
					}
				}

				data.numVisible[pos]++
				data.scales[pos][i].capture(src.Scales, id)
			}
		}
	}

	if src.Canvas != nil {
		data.canvas.contentsMargins = src.Canvas.ContentsMargins()
	}

	return data
}

// numAxes returns the number of axis slots captured at a position.
func (d *LayoutData) numAxes(pos AxisPosition) int {
	return len(d.scales[pos])
}

// axisData returns the captured state for an axis slot.
func (d *LayoutData) axisData(id AxisID) *scaleData {
	return &d.scales[id.Pos][id.Index]
}

// hasSymmetricYAxes reports whether left and right host the same number
// of visible axes. Titles and footers span the full width only in the
// symmetric case; otherwise they are centered over the canvas.
func (d *LayoutData) hasSymmetricYAxes() bool {
	return d.numVisible[AxisLeft] == d.numVisible[AxisRight]
}
