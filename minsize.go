package plotlayout

import (
	"math"

	"github.com/gogpu/plotlayout/geom"
)

// minScaleData collects the per-position inputs of the minimum-size
// estimate. Only the axis slot bordering the canvas (index 0) is
// considered.
type minScaleData struct {
	w          float64
	h          float64
	minStart   float64
	minEnd     float64
	tickOffset float64
}

// MinimumSize returns a lower bound for the plot size: the smallest
// rectangle that can hold the canvas at its minimum size together with
// all visible scales, labels and the legend.
//
// This is a deliberately independent estimate. It reuses no code from
// the dimension solver and its shift arithmetic rounds differently; it
// is a size hint for the embedding toolkit, not a layout.
func (l *Layout) MinimumSize(src Sources) geom.Size {
	var scaleData [NumAxisPositions]minScaleData
	var canvasBorder [NumAxisPositions]float64

	var contentsMargins geom.Margins
	var minCanvasSize geom.Size
	if src.Canvas != nil {
		contentsMargins = src.Canvas.ContentsMargins()
		minCanvasSize = src.Canvas.MinimumSize()
	}
	fw := contentsMargins.Left

	for pos := AxisPosition(0); pos < NumAxisPositions; pos++ {
		if src.Scales != nil && src.Scales.AxisCount(pos) > 0 {
			id := AxisID{Pos: pos, Index: 0}
			if src.Scales.IsVisible(id) {
				sd := &scaleData[pos]

				hint := src.Scales.MinimumExtent(id)
				sd.w = hint.W
				sd.h = hint.H
				sd.minStart, sd.minEnd = src.Scales.BorderDistHint(id)
				sd.tickOffset = src.Scales.Margin(id)
				if src.Scales.HasTicks(id) {
					sd.tickOffset += math.Ceil(src.Scales.MaxTickLength(id))
				}
			}
		}

		canvasBorder[pos] = fw + l.engine.canvasMargin[pos] + 1
	}

	// An axis bordering a perpendicular scale may shift its outermost
	// label into that scale's band; reduce its extent accordingly.
	for pos := AxisPosition(0); pos < NumAxisPositions; pos++ {
		sd := &scaleData[pos]

		if sd.w > 0 && pos.IsHorizontal() {
			if sd.minStart > canvasBorder[AxisLeft] && scaleData[AxisLeft].w > 0 {
				shift := sd.minStart - canvasBorder[AxisLeft]
				if shift > scaleData[AxisLeft].w {
					shift = scaleData[AxisLeft].w
				}
				sd.w -= shift
			}
			if sd.minEnd > canvasBorder[AxisRight] && scaleData[AxisRight].w > 0 {
				shift := sd.minEnd - canvasBorder[AxisRight]
				if shift > scaleData[AxisRight].w {
					shift = scaleData[AxisRight].w
				}
				sd.w -= shift
			}
		}

		if sd.h > 0 && pos.IsVertical() {
			// A vertical scale's labels may reach next to the
			// horizontal backbone, but never past its tick offset.
			if sd.minStart > canvasBorder[AxisBottom] && scaleData[AxisBottom].h > 0 {
				shift := sd.minStart - canvasBorder[AxisBottom]
				if shift > scaleData[AxisBottom].tickOffset {
					shift = scaleData[AxisBottom].tickOffset
				}
				sd.h -= shift
			}
			if sd.minEnd > canvasBorder[AxisTop] && scaleData[AxisTop].h > 0 {
				shift := sd.minEnd - canvasBorder[AxisTop]
				if shift > scaleData[AxisTop].tickOffset {
					shift = scaleData[AxisTop].tickOffset
				}
				sd.h -= shift
			}
		}
	}

	w := scaleData[AxisLeft].w + scaleData[AxisRight].w
	cw := math.Max(scaleData[AxisBottom].w, scaleData[AxisTop].w) +
		contentsMargins.Left + 1 + contentsMargins.Right + 1
	w += math.Max(cw, minCanvasSize.W)

	h := scaleData[AxisBottom].h + scaleData[AxisTop].h
	ch := math.Max(scaleData[AxisLeft].h, scaleData[AxisRight].h) +
		contentsMargins.Top + 1 + contentsMargins.Bottom + 1
	h += math.Max(ch, minCanvasSize.H)

	centerOnCanvas := visibleAxes(src.Scales, AxisLeft) != visibleAxes(src.Scales, AxisRight)

	for _, label := range []LabelSource{src.Title, src.Footer} {
		if label == nil || label.IsEmpty() {
			continue
		}

		labelW := w
		if centerOnCanvas {
			labelW -= scaleData[AxisLeft].w + scaleData[AxisRight].w
		}

		labelH := label.HeightForWidth(labelW)
		if labelH > labelW {
			// Compensate for a long one-line title: grow the width
			// until the label fits a square-ish aspect.
			w = labelH
			labelW = labelH
			if centerOnCanvas {
				w += scaleData[AxisLeft].w + scaleData[AxisRight].w
			}
			labelH = label.HeightForWidth(labelW)
		}
		h += labelH + l.engine.spacing
	}

	if src.Legend != nil && !src.Legend.IsEmpty() {
		legend := src.Legend
		ratio := l.engine.legendRatio

		if l.engine.legendPos.IsVertical() {
			legendW := legend.SizeHint().W
			legendH := legend.HeightForWidth(legendW)

			if legend.FrameWidth() > 0 {
				w += l.engine.spacing
			}

			if legendH > h {
				legendW += legend.ScrollExtent(Horizontal)
			}

			if ratio < 1.0 {
				legendW = math.Min(legendW, w/(1.0-ratio))
			}

			w += legendW + l.engine.spacing
		} else {
			legendW := math.Min(legend.SizeHint().W, w)
			legendH := legend.HeightForWidth(legendW)

			if legend.FrameWidth() > 0 {
				h += l.engine.spacing
			}

			if ratio < 1.0 {
				legendH = math.Min(legendH, h/(1.0-ratio))
			}

			h += legendH + l.engine.spacing
		}
	}

	return geom.Size{W: w, H: h}
}

// visibleAxes counts the visible axis slots at a position.
func visibleAxes(scales ScaleSource, pos AxisPosition) int {
	if scales == nil {
		return 0
	}
	n := 0
	for i := 0; i < scales.AxisCount(pos); i++ {
		if scales.IsVisible(AxisID{Pos: pos, Index: i}) {
			n++
		}
	}
	return n
}
