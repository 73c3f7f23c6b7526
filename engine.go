package plotlayout

import (
	"math"

	"github.com/gogpu/plotlayout/geom"
)

// maxSolverIterations caps the fixed-point loop. The loop is monotone
// non-decreasing and bounded by intrinsic content size, so it converges
// on its own; the cap only guards against a measurement callback whose
// height oscillates with width.
const maxSolverIterations = 32

// layoutEngine holds the long-lived layout policy and implements the
// dimension solver and the alignment passes.
type layoutEngine struct {
	legendPos   LegendPosition
	legendRatio float64

	canvasMargin [NumAxisPositions]float64
	alignCanvas  [NumAxisPositions]bool

	spacing float64
}

func newLayoutEngine() *layoutEngine {
	return &layoutEngine{
		legendPos:   LegendBottom,
		legendRatio: 0.33,
		spacing:     5,
	}
}

// backboneOffsets returns, per side, the distance between the canvas
// edge and the axis backbone: the canvas content margin (unless frames
// are ignored) plus the canvas margin (unless the side is aligned to
// the scale, which overrides the margin).
func (e *layoutEngine) backboneOffsets(options Options, data *LayoutData) [NumAxisPositions]float64 {
	var offset [NumAxisPositions]float64
	for pos := AxisPosition(0); pos < NumAxisPositions; pos++ {
		if !options.Has(IgnoreFrames) {
			offset[pos] += contentsMargin(data.canvas.contentsMargins, pos)
		}
		if !e.alignCanvas[pos] {
			offset[pos] += e.canvasMargin[pos]
		}
	}
	return offset
}

// layoutLegend returns the legend rectangle, flush against the
// configured side of rect. The legend thickness is the smaller of its
// size hint and the configured fraction of the rect span, widened by a
// scrollbar extent when the content would be clipped.
func (e *layoutEngine) layoutLegend(options Options, legend legendData, rect geom.Rect) geom.Rect {
	var dim float64
	if e.legendPos.IsVertical() {
		// Vertical legends are not allowed to take more than the
		// configured fraction of the available width.
		dim = math.Min(legend.hint.W, rect.Width()*e.legendRatio)

		if !options.Has(IgnoreScrollbars) {
			if legend.hint.H > rect.Height() {
				// The legend needs extra space for its vertical
				// scrollbar.
				dim += legend.hScrollExtent
			}
		}
	} else {
		dim = math.Min(legend.hint.H, rect.Height()*e.legendRatio)
		dim = math.Max(dim, legend.vScrollExtent)
	}

	legendRect := rect
	switch e.legendPos {
	case LegendLeft:
		legendRect.SetWidth(dim)
	case LegendRight:
		legendRect.SetLeft(rect.Right() - dim)
		legendRect.SetWidth(dim)
	case LegendTop:
		legendRect.SetHeight(dim)
	case LegendBottom:
		legendRect.SetTop(rect.Bottom() - dim)
		legendRect.SetHeight(dim)
	}

	return legendRect
}

// alignLegend stretches the legend to the canvas span when the legend
// is smaller: a bottom legend narrower than the canvas is widened to
// the canvas's horizontal extent, a side legend shorter than the canvas
// to its vertical extent.
func (e *layoutEngine) alignLegend(legend legendData, canvasRect, legendRect geom.Rect) geom.Rect {
	aligned := legendRect

	if !e.legendPos.IsVertical() {
		if legend.hint.W < canvasRect.Width() {
			aligned.X = canvasRect.X
			aligned.W = canvasRect.Width()
		}
	} else {
		if legend.hint.H < canvasRect.Height() {
			aligned.Y = canvasRect.Y
			aligned.H = canvasRect.Height()
		}
	}

	return aligned
}

// heightForWidth returns the band height of a title or footer label for
// the given width. With asymmetric vertical axis stacks the label is
// centered over the canvas, so the axes width is subtracted first.
func (e *layoutEngine) heightForWidth(label labelData, data *LayoutData,
	options Options, width, axesWidth float64) float64 {

	if !label.present {
		return 0
	}

	w := width
	if !data.hasSymmetricYAxes() {
		// center to the canvas
		w -= axesWidth
	}

	d := math.Ceil(label.heightForWidth(w))
	if !options.Has(IgnoreFrames) {
		d += 2 * label.frameWidth
	}

	return d
}

// layoutDimensions solves the thickness of title, footer and every axis
// band to a fixed point.
//
// The four axis bands depend on each other: growing a horizontal axis
// shrinks the length of the vertical axes, which can force a line break
// in a vertical title, which widens the vertical band and shrinks the
// horizontal axes again. There is no closed form in the presence of
// text wrapping, so iterate until no dimension grows. Every update only
// increases a value and all values are bounded by unwrapped content
// size, so the loop terminates.
func (e *layoutEngine) layoutDimensions(options Options, data *LayoutData, rect geom.Rect) *Dimensions {
	dimensions := newDimensions(data)

	backboneOffset := e.backboneOffsets(options, data)

	iterations := 0
	done := false
	for !done && iterations < maxSolverIterations {
		done = true
		iterations++

		if !options.Has(IgnoreTitle) {
			d := e.heightForWidth(data.title, data, options,
				rect.Width(), dimensions.VerticalAxes())

			if d > dimensions.title {
				dimensions.title = d
				done = false
			}
		}

		if !options.Has(IgnoreFooter) {
			d := e.heightForWidth(data.footer, data, options,
				rect.Width(), dimensions.VerticalAxes())

			if d > dimensions.footer {
				dimensions.footer = d
				done = false
			}
		}

		for pos := AxisPosition(0); pos < NumAxisPositions; pos++ {
			for i := 0; i < data.numAxes(pos); i++ {
				id := AxisID{Pos: pos, Index: i}
				sd := data.axisData(id)

				if !sd.isVisible {
					continue
				}

				var length float64
				if pos.IsHorizontal() {
					length = rect.Width() - dimensions.VerticalAxes()
					length -= sd.start + sd.end

					if dimensions.AxesAt(AxisRight) > 0 {
						length--
					}

					// Ticks of a horizontal axis may intrude into the
					// gutter reserved for the border distance of a
					// vertical axis, up to that axis's own thickness.
					length += math.Min(dimensions.AxesAt(AxisLeft),
						sd.start-backboneOffset[AxisLeft])

					length += math.Min(dimensions.AxesAt(AxisRight),
						sd.end-backboneOffset[AxisRight])
				} else {
					length = rect.Height() - dimensions.HorizontalAxes()
					length -= sd.start + sd.end
					length--

					if dimensions.AxesAt(AxisBottom) <= 0 {
						length--
					}
					if dimensions.AxesAt(AxisTop) <= 0 {
						length--
					}

					// The tick labels of the vertical axes sit
					// left/right of the horizontal axes' backbone and
					// ticks, but must not overlap their labels.
					if dimensions.AxesAt(AxisBottom) > 0 {
						length += math.Min(data.tickOffset[AxisBottom],
							sd.start-backboneOffset[AxisBottom])
					}
					if dimensions.AxesAt(AxisTop) > 0 {
						length += math.Min(data.tickOffset[AxisTop],
							sd.end-backboneOffset[AxisTop])
					}

					if dimensions.title > 0 {
						length -= dimensions.title + e.spacing
					}
				}

				d := sd.dimWithoutTitle
				if sd.hasTitle {
					d += sd.titleHeightForWidth(math.Floor(length))
				}

				if d > dimensions.Axis(id) {
					dimensions.setAxis(id, d)
					done = false
				}
			}
		}
	}

	if !done {
		Logger().Warn("plotlayout: dimension solver hit iteration cap",
			"iterations", iterations)
	} else {
		Logger().Debug("plotlayout: dimension solver converged",
			"iterations", iterations)
	}

	return dimensions
}

// firstRect returns the rectangle of the axis slot bordering the canvas
// at a position, or an invalid rect when the position has no slots.
func firstRect(scaleRects *[NumAxisPositions][]geom.Rect, pos AxisPosition) geom.Rect {
	if len(scaleRects[pos]) == 0 {
		return geom.Rect{}
	}
	return scaleRects[pos][0]
}

// alignScales nudges the axis rectangles and the canvas rectangle so
// that tick marks, not label bounding boxes, line up with the canvas
// edges. When an axis demands more border distance than the opposing
// scale leaves room for, the canvas shrinks instead of the axis
// overlapping its neighbor.
func (e *layoutEngine) alignScales(options Options, data *LayoutData,
	canvasRect *geom.Rect, scaleRects *[NumAxisPositions][]geom.Rect) {

	var backboneOffset [NumAxisPositions]float64
	for pos := AxisPosition(0); pos < NumAxisPositions; pos++ {
		if !e.alignCanvas[pos] {
			backboneOffset[pos] += e.canvasMargin[pos]
		}
		if !options.Has(IgnoreFrames) {
			backboneOffset[pos] += contentsMargin(data.canvas.contentsMargins, pos)
		}
	}

	for pos := AxisPosition(0); pos < NumAxisPositions; pos++ {
		for i := range scaleRects[pos] {
			axisRect := &scaleRects[pos][i]
			if !axisRect.IsValid() {
				continue
			}

			startDist := data.scales[pos][i].start
			endDist := data.scales[pos][i].end

			if pos.IsHorizontal() {
				e.alignHorizontalScale(canvasRect, scaleRects,
					axisRect, backboneOffset, startDist, endDist)
			} else {
				e.alignVerticalScale(data, canvasRect, scaleRects,
					axisRect, backboneOffset, startDist, endDist)
			}
		}
	}

	// The canvas has been aligned to the scale with the largest border
	// distances. Now realign the other scales against the adjusted
	// canvas where a side's alignment flag is set.
	e.realignScales(options, data, *canvasRect, scaleRects)
}

// alignHorizontalScale aligns one top or bottom axis rectangle against
// the left and right ends of the canvas.
func (e *layoutEngine) alignHorizontalScale(
	canvasRect *geom.Rect, scaleRects *[NumAxisPositions][]geom.Rect,
	axisRect *geom.Rect, backboneOffset [NumAxisPositions]float64,
	startDist, endDist float64) {

	leftScaleRect := firstRect(scaleRects, AxisLeft)
	leftOffset := backboneOffset[AxisLeft] - startDist

	if leftScaleRect.IsValid() {
		dx := leftOffset + leftScaleRect.Width()
		if e.alignCanvas[AxisLeft] && dx < 0 {
			// The axis needs more space than the width of the
			// left scale.
			canvasRect.SetLeft(math.Max(canvasRect.Left(), axisRect.Left()-dx))
		} else {
			minLeft := leftScaleRect.Left()
			left := axisRect.Left() + leftOffset
			axisRect.SetLeft(math.Max(left, minLeft))
		}
	} else {
		if e.alignCanvas[AxisLeft] && leftOffset < 0 {
			canvasRect.SetLeft(math.Max(canvasRect.Left(),
				axisRect.Left()-leftOffset))
		} else if leftOffset > 0 {
			axisRect.SetLeft(axisRect.Left() + leftOffset)
		}
	}

	rightScaleRect := firstRect(scaleRects, AxisRight)
	rightOffset := backboneOffset[AxisRight] - endDist + 1

	if rightScaleRect.IsValid() {
		dx := rightOffset + rightScaleRect.Width()
		if e.alignCanvas[AxisRight] && dx < 0 {
			// The axis needs more space than the width of the
			// right scale.
			canvasRect.SetRight(math.Min(canvasRect.Right(), axisRect.Right()+dx))
		}

		maxRight := rightScaleRect.Right()
		right := axisRect.Right() - rightOffset
		axisRect.SetRight(math.Min(right, maxRight))
	} else {
		if e.alignCanvas[AxisRight] && rightOffset < 0 {
			canvasRect.SetRight(math.Min(canvasRect.Right(),
				axisRect.Right()+rightOffset))
		} else if rightOffset > 0 {
			axisRect.SetRight(axisRect.Right() - rightOffset)
		}
	}
}

// alignVerticalScale aligns one left or right axis rectangle against
// the top and bottom ends of the canvas. Unlike the horizontal case,
// the clamp uses the opposing axis's tick offset: vertical tick labels
// may reach next to the horizontal backbone but not over its labels.
func (e *layoutEngine) alignVerticalScale(data *LayoutData,
	canvasRect *geom.Rect, scaleRects *[NumAxisPositions][]geom.Rect,
	axisRect *geom.Rect, backboneOffset [NumAxisPositions]float64,
	startDist, endDist float64) {

	bottomScaleRect := firstRect(scaleRects, AxisBottom)
	bottomOffset := backboneOffset[AxisBottom] - endDist + 1

	if bottomScaleRect.IsValid() {
		dy := bottomOffset + bottomScaleRect.Height()
		if e.alignCanvas[AxisBottom] && dy < 0 {
			// The axis needs more space than the height of the
			// bottom scale.
			canvasRect.SetBottom(math.Min(canvasRect.Bottom(),
				axisRect.Bottom()+dy))
		} else {
			maxBottom := bottomScaleRect.Top() + data.tickOffset[AxisBottom]
			bottom := axisRect.Bottom() - bottomOffset
			axisRect.SetBottom(math.Min(bottom, maxBottom))
		}
	} else {
		if e.alignCanvas[AxisBottom] && bottomOffset < 0 {
			canvasRect.SetBottom(math.Min(canvasRect.Bottom(),
				axisRect.Bottom()+bottomOffset))
		} else if bottomOffset > 0 {
			axisRect.SetBottom(axisRect.Bottom() - bottomOffset)
		}
	}

	topScaleRect := firstRect(scaleRects, AxisTop)
	topOffset := backboneOffset[AxisTop] - startDist

	if topScaleRect.IsValid() {
		dy := topOffset + topScaleRect.Height()
		if e.alignCanvas[AxisTop] && dy < 0 {
			// The axis needs more space than the height of the
			// top scale.
			canvasRect.SetTop(math.Max(canvasRect.Top(), axisRect.Top()-dy))
		} else {
			minTop := topScaleRect.Bottom() - data.tickOffset[AxisTop]
			top := axisRect.Top() + topOffset
			axisRect.SetTop(math.Max(top, minTop))
		}
	} else {
		if e.alignCanvas[AxisTop] && topOffset < 0 {
			canvasRect.SetTop(math.Max(canvasRect.Top(),
				axisRect.Top()-topOffset))
		} else if topOffset > 0 {
			axisRect.SetTop(axisRect.Top() + topOffset)
		}
	}
}

// realignScales is the second alignment pass: for every side whose
// align-canvas flag is set, force the axis edges to exactly match the
// adjusted canvas edges, overriding the offset-based placement.
func (e *layoutEngine) realignScales(options Options, data *LayoutData,
	canvasRect geom.Rect, scaleRects *[NumAxisPositions][]geom.Rect) {

	margins := data.canvas.contentsMargins

	for pos := AxisPosition(0); pos < NumAxisPositions; pos++ {
		for i := range scaleRects[pos] {
			sRect := &scaleRects[pos][i]
			if !sRect.IsValid() {
				continue
			}

			sd := data.scales[pos][i]

			if pos.IsHorizontal() {
				if e.alignCanvas[AxisLeft] {
					x := canvasRect.Left() - sd.start
					if !options.Has(IgnoreFrames) {
						x += margins.Left
					}
					sRect.SetLeft(x)
				}
				if e.alignCanvas[AxisRight] {
					x := canvasRect.Right() - 1 + sd.end
					if !options.Has(IgnoreFrames) {
						x -= margins.Right
					}
					sRect.SetRight(x)
				}

				if e.alignCanvas[pos] {
					if pos == AxisTop {
						sRect.SetBottom(canvasRect.Top())
					} else {
						sRect.SetTop(canvasRect.Bottom())
					}
				}
			} else {
				if e.alignCanvas[AxisTop] {
					y := canvasRect.Top() - sd.start
					if !options.Has(IgnoreFrames) {
						y += margins.Top
					}
					sRect.SetTop(y)
				}
				if e.alignCanvas[AxisBottom] {
					y := canvasRect.Bottom() - 1 + sd.end
					if !options.Has(IgnoreFrames) {
						y -= margins.Bottom
					}
					sRect.SetBottom(y)
				}

				if e.alignCanvas[pos] {
					if pos == AxisLeft {
						sRect.SetRight(canvasRect.Left())
					} else {
						sRect.SetLeft(canvasRect.Right())
					}
				}
			}
		}
	}
}
