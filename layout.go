package plotlayout

import "github.com/gogpu/plotlayout/geom"

// Layout computes and stores the geometry of all plot components:
// title, footer, legend, canvas, and every axis scale slot.
//
// A Layout owns only long-lived policy (spacing, canvas margins, legend
// position and ratio, per-side alignment flags). Every call to Activate
// recomputes all rectangles from scratch against a fresh measurement
// snapshot; the rectangles are the only state that outlives a pass.
//
// Layout is not safe for concurrent use. The intended model is a single
// control thread that mutates configuration, runs Activate, and then
// paints from the computed rectangles.
type Layout struct {
	engine *layoutEngine

	titleRect  geom.Rect
	footerRect geom.Rect
	legendRect geom.Rect
	canvasRect geom.Rect
	scaleRects [NumAxisPositions][]geom.Rect
}

// NewLayout creates a Layout with the default policy: bottom legend
// with ratio 0.33, canvas margin 4 on all sides, spacing 5, no
// alignment to scales.
func NewLayout(opts ...LayoutOption) *Layout {
	l := &Layout{engine: newLayoutEngine()}
	l.SetCanvasMargin(4, AllAxisPositions)
	l.Invalidate()

	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetCanvasMargin changes the canvas margin for one side, or for all
// sides when pos is AllAxisPositions. The margin is the space between
// the scale ticks and the canvas border; values below -1 are clamped to
// -1, which excludes the borders of the scales.
//
// The margin has no effect on a side whose align-canvas-to-scale flag
// is set.
func (l *Layout) SetCanvasMargin(margin float64, pos AxisPosition) {
	if margin < -1 {
		margin = -1
	}

	if pos == AllAxisPositions {
		for p := AxisPosition(0); p < NumAxisPositions; p++ {
			l.engine.canvasMargin[p] = margin
		}
	} else if pos >= 0 && pos < NumAxisPositions {
		l.engine.canvasMargin[pos] = margin
	}
}

// CanvasMargin returns the canvas margin for a side.
func (l *Layout) CanvasMargin(pos AxisPosition) float64 {
	if pos < 0 || pos >= NumAxisPositions {
		return 0
	}
	return l.engine.canvasMargin[pos]
}

// SetAlignCanvasToScales sets the align-canvas-to-scale flag for all
// four sides.
func (l *Layout) SetAlignCanvasToScales(on bool) {
	for p := AxisPosition(0); p < NumAxisPositions; p++ {
		l.engine.alignCanvas[p] = on
	}
}

// SetAlignCanvasToScale changes the align-canvas-to-scale setting for
// one side. The canvas may either extend beyond the axis scale ends to
// maximize its size, or align exactly with them.
//
// The position identifies a border of the plot, not the axes being
// aligned: AxisLeft aligns the left end of the horizontal axes.
// When enabled, the canvas margin for that side has no effect.
func (l *Layout) SetAlignCanvasToScale(pos AxisPosition, on bool) {
	if pos >= 0 && pos < NumAxisPositions {
		l.engine.alignCanvas[pos] = on
	}
}

// AlignCanvasToScale returns the align-canvas-to-scale setting for a
// side.
func (l *Layout) AlignCanvasToScale(pos AxisPosition) bool {
	if pos < 0 || pos >= NumAxisPositions {
		return false
	}
	return l.engine.alignCanvas[pos]
}

// SetSpacing changes the distance between the plot components.
// Negative values are clamped to zero.
func (l *Layout) SetSpacing(spacing float64) {
	if spacing < 0 {
		spacing = 0
	}
	l.engine.spacing = spacing
}

// Spacing returns the distance between the plot components.
func (l *Layout) Spacing() float64 {
	return l.engine.spacing
}

// SetLegendPosition sets the legend side and its size ratio relative to
// the plot rect. The ratio is capped at 1.0; a non-positive ratio
// selects the default (0.33 for top/bottom, 0.5 for left/right). The
// legend is shrunk when it would need more space than the ratio allows.
func (l *Layout) SetLegendPosition(pos LegendPosition, ratio float64) {
	if ratio > 1.0 {
		ratio = 1.0
	}

	switch pos {
	case LegendTop, LegendBottom:
		if ratio <= 0.0 {
			ratio = 0.33
		}
	case LegendLeft, LegendRight:
		if ratio <= 0.0 {
			ratio = 0.5
		}
	default:
		return
	}

	l.engine.legendRatio = ratio
	l.engine.legendPos = pos
}

// LegendPosition returns the side the legend is placed on.
func (l *Layout) LegendPosition() LegendPosition {
	return l.engine.legendPos
}

// SetLegendRatio sets the legend size ratio, keeping the position.
func (l *Layout) SetLegendRatio(ratio float64) {
	l.SetLegendPosition(l.engine.legendPos, ratio)
}

// LegendRatio returns the relative size of the legend.
func (l *Layout) LegendRatio() float64 {
	return l.engine.legendRatio
}

// TitleRect returns the computed geometry for the title.
// The rect is invalid when no title is laid out.
func (l *Layout) TitleRect() geom.Rect { return l.titleRect }

// FooterRect returns the computed geometry for the footer.
func (l *Layout) FooterRect() geom.Rect { return l.footerRect }

// LegendRect returns the computed geometry for the legend.
func (l *Layout) LegendRect() geom.Rect { return l.legendRect }

// CanvasRect returns the computed geometry for the canvas.
func (l *Layout) CanvasRect() geom.Rect { return l.canvasRect }

// ScaleRect returns the computed geometry for one axis slot, or an
// invalid rect when the slot does not exist or is not drawn.
func (l *Layout) ScaleRect(id AxisID) geom.Rect {
	if id.Pos < 0 || id.Pos >= NumAxisPositions {
		return geom.Rect{}
	}
	rects := l.scaleRects[id.Pos]
	if id.Index < 0 || id.Index >= len(rects) {
		return geom.Rect{}
	}
	return rects[id.Index]
}

// Invalidate resets the geometry of all components.
func (l *Layout) Invalidate() {
	l.titleRect = geom.Rect{}
	l.footerRect = geom.Rect{}
	l.legendRect = geom.Rect{}
	l.canvasRect = geom.Rect{}

	for pos := AxisPosition(0); pos < NumAxisPositions; pos++ {
		l.scaleRects[pos] = make([]geom.Rect, 1)
	}
}

// Update invalidates the current geometry, resizes the per-position
// rect vectors to the configured axis slot counts, and recomputes the
// layout. Slot count changes are a reconfiguration handled here, not an
// error.
func (l *Layout) Update(src Sources, plotRect geom.Rect, options Options) {
	l.Invalidate()

	if src.Scales != nil {
		for pos := AxisPosition(0); pos < NumAxisPositions; pos++ {
			l.scaleRects[pos] = make([]geom.Rect, src.Scales.AxisCount(pos))
		}
	}

	l.Activate(src, plotRect, options)
}

// Activate recalculates the geometry of all components inside plotRect.
//
// The pass runs the full pipeline: capture a measurement snapshot,
// carve off the legend, solve the title/footer/axis dimensions to a
// fixed point, allocate the component rectangles, align the scales to
// the canvas, and align the legend to the canvas span.
func (l *Layout) Activate(src Sources, plotRect geom.Rect, options Options) {
	// rect is the undistributed rest of the plot rect.
	rect := plotRect

	// Extract all layout-relevant measurements from the components
	// up front; the solver never queries them again.
	data := captureLayoutData(src, rect)

	if !options.Has(IgnoreLegend) && src.Legend != nil && !src.Legend.IsEmpty() {
		l.legendRect = l.engine.layoutLegend(options, data.legend, rect)

		// Subtract the legend band plus one spacing unit from the
		// remaining rect.
		switch l.engine.legendPos {
		case LegendLeft:
			rect.SetLeft(l.legendRect.Right() + l.engine.spacing)
		case LegendRight:
			rect.SetRight(l.legendRect.Left() - l.engine.spacing)
		case LegendTop:
			rect.SetTop(l.legendRect.Bottom() + l.engine.spacing)
		case LegendBottom:
			rect.SetBottom(l.legendRect.Top() - l.engine.spacing)
		}
	}

	//  +---+-----------+---+
	//  |       Title       |
	//  +---+-----------+---+
	//  |   |   Axis    |   |
	//  +---+-----------+---+
	//  | A |           | A |
	//  | x |  Canvas   | x |
	//  | i |           | i |
	//  | s |           | s |
	//  +---+-----------+---+
	//  |   |   Axis    |   |
	//  +---+-----------+---+
	//  |      Footer       |
	//  +---+-----------+---+

	// Title, footer and axes include text labels whose height depends
	// on line breaks, which depend on the available width; the solver
	// iterates the mutual dependency to a fixed point.
	dimensions := l.engine.layoutDimensions(options, data, rect)

	if dimensions.title > 0 {
		l.titleRect = geom.Rect{
			X: rect.Left(), Y: rect.Top(),
			W: rect.Width(), H: dimensions.title,
		}

		rect.SetTop(l.titleRect.Bottom() + l.engine.spacing)

		if !data.hasSymmetricYAxes() {
			// If only one vertical side hosts axes, center the title
			// over the canvas rather than the full width.
			l.titleRect = dimensions.centered(rect, l.titleRect)
		}
	}

	if dimensions.footer > 0 {
		l.footerRect = geom.Rect{
			X: rect.Left(), Y: rect.Bottom() - dimensions.footer,
			W: rect.Width(), H: dimensions.footer,
		}

		rect.SetBottom(l.footerRect.Top() - l.engine.spacing)

		if !data.hasSymmetricYAxes() {
			l.footerRect = dimensions.centered(rect, l.footerRect)
		}
	}

	l.canvasRect = dimensions.innerRect(rect)

	for pos := AxisPosition(0); pos < NumAxisPositions; pos++ {
		// Stack the axis slots outward from the canvas edge. The
		// snapshot bounds the loop: the rect vectors may be sized for a
		// different slot count until the next Update, and slots beyond
		// the captured axes stay invalid.
		count := data.numAxes(pos)
		if count > len(l.scaleRects[pos]) {
			count = len(l.scaleRects[pos])
		}

		var offset float64
		for i := 0; i < count; i++ {
			dim := dimensions.Axis(AxisID{Pos: pos, Index: i})
			if dim <= 0 {
				continue
			}

			scaleRect := l.canvasRect
			switch pos {
			case AxisLeft:
				scaleRect.X = l.canvasRect.Left() - offset - dim
				scaleRect.W = dim
			case AxisRight:
				scaleRect.X = l.canvasRect.Right() + offset
				scaleRect.W = dim
			case AxisBottom:
				scaleRect.Y = l.canvasRect.Bottom() + offset
				scaleRect.H = dim
			case AxisTop:
				scaleRect.Y = l.canvasRect.Top() - offset - dim
				scaleRect.H = dim
			}
			l.scaleRects[pos][i] = scaleRect.Normalized()
			offset += dim
		}
	}

	// The ticks of the axes - not the labels above them - should be
	// aligned to the canvas, so the empty corners are used to extend
	// the axes and move the outermost label texts into them.
	l.engine.alignScales(options, data, &l.canvasRect, &l.scaleRects)

	if !l.legendRect.IsEmpty() {
		// Prefer aligning the legend to the canvas, not to the
		// complete plot, when it fits.
		l.legendRect = l.engine.alignLegend(data.legend, l.canvasRect, l.legendRect)
	}
}
