package plotlayout

// Options is a bitmask controlling what a layout pass takes into account.
// The zero value considers every component.
type Options uint8

const (
	// IgnoreScrollbars excludes the legend's scrollbar extents.
	IgnoreScrollbars Options = 1 << iota
	// IgnoreFrames excludes frame widths and canvas content margins.
	IgnoreFrames
	// IgnoreLegend excludes the legend from the layout.
	IgnoreLegend
	// IgnoreTitle excludes the title from the layout.
	IgnoreTitle
	// IgnoreFooter excludes the footer from the layout.
	IgnoreFooter
)

// Has reports whether all bits of o are set.
func (opts Options) Has(o Options) bool {
	return opts&o == o
}

// LayoutOption configures a Layout during creation.
// Use functional options to customize the long-lived layout policy.
//
// Example:
//
//	l := plotlayout.NewLayout(
//		plotlayout.WithSpacing(8),
//		plotlayout.WithLegendPosition(plotlayout.LegendRight, 0.4),
//	)
type LayoutOption func(*Layout)

// WithSpacing sets the distance between plot components in pixels.
// Negative values are clamped to zero.
func WithSpacing(spacing float64) LayoutOption {
	return func(l *Layout) {
		l.SetSpacing(spacing)
	}
}

// WithCanvasMargin sets the canvas margin for all four sides.
// The margin is the space between the scale ticks and the canvas border.
// A negative margin is clamped to -1, meaning no border distance constraint.
func WithCanvasMargin(margin float64) LayoutOption {
	return func(l *Layout) {
		l.SetCanvasMargin(margin, -1)
	}
}

// WithLegendPosition sets the legend side and its size ratio.
// The ratio limits the legend to that fraction of the plot rect; it is
// capped at 1.0 and a non-positive value selects the default ratio
// (0.33 for top/bottom, 0.5 for left/right).
func WithLegendPosition(pos LegendPosition, ratio float64) LayoutOption {
	return func(l *Layout) {
		l.SetLegendPosition(pos, ratio)
	}
}

// WithAlignCanvasToScales sets the align-canvas-to-scale flag for all
// four sides. When enabled for a side, the canvas edge is forced onto the
// axis backbone and the canvas margin for that side has no effect.
func WithAlignCanvasToScales(on bool) LayoutOption {
	return func(l *Layout) {
		l.SetAlignCanvasToScales(on)
	}
}
