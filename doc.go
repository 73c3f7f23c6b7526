// Package plotlayout computes the geometry of a 2D plot.
//
// # Overview
//
// plotlayout solves a constrained layout problem: given a plot
// rectangle and a variable number of axis scales - each with text and
// tick dimensions that depend on wrapping, which depends on available
// width, which depends on the other scales' widths - it converges on
// consistent dimensions for title, footer, legend, every axis band and
// the drawing canvas, then aligns axis backbones pixel-accurately
// against the canvas borders.
//
// The library is rendering-agnostic. It consumes measured content
// sizes through small interfaces (LabelSource, LegendSource,
// ScaleSource, CanvasSource) and produces one rectangle per logical
// region for a painting layer to fill.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/plotlayout"
//		"github.com/gogpu/plotlayout/geom"
//	)
//
//	scales := plotlayout.NewScaleSet()
//	scales.Add(plotlayout.AxisBottom, &plotlayout.FixedScale{
//		Dim: 30, Start: 5, End: 5,
//	})
//
//	l := plotlayout.NewLayout()
//	l.Update(plotlayout.Sources{
//		Scales: scales,
//		Canvas: &plotlayout.FixedCanvas{},
//	}, geom.NewRect(0, 0, 800, 600), 0)
//
//	canvas := l.CanvasRect()
//	axis := l.ScaleRect(plotlayout.Axis(plotlayout.AxisBottom, 0))
//
// # Architecture
//
// A layout pass is a one-directional pipeline:
//
//	measurement snapshot -> dimension solver -> region allocator
//	                     -> scale aligner    -> legend aligner
//
// The snapshot captures every externally measured quantity up front,
// so the iterative solver never reads mutable widget state. The solver
// iterates the mutually dependent title/footer/axis thicknesses to a
// fixed point; termination is guaranteed because dimensions only grow
// and are bounded by unwrapped content size.
//
// Real text measurement (height-for-width with HarfBuzz line breaking)
// lives in the measure subpackage; the FixedLabel/FixedScale types in
// this package serve headless and test scenarios.
//
// # Concurrency
//
// A Layout is single-threaded by design: configuration, Activate and
// rect accessors belong to one control thread. There is no I/O and no
// blocking; a pass always runs to completion.
package plotlayout
