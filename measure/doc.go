// Package measure provides real text measurement for plot layout.
//
// The layout engine in the parent package only consumes numbers: label
// heights for a given width, axis thicknesses, border distance hints.
// This package produces those numbers from actual fonts, using
// HarfBuzz shaping and line wrapping via go-text/typesetting, so that
// a wrapped plot title or a rotated axis title occupies exactly the
// space its glyphs need.
//
// A Measurer wraps one parsed font at one size. Label adapts a
// Measurer to the LabelSource interface for plot titles and footers;
// AxisMetrics derives the per-axis quantities of a ScaleSource from a
// set of tick label strings.
//
// Measurement is cached: the dimension solver asks the same
// height-for-width questions repeatedly while iterating to a fixed
// point, and shaping is by far the most expensive step, so results are
// memoized per (text, width) in a sharded LRU cache.
package measure
