package measure

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/plotlayout/cache"
)

// ErrEmptyFontData is returned when NewMeasurer is called without font
// data.
var ErrEmptyFontData = errors.New("measure: empty font data")

// DefaultFontSize is the font size used when NewMeasurer is called
// with a non-positive size.
const DefaultFontSize = 12.0

// Measurer measures text in one font at one size.
//
// The parsed font.Font is read-only and safe for concurrent use; the
// font.Face instances and HarfbuzzShaper needed per call are not, so a
// Face is created per measurement (cheap, wraps the shared Font) and
// shapers are pooled. A Measurer is therefore safe for concurrent use.
type Measurer struct {
	fnt  *font.Font
	size float64

	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
	// internal mutable state and is not safe for concurrent use, but
	// reusing one across sequential calls avoids reallocating its
	// buffers.
	shaperPool sync.Pool

	// lineHeight is ascent + descent + gap of the font at size,
	// captured once from a probe run at construction.
	lineHeight float64

	heights  *cache.Cache[heightKey, float64]
	advances *cache.Cache[string, float64]
}

// heightKey memoizes HeightForWidth per text and whole-pixel width
// bucket. Width -1 stands for "unbounded".
type heightKey struct {
	text  string
	width int
}

type settings struct {
	cacheCapacity int
}

// Option configures a Measurer at construction.
type Option func(*settings)

// WithCacheCapacity sets the per-shard capacity of the measurement
// caches. A non-positive value selects cache.DefaultCapacity.
func WithCacheCapacity(n int) Option {
	return func(s *settings) { s.cacheCapacity = n }
}

// NewMeasurer parses TTF/OTF font data and returns a Measurer for the
// given size in pixels. A non-positive size selects DefaultFontSize.
func NewMeasurer(data []byte, size float64, opts ...Option) (*Measurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 {
		size = DefaultFontSize
	}

	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("measure: parse font: %w", err)
	}

	m := &Measurer{
		fnt:  face.Font,
		size: size,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		heights:  cache.New[heightKey, float64](cfg.cacheCapacity),
		advances: cache.New[string, float64](cfg.cacheCapacity),
	}

	// Probe the font once for its line metrics. LineBounds is a
	// property of the face and size, not of the probe text.
	probe := m.shape(font.NewFace(m.fnt), []rune("Ag"))
	m.lineHeight = outputHeight(probe)

	return m, nil
}

// Size returns the font size in pixels.
func (m *Measurer) Size() float64 { return m.size }

// LineHeight returns the height of a single line of text: ascent plus
// descent plus line gap.
func (m *Measurer) LineHeight() float64 { return m.lineHeight }

// Advance returns the advance width of text laid out on a single
// line, including kerning and ligatures.
func (m *Measurer) Advance(text string) float64 {
	if text == "" {
		return 0
	}
	return m.advances.GetOrCompute(text, func() float64 {
		face := font.NewFace(m.fnt)
		out := m.shape(face, []rune(text))
		return fixedToFloat(out.Advance)
	})
}

// HeightForWidth returns the height of text wrapped to the given
// width. Newlines force line breaks; a non-positive width disables
// wrapping. The result is non-increasing in width, which the layout
// solver relies on.
func (m *Measurer) HeightForWidth(text string, width float64) float64 {
	if text == "" {
		return 0
	}
	key := heightKey{text: text, width: widthBucket(width)}
	return m.heights.GetOrCompute(key, func() float64 {
		return m.measureHeight(text, key.width)
	})
}

// CacheStats returns the cumulative hit/miss/eviction counters of the
// height cache.
func (m *Measurer) CacheStats() cache.Stats { return m.heights.Stats() }

func (m *Measurer) measureHeight(text string, maxWidth int) float64 {
	face := font.NewFace(m.fnt)

	var total float64
	for _, para := range strings.Split(text, "\n") {
		runes := []rune(para)
		if len(runes) == 0 {
			// An empty paragraph still occupies a line.
			total += m.lineHeight
			continue
		}

		out := m.shape(face, runes)
		if maxWidth <= 0 {
			total += outputHeight(out)
			continue
		}

		var wrapper shaping.LineWrapper
		cfg := shaping.WrapConfig{Direction: out.Direction}
		lines, _ := wrapper.WrapParagraph(cfg, maxWidth, runes,
			shaping.NewSliceIterator([]shaping.Output{out}))
		if len(lines) == 0 {
			total += outputHeight(out)
			continue
		}
		for _, line := range lines {
			total += lineExtent(line)
		}
	}
	return total
}

// shape runs HarfBuzz shaping on a single run covering runes.
func (m *Measurer) shape(face *font.Face, runes []rune) shaping.Output {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(runes),
		Face:      face,
		Size:      floatToFixed(m.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shaperPool.Put(hb)
	return out
}

// outputHeight is the line extent of a single shaped run. Descent is
// negative in LineBounds.
func outputHeight(out shaping.Output) float64 {
	b := out.LineBounds
	return fixedToFloat(b.Ascent) - fixedToFloat(b.Descent) + fixedToFloat(b.Gap)
}

// lineExtent is the line extent of one wrapped line: the runs' maximum
// ascent, descent and gap.
func lineExtent(line shaping.Line) float64 {
	var ascent, descent, gap float64
	for _, run := range line {
		b := run.LineBounds
		ascent = math.Max(ascent, fixedToFloat(b.Ascent))
		descent = math.Max(descent, -fixedToFloat(b.Descent))
		gap = math.Max(gap, fixedToFloat(b.Gap))
	}
	return ascent + descent + gap
}

// baseDirection resolves the paragraph's base direction with the
// Unicode bidi algorithm. The ordering must be computed before its
// runs can be inspected; anything inconclusive falls back to LTR.
func baseDirection(runes []rune) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(string(runes)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. A simple heuristic; tick labels and titles are
// single-script in practice.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func widthBucket(width float64) int {
	if width <= 0 {
		return -1
	}
	return int(math.Ceil(width))
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
