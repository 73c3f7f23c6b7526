package measure

import (
	"errors"
	"math"
	"testing"

	"github.com/go-text/typesetting/di"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestMeasurer(t *testing.T, size float64) *Measurer {
	t.Helper()
	m, err := NewMeasurer(goregular.TTF, size)
	if err != nil {
		t.Fatalf("NewMeasurer: %v", err)
	}
	return m
}

func TestNewMeasurerErrors(t *testing.T) {
	if _, err := NewMeasurer(nil, 12); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("empty data: got %v, want ErrEmptyFontData", err)
	}
	if _, err := NewMeasurer([]byte("not a font"), 12); err == nil {
		t.Error("garbage data: expected parse error, got nil")
	}
}

func TestNewMeasurerDefaultSize(t *testing.T) {
	m, err := NewMeasurer(goregular.TTF, 0)
	if err != nil {
		t.Fatalf("NewMeasurer: %v", err)
	}
	if m.Size() != DefaultFontSize {
		t.Errorf("Size() = %v, want %v", m.Size(), DefaultFontSize)
	}
}

func TestLineHeight(t *testing.T) {
	m := newTestMeasurer(t, 12)

	lh := m.LineHeight()
	if lh <= 0 {
		t.Fatalf("LineHeight() = %v, want > 0", lh)
	}
	// A 12px font's line height is a bit above 12px and well below
	// twice that.
	if lh < 10 || lh > 24 {
		t.Errorf("LineHeight() = %v, want within [10, 24]", lh)
	}

	big := newTestMeasurer(t, 24)
	if big.LineHeight() <= lh {
		t.Errorf("LineHeight at 24px = %v, want > %v (12px)", big.LineHeight(), lh)
	}
}

func TestAdvance(t *testing.T) {
	m := newTestMeasurer(t, 12)

	if got := m.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %v, want 0", got)
	}

	short := m.Advance("hello")
	long := m.Advance("hello world")
	if short <= 0 {
		t.Fatalf("Advance(hello) = %v, want > 0", short)
	}
	if long <= short {
		t.Errorf("Advance(hello world) = %v, want > Advance(hello) = %v", long, short)
	}

	// Repeated queries come from the cache and agree exactly.
	if again := m.Advance("hello"); again != short {
		t.Errorf("cached Advance(hello) = %v, want %v", again, short)
	}
}

func TestHeightForWidth(t *testing.T) {
	m := newTestMeasurer(t, 12)
	lh := m.LineHeight()
	const text = "the quick brown fox jumps over the lazy dog"

	if got := m.HeightForWidth("", 100); got != 0 {
		t.Errorf("empty text: got %v, want 0", got)
	}

	// Plenty of room: a single line.
	wide := m.HeightForWidth(text, 10000)
	if math.Abs(wide-lh) > 0.01 {
		t.Errorf("unwrapped height = %v, want line height %v", wide, lh)
	}

	// Unbounded width behaves the same.
	unbounded := m.HeightForWidth(text, 0)
	if math.Abs(unbounded-lh) > 0.01 {
		t.Errorf("unbounded height = %v, want line height %v", unbounded, lh)
	}

	// Narrow width forces wrapping.
	narrow := m.HeightForWidth(text, 80)
	if narrow < 2*lh {
		t.Errorf("height at width 80 = %v, want >= two lines (%v)", narrow, 2*lh)
	}

	// Height never decreases as width shrinks.
	prev := 0.0
	for _, w := range []float64{400, 200, 120, 80, 60} {
		h := m.HeightForWidth(text, w)
		if h < prev {
			t.Errorf("height at width %v = %v, less than %v at wider width", w, h, prev)
		}
		prev = h
	}
}

func TestHeightForWidthNewlines(t *testing.T) {
	m := newTestMeasurer(t, 12)
	lh := m.LineHeight()

	two := m.HeightForWidth("first\nsecond", 10000)
	if math.Abs(two-2*lh) > 0.01 {
		t.Errorf("two-line height = %v, want %v", two, 2*lh)
	}

	// An empty paragraph still takes a line.
	three := m.HeightForWidth("first\n\nthird", 10000)
	if math.Abs(three-3*lh) > 0.01 {
		t.Errorf("blank-middle height = %v, want %v", three, 3*lh)
	}
}

func TestHeightForWidthCaching(t *testing.T) {
	m := newTestMeasurer(t, 12)

	first := m.HeightForWidth("cached text", 120)
	misses := m.CacheStats().Misses

	second := m.HeightForWidth("cached text", 120)
	if second != first {
		t.Errorf("cached height = %v, want %v", second, first)
	}

	stats := m.CacheStats()
	if stats.Misses != misses {
		t.Errorf("second query missed the cache: misses %d -> %d", misses, stats.Misses)
	}
	if stats.Hits == 0 {
		t.Error("second query did not register a cache hit")
	}

	// Sub-pixel widths share a bucket.
	if got := m.HeightForWidth("cached text", 119.5); got != first {
		t.Errorf("height at width 119.5 = %v, want bucketed %v", got, first)
	}
}

func TestBaseDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want di.Direction
	}{
		{"latin", "hello", di.DirectionLTR},
		{"hebrew", "שלום", di.DirectionRTL},
		{"arabic", "مرحبا", di.DirectionRTL},
		{"digits only", "123", di.DirectionLTR},
		{"empty", "", di.DirectionLTR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := baseDirection([]rune(tt.text)); got != tt.want {
				t.Errorf("baseDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMeasureRTLText(t *testing.T) {
	m := newTestMeasurer(t, 12)

	// The test font has no Hebrew glyphs, but shaping an RTL run must
	// still produce a usable advance and line height.
	if adv := m.Advance("שלום"); adv <= 0 {
		t.Errorf("Advance(RTL) = %v, want > 0", adv)
	}
	if h := m.HeightForWidth("שלום עולם", 10000); h <= 0 {
		t.Errorf("HeightForWidth(RTL) = %v, want > 0", h)
	}
}

func TestMeasurerConcurrent(t *testing.T) {
	m := newTestMeasurer(t, 12)
	want := m.HeightForWidth("concurrent measurement", 90)

	done := make(chan float64, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- m.HeightForWidth("concurrent measurement", 90)
		}()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; got != want {
			t.Errorf("concurrent height = %v, want %v", got, want)
		}
	}
}
