package measure

import (
	"math"
	"testing"

	"github.com/gogpu/plotlayout"
	"github.com/gogpu/plotlayout/geom"
)

func TestLabelEmpty(t *testing.T) {
	m := newTestMeasurer(t, 12)

	l := NewLabel(m, "")
	if !l.IsEmpty() {
		t.Error("empty label: IsEmpty() = false")
	}
	if got := l.HeightForWidth(200); got != 0 {
		t.Errorf("empty label height = %v, want 0", got)
	}

	l.SetText("Title")
	if l.IsEmpty() {
		t.Error("after SetText: IsEmpty() = true")
	}
	if l.Text() != "Title" {
		t.Errorf("Text() = %q, want %q", l.Text(), "Title")
	}
}

func TestLabelFrame(t *testing.T) {
	m := newTestMeasurer(t, 12)

	l := NewLabel(m, "Framed Title")
	bare := l.HeightForWidth(400)

	l.SetFrameWidth(3)
	if l.FrameWidth() != 3 {
		t.Errorf("FrameWidth() = %v, want 3", l.FrameWidth())
	}
	// The frame is reported separately and never baked into the
	// height; layout passes add it themselves.
	if got := l.HeightForWidth(400); got != bare {
		t.Errorf("framed height = %v, want bare %v", got, bare)
	}

	l.SetFrameWidth(-1)
	if l.FrameWidth() != 0 {
		t.Errorf("negative frame clamps to 0, got %v", l.FrameWidth())
	}
}

// TestFramedTitleLayout checks a layout pass counts the title frame
// exactly once, and not at all when frames are ignored.
func TestFramedTitleLayout(t *testing.T) {
	m := newTestMeasurer(t, 12)

	title := NewLabel(m, "Plot Title")
	title.SetFrameWidth(3)
	content := math.Ceil(m.HeightForWidth("Plot Title", 800))

	src := plotlayout.Sources{Title: title, Canvas: &plotlayout.FixedCanvas{}}
	rect := geom.NewRect(0, 0, 800, 600)

	l := plotlayout.NewLayout()
	l.Update(src, rect, 0)
	if got := l.TitleRect().H; got != content+6 {
		t.Errorf("title band = %v, want content %v plus frame on both sides", got, content)
	}

	l.Update(src, rect, plotlayout.IgnoreFrames)
	if got := l.TitleRect().H; got != content {
		t.Errorf("frames ignored: title band = %v, want %v", got, content)
	}
}

func TestLabelWraps(t *testing.T) {
	m := newTestMeasurer(t, 12)
	l := NewLabel(m, "a longer plot title that needs more than one line")

	wide := l.HeightForWidth(m.Advance(l.Text()) + 10)
	narrow := l.HeightForWidth(100)
	if narrow <= wide {
		t.Errorf("narrow height = %v, want > wide height %v", narrow, wide)
	}
}
