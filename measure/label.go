package measure

// Label is a plot title or footer measured with a Measurer. It
// implements the parent package's LabelSource interface.
type Label struct {
	m     *Measurer
	text  string
	frame float64
}

// NewLabel creates a Label measuring text with m.
func NewLabel(m *Measurer, text string) *Label {
	return &Label{m: m, text: text}
}

// SetText replaces the label text.
func (l *Label) SetText(text string) { l.text = text }

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetFrameWidth sets the thickness of the frame drawn around the
// label. Negative values are treated as zero.
func (l *Label) SetFrameWidth(w float64) {
	if w < 0 {
		w = 0
	}
	l.frame = w
}

// IsEmpty reports whether the label has no text.
func (l *Label) IsEmpty() bool { return l.text == "" }

// FrameWidth returns the frame thickness.
func (l *Label) FrameWidth() float64 { return l.frame }

// HeightForWidth returns the height the label text needs when wrapped
// to the given width. The frame is not included; a layout pass adds
// FrameWidth per side itself unless frames are ignored.
func (l *Label) HeightForWidth(width float64) float64 {
	if l.text == "" {
		return 0
	}
	return l.m.HeightForWidth(l.text, width)
}
