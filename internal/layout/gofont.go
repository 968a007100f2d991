package layout

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GoFontMetrics measures text with real glyph advances from an OpenType
// font, defaulting to Go Regular. Runes the font has no glyph for fall
// back to the heuristic ratio so measurement never fails mid-layout.
//
// The measuring methods are safe for concurrent use; the shared sfnt
// buffer is guarded by a mutex.
type GoFontMetrics struct {
	font     *sfnt.Font
	fallback float64

	mu  sync.Mutex
	buf sfnt.Buffer
}

// NewGoFontMetrics returns metrics backed by the Go Regular font.
func NewGoFontMetrics() (*GoFontMetrics, error) {
	return NewFontMetrics(goregular.TTF)
}

// NewFontMetrics returns metrics backed by the given TTF/OTF font data.
func NewFontMetrics(ttf []byte) (*GoFontMetrics, error) {
	f, err := sfnt.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("layout: parse font: %w", err)
	}
	return &GoFontMetrics{font: f, fallback: defaultRuneWidthRatio}, nil
}

// MeasureText returns the summed glyph advances of text at the given
// font size.
func (m *GoFontMetrics) MeasureText(text string, fontSize float64) float64 {
	var width float64
	for _, r := range text {
		width += m.MeasureRune(r, fontSize)
	}
	return width
}

// MeasureRune returns the glyph advance of r at the given font size.
func (m *GoFontMetrics) MeasureRune(r rune, fontSize float64) float64 {
	ppem := fixed.Int26_6(math.Round(fontSize * 64))
	if ppem <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx, err := m.font.GlyphIndex(&m.buf, r)
	if err != nil || idx == 0 {
		return fontSize * m.fallback
	}
	adv, err := m.font.GlyphAdvance(&m.buf, idx, ppem, font.HintingNone)
	if err != nil {
		return fontSize * m.fallback
	}
	return float64(adv) / 64
}

// LineHeight returns font size times multiplier, matching the heuristic
// strategy so swapping metrics does not change vertical rhythm.
func (m *GoFontMetrics) LineHeight(fontSize, multiplier float64) float64 {
	return fontSize * multiplier
}
