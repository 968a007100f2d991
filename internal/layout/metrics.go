package layout

import "unicode/utf8"

// TextMetrics answers how wide text is and how tall a line is for a given
// font size. Implementations must be deterministic: identical inputs
// always yield identical outputs, or layout stops being reproducible.
type TextMetrics interface {
	// MeasureText returns the width of text at the given font size, in
	// the same unit as page geometry (points).
	MeasureText(text string, fontSize float64) float64

	// MeasureRune returns the width of a single rune at the given font
	// size.
	MeasureRune(r rune, fontSize float64) float64

	// LineHeight returns the height of one line for the given font size
	// and line-height multiplier.
	LineHeight(fontSize, multiplier float64) float64
}

// defaultRuneWidthRatio is the assumed average glyph width as a fraction
// of the font size.
const defaultRuneWidthRatio = 0.6

// HeuristicMetrics is a crude rune-count approximation of text width:
// every rune is RuneWidthRatio times the font size wide. It is cheap,
// deterministic and good enough for drafting layouts without font data.
type HeuristicMetrics struct {
	RuneWidthRatio float64
}

// NewHeuristicMetrics returns heuristic metrics with the default 0.6
// width ratio.
func NewHeuristicMetrics() *HeuristicMetrics {
	return &HeuristicMetrics{RuneWidthRatio: defaultRuneWidthRatio}
}

// MeasureText returns rune count times ratio times font size.
func (m *HeuristicMetrics) MeasureText(text string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(text)) * fontSize * m.RuneWidthRatio
}

// MeasureRune returns ratio times font size for any rune.
func (m *HeuristicMetrics) MeasureRune(r rune, fontSize float64) float64 {
	return fontSize * m.RuneWidthRatio
}

// LineHeight returns font size times multiplier.
func (m *HeuristicMetrics) LineHeight(fontSize, multiplier float64) float64 {
	return fontSize * multiplier
}
