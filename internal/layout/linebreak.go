package layout

import (
	"strings"

	"github.com/google/uuid"
)

// LineBreaker wraps text into lines no wider than a maximum width using
// greedy word wrapping: words are appended to the current line until one
// would overflow, then a new line starts. No hyphenation, no truncation;
// a word wider than the maximum still occupies a line of its own.
type LineBreaker struct {
	metrics  TextMetrics
	maxWidth float64
}

// NewLineBreaker creates a line breaker for the given metrics and maximum
// line width.
func NewLineBreaker(metrics TextMetrics, maxWidth float64) *LineBreaker {
	return &LineBreaker{metrics: metrics, maxWidth: maxWidth}
}

// BreakLines wraps text under a single style, attributing every emitted
// fragment to sourceID. Empty or all-whitespace text yields no lines.
// Whitespace runs are collapsed to single separators.
func (b *LineBreaker) BreakLines(text string, style TextStyle, sourceID uuid.UUID) []TextLine {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	spaceWidth := b.metrics.MeasureRune(' ', style.FontSize)

	var lines []TextLine
	var current []string
	var currentWidth float64

	for _, word := range words {
		wordWidth := b.metrics.MeasureText(word, style.FontSize)

		widthWithWord := wordWidth
		if len(current) > 0 {
			widthWithWord = currentWidth + spaceWidth + wordWidth
		}

		if widthWithWord <= b.maxWidth {
			current = append(current, word)
			currentWidth = widthWithWord
			continue
		}

		if len(current) > 0 {
			lines = append(lines, b.buildLine(current, style, sourceID, len(lines)))
		}
		current = []string{word}
		currentWidth = wordWidth
	}

	if len(current) > 0 {
		lines = append(lines, b.buildLine(current, style, sourceID, len(lines)))
	}

	return lines
}

// buildLine joins words with single spaces into a one-fragment line at
// the vertical offset implied by its index.
func (b *LineBreaker) buildLine(words []string, style TextStyle, sourceID uuid.UUID, index int) TextLine {
	lineHeight := b.metrics.LineHeight(style.FontSize, style.LineHeight)
	return TextLine{
		YOffset: float64(index) * lineHeight,
		Fragments: []TextFragment{{
			Text:          strings.Join(words, " "),
			XOffset:       0,
			Style:         style,
			SourceBlockID: sourceID,
		}},
	}
}
