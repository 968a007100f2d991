package layout

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

var testSourceID = uuid.MustParse("550e8400-e29b-41d4-a009-426655440000")

func defaultStyle() TextStyle {
	return TextStyle{FontSize: 12, LineHeight: 1.5, Alignment: AlignLeft}
}

func TestBreakLinesEmptyText(t *testing.T) {
	b := NewLineBreaker(NewHeuristicMetrics(), 100)

	for _, text := range []string{"", "   ", "\n\t  \n"} {
		if lines := b.BreakLines(text, defaultStyle(), testSourceID); len(lines) != 0 {
			t.Errorf("BreakLines(%q): expected no lines, got %d", text, len(lines))
		}
	}
}

func TestBreakLinesSingleWord(t *testing.T) {
	b := NewLineBreaker(NewHeuristicMetrics(), 100)

	lines := b.BreakLines("Hello", defaultStyle(), testSourceID)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if len(lines[0].Fragments) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(lines[0].Fragments))
	}
	frag := lines[0].Fragments[0]
	if frag.Text != "Hello" {
		t.Errorf("expected fragment text %q, got %q", "Hello", frag.Text)
	}
	if frag.XOffset != 0 {
		t.Errorf("expected zero x offset, got %g", frag.XOffset)
	}
	if frag.SourceBlockID != testSourceID {
		t.Errorf("expected source id %v, got %v", testSourceID, frag.SourceBlockID)
	}
}

func TestBreakLinesMultipleWordsOneLine(t *testing.T) {
	b := NewLineBreaker(NewHeuristicMetrics(), 1000)

	lines := b.BreakLines("Hello world test", defaultStyle(), testSourceID)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if got := lines[0].Text(); got != "Hello world test" {
		t.Errorf("expected %q, got %q", "Hello world test", got)
	}
}

func TestBreakLinesWrapsNarrowWidth(t *testing.T) {
	b := NewLineBreaker(NewHeuristicMetrics(), 50)

	lines := b.BreakLines("Hello world this is a test", defaultStyle(), testSourceID)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d", len(lines))
	}
}

func TestBreakLinesNoLineExceedsMaxWidth(t *testing.T) {
	m := NewHeuristicMetrics()
	style := defaultStyle()
	text := "the quick brown fox jumps over the lazy dog again and again"

	// Any max width at least as wide as the widest word keeps every
	// emitted line within budget.
	widest := 0.0
	for _, w := range strings.Fields(text) {
		if width := m.MeasureText(w, style.FontSize); width > widest {
			widest = width
		}
	}

	for _, maxWidth := range []float64{widest, widest * 1.5, widest * 3} {
		b := NewLineBreaker(m, maxWidth)
		for i, line := range b.BreakLines(text, style, testSourceID) {
			if width := m.MeasureText(line.Text(), style.FontSize); width > maxWidth {
				t.Errorf("maxWidth %g: line %d measures %g", maxWidth, i, width)
			}
		}
	}
}

func TestBreakLinesPreservesWordSequence(t *testing.T) {
	b := NewLineBreaker(NewHeuristicMetrics(), 60)
	text := "  one   two\tthree\nfour five  six seven "

	lines := b.BreakLines(text, defaultStyle(), testSourceID)

	var got []string
	for _, line := range lines {
		got = append(got, strings.Fields(line.Text())...)
	}
	want := strings.Fields(text)
	if len(got) != len(want) {
		t.Fatalf("expected %d words, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestBreakLinesOversizedWordKeptWhole(t *testing.T) {
	b := NewLineBreaker(NewHeuristicMetrics(), 50)

	lines := b.BreakLines("Supercalifragilisticexpialidocious", defaultStyle(), testSourceID)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if got := lines[0].Text(); got != "Supercalifragilisticexpialidocious" {
		t.Errorf("oversized word mangled: %q", got)
	}
}

func TestBreakLinesOversizedWordBetweenOthers(t *testing.T) {
	m := NewHeuristicMetrics()
	style := defaultStyle()
	// "aa" fits, the long word does not.
	maxWidth := m.MeasureText("aaaa", style.FontSize)
	b := NewLineBreaker(m, maxWidth)

	lines := b.BreakLines("aa aaaaaaaaaaaa aa", style, testSourceID)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[1].Text() != "aaaaaaaaaaaa" {
		t.Errorf("expected the oversized word alone on line 2, got %q", lines[1].Text())
	}
}

func TestBreakLinesCollapsesWhitespace(t *testing.T) {
	b := NewLineBreaker(NewHeuristicMetrics(), 1000)

	lines := b.BreakLines("Hello    world", defaultStyle(), testSourceID)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if got := lines[0].Text(); got != "Hello world" {
		t.Errorf("expected %q, got %q", "Hello world", got)
	}
}

func TestBreakLinesExactFitStaysOnLine(t *testing.T) {
	m := NewHeuristicMetrics()
	style := defaultStyle()

	// Width of exactly "aa bb": inclusive comparison keeps both words on
	// one line.
	maxWidth := m.MeasureText("aa", style.FontSize)*2 + m.MeasureRune(' ', style.FontSize)
	b := NewLineBreaker(m, maxWidth)

	lines := b.BreakLines("aa bb", style, testSourceID)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line for exact fit, got %d", len(lines))
	}

	// One unit less and the second word wraps.
	b = NewLineBreaker(m, maxWidth-0.001)
	lines = b.BreakLines("aa bb", style, testSourceID)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines just under the exact fit, got %d", len(lines))
	}
}

func TestBreakLinesYOffsets(t *testing.T) {
	m := NewHeuristicMetrics()
	style := defaultStyle()
	b := NewLineBreaker(m, 50)

	lines := b.BreakLines("word1 word2 word3 word4", style, testSourceID)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d", len(lines))
	}

	lineHeight := m.LineHeight(style.FontSize, style.LineHeight)
	for i, line := range lines {
		want := float64(i) * lineHeight
		if line.YOffset != want {
			t.Errorf("line %d: expected y offset %g, got %g", i, want, line.YOffset)
		}
	}
}
