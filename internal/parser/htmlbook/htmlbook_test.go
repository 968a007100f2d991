package htmlbook

import (
	"errors"
	"testing"
)

func TestParseBasicDocument(t *testing.T) {
	content := `<!DOCTYPE html>
<html>
<head>
<title>A Small Book</title>
<meta name="author" content="Jane Writer">
</head>
<body>
<h1>First Chapter</h1>
<p>Opening paragraph.</p>
<p>Second paragraph.</p>
<h1>Second Chapter</h1>
<p>Closing paragraph.</p>
</body>
</html>`

	book, err := ParseString(content)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if book.Title != "A Small Book" {
		t.Errorf("title = %q", book.Title)
	}
	if book.Author != "Jane Writer" {
		t.Errorf("author = %q", book.Author)
	}
	if len(book.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(book.Chapters))
	}
	if book.Chapters[0].Title != "First Chapter" {
		t.Errorf("chapter 0 title = %q", book.Chapters[0].Title)
	}
	if len(book.Chapters[0].Blocks) != 2 {
		t.Errorf("chapter 0 should have 2 blocks, got %d", len(book.Chapters[0].Blocks))
	}
	if book.Chapters[0].Blocks[0].Content != "Opening paragraph." {
		t.Errorf("block = %q", book.Chapters[0].Blocks[0].Content)
	}
	if len(book.Chapters[1].Blocks) != 1 {
		t.Errorf("chapter 1 should have 1 block, got %d", len(book.Chapters[1].Blocks))
	}
}

func TestParseCollapsesWhitespaceAndMarkup(t *testing.T) {
	content := `<html><body>
<h2>  Spaced   Title </h2>
<p>Text with
  line breaks and <em>inline</em> markup.</p>
</body></html>`

	book, err := ParseString(content)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if book.Chapters[0].Title != "Spaced Title" {
		t.Errorf("title = %q", book.Chapters[0].Title)
	}
	if got := book.Chapters[0].Blocks[0].Content; got != "Text with line breaks and inline markup." {
		t.Errorf("block = %q", got)
	}
}

func TestParseMissingMetadataDefaults(t *testing.T) {
	content := `<html><body><h1>Only Chapter</h1><p>Text.</p></body></html>`

	book, err := ParseString(content)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if book.Title != "Untitled" {
		t.Errorf("title = %q", book.Title)
	}
	if book.Author != "Unknown" {
		t.Errorf("author = %q", book.Author)
	}
}

func TestParseParagraphsBeforeHeadingIgnored(t *testing.T) {
	content := `<html><body>
<p>Front matter outside any chapter.</p>
<h1>Chapter</h1>
<p>Real content.</p>
</body></html>`

	book, err := ParseString(content)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(book.Chapters) != 1 || len(book.Chapters[0].Blocks) != 1 {
		t.Fatalf("unexpected structure: %+v", book.Chapters)
	}
	if book.Chapters[0].Blocks[0].Content != "Real content." {
		t.Errorf("block = %q", book.Chapters[0].Blocks[0].Content)
	}
}

func TestParseNoHeadings(t *testing.T) {
	content := `<html><body><p>Just a paragraph.</p></body></html>`

	_, err := ParseString(content)
	if !errors.Is(err, ErrNoChapters) {
		t.Fatalf("expected ErrNoChapters, got %v", err)
	}
}

func TestParseEmptyParagraphsSkipped(t *testing.T) {
	content := `<html><body><h1>Ch</h1><p>  </p><p>Kept.</p></body></html>`

	book, err := ParseString(content)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(book.Chapters[0].Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(book.Chapters[0].Blocks))
	}
}
