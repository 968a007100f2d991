package document

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewBook(t *testing.T) {
	book := New("Test Book", "An Author")

	if book.ID == uuid.Nil {
		t.Error("expected a non-nil book id")
	}
	if book.Title != "Test Book" {
		t.Errorf("expected title %q, got %q", "Test Book", book.Title)
	}
	if book.Author != "An Author" {
		t.Errorf("expected author %q, got %q", "An Author", book.Author)
	}
	if len(book.Chapters) != 0 {
		t.Errorf("expected no chapters, got %d", len(book.Chapters))
	}
}

func TestAddChapterOrdering(t *testing.T) {
	book := New("Test", "Author")
	book.AddChapter("First", "one")
	book.AddChapter("Second", "two")
	book.AddChapter("Third", "three")

	if len(book.Chapters) != 3 {
		t.Fatalf("expected 3 chapters, got %d", len(book.Chapters))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if book.Chapters[i].Title != want {
			t.Errorf("chapter %d: expected title %q, got %q", i, want, book.Chapters[i].Title)
		}
		if book.Chapters[i].Order != i {
			t.Errorf("chapter %d: expected order %d, got %d", i, i, book.Chapters[i].Order)
		}
	}
}

func TestAddChapterSkipsEmptyContent(t *testing.T) {
	book := New("Test", "Author")
	ch := book.AddChapter("Chapter", "", "kept", "")

	if len(ch.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(ch.Blocks))
	}
	if ch.Blocks[0].Content != "kept" {
		t.Errorf("expected block content %q, got %q", "kept", ch.Blocks[0].Content)
	}
	if ch.Blocks[0].Type != BlockTypePage {
		t.Errorf("expected block type %q, got %q", BlockTypePage, ch.Blocks[0].Type)
	}
}

func TestChapterIDDeterministic(t *testing.T) {
	bookID := uuid.MustParse("550e8400-e29b-41d4-a009-426655440000")

	a := ChapterID(bookID, 0, "Intro")
	b := ChapterID(bookID, 0, "Intro")
	if a != b {
		t.Error("same inputs should produce the same chapter id")
	}

	c := ChapterID(bookID, 1, "Intro")
	if a == c {
		t.Error("different order should produce a different chapter id")
	}
}

func TestBlockIDDeterministic(t *testing.T) {
	chapterID := uuid.MustParse("550e8400-e29b-41d4-a009-426655440000")

	if BlockID(chapterID, 0) != BlockID(chapterID, 0) {
		t.Error("same inputs should produce the same block id")
	}
	if BlockID(chapterID, 0) == BlockID(chapterID, 1) {
		t.Error("different order should produce a different block id")
	}
}

func TestChapterContent(t *testing.T) {
	book := New("Test", "Author")
	ch := book.AddChapter("Chapter", "First page", "Second page")

	content := ch.Content()
	if content != "First page\n\nSecond page" {
		t.Errorf("unexpected joined content: %q", content)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Book: Chapter 1", "My Book_ Chapter 1"},
		{"Valid-Name_123.txt", "Valid-Name_123.txt"},
		{`a/b\c*d?e"f<g>h|i`, "a_b_c_d_e_f_g_h_i"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
