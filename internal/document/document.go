// Package document defines the book model consumed by the layout engine:
// a Book holds ordered Chapters, and each Chapter holds ordered content
// Blocks. Chapter and block identifiers are derived deterministically so
// that parsing the same source twice yields the same tree.
package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlockType tags the kind of content a block carries.
type BlockType string

// BlockTypePage is the only block type currently produced: a page-marked
// run of body text.
const BlockTypePage BlockType = "page"

// Block is a discrete, ordered unit of chapter content.
type Block struct {
	ID      uuid.UUID `json:"id"`
	Order   int       `json:"order"`
	Type    BlockType `json:"type"`
	Content string    `json:"content"`
}

// Chapter is an ordered part of a book holding content blocks.
type Chapter struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Blocks    []Block   `json:"blocks"`
}

// Content joins the chapter's block contents with blank lines between
// them, in block order.
func (c *Chapter) Content() string {
	parts := make([]string, 0, len(c.Blocks))
	for _, b := range c.Blocks {
		parts = append(parts, b.Content)
	}
	return strings.Join(parts, "\n\n")
}

// Book is a complete document: metadata plus ordered chapters.
type Book struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Dedication string    `json:"dedication,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Chapters   []Chapter `json:"chapters"`
}

// New creates an empty book with a random identifier and current
// timestamps.
func New(title, author string) *Book {
	now := time.Now().UTC()
	return &Book{
		ID:        uuid.New(),
		Title:     title,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
		Chapters:  []Chapter{},
	}
}

// AddChapter appends a chapter with the given title and one block per
// content string. Empty content strings are skipped.
func (b *Book) AddChapter(title string, contents ...string) *Chapter {
	now := time.Now().UTC()
	order := len(b.Chapters)
	chapterID := ChapterID(b.ID, order, title)

	blocks := make([]Block, 0, len(contents))
	for _, content := range contents {
		if content == "" {
			continue
		}
		idx := len(blocks)
		blocks = append(blocks, Block{
			ID:      BlockID(chapterID, idx),
			Order:   idx,
			Type:    BlockTypePage,
			Content: content,
		})
	}

	b.Chapters = append(b.Chapters, Chapter{
		ID:        chapterID,
		Title:     title,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
		Blocks:    blocks,
	})
	b.UpdatedAt = now
	return &b.Chapters[len(b.Chapters)-1]
}

// ChapterID derives a deterministic chapter identifier from the book id,
// the chapter's order and its title.
func ChapterID(bookID uuid.UUID, order int, title string) uuid.UUID {
	return uuid.NewSHA1(bookID, []byte(fmt.Sprintf("%d-%s", order, title)))
}

// BlockID derives a deterministic block identifier from the owning
// chapter id and the block's order within the chapter.
func BlockID(chapterID uuid.UUID, order int) uuid.UUID {
	return uuid.NewSHA1(chapterID, []byte(fmt.Sprintf("block-%d", order)))
}

// TitleSourceID derives the synthetic source identifier used to attribute
// chapter-title fragments back to their chapter.
func TitleSourceID(chapterID uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(chapterID, []byte("title"))
}
