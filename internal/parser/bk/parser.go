// Package bk parses the plain-text .bk book format. A source starts with
// metadata directives (@title:, @author:, @id:, @dedication:), followed
// by chapters opened with '#chapter: Title'. Inside a chapter, '@page:'
// or '@block:' starts a new content block; everything else is content
// accumulated into the block in progress. Content is normalized to NFC
// so the same visible text always measures and identifies identically.
package bk

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/bindery/bindery/internal/document"
)

type parserState int

const (
	stateMetadata parserState = iota
	stateChapter
	stateBlock
)

type rawChapter struct {
	title  string
	order  int
	blocks []string
}

// Parser is a line-oriented .bk parser. Use ParseFile, Parse or
// ParseString; a Parser is single-use.
type Parser struct {
	state      parserState
	lineNumber int

	title         string
	author        string
	dedication    string
	id            uuid.UUID
	hasTitle      bool
	hasAuthor     bool
	hasDedication bool
	hasID         bool

	chapters []rawChapter
	current  *rawChapter
	block    []string
}

// ParseFile reads and parses a .bk file. The file's modification time
// serves as both creation and update timestamp on the resulting book.
func ParseFile(path string) (*document.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bk: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("bk: %w", err)
	}

	mod := info.ModTime().UTC()
	return Parse(f, mod, mod)
}

// ParseString parses .bk source held in memory with explicit timestamps.
func ParseString(content string, createdAt, updatedAt time.Time) (*document.Book, error) {
	return Parse(strings.NewReader(content), createdAt, updatedAt)
}

// Parse reads .bk source line by line and builds the book.
func Parse(r io.Reader, createdAt, updatedAt time.Time) (*document.Book, error) {
	p := &Parser{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bk: %w", err)
	}

	return p.finalize(createdAt, updatedAt)
}

func (p *Parser) parseLine(line string) error {
	p.lineNumber++
	line = norm.NFC.String(line)
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		return nil
	case strings.HasPrefix(trimmed, "#chapter:"):
		return p.parseChapterHeader(trimmed)
	case strings.HasPrefix(trimmed, "@page:") || strings.HasPrefix(trimmed, "@block:"):
		return p.parseBlockMarker()
	case strings.HasPrefix(trimmed, "@"):
		if p.state == stateMetadata || isMetadataDirective(trimmed) {
			return p.parseMetadata(trimmed)
		}
		// Unknown directive inside a chapter; keep it as content.
		p.accumulate(line)
		return nil
	default:
		p.accumulate(line)
		return nil
	}
}

func isMetadataDirective(line string) bool {
	for _, prefix := range []string{"@title:", "@author:", "@id:", "@dedication:"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func (p *Parser) parseMetadata(line string) error {
	field, value, ok := strings.Cut(line, ":")
	if !ok {
		return &MalformedMetadataError{Line: p.lineNumber, Reason: `expected "@field: value"`}
	}
	field = strings.TrimSpace(strings.TrimPrefix(field, "@"))
	value = strings.TrimSpace(value)

	switch field {
	case "title":
		if p.hasTitle {
			return &DuplicateMetadataError{Field: "title", Line: p.lineNumber}
		}
		p.title, p.hasTitle = value, true
	case "author":
		if p.hasAuthor {
			return &DuplicateMetadataError{Field: "author", Line: p.lineNumber}
		}
		p.author, p.hasAuthor = value, true
	case "id":
		if p.hasID {
			return &DuplicateMetadataError{Field: "id", Line: p.lineNumber}
		}
		id, err := uuid.Parse(value)
		if err != nil {
			return &InvalidIDError{Line: p.lineNumber, Err: err}
		}
		p.id, p.hasID = id, true
	case "dedication":
		if p.hasDedication {
			return &DuplicateMetadataError{Field: "dedication", Line: p.lineNumber}
		}
		p.dedication, p.hasDedication = value, true
	default:
		// Unknown metadata fields are ignored.
	}
	return nil
}

func (p *Parser) parseChapterHeader(line string) error {
	p.finishBlock()
	p.finishChapter()

	title := strings.TrimSpace(strings.TrimPrefix(line, "#chapter:"))
	if title == "" {
		return &MissingChapterTitleError{Line: p.lineNumber}
	}

	p.current = &rawChapter{title: title, order: len(p.chapters)}
	p.state = stateChapter
	return nil
}

func (p *Parser) parseBlockMarker() error {
	if p.current == nil {
		return &BlockBeforeChapterError{Line: p.lineNumber}
	}
	p.finishBlock()
	p.state = stateBlock
	return nil
}

func (p *Parser) accumulate(line string) {
	p.block = append(p.block, line)
}

// finishBlock closes the block in progress and attaches it to the
// current chapter. Content outside any chapter is dropped.
func (p *Parser) finishBlock() {
	if len(p.block) == 0 {
		return
	}
	content := strings.TrimSpace(strings.Join(p.block, "\n"))
	p.block = p.block[:0]

	if p.current != nil && content != "" {
		p.current.blocks = append(p.current.blocks, content)
	}
}

func (p *Parser) finishChapter() {
	if p.current != nil {
		p.chapters = append(p.chapters, *p.current)
		p.current = nil
	}
}

func (p *Parser) finalize(createdAt, updatedAt time.Time) (*document.Book, error) {
	p.finishBlock()
	p.finishChapter()

	if !p.hasTitle {
		return nil, &MissingMetadataError{Field: "title"}
	}
	if !p.hasAuthor {
		return nil, &MissingMetadataError{Field: "author"}
	}

	bookID := p.id
	if !p.hasID {
		bookID = uuid.New()
	}

	if len(p.chapters) == 0 {
		return nil, ErrNoChapters
	}

	chapters := make([]document.Chapter, 0, len(p.chapters))
	for _, rc := range p.chapters {
		chapterID := document.ChapterID(bookID, rc.order, rc.title)

		blocks := make([]document.Block, 0, len(rc.blocks))
		for i, content := range rc.blocks {
			blocks = append(blocks, document.Block{
				ID:      document.BlockID(chapterID, i),
				Order:   i,
				Type:    document.BlockTypePage,
				Content: content,
			})
		}

		chapters = append(chapters, document.Chapter{
			ID:        chapterID,
			Title:     rc.title,
			Order:     rc.order,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
			Blocks:    blocks,
		})
	}

	return &document.Book{
		ID:         bookID,
		Title:      p.title,
		Author:     p.author,
		Dedication: p.dedication,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
		Chapters:   chapters,
	}, nil
}
