// Package api is the public surface of the converter: it loads a book
// source, lays it out into a render tree and optionally renders the
// result to PDF or JSON.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bindery/bindery/internal/document"
	"github.com/bindery/bindery/internal/layout"
	"github.com/bindery/bindery/internal/pagination"
	"github.com/bindery/bindery/internal/parser/bk"
	"github.com/bindery/bindery/internal/parser/htmlbook"
	"github.com/bindery/bindery/internal/render/pdf"
	"github.com/bindery/bindery/internal/res"
)

// Converter is the main API for laying out books and producing PDFs
type Converter struct {
	options Options
	loader  *res.Loader
}

// New creates a converter from the default options with any overrides
// applied
func New(opts ...Option) *Converter {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return NewWithOptions(options)
}

// NewWithOptions creates a converter with the specified options
func NewWithOptions(options Options) *Converter {
	c := &Converter{
		options: options,
		loader:  res.NewLoader(""),
	}
	for _, path := range options.ResourcePaths {
		c.loader.AddSearchPath(path)
	}
	return c
}

// Options returns a copy of the converter's options
func (c *Converter) Options() Options {
	return c.options
}

// Config builds the layout configuration described by the options
func (c *Converter) Config() layout.Config {
	return layout.Config{
		PageSize: layout.PageSize{Width: c.options.PageWidth, Height: c.options.PageHeight},
		Margins: layout.Margins{
			Top:    c.options.MarginTop,
			Bottom: c.options.MarginBottom,
			Inner:  c.options.MarginInner,
			Outer:  c.options.MarginOuter,
		},
		BodyStyle: layout.TextStyle{
			FontSize:   c.options.BodyFontSize,
			LineHeight: c.options.BodyLineHeight,
			Alignment:  layout.AlignLeft,
		},
		TitleStyle: layout.TextStyle{
			FontSize:   c.options.TitleFontSize,
			LineHeight: c.options.TitleLineHeight,
			Alignment:  layout.AlignLeft,
		},
		ChaptersStartRight: c.options.ChaptersStartRight,
		PageNumbers:        c.options.PageNumbers,
	}
}

// metrics picks the measurement strategy the options ask for. When the
// embedded font cannot be parsed the heuristic takes over.
func (c *Converter) metrics() layout.TextMetrics {
	if c.options.UseGoFontMetrics {
		m, err := layout.NewGoFontMetrics()
		if err == nil {
			return m
		}
		if c.options.Debug {
			fmt.Printf("Font metrics unavailable, falling back to heuristic: %v\n", err)
		}
	}
	return layout.NewHeuristicMetrics()
}

// LoadBook loads and parses a book source from a file path or URL.
// .bk and HTML sources are detected by extension and content type.
func (c *Converter) LoadBook(ref string) (*document.Book, error) {
	resource, err := c.loader.LoadBook(ref)
	if err != nil {
		return nil, fmt.Errorf("load book: %w", err)
	}

	switch resource.Type {
	case res.ResourceTypeHTML:
		book, err := htmlbook.Parse(resource.GetReader())
		if err != nil {
			return nil, fmt.Errorf("parse html book: %w", err)
		}
		return book, nil
	default:
		now := time.Now().UTC()
		book, err := bk.Parse(resource.GetReader(), now, now)
		if err != nil {
			return nil, fmt.Errorf("parse book: %w", err)
		}
		return book, nil
	}
}

// Layout lays out a book and returns its render tree
func (c *Converter) Layout(book *document.Book) (layout.RenderTree, error) {
	engine := pagination.NewEngine()
	engine.SetConfig(c.Config())
	engine.SetMetrics(c.metrics())

	tree, err := engine.Paginate(book)
	if err != nil {
		return layout.RenderTree{}, err
	}

	if c.options.Debug {
		fmt.Printf("Laid out %d chapters onto %d pages\n",
			tree.Metadata.TotalChapters, tree.Metadata.TotalPages)
	}
	return tree, nil
}

// LayoutJSON lays out a book and returns the render tree as indented
// JSON
func (c *Converter) LayoutJSON(book *document.Book) ([]byte, error) {
	tree, err := c.Layout(book)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(tree, "", "  ")
}

// RenderToFile renders a laid-out tree to a PDF file
func (c *Converter) RenderToFile(book *document.Book, tree layout.RenderTree, outputPath string) error {
	renderer := pdf.NewRenderer()
	renderer.Debug = c.options.Debug

	options := pdf.RenderOptions{
		Title:    c.options.Title,
		Author:   c.options.Author,
		Subject:  c.options.Subject,
		Keywords: c.options.Keywords,
		Creator:  "bindery",
	}
	if options.Title == "" {
		options.Title = book.Title
	}
	if options.Author == "" {
		options.Author = book.Author
	}

	size := layout.PageSize{Width: c.options.PageWidth, Height: c.options.PageHeight}
	return renderer.Render(tree, size, outputPath, options)
}

// ConvertFile loads a book source and writes the rendered PDF to
// outputPath
func (c *Converter) ConvertFile(ref, outputPath string) error {
	book, err := c.LoadBook(ref)
	if err != nil {
		return err
	}
	tree, err := c.Layout(book)
	if err != nil {
		return err
	}
	return c.RenderToFile(book, tree, outputPath)
}

// Convert loads a book source and writes the rendered PDF to the given
// writer
func (c *Converter) Convert(ref string, output io.Writer) error {
	tempFile, err := os.CreateTemp("", "bindery-*.pdf")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tempFile.Name())
	defer tempFile.Close()

	if err := c.ConvertFile(ref, tempFile.Name()); err != nil {
		return err
	}

	if _, err := tempFile.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek temporary file: %w", err)
	}
	if _, err := io.Copy(output, tempFile); err != nil {
		return fmt.Errorf("failed to copy PDF to output: %w", err)
	}
	return nil
}
