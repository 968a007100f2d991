// Package pdf draws a laid-out render tree into a PDF document. Every
// frame already carries absolute page coordinates, so rendering is a
// straight transcription with no layout decisions of its own.
package pdf

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/bindery/bindery/internal/layout"
)

// Renderer handles rendering a render tree to PDF
type Renderer struct {
	// Debug enables verbose logging to stdout
	Debug bool
	// BodyFont and TitleFont name core PDF fonts (Helvetica, Times, Courier)
	BodyFont  string
	TitleFont string
}

// RenderOptions contains document metadata for the PDF
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
}

// NewRenderer creates a new PDF renderer with core fonts
func NewRenderer() *Renderer {
	return &Renderer{
		BodyFont:  "Helvetica",
		TitleFont: "Helvetica",
	}
}

// Render writes the render tree to a PDF file at outputPath
func (r *Renderer) Render(tree layout.RenderTree, size layout.PageSize, outputPath string, options RenderOptions) error {
	pdf := r.build(tree, size, options)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if r.Debug {
		fmt.Printf("Wrote %d pages to %s\n", len(tree.Pages), outputPath)
	}
	return nil
}

func (r *Renderer) build(tree layout.RenderTree, size layout.PageSize, options RenderOptions) *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})

	// Frames carry their own positions; automatic breaking would fight them.
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(options.Title, true)
	pdf.SetAuthor(options.Author, true)
	pdf.SetSubject(options.Subject, true)
	pdf.SetKeywords(options.Keywords, true)
	pdf.SetCreator(options.Creator, true)

	if r.Debug {
		fmt.Printf("Rendering %d pages\n", len(tree.Pages))
	}

	for _, page := range tree.Pages {
		pdf.AddPage()
		for _, frame := range page.Frames {
			r.renderFrame(pdf, frame)
		}
	}

	return pdf
}

// renderFrame draws every fragment of a frame at its absolute position.
func (r *Renderer) renderFrame(pdf *fpdf.Fpdf, frame layout.TextFrame) {
	family := r.BodyFont
	style := ""
	if frame.Type == layout.FrameChapterTitle {
		family = r.TitleFont
		style = "B"
	}

	for _, line := range frame.Lines {
		for _, frag := range line.Fragments {
			pdf.SetFont(family, style, frag.Style.FontSize)
			// Text positions at the baseline; the fragment's y offset is
			// the line top, so drop by one font size.
			x := frame.Bounds.X + frag.XOffset
			y := frame.Bounds.Y + line.YOffset + frag.Style.FontSize
			pdf.Text(x, y, frag.Text)

			if r.Debug {
				fmt.Printf("  text %q at (%.1f, %.1f)\n", frag.Text, x, y)
			}
		}
	}
}
