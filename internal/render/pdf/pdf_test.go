package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bindery/bindery/internal/document"
	"github.com/bindery/bindery/internal/layout"
	"github.com/bindery/bindery/internal/pagination"
)

func testTree(t *testing.T) (layout.RenderTree, layout.Config) {
	t.Helper()
	cfg := layout.DefaultConfig()
	book := document.New("Render Test", "Author")
	book.AddChapter("Chapter One", "Hello world from the renderer.")

	tree, err := pagination.NewPaginator(cfg, layout.NewHeuristicMetrics()).Paginate(book)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	return tree, cfg
}

func TestRenderWritesPDF(t *testing.T) {
	tree, cfg := testTree(t)
	out := filepath.Join(t.TempDir(), "out.pdf")

	r := NewRenderer()
	err := r.Render(tree, cfg.PageSize, out, RenderOptions{Title: "Render Test", Author: "Author"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", data[:min(len(data), 8)])
	}
}

func TestRenderEmptyTree(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.pdf")

	r := NewRenderer()
	err := r.Render(layout.RenderTree{}, layout.PageSizeLetter, out, RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected an output file even for zero pages: %v", err)
	}
}
