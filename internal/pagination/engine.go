// Package pagination turns a book into a positioned render tree: it wraps
// chapter titles and content blocks with the layout package's line
// breaker and distributes the resulting lines across pages, alternating
// left and right page margins and splitting long blocks at line
// boundaries.
package pagination

import (
	"github.com/bindery/bindery/internal/document"
	"github.com/bindery/bindery/internal/layout"
)

// Engine holds a reusable configuration and measurement strategy and runs
// one fresh Paginator per book. Engines may be shared across goroutines
// as long as the metrics implementation is safe for concurrent use.
type Engine struct {
	config  layout.Config
	metrics layout.TextMetrics
}

// NewEngine creates an engine with the default configuration and
// heuristic metrics.
func NewEngine() *Engine {
	return &Engine{
		config:  layout.DefaultConfig(),
		metrics: layout.NewHeuristicMetrics(),
	}
}

// SetConfig replaces the engine's layout configuration.
func (e *Engine) SetConfig(config layout.Config) {
	e.config = config
}

// SetMetrics replaces the engine's text measurement strategy.
func (e *Engine) SetMetrics(metrics layout.TextMetrics) {
	e.metrics = metrics
}

// Paginate lays out the book with a fresh Paginator. No layout state
// survives between calls.
func (e *Engine) Paginate(book *document.Book) (layout.RenderTree, error) {
	return NewPaginator(e.config, e.metrics).Paginate(book)
}
