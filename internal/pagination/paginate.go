package pagination

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/bindery/bindery/internal/document"
	"github.com/bindery/bindery/internal/layout"
)

// Paginator walks a book chapter by chapter and distributes wrapped lines
// across pages. It owns all cross-page state: the page under
// construction, the finalized pages and the page counter. A Paginator is
// single-use; create a fresh one per layout call.
type Paginator struct {
	config  layout.Config
	metrics layout.TextMetrics

	bookID  uuid.UUID
	page    *pageBuilder
	pages   []layout.PageRender
	counter int
}

// pageBuilder tracks the vertical fill state of the page being assembled.
type pageBuilder struct {
	frames []layout.TextFrame
	fill   float64
	max    float64
}

func newPageBuilder(max float64) *pageBuilder {
	return &pageBuilder{frames: make([]layout.TextFrame, 0), max: max}
}

// available returns the vertical space left on the page.
func (p *pageBuilder) available() float64 {
	return p.max - p.fill
}

// fits reports whether a frame of the given height still fits.
func (p *pageBuilder) fits(height float64) bool {
	return p.available() >= height
}

// add appends a frame and advances the fill offset. The advance may
// exceed the frame height when the caller reserves trailing spacing.
func (p *pageBuilder) add(frame layout.TextFrame, advance float64) {
	p.frames = append(p.frames, frame)
	p.fill += advance
}

// NewPaginator creates a paginator for the given configuration and
// metrics. The configuration is not validated here; Paginate does that
// before producing any page.
func NewPaginator(config layout.Config, metrics layout.TextMetrics) *Paginator {
	return &Paginator{
		config:  config,
		metrics: metrics,
		page:    newPageBuilder(config.ContentHeight()),
		pages:   make([]layout.PageRender, 0),
	}
}

// Paginate lays out the whole book and returns the render tree. The
// configuration is validated first; no partial result is ever returned.
func (p *Paginator) Paginate(book *document.Book) (layout.RenderTree, error) {
	if err := p.config.Validate(); err != nil {
		return layout.RenderTree{}, fmt.Errorf("pagination: %w", err)
	}
	p.bookID = book.ID

	for i := range book.Chapters {
		if i > 0 && p.config.ChaptersStartRight && p.counter%2 == 0 {
			// A left page is under construction; close it, even partially
			// filled or empty, so the chapter title lands on a right page.
			p.finalizePage()
		}
		p.paginateChapter(&book.Chapters[i])
	}

	if len(p.page.frames) > 0 {
		p.finalizePage()
	}

	return layout.RenderTree{
		BookID: book.ID,
		Pages:  p.pages,
		Metadata: layout.RenderMetadata{
			TotalPages:    len(p.pages),
			TotalChapters: len(book.Chapters),
		},
	}, nil
}

func (p *Paginator) paginateChapter(chapter *document.Chapter) {
	p.addChapterTitle(chapter)
	for i := range chapter.Blocks {
		p.addBlock(&chapter.Blocks[i])
	}
}

// addChapterTitle wraps and places the chapter title frame, moving to a
// fresh page first when the title does not fit. An empty title is
// skipped silently.
func (p *Paginator) addChapterTitle(chapter *document.Chapter) {
	style := p.config.TitleStyle
	side := p.side()
	width := p.config.ContentWidth(side)

	breaker := layout.NewLineBreaker(p.metrics, width)
	lines := breaker.BreakLines(chapter.Title, style, document.TitleSourceID(chapter.ID))
	if len(lines) == 0 {
		return
	}

	height := float64(len(lines)) * p.metrics.LineHeight(style.FontSize, style.LineHeight)
	// One font-size unit of breathing room between the title and the
	// first body frame.
	advance := height + style.FontSize

	if !p.page.fits(advance) && len(p.page.frames) > 0 {
		p.finalizePage()
		side = p.side()
	}

	frame := layout.TextFrame{
		ID: p.frameID(),
		Bounds: layout.Rect{
			X:      p.config.LeftMargin(side),
			Y:      p.config.Margins.Top + p.page.fill,
			Width:  p.config.ContentWidth(side),
			Height: height,
		},
		Lines: lines,
		Type:  layout.FrameChapterTitle,
	}
	p.page.add(frame, advance)
}

// addBlock wraps one content block and places its lines, splitting across
// pages as needed. Empty blocks contribute nothing.
func (p *Paginator) addBlock(block *document.Block) {
	style := p.config.BodyStyle
	width := p.config.ContentWidth(p.side())

	breaker := layout.NewLineBreaker(p.metrics, width)
	lines := breaker.BreakLines(block.Content, style, block.ID)
	if len(lines) == 0 {
		return
	}

	p.placeLines(lines, style)
}

// placeLines drains a line sequence onto as many pages as it needs: place
// the whole lines that fit as one frame, finalize, continue. Splits only
// at line boundaries. Iterative by design; a long block may cross
// arbitrarily many pages.
func (p *Paginator) placeLines(lines []layout.TextLine, style layout.TextStyle) {
	lineHeight := p.metrics.LineHeight(style.FontSize, style.LineHeight)

	for len(lines) > 0 {
		fit := 0
		var height float64
		for i := range lines {
			if !p.page.fits(height + lineHeight) {
				break
			}
			height += lineHeight
			fit = i + 1
		}

		if fit == 0 {
			if len(p.page.frames) > 0 {
				// Page already holds content; retry on a fresh one.
				p.finalizePage()
				continue
			}
			// A single line taller than an empty page: place it anyway
			// rather than loop forever.
			fit = 1
			height = lineHeight
		}

		fitting := lines[:fit]
		lines = lines[fit:]

		// Offsets restart at the top of each frame.
		for i := range fitting {
			fitting[i].YOffset = float64(i) * lineHeight
		}

		side := p.side()
		frame := layout.TextFrame{
			ID: p.frameID(),
			Bounds: layout.Rect{
				X:      p.config.LeftMargin(side),
				Y:      p.config.Margins.Top + p.page.fill,
				Width:  p.config.ContentWidth(side),
				Height: height,
			},
			Lines: fitting,
			Type:  layout.FrameBodyText,
		}
		p.page.add(frame, height)

		if len(lines) > 0 {
			p.finalizePage()
		}
	}
}

// finalizePage snapshots the page under construction, assigns its number
// and side, and starts a fresh builder.
func (p *Paginator) finalizePage() {
	side := p.side()
	page := layout.PageRender{
		Number: p.counter + 1,
		Side:   side,
		Frames: p.page.frames,
	}
	if p.config.PageNumbers {
		page.Frames = append(page.Frames, p.pageNumberFrame(page.Number, side))
	}

	p.pages = append(p.pages, page)
	p.counter++
	p.page = newPageBuilder(p.config.ContentHeight())
}

// pageNumberFrame builds a centered page-number frame in the bottom
// margin. It lives outside the content area and never affects fill state.
func (p *Paginator) pageNumberFrame(number int, side layout.PageSide) layout.TextFrame {
	style := p.config.BodyStyle
	text := strconv.Itoa(number)
	lineHeight := p.metrics.LineHeight(style.FontSize, style.LineHeight)
	width := p.config.ContentWidth(side)
	textWidth := p.metrics.MeasureText(text, style.FontSize)

	xOffset := (width - textWidth) / 2
	if xOffset < 0 {
		xOffset = 0
	}

	return layout.TextFrame{
		ID: p.frameID(),
		Bounds: layout.Rect{
			X:      p.config.LeftMargin(side),
			Y:      p.config.PageSize.Height - p.config.Margins.Bottom + (p.config.Margins.Bottom-lineHeight)/2,
			Width:  width,
			Height: lineHeight,
		},
		Lines: []layout.TextLine{{
			YOffset: 0,
			Fragments: []layout.TextFragment{{
				Text:          text,
				XOffset:       xOffset,
				Style:         style,
				SourceBlockID: uuid.NewSHA1(p.bookID, []byte("page-number-"+text)),
			}},
		}},
		Type: layout.FramePageNumber,
	}
}

// side maps the 0-based page counter to a side: even counters are left
// pages, odd counters right pages.
func (p *Paginator) side() layout.PageSide {
	if p.counter%2 == 0 {
		return layout.SideLeft
	}
	return layout.SideRight
}

// frameID derives a deterministic frame identifier from the book id, the
// page under construction and the frame's position on it. Random ids
// would break reproducible output.
func (p *Paginator) frameID() uuid.UUID {
	name := fmt.Sprintf("page-%d-frame-%d", p.counter, len(p.page.frames))
	return uuid.NewSHA1(p.bookID, []byte(name))
}
