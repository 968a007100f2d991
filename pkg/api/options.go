package api

// Options represents configuration options for the book converter
type Options struct {
	// Page dimensions in points
	PageWidth  float64
	PageHeight float64

	// Page margins in points. Inner is the binding edge, Outer the
	// opposite edge; they swap sides between left and right pages.
	MarginTop    float64
	MarginBottom float64
	MarginInner  float64
	MarginOuter  float64

	// Body text style
	BodyFontSize   float64
	BodyLineHeight float64

	// Chapter title style
	TitleFontSize   float64
	TitleLineHeight float64

	// ChaptersStartRight forces every chapter after the first to begin
	// on a right-hand page
	ChaptersStartRight bool

	// PageNumbers adds a centered page number in the bottom margin
	PageNumbers bool

	// UseGoFontMetrics measures text with real glyph advances instead of
	// the average-width heuristic
	UseGoFontMetrics bool

	// Debug enables verbose logging to stdout
	Debug bool

	// Resource paths searched when loading book sources and fonts
	ResourcePaths []string

	// Document metadata for rendered PDFs
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns the default options: US Letter pages, one-inch
// margins, 12pt body text and 24pt chapter titles
func DefaultOptions() Options {
	return Options{
		PageWidth:  PageSizeLetterWidth,
		PageHeight: PageSizeLetterHeight,

		MarginTop:    72,
		MarginBottom: 72,
		MarginInner:  72,
		MarginOuter:  72,

		BodyFontSize:   12,
		BodyLineHeight: 1.5,

		TitleFontSize:   24,
		TitleLineHeight: 1.2,

		ChaptersStartRight: true,
		PageNumbers:        false,

		ResourcePaths: []string{},
	}
}

// WithPageSize sets the page size in points
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithPageSizeLetter sets US Letter page dimensions
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}

// WithPageSizeA4 sets A4 page dimensions
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithMargins sets all four margins
func WithMargins(top, bottom, inner, outer float64) Option {
	return func(o *Options) {
		o.MarginTop = top
		o.MarginBottom = bottom
		o.MarginInner = inner
		o.MarginOuter = outer
	}
}

// WithUniformMargins sets the same margin on every edge
func WithUniformMargins(margin float64) Option {
	return WithMargins(margin, margin, margin, margin)
}

// WithBodyStyle sets the body font size and line-height multiplier
func WithBodyStyle(fontSize, lineHeight float64) Option {
	return func(o *Options) {
		o.BodyFontSize = fontSize
		o.BodyLineHeight = lineHeight
	}
}

// WithTitleStyle sets the chapter title font size and line-height
// multiplier
func WithTitleStyle(fontSize, lineHeight float64) Option {
	return func(o *Options) {
		o.TitleFontSize = fontSize
		o.TitleLineHeight = lineHeight
	}
}

// WithChaptersStartRight controls forcing chapters onto right-hand pages
func WithChaptersStartRight(enabled bool) Option {
	return func(o *Options) {
		o.ChaptersStartRight = enabled
	}
}

// WithPageNumbers enables page-number frames in the bottom margin
func WithPageNumbers(enabled bool) Option {
	return func(o *Options) {
		o.PageNumbers = enabled
	}
}

// WithGoFontMetrics enables glyph-accurate text measurement
func WithGoFontMetrics(enabled bool) Option {
	return func(o *Options) {
		o.UseGoFontMetrics = enabled
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithResourcePath adds a path to search for resources
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithTitle sets the document title metadata
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author metadata
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject metadata
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords metadata
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// Standard page sizes in points (1/72 inch)
const (
	PageSizeLetterWidth  = 612.0
	PageSizeLetterHeight = 792.0

	PageSizeA4Width  = 595.0
	PageSizeA4Height = 842.0
)
