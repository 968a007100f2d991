package bindery

import (
	"github.com/bindery/bindery/pkg/api"
)

type Converter = api.Converter
type Options = api.Options
type Option = api.Option

func New(opts ...Option) *Converter             { return api.New(opts...) }
func NewWithOptions(options Options) *Converter { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	WithPageSize           = api.WithPageSize
	WithPageSizeLetter     = api.WithPageSizeLetter
	WithPageSizeA4         = api.WithPageSizeA4
	WithMargins            = api.WithMargins
	WithUniformMargins     = api.WithUniformMargins
	WithBodyStyle          = api.WithBodyStyle
	WithTitleStyle         = api.WithTitleStyle
	WithChaptersStartRight = api.WithChaptersStartRight
	WithPageNumbers        = api.WithPageNumbers
	WithGoFontMetrics      = api.WithGoFontMetrics
	WithDebug              = api.WithDebug
	WithResourcePath       = api.WithResourcePath
	WithTitle              = api.WithTitle
	WithAuthor             = api.WithAuthor
	WithSubject            = api.WithSubject
	WithKeywords           = api.WithKeywords
)

const (
	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
	PageSizeA4Width      = api.PageSizeA4Width
	PageSizeA4Height     = api.PageSizeA4Height
)
