package layout

import (
	"fmt"
	"math"
)

// PageSize represents page dimensions in points (1/72 inch).
type PageSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Standard page sizes in points.
var (
	// PageSizeLetter is US Letter: 8.5" x 11".
	PageSizeLetter = PageSize{Width: 612, Height: 792}
	// PageSizeA4 is ISO A4: 210mm x 297mm.
	PageSizeA4 = PageSize{Width: 595, Height: 842}
)

// Margins represents page margins in points. Inner and Outer are the
// binding-side and open-side horizontal margins; which physical edge each
// one lands on depends on the page side.
type Margins struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Inner  float64 `json:"inner"`
	Outer  float64 `json:"outer"`
}

// UniformMargins creates margins with all four sides equal.
func UniformMargins(m float64) Margins {
	return Margins{Top: m, Bottom: m, Inner: m, Outer: m}
}

// SymmetricMargins creates margins with equal top/bottom and equal
// inner/outer values.
func SymmetricMargins(vertical, horizontal float64) Margins {
	return Margins{Top: vertical, Bottom: vertical, Inner: horizontal, Outer: horizontal}
}

// Config holds everything the pagination engine needs to know about page
// geometry and text styling.
type Config struct {
	PageSize PageSize `json:"pageSize"`
	Margins  Margins  `json:"margins"`
	// BodyStyle is applied to block content.
	BodyStyle TextStyle `json:"bodyStyle"`
	// TitleStyle is applied to chapter titles.
	TitleStyle TextStyle `json:"titleStyle"`
	// ChaptersStartRight forces every chapter after the first to begin on
	// a right-hand page, finalizing a partially filled left page if needed.
	ChaptersStartRight bool `json:"chaptersStartRight"`
	// PageNumbers emits a page-number frame in the bottom margin of every
	// finalized page.
	PageNumbers bool `json:"pageNumbers"`
}

// DefaultConfig returns the standard book configuration: US Letter pages,
// one-inch margins, 12pt body text at 1.5 line height, 24pt chapter
// titles at 1.2 line height, chapters starting on right-hand pages.
func DefaultConfig() Config {
	return Config{
		PageSize: PageSizeLetter,
		Margins:  UniformMargins(72),
		BodyStyle: TextStyle{
			FontSize:   12,
			LineHeight: 1.5,
			Alignment:  AlignLeft,
		},
		TitleStyle: TextStyle{
			FontSize:   24,
			LineHeight: 1.2,
			Alignment:  AlignLeft,
		},
		ChaptersStartRight: true,
	}
}

// ContentWidth returns the usable horizontal space for the given page
// side. Both sides share the same value, but the margin that produces it
// sits on opposite edges.
func (c Config) ContentWidth(side PageSide) float64 {
	return c.PageSize.Width - c.LeftMargin(side) - c.RightMargin(side)
}

// ContentHeight returns the usable vertical space on any page. Top and
// bottom margins do not depend on the page side.
func (c Config) ContentHeight() float64 {
	return c.PageSize.Height - c.Margins.Top - c.Margins.Bottom
}

// LeftMargin returns the physical left margin for the given side: the
// outer margin on a left page, the inner margin on a right page.
func (c Config) LeftMargin(side PageSide) float64 {
	if side == SideLeft {
		return c.Margins.Outer
	}
	return c.Margins.Inner
}

// RightMargin returns the physical right margin for the given side.
func (c Config) RightMargin(side PageSide) float64 {
	if side == SideLeft {
		return c.Margins.Inner
	}
	return c.Margins.Outer
}

// Validate rejects configurations that would make layout meaningless or
// non-terminating. It must pass before any page is produced.
func (c Config) Validate() error {
	if !isFinitePositive(c.PageSize.Width) || !isFinitePositive(c.PageSize.Height) {
		return fmt.Errorf("layout: page size %gx%g must be positive and finite", c.PageSize.Width, c.PageSize.Height)
	}
	for _, m := range []struct {
		name  string
		value float64
	}{
		{"top", c.Margins.Top},
		{"bottom", c.Margins.Bottom},
		{"inner", c.Margins.Inner},
		{"outer", c.Margins.Outer},
	} {
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) || m.value < 0 {
			return fmt.Errorf("layout: %s margin %g must be non-negative and finite", m.name, m.value)
		}
	}
	if c.ContentWidth(SideLeft) <= 0 {
		return fmt.Errorf("layout: margins leave no horizontal space for text on a %g-point page", c.PageSize.Width)
	}
	if c.ContentHeight() <= 0 {
		return fmt.Errorf("layout: margins leave no vertical space for text on a %g-point page", c.PageSize.Height)
	}
	if err := c.BodyStyle.validate(); err != nil {
		return fmt.Errorf("layout: body style: %w", err)
	}
	if err := c.TitleStyle.validate(); err != nil {
		return fmt.Errorf("layout: title style: %w", err)
	}
	return nil
}

func (s TextStyle) validate() error {
	if !isFinitePositive(s.FontSize) {
		return fmt.Errorf("font size %g must be positive and finite", s.FontSize)
	}
	if !isFinitePositive(s.LineHeight) {
		return fmt.Errorf("line height multiplier %g must be positive and finite", s.LineHeight)
	}
	return nil
}

func isFinitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
