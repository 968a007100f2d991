package layout

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// RenderTree is the complete layout output for a book: every page, every
// frame, every positioned line, ready for a rendering backend.
type RenderTree struct {
	BookID   uuid.UUID      `json:"bookId"`
	Pages    []PageRender   `json:"pages"`
	Metadata RenderMetadata `json:"metadata"`
}

// RenderMetadata summarizes the rendered output.
type RenderMetadata struct {
	TotalPages    int `json:"totalPages"`
	TotalChapters int `json:"totalChapters"`
}

// PageRender is a single laid-out page.
type PageRender struct {
	// Number is the 1-based page number.
	Number int        `json:"pageNumber"`
	Side   PageSide   `json:"side"`
	Frames []TextFrame `json:"frames"`
}

// PageSide distinguishes the two alternating sides of a bound page.
type PageSide int

const (
	// SideLeft is a verso page: outer margin on the left edge.
	SideLeft PageSide = iota
	// SideRight is a recto page: inner margin on the left edge.
	SideRight
)

// String returns "left" or "right".
func (s PageSide) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// MarshalJSON encodes the side as its string name.
func (s PageSide) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a side from its string name.
func (s *PageSide) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "left":
		*s = SideLeft
	case "right":
		*s = SideRight
	default:
		return fmt.Errorf("layout: unknown page side %q", name)
	}
	return nil
}

// FrameType tags what a text frame holds.
type FrameType int

const (
	// FrameChapterTitle holds a chapter heading.
	FrameChapterTitle FrameType = iota
	// FrameBodyText holds block content.
	FrameBodyText
	// FramePageNumber holds a page number in the bottom margin.
	FramePageNumber
)

// String returns the frame type name used in serialized output.
func (t FrameType) String() string {
	switch t {
	case FrameChapterTitle:
		return "chapterTitle"
	case FramePageNumber:
		return "pageNumber"
	default:
		return "bodyText"
	}
}

// MarshalJSON encodes the frame type as its string name.
func (t FrameType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a frame type from its string name.
func (t *FrameType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "chapterTitle":
		*t = FrameChapterTitle
	case "bodyText":
		*t = FrameBodyText
	case "pageNumber":
		*t = FramePageNumber
	default:
		return fmt.Errorf("layout: unknown frame type %q", name)
	}
	return nil
}

// Rect is a positioned rectangle in page coordinates, origin at the top
// left of the page, units in points.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TextFrame is a positioned rectangular region holding laid-out lines of
// one kind.
type TextFrame struct {
	ID     uuid.UUID  `json:"id"`
	Bounds Rect       `json:"bounds"`
	Lines  []TextLine `json:"lines"`
	Type   FrameType  `json:"frameType"`
}

// TextLine is one laid-out line: a vertical offset relative to the top of
// its frame plus ordered fragments.
type TextLine struct {
	YOffset   float64        `json:"yOffset"`
	Fragments []TextFragment `json:"fragments"`
}

// Text joins the line's fragment texts in order.
func (l TextLine) Text() string {
	if len(l.Fragments) == 1 {
		return l.Fragments[0].Text
	}
	var out string
	for _, f := range l.Fragments {
		out += f.Text
	}
	return out
}

// TextFragment is a styled run of text within a line. SourceBlockID
// traces the fragment back to the block (or synthetic chapter-title
// source) it came from.
type TextFragment struct {
	Text          string    `json:"text"`
	XOffset       float64   `json:"xOffset"`
	Style         TextStyle `json:"style"`
	SourceBlockID uuid.UUID `json:"sourceBlockId"`
}

// Alignment is the horizontal alignment requested for a run of text. Only
// left-aligned text is positioned by the engine; the other values are
// carried through for renderers that implement them.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// MarshalJSON encodes the alignment as its string name.
func (a Alignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes an alignment from its string name.
func (a *Alignment) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "left":
		*a = AlignLeft
	case "center":
		*a = AlignCenter
	case "right":
		*a = AlignRight
	case "justify":
		*a = AlignJustify
	default:
		return fmt.Errorf("layout: unknown alignment %q", name)
	}
	return nil
}

// TextStyle describes how a run of text is sized and aligned.
type TextStyle struct {
	// FontSize in points.
	FontSize float64 `json:"fontSize"`
	// LineHeight is a multiplier applied to the font size.
	LineHeight float64 `json:"lineHeight"`
	Alignment  Alignment `json:"alignment"`
}
