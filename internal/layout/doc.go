// Package layout provides the measurement and line-breaking primitives of
// the engine together with the positioned render-tree types that
// pagination produces.
//
// Text measurement is a pluggable strategy behind the [TextMetrics]
// interface. [HeuristicMetrics] estimates widths from rune counts;
// [GoFontMetrics] measures real glyph advances from an embedded font.
// Both are deterministic, which the whole engine depends on.
//
// [LineBreaker] wraps a block of text greedily into [TextLine] values no
// wider than a maximum width. The pagination package distributes those
// lines across pages and assembles the final [RenderTree].
package layout
