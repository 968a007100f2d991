// Package htmlbook imports simple HTML documents as books. The document
// title and author come from <title> and <meta name="author">; each
// <h1> or <h2> opens a chapter and every <p> under it becomes one
// content block.
package htmlbook

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/bindery/bindery/internal/document"
)

// ErrNoChapters is returned when the document has no h1 or h2 headings
// to divide it into chapters.
var ErrNoChapters = errors.New("htmlbook: no chapter headings found")

type chapterDraft struct {
	title  string
	blocks []string
}

// ParseString parses an HTML document held in memory.
func ParseString(content string) (*document.Book, error) {
	return Parse(strings.NewReader(content))
}

// Parse reads an HTML document and builds a book from its headings and
// paragraphs. Elements outside any heading are ignored.
func Parse(r io.Reader) (*document.Book, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var (
		title    string
		author   string
		chapters []chapterDraft
		current  *chapterDraft
	)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if title == "" {
					title = cleanText(textContent(n))
				}
				return
			case "meta":
				if attr(n, "name") == "author" {
					author = cleanText(attr(n, "content"))
				}
				return
			case "h1", "h2":
				if current != nil {
					chapters = append(chapters, *current)
				}
				current = &chapterDraft{title: cleanText(textContent(n))}
				return
			case "p":
				if current == nil {
					return
				}
				if text := cleanText(textContent(n)); text != "" {
					current.blocks = append(current.blocks, text)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if current != nil {
		chapters = append(chapters, *current)
	}
	if len(chapters) == 0 {
		return nil, ErrNoChapters
	}

	if title == "" {
		title = "Untitled"
	}
	if author == "" {
		author = "Unknown"
	}

	book := document.New(title, author)
	for _, ch := range chapters {
		book.AddChapter(ch.title, ch.blocks...)
	}
	return book, nil
}

// textContent concatenates all text nodes under n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// cleanText collapses runs of whitespace to single spaces and
// normalizes to NFC.
func cleanText(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
