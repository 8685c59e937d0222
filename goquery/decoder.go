// Package goquery decodes HTML page exports into pagelabel node trees.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelabel"
	"golang.org/x/net/html"
)

// Ensure Decoder implements pagelabel.NodeDecoder at compile time.
var _ pagelabel.NodeDecoder = (*Decoder)(nil)

// Decoder decodes HTML documents. Paragraph-like elements become
// paragraphs, tables keep their row and cell structure and navigation
// blocks become tables of contents. Loose inline content inside containers
// is gathered into paragraphs.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses HTML and returns the body as a node tree.
func (d *Decoder) Decode(r io.Reader) ([]pagelabel.Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, pagelabel.Errorf(pagelabel.EINVALID, "html: %v", err)
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, nil
	}
	return blocks(body), nil
}

var skipped = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"head":     true,
	"svg":      true,
}

var paragraphs = map[string]bool{
	"p":   true,
	"h1":  true,
	"h2":  true,
	"h3":  true,
	"h4":  true,
	"h5":  true,
	"h6":  true,
	"pre": true,
}

var containers = map[string]bool{
	"article":    true,
	"aside":      true,
	"blockquote": true,
	"body":       true,
	"dd":         true,
	"div":        true,
	"dl":         true,
	"dt":         true,
	"figcaption": true,
	"figure":     true,
	"footer":     true,
	"form":       true,
	"header":     true,
	"li":         true,
	"main":       true,
	"ol":         true,
	"section":    true,
	"ul":         true,
}

func isTableOfContents(s *goquery.Selection, tag string) bool {
	if tag == "nav" {
		return true
	}
	id, _ := s.Attr("id")
	return s.HasClass("toc") || s.HasClass("table-of-contents") || id == "toc"
}

// blocks converts the children of s. Runs of inline content between block
// elements are collected into a single paragraph.
func blocks(s *goquery.Selection) []pagelabel.Node {
	var nodes []pagelabel.Node
	var inline strings.Builder

	flush := func() {
		if text := collapse(inline.String()); text != "" {
			nodes = append(nodes, newParagraph(text))
		}
		inline.Reset()
	}

	s.Contents().Each(func(_ int, c *goquery.Selection) {
		n := c.Get(0)
		switch n.Type {
		case html.TextNode:
			inline.WriteString(n.Data)
			return
		case html.ElementNode:
		default:
			return
		}

		tag := goquery.NodeName(c)
		switch {
		case skipped[tag]:
		case tag == "br":
			inline.WriteString(" ")
		case isTableOfContents(c, tag):
			flush()
			nodes = append(nodes, &pagelabel.TableOfContents{Content: blocks(c)})
		case paragraphs[tag]:
			flush()
			if text := collapse(c.Text()); text != "" {
				nodes = append(nodes, newParagraph(text))
			}
		case tag == "table":
			flush()
			nodes = append(nodes, table(c))
		case containers[tag]:
			flush()
			nodes = append(nodes, blocks(c)...)
		default:
			inline.WriteString(c.Text())
		}
	})
	flush()

	return nodes
}

// newParagraph returns a paragraph terminated by a newline run.
func newParagraph(text string) *pagelabel.Paragraph {
	return &pagelabel.Paragraph{Runs: []pagelabel.TextRun{
		{Content: text},
		{Content: "\n"},
	}}
}

func table(s *goquery.Selection) *pagelabel.Table {
	t := &pagelabel.Table{}
	// Rows of nested tables belong to the nested table.
	s.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Closest("table").IsSelection(s)
	}).Each(func(_ int, tr *goquery.Selection) {
		row := pagelabel.TableRow{}
		tr.ChildrenFiltered("td, th").Each(func(_ int, td *goquery.Selection) {
			row.Cells = append(row.Cells, pagelabel.TableCell{Content: blocks(td)})
		})
		t.Rows = append(t.Rows, row)
	})
	return t
}

// collapse normalizes whitespace the way a browser renders inline text.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
