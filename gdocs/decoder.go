// Package gdocs decodes Google Docs API document exports into pagelabel
// node trees.
package gdocs

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/pagelabel"
)

// Ensure Decoder implements pagelabel.NodeDecoder at compile time.
var _ pagelabel.NodeDecoder = (*Decoder)(nil)

// Document is the subset of the Docs API document resource the decoder
// reads.
type Document struct {
	DocumentID string `json:"documentId"`
	Title      string `json:"title"`
	Body       struct {
		Content []StructuralElement `json:"content"`
	} `json:"body"`
}

// StructuralElement is one block of document content. Exactly one of the
// pointer fields is set.
type StructuralElement struct {
	Paragraph       *Paragraph       `json:"paragraph,omitempty"`
	Table           *Table           `json:"table,omitempty"`
	TableOfContents *TableOfContents `json:"tableOfContents,omitempty"`
	SectionBreak    *struct{}        `json:"sectionBreak,omitempty"`
}

type Paragraph struct {
	Elements []ParagraphElement `json:"elements"`
}

// ParagraphElement is an inline element. Elements other than text runs
// (inline objects, page breaks, auto text) carry no text.
type ParagraphElement struct {
	TextRun *TextRun `json:"textRun,omitempty"`
}

type TextRun struct {
	Content string `json:"content"`
}

type Table struct {
	TableRows []TableRow `json:"tableRows"`
}

type TableRow struct {
	TableCells []TableCell `json:"tableCells"`
}

type TableCell struct {
	Content []StructuralElement `json:"content"`
}

type TableOfContents struct {
	Content []StructuralElement `json:"content"`
}

// Decoder decodes Docs API JSON documents.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses a document resource and returns its body as a node tree.
func (d *Decoder) Decode(r io.Reader) ([]pagelabel.Node, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, pagelabel.Errorf(pagelabel.EINVALID, "gdocs: %v", err)
	}
	return Nodes(doc.Body.Content), nil
}

// Nodes converts structural elements to nodes. Elements of unknown kind
// are dropped.
func Nodes(elements []StructuralElement) []pagelabel.Node {
	nodes := make([]pagelabel.Node, 0, len(elements))
	for _, el := range elements {
		switch {
		case el.Paragraph != nil:
			p := &pagelabel.Paragraph{}
			for _, e := range el.Paragraph.Elements {
				if e.TextRun != nil {
					p.Runs = append(p.Runs, pagelabel.TextRun{Content: e.TextRun.Content})
				}
			}
			nodes = append(nodes, p)
		case el.Table != nil:
			t := &pagelabel.Table{}
			for _, row := range el.Table.TableRows {
				r := pagelabel.TableRow{}
				for _, c := range row.TableCells {
					r.Cells = append(r.Cells, pagelabel.TableCell{Content: Nodes(c.Content)})
				}
				t.Rows = append(t.Rows, r)
			}
			nodes = append(nodes, t)
		case el.TableOfContents != nil:
			nodes = append(nodes, &pagelabel.TableOfContents{Content: Nodes(el.TableOfContents.Content)})
		case el.SectionBreak != nil:
			nodes = append(nodes, &pagelabel.SectionBreak{})
		}
	}
	return nodes
}
