package pagelabel

import (
	"io"
	"strings"
)

// NodeKind identifies the type of a structural node.
type NodeKind string

// Node kinds produced by decoders. Only paragraphs, tables and tables of
// contents carry text; every other kind is skipped by Flatten.
const (
	KindParagraph       NodeKind = "paragraph"
	KindTable           NodeKind = "table"
	KindTableOfContents NodeKind = "table_of_contents"
	KindSectionBreak    NodeKind = "section_break"
)

// Node is an element of a structural content tree.
type Node interface {
	Kind() NodeKind
}

// TextRun is a leaf holding literal text. Non-text runs (images, page
// breaks) are represented with empty Content.
type TextRun struct {
	Content string
}

// Paragraph is an ordered sequence of text runs.
type Paragraph struct {
	Runs []TextRun
}

// Kind implements Node.
func (*Paragraph) Kind() NodeKind { return KindParagraph }

// Text returns the concatenated content of all runs.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Content)
	}
	return sb.String()
}

// Table is an ordered sequence of rows.
type Table struct {
	Rows []TableRow
}

// Kind implements Node.
func (*Table) Kind() NodeKind { return KindTable }

// TableRow is an ordered sequence of cells.
type TableRow struct {
	Cells []TableCell
}

// TableCell holds nested structural content, which may itself contain
// tables and tables of contents.
type TableCell struct {
	Content []Node
}

// TableOfContents wraps nested structural content.
type TableOfContents struct {
	Content []Node
}

// Kind implements Node.
func (*TableOfContents) Kind() NodeKind { return KindTableOfContents }

// SectionBreak marks a section boundary. It carries no text.
type SectionBreak struct{}

// Kind implements Node.
func (*SectionBreak) Kind() NodeKind { return KindSectionBreak }

// NodeDecoder decodes an exported document into a structural content tree.
type NodeDecoder interface {
	// Decode parses the export and returns its top-level nodes in order.
	// Returns EINVALID if the input is not a valid export.
	Decode(r io.Reader) ([]Node, error)
}

// Flatten walks the structural content tree depth-first and concatenates
// all text with no separators. Tables contribute the flattened content of
// each cell in row-major order. Unrecognised node kinds are skipped.
//
// The walk uses an explicit stack so arbitrarily deep nesting cannot
// exhaust the goroutine stack.
func Flatten(nodes []Node) string {
	var sb strings.Builder

	stack := make([]Node, 0, len(nodes))
	stack = pushReversed(stack, nodes)

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := n.(type) {
		case *Paragraph:
			if n == nil {
				continue
			}
			for _, r := range n.Runs {
				sb.WriteString(r.Content)
			}
		case *Table:
			if n == nil {
				continue
			}
			for i := len(n.Rows) - 1; i >= 0; i-- {
				cells := n.Rows[i].Cells
				for j := len(cells) - 1; j >= 0; j-- {
					stack = pushReversed(stack, cells[j].Content)
				}
			}
		case *TableOfContents:
			if n == nil {
				continue
			}
			stack = pushReversed(stack, n.Content)
		}
	}

	return sb.String()
}

// pushReversed pushes nodes so that nodes[0] is popped first.
func pushReversed(stack, nodes []Node) []Node {
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i] != nil {
			stack = append(stack, nodes[i])
		}
	}
	return stack
}
