// Package docx decodes Word document exports into pagelabel node trees.
package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/pagelabel"
)

// DocumentPart is the archive entry holding the main document body.
const DocumentPart = "word/document.xml"

// tocGallery is the building block gallery name Word uses for tables of
// contents.
const tocGallery = "Table of Contents"

// Ensure Decoder implements pagelabel.NodeDecoder at compile time.
var _ pagelabel.NodeDecoder = (*Decoder)(nil)

// Decoder decodes .docx archives.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads a .docx archive and returns its body as a node tree.
func (d *Decoder) Decode(r io.Reader) ([]pagelabel.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, pagelabel.Errorf(pagelabel.EINVALID, "docx: %v", err)
	}

	for _, f := range zr.File {
		if f.Name != DocumentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, pagelabel.Errorf(pagelabel.EINVALID, "docx: %v", err)
		}
		defer rc.Close()
		return DecodeDocumentXML(rc)
	}

	return nil, pagelabel.Errorf(pagelabel.EINVALID, "docx: missing %s", DocumentPart)
}

// DecodeDocumentXML decodes a WordprocessingML main document part.
func DecodeDocumentXML(r io.Reader) ([]pagelabel.Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, pagelabel.Errorf(pagelabel.EINVALID, "docx: parsing document XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, pagelabel.Errorf(pagelabel.EINVALID, "docx: empty document XML")
	}

	body := root.SelectElement("w:body")
	if body == nil {
		return nil, pagelabel.Errorf(pagelabel.EINVALID, "docx: document has no body")
	}

	return blocks(body), nil
}

func isW(el *etree.Element, tag string) bool {
	return el.Space == "w" && el.Tag == tag
}

// blocks converts the block-level children of el.
func blocks(el *etree.Element) []pagelabel.Node {
	var nodes []pagelabel.Node
	for _, child := range el.ChildElements() {
		if child.Space != "w" {
			continue
		}
		switch child.Tag {
		case "p":
			nodes = append(nodes, paragraph(child))
			if child.FindElement("./w:pPr/w:sectPr") != nil {
				nodes = append(nodes, &pagelabel.SectionBreak{})
			}
		case "tbl":
			nodes = append(nodes, table(child))
		case "sdt":
			content := child.SelectElement("w:sdtContent")
			if content == nil {
				continue
			}
			if isTableOfContents(child) {
				nodes = append(nodes, &pagelabel.TableOfContents{Content: blocks(content)})
			} else {
				nodes = append(nodes, blocks(content)...)
			}
		case "customXml", "smartTag", "ins":
			nodes = append(nodes, blocks(child)...)
		case "sectPr":
			nodes = append(nodes, &pagelabel.SectionBreak{})
		}
	}
	return nodes
}

func isTableOfContents(sdt *etree.Element) bool {
	gallery := sdt.FindElement("./w:sdtPr/w:docPartObj/w:docPartGallery")
	return gallery != nil && gallery.SelectAttrValue("w:val", "") == tocGallery
}

// paragraph converts a w:p element. Every paragraph ends with a newline
// run so flattened paragraphs stay on separate lines.
func paragraph(p *etree.Element) *pagelabel.Paragraph {
	para := &pagelabel.Paragraph{}
	collectRuns(p, para)
	para.Runs = append(para.Runs, pagelabel.TextRun{Content: "\n"})
	return para
}

// collectRuns appends the text runs under el, descending through inline
// wrappers such as hyperlinks and content controls.
func collectRuns(el *etree.Element, para *pagelabel.Paragraph) {
	for _, child := range el.ChildElements() {
		if child.Space != "w" {
			continue
		}
		switch child.Tag {
		case "r":
			if text := runText(child); text != "" {
				para.Runs = append(para.Runs, pagelabel.TextRun{Content: text})
			}
		case "hyperlink", "ins", "smartTag", "fldSimple", "customXml", "sdt", "sdtContent":
			collectRuns(child, para)
		}
	}
}

func runText(r *etree.Element) string {
	var sb strings.Builder
	for _, child := range r.ChildElements() {
		if child.Space != "w" {
			continue
		}
		switch child.Tag {
		case "t":
			sb.WriteString(child.Text())
		case "tab":
			sb.WriteString("\t")
		case "br", "cr":
			sb.WriteString("\n")
		case "noBreakHyphen":
			sb.WriteString("-")
		}
	}
	return sb.String()
}

func table(tbl *etree.Element) *pagelabel.Table {
	t := &pagelabel.Table{}
	for _, tr := range children(tbl, "tr") {
		row := pagelabel.TableRow{}
		for _, tc := range children(tr, "tc") {
			row.Cells = append(row.Cells, pagelabel.TableCell{Content: blocks(tc)})
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// children returns the w:<tag> children of el, looking through content
// controls wrapping rows and cells.
func children(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		switch {
		case isW(child, tag):
			out = append(out, child)
		case isW(child, "sdt"):
			if content := child.SelectElement("w:sdtContent"); content != nil {
				out = append(out, children(content, tag)...)
			}
		case isW(child, "customXml"):
			out = append(out, children(child, tag)...)
		}
	}
	return out
}
