// Package csv reads and writes the metadata and training datasets.
package csv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/pagelabel"
)

// Ensure MetadataWriter implements pagelabel.MetadataWriter at compile time.
var _ pagelabel.MetadataWriter = (*MetadataWriter)(nil)

// MetadataWriter writes metadata records as CSV with a header row in
// pagelabel.Columns order.
type MetadataWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewMetadataWriter creates a MetadataWriter that writes to w.
func NewMetadataWriter(w io.Writer) *MetadataWriter {
	return &MetadataWriter{w: csv.NewWriter(w)}
}

func (w *MetadataWriter) header() error {
	if w.wroteHeader {
		return nil
	}
	w.wroteHeader = true
	return w.w.Write(pagelabel.Columns)
}

// WriteMetadata writes one record, preceded by the header on first use.
func (w *MetadataWriter) WriteMetadata(m *pagelabel.Metadata) error {
	if err := w.header(); err != nil {
		return err
	}
	return w.w.Write(m.Values())
}

// Flush writes any buffered data. A dataset with no records still gets a
// header row.
func (w *MetadataWriter) Flush() error {
	if err := w.header(); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadRows reads a metadata dataset. The header row may carry a leading
// "#" and a UTF-8 byte order mark; rows whose fields are all empty are
// skipped. Returns EINVALID if a column is missing from the header.
func ReadRows(r io.Reader) ([]pagelabel.Row, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, pagelabel.Errorf(pagelabel.EINVALID, "metadata dataset is empty")
	} else if err != nil {
		return nil, pagelabel.Errorf(pagelabel.EINVALID, "read header: %v", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "#")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var rows []pagelabel.Row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, pagelabel.Errorf(pagelabel.EINVALID, "read row: %v", err)
		}
		if blank(record) {
			continue
		}
		row := make(pagelabel.Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadMetadata reads a metadata dataset into records.
func ReadMetadata(r io.Reader) ([]*pagelabel.Metadata, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}
	records := make([]*pagelabel.Metadata, 0, len(rows))
	for _, row := range rows {
		m, err := pagelabel.MetadataFromRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	return records, nil
}

func checkHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, c := range pagelabel.Columns {
		if !present[c] {
			return pagelabel.Errorf(pagelabel.EINVALID, "metadata dataset missing column %q", c)
		}
	}
	return nil
}

func blank(record []string) bool {
	for _, v := range record {
		if v != "" {
			return false
		}
	}
	return true
}
