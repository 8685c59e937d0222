package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagelabel"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagelabel.LabelService = (*LabelService)(nil)

// LabelService implements pagelabel.LabelService using SQLite.
type LabelService struct {
	db *DB
}

// NewLabelService creates a new LabelService.
func NewLabelService(db *DB) *LabelService {
	return &LabelService{db: db}
}

// hashBody computes the xxHash of a body and returns it as hex.
func hashBody(body string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(body))
	return hex.EncodeToString(b)
}

const labelColumns = "id, file_name, title, store_name, store_location, page_template, keywords, body, body_hash, created_at"

// CreateLabel stores a label. A label with the same file name is replaced
// and keeps its ID.
func (s *LabelService) CreateLabel(ctx context.Context, label *pagelabel.Label) error {
	if err := label.Validate(); err != nil {
		return err
	}

	label.CreatedAt = time.Now().UTC().Truncate(time.Second)
	label.BodyHash = hashBody(label.Body)

	m := label.Metadata
	return s.db.QueryRowContext(ctx, `
		INSERT INTO labels (`+labelColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(file_name) DO UPDATE SET
			title = excluded.title,
			store_name = excluded.store_name,
			store_location = excluded.store_location,
			page_template = excluded.page_template,
			keywords = excluded.keywords,
			body = excluded.body,
			body_hash = excluded.body_hash,
			created_at = excluded.created_at
		RETURNING id
	`, uuid.New().String(), m.FileName, m.Title, m.StoreName, m.StoreLocation, m.PageTemplate,
		pagelabel.JoinKeywords(m.Keywords), label.Body, label.BodyHash,
		formatTime(label.CreatedAt)).Scan(&label.ID)
}

// FindLabelByFileName retrieves a label by document file name.
func (s *LabelService) FindLabelByFileName(ctx context.Context, fileName string) (*pagelabel.Label, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+labelColumns+" FROM labels WHERE file_name = ?", fileName)
	label, err := scanLabel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pagelabel.Errorf(pagelabel.ENOTFOUND, "label %q not found", fileName)
	}
	return label, err
}

// FindLabels retrieves labels matching the filter, ordered by file name.
func (s *LabelService) FindLabels(ctx context.Context, filter pagelabel.LabelFilter) ([]*pagelabel.Label, error) {
	query, args := labelQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []*pagelabel.Label
	for rows.Next() {
		label, err := scanLabel(rows)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	return labels, rows.Err()
}

// DeleteLabel permanently removes a label.
func (s *LabelService) DeleteLabel(ctx context.Context, fileName string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM labels WHERE file_name = ?", fileName)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagelabel.Errorf(pagelabel.ENOTFOUND, "label %q not found", fileName)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLabel(row scanner) (*pagelabel.Label, error) {
	var label pagelabel.Label
	var keywords, createdAt string

	m := &label.Metadata
	if err := row.Scan(&label.ID, &m.FileName, &m.Title, &m.StoreName, &m.StoreLocation,
		&m.PageTemplate, &keywords, &label.Body, &label.BodyHash, &createdAt); err != nil {
		return nil, err
	}

	m.Keywords = pagelabel.SplitKeywords(keywords)

	var err error
	label.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &label, nil
}
