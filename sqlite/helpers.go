package sqlite

import (
	"strings"
	"time"

	"github.com/fwojciec/pagelabel"
)

// formatTime formats a timestamp for storage as RFC3339 text in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses a stored RFC3339 timestamp of the named column.
func parseTime(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, pagelabel.Errorf(pagelabel.EINTERNAL, "invalid %s %q: %v", column, value, err)
	}
	return t, nil
}

// labelQuery builds the SELECT statement for a label filter. Results are
// ordered by file name; LIMIT and OFFSET are only added when positive.
func labelQuery(filter pagelabel.LabelFilter) (string, []any) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + labelColumns + " FROM labels")

	var where []string
	if filter.StoreName != nil {
		where = append(where, "store_name = ?")
		args = append(args, *filter.StoreName)
	}
	if filter.PageTemplate != nil {
		where = append(where, "page_template = ?")
		args = append(args, *filter.PageTemplate)
	}
	if len(where) > 0 {
		query.WriteString(" WHERE " + strings.Join(where, " AND "))
	}

	query.WriteString(" ORDER BY file_name ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// SQLite requires LIMIT before OFFSET
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	return query.String(), args
}
