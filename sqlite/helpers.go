package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// formatTime formats t for storage. Stored timestamps sort lexically.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseRFC3339 parses a stored timestamp, naming fieldName on failure.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// unmarshalColumn decodes a JSON column into v, naming fieldName on failure.
func unmarshalColumn(value, fieldName string, v any) error {
	if err := json.Unmarshal([]byte(value), v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", fieldName, err)
	}
	return nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite requires a LIMIT before OFFSET, so an offset without a limit uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
