package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/locprof"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var (
	_ locprof.CaptureService = (*CaptureService)(nil)
	_ locprof.CaptureWriter  = (*CaptureService)(nil)
)

const captureColumns = "id, source_url, content_hash, failed_sections, profile, captured_at"

// CaptureService implements locprof.CaptureService using SQLite.
// The profile is stored as a JSON document alongside indexed lookup columns.
type CaptureService struct {
	db *DB
}

// NewCaptureService creates a new CaptureService.
func NewCaptureService(db *DB) *CaptureService {
	return &CaptureService{db: db}
}

// CreateCapture stores a capture. An ID is generated when the capture has
// none; storing an ID that already exists returns ECONFLICT. CapturedAt is
// normalized to UTC with second precision.
func (s *CaptureService) CreateCapture(ctx context.Context, capture *locprof.Capture) error {
	if err := capture.Validate(); err != nil {
		return err
	}

	profile, err := json.Marshal(capture.Profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	failed, err := json.Marshal(capture.FailedSections)
	if err != nil {
		return fmt.Errorf("failed to encode failed sections: %w", err)
	}

	id := capture.ID
	if id == "" {
		id = uuid.New().String()
	}
	capturedAt := formatTime(capture.CapturedAt)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO captures (id, source_url, name, content_hash, failed_sections, profile, captured_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, capture.SourceURL, capture.Name(), capture.ContentHash, string(failed), string(profile), capturedAt)
	if errors.Is(err, sqlite3.CONSTRAINT_PRIMARYKEY) {
		return locprof.Errorf(locprof.ECONFLICT, "capture %q already exists", id)
	}
	if err != nil {
		return err
	}

	capture.ID = id
	capture.CapturedAt, err = parseRFC3339(capturedAt, "captured_at")
	return err
}

// FindCaptureByID retrieves a capture by ID.
func (s *CaptureService) FindCaptureByID(ctx context.Context, id string) (*locprof.Capture, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+captureColumns+" FROM captures WHERE id = ?", id)

	capture, err := scanCapture(row)
	if err == sql.ErrNoRows {
		return nil, locprof.Errorf(locprof.ENOTFOUND, "capture not found")
	}
	if err != nil {
		return nil, err
	}
	return capture, nil
}

// FindCaptures retrieves captures matching the filter, newest first.
func (s *CaptureService) FindCaptures(ctx context.Context, filter locprof.CaptureFilter) ([]*locprof.Capture, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + captureColumns + " FROM captures WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY captured_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var captures []*locprof.Capture
	for rows.Next() {
		capture, err := scanCapture(rows)
		if err != nil {
			return nil, err
		}
		captures = append(captures, capture)
	}

	return captures, rows.Err()
}

// DeleteCapture permanently removes a capture.
func (s *CaptureService) DeleteCapture(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM captures WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return locprof.Errorf(locprof.ENOTFOUND, "capture not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCapture(row scanner) (*locprof.Capture, error) {
	var capture locprof.Capture
	var failed, profile, capturedAt string

	if err := row.Scan(&capture.ID, &capture.SourceURL, &capture.ContentHash, &failed, &profile, &capturedAt); err != nil {
		return nil, err
	}

	var err error
	capture.CapturedAt, err = parseRFC3339(capturedAt, "captured_at")
	if err != nil {
		return nil, err
	}
	if err := unmarshalColumn(profile, "profile", &capture.Profile); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(failed, "failed_sections", &capture.FailedSections); err != nil {
		return nil, err
	}
	return &capture, nil
}
