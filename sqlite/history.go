package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pdfanalyze.HistoryService = (*HistoryService)(nil)

// HistoryService implements pdfanalyze.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// RecordSearch persists a search record, assigning its ID and timestamp.
func (s *HistoryService) RecordSearch(ctx context.Context, rec *pdfanalyze.SearchRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.SearchedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO searches (id, query_text, answer_text, citation_count, searched_at)
		VALUES (?, ?, ?, ?, ?)
	`, rec.ID, rec.QueryText, rec.AnswerText, rec.CitationCount, rec.SearchedAt.Format(time.RFC3339))

	return err
}

// FindSearches retrieves past searches, newest first.
func (s *HistoryService) FindSearches(ctx context.Context, filter pdfanalyze.HistoryFilter) ([]*pdfanalyze.SearchRecord, error) {
	var query strings.Builder
	var args []any
	query.WriteString(`
		SELECT id, query_text, answer_text, citation_count, searched_at
		FROM searches
		ORDER BY searched_at DESC, id`)
	appendPage(&query, &args, filter)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*pdfanalyze.SearchRecord{}
	for rows.Next() {
		var rec pdfanalyze.SearchRecord
		var searchedAt string
		if err := rows.Scan(&rec.ID, &rec.QueryText, &rec.AnswerText, &rec.CitationCount, &searchedAt); err != nil {
			return nil, err
		}
		if rec.SearchedAt, err = scanTime(searchedAt, "searched_at"); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// RecordUpload persists an upload record, assigning its ID and timestamp.
func (s *HistoryService) RecordUpload(ctx context.Context, rec *pdfanalyze.UploadRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.UploadedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO uploads (id, doc_id, filename, content_hash, size, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.DocID, rec.Filename, rec.ContentHash, rec.Size, rec.UploadedAt.Format(time.RFC3339))

	return err
}

// FindUploads retrieves past uploads, newest first.
func (s *HistoryService) FindUploads(ctx context.Context, filter pdfanalyze.HistoryFilter) ([]*pdfanalyze.UploadRecord, error) {
	var query strings.Builder
	var args []any
	query.WriteString(`
		SELECT id, doc_id, filename, content_hash, size, uploaded_at
		FROM uploads
		ORDER BY uploaded_at DESC, id`)
	appendPage(&query, &args, filter)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*pdfanalyze.UploadRecord{}
	for rows.Next() {
		var rec pdfanalyze.UploadRecord
		var uploadedAt string
		if err := rows.Scan(&rec.ID, &rec.DocID, &rec.Filename, &rec.ContentHash, &rec.Size, &uploadedAt); err != nil {
			return nil, err
		}
		if rec.UploadedAt, err = scanTime(uploadedAt, "uploaded_at"); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// appendPage adds LIMIT and OFFSET clauses for a history filter. Zero
// values mean unbounded and produce no clause.
func appendPage(query *strings.Builder, args *[]any, filter pdfanalyze.HistoryFilter) {
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, filter.Offset)
	}
}

// scanTime parses a stored RFC3339 timestamp column.
func scanTime(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s timestamp: %w", column, err)
	}
	return t, nil
}
