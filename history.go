package pdfanalyze

import (
	"context"
	"time"
)

// SearchRecord is a locally kept record of a past query.
type SearchRecord struct {
	ID            string    `json:"id"`
	QueryText     string    `json:"queryText"`
	AnswerText    string    `json:"answerText"`
	CitationCount int       `json:"citationCount"`
	SearchedAt    time.Time `json:"searchedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *SearchRecord) Validate() error {
	if r.QueryText == "" {
		return Errorf(EINVALID, "search query text required")
	}
	return nil
}

// UploadRecord is a locally kept record of a past upload.
type UploadRecord struct {
	ID          string    `json:"id"`
	DocID       string    `json:"docId"`
	Filename    string    `json:"filename"`
	ContentHash string    `json:"contentHash"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *UploadRecord) Validate() error {
	if r.Filename == "" {
		return Errorf(EINVALID, "upload filename required")
	}
	return nil
}

// HistoryFilter limits and pages history listings. Records are always
// returned newest first.
type HistoryFilter struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// HistoryService records searches and uploads locally so past activity
// survives between runs.
type HistoryService interface {
	// RecordSearch persists a search record, assigning its ID and
	// timestamp.
	RecordSearch(ctx context.Context, rec *SearchRecord) error

	// FindSearches retrieves past searches, newest first.
	FindSearches(ctx context.Context, filter HistoryFilter) ([]*SearchRecord, error)

	// RecordUpload persists an upload record, assigning its ID and
	// timestamp.
	RecordUpload(ctx context.Context, rec *UploadRecord) error

	// FindUploads retrieves past uploads, newest first.
	FindUploads(ctx context.Context, filter HistoryFilter) ([]*UploadRecord, error)
}
