package pdfanalyze

import "context"

// DocumentStatus describes the ingestion state of a document.
type DocumentStatus string

// DocumentStatus values.
const (
	StatusPending    DocumentStatus = "pending"
	StatusInProgress DocumentStatus = "in_progress"
	StatusCompleted  DocumentStatus = "completed"
	StatusFailed     DocumentStatus = "failed"
)

// Document represents an ingested document and its sections.
//
// The backing service does not report ingestion status yet, so clients
// synthesize StatusCompleted for every document they receive. This is a
// known gap in the service, not something to paper over here.
type Document struct {
	ID       string         `json:"id"`
	Status   DocumentStatus `json:"status"`
	Sections []Section      `json:"sections"`
}

// Section represents a titled, indexed passage of a document.
//
// CitationKey is the value citations reference; GroupLabel and SubLabel
// are presentation metadata only and are never used as identity.
type Section struct {
	ID          string `json:"id"`
	GroupLabel  string `json:"groupLabel"`
	SubLabel    string `json:"subLabel"`
	CitationKey string `json:"citationKey"`
	Text        string `json:"text"`
}

// UploadReceipt is the service's acknowledgement of an uploaded file.
type UploadReceipt struct {
	DocID   string `json:"docId"`
	Message string `json:"message"`
}

// DocumentService represents a service for retrieving and uploading
// documents.
type DocumentService interface {
	// ListDocuments retrieves all documents known to the service.
	ListDocuments(ctx context.Context) ([]*Document, error)

	// FindDocumentByID retrieves a single document with its sections.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// UploadDocument submits file bytes for ingestion and returns the
	// service's receipt.
	UploadDocument(ctx context.Context, filename string, data []byte) (*UploadReceipt, error)
}

// Cache key constructors. Per-document keys share the documents prefix
// so that invalidating "documents" after an upload covers the list and
// every cached document.

// DocumentsCacheKey returns the cache key for the document list.
func DocumentsCacheKey() string { return "documents" }

// DocumentCacheKey returns the cache key for a single document.
func DocumentCacheKey(id string) string { return "documents:" + id }
