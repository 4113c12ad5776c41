// Package slog provides logging decorators for the service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
)

// Ensure decorators implement the service interfaces.
var (
	_ pdfanalyze.DocumentService = (*LoggingDocumentService)(nil)
	_ pdfanalyze.QueryService    = (*LoggingQueryService)(nil)
	_ pdfanalyze.CitationService = (*LoggingCitationService)(nil)
)

// LoggingDocumentService wraps a DocumentService with request logging.
type LoggingDocumentService struct {
	next   pdfanalyze.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next pdfanalyze.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// ListDocuments delegates to the wrapped service and logs the outcome.
func (s *LoggingDocumentService) ListDocuments(ctx context.Context) ([]*pdfanalyze.Document, error) {
	begin := time.Now()
	docs, err := s.next.ListDocuments(ctx)
	s.log(ctx, "list documents", begin, err, "count", len(docs))
	return docs, err
}

// FindDocumentByID delegates to the wrapped service and logs the outcome.
func (s *LoggingDocumentService) FindDocumentByID(ctx context.Context, id string) (*pdfanalyze.Document, error) {
	begin := time.Now()
	doc, err := s.next.FindDocumentByID(ctx, id)
	s.log(ctx, "find document", begin, err, "id", id)
	return doc, err
}

// UploadDocument delegates to the wrapped service and logs the outcome.
func (s *LoggingDocumentService) UploadDocument(ctx context.Context, filename string, data []byte) (*pdfanalyze.UploadReceipt, error) {
	begin := time.Now()
	receipt, err := s.next.UploadDocument(ctx, filename, data)
	s.log(ctx, "upload document", begin, err, "filename", filename, "bytes", len(data))
	return receipt, err
}

func (s *LoggingDocumentService) log(ctx context.Context, msg string, begin time.Time, err error, attrs ...any) {
	logService(ctx, s.logger, msg, begin, err, attrs...)
}

// LoggingQueryService wraps a QueryService with request logging.
type LoggingQueryService struct {
	next   pdfanalyze.QueryService
	logger *slog.Logger
}

// NewLoggingQueryService creates a new LoggingQueryService.
func NewLoggingQueryService(next pdfanalyze.QueryService, logger *slog.Logger) *LoggingQueryService {
	return &LoggingQueryService{next: next, logger: logger}
}

// RunQuery delegates to the wrapped service and logs the outcome.
func (s *LoggingQueryService) RunQuery(ctx context.Context, text string) (*pdfanalyze.QueryResult, error) {
	begin := time.Now()
	result, err := s.next.RunQuery(ctx, text)
	citations := 0
	if result != nil {
		citations = len(result.Citations)
	}
	logService(ctx, s.logger, "run query", begin, err, "query", text, "citations", citations)
	return result, err
}

// LoggingCitationService wraps a CitationService with request logging.
type LoggingCitationService struct {
	next   pdfanalyze.CitationService
	logger *slog.Logger
}

// NewLoggingCitationService creates a new LoggingCitationService.
func NewLoggingCitationService(next pdfanalyze.CitationService, logger *slog.Logger) *LoggingCitationService {
	return &LoggingCitationService{next: next, logger: logger}
}

// ResolveCitationRaw delegates to the wrapped service and logs the outcome.
func (s *LoggingCitationService) ResolveCitationRaw(ctx context.Context, sourceKey string) (string, error) {
	begin := time.Now()
	raw, err := s.next.ResolveCitationRaw(ctx, sourceKey)
	logService(ctx, s.logger, "resolve citation", begin, err, "source", sourceKey)
	return raw, err
}

func logService(ctx context.Context, logger *slog.Logger, msg string, begin time.Time, err error, attrs ...any) {
	attrs = append(attrs, "duration", time.Since(begin))
	if err != nil {
		attrs = append(attrs, "error", pdfanalyze.ErrorMessage(err), "code", pdfanalyze.ErrorCode(err))
		logger.ErrorContext(ctx, msg, attrs...)
		return
	}
	logger.InfoContext(ctx, msg, attrs...)
}
