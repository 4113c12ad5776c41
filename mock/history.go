package mock

import (
	"context"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
)

var _ pdfanalyze.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of pdfanalyze.HistoryService.
type HistoryService struct {
	RecordSearchFn func(ctx context.Context, rec *pdfanalyze.SearchRecord) error
	FindSearchesFn func(ctx context.Context, filter pdfanalyze.HistoryFilter) ([]*pdfanalyze.SearchRecord, error)
	RecordUploadFn func(ctx context.Context, rec *pdfanalyze.UploadRecord) error
	FindUploadsFn  func(ctx context.Context, filter pdfanalyze.HistoryFilter) ([]*pdfanalyze.UploadRecord, error)
}

func (s *HistoryService) RecordSearch(ctx context.Context, rec *pdfanalyze.SearchRecord) error {
	return s.RecordSearchFn(ctx, rec)
}

func (s *HistoryService) FindSearches(ctx context.Context, filter pdfanalyze.HistoryFilter) ([]*pdfanalyze.SearchRecord, error) {
	return s.FindSearchesFn(ctx, filter)
}

func (s *HistoryService) RecordUpload(ctx context.Context, rec *pdfanalyze.UploadRecord) error {
	return s.RecordUploadFn(ctx, rec)
}

func (s *HistoryService) FindUploads(ctx context.Context, filter pdfanalyze.HistoryFilter) ([]*pdfanalyze.UploadRecord, error) {
	return s.FindUploadsFn(ctx, filter)
}
