package mock

import (
	"context"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
)

var _ pdfanalyze.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of pdfanalyze.DocumentService.
type DocumentService struct {
	ListDocumentsFn    func(ctx context.Context) ([]*pdfanalyze.Document, error)
	FindDocumentByIDFn func(ctx context.Context, id string) (*pdfanalyze.Document, error)
	UploadDocumentFn   func(ctx context.Context, filename string, data []byte) (*pdfanalyze.UploadReceipt, error)
}

func (s *DocumentService) ListDocuments(ctx context.Context) ([]*pdfanalyze.Document, error) {
	return s.ListDocumentsFn(ctx)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*pdfanalyze.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) UploadDocument(ctx context.Context, filename string, data []byte) (*pdfanalyze.UploadReceipt, error) {
	return s.UploadDocumentFn(ctx, filename, data)
}
