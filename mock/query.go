package mock

import (
	"context"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
)

var _ pdfanalyze.QueryService = (*QueryService)(nil)

// QueryService is a mock implementation of pdfanalyze.QueryService.
type QueryService struct {
	RunQueryFn func(ctx context.Context, text string) (*pdfanalyze.QueryResult, error)
}

func (s *QueryService) RunQuery(ctx context.Context, text string) (*pdfanalyze.QueryResult, error) {
	return s.RunQueryFn(ctx, text)
}

var _ pdfanalyze.CitationService = (*CitationService)(nil)

// CitationService is a mock implementation of pdfanalyze.CitationService.
type CitationService struct {
	ResolveCitationRawFn func(ctx context.Context, sourceKey string) (string, error)
}

func (s *CitationService) ResolveCitationRaw(ctx context.Context, sourceKey string) (string, error) {
	return s.ResolveCitationRawFn(ctx, sourceKey)
}
