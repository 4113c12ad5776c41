package main

import (
	"context"
	"fmt"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
	"github.com/MarkRogolino07/pdf-analyze/cache"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	docs, err := cache.Query(deps.Ctx, deps.Cache, pdfanalyze.DocumentsCacheKey(), func(ctx context.Context) ([]*pdfanalyze.Document, error) {
		return deps.Documents.ListDocuments(ctx)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfanalyze.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'pdfanalyze upload' to add one.")
		return nil
	}

	for _, doc := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %d sections  %s\n", doc.ID, len(doc.Sections), doc.Status)
	}

	return nil
}
