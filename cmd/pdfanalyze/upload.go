package main

import (
	"fmt"
	"os"
	"path/filepath"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
	"github.com/cespare/xxhash/v2"
)

// Run executes the upload command.
func (c *UploadCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: reading %s: %s\n", c.Path, err)
		return err
	}

	filename := filepath.Base(c.Path)
	contentHash := fmt.Sprintf("%016x", xxhash.Sum64(data))

	receipt, err := deps.Documents.UploadDocument(deps.Ctx, filename, data)
	if err != nil {
		// The file stays selected, so to speak: the path is still on
		// the command line and a retry needs no re-selection.
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfanalyze.ErrorMessage(err))
		return err
	}

	// The document list is now out of date everywhere.
	deps.Cache.Invalidate(pdfanalyze.DocumentsCacheKey())

	if err := deps.History.RecordUpload(deps.Ctx, &pdfanalyze.UploadRecord{
		DocID:       receipt.DocID,
		Filename:    filename,
		ContentHash: contentHash,
		Size:        int64(len(data)),
	}); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to record upload history: %s\n", err)
	}

	fmt.Fprintf(deps.Stdout, "Uploaded %s (%d bytes, hash %s)\n", filename, len(data), contentHash)
	fmt.Fprintf(deps.Stdout, "Document ID: %s\n", receipt.DocID)
	if receipt.Message != "" {
		fmt.Fprintln(deps.Stdout, receipt.Message)
	}

	return nil
}
