package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
	"github.com/MarkRogolino07/pdf-analyze/cache"
	main "github.com/MarkRogolino07/pdf-analyze/cmd/pdfanalyze"
	"github.com/MarkRogolino07/pdf-analyze/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestUploadCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("uploads file and invalidates the documents cache", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, "paper.pdf", []byte("%PDF-1.4"))

		var uploadedName string
		var uploadedData []byte
		documents := &mock.DocumentService{
			ListDocumentsFn: func(_ context.Context) ([]*pdfanalyze.Document, error) {
				return []*pdfanalyze.Document{}, nil
			},
			UploadDocumentFn: func(_ context.Context, filename string, data []byte) (*pdfanalyze.UploadReceipt, error) {
				uploadedName = filename
				uploadedData = data
				return &pdfanalyze.UploadReceipt{DocID: "doc-9", Message: "queued for ingestion"}, nil
			},
		}

		var recorded *pdfanalyze.UploadRecord
		history := &mock.HistoryService{
			RecordUploadFn: func(_ context.Context, rec *pdfanalyze.UploadRecord) error {
				recorded = rec
				return nil
			},
		}

		store := cache.New()
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Cache:     store,
			Documents: documents,
			History:   history,
		}

		// Warm the documents cache so invalidation is observable.
		listCmd := &main.ListCmd{}
		require.NoError(t, listCmd.Run(deps))
		entry, ok := store.Lookup(pdfanalyze.DocumentsCacheKey())
		require.True(t, ok)
		require.False(t, entry.Stale)

		cmd := &main.UploadCmd{Path: path}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "paper.pdf", uploadedName)
		assert.Equal(t, []byte("%PDF-1.4"), uploadedData)
		assert.Contains(t, stdout.String(), "Document ID: doc-9")
		assert.Contains(t, stdout.String(), "queued for ingestion")

		// The cached document list is stale now and the next list
		// re-fetches.
		entry, ok = store.Lookup(pdfanalyze.DocumentsCacheKey())
		require.True(t, ok)
		assert.True(t, entry.Stale)

		require.NotNil(t, recorded)
		assert.Equal(t, "doc-9", recorded.DocID)
		assert.Equal(t, "paper.pdf", recorded.Filename)
		assert.NotEmpty(t, recorded.ContentHash)
		assert.Equal(t, int64(len("%PDF-1.4")), recorded.Size)
	})

	t.Run("upload failure surfaces the service's raw text", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, "notes.txt", []byte("plain text"))

		documents := &mock.DocumentService{
			UploadDocumentFn: func(_ context.Context, _ string, _ []byte) (*pdfanalyze.UploadReceipt, error) {
				return nil, &pdfanalyze.Error{
					Code:       pdfanalyze.ETRANSPORT,
					Message:    "HTTP 422: only PDF files are supported",
					StatusCode: 422,
					Body:       "only PDF files are supported",
				}
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Cache:     cache.New(),
			Documents: documents,
		}

		cmd := &main.UploadCmd{Path: path}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "only PDF files are supported")
	})

	t.Run("history failure is a warning, not an error", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, "paper.pdf", []byte("%PDF-1.4"))

		documents := &mock.DocumentService{
			UploadDocumentFn: func(_ context.Context, _ string, _ []byte) (*pdfanalyze.UploadReceipt, error) {
				return &pdfanalyze.UploadReceipt{DocID: "doc-9"}, nil
			},
		}
		history := &mock.HistoryService{
			RecordUploadFn: func(_ context.Context, _ *pdfanalyze.UploadRecord) error {
				return pdfanalyze.Errorf(pdfanalyze.EINTERNAL, "disk full")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Cache:     cache.New(),
			Documents: documents,
			History:   history,
		}

		cmd := &main.UploadCmd{Path: path}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "warning: failed to record upload history")
	})
}
