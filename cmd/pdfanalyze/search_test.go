package main_test

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
	"github.com/MarkRogolino07/pdf-analyze/cache"
	main "github.com/MarkRogolino07/pdf-analyze/cmd/pdfanalyze"
	"github.com/MarkRogolino07/pdf-analyze/mock"
	"github.com/MarkRogolino07/pdf-analyze/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints answer and per-citation resolution", func(t *testing.T) {
		t.Parallel()

		queries := &mock.QueryService{
			RunQueryFn: func(_ context.Context, text string) (*pdfanalyze.QueryResult, error) {
				return &pdfanalyze.QueryResult{
					QueryText:  text,
					AnswerText: "Chapter 2 covers methods.",
					Citations: []pdfanalyze.Citation{
						{SourceKey: "src-1", Text: "first passage"},
						{SourceKey: "src-2", Text: "second passage"},
						{SourceKey: "src-3", Text: "third passage"},
					},
				}, nil
			},
		}

		citations := &mock.CitationService{
			ResolveCitationRawFn: func(_ context.Context, sourceKey string) (string, error) {
				switch sourceKey {
				case "src-1":
					return `"abc123"`, nil
				case "src-2":
					return "No matching section found", nil
				default:
					return "", pdfanalyze.Errorf(pdfanalyze.ETRANSPORT, "HTTP 500: lookup failed")
				}
			},
		}

		store := cache.New()
		var recorded *pdfanalyze.SearchRecord
		history := &mock.HistoryService{
			RecordSearchFn: func(_ context.Context, rec *pdfanalyze.SearchRecord) error {
				recorded = rec
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Cache:    store,
			Queries:  queries,
			History:  history,
			Resolver: resolve.NewResolver(store, citations),
		}

		cmd := &main.SearchCmd{Question: "what is chapter 2 about?"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Chapter 2 covers methods.")
		assert.Contains(t, output, "Citations (3):")
		assert.Contains(t, output, "section: abc123")
		assert.Contains(t, output, "no matching section")
		assert.Contains(t, output, "resolution failed: HTTP 500: lookup failed")

		require.NotNil(t, recorded)
		assert.Equal(t, "what is chapter 2 about?", recorded.QueryText)
		assert.Equal(t, 3, recorded.CitationCount)
	})

	t.Run("duplicate citations share one resolution", func(t *testing.T) {
		t.Parallel()

		queries := &mock.QueryService{
			RunQueryFn: func(_ context.Context, text string) (*pdfanalyze.QueryResult, error) {
				return &pdfanalyze.QueryResult{
					QueryText:  text,
					AnswerText: "answer",
					Citations: []pdfanalyze.Citation{
						{SourceKey: "src-1", Text: "a"},
						{SourceKey: "src-1", Text: "b"},
						{SourceKey: "src-1", Text: "c"},
					},
				}, nil
			},
		}

		var calls atomic.Int64
		citations := &mock.CitationService{
			ResolveCitationRawFn: func(_ context.Context, _ string) (string, error) {
				calls.Add(1)
				return `"abc123"`, nil
			},
		}

		store := cache.New()
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Cache:   store,
			Queries: queries,
			History: &mock.HistoryService{
				RecordSearchFn: func(_ context.Context, _ *pdfanalyze.SearchRecord) error { return nil },
			},
			Resolver: resolve.NewResolver(store, citations),
		}

		cmd := &main.SearchCmd{Question: "q"}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("query failure aborts before any resolution", func(t *testing.T) {
		t.Parallel()

		queries := &mock.QueryService{
			RunQueryFn: func(_ context.Context, _ string) (*pdfanalyze.QueryResult, error) {
				return nil, pdfanalyze.Errorf(pdfanalyze.ETRANSPORT, "HTTP 500: search backend down")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Cache:   cache.New(),
			Queries: queries,
		}

		cmd := &main.SearchCmd{Question: "q"}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "search backend down")
	})
}
