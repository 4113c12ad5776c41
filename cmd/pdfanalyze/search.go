package main

import (
	"context"
	"fmt"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
	"github.com/MarkRogolino07/pdf-analyze/cache"
	"golang.org/x/sync/errgroup"
)

// citationOutcome holds one citation's resolution result. A citation is
// either resolved to a section, resolved to nothing, or failed to
// resolve; the three cases render differently.
type citationOutcome struct {
	ref pdfanalyze.SectionRef
	err error
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	result, err := cache.Query(deps.Ctx, deps.Cache, pdfanalyze.QueryCacheKey(c.Question), func(ctx context.Context) (*pdfanalyze.QueryResult, error) {
		return deps.Queries.RunQuery(ctx, c.Question)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfanalyze.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Query: %s\n\n%s\n", result.QueryText, result.AnswerText)

	if len(result.Citations) > 0 {
		outcomes := c.resolveCitations(deps, result.Citations)

		fmt.Fprintf(deps.Stdout, "\nCitations (%d):\n", len(result.Citations))
		for i, citation := range result.Citations {
			fmt.Fprintf(deps.Stdout, "\n%d. %s\n   %s\n", i+1, citation.SourceKey, citation.Text)
			switch outcome := outcomes[i]; {
			case outcome.err != nil:
				fmt.Fprintf(deps.Stdout, "   resolution failed: %s\n", pdfanalyze.ErrorMessage(outcome.err))
			case outcome.ref.Found():
				fmt.Fprintf(deps.Stdout, "   section: %s\n", outcome.ref.SectionID)
			default:
				fmt.Fprintln(deps.Stdout, "   no matching section")
			}
		}
	}

	if err := deps.History.RecordSearch(deps.Ctx, &pdfanalyze.SearchRecord{
		QueryText:     result.QueryText,
		AnswerText:    result.AnswerText,
		CitationCount: len(result.Citations),
	}); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to record search history: %s\n", err)
	}

	return nil
}

// resolveCitations resolves all citations concurrently. Failures are
// captured per citation rather than aborting the group: one unresolvable
// citation must not hide the others. Duplicate source keys share a
// single lookup through the cache.
func (c *SearchCmd) resolveCitations(deps *Dependencies, citations []pdfanalyze.Citation) []citationOutcome {
	outcomes := make([]citationOutcome, len(citations))

	var g errgroup.Group
	for i, citation := range citations {
		g.Go(func() error {
			ref, err := deps.Resolver.Resolve(deps.Ctx, citation.SourceKey)
			outcomes[i] = citationOutcome{ref: ref, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}
