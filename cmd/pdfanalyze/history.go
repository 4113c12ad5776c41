package main

import (
	"fmt"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := pdfanalyze.HistoryFilter{Limit: c.Limit}

	if c.Uploads {
		uploads, err := deps.History.FindUploads(deps.Ctx, filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		if len(uploads) == 0 {
			fmt.Fprintln(deps.Stdout, "No uploads recorded.")
			return nil
		}
		for _, rec := range uploads {
			fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d bytes\n",
				rec.UploadedAt.Format("2006-01-02 15:04"), rec.DocID, rec.Filename, rec.Size)
		}
		return nil
	}

	searches, err := deps.History.FindSearches(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	if len(searches) == 0 {
		fmt.Fprintln(deps.Stdout, "No searches recorded.")
		return nil
	}
	for _, rec := range searches {
		fmt.Fprintf(deps.Stdout, "%s  %q  %d citations\n",
			rec.SearchedAt.Format("2006-01-02 15:04"), rec.QueryText, rec.CitationCount)
	}
	return nil
}
