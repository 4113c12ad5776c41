package main

import (
	"fmt"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	doc, err := fetchDocument(deps, c.ID)
	if err != nil {
		if pdfanalyze.ErrorCode(err) == pdfanalyze.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'pdfanalyze list' to see available documents.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfanalyze.ErrorMessage(err))
		return err
	}

	out := c.Out
	if out == "" {
		out = doc.ID + ".md"
	}

	if err := deps.Exporter.ExportDocument(doc, out); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %s to %s\n", doc.ID, out)
	return nil
}
