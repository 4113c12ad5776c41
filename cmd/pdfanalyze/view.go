package main

import (
	"fmt"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
	"github.com/MarkRogolino07/pdf-analyze/nav"
)

// Run executes the view command.
func (c *ViewCmd) Run(deps *Dependencies) error {
	doc, err := fetchDocument(deps, c.ID)
	if err != nil {
		if pdfanalyze.ErrorCode(err) == pdfanalyze.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'pdfanalyze list' to see available documents.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfanalyze.ErrorMessage(err))
		return err
	}

	index := pdfanalyze.NewSectionIndex(doc.Sections)

	controller := nav.NewController()
	controller.SetTargetKey(c.Section)
	controller.SetDocument(index)

	fmt.Fprintf(deps.Stdout, "Document %s (%d sections)\n", doc.ID, index.Len())

	if index.Len() == 0 {
		fmt.Fprintln(deps.Stdout, "\nNo sections available.")
		return nil
	}

	selected, hasSelection := controller.Selected()

	for _, group := range index.Groups() {
		fmt.Fprintf(deps.Stdout, "\n%s\n", group.Label)
		for _, section := range group.Sections {
			marker := " "
			if hasSelection && section.ID == selected.ID {
				marker = ">"
			}
			fmt.Fprintf(deps.Stdout, "  %s %s\n", marker, section.SubLabel)
		}
	}

	if hasSelection {
		fmt.Fprintf(deps.Stdout, "\n%s (%s)\n\n%s\n", selected.GroupLabel, selected.SubLabel, selected.Text)
	}

	return nil
}
