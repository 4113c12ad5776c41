package main

import (
	"fmt"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	ref, err := deps.Resolver.Resolve(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfanalyze.ErrorMessage(err))
		return err
	}

	if !ref.Found() {
		fmt.Fprintf(deps.Stdout, "No matching section for %q.\n", c.Source)
		return nil
	}

	// The service reports only the section id; which document it
	// belongs to must come from context the caller already has.
	fmt.Fprintf(deps.Stdout, "Section: %s\n", ref.SectionID)
	return nil
}
