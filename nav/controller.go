// Package nav tracks which section of a document is selected. It
// reconciles the initial load, an externally supplied target section
// from a shareable link, user picks, and the select-first-section
// fallback.
package nav

import (
	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
)

// Controller is a long-lived selection state machine for a viewing
// session. It is either in the no-selection state or holds a selected
// section, and re-evaluates its rules whenever the active document or
// the external target key changes:
//
//  1. A target key matching a section by citation key selects that
//     section, overriding any prior selection.
//  2. Otherwise, with no current selection, the first section in
//     document order is selected.
//  3. A user pick selects that section and survives until rule 1 fires
//     again for a changed target key.
//
// Controller is not safe for concurrent use; the viewing session drives
// it from a single goroutine.
type Controller struct {
	index     *pdfanalyze.SectionIndex
	targetKey string
	selected  pdfanalyze.Section
	hasPick   bool
}

// NewController creates a Controller with no document and no selection.
func NewController() *Controller {
	return &Controller{}
}

// SetDocument replaces the active document's section index and
// re-evaluates the selection. A selection carried over from a
// previously viewed document is dropped when the new index does not
// contain it.
func (c *Controller) SetDocument(index *pdfanalyze.SectionIndex) {
	c.index = index
	if c.hasPick {
		if _, ok := index.FindByID(c.selected.ID); !ok {
			c.hasPick = false
			c.selected = pdfanalyze.Section{}
		}
	}
	c.evaluate()
}

// SetTargetKey supplies the external target section, identified by its
// citation key (the shareable-link parameter), and re-evaluates the
// selection.
func (c *Controller) SetTargetKey(key string) {
	c.targetKey = key
	c.evaluate()
}

// Pick records a direct user selection.
func (c *Controller) Pick(section pdfanalyze.Section) {
	c.selected = section
	c.hasPick = true
}

// Selected returns the current selection. The bool result is false in
// the no-selection state.
func (c *Controller) Selected() (pdfanalyze.Section, bool) {
	return c.selected, c.hasPick
}

func (c *Controller) evaluate() {
	if c.index == nil {
		return
	}

	if c.targetKey != "" {
		if match, ok := c.index.FindByCitationKey(c.targetKey); ok {
			c.selected = match
			c.hasPick = true
			return
		}
	}

	if !c.hasPick {
		if first, ok := c.index.First(); ok {
			c.selected = first
			c.hasPick = true
		}
	}
}
