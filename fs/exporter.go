// Package fs exports documents to local markdown files.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
)

// FormatDocument renders a document as markdown: one heading per group,
// one subheading per section, in the same order the section tree shows
// them.
func FormatDocument(doc *pdfanalyze.Document) string {
	var b strings.Builder
	b.WriteString("# Document ")
	b.WriteString(doc.ID)
	b.WriteString("\n")

	for _, group := range pdfanalyze.NewSectionIndex(doc.Sections).Groups() {
		b.WriteString("\n## ")
		b.WriteString(group.Label)
		b.WriteString("\n")
		for _, section := range group.Sections {
			b.WriteString("\n### ")
			b.WriteString(section.SubLabel)
			b.WriteString("\n\n")
			b.WriteString(strings.TrimRight(section.Text, "\n"))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Exporter writes documents as markdown files.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportDocument writes the document to path, creating parent
// directories as needed.
func (e *Exporter) ExportDocument(doc *pdfanalyze.Document, path string) error {
	if path == "" {
		return pdfanalyze.Errorf(pdfanalyze.EINVALID, "export path required")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(FormatDocument(doc)), 0644)
}
