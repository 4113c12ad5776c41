package main

import (
	"context"
	"io"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
	"github.com/MarkRogolino07/pdf-analyze/cache"
	"github.com/MarkRogolino07/pdf-analyze/fs"
	"github.com/MarkRogolino07/pdf-analyze/resolve"
	"github.com/MarkRogolino07/pdf-analyze/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Cache     *cache.Store
	DB        *sqlite.DB
	Documents pdfanalyze.DocumentService
	Queries   pdfanalyze.QueryService
	Citations pdfanalyze.CitationService
	History   pdfanalyze.HistoryService
	Resolver  *resolve.Resolver
	Exporter  *fs.Exporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	List    ListCmd    `cmd:"" help:"List uploaded documents"`
	View    ViewCmd    `cmd:"" help:"View a document's section tree and a selected section"`
	Upload  UploadCmd  `cmd:"" help:"Upload a file for ingestion"`
	Search  SearchCmd  `cmd:"" help:"Ask a question across all documents"`
	Resolve ResolveCmd `cmd:"" help:"Resolve a citation source key to its section"`
	History HistoryCmd `cmd:"" help:"Show past searches and uploads"`
	Export  ExportCmd  `cmd:"" help:"Export a document to a markdown file"`

	Verbose bool `short:"v" help:"Log service calls to stderr"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ViewCmd is the "view" subcommand.
type ViewCmd struct {
	ID      string `arg:"" help:"Document ID"`
	Section string `short:"s" help:"Citation key of the section to open (the shareable-link parameter)"`
}

// UploadCmd is the "upload" subcommand.
type UploadCmd struct {
	Path string `arg:"" type:"existingfile" help:"File to upload"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Question string `arg:"" help:"Natural language question"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Source string `arg:"" help:"Citation source key"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Uploads bool `help:"Show uploads instead of searches"`
	Limit   int  `default:"10" help:"Maximum records to show"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID  string `arg:"" help:"Document ID"`
	Out string `short:"o" help:"Output path (defaults to <id>.md)"`
}
