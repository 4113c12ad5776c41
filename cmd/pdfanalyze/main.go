package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
	"github.com/MarkRogolino07/pdf-analyze/cache"
	"github.com/MarkRogolino07/pdf-analyze/fs"
	pdfhttp "github.com/MarkRogolino07/pdf-analyze/http"
	"github.com/MarkRogolino07/pdf-analyze/resolve"
	pdfslog "github.com/MarkRogolino07/pdf-analyze/slog"
	"github.com/MarkRogolino07/pdf-analyze/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service base URL. Set before calling Run().
	BaseURL string

	// History database path. Set before calling Run().
	DBPath string

	// SQLite database used by the history service.
	DB *sqlite.DB

	// Shared request cache, exposed for end-to-end testing.
	Cache *cache.Store
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		BaseURL: defaultBaseURL(),
		DBPath:  defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Cache != nil {
		_ = m.Cache.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pdfanalyze"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pdfanalyze --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open the local history database.
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PDFANALYZE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Service calls are logged through decorators; without --verbose
	// only errors reach stderr.
	level := slog.LevelError
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	client := pdfhttp.NewClient(m.BaseURL)
	m.Cache = cache.New()

	deps.Cache = m.Cache
	deps.DB = m.DB
	deps.Documents = pdfslog.NewLoggingDocumentService(client, logger)
	deps.Queries = pdfslog.NewLoggingQueryService(client, logger)
	deps.Citations = pdfslog.NewLoggingCitationService(client, logger)
	deps.History = sqlite.NewHistoryService(m.DB)
	deps.Resolver = resolve.NewResolver(m.Cache, deps.Citations)
	deps.Exporter = fs.NewExporter()

	return kongCtx.Run(deps)
}

func defaultBaseURL() string {
	if url := os.Getenv("PDFANALYZE_API_URL"); url != "" {
		return url
	}
	return pdfhttp.DefaultBaseURL
}

func defaultDBPath() string {
	if path := os.Getenv("PDFANALYZE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pdfanalyze.db"
	}
	dir := filepath.Join(home, ".pdfanalyze")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pdfanalyze.db")
}

// fetchDocument loads a document through the shared cache so repeated
// commands within a session reuse one request.
func fetchDocument(deps *Dependencies, id string) (*pdfanalyze.Document, error) {
	return cache.Query(deps.Ctx, deps.Cache, pdfanalyze.DocumentCacheKey(id), func(ctx context.Context) (*pdfanalyze.Document, error) {
		return deps.Documents.FindDocumentByID(ctx, id)
	})
}
