package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/dictscrape"
	"github.com/fwojciec/dictscrape/config"
	"github.com/fwojciec/dictscrape/etree"
	"github.com/fwojciec/dictscrape/fs"
	"github.com/fwojciec/dictscrape/goquery"
	"github.com/fwojciec/dictscrape/htmlrender"
	"github.com/fwojciec/dictscrape/htmltomarkdown"
	dicthttp "github.com/fwojciec/dictscrape/http"
	"github.com/fwojciec/dictscrape/lookup"
	dictslog "github.com/fwojciec/dictscrape/slog"
	"github.com/fwojciec/dictscrape/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		ReportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration. Loaded from DICTSCRAPE_CONFIG and the environment
	// when nil at the time Run is called.
	Config *config.Config

	// SQLite database used by the saved word list.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dictscrape"),
		kong.Description("Look up words in Macmillan Dictionary and keep a saved word list."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'dictscrape --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Config == nil {
		if m.Config, err = config.Load(); err != nil {
			return err
		}
	}

	level, err := config.ParseLevel(m.Config.Log.Level)
	if err != nil {
		return err
	}
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire the lookup pipeline
	opts := []dicthttp.Option{dicthttp.WithTimeout(m.Config.HTTP.Timeout)}
	if m.Config.HTTP.UserAgent != "" {
		opts = append(opts, dicthttp.WithUserAgent(m.Config.HTTP.UserAgent))
	}
	fetcher := dictslog.NewLoggingFetcher(dicthttp.NewFetcher(opts...), logger)
	defer fetcher.Close()

	parserSvc := dictslog.NewLoggingParser(goquery.NewParser(), logger)
	deps.Dictionary = dictslog.NewLoggingDictionary(
		lookup.NewService(fetcher, parserSvc, m.Config.DictionarySite()), logger)
	deps.Dialect = m.Config.Dialect()
	deps.Renderer = htmlrender.NewRenderer()
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Encoder = etree.NewEncoder()
	deps.Decoder = etree.NewDecoder()
	deps.NewStore = func(dir, name string) dictscrape.EntryStore {
		return fs.NewFileStore(dir, name)
	}

	// Only the saved-list commands need the database
	if !strings.HasPrefix(kongCtx.Command(), "lookup") {
		if err := os.MkdirAll(filepath.Dir(m.Config.Database.Path), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(m.Config.Database.Path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DICTSCRAPE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.Config.Database.Path, err)
		}
		defer m.Close()

		deps.Saved = dictslog.NewLoggingSavedEntryService(sqlite.NewSavedEntryService(m.DB), logger)
	}

	return kongCtx.Run(deps)
}
