package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/beltools/radseek"
	radfs "github.com/beltools/radseek/fs"
	"github.com/beltools/radseek/search"
	radslog "github.com/beltools/radseek/slog"
	"github.com/beltools/radseek/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the history service.
	DB *sqlite.DB

	// Services for end-to-end testing.
	HistoryService radseek.HistoryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("radseek"),
		kong.Description("Offline keyword search over radar log files."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'radseek --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RADSEEK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.HistoryService = sqlite.NewHistoryService(m.DB)
	deps.DB = m.DB
	deps.History = m.HistoryService

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel()}))
	deps.NewSearcher = func(config radseek.Config) (radseek.Searcher, error) {
		walker, err := radfs.NewWalker(config.Root, config.MaxDepth, config.Extensions)
		if err != nil {
			return nil, err
		}
		decoder := radslog.NewLoggingDecoder(radfs.NewDecoder(config.MaxFileSize), logger)
		engine, err := search.NewEngine(config, walker, decoder)
		if err != nil {
			return nil, err
		}
		return radslog.NewLoggingSearcher(engine, logger), nil
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("RADSEEK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "radseek.db"
	}
	dir := filepath.Join(home, ".radseek")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "radseek.db")
}

func logLevel() slog.Level {
	if os.Getenv("RADSEEK_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
