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
	"github.com/fwojciec/pagelabel"
	"github.com/fwojciec/pagelabel/docx"
	"github.com/fwojciec/pagelabel/gazetteer"
	"github.com/fwojciec/pagelabel/gdocs"
	"github.com/fwojciec/pagelabel/gemini"
	"github.com/fwojciec/pagelabel/goquery"
	plslog "github.com/fwojciec/pagelabel/slog"
	"github.com/fwojciec/pagelabel/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
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
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagelabel"),
		kong.Description("Label webpage exports and build training datasets"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagelabel --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database only for commands that store labels
	if cmd == "labels" || (cmd == "label" && cli.Label.Store) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAGELABEL_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.Labels = sqlite.NewLabelService(m.DB)
	}

	if cmd == "label" {
		g, err := gazetteer.NewDefault()
		if err != nil {
			return fmt.Errorf("failed to load gazetteer: %w", err)
		}
		deps.Logger.Debug("gazetteer loaded", "names", g.Len(), "first_words", g.FirstWords())
		deps.Gazetteer = plslog.NewLoggingGazetteer(g, deps.Logger)
	}

	if cmd == "generate" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		gen := gemini.NewGenerator(client.Models, cli.Generate.Model, gemini.NewLimiter(cli.Generate.RPS))
		deps.Generator = plslog.NewLoggingGenerator(gen, deps.Logger)
	}

	if cmd == "tokens" {
		tokenCounter, err := gemini.NewTokenCounter(gemini.DefaultModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.Tokens = tokenCounter
	}

	return kongCtx.Run(deps)
}

// Decoders returns the export decoders keyed by file extension.
func Decoders() map[string]pagelabel.NodeDecoder {
	html := goquery.NewDecoder()
	return map[string]pagelabel.NodeDecoder{
		".docx": docx.NewDecoder(),
		".html": html,
		".htm":  html,
		".json": gdocs.NewDecoder(),
	}
}

func defaultDBPath() string {
	if path := os.Getenv("PAGELABEL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagelabel.db"
	}
	dir := filepath.Join(home, ".pagelabel")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagelabel.db")
}
