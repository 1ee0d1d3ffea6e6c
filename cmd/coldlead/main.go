package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/arcigy/coldlead"
	"github.com/arcigy/coldlead/directus"
	"github.com/arcigy/coldlead/gemini"
	"github.com/arcigy/coldlead/goquery"
	coldhttp "github.com/arcigy/coldlead/http"
	coldslog "github.com/arcigy/coldlead/slog"
	"github.com/arcigy/coldlead/sqlite"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

// DefaultDirectusURL is the lead store used when DIRECTUS_URL is not set.
const DefaultDirectusURL = "https://directus-buk1-production.up.railway.app"

// tokenizerModel is used for token counting when the configured model is
// not known to google.golang.org/genai/tokenizer.
const tokenizerModel = "gemini-2.5-flash"

func main() {
	ctx := context.Background()

	// Variables already set in the environment take precedence.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing. Nil services are built from flags.
	Leads     coldlead.LeadService
	Lists     coldlead.ListService
	Schema    coldlead.SchemaService
	Sentences coldlead.SentenceGenerator
	Names     coldlead.NameGenerator
	Fetcher   coldlead.Fetcher
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("coldlead"),
		kong.Description("Cold-outreach lead pipeline: company names and personalized opening sentences."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"directus_url": DefaultDirectusURL,
			"gemini_model": gemini.DefaultModel,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'coldlead --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := kongCtx.Command()

	logger, err := NewLogger(stderr, cli.LogLevel, cli.LogFormat)
	if err != nil {
		return err
	}
	deps.Logger = logger
	deps.Model = cli.GeminiModel

	// Lead store
	if m.Leads == nil || m.Lists == nil || m.Schema == nil {
		client := directus.NewClient(cli.DirectusURL, directus.WithToken(cli.DirectusToken))
		if m.Leads == nil {
			m.Leads = directus.NewLeadService(client)
		}
		if m.Lists == nil {
			m.Lists = directus.NewListService(client)
		}
		if m.Schema == nil {
			m.Schema = directus.NewSchemaService(client)
		}
	}
	deps.Leads = coldslog.NewLoggingLeadService(m.Leads, logger)
	deps.Lists = m.Lists
	deps.Schema = m.Schema

	// Local run database
	if needsDB(command) {
		path := cli.DB
		if path == "" {
			path = m.DBPath
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set COLDLEAD_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer m.Close()

		deps.Runs = sqlite.NewRunService(m.DB)
		deps.Cache = sqlite.NewSentenceCache(m.DB)
	}

	// Generative text
	switch {
	case command == "personalize" && cli.Personalize.Estimate:
		estimator, err := gemini.NewEstimator(cli.GeminiModel)
		if err != nil {
			estimator, err = gemini.NewEstimator(tokenizerModel)
		}
		if err != nil {
			return fmt.Errorf("failed to load tokenizer: %w", err)
		}
		deps.Estimator = estimator

	case command == "personalize" || command == "rename":
		if m.Sentences == nil || m.Names == nil {
			client, err := newGeminiClient(ctx, cli.GeminiAPIKey, stderr)
			if err != nil {
				return err
			}
			if m.Sentences == nil {
				m.Sentences = gemini.NewSentenceGenerator(client, cli.GeminiModel)
			}
			if m.Names == nil {
				m.Names = gemini.NewNameGenerator(client, cli.GeminiModel)
			}
		}
		deps.Sentences = coldslog.NewLoggingSentenceGenerator(m.Sentences, logger)
		deps.Names = coldslog.NewLoggingNameGenerator(m.Names, logger)
	}

	// Website enrichment
	if command == "enrich" {
		if m.Fetcher == nil {
			m.Fetcher = coldhttp.NewFetcher(coldhttp.WithTimeout(cli.Enrich.Timeout))
		}

		deps.Fetcher = coldslog.NewLoggingFetcher(m.Fetcher, logger)
		deps.Extractor = goquery.NewDescriptionExtractor()
	}

	return kongCtx.Run(deps)
}

// needsDB reports whether a command records or reads local runs.
func needsDB(command string) bool {
	return command == "export" || command == "personalize" || strings.HasPrefix(command, "runs")
}

func newGeminiClient(ctx context.Context, apiKey string, stderr io.Writer) (*genai.Client, error) {
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, coldlead.Errorf(coldlead.EINVALID, "GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "coldlead.db"
	}
	dir := filepath.Join(home, ".coldlead")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "coldlead.db")
}
