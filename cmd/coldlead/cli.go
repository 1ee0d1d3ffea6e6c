package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/arcigy/coldlead"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Leads  coldlead.LeadService
	Lists  coldlead.ListService
	Schema coldlead.SchemaService
	Runs   coldlead.RunService
	Cache  coldlead.SentenceCache

	Sentences coldlead.SentenceGenerator
	Names     coldlead.NameGenerator
	Estimator coldlead.PromptEstimator
	Model     string

	Fetcher   coldlead.Fetcher
	Extractor coldlead.DescriptionExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DirectusURL   string `name:"directus-url" env:"DIRECTUS_URL" default:"${directus_url}" help:"Directus base URL"`
	DirectusToken string `name:"directus-token" env:"DIRECTUS_TOKEN" help:"Directus static token"`
	GeminiAPIKey  string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	GeminiModel   string `name:"gemini-model" env:"GEMINI_MODEL" default:"${gemini_model}" help:"Gemini model"`
	DB            string `name:"db" env:"COLDLEAD_DB" help:"Path to the local run database"`
	LogLevel      string `name:"log-level" env:"LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat     string `name:"log-format" env:"LOG_FORMAT" default:"text" enum:"text,json" help:"Log format (text, json)"`

	Names       NamesCmd       `cmd:"" help:"Preview names derived from lead websites"`
	Export      ExportCmd      `cmd:"" help:"Export leads with template sentences"`
	Personalize PersonalizeCmd `cmd:"" help:"Export leads with generated sentences"`
	Rename      RenameCmd      `cmd:"" help:"Rename leads with generated company names"`
	Pull        PullCmd        `cmd:"" help:"Dump leads to a JSON file"`
	Lists       ListsCmd       `cmd:"" help:"Manage outreach lists"`
	Schema      SchemaCmd      `cmd:"" help:"Provision the lead store schema"`
	Import      ImportCmd      `cmd:"" help:"Import leads from a CSV file"`
	Enrich      EnrichCmd      `cmd:"" help:"Fill missing abstracts from lead websites"`
	Runs        RunsCmd        `cmd:"" help:"Show recorded personalization runs"`
}

// NamesCmd is the "names" subcommand.
type NamesCmd struct {
	Limit int `default:"50" help:"Number of leads to inspect"`
	Rows  int `default:"21" help:"Maximum number of differing rows to show"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Output string `short:"o" required:"" help:"Output file (.csv or .xlsx)"`
	Input  string `short:"i" type:"existingfile" help:"Read leads from a JSON dump instead of Directus"`
}

// PersonalizeCmd is the "personalize" subcommand.
type PersonalizeCmd struct {
	Output      string        `short:"o" required:"" help:"Output file (.csv or .xlsx)"`
	Input       string        `short:"i" type:"existingfile" help:"Read leads from a JSON dump instead of Directus"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent generator calls (1 runs sequentially)"`
	Delay       time.Duration `default:"0s" help:"Delay between calls when running sequentially"`
	Timeout     time.Duration `default:"10s" help:"Timeout for a single generator call"`
	NoCache     bool          `help:"Do not reuse cached sentences"`
	Estimate    bool          `help:"Count prompt tokens without calling the API"`
}

// RenameCmd is the "rename" subcommand.
type RenameCmd struct {
	Delay  time.Duration `default:"500ms" help:"Delay between generator calls"`
	Limit  int           `default:"0" help:"Maximum number of leads to process (0 = all)"`
	DryRun bool          `help:"Show changes without writing them"`
}

// PullCmd is the "pull" subcommand.
type PullCmd struct {
	Output string `short:"o" required:"" help:"Output JSON file"`
}

// ListsCmd groups the list subcommands.
type ListsCmd struct {
	Assign   ListsAssignCmd   `cmd:"" help:"Assign every lead to a list"`
	MoveJobs ListsMoveJobsCmd `cmd:"" name:"move-jobs" help:"Move leads of Google Maps jobs into a list"`
}

// ListsAssignCmd is the "lists assign" subcommand.
type ListsAssignCmd struct {
	Name string `arg:"" help:"List name"`
}

// ListsMoveJobsCmd is the "lists move-jobs" subcommand.
type ListsMoveJobsCmd struct {
	Jobs []string `name:"job" required:"" help:"Google Maps job ID (repeatable)"`
	List string   `default:"Statik" help:"Target list name"`
}

// SchemaCmd groups the schema subcommands.
type SchemaCmd struct {
	Init SchemaInitCmd `cmd:"" help:"Create the list collection and list fields"`
}

// SchemaInitCmd is the "schema init" subcommand.
type SchemaInitCmd struct{}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File      string   `arg:"" type:"existingfile" help:"CSV file to import"`
	Terms     []string `name:"term" default:"stati,inzinier,nosn" help:"Import rows whose title or category contains a term (repeatable)"`
	All       bool     `help:"Import every row regardless of terms"`
	List      string   `default:"Statik" help:"List to put imported leads in"`
	UserEmail string   `name:"user-email" env:"COLDLEAD_USER_EMAIL" help:"Owner of imported leads"`
	DryRun    bool     `help:"Count matching rows without writing them"`
}

// EnrichCmd is the "enrich" subcommand.
type EnrichCmd struct {
	Concurrency int           `short:"c" default:"10" help:"Concurrent fetch limit"`
	Timeout     time.Duration `default:"15s" help:"Timeout for a single fetch"`
	Limit       int           `default:"0" help:"Maximum number of leads to process (0 = all)"`
	DryRun      bool          `help:"Show descriptions without writing them"`
}

// RunsCmd groups the run subcommands.
type RunsCmd struct {
	List   RunsListCmd   `cmd:"" default:"withargs" help:"List recorded runs"`
	Export RunsExportCmd `cmd:"" help:"Write a recorded run's rows to a file"`
}

// RunsListCmd is the "runs list" subcommand.
type RunsListCmd struct {
	Limit int `default:"20" help:"Maximum number of runs to show"`
}

// RunsExportCmd is the "runs export" subcommand.
type RunsExportCmd struct {
	ID     string `arg:"" help:"Run ID"`
	Output string `short:"o" required:"" help:"Output file (.csv or .xlsx)"`
}
