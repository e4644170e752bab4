package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/libra/internal/catalog"
	"github.com/lepinkainen/libra/internal/config"
	"github.com/lepinkainen/libra/internal/datastore"
	"github.com/lepinkainen/libra/internal/export"
	"github.com/lepinkainen/libra/internal/gutendex"
	"github.com/lepinkainen/libra/internal/server"
	"github.com/lepinkainen/libra/internal/tui"
)

var runMenu = tui.Run

// CLI represents the complete command structure for the libra application
type CLI struct {
	// Global flags
	DB      string `help:"Path to the SQLite catalog database file"`
	BaseURL string `help:"Gutendex API base URL"`

	Menu   MenuCmd   `cmd:"" default:"1" help:"Interactive catalog menu"`
	Serve  ServeCmd  `cmd:"" help:"Serve the catalog over HTTP"`
	Fetch  FetchCmd  `cmd:"" help:"Fetch books from Gutendex and persist new titles"`
	Export ExportCmd `cmd:"" help:"Export persisted books as markdown notes"`
}

// MenuCmd runs the interactive menu.
type MenuCmd struct{}

// ServeCmd runs the HTTP surface.
type ServeCmd struct {
	Listen string `help:"Listen address for the HTTP server"`
}

// FetchCmd runs one fetch/search pipeline pass and prints the results.
type FetchCmd struct {
	Query string `arg:"" optional:"" help:"Search term; empty fetches the first catalog page"`
	JSON  bool   `help:"Print results as JSON"`
}

// ExportCmd writes persisted books as markdown notes.
type ExportCmd struct {
	Output    string `short:"o" help:"Directory for exported markdown notes"`
	Overwrite bool   `help:"Overwrite existing notes"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("libra"),
		kong.Description("A console catalog over the Gutendex book API with a local SQLite store."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	config.SetDefaults()

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := viper.BindEnv("gutendex.baseurl", "GUTENDEX_BASE_URL"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetDatabaseFile(cli.DB)
	config.SetGutendexBaseURL(cli.BaseURL)
}

// buildService wires the store and client into a catalog service. The
// caller owns the returned store and must close it.
func buildService() (*catalog.Service, *datastore.SQLiteStore, error) {
	store := datastore.NewSQLiteStore(config.DatabaseFile)
	if err := store.Connect(); err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	client := gutendex.NewClient(gutendex.WithBaseURL(config.GutendexBaseURL))
	return catalog.NewService(client, store), store, nil
}

// Run methods for each command

func (m *MenuCmd) Run() error {
	svc, store, err := buildService()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return runMenu(svc)
}

func (s *ServeCmd) Run() error {
	svc, store, err := buildService()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	listen := s.Listen
	if listen == "" {
		listen = config.ServerListen
	}

	return server.New(svc, listen).ListenAndServe()
}

func (f *FetchCmd) Run() error {
	svc, store, err := buildService()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	books := svc.Search(context.Background(), f.Query)

	if f.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(books)
	}

	fmt.Println(tui.RenderBooks(books, "No books found."))
	return nil
}

func (e *ExportCmd) Run() error {
	svc, store, err := buildService()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	outputDir := e.Output
	if outputDir == "" {
		outputDir = config.MarkdownOutputDir
	}

	written, err := export.WriteNotes(svc.ListPersisted(), outputDir, e.Overwrite)
	if err != nil {
		return err
	}
	slog.Info("Export finished", "notes", written, "dir", outputDir)
	return nil
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
