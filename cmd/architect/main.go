// Package main provides the Architect TUI application: an AI workflow
// architect that turns a chat about a project idea into a node graph plus
// Markdown files, exportable as an Obsidian vault.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	appconfig "github.com/entrhq/architect/pkg/config"
	"github.com/entrhq/architect/pkg/logging"
	"github.com/entrhq/architect/pkg/session"
	"github.com/entrhq/architect/pkg/tui"
	"github.com/entrhq/architect/pkg/turn"
)

const version = "0.1.0"

// Config holds the command line configuration.
type Config struct {
	Provider    string
	Model       string
	BaseURL     string
	APIKey      string
	DataDir     string
	ConfigPath  string
	ShowVersion bool
	ListModels  bool
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("Architect v%s\n", version)
		return
	}
	if config.ListModels {
		for _, m := range appconfig.Models() {
			fmt.Printf("%-24s %-8s %s\n", m.ID, m.Provider, m.Description)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := run(ctx, config); err != nil {
		cancel()
		log.Fatalf("Application error: %v", err)
	}
}

// parseFlags parses command line flags and environment variables.
func parseFlags() *Config {
	config := &Config{}

	flag.StringVar(&config.Provider, "provider", "", "Assistant provider: gemini or openai (default: config file, then gemini)")
	flag.StringVar(&config.Model, "model", "", "Model to use (default: config file, then provider default)")
	flag.StringVar(&config.BaseURL, "base-url", "", "OpenAI-compatible API base URL (or set OPENAI_BASE_URL env var)")
	flag.StringVar(&config.APIKey, "api-key", "", "API key (or set GEMINI_API_KEY / OPENAI_API_KEY env var)")
	flag.StringVar(&config.DataDir, "data-dir", "", "Session data directory (default: ~/.architect)")
	flag.StringVar(&config.ConfigPath, "config", "", "Config file path (default: ~/.architect/config.json)")
	flag.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")
	flag.BoolVar(&config.ListModels, "list-models", false, "List known models and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Architect - an AI workflow architect for Obsidian\n\n")
		fmt.Fprintf(os.Stderr, "Usage: architect [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  GEMINI_API_KEY     Gemini API key\n")
		fmt.Fprintf(os.Stderr, "  OPENAI_API_KEY     OpenAI API key\n")
		fmt.Fprintf(os.Stderr, "  OPENAI_BASE_URL    OpenAI API base URL (for compatible APIs)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  architect                                # Gemini with GEMINI_API_KEY\n")
		fmt.Fprintf(os.Stderr, "  architect -provider openai -model gpt-4o\n")
		fmt.Fprintf(os.Stderr, "  architect -base-url http://localhost:11434/v1 -provider openai\n")
	}

	flag.Parse()
	return config
}

// run wires configuration, storage, providers, and the TUI together.
func run(ctx context.Context, config *Config) error {
	logger, err := logging.NewLogger("main")
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	store, err := appconfig.NewFileStore(config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	llm := appconfig.ResolveLLM(appconfig.LoadLLM(store), config.Provider, config.Model, config.BaseURL, config.APIKey)
	provider, err := appconfig.BuildProvider(llm)
	if err != nil {
		return err
	}
	logger.Infof("provider %s model %s", llm.Provider, llm.Model)

	storage, err := session.NewFileStorage(config.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open session storage: %w", err)
	}
	sessions := session.NewStore(storage, session.WithDefaultModel(llm.Model))
	controller := turn.NewController(sessions, provider)

	return tui.NewExecutor(sessions, controller, tui.WithConfigStore(store)).Run(ctx)
}
