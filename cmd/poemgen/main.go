// Command poemgen is a terminal client for the AI poem generator.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/poemgen/internal/application/usecase"
	"github.com/tesso57/poemgen/internal/infrastructure/clipboard"
	"github.com/tesso57/poemgen/internal/infrastructure/config"
	"github.com/tesso57/poemgen/internal/infrastructure/download"
	"github.com/tesso57/poemgen/internal/infrastructure/logging"
	"github.com/tesso57/poemgen/internal/infrastructure/poemapi"
	"github.com/tesso57/poemgen/internal/presentation/tui"
	"github.com/tesso57/poemgen/internal/presentation/tui/state"
)

var version = "dev"

type cli struct {
	Config  string           `help:"Config file path (default ~/.config/poemgen/config.yaml)." type:"path"`
	APIBase string           `name:"api-base" help:"Backend base URL. Overrides API_BASE and the config file."`
	Route   string           `help:"Screen to open: / or /poem-generator." default:"/"`
	LogFile string           `name:"log-file" help:"Log file path." type:"path"`
	Version kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("poemgen"),
		kong.Description("Generate poems from the terminal."),
		kong.Vars{"version": version},
	)

	model, closer, err := setup(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "poemgen: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = closer.Close() }()

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		slog.Error("program exited with error", "error", err)
		_ = closer.Close()
		fmt.Fprintf(os.Stderr, "poemgen: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration, installs the logger and wires the model.
// The returned closer releases the log file.
func setup(c cli) (*tui.Model, io.Closer, error) {
	route, err := state.ParseRoute(c.Route)
	if err != nil {
		return nil, nil, err
	}

	store, err := config.Load(c.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := store.Settings
	if base := strings.TrimRight(strings.TrimSpace(c.APIBase), "/"); base != "" {
		cfg.API.BaseURL = base
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}

	logger, closer, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logger)
	slog.Info("starting poemgen",
		"version", version,
		"config", store.Path(),
		"api_base", cfg.API.BaseURL,
		"route", string(route),
	)

	client := poemapi.NewClient(poemapi.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	})
	svc := usecase.NewPoemService(client, clipboard.NewSystem(), download.NewDir(cfg.Download.Dir))
	return tui.NewModel(cfg, svc, route), closer, nil
}
