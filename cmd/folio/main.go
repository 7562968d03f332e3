package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Abhishek10293/PortfolioGenerator/internal/config"
	"github.com/Abhishek10293/PortfolioGenerator/internal/store"
	"github.com/Abhishek10293/PortfolioGenerator/internal/tui"
	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("folio " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "paths":
			return printPaths()
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	st, err := store.Open(cfg.DataDir, log)
	if err != nil {
		return err
	}

	// Watch the data dir so edits made outside the app show up live.
	w, err := store.Watch(st, log)
	if err != nil {
		log.Warn("file watcher unavailable", zap.Error(err))
	} else {
		defer w.Close() //nolint:errcheck
	}

	app := tui.NewApp(st, log, domain.ParseTemplate(cfg.DefaultTemplate), version)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// newLogger writes structured logs to a file so they never bleed into the
// alt-screen TUI.
func newLogger(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func printPaths() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	fmt.Println("profiles:", cfg.DataDir)
	fmt.Println("log:     ", cfg.LogFile)
	return nil
}

func printHelp() {
	fmt.Println(`folio - portfolio profiles in your terminal

usage:
  folio              launch the app
  folio paths        print data and log locations
  folio version      print version
  folio help         this help

environment:
  FOLIO_DATA_DIR     override the profile directory

keys (inside the app):
  n                  start a new profile
  enter              view the selected profile
  e / d              edit / delete the selected profile
  /                  filter by skill      r   filter by role
  q                  quit`)
}
