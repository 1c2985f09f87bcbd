package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"basket/internal/config"
	"basket/internal/logging"
	"basket/internal/store"
	"basket/internal/ui"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	configPath := flag.String("config", "", "config file path (default: the user config dir)")
	debug := flag.Bool("debug", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("basket %s\n", version)
		return
	}

	// Load configuration
	var configSvc config.ConfigService
	if *configPath != "" {
		configSvc = config.NewConfigServiceAt(*configPath)
	} else {
		configSvc = config.NewConfigService()
	}
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "basket: using defaults, config not loaded: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// Set up logging. The terminal belongs to the UI, so the log goes
	// to a file.
	logger, closeLog, err := logging.Setup(cfg.LogFile, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "basket: could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Info("starting basket",
		"version", version,
		"windows", cfg.Windows,
		"seed_items", len(cfg.SeedItems))

	// One store shared by every window
	st := store.New(cfg.SeedItems...)

	// Create UI model
	uiModel := ui.NewModel(st, cfg, configSvc, logger)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Handle termination signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Readiness marker for the end-to-end harness
	if os.Getenv("BASKET_E2E") != "" {
		fmt.Println("__READY__")
	}

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	logger.Info("basket exited")
}
