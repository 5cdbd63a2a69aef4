package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"storyviewer/internal/config"
	"storyviewer/internal/deck"
	"storyviewer/internal/eventbus"
	"storyviewer/internal/logging"
	"storyviewer/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		deckPath   string
		configPath string
		initPath   string
		noWatch    bool
	)
	flag.StringVar(&deckPath, "deck", "", "Deck file with the stories to show")
	flag.StringVar(&deckPath, "d", "", "Deck file with the stories to show (shorthand)")
	flag.StringVar(&configPath, "config", "", "Config file (default ~/.config/storyviewer/config.toml)")
	flag.StringVar(&initPath, "init", "", "Write the built-in deck to this file and exit")
	flag.BoolVar(&noWatch, "no-watch", false, "Do not reload the deck when its file changes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: storyviewer [flags] [deck.toml]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if initPath != "" {
		if err := deck.WriteFile(initPath, deck.Sample()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", initPath)
		return
	}

	// If no deck specified, check for remaining args
	if deckPath == "" && flag.NArg() > 0 {
		deckPath = flag.Arg(0)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	var configSvc config.ConfigService
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath, bus)
	} else {
		configSvc = config.NewConfigServiceWithBus(bus)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// Flags win over config and environment
	if deckPath == "" {
		deckPath = cfg.DeckPath
	}
	if noWatch {
		cfg.Watch = false
	}

	// Set up logging
	closeLog := setupLogging(cfg.Log)
	defer closeLog()
	log := logging.WithComponent("main")

	// Load the deck
	d := deck.Sample()
	if deckPath != "" {
		if deckPath, err = filepath.Abs(deckPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving path: %v\n", err)
			os.Exit(1)
		}
		if d, err = deck.Load(deckPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	log.Info().Str("deck", deckPath).Int("stories", len(d.Stories)).Msg("deck loaded")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	subscribeEventLog(bus, logging.WithComponent("events"))

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, d, deckPath)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Warn().Str("event", string(e.Type())).Msg("event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	if deckPath != "" && cfg.Watch {
		go watchDeck(ctx, p, bus, deckPath, log)
	}

	if os.Getenv("STORYVIEWER_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the UI
	log.Info().Msg("starting UI")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error().Err(err).Msg("error running program")
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("UI exited normally")
}

// setupLogging points the global logger at the configured file. Logging is
// disabled when the file cannot be opened; the TUI owns the terminal.
func setupLogging(settings config.LogSettings) func() {
	var out io.Writer = io.Discard
	closer := func() {}

	if settings.File != "" {
		f, err := logging.OpenFile(settings.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		} else {
			out = f
			closer = func() { _ = f.Close() }
		}
	}

	logging.Configure(logging.Config{Level: settings.Level, Output: out})
	return closer
}

// subscribeEventLog records activation changes and deck reloads in the log
func subscribeEventLog(bus eventbus.EventBus, log zerolog.Logger) {
	bus.Subscribe(eventbus.EventPanelEntered, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PanelEnteredEvent); ok {
			log.Debug().Int("panel", event.Index).Str("title", event.Title).Msg("entered")
		}
	})
	bus.Subscribe(eventbus.EventPanelExited, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PanelExitedEvent); ok {
			log.Debug().Int("panel", event.Index).Str("title", event.Title).Msg("exited")
		}
	})
	bus.Subscribe(eventbus.EventDeckLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DeckLoadedEvent); ok {
			log.Debug().Str("path", event.Path).Int("stories", len(event.Stories)).Msg("deck changed on disk")
		}
	})
	bus.Subscribe(eventbus.EventDeckReloadFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DeckReloadFailedEvent); ok {
			log.Debug().Err(event.Err).Str("path", event.Path).Msg("deck on disk is unreadable")
		}
	})
}

// watchDeck sends a deck event to the program every time the deck file
// changes. Updates go straight to p so the last write on disk is the deck
// shown; the bus only sees copies.
func watchDeck(ctx context.Context, p *tea.Program, bus eventbus.EventBus, path string, log zerolog.Logger) {
	updates, err := deck.NewWatcher(path).Watch(ctx)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("cannot watch deck")
		bus.Publish(eventbus.ErrorEvent{Message: "cannot watch deck", Err: err})
		return
	}

	ui.ForwardDeckUpdates(updates, path, p.Send, bus)
}
