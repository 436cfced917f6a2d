package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"floatbar/internal/config"
	"floatbar/internal/domain"
	"floatbar/internal/eventbus"
	"floatbar/internal/feed"
	"floatbar/internal/geometry"
	"floatbar/internal/header"
	"floatbar/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	var entries int
	var seed int64
	flag.StringVar(&configPath, "config", "", "Path to a floatbar.toml config file")
	flag.IntVar(&entries, "entries", 0, "Number of demo feed entries (overrides config)")
	flag.Int64Var(&seed, "seed", 0, "Feed generator seed (overrides config)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("floatbar.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadConfig(configSvc, configPath)
	if entries > 0 {
		cfg.Feed.Entries = entries
	}
	if seed != 0 {
		cfg.Feed.Seed = seed
	}

	// Build the core: geometry observer feeding the visibility coordinator
	transition := domain.Transition{
		Duration: time.Duration(cfg.Header.TransitionMS) * time.Millisecond,
		Curve:    cfg.Header.Curve,
	}
	coordinator := header.NewCoordinator(bus, transition)
	observer := geometry.NewObserver(bus)

	// Generate the demo feed
	feedEntries := feed.NewGenerator(bus).Generate(cfg.Feed.Entries, cfg.Feed.Seed)
	log.Printf("Generated %d feed entries (seed %d)", len(feedEntries), cfg.Feed.Seed)

	// Create UI model
	uiModel := ui.NewModel(cfg, bus, coordinator, observer, feedEntries)

	// Create Bubble Tea program
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseWheel {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)

	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}

	// Forward the coordinator's output and errors to the UI
	bus.Subscribe(eventbus.EventHeaderMoved, forwardEvent)
	bus.Subscribe(eventbus.EventError, forwardEvent)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	bus.Publish(eventbus.AppReadyEvent{EntryCount: len(feedEntries)})

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	close(eventChan)
}

// loadConfig loads the config from an explicit path or the default
// location, falling back to defaults on any failure
func loadConfig(configSvc config.ConfigService, path string) *config.Config {
	if path != "" {
		cfg, err := configSvc.LoadFromPath(path)
		if err == nil {
			log.Printf("Loaded config from %s", path)
			return cfg
		}
		log.Printf("Error loading config from %s: %v", path, err)
		return config.DefaultConfig()
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}
