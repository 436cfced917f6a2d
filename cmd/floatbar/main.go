package main

import (
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
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Build the core pipeline
	coordinator := header.NewCoordinator(bus, domain.Transition{
		Duration: time.Duration(cfg.Header.TransitionMS) * time.Millisecond,
		Curve:    cfg.Header.Curve,
	})
	observer := geometry.NewObserver(bus)

	entries := feed.NewGenerator(bus).Generate(cfg.Feed.Entries, cfg.Feed.Seed)

	// Create UI model and program
	uiModel := ui.NewModel(cfg, bus, coordinator, observer, entries)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseWheel {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Forward header moves from the bus into the program
	bus.Subscribe(eventbus.EventHeaderMoved, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
