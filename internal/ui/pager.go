package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"floatbar/internal/domain"
)

// Pager shows a full feed entry in the ov pager, handing the terminal over
// and back around the pager run.
type Pager struct {
	program *tea.Program
}

// NewPager creates a new pager
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the Bubble Tea program used for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowEntry renders the entry and runs ov over it
func (p *Pager) ShowEntry(entry domain.FeedEntry) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	reader := strings.NewReader(formatEntry(entry))

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// formatEntry lays out one entry as plain text for the pager
func formatEntry(entry domain.FeedEntry) string {
	var b strings.Builder

	b.WriteString(entry.Title)
	b.WriteString("\n")
	b.WriteString(entry.Date.Format("Mon, 02 Jan 2006 15:04"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(entry.Title)))
	b.WriteString("\n\n")
	for _, para := range entry.Body {
		b.WriteString(para)
		b.WriteString("\n\n")
	}

	return b.String()
}
