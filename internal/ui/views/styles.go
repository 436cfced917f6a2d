package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	HeaderBar   lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderSub   lipgloss.Style
	HeaderRule  lipgloss.Style
	EntryTitle  lipgloss.Style
	EntryDate   lipgloss.Style
	Body        lipgloss.Style
	Status      lipgloss.Style
	StatusState lipgloss.Style
	Dim         lipgloss.Style
	JumpPrompt  lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		HeaderBar: lipgloss.NewStyle().
			Background(lipgloss.Color("236")),
		HeaderTitle: lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("99")),
		HeaderSub: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("245")),
		HeaderRule: lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")),
		EntryTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		EntryDate:   lipgloss.NewStyle().Faint(true),
		Body:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusState: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Dim:         lipgloss.NewStyle().Faint(true),
		JumpPrompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}

// StateColor returns the status bar color for a header state name
func StateColor(state string) string {
	switch state {
	case "hidden":
		return "203" // red
	case "tracking":
		return "214" // yellow
	}
	return "78" // green
}
