package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	ContentLines  []string
	ScrollLine    int
	HeaderOffsetY float64 // interpolated, in (-headerHeight, 0]
	State         string  // header state name for the status bar
	Delta         float64 // last scroll delta for the status bar
	ShowStatusBar bool
	Jumping       bool
	JumpView      string // rendered text input when jumping
	HelpView      string // rendered key legend
	ShowHelp      bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles    *Styles
	maxHeader int // configured header height in rows
}

// NewRenderer creates a new renderer
func NewRenderer(headerHeight int) *Renderer {
	return &Renderer{
		styles:    NewStyles(),
		maxHeader: headerHeight,
	}
}

// HeaderLines builds the header block for the given width. Narrow
// terminals drop the subtitle row, so the measured height can change with
// the window size alone.
func (r *Renderer) HeaderLines(width int) []string {
	if width <= 0 {
		width = 1
	}

	lines := make([]string, 0, r.maxHeader)
	title := r.styles.HeaderTitle.Render(" floatbar ")
	pad := width - lipgloss.Width(title)
	if pad < 0 {
		pad = 0
	}
	lines = append(lines, title+r.styles.HeaderBar.Render(strings.Repeat(" ", pad)))

	if r.maxHeader >= 3 && width >= 48 {
		sub := r.styles.HeaderSub.Render(" scroll down to hide, scroll up to reveal ")
		pad = width - lipgloss.Width(sub)
		if pad < 0 {
			pad = 0
		}
		lines = append(lines, sub+r.styles.HeaderBar.Render(strings.Repeat(" ", pad)))
	}

	lines = append(lines, r.styles.HeaderRule.Render(strings.Repeat("─", width)))
	return lines
}

// HeaderHeight measures the header block for the given width
func (r *Renderer) HeaderHeight(width int) int {
	return len(r.HeaderLines(width))
}

// VisibleRows converts an interpolated header offset into the number of
// header rows still on screen
func VisibleRows(headerHeight int, offsetY float64) int {
	v := headerHeight + int(math.Round(offsetY))
	if v < 0 {
		return 0
	}
	if v > headerHeight {
		return headerHeight
	}
	return v
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return ""
	}

	header := r.HeaderLines(state.Width)
	visible := VisibleRows(len(header), state.HeaderOffsetY)

	statusRows := 0
	if state.ShowStatusBar {
		statusRows = 1
	}
	contentHeight := state.Height - statusRows
	if contentHeight < 0 {
		contentHeight = 0
	}

	out := make([]string, 0, state.Height)

	// The header floats above the content: its visible tail covers the
	// first rows of the content window
	out = append(out, header[len(header)-visible:]...)

	from := state.ScrollLine + visible
	for row := from; len(out) < contentHeight; row++ {
		if row >= 0 && row < len(state.ContentLines) {
			out = append(out, state.ContentLines[row])
		} else {
			out = append(out, "")
		}
	}

	if state.ShowStatusBar {
		out = append(out, r.statusBar(state))
	}

	return strings.Join(out, "\n")
}

// statusBar renders the bottom line: state, offsets and the key legend
func (r *Renderer) statusBar(state ViewState) string {
	if state.Jumping {
		return r.styles.JumpPrompt.Render("jump: ") + state.JumpView
	}

	stateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(StateColor(state.State)))
	left := fmt.Sprintf(" %s  y=%+.0f  d=%+.0f  line %d/%d",
		stateStyle.Render(state.State),
		state.HeaderOffsetY,
		state.Delta,
		state.ScrollLine,
		len(state.ContentLines),
	)

	right := state.HelpView
	gap := state.Width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		return r.styles.Status.Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}
