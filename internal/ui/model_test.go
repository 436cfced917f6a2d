package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floatbar/internal/config"
	"floatbar/internal/domain"
	"floatbar/internal/feed"
	"floatbar/internal/geometry"
	"floatbar/internal/header"
)

func newTestModel(t *testing.T) (*Model, *header.Coordinator) {
	t.Helper()

	cfg := config.DefaultConfig()
	coord := header.NewCoordinator(nil, domain.Transition{Duration: 120 * time.Millisecond, Curve: "ease-out"})
	obs := geometry.NewObserver(nil)
	entries := feed.NewGenerator(nil).Generate(30, 1)

	m := NewModel(cfg, nil, coord, obs, entries)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, coord
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestResizeSeedsGeometry(t *testing.T) {
	m, coord := newTestModel(t)

	// The header block is 3 rows at width 80
	assert.Equal(t, 3.0, coord.Height())
	assert.Equal(t, domain.HeaderShown, coord.State())
	assert.Equal(t, 0, m.scrollLine)
}

func TestScrollDownEntersTrackingThenHides(t *testing.T) {
	m, coord := newTestModel(t)

	// One row down: inside the (-3, 0] band, header follows exactly
	m.Update(keyMsg("j"))
	assert.Equal(t, -1.0, coord.OffsetY())
	assert.Equal(t, domain.HeaderTracking, coord.State())

	// Past the band: snaps to fully hidden
	m.Update(keyMsg("j"))
	m.Update(keyMsg("j"))
	m.Update(keyMsg("j"))
	assert.Equal(t, -3.0, coord.OffsetY())
	assert.Equal(t, domain.HeaderHidden, coord.State())
}

func TestScrollUpReveals(t *testing.T) {
	m, coord := newTestModel(t)

	for i := 0; i < 6; i++ {
		m.Update(keyMsg("j"))
	}
	require.Equal(t, domain.HeaderHidden, coord.State())

	m.Update(keyMsg("k"))
	assert.Equal(t, 0.0, coord.OffsetY())
	assert.Equal(t, domain.HeaderShown, coord.State())
}

func TestScrollClampsAtEdges(t *testing.T) {
	m, coord := newTestModel(t)

	m.Update(keyMsg("k"))
	assert.Equal(t, 0, m.scrollLine, "already at the top")

	m.Update(keyMsg("G"))
	assert.Equal(t, m.maxScroll(), m.scrollLine)
	m.Update(keyMsg("j"))
	assert.Equal(t, m.maxScroll(), m.scrollLine, "clamped at the bottom")

	// Clamped scrolls emit no frame, so the hidden header stays put
	assert.Equal(t, domain.HeaderHidden, coord.State())
}

func TestHeaderMovedEventStartsTween(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(EventMsg{Event: domain.HeaderMovedEvent{
		OffsetY:    -2,
		Transition: domain.Transition{Duration: 100 * time.Millisecond, Curve: "linear"},
	}})
	require.NotNil(t, cmd, "an animated move schedules a tick")
	assert.Equal(t, -2.0, m.tw.Target())
}

func TestJumpScrollsThroughTheSameSignal(t *testing.T) {
	m, coord := newTestModel(t)

	m.jumpToEntry(5)
	require.Greater(t, m.scrollLine, 0)

	// A jump is just a big downward frame: delta < 0 past the band
	assert.Equal(t, domain.HeaderHidden, coord.State())
}

func TestNarrowResizeShrinksReportedHeader(t *testing.T) {
	m, coord := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 30, Height: 24})
	assert.Equal(t, 2.0, coord.Height(), "subtitle row dropped at narrow widths")
}
