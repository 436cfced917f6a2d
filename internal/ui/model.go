package ui

import (
	"log"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"floatbar/internal/config"
	"floatbar/internal/domain"
	"floatbar/internal/eventbus"
	"floatbar/internal/geometry"
	"floatbar/internal/header"
	"floatbar/internal/ui/tween"
	"floatbar/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	cfg         *config.Config
	bus         eventbus.EventBus
	coordinator *header.Coordinator
	observer    *geometry.Observer
	renderer    *views.Renderer
	tw          *tween.Tween

	entries      []domain.FeedEntry
	contentLines []string
	lineEntry    []int // content line -> entry index

	width      int
	height     int
	scrollLine int
	lastDelta  float64
	prevMinY   float64
	hasPrev    bool

	keys      keyMap
	help      help.Model
	jumpInput textinput.Model
	jumping   bool

	pager *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. The observer's sinks are wired to the
// coordinator here: the Update loop is the single thread that feeds both.
func NewModel(cfg *config.Config, bus eventbus.EventBus, coordinator *header.Coordinator,
	observer *geometry.Observer, entries []domain.FeedEntry) *Model {

	jump := textinput.New()
	jump.Placeholder = "entry number"
	jump.CharLimit = 5
	jump.Width = 12

	m := &Model{
		cfg:         cfg,
		bus:         bus,
		coordinator: coordinator,
		observer:    observer,
		renderer:    views.NewRenderer(cfg.Header.Height),
		tw:          tween.New(0),
		entries:     entries,
		keys:        defaultKeyMap(),
		help:        help.New(),
		jumpInput:   jump,
		pager:       NewPager(),
	}

	observer.SetFrameSink(coordinator.ReportScrollFrame)
	observer.SetSizeSink(coordinator.ReportHeaderHeight)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case tweenTickMsg:
		if m.tw.Step(msg.gen, msg.at) {
			return m, tweenTick(msg.gen)
		}
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			log.Printf("Pager error: %v", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// handleResize re-measures everything that depends on the window size
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	first := m.width == 0
	before := m.scrollLine
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	m.contentLines, m.lineEntry = buildContent(m.entries, m.width, views.NewStyles())
	m.scrollTo(m.scrollLine)

	// The header block reflows with the width, so its measured height can
	// change on resize alone
	m.observer.ObserveHeaderSize(float64(m.renderer.HeaderHeight(m.width)))

	if first || m.scrollLine != before {
		// Seed the offset signal, or re-report it if the resize clamped
		// the scroll position
		m.reportFrame()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.jumping {
		return m.handleJumpKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.contentHeight() - 1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-(m.contentHeight() - 1))
	case key.Matches(msg, m.keys.Top):
		m.scrollTo(0)
		m.reportFrame()
	case key.Matches(msg, m.keys.Bottom):
		m.scrollTo(m.maxScroll())
		m.reportFrame()
	case key.Matches(msg, m.keys.Open):
		return m, m.openEntryCmd()
	case key.Matches(msg, m.keys.Jump):
		m.jumping = true
		m.jumpInput.SetValue("")
		return m, m.jumpInput.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.jumping = false
		m.jumpInput.Blur()
		if n, err := strconv.Atoi(m.jumpInput.Value()); err == nil {
			m.jumpToEntry(n - 1)
		}
		return m, nil
	case "esc":
		m.jumping = false
		m.jumpInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.cfg.UI.MouseWheel {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
	}
	return m, nil
}

// handleEvent reacts to domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch ev := event.(type) {
	case eventbus.HeaderMovedEvent:
		gen, active := m.tw.Start(ev.OffsetY, ev.Transition.Duration, ev.Transition.Curve, time.Now())
		if active {
			return m, tweenTick(gen)
		}
		return m, nil

	case eventbus.ErrorEvent:
		log.Printf("Error event: %s: %v", ev.Message, ev.Err)
	}
	return m, nil
}

// tweenTick schedules the next animation tick for a tween generation
func tweenTick(gen uint64) tea.Cmd {
	return tea.Tick(tween.TickInterval, func(t time.Time) tea.Msg {
		return tweenTickMsg{gen: gen, at: t}
	})
}

// scrollBy moves the content window and reports the resulting frame
func (m *Model) scrollBy(lines int) {
	before := m.scrollLine
	m.scrollTo(m.scrollLine + lines)
	if m.scrollLine != before {
		m.reportFrame()
	}
}

// scrollTo clamps the target line into the valid range without reporting
func (m *Model) scrollTo(line int) {
	if line < 0 {
		line = 0
	}
	if max := m.maxScroll(); line > max {
		line = max
	}
	m.scrollLine = line
}

// jumpToEntry scrolls the start of the given entry to the top of the window
func (m *Model) jumpToEntry(index int) {
	for line, entry := range m.lineEntry {
		if entry == index {
			before := m.scrollLine
			m.scrollTo(line)
			if m.scrollLine != before {
				m.reportFrame()
			}
			return
		}
	}
}

// reportFrame feeds the current scroll position into the geometry observer.
// The tracked reference point sits at the top of the content, so its minY
// is the negated scroll line.
func (m *Model) reportFrame() {
	minY := -float64(m.scrollLine)
	if m.hasPrev {
		m.lastDelta = minY - m.prevMinY
	}
	m.prevMinY = minY
	m.hasPrev = true

	m.observer.ObserveFrame(minY)
}

func (m *Model) contentHeight() int {
	h := m.height
	if m.cfg.UI.ShowStatusBar {
		h--
	}
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) maxScroll() int {
	max := len(m.contentLines) - m.contentHeight()
	if max < 0 {
		return 0
	}
	return max
}

// currentEntry returns the entry at the top of the uncovered content
func (m *Model) currentEntry() (domain.FeedEntry, bool) {
	line := m.scrollLine + views.VisibleRows(m.renderer.HeaderHeight(m.width), m.tw.Value())
	if line >= len(m.lineEntry) {
		line = len(m.lineEntry) - 1
	}
	if line < 0 {
		return domain.FeedEntry{}, false
	}
	return m.entries[m.lineEntry[line]], true
}

// openEntryCmd opens the entry under the header edge in the ov pager
func (m *Model) openEntryCmd() tea.Cmd {
	entry, ok := m.currentEntry()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return pagerDoneMsg{err: m.pager.ShowEntry(entry)}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		ContentLines:  m.contentLines,
		ScrollLine:    m.scrollLine,
		HeaderOffsetY: m.tw.Value(),
		State:         m.coordinator.State().String(),
		Delta:         m.lastDelta,
		ShowStatusBar: m.cfg.UI.ShowStatusBar,
		Jumping:       m.jumping,
		JumpView:      m.jumpInput.View(),
		HelpView:      m.help.View(m.keys),
	})
}
