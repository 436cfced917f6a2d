package header

import (
	"sync"

	"floatbar/internal/domain"
	"floatbar/internal/eventbus"
	"floatbar/internal/scroll"
)

// Coordinator converts scroll-offset telemetry into an animated header
// offset. It owns all mutation of the header offset, height and last
// forwarded action; concurrent reporters are serialized by the mutex so
// delta derivation sees samples in order.
type Coordinator struct {
	mu         sync.Mutex
	bus        eventbus.EventBus // optional, may be nil
	tracker    *scroll.Tracker
	transition domain.Transition

	height     float64
	offsetY    float64
	lastAction domain.Action
	hasLast    bool
}

// NewCoordinator creates a coordinator in the Shown state (offset 0).
// The transition is attached unchanged to every move event; the bus may be
// nil when no one needs move notifications.
func NewCoordinator(bus eventbus.EventBus, transition domain.Transition) *Coordinator {
	return &Coordinator{
		bus:        bus,
		tracker:    scroll.NewTracker(),
		transition: transition,
	}
}

// ReportHeaderHeight records the header's measured height. The stored
// value is read fresh at the next Hide assignment, so a resize while
// hidden retargets the hidden offset without reclassifying.
func (c *Coordinator) ReportHeaderHeight(h float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height = h
}

// ReportScrollFrame records the tracked reference point's position and
// runs the full pipeline: derive delta, classify, dedup, assign. The first
// frame only seeds the tracker.
func (c *Coordinator) ReportScrollFrame(minY float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sample, ok := c.tracker.Observe(minY)
	if !ok {
		return
	}

	action, ok := Classify(sample.Offset, sample.Delta, c.height)
	if !ok {
		// At or above the rest position: the prior action persists
		return
	}

	// Suppress consecutive identical actions. Track actions carry their
	// offset, so equality here still forwards every new tracking position.
	if c.hasLast && action == c.lastAction {
		return
	}
	c.lastAction = action
	c.hasLast = true

	c.apply(action)
}

// apply assigns the header offset for a freshly forwarded action.
// Callers hold the mutex.
func (c *Coordinator) apply(action domain.Action) {
	switch action.Kind {
	case domain.ActionShow:
		c.offsetY = 0
	case domain.ActionHide:
		// Height is read at assignment time, not from the triggering sample
		c.offsetY = -c.height
	case domain.ActionTrack:
		c.offsetY = action.OffsetY
	}

	if c.bus != nil {
		c.bus.Publish(domain.HeaderMovedEvent{
			OffsetY:    c.offsetY,
			State:      c.stateLocked(),
			Action:     action,
			Transition: c.transition,
		})
	}
}

// OffsetY returns the current header offset command value
func (c *Coordinator) OffsetY() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offsetY
}

// Height returns the last reported header height
func (c *Coordinator) Height() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height
}

// State reports where the header sits for the current offset
func (c *Coordinator) State() domain.HeaderState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Coordinator) stateLocked() domain.HeaderState {
	switch {
	case c.offsetY == 0:
		return domain.HeaderShown
	case c.offsetY == -c.height:
		return domain.HeaderHidden
	}
	return domain.HeaderTracking
}

// Reset returns the coordinator to its initial Shown state and clears the
// sample history, as if freshly constructed
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tracker.Reset()
	c.offsetY = 0
	c.lastAction = domain.Action{}
	c.hasLast = false
}
