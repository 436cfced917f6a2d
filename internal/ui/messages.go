package ui

import (
	"time"

	"floatbar/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tweenTickMsg is sent on a timer while the header transition is running.
// The generation ties the tick to the tween run that scheduled it.
type tweenTickMsg struct {
	gen uint64
	at  time.Time
}

// pagerDoneMsg contains the result of an entry pager command
type pagerDoneMsg struct {
	err error
}
