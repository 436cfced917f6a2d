package domain

import "time"

// ActionKind identifies the coordinator's decision for a scroll sample
type ActionKind int

// Action kinds
const (
	ActionShow ActionKind = iota
	ActionHide
	ActionTrack
)

// String returns a readable name for logging
func (k ActionKind) String() string {
	switch k {
	case ActionShow:
		return "Show"
	case ActionHide:
		return "Hide"
	case ActionTrack:
		return "Track"
	}
	return "Unknown"
}

// Action is the coordinator's decision for one scroll sample.
// OffsetY is only meaningful for ActionTrack. The struct is comparable,
// so deduplication is plain equality: two Track actions with different
// offsets are different actions, which keeps the header following the
// scroll while inside the tracking band.
type Action struct {
	Kind    ActionKind
	OffsetY float64
}

// TrackAction builds a Track action following the given offset
func TrackAction(offsetY float64) Action {
	return Action{Kind: ActionTrack, OffsetY: offsetY}
}

// HeaderState describes where the header currently sits
type HeaderState int

// Header states
const (
	HeaderShown HeaderState = iota
	HeaderHidden
	HeaderTracking
)

// String returns a readable name for the status bar and logs
func (s HeaderState) String() string {
	switch s {
	case HeaderShown:
		return "shown"
	case HeaderHidden:
		return "hidden"
	case HeaderTracking:
		return "tracking"
	}
	return "unknown"
}

// Transition is the suggested smoothing for a header move. The coordinator
// attaches the same transition to every move; interpolation itself is a
// rendering concern.
type Transition struct {
	Duration time.Duration
	Curve    string // easing curve name, e.g. "ease-out"
}

// FeedEntry is one item of the demo feed the header floats above
type FeedEntry struct {
	Index int
	Title string
	Date  time.Time
	Body  []string // paragraphs
}
