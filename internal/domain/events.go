package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventHeaderMoved   EventType = "HeaderMoved"
	EventScrollFrame   EventType = "ScrollFrame"
	EventHeaderResized EventType = "HeaderResized"
	EventFeedLoaded    EventType = "FeedLoaded"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
	EventConfigChanged EventType = "ConfigChanged"
	EventAppReady      EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// HeaderMovedEvent is emitted when the coordinator assigns a new header
// offset. This is the sole observable output of the core.
type HeaderMovedEvent struct {
	OffsetY    float64
	State      HeaderState
	Action     Action
	Transition Transition
}

func (e HeaderMovedEvent) Type() EventType { return EventHeaderMoved }

// ScrollFrameEvent is emitted when the tracked scroll reference point moves
type ScrollFrameEvent struct {
	MinY float64
}

func (e ScrollFrameEvent) Type() EventType { return EventScrollFrame }

// HeaderResizedEvent is emitted when the header's measured height changes
type HeaderResizedEvent struct {
	Height float64
}

func (e HeaderResizedEvent) Type() EventType { return EventHeaderResized }

// FeedLoadedEvent is emitted when the demo feed has been generated
type FeedLoadedEvent struct {
	Count int
}

func (e FeedLoadedEvent) Type() EventType { return EventFeedLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct{}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	EntryCount int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
