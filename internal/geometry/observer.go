package geometry

import (
	"floatbar/internal/domain"
	"floatbar/internal/eventbus"
)

// FrameSink receives the tracked reference point's vertical position
type FrameSink func(minY float64)

// SizeSink receives the header's measured height
type SizeSink func(height float64)

// Observer forwards geometry events from the rendering layer to the
// coordinator as a time-ordered signal. Every frame is forwarded, since
// dropping samples would change the apparent velocity downstream; header
// sizes are measurements, so unchanged values are not repeated.
type Observer struct {
	bus       eventbus.EventBus // optional, may be nil
	frameSink FrameSink
	sizeSink  SizeSink

	lastHeight float64
	hasHeight  bool
}

// NewObserver creates an observer. The bus may be nil when no one needs
// raw geometry events.
func NewObserver(bus eventbus.EventBus) *Observer {
	return &Observer{bus: bus}
}

// SetFrameSink sets the consumer for scroll frames
func (o *Observer) SetFrameSink(fn FrameSink) {
	o.frameSink = fn
}

// SetSizeSink sets the consumer for header height changes
func (o *Observer) SetSizeSink(fn SizeSink) {
	o.sizeSink = fn
}

// ObserveFrame forwards one scroll frame, unconditionally and in order
func (o *Observer) ObserveFrame(minY float64) {
	if o.bus != nil {
		o.bus.Publish(domain.ScrollFrameEvent{MinY: minY})
	}
	if o.frameSink != nil {
		o.frameSink(minY)
	}
}

// ObserveHeaderSize forwards a header height measurement if it changed
func (o *Observer) ObserveHeaderSize(height float64) {
	if o.hasHeight && height == o.lastHeight {
		return
	}
	o.lastHeight = height
	o.hasHeight = true

	if o.bus != nil {
		o.bus.Publish(domain.HeaderResizedEvent{Height: height})
	}
	if o.sizeSink != nil {
		o.sizeSink(height)
	}
}
