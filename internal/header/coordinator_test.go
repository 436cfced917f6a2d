package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floatbar/internal/domain"
	"floatbar/internal/eventbus"
)

// recordingBus captures published events synchronously for assertions
type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) {
	b.events = append(b.events, event)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func (b *recordingBus) moves() []eventbus.HeaderMovedEvent {
	var out []eventbus.HeaderMovedEvent
	for _, e := range b.events {
		if m, ok := e.(eventbus.HeaderMovedEvent); ok {
			out = append(out, m)
		}
	}
	return out
}

func newTestCoordinator(height float64) (*Coordinator, *recordingBus) {
	bus := &recordingBus{}
	c := NewCoordinator(bus, domain.Transition{Duration: 120 * time.Millisecond, Curve: "ease-out"})
	c.ReportHeaderHeight(height)
	return c, bus
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		offset, delta float64
		height        float64
		want          domain.Action
		wantOK        bool
	}{
		{"track inside band moving down", -5, -5, 40, domain.TrackAction(-5), true},
		{"track at origin moving down", 0, -1, 40, domain.TrackAction(0), true},
		{"hide past band moving down", -45, -35, 40, domain.Action{Kind: domain.ActionHide}, true},
		{"hide exactly at band edge", -40, -1, 40, domain.Action{Kind: domain.ActionHide}, true},
		{"show on reversal", -30, 20, 40, domain.Action{Kind: domain.ActionShow}, true},
		{"show when stationary below origin", -50, 0, 40, domain.Action{Kind: domain.ActionShow}, true},
		{"nothing at rest", 0, 0, 40, domain.Action{}, false},
		{"nothing above rest", 10, 5, 40, domain.Action{}, false},
		{"nothing above rest moving down", 10, -5, 40, domain.Action{}, false},
		{"zero height has no tracking band", -1, -1, 0, domain.Action{Kind: domain.ActionHide}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.offset, tt.delta, tt.height)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNoActionOnFirstSample(t *testing.T) {
	c, bus := newTestCoordinator(40)

	c.ReportScrollFrame(-25)

	assert.Empty(t, bus.moves(), "a single sample defines no velocity")
	assert.Equal(t, 0.0, c.OffsetY())
	assert.Equal(t, domain.HeaderShown, c.State())
}

func TestTrackingBandFollowsScroll(t *testing.T) {
	c, bus := newTestCoordinator(40)

	for _, minY := range []float64{0, -5, -10} {
		c.ReportScrollFrame(minY)
	}

	moves := bus.moves()
	require.Len(t, moves, 2)
	assert.Equal(t, domain.TrackAction(-5), moves[0].Action)
	assert.Equal(t, -5.0, moves[0].OffsetY)
	assert.Equal(t, domain.TrackAction(-10), moves[1].Action)
	assert.Equal(t, -10.0, moves[1].OffsetY)
	assert.Equal(t, domain.HeaderTracking, c.State())
}

func TestHideSnapsToFullHeight(t *testing.T) {
	c, _ := newTestCoordinator(40)

	for _, minY := range []float64{-10, -45, -46} {
		c.ReportScrollFrame(minY)
	}

	// Offset snaps to -height, not to the sample offsets -45 or -46
	assert.Equal(t, -40.0, c.OffsetY())
	assert.Equal(t, domain.HeaderHidden, c.State())
}

func TestShowOnReversal(t *testing.T) {
	c, _ := newTestCoordinator(40)

	for _, minY := range []float64{-50, -50, -30} {
		c.ReportScrollFrame(minY)
	}

	assert.Equal(t, 0.0, c.OffsetY())
	assert.Equal(t, domain.HeaderShown, c.State())
}

func TestConsecutiveIdenticalActionsSuppressed(t *testing.T) {
	c, bus := newTestCoordinator(40)

	// Both classified samples yield Show; only the first is forwarded
	for _, minY := range []float64{-50, -41, -41} {
		c.ReportScrollFrame(minY)
	}

	assert.Len(t, bus.moves(), 1)
	assert.Equal(t, domain.ActionShow, bus.moves()[0].Action.Kind)
}

func TestIdleAtRestProducesNothing(t *testing.T) {
	c, bus := newTestCoordinator(40)

	for _, minY := range []float64{0, 0, 0} {
		c.ReportScrollFrame(minY)
	}

	assert.Empty(t, bus.moves())
	assert.Equal(t, 0.0, c.OffsetY())
}

func TestHideReadsHeightAtAssignmentTime(t *testing.T) {
	c, _ := newTestCoordinator(40)

	// Hide at the original height
	c.ReportScrollFrame(0)
	c.ReportScrollFrame(-45)
	require.Equal(t, -40.0, c.OffsetY())

	// Header grows while hidden; the next Hide uses the fresh height
	c.ReportHeaderHeight(50)
	c.ReportScrollFrame(-30) // reversal, Show
	c.ReportScrollFrame(-60) // down past the band, Hide again

	assert.Equal(t, -50.0, c.OffsetY())
	assert.Equal(t, domain.HeaderHidden, c.State())
}

func TestFallthroughKeepsPriorState(t *testing.T) {
	c, _ := newTestCoordinator(40)

	// Reach Hidden, then jump to rest: offset >= 0 classifies to nothing,
	// so the header stays wherever it was last put
	c.ReportScrollFrame(0)
	c.ReportScrollFrame(-45)
	require.Equal(t, domain.HeaderHidden, c.State())

	c.ReportScrollFrame(5)
	assert.Equal(t, -40.0, c.OffsetY())
	assert.Equal(t, domain.HeaderHidden, c.State())
}

func TestTransitionAttachedToEveryMove(t *testing.T) {
	c, bus := newTestCoordinator(40)

	c.ReportScrollFrame(0)
	c.ReportScrollFrame(-5)  // Track
	c.ReportScrollFrame(-45) // Hide
	c.ReportScrollFrame(-30) // Show

	moves := bus.moves()
	require.Len(t, moves, 3)
	for _, m := range moves {
		assert.Equal(t, 120*time.Millisecond, m.Transition.Duration)
		assert.Equal(t, "ease-out", m.Transition.Curve)
	}
}

func TestResetReturnsToShown(t *testing.T) {
	c, bus := newTestCoordinator(40)

	c.ReportScrollFrame(0)
	c.ReportScrollFrame(-45)
	require.Equal(t, domain.HeaderHidden, c.State())

	c.Reset()
	assert.Equal(t, 0.0, c.OffsetY())
	assert.Equal(t, domain.HeaderShown, c.State())

	// The sample history is gone too: the next frame seeds the tracker
	before := len(bus.moves())
	c.ReportScrollFrame(-45)
	assert.Len(t, bus.moves(), before)
}

func TestNilBusIsAllowed(t *testing.T) {
	c := NewCoordinator(nil, domain.Transition{})
	c.ReportHeaderHeight(40)

	c.ReportScrollFrame(0)
	c.ReportScrollFrame(-5)

	assert.Equal(t, -5.0, c.OffsetY())
}
