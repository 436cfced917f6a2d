package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestTweenReachesTarget(t *testing.T) {
	tw := New(0)

	gen, active := tw.Start(-3, 100*time.Millisecond, "linear", t0)
	require.True(t, active)

	assert.True(t, tw.Step(gen, t0.Add(50*time.Millisecond)))
	assert.InDelta(t, -1.5, tw.Value(), 1e-9)

	assert.False(t, tw.Step(gen, t0.Add(100*time.Millisecond)))
	assert.Equal(t, -3.0, tw.Value())
	assert.False(t, tw.Active())
}

func TestTweenEaseOutFrontLoadsMotion(t *testing.T) {
	tw := New(0)
	gen, _ := tw.Start(-1, 100*time.Millisecond, "ease-out", t0)

	tw.Step(gen, t0.Add(50*time.Millisecond))
	// Ease-out covers more than half the distance by the midpoint
	assert.Less(t, tw.Value(), -0.5)
}

func TestTweenStaleGenerationStops(t *testing.T) {
	tw := New(0)
	oldGen, _ := tw.Start(-3, 100*time.Millisecond, "linear", t0)

	// Retarget mid-flight; the old tick loop must stop itself
	newGen, active := tw.Start(0, 100*time.Millisecond, "linear", t0.Add(50*time.Millisecond))
	require.True(t, active)

	assert.False(t, tw.Step(oldGen, t0.Add(60*time.Millisecond)))
	assert.True(t, tw.Step(newGen, t0.Add(60*time.Millisecond)))
}

func TestTweenRetargetsFromCurrentValue(t *testing.T) {
	tw := New(0)
	gen, _ := tw.Start(-4, 100*time.Millisecond, "linear", t0)
	tw.Step(gen, t0.Add(50*time.Millisecond))
	require.InDelta(t, -2.0, tw.Value(), 1e-9)

	gen, _ = tw.Start(0, 100*time.Millisecond, "linear", t0.Add(50*time.Millisecond))
	tw.Step(gen, t0.Add(100*time.Millisecond))
	assert.InDelta(t, -1.0, tw.Value(), 1e-9)
}

func TestTweenZeroDurationCompletesImmediately(t *testing.T) {
	tw := New(0)
	_, active := tw.Start(-3, 0, "linear", t0)

	assert.False(t, active)
	assert.Equal(t, -3.0, tw.Value())
}

func TestTweenSameTargetIsNoop(t *testing.T) {
	tw := New(-3)
	_, active := tw.Start(-3, 100*time.Millisecond, "linear", t0)

	assert.False(t, active, "no motion needed when already at the target")
}

func TestSnap(t *testing.T) {
	tw := New(0)
	gen, _ := tw.Start(-3, 100*time.Millisecond, "linear", t0)

	tw.Snap(-1)
	assert.Equal(t, -1.0, tw.Value())
	assert.False(t, tw.Active())
	assert.False(t, tw.Step(gen, t0.Add(10*time.Millisecond)))
}
