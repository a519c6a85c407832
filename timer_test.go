package interactable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClickTimer_Window(t *testing.T) {
	clock := NewManualClock(time.Unix(1000, 0))
	ct := NewClickTimer(clock)
	assert.False(t, ct.Valid())

	ct.Start(1500 * time.Millisecond)
	assert.True(t, ct.Valid(), "valid at 0.0")

	clock.Advance(1490 * time.Millisecond)
	assert.True(t, ct.Valid(), "valid at 1.49")
	assert.Equal(t, 10*time.Millisecond, ct.Remaining())

	clock.Advance(10 * time.Millisecond)
	assert.False(t, ct.Valid(), "invalid at 1.5")
	assert.Zero(t, ct.Remaining())

	clock.Advance(time.Second)
	assert.False(t, ct.Valid())
}

func TestClickTimer_RestartCancelsPrevious(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	ct := NewClickTimer(clock)
	ct.Start(time.Second)
	clock.Advance(900 * time.Millisecond)
	ct.Start(time.Second)
	clock.Advance(900 * time.Millisecond)
	assert.True(t, ct.Valid())
}

func TestClickTimer_Stop(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	ct := NewClickTimer(clock)

	assert.ErrorIs(t, ct.Stop(), ErrNotRunning)

	ct.Start(time.Second)
	assert.NoError(t, ct.Stop())
	assert.False(t, ct.Valid())
	assert.ErrorIs(t, ct.Stop(), ErrNotRunning)

	ct.Start(time.Second)
	clock.Advance(2 * time.Second)
	assert.ErrorIs(t, ct.Stop(), ErrNotRunning, "expired timer is idle")
}

func TestClickTimer_DebugPanics(t *testing.T) {
	ct := NewClickTimer(NewManualClock(time.Unix(0, 0)))
	ct.debug = true
	assert.Panics(t, func() { _ = ct.Stop() })
}
