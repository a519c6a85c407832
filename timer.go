package interactable

import "time"

// deadline is an armed point in time. It expires passively: nothing fires,
// expired just starts returning true.
type deadline struct {
	at      time.Time
	running bool
}

func (d *deadline) arm(now time.Time, dur time.Duration) {
	d.at = now.Add(dur)
	d.running = true
}

func (d *deadline) cancel() {
	*d = deadline{}
}

func (d *deadline) active(now time.Time) bool {
	return d.running && now.Before(d.at)
}

// expired reports an armed deadline whose time has passed.
func (d *deadline) expired(now time.Time) bool {
	return d.running && !now.Before(d.at)
}

// ClickTimer bounds the window in which an input-up may produce a click.
type ClickTimer struct {
	clock Clock
	d     deadline
	debug bool
}

// NewClickTimer returns an idle timer reading clock.
func NewClickTimer(clock Clock) *ClickTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ClickTimer{clock: clock}
}

// Start cancels any running countdown and begins a new one of length dur.
func (t *ClickTimer) Start(dur time.Duration) {
	t.d.arm(t.clock.Now(), dur)
}

// Stop cancels the countdown. Stopping an idle timer is an orchestration bug:
// it returns ErrNotRunning, or panics in debug mode.
func (t *ClickTimer) Stop() error {
	if !t.Valid() {
		t.d.cancel()
		debugCheckTimer(t.debug, "ClickTimer.Stop")
		return newError("ClickTimer.Stop", KindTimer, ErrNotRunning)
	}
	t.d.cancel()
	return nil
}

// Valid reports whether an input-up received now may fire a click.
func (t *ClickTimer) Valid() bool {
	return t.d.active(t.clock.Now())
}

// Remaining returns the time left in the window, or 0 when idle.
func (t *ClickTimer) Remaining() time.Duration {
	now := t.clock.Now()
	if !t.d.active(now) {
		return 0
	}
	return t.d.at.Sub(now)
}

// expire drops an elapsed countdown back to idle.
func (t *ClickTimer) expire() {
	if t.d.expired(t.clock.Now()) {
		t.d.cancel()
	}
}

// reset cancels without the idle check; used on disable.
func (t *ClickTimer) reset() {
	t.d.cancel()
}
