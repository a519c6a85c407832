// Package theme provides tweened visual listeners for interactable elements.
//
// A theme holds one value per composite index. When an element's composite
// index changes the theme tweens from its current value to the new track's
// value with [gween]. A force refresh from the element (a dimension change)
// jumps straight to the target instead.
//
// Themes read elapsed time from the element's clock, so they advance exactly
// once per element Tick.
//
// [gween]: https://github.com/tanema/gween
package theme

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/interactable"
)

// channel tweens one float64 between track values.
type channel struct {
	tween *gween.Tween
	value float64
}

func (c *channel) retarget(to float64, duration float32, fn ease.TweenFunc) {
	c.tween = gween.New(float32(c.value), float32(to), duration, fn)
}

func (c *channel) jump(to float64) {
	c.tween = nil
	c.value = to
}

func (c *channel) advance(dt float32) {
	if c.tween == nil {
		return
	}
	v, done := c.tween.Update(dt)
	c.value = float64(v)
	if done {
		c.tween = nil
	}
}

// driver holds the bookkeeping shared by every theme: the clock, the active
// track, and the time of the previous update.
type driver struct {
	clock    interactable.Clock
	duration float32
	fn       ease.TweenFunc
	tracks   int
	index    int
	last     time.Time
	started  bool
}

func newDriver(tracks int, duration time.Duration, fn ease.TweenFunc, clock interactable.Clock) driver {
	if fn == nil {
		fn = ease.OutQuad
	}
	if clock == nil {
		clock = interactable.SystemClock{}
	}
	return driver{clock: clock, duration: float32(duration.Seconds()), fn: fn, tracks: tracks}
}

// step returns the elapsed seconds since the previous update, the clamped
// target track, and whether the theme must jump (first update or force).
func (d *driver) step(index int, force bool) (dt float32, track int, jump, changed bool) {
	now := d.clock.Now()
	if d.started {
		dt = float32(now.Sub(d.last).Seconds())
	}
	d.last = now

	track = index
	if track >= d.tracks {
		track = d.tracks - 1
	}
	if track < 0 {
		track = 0
	}
	jump = force || !d.started || d.duration <= 0
	changed = track != d.index
	d.started = true
	d.index = track
	return dt, track, jump, changed
}

// Float is a visual listener producing one float64 per composite index,
// e.g. a scale or an alpha.
type Float struct {
	values []float64
	d      driver
	ch     channel
}

// NewFloat creates a Float theme. values[i] is shown for composite index i;
// indices past the end use the last value. A nil fn uses ease.OutQuad.
func NewFloat(values []float64, duration time.Duration, fn ease.TweenFunc, clock interactable.Clock) *Float {
	if len(values) == 0 {
		values = []float64{0}
	}
	f := &Float{values: values, d: newDriver(len(values), duration, fn, clock)}
	f.ch.value = values[0]
	return f
}

// OnUpdate implements the element's visual listener signature.
func (f *Float) OnUpdate(index int, force bool) {
	dt, track, jump, changed := f.d.step(index, force)
	switch {
	case jump:
		f.ch.jump(f.values[track])
	case changed:
		f.ch.retarget(f.values[track], f.d.duration, f.d.fn)
	default:
		f.ch.advance(dt)
	}
}

// Value returns the current value.
func (f *Float) Value() float64 {
	return f.ch.value
}

// Settled reports whether no tween is running.
func (f *Float) Settled() bool {
	return f.ch.tween == nil
}

// Attach registers f on el.
func (f *Float) Attach(el *interactable.Interactable) interactable.CallbackHandle {
	return el.OnUpdate(f.OnUpdate)
}

// RGBA is a color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color is a visual listener producing one color per composite index.
type Color struct {
	values []RGBA
	d      driver
	ch     [4]channel
}

// NewColor creates a Color theme. values[i] is shown for composite index i.
func NewColor(values []RGBA, duration time.Duration, fn ease.TweenFunc, clock interactable.Clock) *Color {
	if len(values) == 0 {
		values = []RGBA{{1, 1, 1, 1}}
	}
	c := &Color{values: values, d: newDriver(len(values), duration, fn, clock)}
	c.set(values[0])
	return c
}

func (c *Color) set(v RGBA) {
	c.ch[0].jump(v.R)
	c.ch[1].jump(v.G)
	c.ch[2].jump(v.B)
	c.ch[3].jump(v.A)
}

// OnUpdate implements the element's visual listener signature.
func (c *Color) OnUpdate(index int, force bool) {
	dt, track, jump, changed := c.d.step(index, force)
	to := c.values[track]
	switch {
	case jump:
		c.set(to)
	case changed:
		targets := [4]float64{to.R, to.G, to.B, to.A}
		for i := range c.ch {
			c.ch[i].retarget(targets[i], c.d.duration, c.d.fn)
		}
	default:
		for i := range c.ch {
			c.ch[i].advance(dt)
		}
	}
}

// Value returns the current color.
func (c *Color) Value() RGBA {
	return RGBA{c.ch[0].value, c.ch[1].value, c.ch[2].value, c.ch[3].value}
}

// Attach registers c on el.
func (c *Color) Attach(el *interactable.Interactable) interactable.CallbackHandle {
	return el.OnUpdate(c.OnUpdate)
}
