package input

// syntheticPointerEvent represents a single injected mouse event in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a press at (x, y). The event is consumed on the next
// frame in place of real mouse input.
func (d *Driver) InjectPress(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move at (x, y) with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (d *Driver) InjectMove(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectHover queues a move at (x, y) with no button held.
func (d *Driver) InjectHover(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectRelease queues a release at (x, y).
func (d *Driver) InjectRelease(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two frames.
func (d *Driver) InjectClick(x, y float64) {
	d.InjectPress(x, y)
	d.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 interpolated moves,
// and a release at (toX, toY). Minimum frames is 2.
func (d *Driver) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	d.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		d.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	d.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (d *Driver) Pending() int {
	return len(d.injectQueue)
}

// processInjectedInput pops one event and feeds it through processPointer as
// pointer 0. Returns true if an event was consumed.
func (d *Driver) processInjectedInput() bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	evt := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	d.processPointer(0, evt.x, evt.y, evt.pressed)
	return true
}
