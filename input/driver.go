// Package input feeds ebiten mouse, touch and keyboard input into
// interactable elements.
//
// The driver hit-tests registered targets each frame and translates pointer
// transitions into interactable events: hover changes become focus
// enter/exit, button transitions become input down/up, and motion while held
// becomes 2-D input-changed samples. Keys can be bound to keywords as a
// stand-in for a speech recognizer.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/interactable"
)

const (
	maxPointers     = 10    // pointer 0 = mouse, 1-9 = touch
	defaultUnitSize = 100.0 // pixels per local unit for gesture sampling
)

// DefaultAction is the input action reported for pointer presses when a
// target does not name one.
const DefaultAction = "select"

// Target binds an element to a screen-space hit shape.
type Target struct {
	Element *interactable.Interactable
	Shape   HitShape
	// Action is reported on input down/up. Empty uses DefaultAction.
	Action string
	// Z orders overlapping targets; the highest Z wins the hit test.
	Z int
	// UnitSize converts pixels into the element's local units for gesture
	// thresholds. Zero uses 100 pixels per unit.
	UnitSize float64
}

func (t *Target) action() string {
	if t.Action == "" {
		return DefaultAction
	}
	return t.Action
}

func (t *Target) local(x, y float64) interactable.Vec3 {
	u := t.UnitSize
	if u <= 0 {
		u = defaultUnitSize
	}
	return interactable.Vec3{X: x / u, Y: y / u}
}

type pointerState struct {
	down    bool
	lastX   float64
	lastY   float64
	hover   *Target // target under the pointer (focus)
	pressed *Target // target that received input down
}

// Driver owns per-pointer state and delivers events to a Group.
type Driver struct {
	group   *interactable.Group
	targets []*Target

	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent

	// Keywords maps keys to voice keywords broadcast to every element.
	Keywords map[ebiten.Key]string
}

// NewDriver creates a driver delivering to group. A nil group creates one.
func NewDriver(group *interactable.Group) *Driver {
	if group == nil {
		group = interactable.NewGroup()
	}
	return &Driver{group: group}
}

// Group returns the driven group.
func (d *Driver) Group() *interactable.Group {
	return d.group
}

// AddTarget registers t and adds its element to the group.
func (d *Driver) AddTarget(t *Target) {
	d.targets = append(d.targets, t)
	d.group.Add(t.Element)
}

// RemoveTarget unregisters t. Pointers hovering or pressing it are released
// from it first.
func (d *Driver) RemoveTarget(t *Target) {
	for i := range d.pointers {
		ps := &d.pointers[i]
		if ps.pressed == t {
			t.Element.HandleEvent(interactable.InputUp(sourceOf(i), t.action(), pointerOf(i)))
			ps.pressed = nil
		}
		if ps.hover == t {
			t.Element.HandleEvent(interactable.FocusExit(pointerOf(i)))
			ps.hover = nil
		}
	}
	for i, have := range d.targets {
		if have == t {
			d.targets = append(d.targets[:i], d.targets[i+1:]...)
			break
		}
	}
	d.group.Remove(t.Element)
}

// Focusing reports whether pointer p currently hovers el. Pass it to
// interactable.WithFocusValidator so that re-enabled elements drop stale
// focus.
func (d *Driver) Focusing(p interactable.PointerID, el *interactable.Interactable) bool {
	if int(p) >= maxPointers {
		return false
	}
	h := d.pointers[p].hover
	return h != nil && h.Element == el
}

// Update processes this frame's input and then ticks the group. Call it from
// ebiten.Game.Update.
func (d *Driver) Update() {
	d.processInput()
	d.group.Tick()
}

func sourceOf(pointerID int) interactable.SourceID {
	return interactable.SourceID(pointerID)
}

func pointerOf(pointerID int) interactable.Pointer {
	return interactable.Pointer{ID: interactable.PointerID(pointerID), Source: sourceOf(pointerID)}
}

// --- Hit testing ---

// hitTest returns the highest-Z target containing (x, y). Later targets win
// ties. Disabled elements still hit so that they absorb focus.
func (d *Driver) hitTest(x, y float64) *Target {
	var best *Target
	for _, t := range d.targets {
		if t.Shape == nil || !t.Shape.Contains(x, y) {
			continue
		}
		if best == nil || t.Z >= best.Z {
			best = t
		}
	}
	return best
}

// --- Input processing ---

func (d *Driver) processInput() {
	if !d.processInjectedInput() {
		d.processMousePointer()
	}
	d.processTouchPointers()
	d.processKeywords()
}

// processMousePointer handles mouse input (pointer 0).
func (d *Driver) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	d.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (d *Driver) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(d.prevTouchIDs[:0])
	d.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := d.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		d.processPointer(slot, float64(tx), float64(ty), true)
	}

	for i := 1; i < maxPointers; i++ {
		if d.touchUsed[i] && !activeSlots[i] {
			d.releaseTouch(i)
		}
	}
}

// releaseTouch ends a lifted finger: release, then drop its focus.
func (d *Driver) releaseTouch(slot int) {
	ps := &d.pointers[slot]
	if ps.down {
		d.processPointer(slot, ps.lastX, ps.lastY, false)
	}
	if ps.hover != nil {
		ps.hover.Element.HandleEvent(interactable.FocusExit(pointerOf(slot)))
		ps.hover = nil
	}
	d.touchUsed[slot] = false
	d.touchMap[slot] = 0
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (d *Driver) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if d.touchUsed[i] && d.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !d.touchUsed[i] {
			d.touchUsed[i] = true
			d.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processKeywords broadcasts bound keywords for keys pressed this frame.
func (d *Driver) processKeywords() {
	for key, kw := range d.Keywords {
		if inpututil.IsKeyJustPressed(key) {
			d.group.Broadcast(interactable.Speech(kw))
		}
	}
}

// processPointer runs the pointer state machine for a single pointer.
func (d *Driver) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &d.pointers[pointerID]
	p := pointerOf(pointerID)
	src := sourceOf(pointerID)

	target := d.hitTest(x, y)
	if target != ps.hover {
		if ps.hover != nil {
			ps.hover.Element.HandleEvent(interactable.FocusExit(p))
		}
		if target != nil {
			target.Element.HandleEvent(interactable.FocusEnter(p))
		}
		ps.hover = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.pressed = target
		if target != nil {
			target.Element.HandleEvent(interactable.InputDown(src, target.action(), p))
			target.Element.HandleEvent(interactable.InputChanged(src, target.action(),
				interactable.InputAxis2D, target.local(x, y)))
		}
	case !pressed && ps.down:
		if ps.pressed != nil {
			ps.pressed.Element.HandleEvent(interactable.InputUp(src, ps.pressed.action(), p))
		}
		ps.down = false
		ps.pressed = nil
	case pressed && ps.down:
		if ps.pressed != nil && (x != ps.lastX || y != ps.lastY) {
			ps.pressed.Element.HandleEvent(interactable.InputChanged(src, ps.pressed.action(),
				interactable.InputAxis2D, ps.pressed.local(x, y)))
		}
	}
	ps.lastX = x
	ps.lastY = y
}
