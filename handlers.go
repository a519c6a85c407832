package interactable

// StateSnapshot is an immutable copy of an element's state vector.
type StateSnapshot struct {
	slots     []Slot
	index     int
	dimension int
}

// Get returns the value of name, or 0 if the state is not declared.
func (s StateSnapshot) Get(name StateName) int {
	for _, sl := range s.slots {
		if sl.Name == name {
			return sl.Value
		}
	}
	return 0
}

// Is reports whether name is active.
func (s StateSnapshot) Is(name StateName) bool {
	return s.Get(name) > 0
}

// Index returns the composite index.
func (s StateSnapshot) Index() int { return s.index }

// Dimension returns the current dimension at snapshot time.
func (s StateSnapshot) Dimension() int { return s.dimension }

// Slots returns a copy of the slot vector.
func (s StateSnapshot) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// ClickContext carries click notification data. Pointer is nil for clicks
// not tied to a pointer (voice, global input).
type ClickContext struct {
	State   StateSnapshot
	Element *Interactable
	Pointer *Pointer
}

// VoiceContext carries voice command notification data. Index is the
// position of Command in the element's command list, Length its size.
type VoiceContext struct {
	State   StateSnapshot
	Element *Interactable
	Command string
	Index   int
	Length  int
}

// StateContext carries a composite-state change notification.
type StateContext struct {
	State   StateSnapshot
	Element *Interactable
}

// Receiver is a behavior object attached to an element. It receives the same
// notifications as the callback registry.
type Receiver interface {
	OnClick(ClickContext)
	OnVoiceCommand(VoiceContext)
	OnStateChange(StateContext)
}

// EntityStore is the interface for optional ECS integration.
// When set on an element, notifications are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// NotificationType identifies the notification carried by an InteractionEvent.
type NotificationType uint8

const (
	NotifyClick       NotificationType = iota // a click fired
	NotifyVoice                               // a voice command fired
	NotifyStateChange                         // the composite index changed
)

// InteractionEvent carries notification data for the ECS bridge.
type InteractionEvent struct {
	Type      NotificationType
	Element   string
	EntityID  uint32
	Index     int
	Dimension int
	Clicks    int
	Command   string
}

// --- Handler registry ---

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type voiceHandler struct {
	id uint32
	fn func(VoiceContext)
}

type stateHandler struct {
	id uint32
	fn func(StateContext)
}

type updateHandler struct {
	id uint32
	fn func(index int, forceRefresh bool)
}

type handlerKind uint8

const (
	handlerClick handlerKind = iota
	handlerVoice
	handlerState
	handlerUpdate
)

type handlerRegistry struct {
	click  []clickHandler
	voice  []voiceHandler
	state  []stateHandler
	update []updateHandler
	nextID uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case handlerClick:
		h.reg.click = removeHandler(h.reg.click, h.id, func(c clickHandler) uint32 { return c.id })
	case handlerVoice:
		h.reg.voice = removeHandler(h.reg.voice, h.id, func(c voiceHandler) uint32 { return c.id })
	case handlerState:
		h.reg.state = removeHandler(h.reg.state, h.id, func(c stateHandler) uint32 { return c.id })
	case handlerUpdate:
		h.reg.update = removeHandler(h.reg.update, h.id, func(c updateHandler) uint32 { return c.id })
	}
}

func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			var zero T
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// OnClick registers a callback for clicks.
func (e *Interactable) OnClick(fn func(ClickContext)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.click = append(e.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, kind: handlerClick}
}

// OnVoiceCommand registers a callback for recognized voice commands.
func (e *Interactable) OnVoiceCommand(fn func(VoiceContext)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.voice = append(e.handlers.voice, voiceHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, kind: handlerVoice}
}

// OnStateChange registers a callback fired from Tick when the composite index
// differs from the previous tick.
func (e *Interactable) OnStateChange(fn func(StateContext)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.state = append(e.handlers.state, stateHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, kind: handlerState}
}

// OnUpdate registers a visual listener fired from every Tick with the
// composite index and whether blending should be bypassed.
func (e *Interactable) OnUpdate(fn func(index int, forceRefresh bool)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.update = append(e.handlers.update, updateHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, kind: handlerUpdate}
}

// AddReceiver attaches r. Adding the same receiver twice is a no-op.
func (e *Interactable) AddReceiver(r Receiver) {
	for _, have := range e.receivers {
		if have == r {
			return
		}
	}
	e.receivers = append(e.receivers, r)
}

// RemoveReceiver detaches r.
func (e *Interactable) RemoveReceiver(r Receiver) {
	for i, have := range e.receivers {
		if have == r {
			e.receivers = append(e.receivers[:i], e.receivers[i+1:]...)
			return
		}
	}
}

// --- Dispatch ---

func (e *Interactable) fireClick(ctx ClickContext) {
	for _, h := range e.handlers.click {
		h.fn(ctx)
	}
	for _, r := range e.receivers {
		r.OnClick(ctx)
	}
	e.emit(NotifyClick, "")
}

func (e *Interactable) fireVoice(ctx VoiceContext) {
	for _, h := range e.handlers.voice {
		h.fn(ctx)
	}
	for _, r := range e.receivers {
		r.OnVoiceCommand(ctx)
	}
	e.emit(NotifyVoice, ctx.Command)
}

func (e *Interactable) fireStateChange(ctx StateContext) {
	for _, h := range e.handlers.state {
		h.fn(ctx)
	}
	for _, r := range e.receivers {
		r.OnStateChange(ctx)
	}
	e.emit(NotifyStateChange, "")
}

func (e *Interactable) fireUpdate(index int, force bool) {
	for _, h := range e.handlers.update {
		h.fn(index, force)
	}
}

func (e *Interactable) emit(t NotificationType, command string) {
	if e.store == nil {
		return
	}
	e.store.EmitEvent(InteractionEvent{
		Type:      t,
		Element:   e.cfg.Name,
		EntityID:  e.EntityID,
		Index:     e.states.Composite(),
		Dimension: e.dims.Current(),
		Clicks:    e.clickCount,
		Command:   command,
	})
}
