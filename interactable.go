package interactable

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Interactable is the interaction-state core of one UI element. It is not
// safe for concurrent use; a host must serialize HandleEvent and Tick for an
// element onto one goroutine.
type Interactable struct {
	// EntityID is forwarded to the EntityStore, if one is set.
	EntityID uint32

	cfg      Config
	keywords []string

	states  *StateMachine
	tracker *InputTracker
	dims    *DimensionController
	gesture GestureDetector
	click   *ClickTimer
	voice   deadline

	// near-pointer bookkeeping; these never enter the pressing set
	grabbing map[SourceID]struct{}
	touching map[PointerID]struct{}

	clock      Clock
	log        zerolog.Logger
	debug      bool
	store      EntityStore
	focusValid func(PointerID) bool

	handlers  handlerRegistry
	receivers []Receiver

	enabled       bool
	clickCount    int
	rollOff       time.Duration
	lastTick      time.Time
	ticked        bool
	lastComposite int
}

type options struct {
	clock      Clock
	logger     zerolog.Logger
	debug      bool
	table      *StateTable
	policy     CompositePolicy
	store      EntityStore
	focusValid func(PointerID) bool
}

// Option configures collaborators of an Interactable.
type Option func(*options)

// WithClock sets the clock used for every deadline. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the logger. Defaults to zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDebug turns programmer errors (undeclared states, stopping an idle
// timer) into panics.
func WithDebug(on bool) Option {
	return func(o *options) { o.debug = on }
}

// WithStateTable replaces DefaultStateTable. The table must declare Focus,
// Pressed and Disabled.
func WithStateTable(t *StateTable) Option {
	return func(o *options) { o.table = t }
}

// WithPolicy replaces the composite policy. Config.Tracks takes precedence.
func WithPolicy(p CompositePolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithEntityStore forwards notifications to an ECS.
func WithEntityStore(s EntityStore) Option {
	return func(o *options) { o.store = s }
}

// WithFocusValidator sets the predicate used on re-enable to drop focusing
// pointers that no longer target the element.
func WithFocusValidator(fn func(PointerID) bool) Option {
	return func(o *options) { o.focusValid = fn }
}

var requiredStates = []StateName{StateFocus, StatePressed, StateDisabled}

// New creates an element from cfg. The element starts disabled; call
// SetEnabled(true) to activate it.
func New(cfg Config, opts ...Option) (*Interactable, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{clock: SystemClock{}, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.table == nil {
		o.table = DefaultStateTable()
	}
	for _, n := range requiredStates {
		if !o.table.Has(n) {
			return nil, newError("New", KindInit, unknownState("New", n))
		}
	}
	policy := o.policy
	if len(cfg.Tracks) > 0 {
		policy = PriorityPolicy{Tracks: cfg.Tracks}
	}
	states, err := NewStateMachine(o.table, policy)
	if err != nil {
		return nil, err
	}
	states.debug = o.debug
	dims, err := NewDimensionController(states, cfg.Dimensions, cfg.StartDimension)
	if err != nil {
		return nil, err
	}
	click := NewClickTimer(o.clock)
	click.debug = o.debug

	e := &Interactable{
		cfg:        cfg,
		keywords:   cfg.Keywords(),
		states:     states,
		tracker:    NewInputTracker(),
		dims:       dims,
		click:      click,
		grabbing:   make(map[SourceID]struct{}),
		touching:   make(map[PointerID]struct{}),
		clock:      o.clock,
		log:        o.logger.With().Str("element", cfg.Name).Logger(),
		debug:      o.debug,
		store:      o.store,
		focusValid: o.focusValid,
	}
	e.states.setFlag(StateDisabled, true)
	e.lastComposite = e.states.Composite()
	return e, nil
}

// Config returns the element configuration.
func (e *Interactable) Config() Config { return e.cfg }

// Name returns the configured name.
func (e *Interactable) Name() string { return e.cfg.Name }

// Enabled reports whether the element is enabled.
func (e *Interactable) Enabled() bool { return e.enabled }

// SetEnabled enables or disables the element. Disabling synchronously clears
// press, gesture, grab, touch and voice state and cancels every timer.
// Focusing pointers stay tracked so that focus can be restored on re-enable,
// after stale entries are pruned.
func (e *Interactable) SetEnabled(on bool) {
	if on == e.enabled {
		return
	}
	e.enabled = on
	if !on {
		e.clearTransient()
		_ = e.states.SetBatch(func(b *Batch) {
			b.SetFlag(StateDisabled, true)
			b.SetFlag(StateFocus, false)
		})
		e.log.Debug().Msg("disabled")
		return
	}
	if e.focusValid != nil {
		if n := e.tracker.PruneStalePointers(e.focusValid); n > 0 {
			e.log.Debug().Int("pruned", n).Msg("dropped stale focusing pointers")
		}
	}
	_ = e.states.SetBatch(func(b *Batch) {
		b.SetFlag(StateDisabled, false)
		b.SetFlag(StateFocus, e.tracker.FocusCount() > 0 && e.CanInteract())
	})
	e.log.Debug().Int("focusing", e.tracker.FocusCount()).Msg("enabled")
}

// Global reports whether the element listens without focus.
func (e *Interactable) Global() bool { return e.cfg.Global }

// SetGlobal changes global listening.
func (e *Interactable) SetGlobal(on bool) { e.cfg.Global = on }

// CanInteract reports whether the element accepts new interaction: it is
// enabled, and for more than one dimension the boundary dimensions allow
// leaving them. CanSelect gates dimension 0 and CanDeselect gates the last
// dimension; middle dimensions of a multi-dimension element are always free.
func (e *Interactable) CanInteract() bool {
	if !e.enabled {
		return false
	}
	if n := e.dims.Dimensions(); n > 1 {
		cur := e.dims.Current()
		if (!e.cfg.CanSelect && cur == 0) || (!e.cfg.CanDeselect && cur == n-1) {
			return false
		}
	}
	return true
}

// --- State access ---

// State returns a snapshot of the current state.
func (e *Interactable) State() StateSnapshot {
	s := e.states.Snapshot()
	s.dimension = e.dims.Current()
	return s
}

// Get returns the value of a state slot.
func (e *Interactable) Get(name StateName) (int, error) {
	return e.states.Get(name)
}

// Composite returns the current composite index.
func (e *Interactable) Composite() int { return e.states.Composite() }

// HasFocus reports whether the Focus state is active.
func (e *Interactable) HasFocus() bool { return e.states.Is(StateFocus) }

// HasPress reports whether the Pressed state is active.
func (e *Interactable) HasPress() bool { return e.states.Is(StatePressed) }

// SetState writes a state slot on behalf of the host. Toggled is routed
// through the dimension controller and Disabled through SetEnabled so that
// both views stay consistent.
func (e *Interactable) SetState(name StateName, value int) error {
	switch name {
	case StateToggled:
		return e.SetToggled(value > 0)
	case StateDisabled:
		e.SetEnabled(value <= 0)
		return nil
	}
	return e.states.Set(name, value)
}

// ResetAllStates restores every slot to its default and forgets all tracked
// pointers and sources. The dimension index is kept.
func (e *Interactable) ResetAllStates() {
	e.clearTransient()
	e.tracker.Clear()
	e.states.Reset()
	e.states.setFlag(StateDisabled, !e.enabled)
	e.dims.mirror()
	e.log.Debug().Msg("states reset")
}

// ClickCount returns the number of clicks fired since creation.
func (e *Interactable) ClickCount() int { return e.clickCount }

// FocusingPointers returns the pointers currently focusing the element.
func (e *Interactable) FocusingPointers() []PointerID { return e.tracker.FocusingPointers() }

// PressingSources returns the input sources currently pressing the element.
func (e *Interactable) PressingSources() []SourceID { return e.tracker.PressingSources() }

// ClickValid reports whether an input-up now would fire a click.
func (e *Interactable) ClickValid() bool { return e.click.Valid() }

// --- Dimensions ---

// Dimensions returns the dimension count.
func (e *Interactable) Dimensions() int { return e.dims.Dimensions() }

// CurrentDimension returns the current dimension index.
func (e *Interactable) CurrentDimension() int { return e.dims.Current() }

// Mode returns the selection mode.
func (e *Interactable) Mode() SelectionMode { return e.dims.Mode() }

// SetDimensions changes the dimension count. Non-positive counts are
// rejected without changing anything.
func (e *Interactable) SetDimensions(n int) error {
	if err := e.dims.SetDimensions(n); err != nil {
		e.log.Warn().Err(err).Int("dimensions", n).Msg("rejected dimension count")
		return err
	}
	e.cfg.Dimensions = n
	return nil
}

// SetCurrentDimension selects dimension i. Out-of-range indices are ignored.
func (e *Interactable) SetCurrentDimension(i int) {
	if i < 0 || i >= e.dims.Dimensions() {
		e.log.Warn().Int("dimension", i).Int("dimensions", e.dims.Dimensions()).Msg("rejected dimension index")
		return
	}
	e.dims.SetCurrent(i)
}

// IncreaseDimension advances one dimension, wrapping.
func (e *Interactable) IncreaseDimension() { e.dims.Increase() }

// DecreaseDimension steps back one dimension, wrapping.
func (e *Interactable) DecreaseDimension() { e.dims.Decrease() }

// IsToggled reports the toggle state.
func (e *Interactable) IsToggled() bool { return e.states.Is(StateToggled) }

// SetToggled selects dimension 1 (on) or 0 (off). Only valid in toggle mode.
func (e *Interactable) SetToggled(on bool) error {
	if e.dims.Mode() != ModeToggle {
		return invalidArgument("Interactable.SetToggled", "%s is not a toggle", e.dims.Mode())
	}
	e.dims.SetToggled(on)
	return nil
}

// --- Tick ---

// Tick advances timers and notifies listeners. Call it once per frame, after
// the frame's events have been delivered.
func (e *Interactable) Tick() {
	now := e.clock.Now()
	var dt time.Duration
	if e.ticked {
		dt = now.Sub(e.lastTick)
	}
	e.lastTick = now
	e.ticked = true

	e.click.expire()
	if e.voice.expired(now) {
		e.endVoicePulse()
	}
	e.updateRollOff(dt)

	index := e.states.Composite()
	e.fireUpdate(index, e.dims.ConsumeForceRefresh())
	if index != e.lastComposite {
		e.lastComposite = index
		e.log.Debug().Int("index", index).Msg("state changed")
		e.fireStateChange(StateContext{State: e.State(), Element: e})
	}
}

// updateRollOff releases a press held for RollOffTime without any focusing
// pointer. The counter restarts whenever focus is present. Global elements
// do not roll off, since they never needed focus to be pressed, and neither
// do touched ones: a touching near pointer holds the element by contact.
func (e *Interactable) updateRollOff(dt time.Duration) {
	if e.cfg.Global || !e.states.Is(StatePressed) || e.voice.running ||
		e.tracker.FocusCount() > 0 || len(e.touching) > 0 {
		e.rollOff = 0
		return
	}
	e.rollOff += dt
	if e.rollOff < e.cfg.RollOffTime {
		return
	}
	e.rollOff = 0
	e.tracker.ClearPressing()
	clear(e.touching)
	e.gesture.Reset()
	_ = e.states.SetBatch(func(b *Batch) {
		b.SetFlag(StatePressed, false)
		b.SetFlag(StateGesture, false)
		b.SetFlag(StatePhysicalTouch, false)
	})
	e.log.Debug().Msg("press rolled off")
}

// clearTransient drops every press-related state and timer.
func (e *Interactable) clearTransient() {
	e.tracker.ClearPressing()
	clear(e.grabbing)
	clear(e.touching)
	e.gesture.Reset()
	e.click.reset()
	e.voice.cancel()
	e.rollOff = 0
	_ = e.states.SetBatch(func(b *Batch) {
		b.SetFlag(StatePressed, false)
		b.SetFlag(StateGesture, false)
		b.SetFlag(StateGestureMax, false)
		b.SetFlag(StateGrab, false)
		b.SetFlag(StatePhysicalTouch, false)
		b.SetFlag(StateVoiceCommand, false)
	})
}

// matchKeyword returns the index of keyword in the command list, or -1.
func (e *Interactable) matchKeyword(keyword string) int {
	keyword = strings.TrimSpace(keyword)
	for i, k := range e.keywords {
		if strings.EqualFold(k, keyword) {
			return i
		}
	}
	return -1
}
