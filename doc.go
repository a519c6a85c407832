// Package interactable is the interaction-state core of a reusable UI
// element.
//
// An [Interactable] turns already-dispatched input notifications (focus,
// press and release, continuous motion, near touch, recognized voice
// keywords) into a canonical set of named states, and republishes state
// transitions to visual and behavioral listeners.
//
// # Quick start
//
//	cfg := interactable.DefaultConfig()
//	cfg.Name = "ok"
//	cfg.Action = "select"
//	btn, err := interactable.New(cfg, interactable.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	btn.OnClick(func(ctx interactable.ClickContext) { ... })
//	btn.SetEnabled(true)
//
// Each frame, deliver the frame's events with [Interactable.HandleEvent] (or
// through a [Group]) and then call [Interactable.Tick] once. Listeners never
// observe a half-applied batch of events.
//
// # States
//
// Slots live in a [StateTable] owned by a [StateMachine]. The composite index
// is recomputed from the whole slot vector by a [CompositePolicy] on every
// change; the default [PriorityPolicy] maps Focus, Pressed and Disabled to
// indices 1, 2 and 3 with Disabled taking precedence.
//
// # Timing
//
// No goroutines or timers are used. Click validity, roll-off and the voice
// pulse are deadlines compared against an injected [Clock]; use a
// [ManualClock] in tests.
//
// # Dimensions
//
// An element with one dimension is a button, with two a toggle, with more a
// multi-dimension selector. Each click advances the dimension with
// wraparound. In toggle mode the Toggled state and the dimension index are
// two views of one value.
//
// # Adapters
//
// Sub-packages connect the core to an ebiten input loop (input), to tweened
// visual feedback (theme, via [gween]) and to a [Donburi] ECS (ecs).
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package interactable
