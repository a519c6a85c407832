package interactable

import (
	"fmt"

	"github.com/rs/zerolog"
)

// debugCheckState panics when an undeclared state is used in debug mode.
// Release builds skip the panic and treat the slot as absent.
func debugCheckState(debug bool, name StateName, op string) {
	if debug {
		panic(fmt.Sprintf("interactable debug: %s on undeclared state %s", op, name))
	}
}

// debugCheckTimer panics when an idle timer is stopped in debug mode.
func debugCheckTimer(debug bool, op string) {
	if debug {
		panic(fmt.Sprintf("interactable debug: %s on idle timer", op))
	}
}

// logEvent writes a dropped or accepted event at trace level.
func logEvent(log zerolog.Logger, ev Event, msg string) {
	e := log.Trace()
	if !e.Enabled() {
		return
	}
	e.Str("kind", ev.Kind.String()).
		Uint32("pointer", uint32(ev.Pointer.ID)).
		Uint32("source", uint32(ev.Source)).
		Str("action", ev.Action).
		Msg(msg)
}
