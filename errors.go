package interactable

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is against these; the concrete value is usually
// an *Error carrying the failing operation.
var (
	// ErrUnknownState is returned for a lookup of an undeclared state name.
	ErrUnknownState = errors.New("unknown state")
	// ErrInvalidArgument is returned for out-of-range configuration values.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotRunning is returned when stopping a timer that is idle.
	ErrNotRunning = errors.New("timer not running")
	// ErrNoStateTable is returned when a state machine is built without a table.
	ErrNoStateTable = errors.New("no state table configured")
)

// ErrorKind identifies the category of an error.
type ErrorKind uint8

const (
	KindUnknown  ErrorKind = iota // unclassified
	KindState                     // state table or state machine misuse
	KindArgument                  // rejected configuration value
	KindTimer                     // timer protocol violation
	KindInit                      // initialization failure
	KindConfig                    // configuration file parsing
)

func (k ErrorKind) String() string {
	switch k {
	case KindState:
		return "state"
	case KindArgument:
		return "argument"
	case KindTimer:
		return "timer"
	case KindInit:
		return "init"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error is a structured error produced by this package.
type Error struct {
	// Op is the operation that failed (e.g. "StateMachine.Get").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error, usually one of the sentinels above.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("interactable: %s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

func unknownState(op string, name StateName) error {
	return newError(op, KindState, fmt.Errorf("%w: %s", ErrUnknownState, name))
}

func invalidArgument(op, format string, args ...any) error {
	return newError(op, KindArgument, fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...)))
}
