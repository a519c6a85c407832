package interactable

import (
	"fmt"
	"strings"
)

// StateName identifies one interaction state slot.
type StateName uint8

const (
	StateDefault             StateName = iota // no state active; never a slot
	StateFocus                                // a pointer is focusing the element
	StatePressed                              // an input source holds the element down
	StateDisabled                             // the element is disabled
	StateTargeted                             // targeted by an external selector
	StateInteractive                          // marked interactive by the host
	StateObservationTargeted                  // targeted while observed
	StateObservation                          // observed (e.g. gaze without focus)
	StateVisited                              // clicked at least once
	StateToggled                              // toggle mode, selected
	StateGesture                              // press motion exceeded the gesture threshold
	StateGestureMax                           // gesture reached its maximum extent
	StateCollision                            // physical collision reported by the host
	StateVoiceCommand                         // voice command pulse is active
	StatePhysicalTouch                        // a near pointer is touching the element
	StateCustom                               // host-defined
	StateGrab                                 // a near pointer is grabbing the element

	stateCount
)

var stateNames = [stateCount]string{
	StateDefault:             "Default",
	StateFocus:               "Focus",
	StatePressed:             "Pressed",
	StateDisabled:            "Disabled",
	StateTargeted:            "Targeted",
	StateInteractive:         "Interactive",
	StateObservationTargeted: "ObservationTargeted",
	StateObservation:         "Observation",
	StateVisited:             "Visited",
	StateToggled:             "Toggled",
	StateGesture:             "Gesture",
	StateGestureMax:          "GestureMax",
	StateCollision:           "Collision",
	StateVoiceCommand:        "VoiceCommand",
	StatePhysicalTouch:       "PhysicalTouch",
	StateCustom:              "Custom",
	StateGrab:                "Grab",
}

func (n StateName) String() string {
	if n < stateCount {
		return stateNames[n]
	}
	return fmt.Sprintf("StateName(%d)", uint8(n))
}

// ParseStateName resolves a case-insensitive state name.
func ParseStateName(s string) (StateName, error) {
	for i, name := range stateNames {
		if strings.EqualFold(name, s) {
			return StateName(i), nil
		}
	}
	return StateDefault, newError("ParseStateName", KindState, fmt.Errorf("%w: %q", ErrUnknownState, s))
}

// MarshalText implements encoding.TextMarshaler.
func (n StateName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *StateName) UnmarshalText(b []byte) error {
	v, err := ParseStateName(string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Slot is one named state value. Values are integers so that multi-valued
// states remain possible; the built-in states use 0 and 1.
type Slot struct {
	Name    StateName
	Value   int
	Default int
}

// Active reports whether the slot holds a non-zero value.
func (s Slot) Active() bool {
	return s.Value > 0
}

// StateTable is an ordered set of uniquely named slots.
type StateTable struct {
	slots []Slot
	index [stateCount]int8 // slot position + 1; 0 means undeclared
}

// NewStateTable builds a table declaring the given states in order.
func NewStateTable(names ...StateName) (*StateTable, error) {
	if len(names) == 0 {
		return nil, newError("NewStateTable", KindInit, ErrNoStateTable)
	}
	t := &StateTable{slots: make([]Slot, 0, len(names))}
	for _, n := range names {
		if n == StateDefault || n >= stateCount {
			return nil, invalidArgument("NewStateTable", "state %s cannot be declared", n)
		}
		if t.index[n] != 0 {
			return nil, invalidArgument("NewStateTable", "duplicate state %s", n)
		}
		t.slots = append(t.slots, Slot{Name: n})
		t.index[n] = int8(len(t.slots))
	}
	return t, nil
}

// DefaultStateTable declares every built-in state in enumeration order.
func DefaultStateTable() *StateTable {
	names := make([]StateName, 0, stateCount-1)
	for n := StateFocus; n < stateCount; n++ {
		names = append(names, n)
	}
	t, _ := NewStateTable(names...)
	return t
}

// Index returns the slot position of name.
func (t *StateTable) Index(name StateName) (int, bool) {
	if name >= stateCount || t.index[name] == 0 {
		return -1, false
	}
	return int(t.index[name]) - 1, true
}

// Has reports whether name is declared.
func (t *StateTable) Has(name StateName) bool {
	_, ok := t.Index(name)
	return ok
}

// Len returns the number of declared slots.
func (t *StateTable) Len() int {
	return len(t.slots)
}

// Slots returns a copy of the slot vector.
func (t *StateTable) Slots() []Slot {
	out := make([]Slot, len(t.slots))
	copy(out, t.slots)
	return out
}

func (t *StateTable) clone() *StateTable {
	return &StateTable{slots: t.Slots(), index: t.index}
}

// SetDefault changes the declared default of a slot. Defaults are applied on
// the next Reset.
func (t *StateTable) SetDefault(name StateName, value int) error {
	i, ok := t.Index(name)
	if !ok {
		return unknownState("StateTable.SetDefault", name)
	}
	t.slots[i].Default = value
	return nil
}

// CompositePolicy maps a full slot vector to one composite index. It must be
// a pure function of the vector.
type CompositePolicy interface {
	Composite(slots []Slot) int
}

// PriorityPolicy selects a visual track by precedence. Tracks are listed
// lowest precedence first; the composite is 1 + the position of the highest
// active track, or 0 when none is active.
type PriorityPolicy struct {
	Tracks []StateName
}

// DefaultTracks is the track list used by DefaultPolicy.
var DefaultTracks = []StateName{StateFocus, StatePressed, StateDisabled}

// DefaultPolicy returns the Focus < Pressed < Disabled priority policy.
func DefaultPolicy() PriorityPolicy {
	return PriorityPolicy{Tracks: DefaultTracks}
}

// Composite implements CompositePolicy.
func (p PriorityPolicy) Composite(slots []Slot) int {
	var active [stateCount]bool
	for _, s := range slots {
		if s.Name < stateCount && s.Active() {
			active[s.Name] = true
		}
	}
	for i := len(p.Tracks) - 1; i >= 0; i-- {
		n := p.Tracks[i]
		if n < stateCount && active[n] {
			return i + 1
		}
	}
	return 0
}

// BitmaskPolicy packs the active slots into a bit set, slot i at bit i.
type BitmaskPolicy struct{}

// Composite implements CompositePolicy.
func (BitmaskPolicy) Composite(slots []Slot) int {
	bits := 0
	for i, s := range slots {
		if s.Active() {
			bits |= 1 << i
		}
	}
	return bits
}
