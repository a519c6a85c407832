package interactable

// EventKind identifies the variant carried by an Event.
type EventKind uint8

const (
	EventFocusEnter     EventKind = iota // a pointer started focusing the element
	EventFocusExit                       // a pointer stopped focusing the element
	EventInputDown                       // an input source pressed
	EventInputUp                         // an input source released
	EventInputChanged                    // continuous input moved (2-D, 3-D or pose)
	EventTouchStarted                    // a near pointer began touching
	EventTouchUpdated                    // a touching near pointer moved
	EventTouchCompleted                  // a near pointer stopped touching
	EventSpeechKeyword                   // a voice keyword was recognized
)

func (k EventKind) String() string {
	switch k {
	case EventFocusEnter:
		return "focus_enter"
	case EventFocusExit:
		return "focus_exit"
	case EventInputDown:
		return "input_down"
	case EventInputUp:
		return "input_up"
	case EventInputChanged:
		return "input_changed"
	case EventTouchStarted:
		return "touch_started"
	case EventTouchUpdated:
		return "touch_updated"
	case EventTouchCompleted:
		return "touch_completed"
	case EventSpeechKeyword:
		return "speech_keyword"
	default:
		return "unknown"
	}
}

// Pointer describes one pointer. Near pointers (poke, grab) deliver touch
// events and must not also drive button semantics through input-down.
type Pointer struct {
	ID     PointerID
	Source SourceID
	Near   bool
}

// Event is the single intake type for the element. Only the fields relevant
// to Kind are read.
type Event struct {
	Kind EventKind

	// Pointer is the reporting pointer for focus and touch events.
	Pointer Pointer
	// Source is the input source for down, up and changed events.
	Source SourceID
	// Pointers lists every pointer backed by Source.
	Pointers []Pointer
	// Action is the input action identity, matched against Config.Action.
	Action string

	Input    InputKind
	Position Vec3

	Keyword string
}

// FocusEnter builds a focus-enter event.
func FocusEnter(p Pointer) Event {
	return Event{Kind: EventFocusEnter, Pointer: p, Source: p.Source}
}

// FocusExit builds a focus-exit event.
func FocusExit(p Pointer) Event {
	return Event{Kind: EventFocusExit, Pointer: p, Source: p.Source}
}

// InputDown builds an input-down event for src and the pointers it backs.
func InputDown(src SourceID, action string, pointers ...Pointer) Event {
	return Event{Kind: EventInputDown, Source: src, Action: action, Pointers: pointers}
}

// InputUp builds an input-up event.
func InputUp(src SourceID, action string, pointers ...Pointer) Event {
	return Event{Kind: EventInputUp, Source: src, Action: action, Pointers: pointers}
}

// InputChanged builds a continuous-input sample.
func InputChanged(src SourceID, action string, kind InputKind, pos Vec3) Event {
	return Event{Kind: EventInputChanged, Source: src, Action: action, Input: kind, Position: pos}
}

// TouchStarted builds a touch-start event for a near pointer.
func TouchStarted(p Pointer, pos Vec3) Event {
	p.Near = true
	return Event{Kind: EventTouchStarted, Pointer: p, Source: p.Source, Input: InputAxis3D, Position: pos}
}

// TouchUpdated builds a touch-move event.
func TouchUpdated(p Pointer, pos Vec3) Event {
	p.Near = true
	return Event{Kind: EventTouchUpdated, Pointer: p, Source: p.Source, Input: InputAxis3D, Position: pos}
}

// TouchCompleted builds a touch-end event.
func TouchCompleted(p Pointer, pos Vec3) Event {
	p.Near = true
	return Event{Kind: EventTouchCompleted, Pointer: p, Source: p.Source, Input: InputAxis3D, Position: pos}
}

// Speech builds a recognized-keyword event.
func Speech(keyword string) Event {
	return Event{Kind: EventSpeechKeyword, Keyword: keyword}
}
