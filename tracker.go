package interactable

import "slices"

// PointerID identifies a pointer reporting focus.
type PointerID uint32

// SourceID identifies an input source (hand, controller, mouse) that backs
// one or more pointers and reports press and release.
type SourceID uint32

// InputTracker records which pointers focus the element and which input
// sources currently press it. All mutators are idempotent.
type InputTracker struct {
	focusing map[PointerID]struct{}
	pressing map[SourceID]struct{}
}

// NewInputTracker returns an empty tracker.
func NewInputTracker() *InputTracker {
	return &InputTracker{
		focusing: make(map[PointerID]struct{}),
		pressing: make(map[SourceID]struct{}),
	}
}

// AddFocusingPointer records p as focusing. Reports whether p was new.
func (t *InputTracker) AddFocusingPointer(p PointerID) bool {
	if _, ok := t.focusing[p]; ok {
		return false
	}
	t.focusing[p] = struct{}{}
	return true
}

// RemoveFocusingPointer forgets p. Reports whether p was present.
func (t *InputTracker) RemoveFocusingPointer(p PointerID) bool {
	if _, ok := t.focusing[p]; !ok {
		return false
	}
	delete(t.focusing, p)
	return true
}

// HasFocusingPointer reports whether p is focusing.
func (t *InputTracker) HasFocusingPointer(p PointerID) bool {
	_, ok := t.focusing[p]
	return ok
}

// FocusCount returns the number of focusing pointers.
func (t *InputTracker) FocusCount() int {
	return len(t.focusing)
}

// FocusingPointers returns the focusing pointers in ascending order.
func (t *InputTracker) FocusingPointers() []PointerID {
	out := make([]PointerID, 0, len(t.focusing))
	for p := range t.focusing {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// AddPressingSource records s as pressing. Reports whether s was new.
func (t *InputTracker) AddPressingSource(s SourceID) bool {
	if _, ok := t.pressing[s]; ok {
		return false
	}
	t.pressing[s] = struct{}{}
	return true
}

// RemovePressingSource forgets s. Reports whether s was present.
func (t *InputTracker) RemovePressingSource(s SourceID) bool {
	if _, ok := t.pressing[s]; !ok {
		return false
	}
	delete(t.pressing, s)
	return true
}

// HasPressingSource reports whether s is pressing.
func (t *InputTracker) HasPressingSource(s SourceID) bool {
	_, ok := t.pressing[s]
	return ok
}

// PressCount returns the number of pressing sources.
func (t *InputTracker) PressCount() int {
	return len(t.pressing)
}

// PressingSources returns the pressing sources in ascending order.
func (t *InputTracker) PressingSources() []SourceID {
	out := make([]SourceID, 0, len(t.pressing))
	for s := range t.pressing {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// PruneStalePointers removes every focusing pointer for which keep returns
// false and returns how many were removed.
func (t *InputTracker) PruneStalePointers(keep func(PointerID) bool) int {
	removed := 0
	for p := range t.focusing {
		if !keep(p) {
			delete(t.focusing, p)
			removed++
		}
	}
	return removed
}

// ClearPressing forgets all pressing sources.
func (t *InputTracker) ClearPressing() {
	clear(t.pressing)
}

// Clear forgets everything.
func (t *InputTracker) Clear() {
	clear(t.focusing)
	clear(t.pressing)
}
