package interactable

// StateMachine owns a StateTable and keeps its composite index current.
// Mutations never notify; callers decide when to propagate.
type StateMachine struct {
	table     *StateTable
	policy    CompositePolicy
	composite int
	debug     bool
}

// NewStateMachine creates a state machine over a private copy of table, so
// one table can serve as the template for many elements. A nil policy
// selects DefaultPolicy.
func NewStateMachine(table *StateTable, policy CompositePolicy) (*StateMachine, error) {
	if table == nil {
		return nil, newError("NewStateMachine", KindInit, ErrNoStateTable)
	}
	if policy == nil {
		policy = DefaultPolicy()
	}
	m := &StateMachine{table: table.clone(), policy: policy}
	m.Reset()
	return m, nil
}

// Table returns the machine's own copy of the table.
func (m *StateMachine) Table() *StateTable {
	return m.table
}

// Get returns the value of name.
func (m *StateMachine) Get(name StateName) (int, error) {
	i, ok := m.table.Index(name)
	if !ok {
		return 0, unknownState("StateMachine.Get", name)
	}
	return m.table.slots[i].Value, nil
}

// Is reports whether name is active. Undeclared names report false, and
// panic in debug mode.
func (m *StateMachine) Is(name StateName) bool {
	i, ok := m.table.Index(name)
	if !ok {
		debugCheckState(m.debug, name, "StateMachine.Is")
		return false
	}
	return m.table.slots[i].Active()
}

// Set records value for name and recomputes the composite index.
func (m *StateMachine) Set(name StateName, value int) error {
	i, ok := m.table.Index(name)
	if !ok {
		return unknownState("StateMachine.Set", name)
	}
	m.table.slots[i].Value = value
	m.recompute()
	return nil
}

// setFlag is Set for the core's own bookkeeping. Undeclared names are ignored
// so that reduced tables keep working, but panic in debug mode.
func (m *StateMachine) setFlag(name StateName, on bool) {
	i, ok := m.table.Index(name)
	if !ok {
		debugCheckState(m.debug, name, "StateMachine.set")
		return
	}
	v := 0
	if on {
		v = 1
	}
	if m.table.slots[i].Value == v {
		return
	}
	m.table.slots[i].Value = v
	m.recompute()
}

// Batch applies several slot writes with a single recompute.
type Batch struct {
	m   *StateMachine
	err error
}

// Set records value for name. The first unknown name is reported by SetBatch.
func (b *Batch) Set(name StateName, value int) {
	i, ok := b.m.table.Index(name)
	if !ok {
		debugCheckState(b.m.debug, name, "Batch.Set")
		if b.err == nil {
			b.err = unknownState("Batch.Set", name)
		}
		return
	}
	b.m.table.slots[i].Value = value
}

// SetFlag records 1 or 0 for name.
func (b *Batch) SetFlag(name StateName, on bool) {
	v := 0
	if on {
		v = 1
	}
	b.Set(name, v)
}

// SetBatch runs fn and recomputes the composite once afterwards, so that no
// caller observes an intermediate composite. Writes to known names are kept
// even if fn also wrote an unknown one.
func (m *StateMachine) SetBatch(fn func(b *Batch)) error {
	b := &Batch{m: m}
	fn(b)
	m.recompute()
	return b.err
}

// Composite returns the current composite index.
func (m *StateMachine) Composite() int {
	return m.composite
}

// Reset restores every slot to its declared default.
func (m *StateMachine) Reset() {
	for i := range m.table.slots {
		m.table.slots[i].Value = m.table.slots[i].Default
	}
	m.recompute()
}

// Snapshot returns an immutable copy of the current state.
func (m *StateMachine) Snapshot() StateSnapshot {
	return StateSnapshot{slots: m.table.Slots(), index: m.composite}
}

func (m *StateMachine) recompute() {
	m.composite = m.policy.Composite(m.table.slots)
}
