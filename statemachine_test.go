package interactable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T) *StateMachine {
	t.Helper()
	m, err := NewStateMachine(DefaultStateTable(), nil)
	require.NoError(t, err)
	return m
}

func TestNewStateMachine_NoTable(t *testing.T) {
	_, err := NewStateMachine(nil, nil)
	assert.ErrorIs(t, err, ErrNoStateTable)
}

func TestStateMachine_LastWriteWins(t *testing.T) {
	m := newTestMachine(t)
	require.NoError(t, m.Set(StateFocus, 1))
	require.NoError(t, m.Set(StateFocus, 0))
	require.NoError(t, m.Set(StateFocus, 1))
	require.NoError(t, m.Set(StateCustom, 7))

	v, err := m.Get(StateFocus)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = m.Get(StateCustom)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestStateMachine_CompositeIsOrderIndependent(t *testing.T) {
	a := newTestMachine(t)
	require.NoError(t, a.Set(StatePressed, 1))
	require.NoError(t, a.Set(StateDisabled, 1))
	require.NoError(t, a.Set(StateFocus, 1))

	b := newTestMachine(t)
	require.NoError(t, b.Set(StateFocus, 1))
	require.NoError(t, b.Set(StateDisabled, 1))
	require.NoError(t, b.Set(StatePressed, 0))
	require.NoError(t, b.Set(StatePressed, 1))

	assert.Equal(t, a.Composite(), b.Composite())
	assert.Equal(t, 3, a.Composite())
	// idempotent between mutations
	assert.Equal(t, a.Composite(), a.Composite())
}

func TestStateMachine_UnknownState(t *testing.T) {
	tbl, err := NewStateTable(StateFocus, StatePressed, StateDisabled)
	require.NoError(t, err)
	m, err := NewStateMachine(tbl, nil)
	require.NoError(t, err)

	_, err = m.Get(StateGrab)
	assert.ErrorIs(t, err, ErrUnknownState)
	assert.ErrorIs(t, m.Set(StateGrab, 1), ErrUnknownState)
	assert.False(t, m.Is(StateGrab))

	var se *Error
	require.ErrorAs(t, m.Set(StateGrab, 1), &se)
	assert.Equal(t, KindState, se.Kind)
	assert.Equal(t, "StateMachine.Set", se.Op)
}

func TestStateMachine_DebugPanicsOnUnknown(t *testing.T) {
	tbl, err := NewStateTable(StateFocus)
	require.NoError(t, err)
	m, err := NewStateMachine(tbl, nil)
	require.NoError(t, err)
	m.debug = true

	assert.Panics(t, func() { m.Is(StatePressed) })
}

func TestStateMachine_DebugPanicsOnUnknownBatchWrite(t *testing.T) {
	tbl, err := NewStateTable(StateFocus)
	require.NoError(t, err)
	m, err := NewStateMachine(tbl, nil)
	require.NoError(t, err)
	m.debug = true

	assert.Panics(t, func() {
		_ = m.SetBatch(func(b *Batch) { b.SetFlag(StatePressed, true) })
	})
}

func TestNewStateMachine_CopiesTable(t *testing.T) {
	tbl := DefaultStateTable()
	a, err := NewStateMachine(tbl, nil)
	require.NoError(t, err)
	b, err := NewStateMachine(tbl, nil)
	require.NoError(t, err)

	require.NoError(t, a.Set(StatePressed, 1))
	assert.False(t, b.Is(StatePressed))
	assert.Equal(t, 0, b.Composite())
	for _, sl := range tbl.Slots() {
		assert.Zero(t, sl.Value, sl.Name.String())
	}
}

func TestStateMachine_SetBatchRecomputesOnce(t *testing.T) {
	m := newTestMachine(t)
	calls := 0
	m.policy = countingPolicy{inner: DefaultPolicy(), calls: &calls}

	err := m.SetBatch(func(b *Batch) {
		b.SetFlag(StateVoiceCommand, true)
		b.SetFlag(StateFocus, true)
		b.SetFlag(StatePressed, true)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, m.Composite())
	assert.True(t, m.Is(StateVoiceCommand))
}

func TestStateMachine_SetBatchReportsUnknown(t *testing.T) {
	tbl, err := NewStateTable(StateFocus, StatePressed)
	require.NoError(t, err)
	m, err := NewStateMachine(tbl, nil)
	require.NoError(t, err)

	err = m.SetBatch(func(b *Batch) {
		b.SetFlag(StateFocus, true)
		b.SetFlag(StateGrab, true)
	})
	assert.ErrorIs(t, err, ErrUnknownState)
	assert.True(t, m.Is(StateFocus))
}

func TestStateMachine_Reset(t *testing.T) {
	m := newTestMachine(t)
	require.NoError(t, m.table.SetDefault(StateInteractive, 1))
	require.NoError(t, m.Set(StatePressed, 1))
	require.NoError(t, m.Set(StateInteractive, 0))

	m.Reset()
	assert.False(t, m.Is(StatePressed))
	assert.True(t, m.Is(StateInteractive))
	assert.Equal(t, 0, m.Composite())
}

func TestStateMachine_Snapshot(t *testing.T) {
	m := newTestMachine(t)
	require.NoError(t, m.Set(StateFocus, 1))
	snap := m.Snapshot()
	require.NoError(t, m.Set(StateFocus, 0))

	assert.True(t, snap.Is(StateFocus), "snapshot must not follow later writes")
	assert.Equal(t, 1, snap.Index())
	assert.Equal(t, 0, snap.Get(StateDefault))
}

type countingPolicy struct {
	inner CompositePolicy
	calls *int
}

func (p countingPolicy) Composite(slots []Slot) int {
	*p.calls++
	return p.inner.Composite(slots)
}
