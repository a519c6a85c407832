package interactable

// triggerClick runs the click pipeline: advance the dimension, count the
// click, mark Visited, then notify.
func (e *Interactable) triggerClick(p *Pointer) {
	e.dims.Increase()
	e.clickCount++
	e.states.setFlag(StateVisited, true)
	ev := e.log.Debug().Int("clicks", e.clickCount).Int("dimension", e.dims.Current())
	if p != nil {
		ev = ev.Uint32("pointer", uint32(p.ID))
	}
	ev.Msg("click")
	e.fireClick(ClickContext{State: e.State(), Element: e, Pointer: p})
}

// stopClickTimer closes the click window after a click. Listeners may have
// disabled the element, which already reset the timer.
func (e *Interactable) stopClickTimer() {
	if e.click.Valid() {
		_ = e.click.Stop()
	}
}

// Click fires the click pipeline directly, as if a valid input-up arrived.
// Ignored when the element cannot interact.
func (e *Interactable) Click() {
	if !e.CanInteract() {
		return
	}
	e.triggerClick(nil)
}

// startVoicePulse shows Focus and Pressed for VoicePulseTime, independent of
// physical input.
func (e *Interactable) startVoicePulse() {
	_ = e.states.SetBatch(func(b *Batch) {
		b.SetFlag(StateVoiceCommand, true)
		b.SetFlag(StateFocus, true)
		b.SetFlag(StatePressed, true)
	})
	e.voice.arm(e.clock.Now(), e.cfg.VoicePulseTime)
}

// endVoicePulse clears the pulse and restores Focus and Pressed from the
// tracked input.
func (e *Interactable) endVoicePulse() {
	e.voice.cancel()
	pressed := e.tracker.PressCount() > 0 || len(e.touching) > 0
	_ = e.states.SetBatch(func(b *Batch) {
		b.SetFlag(StateVoiceCommand, false)
		b.SetFlag(StateFocus, e.tracker.FocusCount() > 0 && e.CanInteract())
		b.SetFlag(StatePressed, pressed)
		if !pressed {
			b.SetFlag(StateGesture, false)
		}
	})
}

// VoiceActive reports whether a voice pulse is showing.
func (e *Interactable) VoiceActive() bool {
	return e.voice.active(e.clock.Now())
}
