package interactable

// HandleEvent applies one input notification. Events that fail eligibility
// are dropped silently; they are expected, high-frequency traffic.
func (e *Interactable) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventFocusEnter:
		e.onFocusEnter(ev)
	case EventFocusExit:
		e.onFocusExit(ev)
	case EventInputDown:
		e.onInputDown(ev)
	case EventInputUp:
		e.onInputUp(ev)
	case EventInputChanged:
		e.onInputChanged(ev)
	case EventTouchStarted:
		e.onTouchStarted(ev)
	case EventTouchUpdated:
		e.onTouchUpdated(ev)
	case EventTouchCompleted:
		e.onTouchCompleted(ev)
	case EventSpeechKeyword:
		e.onSpeech(ev)
	default:
		logEvent(e.log, ev, "unknown event kind")
	}
}

func (e *Interactable) actionMatches(action string) bool {
	return e.cfg.Action == "" || e.cfg.Action == action
}

// canListen is the shared input-down/up gate: interaction allowed, focus or
// global listening, and the configured action.
func (e *Interactable) canListen(ev Event) bool {
	return e.CanInteract() && (e.HasFocus() || e.cfg.Global) && e.actionMatches(ev.Action)
}

// nearFocused reports whether any near pointer behind the source is focusing
// the element. Such input is delivered through touch and grab instead.
func (e *Interactable) nearFocused(pointers []Pointer) bool {
	for _, p := range pointers {
		if p.Near && e.tracker.HasFocusingPointer(p.ID) {
			return true
		}
	}
	return false
}

// clickPointer picks the pointer reported with a click: the first focusing
// pointer of the source, else its first pointer.
func (e *Interactable) clickPointer(pointers []Pointer) *Pointer {
	for i := range pointers {
		if e.tracker.HasFocusingPointer(pointers[i].ID) {
			p := pointers[i]
			return &p
		}
	}
	if len(pointers) > 0 {
		p := pointers[0]
		return &p
	}
	return nil
}

func (e *Interactable) onFocusEnter(ev Event) {
	e.tracker.AddFocusingPointer(ev.Pointer.ID)
	if !e.CanInteract() {
		logEvent(e.log, ev, "focus tracked, element not interactive")
		return
	}
	e.states.setFlag(StateFocus, true)
	e.rollOff = 0
}

func (e *Interactable) onFocusExit(ev Event) {
	if !e.tracker.RemoveFocusingPointer(ev.Pointer.ID) {
		logEvent(e.log, ev, "focus exit for untracked pointer")
		return
	}
	if e.tracker.FocusCount() == 0 && !e.voice.running {
		e.states.setFlag(StateFocus, false)
	}
}

func (e *Interactable) onInputDown(ev Event) {
	if !e.canListen(ev) {
		logEvent(e.log, ev, "input down dropped")
		return
	}
	if e.nearFocused(ev.Pointers) {
		e.grabbing[ev.Source] = struct{}{}
		e.states.setFlag(StateGrab, true)
		return
	}
	if e.tracker.PressCount() == 0 {
		e.gesture.Reset()
	}
	e.tracker.AddPressingSource(ev.Source)
	e.rollOff = 0
	e.states.setFlag(StatePressed, true)
	e.click.Start(e.cfg.ClickTime)
	logEvent(e.log, ev, "pressed")
}

func (e *Interactable) onInputUp(ev Event) {
	if _, ok := e.grabbing[ev.Source]; ok {
		delete(e.grabbing, ev.Source)
		if len(e.grabbing) == 0 {
			e.states.setFlag(StateGrab, false)
		}
		return
	}
	if !e.actionMatches(ev.Action) || !e.tracker.HasPressingSource(ev.Source) {
		logEvent(e.log, ev, "input up dropped")
		return
	}
	e.tracker.RemovePressingSource(ev.Source)
	if e.click.Valid() && (e.HasFocus() || e.cfg.Global) {
		e.triggerClick(e.clickPointer(ev.Pointers))
		e.stopClickTimer()
	}
	e.releaseIfIdle()
}

// releaseIfIdle clears Pressed and Gesture once nothing holds the element.
func (e *Interactable) releaseIfIdle() {
	if e.tracker.PressCount() > 0 || len(e.touching) > 0 {
		return
	}
	e.gesture.Reset()
	if e.voice.running {
		return
	}
	_ = e.states.SetBatch(func(b *Batch) {
		b.SetFlag(StatePressed, false)
		b.SetFlag(StateGesture, false)
	})
}

func (e *Interactable) onInputChanged(ev Event) {
	if !e.tracker.HasPressingSource(ev.Source) || !e.actionMatches(ev.Action) {
		return
	}
	if e.gesture.Sample(ev.Input, ev.Position) {
		e.states.setFlag(StateGesture, true)
		e.log.Debug().Str("input", ev.Input.String()).Msg("gesture started")
	}
}

func (e *Interactable) onTouchStarted(ev Event) {
	if !e.CanInteract() {
		logEvent(e.log, ev, "touch dropped")
		return
	}
	if len(e.touching) == 0 && e.tracker.PressCount() == 0 {
		e.gesture.Reset()
		e.gesture.Seed(ev.Position)
	}
	e.touching[ev.Pointer.ID] = struct{}{}
	e.rollOff = 0
	_ = e.states.SetBatch(func(b *Batch) {
		b.SetFlag(StatePhysicalTouch, true)
		b.SetFlag(StatePressed, true)
	})
	e.click.Start(e.cfg.ClickTime)
}

func (e *Interactable) onTouchUpdated(ev Event) {
	if _, ok := e.touching[ev.Pointer.ID]; !ok {
		return
	}
	if e.gesture.Sample(InputAxis3D, ev.Position) {
		e.states.setFlag(StateGesture, true)
	}
}

func (e *Interactable) onTouchCompleted(ev Event) {
	if _, ok := e.touching[ev.Pointer.ID]; !ok {
		logEvent(e.log, ev, "touch completed for untracked pointer")
		return
	}
	delete(e.touching, ev.Pointer.ID)
	if e.click.Valid() {
		p := ev.Pointer
		e.triggerClick(&p)
		e.stopClickTimer()
	}
	if len(e.touching) == 0 {
		e.states.setFlag(StatePhysicalTouch, false)
	}
	e.releaseIfIdle()
}

func (e *Interactable) onSpeech(ev Event) {
	idx := e.matchKeyword(ev.Keyword)
	if idx < 0 {
		return
	}
	if !e.CanInteract() || (e.cfg.VoiceRequiresFocus && !(e.HasFocus() || e.cfg.Global)) {
		logEvent(e.log, ev, "voice command dropped")
		return
	}
	e.startVoicePulse()
	e.log.Debug().Str("command", e.keywords[idx]).Msg("voice command")
	e.fireVoice(VoiceContext{
		State:   e.State(),
		Element: e,
		Command: e.keywords[idx],
		Index:   idx,
		Length:  len(e.keywords),
	})
	e.triggerClick(nil)
}
