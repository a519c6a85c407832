package interactable

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action  string  `json:"action"`
	Pointer uint32  `json:"pointer,omitempty"`
	Source  uint32  `json:"source,omitempty"`
	Near    bool    `json:"near,omitempty"`
	Input   string  `json:"input,omitempty"`
	Name    string  `json:"name,omitempty"`
	Keyword string  `json:"keyword,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Z       float64 `json:"z,omitempty"`
	Ms      int     `json:"ms,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for an interaction script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON interaction script against one element,
// advancing a ManualClock for timed steps. Useful for reproducing input
// sequences in tests and bug reports.
//
// Supported actions: focus, unfocus, down, up, move, touch_start,
// touch_move, touch_end, speak, wait (ms), tick (frames), enable, disable.
// The down, up and move steps read the input action from "name".
type ScriptRunner struct {
	steps  []scriptStep
	cursor int
}

// LoadScript parses a JSON interaction script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, newError("LoadScript", KindConfig, fmt.Errorf("parse script: %w", err))
	}
	if len(s.Steps) == 0 {
		return nil, newError("LoadScript", KindConfig, fmt.Errorf("parse script: no steps"))
	}
	for i, st := range s.Steps {
		if _, err := parseInputKind(st.Input); err != nil {
			return nil, newError("LoadScript", KindConfig, fmt.Errorf("step %d: %w", i, err))
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.cursor >= len(r.steps)
}

// Run executes the remaining steps against el.
func (r *ScriptRunner) Run(el *Interactable, clock *ManualClock) error {
	for !r.Done() {
		if err := r.Step(el, clock); err != nil {
			return err
		}
	}
	return nil
}

// Step executes one step.
func (r *ScriptRunner) Step(el *Interactable, clock *ManualClock) error {
	if r.Done() {
		return nil
	}
	st := r.steps[r.cursor]
	r.cursor++

	p := Pointer{ID: PointerID(st.Pointer), Source: SourceID(st.Source), Near: st.Near}
	pos := Vec3{st.X, st.Y, st.Z}

	switch st.Action {
	case "focus":
		el.HandleEvent(FocusEnter(p))
	case "unfocus":
		el.HandleEvent(FocusExit(p))
	case "down":
		el.HandleEvent(InputDown(SourceID(st.Source), st.Name, p))
	case "up":
		el.HandleEvent(InputUp(SourceID(st.Source), st.Name, p))
	case "move":
		kind, _ := parseInputKind(st.Input)
		el.HandleEvent(InputChanged(SourceID(st.Source), st.Name, kind, pos))
	case "touch_start":
		el.HandleEvent(TouchStarted(p, pos))
	case "touch_move":
		el.HandleEvent(TouchUpdated(p, pos))
	case "touch_end":
		el.HandleEvent(TouchCompleted(p, pos))
	case "speak":
		el.HandleEvent(Speech(st.Keyword))
	case "enable":
		el.SetEnabled(true)
	case "disable":
		el.SetEnabled(false)
	case "wait":
		if clock == nil {
			return newError("ScriptRunner.Step", KindConfig, fmt.Errorf("step %d: wait needs a manual clock", r.cursor-1))
		}
		clock.Advance(time.Duration(st.Ms) * time.Millisecond)
	case "tick":
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		for i := 0; i < frames; i++ {
			el.Tick()
		}
	default:
		return newError("ScriptRunner.Step", KindConfig, fmt.Errorf("step %d: unknown action %q", r.cursor-1, st.Action))
	}
	return nil
}

func parseInputKind(s string) (InputKind, error) {
	switch s {
	case "", "axis3d":
		return InputAxis3D, nil
	case "axis2d":
		return InputAxis2D, nil
	case "pose":
		return InputPose, nil
	case "digital":
		return InputDigital, nil
	}
	return InputDigital, fmt.Errorf("unknown input kind %q", s)
}
