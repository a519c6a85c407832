package interactable

// DimensionController tracks the current dimension of a button, toggle or
// multi-dimension element. In toggle mode it keeps StateToggled and the
// dimension index in agreement.
type DimensionController struct {
	states       *StateMachine
	dimensions   int
	current      int
	forceRefresh bool
}

// NewDimensionController creates a controller with the given count, starting
// at start (clamped). states may be nil when no toggle mirroring is needed.
func NewDimensionController(states *StateMachine, dimensions, start int) (*DimensionController, error) {
	if dimensions <= 0 {
		return nil, invalidArgument("NewDimensionController", "dimensions %d must be positive", dimensions)
	}
	d := &DimensionController{states: states, dimensions: dimensions}
	d.current = clampDimension(start, dimensions)
	d.mirror()
	return d, nil
}

// Dimensions returns the configured count.
func (d *DimensionController) Dimensions() int { return d.dimensions }

// Current returns the current dimension index.
func (d *DimensionController) Current() int { return d.current }

// Mode returns the selection mode derived from the count.
func (d *DimensionController) Mode() SelectionMode { return modeFor(d.dimensions) }

// SetDimensions changes the count and re-clamps the current index.
func (d *DimensionController) SetDimensions(n int) error {
	if n <= 0 {
		return invalidArgument("DimensionController.SetDimensions", "dimensions %d must be positive", n)
	}
	if n == d.dimensions {
		return nil
	}
	d.dimensions = n
	d.current = clampDimension(d.current, n)
	d.forceRefresh = true
	d.mirror()
	return nil
}

// Increase advances one step, wrapping from the last dimension to 0.
func (d *DimensionController) Increase() {
	d.SetCurrent((d.current + 1) % d.dimensions)
}

// Decrease steps back, wrapping from 0 to the last dimension.
func (d *DimensionController) Decrease() {
	d.SetCurrent((d.current - 1 + d.dimensions) % d.dimensions)
}

// SetCurrent selects dimension i. Returns false, changing nothing, when i is
// the current index or out of range.
func (d *DimensionController) SetCurrent(i int) bool {
	if i == d.current || i < 0 || i >= d.dimensions {
		return false
	}
	d.current = i
	d.forceRefresh = true
	d.mirror()
	return true
}

// SetToggled selects dimension 1 or 0. Only meaningful in toggle mode;
// otherwise it returns false.
func (d *DimensionController) SetToggled(on bool) bool {
	if d.Mode() != ModeToggle {
		return false
	}
	i := 0
	if on {
		i = 1
	}
	if !d.SetCurrent(i) {
		// index already matches; still repair a diverged state slot
		d.mirror()
		return false
	}
	return true
}

// Reset returns to start (clamped) and requests a refresh.
func (d *DimensionController) Reset(start int) {
	d.current = clampDimension(start, d.dimensions)
	d.forceRefresh = true
	d.mirror()
}

// ConsumeForceRefresh reports and clears the pending refresh request.
func (d *DimensionController) ConsumeForceRefresh() bool {
	f := d.forceRefresh
	d.forceRefresh = false
	return f
}

// mirror writes Toggled from the index in toggle mode, and clears it in
// other modes.
func (d *DimensionController) mirror() {
	if d.states == nil {
		return
	}
	d.states.setFlag(StateToggled, d.Mode() == ModeToggle && d.current > 0)
}

func clampDimension(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
