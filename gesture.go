package interactable

// Gesture thresholds per input kind, in local units. Coarser modalities get
// larger thresholds to absorb their natural jitter.
const (
	GestureThreshold2D   = 0.1
	GestureThreshold3D   = 0.05
	GestureThresholdPose = 0.1
)

// GestureThreshold returns the start distance for kind. Digital input has no
// threshold and returns 0.
func GestureThreshold(kind InputKind) float64 {
	switch kind {
	case InputAxis2D:
		return GestureThreshold2D
	case InputAxis3D:
		return GestureThreshold3D
	case InputPose:
		return GestureThresholdPose
	default:
		return 0
	}
}

// GestureDetector decides when motion during a press becomes a gesture.
type GestureDetector struct {
	dragStart Vec3
	seeded    bool
	active    bool
}

// Sample feeds one position. The first sample after Reset seeds the drag
// start. Returns true only for the sample that first exceeds the threshold.
func (g *GestureDetector) Sample(kind InputKind, pos Vec3) bool {
	threshold := GestureThreshold(kind)
	if threshold == 0 || g.active {
		return false
	}
	if !g.seeded {
		g.dragStart = pos
		g.seeded = true
		return false
	}
	if g.dragStart.Distance(pos) > threshold {
		g.active = true
		return true
	}
	return false
}

// Seed sets the drag start explicitly, e.g. from a touch-start position.
func (g *GestureDetector) Seed(pos Vec3) {
	g.dragStart = pos
	g.seeded = true
}

// DragStart returns the seeded start position, if any.
func (g *GestureDetector) DragStart() (Vec3, bool) {
	return g.dragStart, g.seeded
}

// Active reports whether a gesture has started since the last Reset.
func (g *GestureDetector) Active() bool {
	return g.active
}

// Reset clears the drag start and the gesture flag.
func (g *GestureDetector) Reset() {
	*g = GestureDetector{}
}
