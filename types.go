package interactable

import "math"

// Vec3 is a position in the element's local unit system. 2-D input leaves Z
// at zero.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Len()
}

// InputKind identifies the dimensionality of a continuous input sample.
type InputKind uint8

const (
	InputDigital InputKind = iota // button-style input, never gestures
	InputAxis2D                   // 2-D axis (thumbstick, touchpad, screen pointer)
	InputAxis3D                   // 3-D position (hand joint, controller grip)
	InputPose                     // full 6-DoF pose, position part is sampled
)

func (k InputKind) String() string {
	switch k {
	case InputDigital:
		return "digital"
	case InputAxis2D:
		return "axis2d"
	case InputAxis3D:
		return "axis3d"
	case InputPose:
		return "pose"
	default:
		return "unknown"
	}
}

// SelectionMode is derived from the element's dimension count.
type SelectionMode uint8

const (
	ModeButton         SelectionMode = iota // one dimension
	ModeToggle                              // two dimensions, mirrored by Toggled
	ModeMultiDimension                      // three or more dimensions
)

func (m SelectionMode) String() string {
	switch m {
	case ModeButton:
		return "button"
	case ModeToggle:
		return "toggle"
	case ModeMultiDimension:
		return "multi"
	default:
		return "unknown"
	}
}

// modeFor maps a dimension count to its selection mode.
func modeFor(dimensions int) SelectionMode {
	switch {
	case dimensions <= 1:
		return ModeButton
	case dimensions == 2:
		return ModeToggle
	default:
		return ModeMultiDimension
	}
}
