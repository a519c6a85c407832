package interactable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGestureThreshold(t *testing.T) {
	assert.Equal(t, 0.1, GestureThreshold(InputAxis2D))
	assert.Equal(t, 0.05, GestureThreshold(InputAxis3D))
	assert.Equal(t, 0.1, GestureThreshold(InputPose))
	assert.Zero(t, GestureThreshold(InputDigital))
}

func TestGestureDetector_3D(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		want bool
	}{
		{"below threshold", 0.04, false},
		{"above threshold", 0.06, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g GestureDetector
			assert.False(t, g.Sample(InputAxis3D, Vec3{}), "first sample only seeds")
			start, ok := g.DragStart()
			assert.True(t, ok)
			assert.Equal(t, Vec3{}, start)

			assert.Equal(t, tt.want, g.Sample(InputAxis3D, Vec3{X: tt.dist}))
			assert.Equal(t, tt.want, g.Active())
		})
	}
}

func TestGestureDetector_FiresOnce(t *testing.T) {
	var g GestureDetector
	g.Sample(InputAxis2D, Vec3{})
	assert.True(t, g.Sample(InputAxis2D, Vec3{X: 0.2}))
	assert.False(t, g.Sample(InputAxis2D, Vec3{X: 0.5}))
	assert.True(t, g.Active())

	g.Reset()
	_, ok := g.DragStart()
	assert.False(t, ok)
	assert.False(t, g.Active())
}

func TestGestureDetector_DigitalNeverGestures(t *testing.T) {
	var g GestureDetector
	g.Sample(InputDigital, Vec3{})
	assert.False(t, g.Sample(InputDigital, Vec3{X: 10}))
	_, ok := g.DragStart()
	assert.False(t, ok)
}

func TestGestureDetector_Seed(t *testing.T) {
	var g GestureDetector
	g.Seed(Vec3{X: 1, Y: 1, Z: 1})
	assert.False(t, g.Sample(InputPose, Vec3{X: 1, Y: 1, Z: 1.05}))
	assert.True(t, g.Sample(InputPose, Vec3{X: 1, Y: 1, Z: 1.2}))
}
