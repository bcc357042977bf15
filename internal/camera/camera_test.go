package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

const eps = 1e-9

func TestPerspective_ProjectionInvalidation(t *testing.T) {
	cam := NewPerspective(60, 1.5, 0.1, 100)
	assert.True(t, cam.ProjectionStale())

	p := cam.ProjectionMatrix()
	assert.False(t, cam.ProjectionStale())
	assert.InDelta(t, -1, p.At(3, 2), eps)

	cam.SetFar(500)
	assert.True(t, cam.ProjectionStale())
	cam.UpdateProjectionMatrix()
	assert.False(t, cam.ProjectionStale())
	assert.Equal(t, 500.0, cam.Far())

	// Near and far map to -1 and +1 in NDC depth.
	nearZ := depthNDC(cam.ProjectionMatrix(), -cam.Near())
	farZ := depthNDC(cam.ProjectionMatrix(), -cam.Far())
	assert.InDelta(t, -1, nearZ, 1e-9)
	assert.InDelta(t, 1, farZ, 1e-9)
}

func depthNDC(p *mat.Dense, z float64) float64 {
	v := mat.NewVecDense(4, nil)
	v.MulVec(p, mat.NewVecDense(4, []float64{0, 0, z, 1}))
	return v.AtVec(2) / v.AtVec(3)
}

func TestPerspective_Setters(t *testing.T) {
	cam := NewPerspective(50, 1, 0.1, 10)
	cam.ProjectionMatrix()

	cam.SetFOV(70)
	cam.SetAspect(2)
	cam.SetNear(1)
	assert.True(t, cam.ProjectionStale())
	assert.Equal(t, 70.0, cam.FOV())
	assert.Equal(t, 2.0, cam.Aspect())
	assert.Equal(t, 1.0, cam.Near())
}

func TestLookAt_MapsEyeToOrigin(t *testing.T) {
	eye := r3.Vec{X: 3, Y: 4, Z: 5}
	view := LookAt(eye, r3.Vec{}, r3.Vec{Y: 1})

	v := mat.NewVecDense(4, nil)
	v.MulVec(view, mat.NewVecDense(4, []float64{eye.X, eye.Y, eye.Z, 1}))
	assert.InDelta(t, 0, v.AtVec(0), eps)
	assert.InDelta(t, 0, v.AtVec(1), eps)
	assert.InDelta(t, 0, v.AtVec(2), eps)

	// The target sits straight ahead on -Z at the eye distance.
	v.MulVec(view, mat.NewVecDense(4, []float64{0, 0, 0, 1}))
	assert.InDelta(t, -r3.Norm(eye), v.AtVec(2), eps)
}

func TestLookAt_ParallelUpVector(t *testing.T) {
	view := LookAt(r3.Vec{Y: 10}, r3.Vec{}, r3.Vec{Y: 1})
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.False(t, math.IsNaN(view.At(i, j)), "NaN at %d,%d", i, j)
		}
	}
}

func TestToScreen(t *testing.T) {
	cam := NewPerspective(90, 2, 0.1, 100)
	cam.Position = r3.Vec{Z: 10}
	cam.Target = r3.Vec{}

	tests := []struct {
		name  string
		world r3.Vec
		want  ScreenPoint
	}{
		{"origin is centred", r3.Vec{}, ScreenPoint{X: 400, Y: 200}},
		// With a 90 degree vertical fov, y = distance touches the top edge.
		{"top edge", r3.Vec{Y: 10}, ScreenPoint{X: 400, Y: 0}},
		{"bottom edge", r3.Vec{Y: -10}, ScreenPoint{X: 400, Y: 400}},
		// Aspect 2 doubles the horizontal half-extent.
		{"right edge", r3.Vec{X: 20}, ScreenPoint{X: 800, Y: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToScreen(tt.world, cam, 800, 400)
			require.True(t, ok)
			assert.InDelta(t, tt.want.X, got.X, 1e-6)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-6)
		})
	}
}

func TestToScreen_BehindCamera(t *testing.T) {
	cam := NewPerspective(50, 1, 0.1, 100)
	cam.Position = r3.Vec{Z: 10}
	cam.Target = r3.Vec{}

	_, ok := ToScreen(r3.Vec{Z: 20}, cam, 640, 480)
	assert.False(t, ok)
}

func TestOrbit_ClampAndZoom(t *testing.T) {
	orbit := NewOrbit()
	assert.True(t, math.IsInf(orbit.MaxDistance, 1))
	assert.Equal(t, 1e6, orbit.ClampDistance(1e6))

	orbit.MinDistance = 2
	orbit.MaxDistance = 8
	assert.Equal(t, 2.0, orbit.ClampDistance(-1))
	assert.Equal(t, 8.0, orbit.ClampDistance(50))
	assert.Equal(t, 5.0, orbit.ClampDistance(5))

	cam := NewPerspective(50, 1, 0.1, 100)
	cam.Position = r3.Vec{X: 3, Z: 4}

	orbit.Zoom(cam, 100)
	assert.InDelta(t, 8, orbit.Distance(cam), eps)
	assert.InDelta(t, 0.6*8, cam.Position.X, eps)

	orbit.Zoom(cam, -100)
	assert.InDelta(t, 2, orbit.Distance(cam), eps)
	assert.Equal(t, orbit.Target, cam.Target)
}
