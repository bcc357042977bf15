package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Orbit holds the limits of an orbit-style controller: the point it rotates
// around and how close or far the camera may zoom.
type Orbit struct {
	Target      r3.Vec
	MinDistance float64
	MaxDistance float64
}

// NewOrbit returns an orbit around the origin with no zoom limits.
func NewOrbit() *Orbit {
	return &Orbit{MaxDistance: math.Inf(1)}
}

// ClampDistance restricts d to [MinDistance, MaxDistance].
func (o *Orbit) ClampDistance(d float64) float64 {
	return math.Max(o.MinDistance, math.Min(o.MaxDistance, d))
}

// Distance returns how far cam currently is from the orbit target.
func (o *Orbit) Distance(cam *Perspective) float64 {
	return r3.Norm(r3.Sub(cam.Position, o.Target))
}

// Zoom moves cam along its line to the target by delta, respecting the
// distance limits, and points it at the target.
func (o *Orbit) Zoom(cam *Perspective, delta float64) {
	offset := r3.Sub(cam.Position, o.Target)
	radius := o.ClampDistance(r3.Norm(offset) + delta)

	dir := r3.Vec{Z: 1}
	if r3.Norm(offset) > 0 {
		dir = r3.Unit(offset)
	}
	cam.Position = r3.Add(o.Target, r3.Scale(radius, dir))
	cam.Target = o.Target
}
