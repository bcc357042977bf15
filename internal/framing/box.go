package framing

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Size returns the component-wise extent of box.
func Size(box r3.Box) r3.Vec {
	return r3.Sub(box.Max, box.Min)
}

// Center returns the midpoint of box.
func Center(box r3.Box) r3.Vec {
	return r3.Scale(0.5, r3.Add(box.Min, box.Max))
}

// BoxFromPoints returns the smallest axis-aligned box containing pts.
// An empty point set yields the zero box.
func BoxFromPoints(pts ...r3.Vec) r3.Box {
	if len(pts) == 0 {
		return r3.Box{}
	}

	box := r3.Box{
		Min: r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	for _, p := range pts {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Min.Z = math.Min(box.Min.Z, p.Z)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
		box.Max.Z = math.Max(box.Max.Z, p.Z)
	}
	return box
}

// BoxFromSlices builds a box from two length-3 slices, the JSON form used by
// the HTTP API and CLI flags. ok is false when either slice has the wrong
// length.
func BoxFromSlices(min, max []float64) (box r3.Box, ok bool) {
	if len(min) != 3 || len(max) != 3 {
		return r3.Box{}, false
	}
	return r3.Box{
		Min: r3.Vec{X: min[0], Y: min[1], Z: min[2]},
		Max: r3.Vec{X: max[0], Y: max[1], Z: max[2]},
	}, true
}
