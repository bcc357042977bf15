// Package fovsweep tabulates how the framing distance for a box changes as
// the camera's vertical field of view is varied, and renders the result as a
// PNG plot or an interactive HTML chart.
package fovsweep

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/sceneview/internal/framing"
)

// MaxSamples bounds the number of fovs a single sweep may evaluate.
const MaxSamples = 10000

var (
	// ErrEmptyRange is returned when a sweep range contains no samples.
	ErrEmptyRange = errors.New("fovsweep: empty fov range")
	// ErrTooManySamples is returned when a range and step would exceed MaxSamples.
	ErrTooManySamples = errors.New("fovsweep: too many samples")
)

// Sample is the framing result for one field of view.
type Sample struct {
	FOVDegrees float64 `json:"fov"`
	Distance   float64 `json:"distance"`
	FarPlane   float64 `json:"far"`
}

// Sweep computes framing for every fov in [fromDeg, toDeg] in steps of
// stepDeg. The end point is included when the range divides evenly.
func Sweep(box r3.Box, aspect, offsetFactor, fromDeg, toDeg, stepDeg float64) ([]Sample, error) {
	if stepDeg <= 0 || math.IsNaN(stepDeg) || math.IsNaN(fromDeg) || math.IsNaN(toDeg) || toDeg < fromDeg {
		return nil, fmt.Errorf("%w: from=%v to=%v step=%v", ErrEmptyRange, fromDeg, toDeg, stepDeg)
	}

	// Checked as a float so huge spans never reach the int conversion.
	span := math.Floor((toDeg-fromDeg)/stepDeg + 1e-9)
	if math.IsInf(span, 0) || math.IsNaN(span) || span+1 > MaxSamples {
		return nil, fmt.Errorf("%w: from=%v to=%v step=%v exceeds %d", ErrTooManySamples, fromDeg, toDeg, stepDeg, MaxSamples)
	}
	n := int(span) + 1
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		fov := fromDeg + float64(i)*stepDeg
		cam := framing.CameraSpec{VerticalFOVDegrees: fov, AspectRatio: aspect}
		if err := cam.Validate(); err != nil {
			return nil, err
		}
		res := framing.Compute(box, cam, offsetFactor, false)
		samples = append(samples, Sample{FOVDegrees: fov, Distance: res.Distance, FarPlane: res.FarPlane})
	}
	return samples, nil
}
