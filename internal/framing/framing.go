// Package framing computes where a perspective camera has to sit so that an
// axis-aligned bounding box fits entirely in its field of view.
//
// Boxes use the gonum r3 convention: X is width, Y is height and Z is depth
// along the view axis. The camera is assumed to look down -Z at the origin.
package framing

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/sceneview/internal/units"
)

var (
	// ErrInvalidFOV is returned by CameraSpec.Validate when the vertical
	// field of view is outside (0, 180) degrees.
	ErrInvalidFOV = errors.New("vertical fov must be in (0, 180) degrees")
	// ErrInvalidAspect is returned by CameraSpec.Validate when the aspect
	// ratio is not strictly positive.
	ErrInvalidAspect = errors.New("aspect ratio must be positive")
)

// farPlaneFactor and orbitFactor scale the camera-to-far-edge distance into
// the far clipping plane and the orbit controller's zoom-out limit.
const (
	farPlaneFactor = 3
	orbitFactor    = 2
)

// CameraSpec is the subset of a perspective camera that framing needs.
type CameraSpec struct {
	VerticalFOVDegrees float64 `json:"fov"`
	AspectRatio        float64 `json:"aspect"`
}

// Validate reports whether the camera lies inside the domain Compute is defined
// on. Compute itself never validates.
func (c CameraSpec) Validate() error {
	if math.IsNaN(c.VerticalFOVDegrees) || c.VerticalFOVDegrees <= 0 || c.VerticalFOVDegrees >= 180 {
		return fmt.Errorf("%w: got %v", ErrInvalidFOV, c.VerticalFOVDegrees)
	}
	if math.IsNaN(c.AspectRatio) || c.AspectRatio <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidAspect, c.AspectRatio)
	}
	return nil
}

// Result holds the framing parameters written back to the camera and, when
// an orbit controller is present, to its limits.
type Result struct {
	// Distance is the camera offset along +Z from the origin.
	Distance float64 `json:"distance"`
	// CameraToFarEdge is the distance from the camera to the far face of the box.
	CameraToFarEdge float64 `json:"camera_to_far_edge"`
	// FarPlane is the far clipping plane, 3 x CameraToFarEdge.
	FarPlane float64 `json:"far_plane"`

	// HasOrbit is set when the caller has orbit controls. MaxOrbitDistance
	// and OrbitTarget are left zero otherwise.
	HasOrbit         bool    `json:"has_orbit"`
	MaxOrbitDistance float64 `json:"max_orbit_distance,omitempty"`
	OrbitTarget      *r3.Vec `json:"orbit_target,omitempty"`
}

// Compute returns the framing for box as seen by cam.
//
// Algorithm:
//  1. Convert the vertical FOV to radians
//  2. Derive the horizontal FOV from the aspect ratio
//  3. For width and height, the distance at which half the extent subtends
//     half the FOV, plus half the depth protruding towards the camera
//  4. Take the larger of the two so both sides fit
//  5. Scale by offsetFactor when non-zero (zero means no offset)
//  6. Measure from the camera to the far face (box.Min.Z) and derive the far
//     plane and orbit limit from it
//
// Compute is pure and safe for concurrent use. Inputs outside the domain
// checked by CameraSpec.Validate produce undefined results.
func Compute(box r3.Box, cam CameraSpec, offsetFactor float64, hasControls bool) Result {
	fov := units.DegToRad(cam.VerticalFOVDegrees)
	fovh := 2 * math.Atan(math.Tan(fov/2)*cam.AspectRatio)

	size := Size(box)
	dx := size.Z/2 + math.Abs(size.X/2/math.Tan(fovh/2))
	dy := size.Z/2 + math.Abs(size.Y/2/math.Tan(fov/2))
	distance := math.Max(dx, dy)

	if offsetFactor != 0 {
		distance *= offsetFactor
	}

	minZ := box.Min.Z
	var toFarEdge float64
	if minZ < 0 {
		toFarEdge = -minZ + distance
	} else {
		toFarEdge = distance - minZ
	}

	res := Result{
		Distance:        distance,
		CameraToFarEdge: toFarEdge,
		FarPlane:        farPlaneFactor * toFarEdge,
	}
	if hasControls {
		res.HasOrbit = true
		res.MaxOrbitDistance = orbitFactor * toFarEdge
		res.OrbitTarget = &r3.Vec{}
	}
	return res
}
