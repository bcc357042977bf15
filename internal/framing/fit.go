package framing

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/sceneview/internal/camera"
)

// Fit frames box with cam and writes the result back: the camera is moved to
// (0, 0, distance) looking at the origin, its far plane is set and the
// projection matrix is rebuilt. When orbit is non-nil its target is reset to
// the origin and its zoom-out limit is set so the far plane never cuts the box.
func Fit(cam *camera.Perspective, box r3.Box, offsetFactor float64, orbit *camera.Orbit) Result {
	res := Compute(box, CameraSpec{
		VerticalFOVDegrees: cam.FOV(),
		AspectRatio:        cam.Aspect(),
	}, offsetFactor, orbit != nil)

	cam.Position = r3.Vec{Z: res.Distance}
	cam.Target = r3.Vec{}
	cam.SetFar(res.FarPlane)
	cam.UpdateProjectionMatrix()

	if orbit != nil {
		orbit.Target = *res.OrbitTarget
		orbit.MaxDistance = res.MaxOrbitDistance
	}
	return res
}
