// Package camera models the perspective camera and orbit controller state the
// viewer writes framing results into, and projects world points to screen
// coordinates with the same matrices a renderer would use.
package camera

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/sceneview/internal/units"
)

// Perspective is a right-handed perspective camera looking from Position
// towards Target. FOV is the vertical field of view in degrees.
//
// Changing FOV, Aspect, Near or Far through the setters marks the projection
// as stale; it is rebuilt on the next ProjectionMatrix call or explicitly via
// UpdateProjectionMatrix.
type Perspective struct {
	fov    float64
	aspect float64
	near   float64
	far    float64

	Position r3.Vec
	Target   r3.Vec
	Up       r3.Vec

	projectionNeedsUpdate bool
	projection            *mat.Dense
}

// NewPerspective returns a camera at the origin looking down -Z.
func NewPerspective(fov, aspect, near, far float64) *Perspective {
	return &Perspective{
		fov:    fov,
		aspect: aspect,
		near:   near,
		far:    far,

		Target: r3.Vec{Z: -1},
		Up:     r3.Vec{Y: 1},

		projectionNeedsUpdate: true,
	}
}

func (c *Perspective) FOV() float64    { return c.fov }
func (c *Perspective) Aspect() float64 { return c.aspect }
func (c *Perspective) Near() float64   { return c.near }
func (c *Perspective) Far() float64    { return c.far }

func (c *Perspective) SetFOV(f float64) {
	c.fov = f
	c.projectionNeedsUpdate = true
}

func (c *Perspective) SetAspect(a float64) {
	c.aspect = a
	c.projectionNeedsUpdate = true
}

func (c *Perspective) SetNear(n float64) {
	c.near = n
	c.projectionNeedsUpdate = true
}

func (c *Perspective) SetFar(f float64) {
	c.far = f
	c.projectionNeedsUpdate = true
}

// ProjectionStale reports whether a setter has run since the projection
// matrix was last built.
func (c *Perspective) ProjectionStale() bool {
	return c.projectionNeedsUpdate
}

// UpdateProjectionMatrix rebuilds the projection from the current parameters.
func (c *Perspective) UpdateProjectionMatrix() {
	c.projection = NewPerspectiveMatrix(c.fov, c.aspect, c.near, c.far)
	c.projectionNeedsUpdate = false
}

// ProjectionMatrix returns the 4x4 projection, rebuilding it if stale.
func (c *Perspective) ProjectionMatrix() *mat.Dense {
	if c.projectionNeedsUpdate || c.projection == nil {
		c.UpdateProjectionMatrix()
	}
	return c.projection
}

// ViewMatrix returns the world-to-camera transform for the current pose.
func (c *Perspective) ViewMatrix() *mat.Dense {
	return LookAt(c.Position, c.Target, c.Up)
}

// NewPerspectiveMatrix builds an OpenGL-style projection (column vectors,
// clip-space z in [-w, w]) for a vertical fov in degrees.
func NewPerspectiveMatrix(fovy, aspect, near, far float64) *mat.Dense {
	f := 1 / math.Tan(units.DegToRad(fovy)/2)
	nmf := near - far

	return mat.NewDense(4, 4, []float64{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (near + far) / nmf, (2 * far * near) / nmf,
		0, 0, -1, 0,
	})
}

// LookAt builds the view matrix for an eye at eye looking at target.
// A degenerate up vector (parallel to the view direction) is nudged so the
// basis stays orthonormal.
func LookAt(eye, target, up r3.Vec) *mat.Dense {
	z := r3.Sub(eye, target)
	if r3.Norm(z) == 0 {
		z.Z = 1
	}
	z = r3.Unit(z)

	x := r3.Cross(up, z)
	if r3.Norm(x) == 0 {
		z.X += 0.0001
		z = r3.Unit(z)
		x = r3.Cross(up, z)
	}
	x = r3.Unit(x)
	y := r3.Cross(z, x)

	return mat.NewDense(4, 4, []float64{
		x.X, x.Y, x.Z, -r3.Dot(x, eye),
		y.X, y.Y, y.Z, -r3.Dot(y, eye),
		z.X, z.Y, z.Z, -r3.Dot(z, eye),
		0, 0, 0, 1,
	})
}
