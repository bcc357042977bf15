package camera

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ScreenPoint is a position in pixels with the origin at the top-left of the
// viewport and y growing downwards.
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NDC projects world into normalized device coordinates for cam.
// ok is false when the point lies on or behind the camera plane, where the
// perspective divide is undefined or mirrors the point.
func NDC(world r3.Vec, cam *Perspective) (ndc r3.Vec, ok bool) {
	var viewProj mat.Dense
	viewProj.Mul(cam.ProjectionMatrix(), cam.ViewMatrix())

	clip := mat.NewVecDense(4, nil)
	clip.MulVec(&viewProj, mat.NewVecDense(4, []float64{world.X, world.Y, world.Z, 1}))

	w := clip.AtVec(3)
	if w <= 0 {
		return r3.Vec{}, false
	}
	return r3.Vec{X: clip.AtVec(0) / w, Y: clip.AtVec(1) / w, Z: clip.AtVec(2) / w}, true
}

// ToScreen maps a world position to viewport pixels of the given size.
func ToScreen(world r3.Vec, cam *Perspective, width, height float64) (ScreenPoint, bool) {
	ndc, ok := NDC(world, cam)
	if !ok {
		return ScreenPoint{}, false
	}

	widthHalf := 0.5 * width
	heightHalf := 0.5 * height
	return ScreenPoint{
		X: ndc.X*widthHalf + widthHalf,
		Y: -(ndc.Y * heightHalf) + heightHalf,
	}, true
}
