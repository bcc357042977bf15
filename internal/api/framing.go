package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/sceneview/internal/camera"
	"github.com/banshee-data/sceneview/internal/fovsweep"
	"github.com/banshee-data/sceneview/internal/framing"
	"github.com/banshee-data/sceneview/internal/httputil"
	"github.com/banshee-data/sceneview/internal/numeric"
	"github.com/banshee-data/sceneview/internal/units"
)

// framingRequest describes a bounding box and an optional camera. Omitted
// camera fields fall back to the server defaults.
type framingRequest struct {
	Min      []float64 `json:"min"`
	Max      []float64 `json:"max"`
	FOV      *float64  `json:"fov,omitempty"`
	FOVUnit  string    `json:"fov_unit,omitempty"` // "deg" (default) or "rad"
	Aspect   *float64  `json:"aspect,omitempty"`
	Offset   *float64  `json:"offset,omitempty"`
	Controls bool      `json:"controls"`
}

// toDegrees converts an angle given in unit to degrees. An empty unit means
// degrees.
func toDegrees(angle float64, unit string) (float64, error) {
	if unit == "" {
		return angle, nil
	}
	if !units.IsValidAngleUnit(unit) {
		return 0, fmt.Errorf("invalid angle unit %q, want one of %v", unit, units.ValidAngleUnits)
	}
	return units.RadToDeg(units.ToRadians(angle, unit)), nil
}

func (s *Server) resolve(req framingRequest) (r3.Box, framing.CameraSpec, float64, error) {
	box, ok := framing.BoxFromSlices(req.Min, req.Max)
	if !ok {
		return r3.Box{}, framing.CameraSpec{}, 0, fmt.Errorf("min and max must each have 3 components")
	}
	// Corners may arrive in either order.
	box = framing.BoxFromPoints(box.Min, box.Max)

	cam := s.camera.Spec()
	if req.FOV != nil {
		fov, err := toDegrees(*req.FOV, req.FOVUnit)
		if err != nil {
			return r3.Box{}, framing.CameraSpec{}, 0, err
		}
		cam.VerticalFOVDegrees = fov
	} else if req.FOVUnit != "" && !units.IsValidAngleUnit(req.FOVUnit) {
		return r3.Box{}, framing.CameraSpec{}, 0, fmt.Errorf("invalid angle unit %q", req.FOVUnit)
	}
	if req.Aspect != nil {
		cam.AspectRatio = *req.Aspect
	}
	if err := cam.Validate(); err != nil {
		return r3.Box{}, framing.CameraSpec{}, 0, err
	}
	offset := s.camera.GetOffsetFactor()
	if req.Offset != nil {
		offset = *req.Offset
	}
	if offset < 0 {
		return r3.Box{}, framing.CameraSpec{}, 0, fmt.Errorf("offset must be non-negative, got %v", offset)
	}
	return box, cam, offset, nil
}

func (s *Server) handleFraming(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	var req framingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	box, cam, offset, err := s.resolve(req)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	httputil.WriteJSONOK(w, framing.Compute(box, cam, offset, req.Controls))
}

type projectRequest struct {
	framingRequest
	Point  []float64 `json:"point"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
}

type projectResponse struct {
	X       float64        `json:"x"`
	Y       float64        `json:"y"`
	Visible bool           `json:"visible"`
	Framing framing.Result `json:"framing"`
}

// handleProject frames a camera on the box and projects a world point to
// pixel coordinates in a width x height viewport.
func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	var req projectRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	box, spec, offset, err := s.resolve(req.framingRequest)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	if len(req.Point) != 3 {
		httputil.BadRequest(w, "point must have 3 components")
		return
	}
	if req.Width <= 0 || req.Height <= 0 {
		httputil.BadRequest(w, "width and height must be positive")
		return
	}

	cam := camera.NewPerspective(spec.VerticalFOVDegrees, spec.AspectRatio, s.camera.GetNear(), s.camera.GetFar())
	var orbit *camera.Orbit
	if req.Controls {
		orbit = camera.NewOrbit()
	}
	res := framing.Fit(cam, box, offset, orbit)

	pt, visible := camera.ToScreen(r3.Vec{X: req.Point[0], Y: req.Point[1], Z: req.Point[2]}, cam, req.Width, req.Height)
	httputil.WriteJSONOK(w, projectResponse{X: pt.X, Y: pt.Y, Visible: visible, Framing: res})
}

// handleFramingChart renders the framing distance over a range of fovs for
// the box given as ?min=x,y,z&max=x,y,z. from, to, step, unit and aspect
// are optional; from, to and step are in unit (deg or rad).
func (s *Server) handleFramingChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	q := r.URL.Query()

	minV, err := parseVec(q.Get("min"))
	if err != nil {
		httputil.BadRequest(w, "min: "+err.Error())
		return
	}
	maxV, err := parseVec(q.Get("max"))
	if err != nil {
		httputil.BadRequest(w, "max: "+err.Error())
		return
	}
	from, err := parseFloatDefault(q.Get("from"), 10)
	if err != nil {
		httputil.BadRequest(w, "from: "+err.Error())
		return
	}
	to, err := parseFloatDefault(q.Get("to"), 120)
	if err != nil {
		httputil.BadRequest(w, "to: "+err.Error())
		return
	}
	step, err := parseFloatDefault(q.Get("step"), 5)
	if err != nil {
		httputil.BadRequest(w, "step: "+err.Error())
		return
	}
	aspect, err := parseFloatDefault(q.Get("aspect"), s.camera.GetAspect())
	if err != nil {
		httputil.BadRequest(w, "aspect: "+err.Error())
		return
	}
	// Defaults are in degrees; only explicit range values take the unit.
	unit := q.Get("unit")
	for name, v := range map[string]*float64{"from": &from, "to": &to, "step": &step} {
		if q.Get(name) == "" {
			continue
		}
		if *v, err = toDegrees(*v, unit); err != nil {
			httputil.BadRequest(w, "unit: "+err.Error())
			return
		}
	}
	if unit != "" && !units.IsValidAngleUnit(unit) {
		httputil.BadRequest(w, fmt.Sprintf("unit: invalid angle unit %q", unit))
		return
	}

	box := framing.BoxFromPoints(minV, maxV)
	samples, err := fovsweep.Sweep(box, aspect, s.camera.GetOffsetFactor(), from, to, step)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	var buf bytes.Buffer
	title := fmt.Sprintf("Framing %s", formatSize(framing.Size(box)))
	if err := fovsweep.RenderChart(&buf, title, samples); err != nil {
		httputil.WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf("render error: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func parseVec(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vec{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := numeric.ParseFinite(p)
		if err != nil {
			return r3.Vec{}, err
		}
		v[i] = f
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}

func parseFloatDefault(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return numeric.ParseFinite(s)
}

func formatSize(v r3.Vec) string {
	return fmt.Sprintf("%gx%gx%g", v.X, v.Y, v.Z)
}
