package server

import (
	"net/http"

	"github.com/df07/go-fragment-raytracer/pkg/core"
	"github.com/df07/go-fragment-raytracer/pkg/geometry"
	"github.com/df07/go-fragment-raytracer/pkg/renderer"
	"github.com/df07/go-fragment-raytracer/pkg/scene"
	"github.com/df07/go-fragment-raytracer/pkg/shader"
)

// SphereHit reports one sphere's intersection test for an inspected pixel
type SphereHit struct {
	Index    int      `json:"index"`
	Hit      bool     `json:"hit"`
	Distance *float64 `json:"distance"` // null when the ray misses
}

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	X         int         `json:"x"`
	Y         int         `json:"y"`
	Origin    [3]float64  `json:"origin"`
	Direction [3]float64  `json:"direction"` // normalized
	Spheres   []SphereHit `json:"spheres"`
	Winner    int         `json:"winner"` // -1 when the background shows
	Color     [4]float64  `json:"color"`
}

// handleInspect explains how the fragment at pixel (x, y) got its color
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	width, err := parseIntParam(query, "width", 400, 1, 4096)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	height, err := parseIntParam(query, "height", 225, 1, 4096)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	x, err := parseIntParam(query, "x", width/2, 0, width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	y, err := parseIntParam(query, "y", height/2, 0, height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	camera := renderer.NewCamera(renderer.DefaultCameraConfig(width, height))
	ray := camera.GetRay(x, y)
	writeJSON(w, http.StatusOK, inspectRay(x, y, ray.Origin, ray.Direction))
}

// inspectRay mirrors shader.TraceScene while recording every distance
func inspectRay(x, y int, origin, rawDirection core.Vec3) InspectResponse {
	sc := scene.New()
	direction := rawDirection.Unit()

	resp := InspectResponse{
		X:         x,
		Y:         y,
		Origin:    [3]float64{origin.X, origin.Y, origin.Z},
		Direction: [3]float64{direction.X, direction.Y, direction.Z},
		Winner:    -1,
	}

	minDist := geometry.MaxDist
	for i, sphere := range sc {
		d := geometry.RaySphere(origin, direction, sphere.Center, sphere.Radius)
		hit := SphereHit{Index: i, Hit: d != geometry.NoHit}
		if hit.Hit {
			hit.Distance = &d
		}
		resp.Spheres = append(resp.Spheres, hit)

		if d < minDist {
			minDist = d
			resp.Winner = i
		}
	}

	c := shader.TraceScene(sc, origin, direction).Extend(1.0)
	resp.Color = [4]float64{c.X, c.Y, c.Z, c.W}
	return resp
}
