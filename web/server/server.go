package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/df07/go-fragment-raytracer/pkg/core"
	"github.com/df07/go-fragment-raytracer/pkg/geometry"
	"github.com/df07/go-fragment-raytracer/pkg/output"
	"github.com/df07/go-fragment-raytracer/pkg/renderer"
	"github.com/df07/go-fragment-raytracer/pkg/scene"
	"github.com/df07/go-fragment-raytracer/pkg/shader"
)

//go:embed static
var staticFiles embed.FS

// DefaultTileSize is the tile edge used when a request does not set one
const DefaultTileSize = 32

// Server handles web requests for the fragment raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Width     int              `json:"width"`     // Image width
	Height    int              `json:"height"`    // Image height
	TileSize  int              `json:"tileSize"`  // Tile edge in pixels
	Workers   int              `json:"workers"`   // Parallel workers (0 = CPU count)
	Scale     int              `json:"scale"`     // Integer upscale applied after rendering
	Format    output.Format    `json:"format"`    // Encoding for /api/image
	Precision shader.Precision `json:"precision"` // Fragment precision
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	BackgroundPixels int     `json:"backgroundPixels"`
	SpherePixels     []int   `json:"spherePixels"`
	Tiles            int     `json:"tiles"`
	Coverage         float64 `json:"coverage"`
	ElapsedMs        int64   `json:"elapsedMs"`
}

func newStats(s renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:      s.TotalPixels,
		BackgroundPixels: s.BackgroundPixels,
		SpherePixels:     s.SpherePixels[:],
		Tiles:            s.Tiles,
		Coverage:         s.Coverage(),
		ElapsedMs:        s.Duration.Milliseconds(),
	}
}

// Handler returns the HTTP routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve the embedded browser client
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("/", http.FileServer(http.FS(static)))

	// API endpoints
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scene", s.handleScene)
	mux.HandleFunc("/api/fragment", s.handleFragment)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/image", s.handleImage)
	mux.HandleFunc("/api/render", s.handleRender)

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScene lists the spheres every fragment evaluates
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	camera := renderer.DefaultCameraConfig(0, 0)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"spheres":     scene.Describe(scene.New()),
		"maxDistance": geometry.MaxDist,
		"background":  [3]float64{shader.Background.X, shader.Background.Y, shader.Background.Z},
		"camera": map[string]interface{}{
			"origin":         [3]float64{camera.Origin.X, camera.Origin.Y, camera.Origin.Z},
			"focalLength":    camera.FocalLength,
			"viewportHeight": camera.ViewportHeight,
		},
		"precisions": []string{shader.Float64.String(), shader.Float32.String()},
	})
}

// handleFragment evaluates a single fragment from an explicit ray
func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	origin, err := parseVec3Param(query, "origin", core.NewVec3(0, 0, 0))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	direction, err := parseVec3Param(query, "direction", core.NewVec3(0, 0, 1))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	precision, err := shader.ParsePrecision(query.Get("precision"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	c := shader.Evaluator(precision)(origin, direction)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"r":         c.X,
		"g":         c.Y,
		"b":         c.Z,
		"a":         c.W,
		"precision": precision.String(),
	})
}

// parseRenderRequest parses and validates request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, 4096); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 225, 1, 4096); err != nil {
		return nil, err
	}
	if req.TileSize, err = parseIntParam(query, "tileSize", DefaultTileSize, 8, 512); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, 256); err != nil {
		return nil, err
	}
	if req.Scale, err = parseIntParam(query, "scale", 1, 1, 8); err != nil {
		return nil, err
	}
	if req.Precision, err = shader.ParsePrecision(query.Get("precision")); err != nil {
		return nil, err
	}

	req.Format = output.PNG
	if value := query.Get("format"); value != "" {
		if req.Format, err = output.ParseFormat(value); err != nil {
			return nil, err
		}
	}

	// Performance warning
	if req.Width*req.Height*req.Scale*req.Scale > 4096*4096 {
		log.Printf("Render warning: %dx%d at scale %d produces a very large image", req.Width, req.Height, req.Scale)
	}

	return req, nil
}

// newRaytracer builds a raytracer for a validated request
func (s *Server) newRaytracer(req *RenderRequest, logger core.Logger) (*renderer.Raytracer, error) {
	config := renderer.Config{
		TileSize:   req.TileSize,
		NumWorkers: req.Workers,
		Precision:  req.Precision,
	}
	return renderer.NewRaytracer(renderer.DefaultCameraConfig(req.Width, req.Height), config, logger)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseVec3Param parses a comma-separated "x,y,z" vector from URL query
func parseVec3Param(values url.Values, key string, defaultValue core.Vec3) (core.Vec3, error) {
	value := values.Get(key)
	if value == "" {
		return defaultValue, nil
	}

	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("%s must have 3 components, got: %s", key, value)
	}

	var components [3]float64
	for i, part := range parts {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid %s: %s", key, value)
		}
		components[i] = parsed
	}
	return core.NewVec3(components[0], components[1], components[2]), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
