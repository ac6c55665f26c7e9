// Package server streams renders to a browser over Server-Sent Events.
package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

//go:embed static
var staticFiles embed.FS

// Request limits shared by the render and inspect endpoints
const (
	MinImageSize = 16
	MaxImageSize = 2000
	MaxDepth     = 20

	// DefaultTileSize is smaller than the CLI default so the browser sees early progress
	DefaultTileSize = 16
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// SceneRequest holds the parameters that select and frame a scene
type SceneRequest struct {
	Scene       string  `json:"scene"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	FieldOfView float64 `json:"fov"` // Degrees
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("/", http.FileServer(http.FS(static)))

	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
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
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	names := scene.Names()
	scenes := make([]SceneInfo, 0, len(names))
	for _, name := range names {
		scenes = append(scenes, SceneInfo{Name: name, Description: scene.Description(name)})
	}
	s.writeJSON(w, http.StatusOK, scenes)
}

// parseSceneRequest reads the scene parameters shared by all endpoints
func (s *Server) parseSceneRequest(values url.Values) (*SceneRequest, error) {
	defaults := scene.DefaultConfig()
	req := &SceneRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", defaults.Width, MinImageSize, MaxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", defaults.Height, MinImageSize, MaxImageSize); err != nil {
		return nil, err
	}
	if req.FieldOfView, err = parseFloatParam(values, "fov", defaults.FieldOfView*180/math.Pi, 1, 179); err != nil {
		return nil, err
	}
	return req, nil
}

// createScene builds the requested scene, logging through logger
func (s *Server) createScene(req *SceneRequest, logger core.Logger) (*scene.Scene, error) {
	config := scene.DefaultConfig()
	config.Width = req.Width
	config.Height = req.Height
	config.FieldOfView = req.FieldOfView * math.Pi / 180
	config.Logger = logger
	return scene.New(req.Scene, config)
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

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// renderConfig is the raytracer configuration used for web renders
func renderConfig(depth int) renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	config.MaxDepth = depth
	config.TileSize = DefaultTileSize
	return config
}
