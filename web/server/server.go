package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var logger = log.New("server")

// errSceneOutsideDir is returned for JSON scenes that do not name a file in
// the server's scenes directory
var errSceneOutsideDir = errors.New("server: scene file must be in the scenes directory")

// Limits applied to client-supplied render parameters
const (
	minDimension = 1
	maxDimension = 2000
	maxDepth     = 50
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	scenesDir string // Directory scanned for JSON scenes
}

// NewServer creates a new web server
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string  // Built-in scene name or JSON scene in the scenes directory
	Width   int     // Image width, 0 keeps the scene's
	Height  int     // Image height, 0 keeps the scene's
	Depth   int     // Max recursion depth, -1 keeps the scene's
	Workers int     // Render workers, 0 = CPU count
	Gamma   float64 // Display gamma for streamed pixels
}

// Handler returns the HTTP handler serving every API endpoint
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/render", s.handleRender)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and JSON scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := s.loadScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":             sceneObj.Width,
			"height":            sceneObj.Height,
			"fov":               sceneObj.FOV,
			"shadowBias":        sceneObj.ShadowBias,
			"maxRecursionDepth": sceneObj.MaxRecursionDepth,
			"elements":          len(sceneObj.Elements),
			"lights":            len(sceneObj.Lights),
		},
		"limits": map[string]interface{}{
			"width":  map[string]int{"min": minDimension, "max": maxDimension},
			"height": map[string]int{"min": minDimension, "max": maxDimension},
			"depth":  map[string]int{"min": 0, "max": maxDepth},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", -1, 0, maxDepth); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 1, 256); err != nil {
		return nil, err
	}
	if req.Gamma, err = parseFloatParam(query, "gamma", 2.2, 0.1, 5); err != nil {
		return nil, err
	}

	return req, nil
}

// createScene builds the requested scene with the request's overrides applied
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	base, err := s.loadScene(req.Scene)
	if err != nil {
		return nil, err
	}

	overrides := scene.Overrides{Width: req.Width, Height: req.Height}
	if req.Depth >= 0 {
		overrides.MaxRecursionDepth = &req.Depth
	}

	sceneObj := base.WithOverrides(overrides)
	if err := sceneObj.Validate(); err != nil {
		return nil, err
	}
	return sceneObj, nil
}

// loadScene resolves a client-supplied scene name. JSON scenes are accepted as
// a bare file name or as the ID listed by /api/scenes, and are always read
// from the scenes directory.
func (s *Server) loadScene(name string) (*scene.Scene, error) {
	if !strings.HasSuffix(strings.ToLower(name), ".json") {
		return scene.ByName(name)
	}

	base := filepath.Base(name)
	path := filepath.Join(s.scenesDir, base)
	if name != base && filepath.Clean(name) != path {
		return nil, errSceneOutsideDir
	}

	sceneObj, err := scene.NewJSONScene(path)
	if err != nil {
		logger.Warningf("Failed to load scene %s: %v", path, err)
		return nil, fmt.Errorf("failed to load scene %q", base)
	}
	return sceneObj, nil
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

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warningf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
