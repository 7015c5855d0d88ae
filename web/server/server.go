package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Frame and worker limits accepted from clients
const (
	minFrameSize = 16
	maxFrameSize = 4096
	maxWorkers   = 64

	// maxSceneBytes bounds the size of a POSTed scene description
	maxSceneBytes = 1 << 20
)

// Server exposes the ray tracer over HTTP
type Server struct {
	port     int
	sceneDir string
	logger   log.Logger
	renders  atomic.Int64
}

// NewServer creates a new web server. JSON scenes are looked up in sceneDir.
func NewServer(port int, sceneDir string) *Server {
	return &Server{
		port:     port,
		sceneDir: sceneDir,
		logger:   log.New("web"),
	}
}

// Handler returns the routes served by Start
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene", s.handleSceneDescription)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Noticef("starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and JSON scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.sceneDir)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleSceneDescription returns a scene in the JSON format accepted by POST /api/render
func (s *Server) handleSceneDescription(w http.ResponseWriter, r *http.Request) {
	sceneObj, err := s.resolveScene(r.URL.Query())
	if err != nil {
		s.writeError(w, statusForError(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := loaders.SaveScene(w, sceneObj); err != nil {
		s.logger.Errorf("failed to encode scene: %v", err)
	}
}

// resolveScene loads the scene named by the "scene" query parameter
func (s *Server) resolveScene(values url.Values) (*scene.Scene, error) {
	ref := values.Get("scene")
	if ref == "" {
		ref = "default"
	}
	// File paths are not accepted from clients; only IDs
	if strings.ContainsAny(ref, `/\`) || strings.HasSuffix(strings.ToLower(ref), ".json") {
		return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, ref)
	}
	return loaders.ResolveScene(ref, s.sceneDir)
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
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func statusForError(err error) int {
	if errors.Is(err, scene.ErrUnknownScene) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Warningf("request failed (%d): %v", status, err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
