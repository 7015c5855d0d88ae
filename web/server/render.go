package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest holds the parameters of a render call
type RenderRequest struct {
	Scene   *scene.Scene
	Workers int
	Format  loaders.ImageFormat
}

// handleRender renders a frame and returns the encoded image.
// GET renders a scene by ID; POST renders the JSON scene in the body.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		s.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, statusForError(err), err)
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renders.Add(1))
	webLogger := NewWebLogger(renderID, s.logger)

	rt, err := renderer.NewRenderer(req.Scene, renderer.Options{Workers: req.Workers}, webLogger)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	sink := renderer.NewImageSink(req.Scene.Width, req.Scene.Height)
	stats, err := rt.Render(sink)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	// Encode before writing headers so an encoder failure can still be reported
	var buf bytes.Buffer
	if err := loaders.EncodeImage(&buf, req.Format, sink.Image); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.RenderTime.Milliseconds(), 10))
	w.Header().Set("X-Render-Rays", strconv.FormatInt(stats.Rays.Total(), 10))
	if messages, err := json.Marshal(webLogger.Messages()); err == nil {
		w.Header().Set("X-Render-Log", string(messages))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, &buf); err != nil {
		s.logger.Warningf("[%s] failed to write response: %v", renderID, err)
	}
}

// parseRenderRequest builds a render request from the query string and, for POST,
// the JSON scene body
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{}

	var err error
	if req.Workers, err = parseIntParam(query, "workers", 1, 1, maxWorkers); err != nil {
		return nil, err
	}

	formatName := query.Get("format")
	if formatName == "" {
		formatName = string(loaders.FormatPNG)
	}
	if req.Format, err = loaders.ParseFormat(formatName); err != nil {
		return nil, err
	}

	if r.Method == http.MethodPost {
		if req.Scene, err = loaders.ParseScene(io.LimitReader(r.Body, maxSceneBytes)); err != nil {
			return nil, err
		}
		if err := checkFrameSize(req.Scene); err != nil {
			return nil, err
		}
		return req, nil
	}

	if req.Scene, err = s.resolveScene(query); err != nil {
		return nil, err
	}
	if err := applyFrameOverrides(req.Scene, query); err != nil {
		return nil, err
	}
	return req, nil
}

// applyFrameOverrides replaces the frame size and field of view when given
func applyFrameOverrides(sc *scene.Scene, query url.Values) error {
	width, err := parseIntParam(query, "width", int(sc.Width), minFrameSize, maxFrameSize)
	if err != nil {
		return err
	}
	height, err := parseIntParam(query, "height", int(sc.Height), minFrameSize, maxFrameSize)
	if err != nil {
		return err
	}
	fov, err := parseFloatParam(query, "fov", sc.FOV, 1, 179)
	if err != nil {
		return err
	}

	sc.Width, sc.Height, sc.FOV = uint32(width), uint32(height), fov
	return sc.Validate()
}

// checkFrameSize holds posted scenes to the same frame bounds as the query parameters
func checkFrameSize(sc *scene.Scene) error {
	for _, dim := range []struct {
		name  string
		value uint32
	}{{"width", sc.Width}, {"height", sc.Height}} {
		if dim.value < minFrameSize || dim.value > maxFrameSize {
			return fmt.Errorf("%s must be between %d and %d, got: %d", dim.name, minFrameSize, maxFrameSize, dim.value)
		}
	}
	return nil
}
