package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ElementType  string                 `json:"elementType,omitempty"`
	ElementIndex int                    `json:"elementIndex"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [4]float64             `json:"color"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// extractSurfaceInfo describes the shading parameters of a surface
func extractSurfaceInfo(surface material.Surface) map[string]interface{} {
	c := renderer.ToRGBA(surface.Color)
	return map[string]interface{}{
		"color":    fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
		"diffuse":  surface.Diffuse,
		"specular": surface.Specular,
	}
}

// extractElementInfo adds the geometric parameters of the element
func extractElementInfo(element geometry.Element, properties map[string]interface{}) {
	switch e := element.(type) {
	case *geometry.Sphere:
		properties["center"] = [3]float64(e.Center)
		properties["radius"] = e.Radius
	case *geometry.Plane:
		properties["origin"] = [3]float64(e.Origin)
		properties["normal"] = [3]float64(e.Normal)
	}
}

// inspectPixel casts the primary ray of pixel (x, y) and reports the nearest hit
// along with the color the tracer assigns to the pixel
func inspectPixel(sceneObj *scene.Scene, x, y uint32) InspectResponse {
	ray := renderer.PrimeRay(x, y, sceneObj)
	response := InspectResponse{
		ElementIndex: -1,
		Color:        [4]float64(renderer.CastRay(sceneObj, ray, 0)),
	}

	hit, ok := sceneObj.Trace(ray)
	if !ok {
		return response
	}

	point := ray.At(hit.Distance)
	normal := hit.Element.SurfaceNormal(point)

	response.Hit = true
	response.ElementType = string(hit.Element.Type())
	response.ElementIndex = hit.Index
	response.Point = [3]float64(point)
	response.Normal = [3]float64(normal)
	response.Distance = hit.Distance
	response.Properties = extractSurfaceInfo(hit.Element.Surface())
	extractElementInfo(hit.Element, response.Properties)
	return response
}

// handleInspect reports what the primary ray of a pixel hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sceneObj, err := s.resolveScene(query)
	if err != nil {
		s.writeError(w, statusForError(err), err)
		return
	}
	if err := applyFrameOverrides(sceneObj, query); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	x, err := parseIntParam(query, "x", 0, 0, int(sceneObj.Width)-1)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	y, err := parseIntParam(query, "y", 0, 0, int(sceneObj.Height)-1)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, uint32(x), uint32(y)))
}
