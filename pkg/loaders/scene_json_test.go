package loaders

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const simpleSceneJSON = `{
  "width": 320,
  "height": 180,
  "fov": 60,
  "elements": [
    {"type": "sphere", "center": [0, 0, -4], "radius": 1,
     "material": {"color": [1, 0.5, 0.25], "diffuse": 0.8}},
    {"type": "plane", "origin": [0, -1, 0], "normal": [0, -2, 0],
     "material": {"color": [0.2, 0.2, 0.2, 0.5], "diffuse": 0.5, "specular": 0.3}}
  ],
  "lights": [
    {"type": "directional", "direction": [0, -3, -4], "color": [1, 1, 1], "intensity": 2},
    {"type": "spherical", "position": [2, 5, -3], "color": [1, 0.9, 0.8], "intensity": 400}
  ]
}`

func TestParseScene(t *testing.T) {
	s, err := ParseScene(strings.NewReader(simpleSceneJSON))
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}

	if s.Width != 320 || s.Height != 180 || s.FOV != 60 {
		t.Errorf("Unexpected frame %dx%d fov %v", s.Width, s.Height, s.FOV)
	}
	if len(s.Elements) != 2 || len(s.Lights) != 2 {
		t.Fatalf("Expected 2 elements and 2 lights, got %d and %d", len(s.Elements), len(s.Lights))
	}

	sphere, ok := s.Elements[0].(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected first element to be a sphere, got %T", s.Elements[0])
	}
	if sphere.Radius != 1 || sphere.Material.Diffuse != 0.8 {
		t.Errorf("Unexpected sphere %+v", sphere)
	}
	if sphere.Material.Color.A() != 1 {
		t.Errorf("Expected three-component color to be opaque, got alpha %v", sphere.Material.Color.A())
	}

	plane, ok := s.Elements[1].(*geometry.Plane)
	if !ok {
		t.Fatalf("Expected second element to be a plane, got %T", s.Elements[1])
	}
	if math.Abs(plane.Normal.Len()-1) > 1e-12 || plane.Normal.Y() != -1 {
		t.Errorf("Expected normalized plane normal, got %v", plane.Normal)
	}
	if plane.Material.Color.A() != 0.5 || plane.Material.Specular != 0.3 {
		t.Errorf("Unexpected plane surface %+v", plane.Material)
	}

	dl, ok := s.Lights[0].(*lights.DirectionalLight)
	if !ok {
		t.Fatalf("Expected first light to be directional, got %T", s.Lights[0])
	}
	if math.Abs(dl.Direction.Y()+0.6) > 1e-12 || math.Abs(dl.Direction.Z()+0.8) > 1e-12 {
		t.Errorf("Expected normalized direction (0,-0.6,-0.8), got %v", dl.Direction)
	}

	if _, ok := s.Lights[1].(*lights.SphericalLight); !ok {
		t.Errorf("Expected second light to be spherical, got %T", s.Lights[1])
	}
}

func TestParseScene_Errors(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected error
	}{
		{
			name:     "unknown element",
			json:     `{"width": 4, "height": 2, "fov": 90, "elements": [{"type": "cube", "material": {"color": [1,1,1]}}]}`,
			expected: ErrUnknownElement,
		},
		{
			name:     "unknown light",
			json:     `{"width": 4, "height": 2, "fov": 90, "lights": [{"type": "area", "color": [1,1,1]}]}`,
			expected: ErrUnknownLight,
		},
		{
			name:     "short color",
			json:     `{"width": 4, "height": 2, "fov": 90, "lights": [{"type": "spherical", "color": [1,1]}]}`,
			expected: ErrInvalidColor,
		},
		{
			name:     "missing frame",
			json:     `{"fov": 90}`,
			expected: ErrMissingSceneFields,
		},
		{
			name:     "portrait frame",
			json:     `{"width": 2, "height": 4, "fov": 90}`,
			expected: scene.ErrAspectRatio,
		},
		{
			name:     "zero plane normal",
			json:     `{"width": 4, "height": 2, "fov": 90, "elements": [{"type": "plane", "normal": [0,0,0], "material": {"color": [1,1,1]}}]}`,
			expected: scene.ErrNotUnitLength,
		},
		{
			name:     "negative weight",
			json:     `{"width": 4, "height": 2, "fov": 90, "elements": [{"type": "sphere", "radius": 1, "material": {"color": [1,1,1], "diffuse": -1}}]}`,
			expected: material.ErrNegativeWeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene(strings.NewReader(tt.json))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestParseScene_RejectsUnknownFields(t *testing.T) {
	_, err := ParseScene(strings.NewReader(`{"width": 4, "height": 2, "fov": 90, "samples": 16}`))
	if err == nil {
		t.Error("Expected unknown field to be rejected")
	}
}

func TestSaveScene_RoundTrip(t *testing.T) {
	original := scene.NewDefaultScene()

	var buf bytes.Buffer
	if err := SaveScene(&buf, original); err != nil {
		t.Fatalf("SaveScene failed: %v", err)
	}

	loaded, err := ParseScene(&buf)
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}

	if loaded.Width != original.Width || loaded.Height != original.Height || loaded.FOV != original.FOV {
		t.Errorf("Frame mismatch: %dx%d fov %v", loaded.Width, loaded.Height, loaded.FOV)
	}
	if len(loaded.Elements) != len(original.Elements) || len(loaded.Lights) != len(original.Lights) {
		t.Fatalf("Expected %d elements and %d lights, got %d and %d",
			len(original.Elements), len(original.Lights), len(loaded.Elements), len(loaded.Lights))
	}
	for i := range original.Elements {
		if original.Elements[i].Type() != loaded.Elements[i].Type() {
			t.Errorf("Element %d: expected %s, got %s", i, original.Elements[i].Type(), loaded.Elements[i].Type())
		}
		if original.Elements[i].Surface() != loaded.Elements[i].Surface() {
			t.Errorf("Element %d: surface mismatch", i)
		}
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simple.json")
	if err := os.WriteFile(path, []byte(simpleSceneJSON), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	s, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}
	if s.GetPrimitiveCount() != 2 {
		t.Errorf("Expected 2 elements, got %d", s.GetPrimitiveCount())
	}

	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

// TestLoadScene_SceneDirectory makes sure the scenes shipped with the repo stay loadable
func TestLoadScene_SceneDirectory(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "scenes", "*.json"))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			if _, err := LoadScene(file); err != nil {
				t.Errorf("LoadScene failed: %v", err)
			}
		})
	}
}
