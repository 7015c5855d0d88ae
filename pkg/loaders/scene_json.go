package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SceneFile is the on-disk JSON description of a scene
type SceneFile struct {
	Width    uint32        `json:"width"`
	Height   uint32        `json:"height"`
	FOV      float64       `json:"fov"`
	Elements []ElementSpec `json:"elements"`
	Lights   []LightSpec   `json:"lights"`
}

// ElementSpec describes a sphere or a plane. Fields that don't apply to the
// element type are ignored.
type ElementSpec struct {
	Type     string      `json:"type"`
	Center   [3]float64  `json:"center"`
	Radius   float64     `json:"radius"`
	Origin   [3]float64  `json:"origin"`
	Normal   [3]float64  `json:"normal"`
	Material SurfaceSpec `json:"material"`
}

// SurfaceSpec is the JSON form of material.Surface
type SurfaceSpec struct {
	Color    []float64 `json:"color"`
	Diffuse  float64   `json:"diffuse"`
	Specular float64   `json:"specular"`
}

// LightSpec describes a directional or spherical light
type LightSpec struct {
	Type      string     `json:"type"`
	Direction [3]float64 `json:"direction"`
	Position  [3]float64 `json:"position"`
	Color     []float64  `json:"color"`
	Intensity float64    `json:"intensity"`
}

// LoadScene reads and validates a JSON scene file
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// ParseScene decodes a JSON scene from reader. Plane normals and light directions
// are normalized, then the scene is validated.
func ParseScene(reader io.Reader) (*scene.Scene, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var file SceneFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return file.Build()
}

// Build converts the decoded description into a validated scene
func (f SceneFile) Build() (*scene.Scene, error) {
	if f.Width == 0 || f.Height == 0 || f.FOV == 0 {
		return nil, ErrMissingSceneFields
	}

	s := &scene.Scene{
		Width:  f.Width,
		Height: f.Height,
		FOV:    f.FOV,
	}

	for i, spec := range f.Elements {
		element, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		s.Elements = append(s.Elements, element)
	}

	for i, spec := range f.Lights {
		light, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.Lights = append(s.Lights, light)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (e ElementSpec) build() (geometry.Element, error) {
	surface, err := e.Material.build()
	if err != nil {
		return nil, err
	}

	switch geometry.ElementType(e.Type) {
	case geometry.ElementTypeSphere:
		return geometry.NewSphere(vec(e.Center), e.Radius, surface), nil
	case geometry.ElementTypePlane:
		return geometry.NewPlane(vec(e.Origin), vec(e.Normal), surface), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, e.Type)
	}
}

func (s SurfaceSpec) build() (material.Surface, error) {
	color, err := parseColor(s.Color)
	if err != nil {
		return material.Surface{}, err
	}
	return material.Surface{Color: color, Diffuse: s.Diffuse, Specular: s.Specular}, nil
}

func (l LightSpec) build() (lights.Light, error) {
	color, err := parseColor(l.Color)
	if err != nil {
		return nil, err
	}

	switch lights.LightType(l.Type) {
	case lights.LightTypeDirectional:
		return lights.NewDirectionalLight(vec(l.Direction), color, l.Intensity), nil
	case lights.LightTypeSpherical:
		return lights.NewSphericalLight(vec(l.Position), color, l.Intensity), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLight, l.Type)
	}
}

// parseColor accepts [r,g,b] (opaque) or [r,g,b,a]
func parseColor(c []float64) (core.Color, error) {
	switch len(c) {
	case 3:
		return core.RGB(c[0], c[1], c[2]), nil
	case 4:
		return core.NewColor(c[0], c[1], c[2], c[3]), nil
	default:
		return core.Black, fmt.Errorf("%w: got %d", ErrInvalidColor, len(c))
	}
}

func vec(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// SaveScene writes s back out in the JSON format read by LoadScene
func SaveScene(w io.Writer, s *scene.Scene) error {
	file := SceneFile{Width: s.Width, Height: s.Height, FOV: s.FOV}

	for _, element := range s.Elements {
		surface := element.Surface()
		spec := ElementSpec{
			Type: string(element.Type()),
			Material: SurfaceSpec{
				Color:    colorSlice(surface.Color),
				Diffuse:  surface.Diffuse,
				Specular: surface.Specular,
			},
		}
		switch e := element.(type) {
		case *geometry.Sphere:
			spec.Center = e.Center
			spec.Radius = e.Radius
		case *geometry.Plane:
			spec.Origin = e.Origin
			spec.Normal = e.Normal
		}
		file.Elements = append(file.Elements, spec)
	}

	for _, light := range s.Lights {
		spec := LightSpec{
			Type:  string(light.Type()),
			Color: colorSlice(light.Color()),
		}
		switch l := light.(type) {
		case *lights.DirectionalLight:
			spec.Direction = l.Direction
			spec.Intensity = l.Power
		case *lights.SphericalLight:
			spec.Position = l.Position
			spec.Intensity = l.Power
		}
		file.Lights = append(file.Lights, spec)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(file)
}

func colorSlice(c core.Color) []float64 {
	return []float64{c.R(), c.G(), c.B(), c.A()}
}
