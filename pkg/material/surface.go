package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Surface holds the Whitted shading parameters of an element. Diffuse and Specular
// are independent non-negative weights; they are not required to sum to one.
type Surface struct {
	Color    core.Color
	Diffuse  float64 // Lambertian albedo, 0 disables the diffuse term
	Specular float64 // Mirror weight, 0 disables the reflection ray
}

// NewDiffuse creates a purely diffuse surface
func NewDiffuse(color core.Color, albedo float64) Surface {
	return Surface{Color: color, Diffuse: albedo}
}

// NewMirror creates a purely specular surface
func NewMirror(color core.Color, reflectivity float64) Surface {
	return Surface{Color: color, Specular: reflectivity}
}

// HasDiffuse reports whether the diffuse term should be evaluated
func (s Surface) HasDiffuse() bool {
	return s.Diffuse > 0
}

// HasSpecular reports whether a reflection ray should be fired
func (s Surface) HasSpecular() bool {
	return s.Specular > 0
}

// EvaluateDiffuse returns the light reflected by a Lambertian surface receiving
// lightPower (cosine term times incident intensity) from a light of lightColor.
// The BRDF is albedo/π.
func (s Surface) EvaluateDiffuse(lightColor core.Color, lightPower float64) core.Color {
	return s.Color.MultiplyColor(lightColor).Scale(lightPower * s.Diffuse / math.Pi)
}

// EvaluateSpecular weights the color gathered along the reflection ray
func (s Surface) EvaluateSpecular(reflected core.Color) core.Color {
	return reflected.Scale(s.Specular)
}

// Validate checks that both weights are non-negative
func (s Surface) Validate() error {
	if s.Diffuse < 0 || s.Specular < 0 || math.IsNaN(s.Diffuse) || math.IsNaN(s.Specular) {
		return ErrNegativeWeight
	}
	return nil
}
