package material

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSurface_EvaluateDiffuse_EnergyNormalization(t *testing.T) {
	surface := NewDiffuse(core.RGB(0.4, 0.6, 0.8), 1.0)
	white := core.RGB(1, 1, 1)

	result := surface.EvaluateDiffuse(white, 1.0)

	tolerance := 1e-12
	expected := []float64{0.4 / math.Pi, 0.6 / math.Pi, 0.8 / math.Pi}
	got := []float64{result.R(), result.G(), result.B()}
	for i := range expected {
		if math.Abs(got[i]-expected[i]) > tolerance {
			t.Errorf("Channel %d: expected %f, got %f", i, expected[i], got[i])
		}
	}
}

func TestSurface_EvaluateDiffuse_ScalesWithAlbedoAndPower(t *testing.T) {
	surface := NewDiffuse(core.RGB(1, 1, 1), 0.5)

	result := surface.EvaluateDiffuse(core.RGB(1, 0.5, 0), 2.0)

	// 2.0 * 0.5 / π per unit of light color
	k := 1.0 / math.Pi
	tolerance := 1e-12
	if math.Abs(result.R()-k) > tolerance || math.Abs(result.G()-0.5*k) > tolerance || result.B() != 0 {
		t.Errorf("Expected (%f, %f, 0), got %v", k, 0.5*k, result)
	}
}

func TestSurface_EvaluateSpecular(t *testing.T) {
	surface := NewMirror(core.RGB(1, 1, 1), 0.25)

	result := surface.EvaluateSpecular(core.RGB(1, 0.8, 0.4))

	expected := core.NewColor(0.25, 0.2, 0.1, 0.25)
	tolerance := 1e-12
	for i := 0; i < 4; i++ {
		if math.Abs(result[i]-expected[i]) > tolerance {
			t.Errorf("Expected %v, got %v", expected, result)
			break
		}
	}
}

func TestSurface_Flags(t *testing.T) {
	tests := []struct {
		name         string
		surface      Surface
		wantDiffuse  bool
		wantSpecular bool
	}{
		{"diffuse only", NewDiffuse(core.RGB(1, 1, 1), 1), true, false},
		{"mirror only", NewMirror(core.RGB(1, 1, 1), 1), false, true},
		{"both", Surface{Color: core.RGB(1, 1, 1), Diffuse: 0.5, Specular: 0.5}, true, true},
		{"neither", Surface{Color: core.RGB(1, 1, 1)}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.surface.HasDiffuse() != tt.wantDiffuse {
				t.Errorf("HasDiffuse: expected %t", tt.wantDiffuse)
			}
			if tt.surface.HasSpecular() != tt.wantSpecular {
				t.Errorf("HasSpecular: expected %t", tt.wantSpecular)
			}
		})
	}
}

func TestSurface_Validate(t *testing.T) {
	if err := NewDiffuse(core.RGB(1, 1, 1), 10).Validate(); err != nil {
		t.Errorf("Albedo above one is allowed, got %v", err)
	}
	if err := (Surface{Diffuse: -0.1}).Validate(); err != ErrNegativeWeight {
		t.Errorf("Expected ErrNegativeWeight, got %v", err)
	}
	if err := (Surface{Specular: -1}).Validate(); err != ErrNegativeWeight {
		t.Errorf("Expected ErrNegativeWeight, got %v", err)
	}
}
