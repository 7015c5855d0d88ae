package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const (
	DefaultWidth  = 1600
	DefaultHeight = 900
	DefaultFOV    = 70.0
)

// NewDefaultScene creates the reference scene: a mirror sphere flanked by two diffuse
// spheres over a green ground plane, a pale back wall, and two point lights overhead
func NewDefaultScene() *Scene {
	mirror := material.NewMirror(core.RGB(1.0, 1.0, 1.0), 1.0)
	red := material.NewDiffuse(core.RGB(1.0, 0.4, 0.4), 1.0)
	blue := material.NewDiffuse(core.RGB(0.4, 0.4, 1.0), 1.0)
	ground := material.NewDiffuse(core.RGB(0.1, 0.3, 0.1), 1.0)
	wall := material.NewDiffuse(core.RGB(0.8, 0.8, 1.0), 10.0)

	return &Scene{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		FOV:    DefaultFOV,
		Elements: []geometry.Element{
			geometry.NewSphere(core.NewVec3(0.0, 0.5, -4.0), 1.0, mirror),
			geometry.NewSphere(core.NewVec3(-3.0, 2.0, -6.0), 1.5, red),
			geometry.NewSphere(core.NewVec3(1.2, 2.0, -4.0), 0.7, blue),
			geometry.NewPlane(core.NewVec3(0.0, -0.5, 0.0), core.NewVec3(0.0, -1.0, 0.0), ground),
			geometry.NewPlane(core.NewVec3(0.0, 0.0, -20.0), core.NewVec3(0.0, 0.0, -1.0), wall),
		},
		Lights: []lights.Light{
			lights.NewSphericalLight(core.NewVec3(2.0, 7.0, -5.0), core.RGB(1, 1, 1), 500),
			lights.NewSphericalLight(core.NewVec3(2.0, 7.0, 0.0), core.RGB(1, 1, 1), 500),
		},
	}
}

// NewSingleSphereScene creates one diffuse sphere lit from straight above
func NewSingleSphereScene() *Scene {
	return &Scene{
		Width:  400,
		Height: 225,
		FOV:    DefaultFOV,
		Elements: []geometry.Element{
			geometry.NewSphere(core.NewVec3(0, 0, -4), 1.0, material.NewDiffuse(core.RGB(1, 1, 1), 1.0)),
		},
		Lights: []lights.Light{
			lights.NewDirectionalLight(core.NewVec3(0, -1, 0), core.RGB(1, 1, 1), 1.0),
		},
	}
}

// NewMirrorsScene creates two parallel mirrors facing each other with a diffuse sphere
// and a point light between them. Reflections bounce until the depth limit.
func NewMirrorsScene() *Scene {
	mirror := material.NewMirror(core.RGB(1, 1, 1), 1.0)

	return &Scene{
		Width:  400,
		Height: 225,
		FOV:    DefaultFOV,
		Elements: []geometry.Element{
			// Far mirror, faces the camera
			geometry.NewPlane(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, -1), mirror),
			// Mirror behind the camera, faces the far one
			geometry.NewPlane(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, 1), mirror),
			geometry.NewSphere(core.NewVec3(0.8, 0, -5), 0.6, material.NewDiffuse(core.RGB(1.0, 0.6, 0.2), 1.0)),
		},
		Lights: []lights.Light{
			lights.NewSphericalLight(core.NewVec3(0, 3, -4), core.RGB(1, 1, 1), 300),
		},
	}
}
