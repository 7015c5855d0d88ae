package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PixelSink receives the final color of each pixel exactly once
type PixelSink interface {
	PutPixel(x, y uint32, c core.Color)
}

// ImageSink writes pixels into an 8-bit RGBA image
type ImageSink struct {
	Image *image.RGBA
}

// NewImageSink allocates an image of the given size
func NewImageSink(width, height uint32) *ImageSink {
	return &ImageSink{Image: image.NewRGBA(image.Rect(0, 0, int(width), int(height)))}
}

// PutPixel implements PixelSink
func (is *ImageSink) PutPixel(x, y uint32, c core.Color) {
	is.Image.SetRGBA(int(x), int(y), ToRGBA(c))
}

// ToRGBA converts a float color to 8 bits per channel by truncation. The output is
// always opaque since alpha is not meaningful to the tracer.
func ToRGBA(c core.Color) color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		R: uint8(c.R() * 255),
		G: uint8(c.G() * 255),
		B: uint8(c.B() * 255),
		A: 255,
	}
}

// ColorSink keeps the float colors produced by the tracer, row-major
type ColorSink struct {
	Width  uint32
	Height uint32
	Pixels []core.Color
}

// NewColorSink allocates a float buffer of the given size
func NewColorSink(width, height uint32) *ColorSink {
	return &ColorSink{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, int(width)*int(height)),
	}
}

// PutPixel implements PixelSink
func (cs *ColorSink) PutPixel(x, y uint32, c core.Color) {
	cs.Pixels[int(y)*int(cs.Width)+int(x)] = c
}

// At returns the color stored for pixel (x, y)
func (cs *ColorSink) At(x, y uint32) core.Color {
	return cs.Pixels[int(y)*int(cs.Width)+int(x)]
}

// ToImage converts the buffer to an 8-bit image
func (cs *ColorSink) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(cs.Width), int(cs.Height)))
	for y := uint32(0); y < cs.Height; y++ {
		for x := uint32(0); x < cs.Width; x++ {
			img.SetRGBA(int(x), int(y), ToRGBA(cs.At(x, y)))
		}
	}
	return img
}
