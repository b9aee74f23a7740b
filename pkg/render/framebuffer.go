// Package render provides ray generation, intersection, and compositing
// for orbcast.
package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Framebuffer is the pixel buffer a render pass writes into: a
// row-major grid of RGBA pixels with origin at the top left.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets the pixel at (x, y). Out-of-range writes are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y), or transparent black when out
// of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG writes the framebuffer to a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
