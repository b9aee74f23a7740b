package render

import (
	"image/color"

	"github.com/orbcast/orbcast/pkg/math3d"
)

// Background gradient endpoints, as linear RGB in [0,1].
var (
	// DefaultHorizonColor is the near-white at the bottom of the frame
	// (ray direction y = -1).
	DefaultHorizonColor = math3d.V3(0.8, 0.8, 0.8)
	// DefaultZenithColor is the blue at the top (ray direction y = +1).
	DefaultZenithColor = math3d.V3(0.1, 0.2, 0.65)
)

// Renderer casts one ray per framebuffer pixel and composites the first
// primitive hit, or the background gradient, into the pixel buffer.
type Renderer struct {
	camera *Camera
	fb     *Framebuffer

	// Gradient endpoints; substitutable per scene.
	HorizonColor math3d.Vec3
	ZenithColor  math3d.Vec3
}

// NewRenderer creates a renderer for the given camera and framebuffer
// with the default background gradient.
func NewRenderer(camera *Camera, fb *Framebuffer) *Renderer {
	return &Renderer{
		camera:       camera,
		fb:           fb,
		HorizonColor: DefaultHorizonColor,
		ZenithColor:  DefaultZenithColor,
	}
}

// Render fills every framebuffer pixel exactly once, in row-major
// order. Each pixel's color depends only on its own ray, the fixed
// camera transform, and the scene; there is no cross-pixel state.
func (r *Renderer) Render(prims []Primitive) {
	for y := 0; y < r.fb.Height; y++ {
		for x := 0; x < r.fb.Width; x++ {
			ray := r.camera.RayThrough(x, y)
			r.fb.SetPixel(x, y, r.shade(ray, prims))
		}
	}
}

// shade asks each primitive in scene order; the first hit wins.
func (r *Renderer) shade(ray Ray, prims []Primitive) color.RGBA {
	for _, p := range prims {
		if c, ok := p.Shade(ray); ok {
			return c
		}
	}
	return r.Background(ray)
}

// Background computes the miss color: a vertical lerp from the horizon
// color to the zenith color driven by the ray direction's y component,
// remapped from [-1,1] to [0,1]. The remap is not clamped, so steep
// directions extrapolate past the endpoints; channels are truncated,
// not rounded, on the way to 8 bits. Alpha is always opaque.
func (r *Renderer) Background(ray Ray) color.RGBA {
	t := 0.5 * (ray.Dir.Y + 1.0)
	c := r.HorizonColor.Lerp(r.ZenithColor, t).Scale(255)
	return color.RGBA{uint8(c.X), uint8(c.Y), uint8(c.Z), 255}
}
