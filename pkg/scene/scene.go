// Package scene loads JSON scene descriptions and builds render types
// from them.
package scene

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/orbcast/orbcast/pkg/math3d"
	"github.com/orbcast/orbcast/pkg/render"
)

// BackgroundCfg overrides the gradient endpoints, as linear RGB in [0,1].
type BackgroundCfg struct {
	Bottom [3]float64 `json:"bottom"` // at ray direction y = -1
	Top    [3]float64 `json:"top"`    // at ray direction y = +1
}

// SphereCfg describes one sphere.
type SphereCfg struct {
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
	Color  [4]uint8   `json:"color"`
}

// Config is a complete scene description.
type Config struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Background *BackgroundCfg `json:"background,omitempty"`
	Spheres    []SphereCfg    `json:"spheres"`
}

// Default returns the built-in demo scene: a red sphere dead ahead on a
// 2:1 canvas.
func Default() *Config {
	return &Config{
		Width:  400,
		Height: 200,
		Spheres: []SphereCfg{
			{Center: [3]float64{0, 0, -1}, Radius: 0.5, Color: [4]uint8{255, 0, 0, 255}},
		},
	}
}

// Load reads and validates a scene file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate rejects degenerate inputs up front. The render path itself
// performs no checks and would let non-finite coordinates propagate
// into the pixels, so the loader is where bad scenes fail.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	for i, s := range c.Spheres {
		if s.Radius <= 0 {
			return fmt.Errorf("sphere %d: radius must be > 0, got %g", i, s.Radius)
		}
	}
	return nil
}

// Build constructs the renderer, its framebuffer, and the primitive
// list for this scene.
func (c *Config) Build() (*render.Renderer, *render.Framebuffer, []render.Primitive) {
	fb := render.NewFramebuffer(c.Width, c.Height)
	r := render.NewRenderer(render.NewCamera(c.Width, c.Height), fb)

	if bg := c.Background; bg != nil {
		r.HorizonColor = math3d.V3(bg.Bottom[0], bg.Bottom[1], bg.Bottom[2])
		r.ZenithColor = math3d.V3(bg.Top[0], bg.Top[1], bg.Top[2])
	}

	prims := make([]render.Primitive, 0, len(c.Spheres))
	for _, s := range c.Spheres {
		prims = append(prims, render.NewSphere(
			math3d.V3(s.Center[0], s.Center[1], s.Center[2]),
			s.Radius,
			color.RGBA{s.Color[0], s.Color[1], s.Color[2], s.Color[3]},
		))
	}
	return r, fb, prims
}
