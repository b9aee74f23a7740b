package render

import (
	"image/color"
	"testing"

	"github.com/orbcast/orbcast/pkg/math3d"
)

func TestBackgroundGradientValues(t *testing.T) {
	fb := NewFramebuffer(4, 2)
	r := NewRenderer(NewCamera(4, 2), fb)

	tests := []struct {
		name string
		dirY float64
		want color.RGBA
	}{
		// t=0: pure horizon white, 0.8*255 = 204
		{"bottom", -1, color.RGBA{204, 204, 204, 255}},
		// t=0.5: midpoint (0.45, 0.5, 0.725)*255, truncated
		{"middle", 0, color.RGBA{114, 127, 184, 255}},
		// t=1: pure zenith blue (0.1, 0.2, 0.65)*255, truncated
		{"top", 1, color.RGBA{25, 51, 165, 255}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ray := Ray{Origin: math3d.P4(0, 0, 0), Dir: math3d.D4(0, tc.dirY, -1)}
			if got := r.Background(ray); got != tc.want {
				t.Errorf("Background(dirY=%v) = %v, want %v", tc.dirY, got, tc.want)
			}
		})
	}
}

func TestBackgroundMonotonicity(t *testing.T) {
	fb := NewFramebuffer(4, 2)
	r := NewRenderer(NewCamera(4, 2), fb)

	// All three white channels exceed their blue counterparts, so each
	// must fall (or hold, under truncation) as dirY climbs from -1 to 1.
	prev := r.Background(Ray{Dir: math3d.D4(0, -1, -1)})
	for dirY := -0.9; dirY <= 1.0; dirY += 0.1 {
		cur := r.Background(Ray{Dir: math3d.D4(0, dirY, -1)})
		if cur.R > prev.R || cur.G > prev.G || cur.B > prev.B {
			t.Fatalf("gradient not monotone at dirY=%v: %v after %v", dirY, cur, prev)
		}
		prev = cur
	}
}

func TestRenderBackgroundOnly(t *testing.T) {
	const w, h = 4, 2
	fb := NewFramebuffer(w, h)
	cam := NewCamera(w, h)
	r := NewRenderer(cam, fb)

	// Sphere far outside every ray's reach: background everywhere.
	far := NewSphere(math3d.V3(0, 0, -1e6), 0.5, RGB(255, 0, 0))
	r.Render([]Primitive{far})

	// Corner and center pixels against hand-computed values.
	// dir = (x-2, 1-y, -1) for this canvas; t = 0.5*(dir.y+1).
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"top-left", 0, 0, color.RGBA{25, 51, 165, 255}},     // dir.y=1, t=1
		{"top-right", 3, 0, color.RGBA{25, 51, 165, 255}},    // dir.y=1
		{"bottom-left", 0, 1, color.RGBA{114, 127, 184, 255}}, // dir.y=0, t=0.5
		{"bottom-right", 3, 1, color.RGBA{114, 127, 184, 255}},
		{"center", 2, 1, color.RGBA{114, 127, 184, 255}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fb.GetPixel(tc.x, tc.y); got != tc.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRenderFullCoverage(t *testing.T) {
	const w, h = 16, 8
	fb := NewFramebuffer(w, h)
	r := NewRenderer(NewCamera(w, h), fb)

	// Transparent sentinel: any surviving zero-alpha pixel was skipped.
	fb.Clear(color.RGBA{})
	r.Render(nil)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if a := fb.GetPixel(x, y).A; a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}
}

func TestRenderRedSphereScenario(t *testing.T) {
	const w, h = 4, 2
	red := RGB(255, 0, 0)
	fb := NewFramebuffer(w, h)
	r := NewRenderer(NewCamera(w, h), fb)

	sphere := NewSphere(math3d.V3(0, 0, -1), 0.5, red)
	r.Render([]Primitive{sphere})

	// Only the ray through (2,1) points straight down -z into the
	// sphere; every other pixel diverges enough to miss.
	if got := fb.GetPixel(2, 1); got != red {
		t.Errorf("pixel (2,1) = %v, want flat red", got)
	}

	redCount := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if fb.GetPixel(x, y) == red {
				redCount++
			}
		}
	}
	if redCount != 1 {
		t.Errorf("red pixel count = %d, want 1", redCount)
	}

	// Corners fall back to the gradient for their own directions.
	if got := fb.GetPixel(0, 0); got != (color.RGBA{25, 51, 165, 255}) {
		t.Errorf("corner (0,0) = %v, want gradient blue", got)
	}
	if got := fb.GetPixel(3, 1); got != (color.RGBA{114, 127, 184, 255}) {
		t.Errorf("corner (3,1) = %v, want gradient mid", got)
	}
}

func TestRenderSceneOrder(t *testing.T) {
	const w, h = 4, 2
	fb := NewFramebuffer(w, h)
	r := NewRenderer(NewCamera(w, h), fb)

	green := RGB(0, 255, 0)
	red := RGB(255, 0, 0)
	prims := []Primitive{
		NewSphere(math3d.V3(0, 0, -1), 0.5, green),
		NewSphere(math3d.V3(0, 0, -1), 0.5, red),
	}
	r.Render(prims)

	// With no depth test, the first primitive in scene order wins.
	if got := fb.GetPixel(2, 1); got != green {
		t.Errorf("pixel (2,1) = %v, want first sphere's green", got)
	}
}

func BenchmarkRender(b *testing.B) {
	const w, h = 200, 100
	fb := NewFramebuffer(w, h)
	r := NewRenderer(NewCamera(w, h), fb)
	prims := []Primitive{NewSphere(math3d.V3(0, 0, -1), 0.5, RGB(255, 0, 0))}

	for b.Loop() {
		r.Render(prims)
	}
}
