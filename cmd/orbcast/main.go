// orbcast - analytic sphere raycaster
// Casts one ray per pixel from a pinhole camera into a scene of
// spheres and writes the result as a PNG, or previews it live in the
// terminal.
//
// Usage:
//
//	orbcast [options] [scene.json]
//
// Without a scene file the built-in demo scene is rendered: a red
// sphere straight ahead over a white-to-blue gradient.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/orbcast/orbcast/pkg/render"
	"github.com/orbcast/orbcast/pkg/scene"
)

var (
	outPath   = flag.String("o", "render.png", "Output PNG path")
	width     = flag.Int("width", 400, "Canvas width in pixels (overridden by a scene file)")
	height    = flag.Int("height", 200, "Canvas height in pixels (overridden by a scene file)")
	preview   = flag.Bool("preview", false, "Show the scene in the terminal instead of writing a PNG")
	targetFPS = flag.Int("fps", 30, "Preview frame rate")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "orbcast - analytic sphere raycaster\n\n")
		fmt.Fprintf(os.Stderr, "Usage: orbcast [options] [scene.json]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nPreview controls:\n")
		fmt.Fprintf(os.Stderr, "  Esc/q       - Quit\n")
	}
	flag.Parse()

	cfg := scene.Default()
	cfg.Width = *width
	cfg.Height = *height
	if flag.NArg() > 0 {
		var err error
		cfg, err = scene.Load(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *scene.Config) error {
	if *preview {
		return runPreview(cfg)
	}

	r, fb, prims := cfg.Build()

	start := time.Now()
	r.Render(prims)
	elapsed := time.Since(start)

	if err := fb.SavePNG(*outPath); err != nil {
		return fmt.Errorf("save %s: %w", *outPath, err)
	}
	fmt.Fprintf(os.Stderr, "rendered %dx%d (%d rays) in %s -> %s\n",
		fb.Width, fb.Height, fb.Width*fb.Height, elapsed, *outPath)
	return nil
}

// bobAxis animates a vertical offset with a spring that chases
// alternating targets, so the preview sphere floats up and down.
type bobAxis struct {
	pos, vel float64
	target   float64
	spring   harmonica.Spring
}

func newBobAxis(fps int) *bobAxis {
	return &bobAxis{
		target: 0.35,
		// Low frequency, underdamped: a soft bounce at each turn
		spring: harmonica.NewSpring(harmonica.FPS(fps), 1.5, 0.3),
	}
}

// Update advances the spring one frame and returns the current offset.
func (b *bobAxis) Update() float64 {
	b.pos, b.vel = b.spring.Update(b.pos, b.vel, b.target)
	if math.Abs(b.pos-b.target) < 0.02 && math.Abs(b.vel) < 0.05 {
		b.target = -b.target
	}
	return b.pos
}

// firstSphere returns the first sphere in the primitive list, or nil.
func firstSphere(prims []render.Primitive) *render.Sphere {
	for _, p := range prims {
		if s, ok := p.(*render.Sphere); ok {
			return s
		}
	}
	return nil
}

func runPreview(cfg *scene.Config) error {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	tp := render.NewTerminalPreview(term, cols, rows)

	// Re-size the scene to the terminal's pixel grid.
	fbW, fbH := tp.FramebufferSize()
	cfg.Width, cfg.Height = fbW, fbH
	r, fb, prims := cfg.Build()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				cols, rows = ev.Width, ev.Height
				term.Erase()
				term.Resize(cols, rows)
				tp = render.NewTerminalPreview(term, cols, rows)
				fbW, fbH = tp.FramebufferSize()
				cfg.Width, cfg.Height = fbW, fbH
				r, fb, prims = cfg.Build()

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("q"), ev.MatchString("ctrl+c"):
					cancel()
					return
				}
			}
		}
	}()

	// The first sphere bobs; its configured height anchors the spring.
	bob := newBobAxis(*targetFPS)
	var restY float64
	if len(cfg.Spheres) > 0 {
		restY = cfg.Spheres[0].Center[1]
	}

	targetDuration := time.Second / time.Duration(*targetFPS)

	for {
		select {
		case <-ctx.Done():
			return tp.Close()
		default:
		}

		frameStart := time.Now()

		// Looked up per frame: resize events swap the primitive list.
		if s := firstSphere(prims); s != nil {
			s.Center.Y = restY + bob.Update()
		}

		r.Render(prims)
		tp.Render(fb)
		if err := tp.Flush(); err != nil {
			_ = tp.Close()
			return fmt.Errorf("flush: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
