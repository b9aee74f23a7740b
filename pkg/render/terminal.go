package render

import (
	"context"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. Each terminal row carries two framebuffer rows via the ▀
// half-block glyph: foreground is the top pixel, background the bottom.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			topColor := fb.GetPixel(col, topY)
			botColor := fb.GetPixel(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(topColor),
					Bg: rgbaToColor(botColor),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// TerminalPreview displays framebuffers on a terminal at double
// vertical resolution.
type TerminalPreview struct {
	term   *uv.Terminal
	width  int // terminal columns
	height int // terminal rows
}

// NewTerminalPreview wraps a started terminal of the given cell size.
func NewTerminalPreview(term *uv.Terminal, width, height int) *TerminalPreview {
	return &TerminalPreview{term: term, width: width, height: height}
}

// FramebufferSize returns the pixel dimensions a framebuffer should
// have to fill the terminal: one column per pixel, two pixel rows per
// terminal row.
func (p *TerminalPreview) FramebufferSize() (int, int) {
	return p.width, p.height * 2
}

// Render draws the framebuffer onto the terminal's cell grid.
func (p *TerminalPreview) Render(fb *Framebuffer) {
	fb.Draw(p.term, uv.Rect(0, 0, p.width, p.height))
}

// Flush pushes pending cells to the terminal.
func (p *TerminalPreview) Flush() error {
	return p.term.Display()
}

// Close restores the terminal state.
func (p *TerminalPreview) Close() error {
	p.term.ExitAltScreen()
	p.term.ShowCursor()
	return p.term.Shutdown(context.Background())
}

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{r, g, b, a}
}
