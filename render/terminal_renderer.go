package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/engine"
)

// Display is the tcell screen surface the terminal renderer needs
type Display interface {
	Screen
	Fill(r rune, style tcell.Style)
	Show()
}

// TerminalRenderer draws frames onto a tcell screen
type TerminalRenderer struct {
	screen  Display
	palette Palette
}

// NewTerminalRenderer creates a renderer drawing with TerminalPalette
func NewTerminalRenderer(screen Display) *TerminalRenderer {
	return &TerminalRenderer{
		screen:  screen,
		palette: TerminalPalette(),
	}
}

// Render redraws the whole board; tcell flushes only changed cells on Show
func (r *TerminalRenderer) Render(f engine.Frame) error {
	r.screen.Fill(' ', r.palette.EmptyStyle)
	DrawFrame(r.screen, f, r.palette)
	r.screen.Show()
	return nil
}

// SetPalette replaces the glyphs and styles used for subsequent frames
func (r *TerminalRenderer) SetPalette(p Palette) {
	r.palette = p
}
