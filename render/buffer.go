package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Cell is one buffered screen position
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// RenderBuffer is a fixed-size cell grid, row-major
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell; out of bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at (x, y), blank when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
	return b.cells[y*b.width+x]
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// Lines returns each row as text with trailing blanks trimmed, dropping trailing empty rows
func (b *RenderBuffer) Lines() []string {
	lines := make([]string, b.height)
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		sb.Reset()
		for x := 0; x < b.width; x++ {
			sb.WriteRune(b.cells[y*b.width+x].Rune)
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
