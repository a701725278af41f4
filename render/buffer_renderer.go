package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lixenwraith/term-snake/engine"
)

// statusWidth leaves room for the end line on narrow boards
const statusWidth = 40

// BufferRenderer draws frames into an in-memory text grid
// Used headless and in tests; optionally dumps each frame to a writer
type BufferRenderer struct {
	mu      sync.Mutex
	buf     *RenderBuffer
	screen  *BufferScreen
	palette Palette
	out     io.Writer
	frames  int
}

// NewBufferRenderer creates a headless renderer; out may be nil
func NewBufferRenderer(out io.Writer) *BufferRenderer {
	buf := NewRenderBuffer(0, 0)
	return &BufferRenderer{
		buf:     buf,
		screen:  NewBufferScreen(buf),
		palette: TextPalette(),
		out:     out,
	}
}

func (r *BufferRenderer) Render(f engine.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := max(f.Board.Width, statusWidth)
	h := StatusRow(f.Board.Height) + 2
	if bw, bh := r.buf.Bounds(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}

	DrawFrame(r.screen, f, r.palette)
	r.frames++

	if r.out == nil {
		return nil
	}
	if _, err := fmt.Fprintf(r.out, "%s\n\n", r.string()); err != nil {
		return fmt.Errorf("write frame %d: %w", f.Tick, err)
	}
	return nil
}

// Lines returns the last drawn frame row by row
func (r *BufferRenderer) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Lines()
}

// String returns the last drawn frame as text
func (r *BufferRenderer) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.string()
}

func (r *BufferRenderer) string() string {
	return strings.Join(r.buf.Lines(), "\n")
}

// FrameCount returns how many frames were drawn
func (r *BufferRenderer) FrameCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// CellAt returns the glyph drawn at (x, y) in the last frame
func (r *BufferRenderer) CellAt(x, y int) rune {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Get(x, y).Rune
}
