package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
)

func testFrame() engine.Frame {
	board, _ := core.NewBoard(6, 5)
	return engine.Frame{
		GameID:    "g",
		Tick:      3,
		Board:     board,
		Body:      []core.Point{{X: 3, Y: 2}, {X: 2, Y: 2}},
		Direction: core.East,
		Fruit:     core.Point{X: 4, Y: 3},
		Score:     2,
		State:     engine.StateRunning,
	}
}

func TestBufferRendererDrawsGrid(t *testing.T) {
	r := NewBufferRenderer(nil)
	if err := r.Render(testFrame()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := []string{
		"######",
		"#....#",
		"#.o@.#",
		"#...*#",
		"######",
		"",
		"Score: 2",
	}
	got := r.Lines()
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d:\n%s", len(want), len(got), r.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if r.FrameCount() != 1 {
		t.Errorf("Expected 1 frame, got %d", r.FrameCount())
	}
}

func TestBufferRendererShowsEndLine(t *testing.T) {
	f := testFrame()
	f.State = engine.StateTerminated
	f.Cause = engine.CauseWall

	r := NewBufferRenderer(nil)
	r.Render(f)

	lines := r.Lines()
	last := lines[len(lines)-1]
	if last != EndLine(engine.CauseWall) {
		t.Errorf("Expected end line %q, got %q", EndLine(engine.CauseWall), last)
	}
}

func TestBufferRendererWritesToOutput(t *testing.T) {
	var sb strings.Builder
	r := NewBufferRenderer(&sb)
	r.Render(testFrame())
	r.Render(testFrame())

	if strings.Count(sb.String(), "Score: 2") != 2 {
		t.Errorf("Expected two dumped frames, got:\n%s", sb.String())
	}
}

func TestBufferRendererResizesWithBoard(t *testing.T) {
	r := NewBufferRenderer(nil)
	r.Render(testFrame())

	f := testFrame()
	f.Board, _ = core.NewBoard(10, 8)
	r.Render(f)

	if r.CellAt(9, 7) != constant.TextWall {
		t.Errorf("Expected wall at new corner, got %q", r.CellAt(9, 7))
	}
	if r.CellAt(100, 100) != ' ' {
		t.Error("Expected blank outside the buffer")
	}
}

type failingRenderer struct{ err error }

func (f failingRenderer) Render(engine.Frame) error { return f.err }

func TestMultiRendersAllAndJoinsErrors(t *testing.T) {
	a := NewBufferRenderer(nil)
	b := NewBufferRenderer(nil)
	boom := errors.New("boom")

	m := NewMulti(a, nil, failingRenderer{boom}, b)
	if len(m) != 3 {
		t.Fatalf("Expected nil renderer dropped, got %d", len(m))
	}

	err := m.Render(testFrame())
	if !errors.Is(err, boom) {
		t.Errorf("Expected joined error, got %v", err)
	}
	if a.FrameCount() != 1 || b.FrameCount() != 1 {
		t.Error("Expected every renderer to receive the frame")
	}

	if err := NewMulti(a).Render(testFrame()); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}

// MockScreen records drawing calls; unimplemented tcell.Screen methods panic
type MockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]rune
	styles        map[[2]int]tcell.Style
	fills         int
	shows         int
}

func NewMockScreen(w, h int) *MockScreen {
	return &MockScreen{
		width:  w,
		height: h,
		cells:  make(map[[2]int]rune),
		styles: make(map[[2]int]tcell.Style),
	}
}

func (m *MockScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = primary
	m.styles[[2]int{x, y}] = style
}

func (m *MockScreen) Fill(r rune, style tcell.Style) {
	m.fills++
	m.cells = make(map[[2]int]rune)
}

func (m *MockScreen) Show()            { m.shows++ }
func (m *MockScreen) Size() (int, int) { return m.width, m.height }

func TestTerminalRendererDrawsDistinctStyles(t *testing.T) {
	screen := NewMockScreen(80, 24)
	r := NewTerminalRenderer(screen)

	if err := r.Render(testFrame()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if screen.fills != 1 || screen.shows != 1 {
		t.Errorf("Expected one fill and one show, got %d/%d", screen.fills, screen.shows)
	}

	p := TerminalPalette()
	checks := map[[2]int]tcell.Style{
		{0, 0}: p.WallStyle,
		{3, 2}: p.HeadStyle,
		{2, 2}: p.BodyStyle,
		{4, 3}: p.FruitStyle,
		{1, 1}: p.EmptyStyle,
	}
	for pos, style := range checks {
		if screen.styles[pos] != style {
			t.Errorf("Cell %v: unexpected style", pos)
		}
	}

	seen := map[tcell.Style]bool{}
	for _, s := range []tcell.Style{p.WallStyle, p.HeadStyle, p.BodyStyle, p.FruitStyle} {
		seen[s] = true
	}
	if len(seen) != 4 {
		t.Error("Expected wall, head, body and fruit styles to differ")
	}

	row := StatusRow(5)
	var sb strings.Builder
	for x := 0; x < len("Score: 2"); x++ {
		sb.WriteRune(screen.cells[[2]int{x, row}])
	}
	if sb.String() != "Score: 2" {
		t.Errorf("Expected score line, got %q", sb.String())
	}
}
