package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/engine"
)

// Screen is the subset of tcell.Screen a frame is drawn onto
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// StatusRow is the row of the score line below a board of the given height
func StatusRow(boardHeight int) int {
	return boardHeight + constant.StatusLineGap
}

// DrawFrame paints walls, empty cells, fruit and snake, then the score and end lines
// Cells outside the screen are clipped by the screen
func DrawFrame(s Screen, f engine.Frame, p Palette) {
	b := f.Board
	for y := b.Top; y <= b.Bottom(); y++ {
		for x := b.Left; x <= b.Right(); x++ {
			if b.IsWall(x, y) {
				s.SetContent(x, y, p.Wall, nil, p.WallStyle)
			} else {
				s.SetContent(x, y, p.Empty, nil, p.EmptyStyle)
			}
		}
	}

	s.SetContent(f.Fruit.X, f.Fruit.Y, p.Fruit, nil, p.FruitStyle)

	// Tail to head so the head wins if a collision frame overlaps
	for i := len(f.Body) - 1; i >= 0; i-- {
		c := f.Body[i]
		if i == 0 {
			s.SetContent(c.X, c.Y, p.Head, nil, p.HeadStyle)
		} else {
			s.SetContent(c.X, c.Y, p.Body, nil, p.BodyStyle)
		}
	}

	row := StatusRow(b.Height)
	drawText(s, b.Left, row, ScoreLine(f), p.TextStyle)
	if f.State == engine.StateTerminated {
		drawText(s, b.Left, row+1, EndLine(f.Cause), p.EndStyle)
	}
}

// ScoreLine is the text shown under the board
func ScoreLine(f engine.Frame) string {
	return fmt.Sprintf("Score: %d", f.Score)
}

// EndLine describes how the game ended
func EndLine(c engine.Cause) string {
	switch c {
	case engine.CauseWall:
		return "Game over: hit the wall"
	case engine.CauseSelf:
		return "Game over: ran into yourself"
	case engine.CauseBoardFull:
		return "Game over: board full, you win"
	case engine.CauseQuit:
		return "Game over: quit"
	default:
		return "Game over: " + c.String()
	}
}

func drawText(s Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
