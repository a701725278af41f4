package core

import (
	"errors"
	"fmt"
)

// MinBoardSize is the smallest side length that still leaves an interior cell
const MinBoardSize = 3

var ErrBoardTooSmall = errors.New("board too small")

// Board is the fixed play field; the outer ring of cells is wall
type Board struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Top    int `json:"top"`
	Left   int `json:"left"`
}

// NewBoard creates a board anchored at (0,0)
func NewBoard(width, height int) (Board, error) {
	if width < MinBoardSize || height < MinBoardSize {
		return Board{}, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrBoardTooSmall, width, height, MinBoardSize, MinBoardSize)
	}
	return Board{Width: width, Height: height}, nil
}

// Right is the x of the right wall column
func (b Board) Right() int {
	return b.Width - 1
}

// Bottom is the y of the bottom wall row
func (b Board) Bottom() int {
	return b.Height - 1
}

// IsWall reports whether (x, y) lies on the outer ring; no other cell is a wall
func (b Board) IsWall(x, y int) bool {
	return x == b.Left || x == b.Right() || y == b.Top || y == b.Bottom()
}

// Contains reports whether p is on the grid at all, wall included
func (b Board) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right() && p.Y >= b.Top && p.Y <= b.Bottom()
}

// IsInterior reports whether p is on the grid and not a wall cell
func (b Board) IsInterior(p Point) bool {
	return b.Contains(p) && !b.IsWall(p.X, p.Y)
}

// Interior returns the inclusive bounds of the non-wall cells
func (b Board) Interior() (minX, minY, maxX, maxY int) {
	return b.Left + 1, b.Top + 1, b.Right() - 1, b.Bottom() - 1
}

// InteriorCells returns the number of non-wall cells
func (b Board) InteriorCells() int {
	minX, minY, maxX, maxY := b.Interior()
	return (maxX - minX + 1) * (maxY - minY + 1)
}
