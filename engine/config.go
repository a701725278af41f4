package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
)

var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the fixed parameters of one game
type Config struct {
	Width  int
	Height int

	// TickInterval is the fixed sleep between ticks
	TickInterval time.Duration

	// InitialBody is head first and must lie inside the walls
	InitialBody      []core.Point
	InitialDirection core.Direction

	// Seed drives fruit placement; 0 picks a random seed
	Seed uint64
}

// DefaultConfig returns the reference 40x40 game with a two-segment snake heading east
func DefaultConfig() Config {
	return Config{
		Width:            constant.BoardWidth,
		Height:           constant.BoardHeight,
		TickInterval:     constant.TickInterval,
		InitialBody:      []core.Point{{X: 6, Y: 5}, {X: 5, Y: 5}},
		InitialDirection: core.East,
	}
}

// Validate checks board size, tick interval and the initial body
func (c Config) Validate() error {
	board, err := core.NewBoard(c.Width, c.Height)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %v", ErrInvalidConfig, c.TickInterval)
	}
	if len(c.InitialBody) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrEmptyBody)
	}

	seen := make(map[core.Point]struct{}, len(c.InitialBody))
	for i, p := range c.InitialBody {
		if !board.IsInterior(p) {
			return fmt.Errorf("%w: body cell %d at %v is not inside the walls", ErrInvalidConfig, i, p)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: body cell %d at %v overlaps the body", ErrInvalidConfig, i, p)
		}
		seen[p] = struct{}{}

		if i > 0 {
			prev := c.InitialBody[i-1]
			if abs(p.X-prev.X)+abs(p.Y-prev.Y) != 1 {
				return fmt.Errorf("%w: body cells %d and %d are not adjacent", ErrInvalidConfig, i-1, i)
			}
		}
	}

	if len(c.InitialBody) >= board.InteriorCells() {
		return fmt.Errorf("%w: initial body leaves no room for fruit", ErrInvalidConfig)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
