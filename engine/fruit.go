package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/term-snake/core"
)

// Fruit is the single active food cell, always strictly inside the walls
type Fruit struct {
	Coord core.Point `json:"coord"`
}

// SpawnFruit picks an interior cell uniformly at random among those not in occupied
// With no occupied cells every interior cell is a candidate
// Returns false when the interior has no free cell
func SpawnFruit(b core.Board, rng *rand.Rand, occupied []core.Point) (Fruit, bool) {
	minX, minY, maxX, maxY := b.Interior()
	cols := maxX - minX + 1

	if len(occupied) == 0 {
		return Fruit{Coord: core.Point{
			X: minX + rng.IntN(cols),
			Y: minY + rng.IntN(maxY-minY+1),
		}}, true
	}

	taken := make(map[core.Point]struct{}, len(occupied))
	for _, p := range occupied {
		if b.IsInterior(p) {
			taken[p] = struct{}{}
		}
	}

	free := b.InteriorCells() - len(taken)
	if free <= 0 {
		return Fruit{}, false
	}

	// k-th free cell in row-major order keeps the choice uniform without retry loops
	k := rng.IntN(free)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := core.Point{X: x, Y: y}
			if _, ok := taken[p]; ok {
				continue
			}
			if k == 0 {
				return Fruit{Coord: p}, true
			}
			k--
		}
	}
	return Fruit{}, false
}
