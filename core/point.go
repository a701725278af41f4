package core

import "fmt"

// Point is a grid coordinate
// Signed so a step past the left or top edge stays representable as -1
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p shifted by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
