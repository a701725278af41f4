package engine

import (
	"errors"

	"github.com/lixenwraith/term-snake/core"
)

var ErrEmptyBody = errors.New("snake body is empty")

// Snake owns the body and the heading
// Index 0 is always the head; the body is never empty
type Snake struct {
	body      []core.Point
	direction core.Direction
}

// NewSnake copies body, head first
func NewSnake(body []core.Point, dir core.Direction) (*Snake, error) {
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	b := make([]core.Point, len(body))
	copy(b, body)
	return &Snake{body: b, direction: dir}, nil
}

// Turn changes heading unless dir reverses it; reports whether the turn applied
func (s *Snake) Turn(dir core.Direction) bool {
	if dir == s.direction.Opposite() {
		return false
	}
	s.direction = dir
	return true
}

// NextHead is the cell the head moves into on the next advance
// May lie outside the board; bounds are the caller's check
func (s *Snake) NextHead() core.Point {
	dx, dy := s.direction.Delta()
	return s.body[0].Add(dx, dy)
}

// Advance plugs the next head at index 0 and chops the tail unless grow
func (s *Snake) Advance(grow bool) core.Point {
	head := s.NextHead()
	n := len(s.body)
	if grow {
		s.body = append(s.body, core.Point{})
		copy(s.body[1:], s.body[:n])
	} else {
		copy(s.body[1:], s.body[:n-1])
	}
	s.body[0] = head
	return head
}

// Occupies reports whether p is a body cell
// excludeTail skips the last cell, which a non-growing move vacates in the same tick
func (s *Snake) Occupies(p core.Point, excludeTail bool) bool {
	cells := s.body
	if excludeTail {
		cells = cells[:len(cells)-1]
	}
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}

func (s *Snake) Head() core.Point {
	return s.body[0]
}

func (s *Snake) Tail() core.Point {
	return s.body[len(s.body)-1]
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Body returns a copy, head first
func (s *Snake) Body() []core.Point {
	b := make([]core.Point, len(s.body))
	copy(b, s.body)
	return b
}
