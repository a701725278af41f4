package render

import (
	"errors"

	"github.com/lixenwraith/term-snake/engine"
)

// Renderer consumes one frame per tick
type Renderer = engine.Renderer

// Multi fans a frame out to several renderers in order
// Every renderer sees the frame; the errors are joined
type Multi []Renderer

// NewMulti drops nil entries
func NewMulti(rs ...Renderer) Multi {
	m := make(Multi, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

func (m Multi) Render(f engine.Frame) error {
	var errs []error
	for _, r := range m {
		if err := r.Render(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
