package engine

import (
	"io"
	"math/rand/v2"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/input"
)

// RecordingRenderer keeps every frame it receives; Err makes Render fail
type RecordingRenderer struct {
	mu     sync.Mutex
	frames []Frame
	Err    error
}

func (r *RecordingRenderer) Render(f Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.frames = append(r.frames, f)
	return nil
}

// Frames returns a copy of the recorded frames
func (r *RecordingRenderer) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

// Last returns the most recent frame
func (r *RecordingRenderer) Last() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}

// NewTestGame creates a game with a fixed seed, a silent logger and the fruit pinned at fruit
// This is a test helper; it panics on invalid config
func NewTestGame(cfg Config, fruit core.Point, opts ...Option) (*Game, *input.Queue, *RecordingRenderer) {
	queue := input.NewQueue(16)
	rec := &RecordingRenderer{}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	base := []Option{
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithLogger(logger),
		WithID("test-game"),
	}
	g, err := NewGame(cfg, queue, rec, append(base, opts...)...)
	if err != nil {
		panic(err)
	}
	g.fruit = Fruit{Coord: fruit}
	return g, queue, rec
}

// TestConfig returns a config with the given board and body, heading dir
func TestConfig(width, height int, dir core.Direction, body ...core.Point) Config {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.InitialBody = body
	cfg.InitialDirection = dir
	return cfg
}
