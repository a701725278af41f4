package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/status"
)

var (
	ErrInputFailure  = errors.New("input failure")
	ErrRenderFailure = errors.New("render failure")
)

// IntentSource is the consumer side of the input hand-off
// TryRecv must never block
type IntentSource interface {
	TryRecv() (input.Intent, bool)
}

// Game is the simulation state machine
// Board, Snake and Fruit are owned by the goroutine calling Tick or Run
type Game struct {
	id    string
	cfg   Config
	board core.Board
	snake *Snake
	fruit Fruit

	state State
	cause Cause
	tick  uint64
	grew  bool

	intents  IntentSource
	renderer Renderer
	rng      *rand.Rand
	clock    Clock
	log      logrus.FieldLogger

	// Telemetry
	statTicks   *atomic.Int64
	statEaten   *atomic.Int64
	statScore   *atomic.Int64
	statRunning *atomic.Bool
	statCause   *status.AtomicString
}

// Option customizes a Game at construction
type Option func(*Game)

// WithRand fixes the fruit placement source
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithClock replaces the wall clock used by Run
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithLogger sets the logger; the game adds its own game_id field
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Game) { g.log = l }
}

// WithRegistry publishes telemetry into reg
func WithRegistry(reg *status.Registry) Option {
	return func(g *Game) { g.bindStatus(reg) }
}

// WithID overrides the generated game ID
func WithID(id string) Option {
	return func(g *Game) { g.id = id }
}

// NewGame builds the board, the initial snake and the first fruit
func NewGame(cfg Config, intents IntentSource, r Renderer, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if intents == nil || r == nil {
		return nil, fmt.Errorf("%w: intent source and renderer are required", ErrInvalidConfig)
	}

	board, err := core.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	snake, err := NewSnake(cfg.InitialBody, cfg.InitialDirection)
	if err != nil {
		return nil, err
	}

	g := &Game{
		id:       uuid.NewString(),
		cfg:      cfg,
		board:    board,
		snake:    snake,
		state:    StateRunning,
		intents:  intents,
		renderer: r,
		clock:    SystemClock{},
		log:      logrus.StandardLogger(),
	}
	g.bindStatus(status.NewRegistry())

	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	g.log = g.log.WithField("game_id", g.id)

	fruit, ok := SpawnFruit(board, g.rng, snake.body)
	if !ok {
		return nil, fmt.Errorf("%w: no free cell for the first fruit", ErrInvalidConfig)
	}
	g.fruit = fruit

	g.statRunning.Store(true)
	g.statScore.Store(int64(snake.Len()))
	g.statCause.Store(CauseNone.String())
	return g, nil
}

func (g *Game) bindStatus(reg *status.Registry) {
	g.statTicks = reg.Ints.Get("engine.ticks")
	g.statEaten = reg.Ints.Get("engine.fruit_eaten")
	g.statScore = reg.Ints.Get("engine.score")
	g.statRunning = reg.Bools.Get("engine.running")
	g.statCause = reg.Strings.Get("engine.cause")
}

// Tick runs one simulation step: input, move, collisions, growth, score, render
// Collisions end the game without an error; input and render failures return one
func (g *Game) Tick() error {
	if g.state == StateTerminated {
		return nil
	}

	g.tick++
	g.statTicks.Add(1)
	g.grew = false

	// At most one intent per tick; the rest wait for later ticks
	if it, ok := g.intents.TryRecv(); ok {
		switch it.Type {
		case input.IntentQuit:
			g.terminate(CauseQuit)
			return nil
		case input.IntentFail:
			g.terminate(CauseInputError)
			return fmt.Errorf("%w: %w", ErrInputFailure, it.Err)
		case input.IntentTurn:
			g.snake.Turn(it.Direction)
		}
	}

	next := g.snake.NextHead()
	grow := next == g.fruit.Coord

	switch {
	case g.snake.Occupies(next, !grow):
		g.terminate(CauseSelf)
	case !g.board.Contains(next) || g.board.IsWall(next.X, next.Y):
		g.terminate(CauseWall)
	default:
		g.snake.Advance(grow)
		if grow {
			g.grew = true
			g.statEaten.Add(1)
			fruit, ok := SpawnFruit(g.board, g.rng, g.snake.body)
			if ok {
				g.fruit = fruit
			} else {
				g.terminate(CauseBoardFull)
			}
		}
	}

	g.statScore.Store(int64(g.Score()))
	return g.render()
}

func (g *Game) render() error {
	if err := g.renderer.Render(g.Frame()); err != nil {
		g.terminate(CauseRenderError)
		return fmt.Errorf("%w: %w", ErrRenderFailure, err)
	}
	return nil
}

// terminate keeps the first cause when called more than once
func (g *Game) terminate(c Cause) {
	if g.state == StateTerminated {
		return
	}
	g.state = StateTerminated
	g.cause = c
	g.statRunning.Store(false)
	g.statCause.Store(c.String())
}

// Frame snapshots the current state
func (g *Game) Frame() Frame {
	return Frame{
		GameID:    g.id,
		Tick:      g.tick,
		Board:     g.board,
		Body:      g.snake.Body(),
		Direction: g.snake.Direction(),
		Fruit:     g.fruit.Coord,
		Score:     g.Score(),
		State:     g.state,
		Cause:     g.cause,
		Grew:      g.grew,
	}
}

func (g *Game) ID() string { return g.id }
func (g *Game) State() State { return g.state }
func (g *Game) Cause() Cause { return g.cause }
func (g *Game) Board() core.Board { return g.board }
func (g *Game) Snake() *Snake { return g.snake }
func (g *Game) Fruit() Fruit { return g.fruit }
func (g *Game) TickCount() uint64 { return g.tick }
func (g *Game) Config() Config { return g.cfg }

// Score is the current body length
func (g *Game) Score() int {
	return g.snake.Len()
}
