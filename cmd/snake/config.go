package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/input"
)

var errInvalidFlags = errors.New("invalid flags")

// appConfig is everything main needs to wire one game
type appConfig struct {
	Game     engine.Config
	Sound    bool
	Spectate string
	Headless bool
	Debug    bool
	LogDir   string
	Keys     *input.KeyTable
}

func newCommand(run func(ctx context.Context, cfg appConfig) error) *cli.Command {
	return &cli.Command{
		Name:  "snake",
		Usage: "steer a growing snake around a walled board",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "width",
				Usage:   "board width including walls",
				Value:   constant.BoardWidth,
				Sources: cli.EnvVars("SNAKE_WIDTH"),
			},
			&cli.IntFlag{
				Name:    "height",
				Usage:   "board height including walls",
				Value:   constant.BoardHeight,
				Sources: cli.EnvVars("SNAKE_HEIGHT"),
			},
			&cli.DurationFlag{
				Name:    "tick",
				Usage:   "time between simulation steps",
				Value:   constant.TickInterval,
				Sources: cli.EnvVars("SNAKE_TICK"),
			},
			&cli.IntFlag{
				Name:    "seed",
				Usage:   "fruit placement seed, 0 for random",
				Sources: cli.EnvVars("SNAKE_SEED"),
			},
			&cli.BoolFlag{
				Name:    "sound",
				Usage:   "play a chime on fruit and a buzz on collision",
				Sources: cli.EnvVars("SNAKE_SOUND"),
			},
			&cli.StringFlag{
				Name:    "spectate",
				Usage:   "serve a websocket spectator feed on `ADDR`",
				Sources: cli.EnvVars("SNAKE_SPECTATE"),
			},
			&cli.BoolFlag{
				Name:    "headless",
				Usage:   "print frames as text instead of opening the terminal screen",
				Sources: cli.EnvVars("SNAKE_HEADLESS"),
			},
			&cli.StringFlag{
				Name:    "keys",
				Usage:   "TOML key bindings `FILE` merged over w/a/s/d and q",
				Sources: cli.EnvVars("SNAKE_KEYS"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "write a debug log",
				Sources: cli.EnvVars("SNAKE_DEBUG"),
			},
			&cli.StringFlag{
				Name:    "log-dir",
				Usage:   "directory for the debug log",
				Value:   defaultLogDir,
				Sources: cli.EnvVars("SNAKE_LOG_DIR"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := configFromCommand(cmd)
			if err != nil {
				return err
			}
			return run(ctx, cfg)
		},
	}
}

// configFromCommand builds and validates the game config from parsed flags
func configFromCommand(cmd *cli.Command) (appConfig, error) {
	seed := int64(cmd.Int("seed"))
	if seed < 0 {
		return appConfig{}, fmt.Errorf("%w: seed must not be negative, got %d", errInvalidFlags, seed)
	}

	game := engine.DefaultConfig()
	game.Width = int(cmd.Int("width"))
	game.Height = int(cmd.Int("height"))
	game.TickInterval = cmd.Duration("tick")
	game.Seed = uint64(seed)
	fitInitialBody(&game)
	if err := game.Validate(); err != nil {
		return appConfig{}, err
	}

	keys := input.DefaultKeyTable()
	if path := cmd.String("keys"); path != "" {
		var err error
		if keys, err = input.LoadKeyConfigFile(path); err != nil {
			return appConfig{}, err
		}
	}

	return appConfig{
		Game:     game,
		Sound:    cmd.Bool("sound"),
		Spectate: cmd.String("spectate"),
		Headless: cmd.Bool("headless"),
		Debug:    cmd.Bool("debug"),
		LogDir:   cmd.String("log-dir"),
		Keys:     keys,
	}, nil
}

// fitInitialBody centers the two-segment snake on boards too small for the default start
func fitInitialBody(c *engine.Config) {
	minX, minY, maxX, maxY := 1, 1, c.Width-2, c.Height-2
	for _, p := range c.InitialBody {
		if p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY {
			cx, cy := c.Width/2, c.Height/2
			c.InitialBody = []core.Point{{X: cx, Y: cy}, {X: cx - 1, Y: cy}}
			return
		}
	}
}

// tickWarning flags intervals outside the comfortable range
func tickWarning(d time.Duration) bool {
	return d < 50*time.Millisecond || d > 500*time.Millisecond
}
