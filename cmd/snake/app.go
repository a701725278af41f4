package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/network"
	"github.com/lixenwraith/term-snake/render"
	"github.com/lixenwraith/term-snake/status"
	"github.com/lixenwraith/term-snake/terminal"
)

// scoreLines is the room the score and end lines need under the board
const scoreLines = 3

// runGame assembles the collaborators for one game and plays it to the end
// Only setup failures are returned; a game that ends on an I/O failure still restores the terminal and exits cleanly
func runGame(ctx context.Context, cfg appConfig, logger *logrus.Logger) error {
	log := logrus.FieldLogger(logger)
	if tickWarning(cfg.Game.TickInterval) {
		log.WithField("tick", cfg.Game.TickInterval).Warn("tick interval outside the playable range")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reg := status.NewRegistry()
	queue := input.NewQueue(0)

	var (
		source    input.KeySource
		renderers []render.Renderer
		release   = func() {}
	)

	if cfg.Headless {
		renderers = append(renderers, render.NewBufferRenderer(os.Stdout))
		source = input.NewReaderSource(os.Stdin)
	} else {
		if err := terminal.Preflight(cfg.Game.Width, cfg.Game.Height+scoreLines); err != nil {
			return err
		}
		ctrl := terminal.NewController(nil)
		core.SetCrashHandler(func() { terminal.EmergencyReset(os.Stdout) })
		if err := ctrl.Init(); err != nil {
			terminal.EmergencyReset(os.Stdout)
			return err
		}
		defer ctrl.Fini()
		release = ctrl.Fini

		renderers = append(renderers, render.NewTerminalRenderer(ctrl.Screen()))
		source = ctrl
	}

	if cfg.Sound {
		sink := audio.NewSpeakerSink()
		if err := sink.Initialize(); err != nil {
			log.WithError(err).Warn("continuing without audio")
		} else {
			defer sink.Close()
			renderers = append(renderers, audio.NewCuePlayer(sink))
		}
	}

	if cfg.Spectate != "" {
		hub := network.NewHub(log)
		core.Go(func() { hub.Run(ctx) })
		srv := network.NewServer(hub, reg, log)
		if err := srv.Start(ctx, cfg.Spectate); err != nil {
			return err
		}
		renderers = append(renderers, hub)
	}

	game, err := engine.NewGame(cfg.Game, queue, render.NewMulti(renderers...),
		engine.WithLogger(log),
		engine.WithRegistry(reg),
	)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	poller := input.NewPoller(source, queue, 0, log)
	if cfg.Keys != nil {
		poller.SetKeyTable(cfg.Keys)
	}
	poller.Start(ctx)

	if err := game.Run(ctx); err != nil {
		log.WithError(err).Error("game ended on failure")
	}

	// Closing the screen wakes a poll in progress
	cancel()
	release()
	<-poller.Done()
	return nil
}
