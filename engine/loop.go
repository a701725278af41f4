package engine

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Run renders the opening frame and ticks at the fixed interval until the game terminates
// Cancelling ctx ends the game with CauseCanceled and a nil error
func (g *Game) Run(ctx context.Context) error {
	g.log.WithFields(logrus.Fields{
		"width":  g.board.Width,
		"height": g.board.Height,
		"tick":   g.cfg.TickInterval,
	}).Info("game started")
	defer g.logEnd()

	if err := g.render(); err != nil {
		return err
	}

	for g.state == StateRunning {
		select {
		case <-ctx.Done():
			g.terminate(CauseCanceled)
			return nil
		case <-g.clock.After(g.cfg.TickInterval):
		}

		if err := g.Tick(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) logEnd() {
	entry := g.log.WithFields(logrus.Fields{
		"score": g.Score(),
		"cause": g.cause.String(),
		"ticks": g.tick,
	})
	switch g.cause {
	case CauseInputError, CauseRenderError:
		entry.Warn("game aborted")
	default:
		entry.Info("game over")
	}
}
