package bot

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/holdemsim/internal/game"
)

// Deadline wraps a player with a decision timeout. When the wrapped player does not
// answer in time the seat checks if it can and folds otherwise. The late answer is
// discarded, and the wrapped player is not asked again until it has returned, so it
// never runs twice at once.
type Deadline struct {
	player  game.Player
	timeout time.Duration
	clock   quartz.Clock
	logger  *log.Logger

	// pending carries the answer of a call that timed out and may still be running.
	pending chan game.Action
}

// WithDeadline wraps p with a decision timeout measured on clock. A non-positive
// timeout returns p unchanged.
func WithDeadline(p game.Player, timeout time.Duration, clock quartz.Clock, logger *log.Logger) game.Player {
	if timeout <= 0 {
		return p
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Deadline{player: p, timeout: timeout, clock: clock, logger: logger}
}

// Decide must not be called concurrently, which holds for a seat inside one engine.
func (d *Deadline) Decide(view game.View, legal []game.ActionKind) game.Action {
	expired := make(chan struct{})
	timer := d.clock.AfterFunc(d.timeout, func() {
		close(expired)
	})
	defer timer.Stop()

	if d.pending != nil {
		select {
		case <-d.pending:
			d.pending = nil
		case <-expired:
			return d.fallback(view, legal, "previous decision still running")
		}
	}

	answer := make(chan game.Action, 1)
	go func() {
		answer <- d.player.Decide(view, legal)
	}()

	select {
	case action := <-answer:
		return action
	case <-expired:
		d.pending = answer
		return d.fallback(view, legal, "decision timed out")
	}
}

func (d *Deadline) fallback(view game.View, legal []game.ActionKind, reason string) game.Action {
	action := checkOr(game.Fold, legal)
	d.logger.Warn(reason, "seat", view.Seat, "street", view.Street, "timeout", d.timeout, "action", action)
	return action
}
