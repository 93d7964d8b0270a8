package bot

import (
	"slices"

	"github.com/lox/holdemsim/internal/game"
)

// CallingStation checks when it can and calls everything else. It never raises or folds.
type CallingStation struct{}

func (CallingStation) Decide(_ game.View, legal []game.ActionKind) game.Action {
	return checkOr(game.Call, legal)
}

// checkOr checks if legal, otherwise answers fallback.
func checkOr(fallback game.ActionKind, legal []game.ActionKind) game.Action {
	if slices.Contains(legal, game.Check) {
		return game.Act(game.Check)
	}
	return game.Act(fallback)
}
