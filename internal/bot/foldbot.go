package bot

import "github.com/lox/holdemsim/internal/game"

// Folder checks when it can and folds to any bet.
type Folder struct{}

func (Folder) Decide(_ game.View, legal []game.ActionKind) game.Action {
	return checkOr(game.Fold, legal)
}
