// Package bot provides baseline players for the game engine.
package bot

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/lox/holdemsim/internal/game"
)

// DefaultMaxRaise bounds the raises of players created by New.
const DefaultMaxRaise = 10

var strategies = map[string]func(rng *rand.Rand) game.Player{
	"call":   func(*rand.Rand) game.Player { return CallingStation{} },
	"fold":   func(*rand.Rand) game.Player { return Folder{} },
	"random": func(rng *rand.Rand) game.Player { return NewRandom(rng, DefaultMaxRaise) },
}

// Strategies returns the names accepted by New, sorted.
func Strategies() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New creates a player by strategy name. rng is only used by randomised strategies.
func New(strategy string, rng *rand.Rand) (game.Player, error) {
	ctor, ok := strategies[strings.ToLower(strategy)]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (want one of %s)", strategy, strings.Join(Strategies(), ", "))
	}
	return ctor(rng), nil
}
