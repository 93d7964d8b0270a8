package bot

import (
	"math/rand/v2"

	"github.com/lox/holdemsim/internal/game"
)

// Random picks uniformly from the legal actions. Raises are between 1 and maxRaise chips.
// A Random is not safe for concurrent use since it shares its rng.
type Random struct {
	rng      *rand.Rand
	maxRaise int
}

// NewRandom creates a random player. A nil rng uses the process-level source.
func NewRandom(rng *rand.Rand, maxRaise int) *Random {
	return &Random{rng: rng, maxRaise: max(1, maxRaise)}
}

func (r *Random) Decide(_ game.View, legal []game.ActionKind) game.Action {
	kind := legal[r.intN(len(legal))]
	if kind == game.Raise {
		return game.RaiseBy(1 + r.intN(r.maxRaise))
	}
	return game.Act(kind)
}

func (r *Random) intN(n int) int {
	if r.rng == nil {
		return rand.IntN(n)
	}
	return r.rng.IntN(n)
}
