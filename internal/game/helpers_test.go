package game

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/lox/holdemsim/poker"
	"github.com/stretchr/testify/require"
)

// scriptedPlayer answers from a script, then checks or calls.
type scriptedPlayer struct {
	script []Action
	views  []View
}

func script(actions ...Action) *scriptedPlayer {
	return &scriptedPlayer{script: actions}
}

func (p *scriptedPlayer) Decide(view View, legal []ActionKind) Action {
	p.views = append(p.views, view)
	if len(p.script) > 0 {
		a := p.script[0]
		p.script = p.script[1:]
		return a
	}
	return passive(legal)
}

func (p *scriptedPlayer) prompts() int {
	return len(p.views)
}

func passive(legal []ActionKind) Action {
	if slices.Contains(legal, Check) {
		return Act(Check)
	}
	return Act(Call)
}

var (
	callingStation = PlayerFunc(func(_ View, legal []ActionKind) Action { return passive(legal) })
	folder         = PlayerFunc(func(_ View, legal []ActionKind) Action {
		if slices.Contains(legal, Check) {
			return Act(Check)
		}
		return Act(Fold)
	})
)

func randomPlayer(rng *rand.Rand) Player {
	return PlayerFunc(func(view View, legal []ActionKind) Action {
		kind := legal[rng.IntN(len(legal))]
		if kind == Raise {
			return RaiseBy(1 + rng.IntN(10))
		}
		return Act(kind)
	})
}

// dealtState returns a state with the given stacks and hole cards dealt to every seat.
func dealtState(t *testing.T, stacks ...int) *State {
	t.Helper()

	s := NewState(len(stacks), 0)
	copy(s.Stacks, stacks)

	deck := poker.NewDeck(nil)
	for seat := range stacks {
		cards, err := deck.Deal(2)
		require.NoError(t, err)
		s.HoleCards[seat] = Hole{Cards: [2]poker.Card{cards[0], cards[1]}, Dealt: true}
	}
	return s
}

func players(ps ...Player) []Player {
	return ps
}

// stackedDeck makes every hand deal from a deck with cards on top.
func stackedDeck(t *testing.T, cards string) Option {
	t.Helper()
	top := poker.MustParseCards(cards)
	return func(c *engineConfig) {
		c.deckFor = func(int) *poker.Deck {
			d, err := poker.NewStackedDeck(top...)
			require.NoError(t, err)
			return d
		}
	}
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
