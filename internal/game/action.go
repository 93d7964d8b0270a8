package game

import (
	"fmt"
	"slices"
)

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// Streets lists the streets of a hand in play order.
var Streets = [...]Street{Preflop, Flop, Turn, River}

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return fmt.Sprintf("street(%d)", int(s))
	}
}

// communityCards is the number of board cards dealt before the street's betting.
func (s Street) communityCards() int {
	switch s {
	case Flop:
		return 3
	case Turn, River:
		return 1
	default:
		return 0
	}
}

// ActionKind is the kind of a player action. The zero value means the seat has not
// acted yet this hand.
type ActionKind uint8

const (
	NoAction ActionKind = iota
	Fold
	Check
	Call
	Raise
)

func (k ActionKind) String() string {
	switch k {
	case NoAction:
		return "none"
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	default:
		return fmt.Sprintf("action(%d)", uint8(k))
	}
}

// Action is a player decision. Amount is only meaningful for Raise, where it is the
// increase over the current required call.
type Action struct {
	Kind   ActionKind
	Amount int
}

// Act returns an action of the given kind with no amount.
func Act(kind ActionKind) Action {
	return Action{Kind: kind}
}

// RaiseBy returns a raise of amount chips over the required call.
func RaiseBy(amount int) Action {
	return Action{Kind: Raise, Amount: amount}
}

// IsZero reports whether no action has been recorded.
func (a Action) IsZero() bool {
	return a.Kind == NoAction
}

func (a Action) String() string {
	if a.Kind == Raise {
		return fmt.Sprintf("raise %d", a.Amount)
	}
	return a.Kind.String()
}

// LegalActions returns the action kinds available to a seat that owes the given number
// of chips to stay in the hand.
func LegalActions(owed int) []ActionKind {
	if owed > 0 {
		return []ActionKind{Fold, Call, Raise}
	}
	return []ActionKind{Check, Raise}
}

// normalize validates a against the legal set and strips amounts from non-raises.
func normalize(a Action, legal []ActionKind) (Action, bool) {
	if !slices.Contains(legal, a.Kind) {
		return a, false
	}
	if a.Kind == Raise {
		return a, a.Amount > 0
	}
	return Act(a.Kind), true
}
