package game

import (
	"fmt"
	"strings"
)

// Player decides actions for one seat. Decide receives a copy of the table in which
// only the player's own hole cards are visible and must answer with one of legal.
type Player interface {
	Decide(view View, legal []ActionKind) Action
}

// PlayerFunc adapts an ordinary function to the Player interface.
type PlayerFunc func(view View, legal []ActionKind) Action

// Decide calls f(view, legal).
func (f PlayerFunc) Decide(view View, legal []ActionKind) Action {
	return f(view, legal)
}

// InvalidActionPolicy decides what happens when a player answers outside the legal set.
type InvalidActionPolicy uint8

const (
	// FoldOnInvalid treats an invalid answer as a fold.
	FoldOnInvalid InvalidActionPolicy = iota
	// RepromptOnInvalid asks again a bounded number of times, then folds.
	RepromptOnInvalid
	// AbortOnInvalid aborts the hand with ErrInvalidAction.
	AbortOnInvalid
)

func (p InvalidActionPolicy) String() string {
	switch p {
	case FoldOnInvalid:
		return "fold"
	case RepromptOnInvalid:
		return "reprompt"
	case AbortOnInvalid:
		return "abort"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// ParseInvalidActionPolicy parses "fold", "reprompt" or "abort". The empty string is fold.
func ParseInvalidActionPolicy(s string) (InvalidActionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fold":
		return FoldOnInvalid, nil
	case "reprompt":
		return RepromptOnInvalid, nil
	case "abort":
		return AbortOnInvalid, nil
	default:
		return 0, fmt.Errorf("unknown invalid action policy %q", s)
	}
}
