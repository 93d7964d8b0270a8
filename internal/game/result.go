package game

import (
	"strings"

	"github.com/lox/holdemsim/poker"
)

// ShowdownType records how a hand was decided.
type ShowdownType string

const (
	// ShowdownEvaluated means the remaining seats' hands were scored.
	ShowdownEvaluated ShowdownType = "showdown"
	// ShowdownFold means every other seat folded.
	ShowdownFold ShowdownType = "fold"
	// ShowdownNoContest means nobody was left in the hand and every seat got back what
	// it contributed.
	ShowdownNoContest ShowdownType = "no_contest"
)

// HandResult describes one completed hand.
type HandResult struct {
	Number       int
	StartingSeat int
	// Dealt marks the seats that received hole cards. Seats sitting out are false.
	Dealt []bool
	Pot   int
	// Winners holds the seats sharing the pot, in seat order.
	Winners []int
	// Payouts holds the chips each seat received from the pot.
	Payouts []int
	// Scores holds each evaluated seat's score. Zero for seats that were not evaluated.
	Scores       []poker.Score
	ShowdownType ShowdownType
	Community    []poker.Card
	Streets      []StreetResult
}

// Net returns the seat's chips won minus chips committed during the hand.
func (r HandResult) Net(seat int) int {
	net := r.Payouts[seat]
	for _, st := range r.Streets {
		net -= st.Contributions[seat]
	}
	return net
}

// SessionResult describes a completed session.
type SessionResult struct {
	ID          string
	Hands       []HandResult
	FinalStacks []int
}

func formatCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
