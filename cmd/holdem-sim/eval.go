package main

import (
	"fmt"

	"github.com/lox/holdemsim/poker"
)

type EvalCmd struct {
	Hands []string `arg:"" help:"Hands of 5 to 7 cards, e.g. 'AsKsQsJsTs' or '7c7d 2h3s4d9c9h'"`
}

func (c *EvalCmd) Run() error {
	results, err := evaluateHands(c.Hands)
	if err != nil {
		return err
	}
	for _, line := range results {
		fmt.Println(line)
	}
	return nil
}

// evaluateHands scores each hand and marks the strongest with a star.
func evaluateHands(hands []string) ([]string, error) {
	scores := make([]poker.Score, len(hands))
	var best poker.Score
	for i, h := range hands {
		cards, err := poker.ParseCards(h)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		score, err := poker.Evaluate(cards)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		scores[i] = score
		best = max(best, score)
	}

	lines := make([]string, len(hands))
	for i, h := range hands {
		mark := " "
		if scores[i] == best {
			mark = "*"
		}
		lines[i] = fmt.Sprintf("%s %-22s %-16s %d", mark, h, scores[i].Category(), uint32(scores[i]))
	}
	return lines, nil
}
