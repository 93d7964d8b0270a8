package game

import (
	"github.com/charmbracelet/log"
)

// Observer receives results as a session progresses. Observers are called synchronously
// from the engine's goroutine and must not retain the slices they are given.
type Observer interface {
	OnStreetEnd(hand int, state State, result StreetResult)
	OnHandEnd(result HandResult, state State)
}

// Observers fans out to every observer in order.
type Observers []Observer

func (os Observers) OnStreetEnd(hand int, state State, result StreetResult) {
	for _, o := range os {
		o.OnStreetEnd(hand, state, result)
	}
}

func (os Observers) OnHandEnd(result HandResult, state State) {
	for _, o := range os {
		o.OnHandEnd(result, state)
	}
}

// LogObserver writes street summaries at debug level and hand summaries at info level.
type LogObserver struct {
	Logger *log.Logger
}

func (o LogObserver) OnStreetEnd(hand int, state State, result StreetResult) {
	o.Logger.Debug("street complete",
		"hand", hand,
		"street", result.Street,
		"board", formatCards(state.Community),
		"pot", state.Pot,
		"actions", result.Actions,
		"raises", result.Raises)
}

func (o LogObserver) OnHandEnd(result HandResult, state State) {
	o.Logger.Info("hand complete",
		"hand", result.Number,
		"showdown", result.ShowdownType,
		"pot", result.Pot,
		"winners", result.Winners,
		"board", formatCards(result.Community),
		"stacks", state.Stacks)
}
