package game

import "errors"

var (
	// ErrInvalidAction is returned when a player answers with an action outside the legal set
	// and the invalid action policy is AbortOnInvalid.
	ErrInvalidAction = errors.New("invalid action")

	// ErrStackUnderflow is returned when a seat has committed more chips than its stack holds.
	ErrStackUnderflow = errors.New("commitment exceeds stack")

	// ErrUnknownSeat is returned for lookups on a seat that does not exist or was never dealt in.
	ErrUnknownSeat = errors.New("unknown seat")

	// ErrChipConservation is returned when chips were created or destroyed during a hand.
	ErrChipConservation = errors.New("chip conservation violation")

	// ErrInvalidConfig is returned by NewEngine for unusable session parameters.
	ErrInvalidConfig = errors.New("invalid engine config")
)
