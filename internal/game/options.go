package game

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/poker"
)

// Option configures an Engine during creation.
type Option func(*engineConfig)

type engineConfig struct {
	startingStack int
	hands         int
	smallBlind    int
	bigBlind      int
	startingSeat  int
	rng           *rand.Rand
	logger        *log.Logger
	observers     Observers
	invalidAction InvalidActionPolicy

	// deckFor replaces the shuffled deck for a hand. Only set by tests.
	deckFor func(hand int) *poker.Deck
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		startingStack: 200,
		hands:         5,
		smallBlind:    1,
		bigBlind:      2,
	}
}

// WithStartingStack sets every seat's stack at the start of the session.
func WithStartingStack(chips int) Option {
	return func(c *engineConfig) {
		c.startingStack = chips
	}
}

// WithHands sets how many hands the session plays.
func WithHands(n int) Option {
	return func(c *engineConfig) {
		c.hands = n
	}
}

// WithBlinds sets the small and big blind.
func WithBlinds(small, big int) Option {
	return func(c *engineConfig) {
		c.smallBlind = small
		c.bigBlind = big
	}
}

// WithStartingSeat sets the seat that posts the small blind on the first hand.
func WithStartingSeat(seat int) Option {
	return func(c *engineConfig) {
		c.startingSeat = seat
	}
}

// WithRNG injects the shuffle source. Sessions with equal sources and deterministic
// players are identical.
func WithRNG(rng *rand.Rand) Option {
	return func(c *engineConfig) {
		c.rng = rng
	}
}

// WithLogger sets the logger used by the engine and its betting rounds.
func WithLogger(logger *log.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithObserver registers an observer for street and hand results. It can be given
// more than once.
func WithObserver(o Observer) Option {
	return func(c *engineConfig) {
		c.observers = append(c.observers, o)
	}
}

// WithInvalidActionPolicy sets how invalid player answers are handled.
func WithInvalidActionPolicy(p InvalidActionPolicy) Option {
	return func(c *engineConfig) {
		c.invalidAction = p
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}
