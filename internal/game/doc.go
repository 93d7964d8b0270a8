// Package game implements multi-hand Texas Hold'em sessions between automated players.
//
// The Engine owns a State and a deck, deals each hand, runs one BettingRound per street
// and settles the pot at showdown. Players only ever see a View: a copy of the State in
// which every other seat's hole cards are hidden.
//
// # Basic Usage
//
//	players := []game.Player{bot.CallingStation{}, bot.NewRandom(rng, 10)}
//	engine, err := game.NewEngine(players,
//	    game.WithHands(100),
//	    game.WithRNG(randutil.New(42)),
//	    game.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	result, err := engine.Run(ctx)
//
// # Accounting
//
// Chips committed during a street stay in the stacks until the round settles, then move
// to the pot in one step. Pot plus stacks is checked after every hand and a mismatch is
// reported as ErrChipConservation. A hand aborted by a betting error refunds every chip
// it took.
//
// Side pots are not modelled: a seat that is all-in for less still shares the whole pot
// equally with the other winners.
package game
