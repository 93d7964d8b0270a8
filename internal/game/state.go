package game

import (
	"fmt"
	"slices"

	"github.com/lox/holdemsim/poker"
)

// Hole holds a seat's two private cards. Dealt is false until the seat receives
// cards this hand, and in views for every seat other than the viewer.
type Hole struct {
	Cards [2]poker.Card
	Dealt bool
}

// State is the shared table state for a session. Per-seat data is indexed by seat.
// Pot plus all stacks is constant for the whole session.
type State struct {
	Pot          int
	Stacks       []int
	Community    []poker.Card
	HoleCards    []Hole
	LastAction   []Action
	RequiredCall int
	Street       Street
	StartingSeat int
}

// NewState creates an empty table with every seat holding stack chips.
func NewState(seats, stack int) *State {
	s := &State{
		Stacks:     make([]int, seats),
		HoleCards:  make([]Hole, seats),
		LastAction: make([]Action, seats),
	}
	for i := range s.Stacks {
		s.Stacks[i] = stack
	}
	return s
}

// Seats returns the number of seats at the table.
func (s *State) Seats() int {
	return len(s.Stacks)
}

// TotalChips returns the chips in the pot plus every stack.
func (s *State) TotalChips() int {
	total := s.Pot
	for _, stack := range s.Stacks {
		total += stack
	}
	return total
}

// Folded reports whether the seat has folded (or sat out) this hand.
func (s *State) Folded(seat int) bool {
	return s.LastAction[seat].Kind == Fold
}

// InHand returns the seats that have not folded, in seat order.
func (s *State) InHand() []int {
	seats := make([]int, 0, s.Seats())
	for seat := range s.LastAction {
		if !s.Folded(seat) {
			seats = append(seats, seat)
		}
	}
	return seats
}

// NextSeat returns the seat after seat, wrapping around the table.
func (s *State) NextSeat(seat int) int {
	return (seat + 1) % s.Seats()
}

// resetHand clears everything that only lives for one hand.
func (s *State) resetHand() {
	s.Pot = 0
	s.Community = s.Community[:0]
	clear(s.HoleCards)
	clear(s.LastAction)
	s.RequiredCall = 0
	s.Street = Preflop
}

// Snapshot returns a deep copy of the state, hole cards included.
func (s *State) Snapshot() State {
	c := *s
	c.Stacks = slices.Clone(s.Stacks)
	c.Community = slices.Clone(s.Community)
	c.HoleCards = slices.Clone(s.HoleCards)
	c.LastAction = slices.Clone(s.LastAction)
	return c
}

// ViewFor returns the state as seen by seat: a copy with every other seat's hole cards
// removed.
func (s *State) ViewFor(seat int) (View, error) {
	if seat < 0 || seat >= s.Seats() || !s.HoleCards[seat].Dealt {
		return View{}, fmt.Errorf("view for seat %d: %w", seat, ErrUnknownSeat)
	}

	snap := s.Snapshot()
	for i := range snap.HoleCards {
		if i != seat {
			snap.HoleCards[i] = Hole{}
		}
	}
	return View{State: snap, Seat: seat}, nil
}

// View is the read-only state handed to a Player. Only the viewer's hole cards are present.
type View struct {
	State

	// Seat is the seat the view was built for.
	Seat int
	// Committed holds each seat's chips committed on the current street.
	Committed []int
	// Owed is how many chips the viewing seat must add to stay in the hand.
	Owed int
}

// Hole returns the viewing seat's hole cards.
func (v View) Hole() [2]poker.Card {
	return v.HoleCards[v.Seat].Cards
}

// Stack returns the viewing seat's stack, excluding chips committed this street.
func (v View) Stack() int {
	return v.Stacks[v.Seat] - v.Committed[v.Seat]
}
