package game

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lox/holdemsim/poker"
)

const (
	minSeats = 2
	maxSeats = 10
)

// Engine plays a fixed-length session of hands between a set of players.
type Engine struct {
	id      string
	cfg     engineConfig
	players []Player
	state   *State
	deck    *poker.Deck
	logger  *log.Logger

	startingTotal int
}

// NewEngine creates an engine with one seat per player.
func NewEngine(players []Player, opts ...Option) (*Engine, error) {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateConfig(cfg, players); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger := cfg.logger
	if logger == nil {
		logger = discardLogger()
	}
	logger = logger.WithPrefix("engine").With("session", id[:8])

	state := NewState(len(players), cfg.startingStack)
	state.StartingSeat = cfg.startingSeat

	return &Engine{
		id:            id,
		cfg:           cfg,
		players:       players,
		state:         state,
		deck:          poker.NewDeck(cfg.rng),
		logger:        logger,
		startingTotal: state.TotalChips(),
	}, nil
}

func validateConfig(cfg engineConfig, players []Player) error {
	switch {
	case len(players) < minSeats || len(players) > maxSeats:
		return fmt.Errorf("%w: %d seats, need %d to %d", ErrInvalidConfig, len(players), minSeats, maxSeats)
	case cfg.hands <= 0:
		return fmt.Errorf("%w: hands must be positive, got %d", ErrInvalidConfig, cfg.hands)
	case cfg.startingStack <= 0:
		return fmt.Errorf("%w: starting stack must be positive, got %d", ErrInvalidConfig, cfg.startingStack)
	case cfg.smallBlind <= 0 || cfg.bigBlind <= cfg.smallBlind:
		return fmt.Errorf("%w: blinds %d/%d", ErrInvalidConfig, cfg.smallBlind, cfg.bigBlind)
	case cfg.startingSeat < 0 || cfg.startingSeat >= len(players):
		return fmt.Errorf("%w: starting seat %d out of range", ErrInvalidConfig, cfg.startingSeat)
	}
	for i, p := range players {
		if p == nil {
			return fmt.Errorf("%w: seat %d has no player", ErrInvalidConfig, i)
		}
	}
	return nil
}

// ID returns the session identifier.
func (e *Engine) ID() string {
	return e.id
}

// State returns a snapshot of the table.
func (e *Engine) State() State {
	return e.state.Snapshot()
}

// Run plays the configured number of hands. Cancellation is only checked between
// hands. The session ends early when fewer than two seats have chips.
func (e *Engine) Run(ctx context.Context) (*SessionResult, error) {
	result := &SessionResult{ID: e.id}
	e.logger.Info("session starting", "seats", e.state.Seats(), "hands", e.cfg.hands)

	for n := 1; n <= e.cfg.hands; n++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if e.seatsWithChips() < 2 {
			e.logger.Info("session ended early", "hand", n, "reason", "fewer than two seats with chips")
			break
		}

		hand, err := e.PlayHand(n)
		if err != nil {
			result.FinalStacks = e.state.Snapshot().Stacks
			return result, err
		}
		result.Hands = append(result.Hands, hand)
	}

	result.FinalStacks = e.state.Snapshot().Stacks
	e.logger.Info("session complete", "hands", len(result.Hands), "stacks", result.FinalStacks)
	return result, nil
}

func (e *Engine) seatsWithChips() int {
	n := 0
	for _, stack := range e.state.Stacks {
		if stack > 0 {
			n++
		}
	}
	return n
}

func (e *Engine) rules() Rules {
	return Rules{
		SmallBlind:    e.cfg.smallBlind,
		BigBlind:      e.cfg.bigBlind,
		InvalidAction: e.cfg.invalidAction,
	}
}

// PlayHand plays one complete hand. A betting error aborts the hand, refunds every chip
// committed during it and returns the error.
func (e *Engine) PlayHand(number int) (HandResult, error) {
	s := e.state
	logger := e.logger.With("hand", number)

	s.resetHand()
	for seat, stack := range s.Stacks {
		if stack == 0 {
			s.LastAction[seat] = Act(Fold)
		}
	}

	result := HandResult{
		Number:       number,
		StartingSeat: s.StartingSeat,
		Scores:       make([]poker.Score, s.Seats()),
	}
	contributed := make([]int, s.Seats())

	abort := func(err error) (HandResult, error) {
		for seat, c := range contributed {
			s.Stacks[seat] += c
		}
		s.Pot = 0
		s.resetHand()
		logger.Error("hand aborted", "err", err)
		return result, fmt.Errorf("hand %d: %w", number, err)
	}

	deck := e.shuffledDeck(number)
	if err := e.dealHoleCards(deck); err != nil {
		return abort(err)
	}
	result.Dealt = make([]bool, s.Seats())
	for seat, h := range s.HoleCards {
		result.Dealt[seat] = h.Dealt
	}

	for _, street := range Streets {
		if len(s.InHand()) <= 1 {
			break
		}
		s.Street = street
		board, err := deck.Deal(street.communityCards())
		if err != nil {
			return abort(err)
		}
		s.Community = append(s.Community, board...)

		sr, err := NewBettingRound(s, e.players, e.rules(), logger).Run()
		if err != nil {
			return abort(err)
		}
		for seat, c := range sr.Contributions {
			contributed[seat] += c
		}
		result.Streets = append(result.Streets, sr)
		e.cfg.observers.OnStreetEnd(number, s.Snapshot(), sr)
	}

	if err := e.showdown(&result, contributed); err != nil {
		return abort(err)
	}
	for seat, p := range result.Payouts {
		s.Stacks[seat] += p
	}
	s.Pot = 0

	if total := s.TotalChips(); total != e.startingTotal {
		return result, fmt.Errorf("hand %d: %w: have %d chips, want %d", number, ErrChipConservation, total, e.startingTotal)
	}

	result.Community = append([]poker.Card(nil), s.Community...)
	e.cfg.observers.OnHandEnd(result, s.Snapshot())

	e.rotate()
	s.resetHand()
	return result, nil
}

func (e *Engine) shuffledDeck(hand int) *poker.Deck {
	if e.cfg.deckFor != nil {
		return e.cfg.deckFor(hand)
	}
	e.deck.Shuffle()
	return e.deck
}

// dealHoleCards deals two cards to every seat still in the hand, one card per seat per
// pass, starting at the starting seat.
func (e *Engine) dealHoleCards(deck *poker.Deck) error {
	s := e.state
	for pass := range 2 {
		for i := range s.Seats() {
			seat := (s.StartingSeat + i) % s.Seats()
			if s.Folded(seat) {
				continue
			}
			card, err := deck.NextCard()
			if err != nil {
				return err
			}
			s.HoleCards[seat].Cards[pass] = card
			s.HoleCards[seat].Dealt = true
		}
	}
	return nil
}

// showdown decides the winners of the pot and fills in the result's payouts. With no
// contender left every seat gets back what it contributed.
func (e *Engine) showdown(result *HandResult, contributed []int) error {
	s := e.state
	result.Pot = s.Pot
	contenders := s.InHand()

	switch len(contenders) {
	case 0:
		result.ShowdownType = ShowdownNoContest
		for seat, h := range s.HoleCards {
			if h.Dealt {
				result.Winners = append(result.Winners, seat)
			}
		}
		result.Payouts = slices.Clone(contributed)
		return nil
	case 1:
		result.ShowdownType = ShowdownFold
		result.Winners = contenders
	default:
		result.ShowdownType = ShowdownEvaluated
		winners, err := e.evaluate(contenders, result.Scores)
		if err != nil {
			return err
		}
		result.Winners = winners
	}

	result.Payouts = splitPot(s.Pot, result.Winners, s.StartingSeat, s.Seats())
	return nil
}

func (e *Engine) evaluate(contenders []int, scores []poker.Score) ([]int, error) {
	s := e.state
	var (
		best    poker.Score
		winners []int
	)
	for _, seat := range contenders {
		hole := s.HoleCards[seat]
		if !hole.Dealt {
			return nil, fmt.Errorf("showdown for seat %d: %w", seat, ErrUnknownSeat)
		}

		cards := append([]poker.Card{hole.Cards[0], hole.Cards[1]}, s.Community...)
		score, err := poker.Evaluate(cards)
		if err != nil {
			return nil, fmt.Errorf("showdown for seat %d: %w", seat, err)
		}
		scores[seat] = score

		switch {
		case len(winners) == 0 || score > best:
			best = score
			winners = []int{seat}
		case score == best:
			winners = append(winners, seat)
		}
	}
	return winners, nil
}

// rotate moves the starting seat to the next seat that still has chips.
func (e *Engine) rotate() {
	s := e.state
	seat := s.StartingSeat
	for range s.Seats() {
		seat = s.NextSeat(seat)
		if s.Stacks[seat] > 0 {
			break
		}
	}
	s.StartingSeat = seat
}
