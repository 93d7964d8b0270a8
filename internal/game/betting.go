package game

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// maxReprompts bounds how many answers a seat gets under RepromptOnInvalid.
const maxReprompts = 3

// Rules holds the per-session parameters a betting round needs.
type Rules struct {
	SmallBlind    int
	BigBlind      int
	InvalidAction InvalidActionPolicy
}

// StreetResult summarises one completed betting round.
type StreetResult struct {
	Street Street
	// Contributions holds the chips each seat moved into the pot on this street.
	Contributions []int
	Actions       int
	Raises        int
}

// BettingRound drives one street of sequential action to completion. Chips committed
// during the round stay in the stacks until settlement.
type BettingRound struct {
	state   *State
	players []Player
	rules   Rules
	logger  *log.Logger

	committed     []int
	lastAggressor int
	actions       int
	raises        int
}

// NewBettingRound creates a betting round for the state's current street.
func NewBettingRound(state *State, players []Player, rules Rules, logger *log.Logger) *BettingRound {
	if len(players) != state.Seats() {
		panic("player count does not match seat count")
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &BettingRound{
		state:     state,
		players:   players,
		rules:     rules,
		logger:    logger.With("street", state.Street),
		committed: make([]int, state.Seats()),
	}
}

// Run plays the street until every seat still able to act has matched the last raise,
// then moves all street commitments into the pot.
func (br *BettingRound) Run() (StreetResult, error) {
	s := br.state
	s.RequiredCall = 0
	clear(br.committed)

	current := s.StartingSeat
	br.lastAggressor = s.StartingSeat
	if s.Street == Preflop {
		current = br.postBlinds()
	}

	for {
		if err := br.act(current); err != nil {
			return br.result(), err
		}
		current = s.NextSeat(current)
		if current == br.lastAggressor {
			break
		}
	}

	if err := br.settle(); err != nil {
		return br.result(), err
	}
	return br.result(), nil
}

// postBlinds commits the blinds and returns the first seat to act.
func (br *BettingRound) postBlinds() int {
	s := br.state
	sb := s.StartingSeat
	if s.Folded(sb) {
		sb = br.nextLive(sb)
	}
	bb := br.nextLive(sb)

	br.post(sb, br.rules.SmallBlind, RaiseBy(br.rules.SmallBlind))
	br.post(bb, br.rules.BigBlind, RaiseBy(br.rules.BigBlind-br.rules.SmallBlind))
	s.RequiredCall = br.rules.BigBlind
	br.lastAggressor = bb

	return br.nextLive(bb)
}

// nextLive returns the first seat after seat that has not folded, or seat itself when
// no other seat is live.
func (br *BettingRound) nextLive(seat int) int {
	s := br.state
	for next := s.NextSeat(seat); next != seat; next = s.NextSeat(next) {
		if !s.Folded(next) {
			return next
		}
	}
	return seat
}

func (br *BettingRound) post(seat, amount int, mark Action) {
	if br.state.Folded(seat) {
		return
	}
	br.committed[seat] = min(amount, br.state.Stacks[seat])
	br.state.LastAction[seat] = mark
	br.logger.Debug("posted blind", "seat", seat, "amount", br.committed[seat])
}

func (br *BettingRound) allIn(seat int) bool {
	return br.committed[seat] >= br.state.Stacks[seat]
}

func (br *BettingRound) act(seat int) error {
	s := br.state
	if s.Folded(seat) || br.allIn(seat) {
		return nil
	}

	owed := s.RequiredCall - br.committed[seat]
	legal := LegalActions(owed)
	action, err := br.decide(seat, owed, legal)
	if err != nil {
		return err
	}

	switch action.Kind {
	case Call:
		br.committed[seat] = min(s.RequiredCall, s.Stacks[seat])
	case Raise:
		amount := min(action.Amount, s.Stacks[seat])
		target := min(s.RequiredCall+amount, s.Stacks[seat])
		br.committed[seat] = max(br.committed[seat], target)
		if target > s.RequiredCall {
			action = RaiseBy(target - s.RequiredCall)
			s.RequiredCall = target
			br.lastAggressor = seat
			br.raises++
		} else {
			action = Act(Call)
		}
	}

	s.LastAction[seat] = action
	br.actions++
	br.logger.Debug("action", "seat", seat, "action", action, "committed", br.committed[seat])
	return nil
}

// decide asks the seat's player for an action and applies the invalid action policy.
func (br *BettingRound) decide(seat, owed int, legal []ActionKind) (Action, error) {
	attempts := 1
	if br.rules.InvalidAction == RepromptOnInvalid {
		attempts = maxReprompts
	}

	for range attempts {
		view, err := br.view(seat, owed)
		if err != nil {
			return Action{}, err
		}
		answer := br.players[seat].Decide(view, legal)
		if action, ok := normalize(answer, legal); ok {
			return action, nil
		}

		br.logger.Warn("invalid action", "seat", seat, "action", answer, "legal", legal)
		if br.rules.InvalidAction == AbortOnInvalid {
			return Action{}, fmt.Errorf("seat %d answered %v: %w", seat, answer, ErrInvalidAction)
		}
	}
	return Act(Fold), nil
}

func (br *BettingRound) view(seat, owed int) (View, error) {
	view, err := br.state.ViewFor(seat)
	if err != nil {
		return View{}, err
	}
	view.Committed = append([]int(nil), br.committed...)
	view.Owed = owed
	return view, nil
}

// settle moves every commitment from stack to pot. Nothing is mutated if any
// commitment exceeds its stack.
func (br *BettingRound) settle() error {
	s := br.state
	for seat, c := range br.committed {
		if c > s.Stacks[seat] {
			return fmt.Errorf("seat %d committed %d with stack %d: %w", seat, c, s.Stacks[seat], ErrStackUnderflow)
		}
	}
	for seat, c := range br.committed {
		s.Stacks[seat] -= c
		s.Pot += c
	}
	s.RequiredCall = 0
	return nil
}

func (br *BettingRound) result() StreetResult {
	return StreetResult{
		Street:        br.state.Street,
		Contributions: append([]int(nil), br.committed...),
		Actions:       br.actions,
		Raises:        br.raises,
	}
}
