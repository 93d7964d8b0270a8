package game

import (
	"math"
	"testing"

	"github.com/sanity-io/litter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRules = Rules{SmallBlind: 1, BigBlind: 2}

func TestPreflopBlindsAndCall(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 200, 200)
	sb, bb := script(), script()

	res, err := NewBettingRound(s, players(sb, bb), testRules, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, 4, s.Pot, litter.Sdump(s))
	assert.Equal(t, []int{198, 198}, s.Stacks)
	assert.Equal(t, Act(Call), s.LastAction[0])
	assert.Equal(t, RaiseBy(1), s.LastAction[1], "big blind keeps its blind mark")
	assert.Equal(t, 0, s.RequiredCall)

	assert.Equal(t, []int{2, 2}, res.Contributions)
	assert.Equal(t, 1, res.Actions)
	assert.Zero(t, res.Raises)
	assert.Equal(t, 1, sb.prompts())
	assert.Zero(t, bb.prompts(), "big blind has no option when nobody raises")
}

func TestPreflopRaiseReopensAction(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 200, 200, 200)
	s.StartingSeat = 1
	// seat 1 small blind, seat 2 big blind, seat 0 first to act
	p0, p1, p2 := script(RaiseBy(4)), script(), script()

	res, err := NewBettingRound(s, players(p0, p1, p2), testRules, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, 18, s.Pot)
	assert.Equal(t, []int{194, 194, 194}, s.Stacks)
	assert.Equal(t, 1, p0.prompts())
	assert.Equal(t, 1, p1.prompts())
	assert.Equal(t, 1, p2.prompts(), "big blind acts after a raise")
	assert.Equal(t, 1, res.Raises)
	assert.Equal(t, 3, res.Actions)
}

func TestPostflopEverySeatActsOnce(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 100, 100, 100)
	s.Street = Flop
	s.StartingSeat = 1

	var order []int
	track := func(seat int) Player {
		return PlayerFunc(func(v View, legal []ActionKind) Action {
			assert.Equal(t, seat, v.Seat)
			order = append(order, seat)
			return passive(legal)
		})
	}

	res, err := NewBettingRound(s, players(track(0), track(1), track(2)), testRules, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 0}, order)
	assert.Equal(t, 3, res.Actions)
	assert.Zero(t, s.Pot)
	for seat := range 3 {
		assert.Equal(t, Act(Check), s.LastAction[seat])
	}
}

func TestPostflopRaiseIsCalledAround(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 100, 100, 100)
	s.Street = Turn
	p0, p1, p2 := script(), script(RaiseBy(10)), script()

	res, err := NewBettingRound(s, players(p0, p1, p2), testRules, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, 30, s.Pot)
	assert.Equal(t, []int{90, 90, 90}, s.Stacks)
	assert.Equal(t, 2, p0.prompts(), "seat 0 checks then calls")
	assert.Equal(t, 1, p1.prompts())
	assert.Equal(t, 1, p2.prompts())
	assert.Equal(t, 4, res.Actions)
	assert.Equal(t, 1, res.Raises)
}

func TestCommitmentsAreCappedAtStack(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 200, 5, 200)
	s.Street = Flop
	p0, p1, p2 := script(RaiseBy(50)), script(RaiseBy(100)), script()

	res, err := NewBettingRound(s, players(p0, p1, p2), testRules, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, Act(Call), s.LastAction[1], "short raise is recorded as an all-in call")
	assert.Equal(t, []int{50, 5, 50}, res.Contributions)
	assert.Equal(t, []int{150, 0, 150}, s.Stacks)
	assert.Equal(t, 105, s.Pot)
	assert.Equal(t, 1, res.Raises)
}

func TestAllInSeatIsNotPrompted(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 200, 5, 200)
	s.Street = River
	p0, p1, p2 := script(), script(Act(Call)), script(RaiseBy(20))
	p0.script = []Action{RaiseBy(5), Act(Call)}

	_, err := NewBettingRound(s, players(p0, p1, p2), testRules, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, 1, p1.prompts(), "all-in seat is skipped after it commits its stack")
	assert.Equal(t, 2, p0.prompts())
	assert.Equal(t, []int{175, 0, 175}, s.Stacks)
	assert.Equal(t, 55, s.Pot)
}

func TestBlindIsCappedAtStack(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 200, 1)
	p0, p1 := script(), script()

	_, err := NewBettingRound(s, players(p0, p1), testRules, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, []int{198, 0}, s.Stacks)
	assert.Equal(t, 3, s.Pot)
}

func TestBlindsSkipSatOutSeat(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 300, 0, 300)
	s.LastAction[1] = Act(Fold)
	p0, p1, p2 := script(), script(), script()

	res, err := NewBettingRound(s, players(p0, p1, p2), testRules, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, []int{2, 0, 2}, res.Contributions)
	assert.Equal(t, RaiseBy(1), s.LastAction[2], "seat 2 posts the big blind")
	assert.Equal(t, 1, p0.prompts(), "small blind acts first heads-up")
	assert.Zero(t, p1.prompts())
	assert.Zero(t, p2.prompts(), "big blind closes the round")
	assert.Equal(t, 1, res.Actions)
	assert.Equal(t, []int{298, 0, 298}, s.Stacks)
}

func TestOversizedRaiseIsClampedToStack(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 200, 200)
	p0, p1 := script(RaiseBy(math.MaxInt)), script()

	res, err := NewBettingRound(s, players(p0, p1), testRules, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, RaiseBy(198), s.LastAction[0], litter.Sdump(s))
	assert.Equal(t, Act(Call), s.LastAction[1])
	assert.Equal(t, []int{200, 200}, res.Contributions)
	assert.Equal(t, []int{0, 0}, s.Stacks)
	assert.Equal(t, 400, s.Pot)
	assert.Equal(t, 1, res.Raises)
}

func TestFoldedSeatsAreSkipped(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 100, 100, 100)
	s.Street = Flop
	s.LastAction[1] = Act(Fold)
	p0, p1, p2 := script(), script(), script()

	res, err := NewBettingRound(s, players(p0, p1, p2), testRules, nil).Run()
	require.NoError(t, err)

	assert.Zero(t, p1.prompts())
	assert.Equal(t, 2, res.Actions)
	assert.Equal(t, Act(Fold), s.LastAction[1])
}

func TestInvalidActionPolicies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		policy     InvalidActionPolicy
		answers    []Action
		wantAction Action
		wantPrompt int
		wantErr    error
	}{
		{
			name:       "fold forfeits",
			policy:     FoldOnInvalid,
			answers:    []Action{Act(Check)},
			wantAction: Act(Fold),
			wantPrompt: 1,
		},
		{
			name:       "raise without amount is invalid",
			policy:     FoldOnInvalid,
			answers:    []Action{RaiseBy(0)},
			wantAction: Act(Fold),
			wantPrompt: 1,
		},
		{
			name:       "reprompt accepts a later valid answer",
			policy:     RepromptOnInvalid,
			answers:    []Action{Act(Check), {}, Act(Call)},
			wantAction: Act(Call),
			wantPrompt: 3,
		},
		{
			name:       "reprompt folds after three invalid answers",
			policy:     RepromptOnInvalid,
			answers:    []Action{Act(Check), Act(Check), Act(Check), Act(Call)},
			wantAction: Act(Fold),
			wantPrompt: 3,
		},
		{
			name:       "abort returns the error",
			policy:     AbortOnInvalid,
			answers:    []Action{Act(Check)},
			wantPrompt: 1,
			wantErr:    ErrInvalidAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := dealtState(t, 200, 200)
			sb := script(tt.answers...)
			rules := testRules
			rules.InvalidAction = tt.policy

			_, err := NewBettingRound(s, players(sb, script()), rules, nil).Run()
			assert.Equal(t, tt.wantPrompt, sb.prompts())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, []int{200, 200}, s.Stacks, "stacks untouched before settlement")
				assert.Zero(t, s.Pot)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAction, s.LastAction[0])
		})
	}
}

func TestNonRaiseAmountsAreStripped(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 200, 200)
	_, err := NewBettingRound(s, players(script(Action{Kind: Call, Amount: 50}), script()), testRules, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, Act(Call), s.LastAction[0])
	assert.Equal(t, 4, s.Pot)
}

func TestViewIsRedacted(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 200, 200, 200)
	p0 := script()

	_, err := NewBettingRound(s, players(p0, script(), script()), testRules, nil).Run()
	require.NoError(t, err)
	require.Equal(t, 1, p0.prompts())

	// seat 0 posts the small blind and acts last, after seat 2 has called
	view := p0.views[0]
	assert.Equal(t, 0, view.Seat)
	assert.Equal(t, s.HoleCards[0], view.HoleCards[0])
	assert.Equal(t, s.HoleCards[0].Cards, view.Hole())
	assert.Equal(t, Hole{}, view.HoleCards[1])
	assert.Equal(t, Hole{}, view.HoleCards[2])
	assert.Equal(t, []int{1, 2, 2}, view.Committed)
	assert.Equal(t, 1, view.Owed)
	assert.Equal(t, 199, view.Stack())
	assert.Equal(t, 2, view.RequiredCall)
}

func TestViewMutationDoesNotLeak(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 200, 200)
	vandal := PlayerFunc(func(v View, legal []ActionKind) Action {
		v.Stacks[1] = 0
		v.Committed[0] = 100
		v.LastAction[1] = Act(Fold)
		return passive(legal)
	})

	_, err := NewBettingRound(s, players(vandal, script()), testRules, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, []int{198, 198}, s.Stacks)
	assert.Equal(t, RaiseBy(1), s.LastAction[1])
}

func TestSettleRejectsUnderflowWithoutMutating(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 10, 10)
	br := NewBettingRound(s, players(script(), script()), testRules, nil)
	br.committed = []int{5, 11}

	err := br.settle()
	require.ErrorIs(t, err, ErrStackUnderflow)
	assert.Equal(t, []int{10, 10}, s.Stacks)
	assert.Zero(t, s.Pot)
}

func TestLegalActions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []ActionKind{Fold, Call, Raise}, LegalActions(3))
	assert.Equal(t, []ActionKind{Check, Raise}, LegalActions(0))
}
