package game

import (
	"testing"

	"github.com/lox/holdemsim/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	t.Parallel()

	s := NewState(3, 200)
	assert.Equal(t, 3, s.Seats())
	assert.Equal(t, 600, s.TotalChips())
	assert.Equal(t, []int{0, 1, 2}, s.InHand())
	assert.Equal(t, 0, s.NextSeat(2))
}

func TestStateSnapshotIsDeep(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 100, 100)
	s.Community = poker.MustParseCards("AsKsQs")

	snap := s.Snapshot()
	snap.Stacks[0] = 1
	snap.Community[0] = poker.MustParseCards("2c")[0]
	snap.HoleCards[1] = Hole{}
	snap.LastAction[0] = Act(Fold)

	assert.Equal(t, 100, s.Stacks[0])
	assert.Equal(t, poker.MustParseCards("As")[0], s.Community[0])
	assert.True(t, s.HoleCards[1].Dealt)
	assert.False(t, s.Folded(0))
}

func TestViewForUnknownSeat(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 100, 100)
	for _, seat := range []int{-1, 2} {
		_, err := s.ViewFor(seat)
		require.ErrorIs(t, err, ErrUnknownSeat)
	}

	s.HoleCards[1] = Hole{}
	_, err := s.ViewFor(1)
	require.ErrorIs(t, err, ErrUnknownSeat)
}

func TestResetHand(t *testing.T) {
	t.Parallel()

	s := dealtState(t, 100, 100)
	s.Pot = 10
	s.Community = poker.MustParseCards("AsKsQs")
	s.LastAction[0] = Act(Call)
	s.RequiredCall = 4
	s.Street = River

	s.resetHand()

	assert.Zero(t, s.Pot)
	assert.Empty(t, s.Community)
	assert.Equal(t, []Hole{{}, {}}, s.HoleCards)
	assert.Equal(t, []Action{{}, {}}, s.LastAction)
	assert.Zero(t, s.RequiredCall)
	assert.Equal(t, Preflop, s.Street)
}

func TestParseInvalidActionPolicy(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]InvalidActionPolicy{
		"":         FoldOnInvalid,
		"fold":     FoldOnInvalid,
		"Reprompt": RepromptOnInvalid,
		"abort":    AbortOnInvalid,
	} {
		got, err := ParseInvalidActionPolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseInvalidActionPolicy("explode")
	require.Error(t, err)
}
