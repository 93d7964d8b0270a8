// Package statistics aggregates per-seat results across hands and sessions.
package statistics

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/lox/holdemsim/internal/game"
)

// ErrLedger is returned by Validate when the recorded results do not balance.
var ErrLedger = errors.New("ledger mismatch")

// HandResult is one seat's outcome for a single hand.
type HandResult struct {
	NetBB          float64 // Net big blinds won/lost
	WentToShowdown bool    // Did the hand reach an evaluated showdown?
	Won            bool    // Did the seat take some of the pot?
	Split          bool    // Was the pot shared with another winner?
	FinalPotSize   int     // Final pot size in chips
}

// Statistics tracks one seat's results across hands.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64   // Sum of squares for variance calculation
	Values []float64 // Every result, for median/percentile calculation

	ShowdownWins    int     // Hands won at showdown
	NonShowdownWins int     // Hands won because everyone else folded
	Splits          int     // Hands where the pot was shared
	ShowdownBB      float64 // BB from showdowns (wins and losses)
	NonShowdownBB   float64 // BB from hands without showdown
	AllBB           float64 // Total BB for the ledger check

	MaxPotChips int // Largest pot the seat played in
}

// Mean returns the arithmetic mean of all results in big blinds per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return max(0, (s.SumBB2-float64(s.Hands)*mean*mean)/float64(s.Hands-1))
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a new hand result
func (s *Statistics) Add(result HandResult) {
	netBB := result.NetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)

	if result.Won {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
		if result.Split {
			s.Splits++
		}
	}

	if result.WentToShowdown {
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB

	s.MaxPotChips = max(s.MaxPotChips, result.FinalPotSize)
}

// Merge folds other's results into s.
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.SumBB += other.SumBB
	s.SumBB2 += other.SumBB2
	s.Values = append(s.Values, other.Values...)
	s.ShowdownWins += other.ShowdownWins
	s.NonShowdownWins += other.NonShowdownWins
	s.Splits += other.Splits
	s.ShowdownBB += other.ShowdownBB
	s.NonShowdownBB += other.NonShowdownBB
	s.AllBB += other.AllBB
	s.MaxPotChips = max(s.MaxPotChips, other.MaxPotChips)
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// IsLedgerBalanced checks the showdown and non-showdown buckets add up
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate performs consistency checks on the recorded data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("%w: AllBB=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
			ErrLedger, s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("%w: %d values for %d hands", ErrLedger, len(s.Values), s.Hands)
	}
	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Hands {
		return fmt.Errorf("%w: %d wins in %d hands", ErrLedger, wins, s.Hands)
	}
	return nil
}

// Table tracks every seat at a table. Seats are identified by index.
type Table struct {
	Names    []string
	BigBlind int
	Seats    []Statistics
	NetChips []int // Net chips per seat across every recorded hand
	Hands    int
	Sessions int
}

// NewTable creates an empty table for the named seats.
func NewTable(names []string, bigBlind int) *Table {
	return &Table{
		Names:    slices.Clone(names),
		BigBlind: bigBlind,
		Seats:    make([]Statistics, len(names)),
		NetChips: make([]int, len(names)),
	}
}

// AddHand records one hand for every seat that was dealt in.
func (t *Table) AddHand(h game.HandResult) {
	t.Hands++
	showdown := h.ShowdownType == game.ShowdownEvaluated
	for seat := range t.Seats {
		if !h.Dealt[seat] {
			continue
		}
		net := h.Net(seat)
		t.NetChips[seat] += net
		t.Seats[seat].Add(HandResult{
			NetBB:          float64(net) / float64(t.BigBlind),
			WentToShowdown: showdown,
			Won:            h.Payouts[seat] > 0,
			Split:          h.Payouts[seat] > 0 && len(h.Winners) > 1,
			FinalPotSize:   h.Pot,
		})
	}
}

// AddSession records every hand of a session.
func (t *Table) AddSession(s *game.SessionResult) {
	t.Sessions++
	for _, h := range s.Hands {
		t.AddHand(h)
	}
}

// Merge folds other's results into t. Both tables must have the same seats.
func (t *Table) Merge(other *Table) error {
	if len(other.Seats) != len(t.Seats) {
		return fmt.Errorf("merge %d seats into %d", len(other.Seats), len(t.Seats))
	}
	for i := range t.Seats {
		t.Seats[i].Merge(&other.Seats[i])
		t.NetChips[i] += other.NetChips[i]
	}
	t.Hands += other.Hands
	t.Sessions += other.Sessions
	return nil
}

// Validate checks every seat's ledger and that chips won equal chips lost.
func (t *Table) Validate() error {
	total := 0
	for i := range t.Seats {
		if err := t.Seats[i].Validate(); err != nil {
			return fmt.Errorf("seat %d: %w", i, err)
		}
		total += t.NetChips[i]
	}
	if total != 0 {
		return fmt.Errorf("%w: net chips sum to %d", ErrLedger, total)
	}
	return nil
}
