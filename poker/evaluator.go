package poker

import (
	"errors"
	"fmt"
	"slices"
)

// ErrTooFewCards is returned when fewer than five cards are evaluated.
var ErrTooFewCards = errors.New("at least 5 cards required")

// Score is the strength of a hand. Higher values are stronger and equal values tie.
type Score uint32

// Category enumerates the categories of poker hands ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// categoryStride separates categories: every subscore is below NumRanks^5, so no two
// categories can collide.
const categoryStride = NumRanks * NumRanks * NumRanks * NumRanks * NumRanks

func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Category returns the category of hand the score belongs to.
func (s Score) Category() Category {
	return Category(s / categoryStride)
}

// Subscore returns the within-category tie-break value.
func (s Score) Subscore() uint32 {
	return uint32(s % categoryStride)
}

// String returns a human-readable hand description.
func (s Score) String() string {
	return s.Category().String()
}

// detectors are tried strongest first; the first match decides the category.
var detectors = [...]struct {
	category Category
	detect   func(*profile) (uint32, bool)
}{
	{StraightFlush, straightFlushValue},
	{FourOfAKind, quadsValue},
	{FullHouse, fullHouseValue},
	{Flush, flushValue},
	{Straight, straightValue},
	{ThreeOfAKind, tripsValue},
	{TwoPair, twoPairValue},
	{Pair, pairValue},
	{HighCard, highCardValue},
}

// Evaluate scores the best poker hand that can be made from five or more cards.
// It is a pure function of the multiset of cards.
func Evaluate(cards []Card) (Score, error) {
	if len(cards) < 5 {
		return 0, fmt.Errorf("evaluate %d cards: %w", len(cards), ErrTooFewCards)
	}
	for _, c := range cards {
		if !c.Valid() {
			return 0, fmt.Errorf("evaluate rank %d suit %d: %w", c.Rank, c.Suit, ErrInvalidCard)
		}
	}

	p := newProfile(cards)
	for _, d := range detectors {
		if sub, ok := d.detect(&p); ok {
			return Score(uint32(d.category)*categoryStride + sub), nil
		}
	}
	// highCardValue always matches
	panic("unreachable")
}

// MustEvaluate is like Evaluate but panics on error. Intended for tests and fixtures.
func MustEvaluate(cards ...Card) Score {
	score, err := Evaluate(cards)
	if err != nil {
		panic(err)
	}
	return score
}

// profile is the rank/suit breakdown every detector works from.
type profile struct {
	ranks     []Rank        // every card's rank, highest first
	counts    [NumRanks]int // cards per rank
	rankMask  uint16        // bit r set when rank r is present
	suitRanks [4][]Rank     // ranks per suit, highest first
	suitMask  [4]uint16
}

func newProfile(cards []Card) profile {
	var p profile
	p.ranks = make([]Rank, 0, len(cards))
	for _, c := range cards {
		p.ranks = append(p.ranks, c.Rank)
		p.counts[c.Rank]++
		p.rankMask |= 1 << c.Rank
		p.suitRanks[c.Suit] = append(p.suitRanks[c.Suit], c.Rank)
		p.suitMask[c.Suit] |= 1 << c.Rank
	}

	desc := func(a, b Rank) int { return int(b) - int(a) }
	slices.SortFunc(p.ranks, desc)
	for s := range p.suitRanks {
		slices.SortFunc(p.suitRanks[s], desc)
	}
	return p
}

// highestOfKind returns the highest rank held at least n times, skipping excluded ranks.
func (p *profile) highestOfKind(n int, exclude ...Rank) (Rank, bool) {
	for r := int(Ace); r >= int(Two); r-- {
		rank := Rank(r)
		if p.counts[r] >= n && !slices.Contains(exclude, rank) {
			return rank, true
		}
	}
	return 0, false
}

// kickers returns the best n ranks from the whole hand once the committed ranks are removed.
func (p *profile) kickers(n int, committed ...Rank) []Rank {
	out := make([]Rank, 0, n)
	for _, r := range p.ranks {
		if len(out) == n {
			break
		}
		if !slices.Contains(committed, r) {
			out = append(out, r)
		}
	}
	return out
}

// encode packs ranks as base-13 digits, most significant first, padded to width digits.
func encode(width int, ranks ...Rank) uint32 {
	var v uint32
	for i := 0; i < width; i++ {
		v *= NumRanks
		if i < len(ranks) {
			v += uint32(ranks[i])
		}
	}
	return v
}

// straightHigh finds the top rank of the best five-rank run in mask. The ace also
// plays below the two, so the wheel (A-2-3-4-5) reports Five.
func straightHigh(mask uint16) (Rank, bool) {
	for top := int(Ace); top >= int(Five); top-- {
		run := true
		for i := 0; i < 5; i++ {
			r := top - i
			if r < 0 {
				r = int(Ace)
			}
			if mask&(1<<r) == 0 {
				run = false
				break
			}
		}
		if run {
			return Rank(top), true
		}
	}
	return 0, false
}

func straightFlushValue(p *profile) (uint32, bool) {
	best, found := Rank(0), false
	for _, mask := range p.suitMask {
		if top, ok := straightHigh(mask); ok && (!found || top > best) {
			best, found = top, true
		}
	}
	return uint32(best), found
}

func quadsValue(p *profile) (uint32, bool) {
	quad, ok := p.highestOfKind(4)
	if !ok {
		return 0, false
	}
	return encode(2, append([]Rank{quad}, p.kickers(1, quad)...)...), true
}

func fullHouseValue(p *profile) (uint32, bool) {
	trips, ok := p.highestOfKind(3)
	if !ok {
		return 0, false
	}
	pair, ok := p.highestOfKind(2, trips)
	if !ok {
		return 0, false
	}
	return encode(2, trips, pair), true
}

func flushValue(p *profile) (uint32, bool) {
	var best uint32
	found := false
	for _, ranks := range p.suitRanks {
		if len(ranks) < 5 {
			continue
		}
		if v := encode(5, ranks[:5]...); !found || v > best {
			best, found = v, true
		}
	}
	return best, found
}

func straightValue(p *profile) (uint32, bool) {
	top, ok := straightHigh(p.rankMask)
	return uint32(top), ok
}

func tripsValue(p *profile) (uint32, bool) {
	trips, ok := p.highestOfKind(3)
	if !ok {
		return 0, false
	}
	return encode(3, append([]Rank{trips}, p.kickers(2, trips)...)...), true
}

func twoPairValue(p *profile) (uint32, bool) {
	high, ok := p.highestOfKind(2)
	if !ok {
		return 0, false
	}
	low, ok := p.highestOfKind(2, high)
	if !ok {
		return 0, false
	}
	return encode(3, append([]Rank{high, low}, p.kickers(1, high, low)...)...), true
}

func pairValue(p *profile) (uint32, bool) {
	pair, ok := p.highestOfKind(2)
	if !ok {
		return 0, false
	}
	return encode(4, append([]Rank{pair}, p.kickers(3, pair)...)...), true
}

func highCardValue(p *profile) (uint32, bool) {
	return encode(5, p.kickers(5)...), true
}
