package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit. Suits are unordered and only matter for flushes.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

// Suits lists every suit in canonical deck order.
var Suits = [...]Suit{Hearts, Diamonds, Spades, Clubs}

// String returns the single letter used in short card notation.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Spades:
		return "s"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four real suits.
func (s Suit) Valid() bool {
	return s <= Clubs
}

// Name returns the plural suit name, e.g. "Spades".
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Spades:
		return "Spades"
	case Clubs:
		return "Clubs"
	default:
		return "Unknown"
	}
}

// Rank represents a card rank from Two (0) to Ace (12).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the rank cardinality, also the base of the score encoding.
const NumRanks = 13

const rankChars = "23456789TJQKA"

var rankNames = [NumRanks]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

// Value returns the 0..12 projection used in score arithmetic.
func (r Rank) Value() int {
	return int(r)
}

// Valid reports whether r is one of the thirteen real ranks.
func (r Rank) Valid() bool {
	return r <= Ace
}

func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankChars[r])
}

// Name returns the rank's word form, e.g. "Queen".
func (r Rank) Name() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rankNames[r]
}

// Card is an immutable (rank, suit) value.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether both the rank and the suit are in range.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// String returns the short form, e.g. "As" or "Td".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Name returns the long form, e.g. "Ace of Spades".
func (c Card) Name() string {
	return c.Rank.Name() + " of " + c.Suit.Name()
}

// ParseCard parses a two character string like "As" or "th".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	idx := strings.IndexByte(rankChars, upper(s[0]))
	if idx < 0 {
		return Card{}, fmt.Errorf("%w: bad rank %q", ErrInvalidCard, s[0])
	}

	var suit Suit
	switch s[1] {
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	case 's', 'S':
		suit = Spades
	case 'c', 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: bad suit %q", ErrInvalidCard, s[1])
	}

	return NewCard(Rank(idx), suit), nil
}

// ParseCards parses a concatenated card string like "AsKhQd". Whitespace is ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length string %q", ErrInvalidCard, s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests and fixtures.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
