package poker

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"
)

// ErrInsufficientCards is returned when more cards are requested than remain in the deck.
var ErrInsufficientCards = errors.New("insufficient cards in deck")

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Deck represents a standard 52-card deck with a deal cursor.
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand // nil uses the process-level source
}

// NewDeck creates a deck in canonical order (rank-major, suit-minor) with the cursor at 0.
// The deck is not shuffled; call Shuffle before dealing.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for rank := Two; rank <= Ace; rank++ {
		for _, suit := range Suits {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}
	return d
}

// NewStackedDeck creates an unshuffled deck whose first cards are top, in order, followed
// by the remaining cards in canonical order. Intended for fixtures that need a known deal.
func NewStackedDeck(top ...Card) (*Deck, error) {
	d := &Deck{}
	seen := make(map[Card]bool, len(top))
	for i, c := range top {
		if !c.Valid() || seen[c] || i >= DeckSize {
			return nil, fmt.Errorf("%w: cannot stack %s", ErrInvalidCard, c)
		}
		seen[c] = true
		d.cards[i] = c
	}

	i := len(top)
	for _, c := range NewDeck(nil).cards {
		if !seen[c] {
			d.cards[i] = c
			i++
		}
	}
	return d, nil
}

// Shuffle permutes the whole deck using Fisher-Yates and resets the cursor.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// NextCard deals the card under the cursor. Once all 52 cards have been dealt it
// returns ErrInsufficientCards instead of wrapping around to already dealt cards.
func (d *Deck) NextCard() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrInsufficientCards
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// Deal deals n cards. Either all n cards are dealt or none are.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, fmt.Errorf("deal %d with %d remaining: %w", n, d.Remaining(), ErrInsufficientCards)
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// Remaining returns the number of cards left to deal.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Cards returns a copy of the deck in its current order.
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards[:])
	return cards
}

func (d *Deck) String() string {
	names := make([]string, len(d.cards))
	for i, c := range d.cards {
		names[i] = c.Name()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
