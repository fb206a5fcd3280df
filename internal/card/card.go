// Package card defines the playing-card value types shared by the board
// engine: suits, colours, cards, and the addresses that identify board
// locations.
package card

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a deck, and also the number of
// foundations and free cells on a FreeCell board.
const NumSuits = 4

// Colour represents a suit colour
type Colour int

const (
	Black Colour = iota
	Red
)

// Colour returns the colour of the suit
func (s Suit) Colour() Colour {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

// Index returns the suit's position in foundation order
func (s Suit) Index() int {
	return int(s)
}

// SuitFromIndex converts a foundation index back to a suit.
// Returns false if the index is out of range.
func SuitFromIndex(n int) (Suit, bool) {
	if n < 0 || n >= NumSuits {
		return 0, false
	}
	return Suit(n), true
}

// String returns the lowercase suit name (e.g. "hearts")
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		return "?"
	}
}

// Glyph returns the suit symbol (e.g. "♥")
func (s Suit) Glyph() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Card represents a playing card. Rank runs 1 (ace) to 13 (king).
// Rank 0 is the empty-foundation sentinel and never appears in a deal.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// New creates a new card
func New(rank int, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// StacksOn reports whether the card can legally sit on base in a tableau
// column: alternating colours, descending by exactly one rank.
func (c Card) StacksOn(base Card) bool {
	return c.Suit.Colour() != base.Suit.Colour() && base.Rank == c.Rank+1
}

// FitsOnFoundation reports whether the card is the next card of its suit's
// foundation pile: same suit, ascending by exactly one rank. The rank-0
// sentinel makes this accept an ace on an empty foundation.
func (c Card) FitsOnFoundation(base Card) bool {
	return c.Suit == base.Suit && base.Rank == c.Rank-1
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.Colour() == Red
}

// String returns the short form of the card (e.g. "Q♥"), or "_" for the
// empty-foundation sentinel.
func (c Card) String() string {
	if c.Rank == 0 {
		return "_"
	}
	return rankString(c.Rank) + c.Suit.Glyph()
}

func rankString(rank int) string {
	switch rank {
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	default:
		return fmt.Sprintf("%d", rank)
	}
}
