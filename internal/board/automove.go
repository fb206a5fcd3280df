package board

import "github.com/FBemf/freecell/internal/card"

// AutoMoveToFoundations scans the top card of each column in order and
// performs the first safe foundation move it finds, returning the resulting
// board and true. It returns nil and false when nothing qualifies or the
// board is mid-move. Callers drain all safe moves by calling it repeatedly.
func (b *Board) AutoMoveToFoundations() (*Board, bool) {
	if b.HasFloating() {
		return nil, false
	}
	for i, column := range b.columns {
		if len(column) == 0 {
			continue
		}
		top := column[len(column)-1]
		if !b.canAutoMove(top) {
			continue
		}
		picked, err := b.PickUpCard(card.Column(i))
		if err != nil {
			// unreachable: the column is known non-empty and nothing is held
			return nil, false
		}
		placed, err := picked.Place(card.Foundation(top.Suit))
		if err != nil {
			return nil, false
		}
		return placed, true
	}
	return nil, false
}

// canAutoMove reports whether a card is safe to send to its foundation
// without ever being missed: it must be the foundation's immediate
// successor, and for both opposite-colour suits the rank below must either
// already be on its foundation or itself qualify for auto-move. Cards of the
// same colour never stack on it, so they are not consulted. Rank strictly
// decreases on recursion, so the check terminates.
func (b *Board) canAutoMove(c card.Card) bool {
	if b.foundations[c.Suit.Index()].Rank != c.Rank-1 {
		return false
	}
	if c.Suit.Colour() == card.Red {
		return b.oppositeCleared(c.Rank, card.Clubs) && b.oppositeCleared(c.Rank, card.Spades)
	}
	return b.oppositeCleared(c.Rank, card.Diamonds) && b.oppositeCleared(c.Rank, card.Hearts)
}

func (b *Board) oppositeCleared(rank int, suit card.Suit) bool {
	return b.foundations[suit.Index()].Rank >= rank-1 ||
		b.canAutoMove(card.New(rank-1, suit))
}
