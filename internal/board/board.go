// Package board implements the FreeCell rules engine: the deal, the legality
// of every pick-up and placement, and the automatic foundation moves.
//
// A Board is a value in spirit: every transition validates its input and
// returns a fresh Board, leaving the receiver untouched. Callers keep
// whichever resulting Board they want; nothing is ever mutated in place from
// the caller's perspective. The engine never panics on malformed input:
// every rejected move comes back as a typed error.
package board

import (
	"github.com/FBemf/freecell/internal/card"
	"github.com/FBemf/freecell/internal/randutil"
)

// numFreeCells is the number of free cells on the board
const numFreeCells = 4

// columnSizes is the canonical opening deal: eight columns, four of seven
// cards and four of six, totalling 52.
var columnSizes = []int{7, 7, 7, 7, 6, 6, 6, 6}

// Board holds one deal: the tableau columns, the four foundations, the four
// free cells, and whatever the player is currently holding. At most one of
// floating / floatingStack is populated; a board with neither is "settled".
type Board struct {
	columns     [][]card.Card
	foundations []card.Card // rank-0 sentinel when empty, one per suit
	freeCells   []*card.Card

	floating      *card.Card
	floatingStack []card.Card
}

func empty() *Board {
	b := &Board{
		columns:     nil,
		foundations: make([]card.Card, card.NumSuits),
		freeCells:   make([]*card.Card, numFreeCells),
	}
	for i := range b.foundations {
		suit, _ := card.SuitFromIndex(i)
		b.foundations[i] = card.New(0, suit)
	}
	return b
}

// NewDeal builds and shuffles a 52-card deck and deals it into eight
// columns. The shuffle is a Fisher-Yates permutation driven by a generator
// derived only from seed, so the same seed always produces the same deal.
func NewDeal(seed uint64) *Board {
	b := empty()

	deck := make([]card.Card, 0, 52)
	for s := 0; s < card.NumSuits; s++ {
		suit, _ := card.SuitFromIndex(s)
		for rank := 1; rank <= 13; rank++ {
			deck = append(deck, card.New(rank, suit))
		}
	}

	rng := randutil.New(seed)
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}

	for _, size := range columnSizes {
		column := make([]card.Card, size)
		copy(column, deck[:size])
		deck = deck[size:]
		b.columns = append(b.columns, column)
	}
	return b
}

// clone deep-copies the board so a transition can build its result without
// touching the receiver.
func (b *Board) clone() *Board {
	out := &Board{
		columns:     make([][]card.Card, len(b.columns)),
		foundations: make([]card.Card, len(b.foundations)),
		freeCells:   make([]*card.Card, len(b.freeCells)),
	}
	for i, column := range b.columns {
		out.columns[i] = append([]card.Card(nil), column...)
	}
	copy(out.foundations, b.foundations)
	for i, cell := range b.freeCells {
		if cell != nil {
			c := *cell
			out.freeCells[i] = &c
		}
	}
	if b.floating != nil {
		c := *b.floating
		out.floating = &c
	}
	if b.floatingStack != nil {
		out.floatingStack = append([]card.Card(nil), b.floatingStack...)
	}
	return out
}

// Equal reports whether two boards are in exactly the same state,
// floating cards included.
func (b *Board) Equal(other *Board) bool {
	if len(b.columns) != len(other.columns) {
		return false
	}
	for i := range b.columns {
		if !cardsEqual(b.columns[i], other.columns[i]) {
			return false
		}
	}
	if !cardsEqual(b.foundations, other.foundations) {
		return false
	}
	for i := range b.freeCells {
		if !optionalEqual(b.freeCells[i], other.freeCells[i]) {
			return false
		}
	}
	if !optionalEqual(b.floating, other.floating) {
		return false
	}
	if (b.floatingStack == nil) != (other.floatingStack == nil) {
		return false
	}
	return cardsEqual(b.floatingStack, other.floatingStack)
}

func cardsEqual(a, b []card.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func optionalEqual(a, b *card.Card) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// HasFloating reports whether the board is mid-move (holding cards)
func (b *Board) HasFloating() bool {
	return b.floating != nil || b.floatingStack != nil
}

// PickUpCard picks up a single card from addr into the floating slot.
// Foundations are a one-way sink: picking up from one always fails.
func (b *Board) PickUpCard(addr card.Address) (*Board, error) {
	if b.HasFloating() {
		return nil, &CannotPickUpError{From: addr, Reason: ReasonAlreadyHolding}
	}
	switch addr.Kind {
	case card.KindColumn:
		if addr.Index < 0 || addr.Index >= len(b.columns) {
			return nil, &IllegalAddressError{Address: addr}
		}
		if len(b.columns[addr.Index]) == 0 {
			return nil, &CannotPickUpError{From: addr, Reason: ReasonEmptyAddress}
		}
		result := b.clone()
		column := result.columns[addr.Index]
		c := column[len(column)-1]
		result.columns[addr.Index] = column[:len(column)-1]
		result.floating = &c
		return result, nil

	case card.KindFoundation:
		return nil, &CannotPickUpError{From: addr, Reason: ReasonMoveOffFoundation}

	case card.KindFreeCell:
		if addr.Index < 0 || addr.Index >= len(b.freeCells) {
			return nil, &IllegalAddressError{Address: addr}
		}
		if b.freeCells[addr.Index] == nil {
			return nil, &CannotPickUpError{From: addr, Reason: ReasonEmptyAddress}
		}
		result := b.clone()
		result.floating = result.freeCells[addr.Index]
		result.freeCells[addr.Index] = nil
		return result, nil

	default:
		return nil, &IllegalAddressError{Address: addr}
	}
}

// PickUpStack picks up a run of n cards from the top of a column as the
// floating stack. The run must be a legal descending alternating-colour
// sequence, and n may not exceed one more than the number of empty free
// cells (the classic super-move bound).
func (b *Board) PickUpStack(addr card.Address, n int) (*Board, error) {
	if addr.Kind != card.KindColumn {
		return nil, &CannotPickUpError{From: addr, Reason: ReasonOnlyFromColumn}
	}
	if b.HasFloating() {
		return nil, &CannotPickUpError{From: addr, Reason: ReasonAlreadyHolding}
	}
	switch {
	case n <= 0:
		return nil, &CannotPickUpError{From: addr, Reason: ReasonEmptyStack}
	case n == 1:
		return b.PickUpCard(addr)
	}

	if addr.Index < 0 || addr.Index >= len(b.columns) {
		return nil, &IllegalAddressError{Address: addr}
	}
	column := b.columns[addr.Index]
	if n > len(column) {
		return nil, &CannotPickUpError{From: addr, Reason: ReasonStackLargerThanColumn}
	}
	if n > b.maxStackSize() {
		return nil, &CannotPickUpError{From: addr, Reason: ReasonStackTooLarge}
	}
	// walk the run from the top card down, checking each pair
	for i := len(column) - 1; i > len(column)-n; i-- {
		if !column[i].StacksOn(column[i-1]) {
			return nil, &CannotPickUpError{From: addr, Reason: ReasonUnsoundStack}
		}
	}

	result := b.clone()
	split := len(column) - n
	result.floatingStack = append([]card.Card(nil), result.columns[addr.Index][split:]...)
	result.columns[addr.Index] = result.columns[addr.Index][:split]
	return result, nil
}

// Place puts the held card or stack down at addr. A stack can only go back
// to a column; foundations and free cells take single cards only.
func (b *Board) Place(addr card.Address) (*Board, error) {
	switch addr.Kind {
	case card.KindColumn:
		if addr.Index < 0 || addr.Index >= len(b.columns) {
			return nil, &IllegalAddressError{Address: addr}
		}
		column := b.columns[addr.Index]
		switch {
		case b.floating != nil:
			if len(column) != 0 && !b.floating.StacksOn(column[len(column)-1]) {
				return nil, &CannotPlaceError{To: addr, Reason: ReasonDoesNotFit}
			}
			result := b.clone()
			result.columns[addr.Index] = append(result.columns[addr.Index], *result.floating)
			result.floating = nil
			return result, nil
		case b.floatingStack != nil:
			if len(column) != 0 && !b.floatingStack[0].StacksOn(column[len(column)-1]) {
				return nil, &CannotPlaceError{To: addr, Reason: ReasonDoesNotFit}
			}
			result := b.clone()
			result.columns[addr.Index] = append(result.columns[addr.Index], result.floatingStack...)
			result.floatingStack = nil
			return result, nil
		default:
			return nil, &CannotPlaceError{To: addr, Reason: ReasonNoCardsHeld}
		}

	case card.KindFoundation:
		index := addr.Suit.Index()
		if index < 0 || index >= len(b.foundations) {
			return nil, &IllegalAddressError{Address: addr}
		}
		if b.floating == nil {
			if b.floatingStack != nil {
				return nil, &CannotPlaceError{To: addr, Reason: ReasonDoesNotFit}
			}
			return nil, &CannotPlaceError{To: addr, Reason: ReasonNoCardsHeld}
		}
		if !b.floating.FitsOnFoundation(b.foundations[index]) {
			return nil, &CannotPlaceError{To: addr, Reason: ReasonDoesNotFit}
		}
		result := b.clone()
		result.foundations[index] = *result.floating
		result.floating = nil
		return result, nil

	case card.KindFreeCell:
		if addr.Index < 0 || addr.Index >= len(b.freeCells) {
			return nil, &IllegalAddressError{Address: addr}
		}
		if b.freeCells[addr.Index] != nil {
			return nil, &CannotPlaceError{To: addr, Reason: ReasonDoesNotFit}
		}
		if b.floating == nil {
			if b.floatingStack != nil {
				return nil, &CannotPlaceError{To: addr, Reason: ReasonDoesNotFit}
			}
			return nil, &CannotPlaceError{To: addr, Reason: ReasonNoCardsHeld}
		}
		result := b.clone()
		result.freeCells[addr.Index] = result.floating
		result.floating = nil
		return result, nil

	default:
		return nil, &IllegalAddressError{Address: addr}
	}
}

// maxStackSize is the largest run the player may pick up at once:
// one card plus one per empty free cell.
func (b *Board) maxStackSize() int {
	n := 1
	for _, cell := range b.freeCells {
		if cell == nil {
			n++
		}
	}
	return n
}

// fromColumns builds a board with the given tableau and everything else
// empty. Test scaffolding.
func fromColumns(columns [][]card.Card) *Board {
	b := empty()
	b.columns = columns
	return b
}
