package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allCards() []Card {
	cards := make([]Card, 0, 52)
	for s := 0; s < NumSuits; s++ {
		suit, _ := SuitFromIndex(s)
		for rank := 1; rank <= 13; rank++ {
			cards = append(cards, New(rank, suit))
		}
	}
	return cards
}

func TestStacksOnAllPairs(t *testing.T) {
	t.Parallel()
	// a stacks on b iff colours differ and b is exactly one rank higher,
	// checked exhaustively including self-pairs
	for _, a := range allCards() {
		for _, b := range allCards() {
			want := a.Suit.Colour() != b.Suit.Colour() && b.Rank == a.Rank+1
			assert.Equal(t, want, a.StacksOn(b), "%s on %s", a, b)
		}
	}
}

func TestFitsOnFoundation(t *testing.T) {
	t.Parallel()
	assert.True(t, New(1, Hearts).FitsOnFoundation(New(0, Hearts)), "ace on empty foundation")
	assert.True(t, New(7, Spades).FitsOnFoundation(New(6, Spades)))
	assert.False(t, New(7, Spades).FitsOnFoundation(New(6, Clubs)), "wrong suit")
	assert.False(t, New(8, Spades).FitsOnFoundation(New(6, Spades)), "skipped rank")
	assert.False(t, New(6, Spades).FitsOnFoundation(New(6, Spades)), "same rank")
	assert.False(t, New(5, Spades).FitsOnFoundation(New(6, Spades)), "descending")
}

func TestColours(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Black, Clubs.Colour())
	assert.Equal(t, Red, Diamonds.Colour())
	assert.Equal(t, Red, Hearts.Colour())
	assert.Equal(t, Black, Spades.Colour())
}

func TestSuitIndexRoundTrip(t *testing.T) {
	t.Parallel()
	for i := 0; i < NumSuits; i++ {
		suit, ok := SuitFromIndex(i)
		assert.True(t, ok)
		assert.Equal(t, i, suit.Index())
	}
	_, ok := SuitFromIndex(NumSuits)
	assert.False(t, ok)
	_, ok = SuitFromIndex(-1)
	assert.False(t, ok)
}

func TestStrings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Q♥", New(12, Hearts).String())
	assert.Equal(t, "A♠", New(1, Spades).String())
	assert.Equal(t, "10♣", New(10, Clubs).String())
	assert.Equal(t, "_", New(0, Diamonds).String(), "sentinel renders blank")

	assert.Equal(t, "column 3", Column(3).String())
	assert.Equal(t, "foundation hearts", Foundation(Hearts).String())
	assert.Equal(t, "free cell 1", FreeCell(1).String())
}
