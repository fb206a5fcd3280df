package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FBemf/freecell/internal/card"
)

func TestAutoMoveDrainsOnlySafeCards(t *testing.T) {
	t.Parallel()
	b := fromColumns([][]card.Card{
		{
			card.New(5, card.Spades),
			card.New(4, card.Spades),
			card.New(3, card.Spades),
			card.New(2, card.Spades),
			card.New(1, card.Spades),
		},
		{
			card.New(3, card.Clubs),
			card.New(4, card.Clubs),
			card.New(2, card.Clubs),
			card.New(1, card.Clubs),
		},
		{
			card.New(3, card.Diamonds),
			card.New(2, card.Diamonds),
			card.New(1, card.Diamonds),
			card.New(2, card.Hearts),
			card.New(1, card.Hearts),
		},
	})

	for {
		next, ok := b.AutoMoveToFoundations()
		if !ok {
			break
		}
		b = next
	}

	// drains until every further move could strand an opposite-colour card:
	// the black threes stay down because the red threes may still need them
	assert.Equal(t, []card.Card{
		card.New(2, card.Clubs),
		card.New(3, card.Diamonds),
		card.New(2, card.Hearts),
		card.New(4, card.Spades),
	}, b.View().Foundations)
}

func TestAutoMoveOneStepAtATime(t *testing.T) {
	t.Parallel()
	b := fromColumns([][]card.Card{
		{card.New(1, card.Clubs)},
		{card.New(1, card.Diamonds)},
	})

	next, ok := b.AutoMoveToFoundations()
	require.True(t, ok)
	// only the first qualifying column moved
	assert.Equal(t, 1, next.foundations[card.Clubs.Index()].Rank)
	assert.Equal(t, 0, next.foundations[card.Diamonds.Index()].Rank)

	next, ok = next.AutoMoveToFoundations()
	require.True(t, ok)
	assert.Equal(t, 1, next.foundations[card.Diamonds.Index()].Rank)

	_, ok = next.AutoMoveToFoundations()
	assert.False(t, ok, "nothing left to move")
}

func TestAutoMoveRefusesWhileHolding(t *testing.T) {
	t.Parallel()
	b := fromColumns([][]card.Card{
		{card.New(1, card.Clubs), card.New(5, card.Hearts)},
	})
	b, err := b.PickUpCard(card.Column(0))
	require.NoError(t, err)

	_, ok := b.AutoMoveToFoundations()
	assert.False(t, ok, "no auto-moves while the player is holding cards")
}

func TestAutoMoveRecursiveSafety(t *testing.T) {
	t.Parallel()
	// hearts can run up to 3 because both black twos are themselves
	// auto-movable even though they haven't reached the foundations yet
	b := fromColumns([][]card.Card{
		{card.New(3, card.Hearts)},
		{card.New(2, card.Spades), card.New(1, card.Spades)},
		{card.New(2, card.Clubs), card.New(1, card.Clubs)},
		{card.New(2, card.Hearts), card.New(1, card.Hearts)},
		{card.New(2, card.Diamonds), card.New(1, card.Diamonds)},
	})
	for {
		next, ok := b.AutoMoveToFoundations()
		if !ok {
			break
		}
		b = next
	}
	assert.Equal(t, 3, b.foundations[card.Hearts.Index()].Rank)
	assert.Equal(t, 2, b.foundations[card.Spades.Index()].Rank)
	assert.Equal(t, 2, b.foundations[card.Clubs.Index()].Rank)
	assert.Equal(t, 2, b.foundations[card.Diamonds.Index()].Rank)
}

func TestIsWon(t *testing.T) {
	t.Parallel()
	b := empty()
	for i := range b.foundations {
		suit, _ := card.SuitFromIndex(i)
		b.foundations[i] = card.New(13, suit)
	}
	assert.True(t, b.View().IsWon())

	b.foundations[card.Diamonds.Index()] = card.New(12, card.Diamonds)
	assert.False(t, b.View().IsWon(), "one foundation short of the king")

	assert.False(t, NewDeal(1).View().IsWon())
}
