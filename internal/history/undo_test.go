package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FBemf/freecell/internal/board"
	"github.com/FBemf/freecell/internal/card"
)

func boardFromColumns(t *testing.T, columns ...[]card.Card) *board.Board {
	t.Helper()
	foundations := make([]card.Card, card.NumSuits)
	for i := range foundations {
		suit, _ := card.SuitFromIndex(i)
		foundations[i] = card.New(0, suit)
	}
	b, err := board.FromState(board.State{
		Columns:     columns,
		Foundations: foundations,
		FreeCells:   make([]*card.Card, 4),
	})
	require.NoError(t, err)
	return b
}

func testBoard(t *testing.T) *board.Board {
	t.Helper()
	return boardFromColumns(t,
		[]card.Card{
			card.New(5, card.Clubs),
			card.New(4, card.Diamonds),
			card.New(3, card.Clubs),
			card.New(2, card.Diamonds),
			card.New(1, card.Clubs),
		},
		nil,
		nil,
	)
}

// moveCard runs a full pick-up-then-place through the stack, the way the
// interface does it.
func moveCard(t *testing.T, u *UndoStack, b *board.Board, from, to card.Address) *board.Board {
	t.Helper()
	picked, err := b.PickUpCard(from)
	require.NoError(t, err)
	b = u.Update(b, picked)
	placed, err := b.Place(to)
	require.NoError(t, err)
	return u.Update(b, placed)
}

func TestUndoRedo(t *testing.T) {
	t.Parallel()
	game := testBoard(t)
	undo := New()

	// basic undo
	before := game
	game = moveCard(t, undo, game, card.Column(0), card.Column(1))
	after := game
	depthAfterMove := undo.Depth()
	game = undo.Undo(game)
	assert.True(t, game.Equal(before))

	// automatic redo
	game = undo.Redo(game)
	assert.True(t, game.Equal(after))

	// manual redo: replaying the undone move consumes the redo entry
	// instead of growing history
	game = undo.Undo(game)
	game = moveCard(t, undo, game, card.Column(0), card.Column(1))
	assert.True(t, game.Equal(after))
	assert.Equal(t, depthAfterMove, undo.Depth())

	// pick up and put back: the floating intermediate collapses away
	game = moveCard(t, undo, game, card.Column(0), card.Column(0))
	assert.True(t, game.Equal(after))
	assert.Equal(t, depthAfterMove, undo.Depth())

	// a single undo absorbs a trailing sneak move
	game = moveCard(t, undo, game, card.Column(0), card.Column(2))
	auto, ok := game.AutoMoveToFoundations()
	require.True(t, ok)
	game = undo.SneakUpdate(game, auto)
	game = undo.Undo(game)
	assert.True(t, game.Equal(after))
}

func TestUpdateSuppressesNoOps(t *testing.T) {
	t.Parallel()
	game := testBoard(t)
	undo := New()

	got := undo.Update(game, game)
	assert.Same(t, game, got)
	assert.Equal(t, 0, undo.Depth())
}

func TestUndoAtStartOfHistoryIsANoOp(t *testing.T) {
	t.Parallel()
	game := testBoard(t)
	undo := New()

	got := undo.Undo(game)
	assert.True(t, got.Equal(game))

	// and the parked state isn't left on the redo stack as a phantom redo
	got = undo.Redo(got)
	assert.True(t, got.Equal(game))
}

func TestRedoWithNothingUndoneIsANoOp(t *testing.T) {
	t.Parallel()
	game := testBoard(t)
	undo := New()

	got := undo.Redo(game)
	assert.True(t, got.Equal(game))
}

func TestNewMoveAbandonsRedoBranch(t *testing.T) {
	t.Parallel()
	game := testBoard(t)
	undo := New()

	game = moveCard(t, undo, game, card.Column(0), card.Column(1))
	afterFirst := game
	game = moveCard(t, undo, game, card.Column(0), card.Column(2))

	game = undo.Undo(game)
	require.True(t, game.Equal(afterFirst))

	// a different move clears the redo stack
	game = moveCard(t, undo, game, card.Column(1), card.Column(2))
	divergent := game
	game = undo.Redo(game)
	assert.True(t, game.Equal(divergent), "the abandoned branch must not resurrect")
}

func TestUndoSkipsConsecutiveSneaks(t *testing.T) {
	t.Parallel()
	game := boardFromColumns(t,
		[]card.Card{
			card.New(3, card.Clubs),
			card.New(2, card.Clubs),
			card.New(1, card.Clubs),
		},
		nil,
	)
	undo := New()

	before := game
	game = moveCard(t, undo, game, card.Column(0), card.Column(1))

	// let the auto-mover drain the low clubs as sneak entries
	for {
		next, ok := game.AutoMoveToFoundations()
		if !ok {
			break
		}
		game = undo.SneakUpdate(game, next)
	}
	require.Equal(t, 2, game.View().Foundations[card.Clubs.Index()].Rank)

	// one undo steps over every sneak entry back past the manual move
	game = undo.Undo(game)
	assert.True(t, game.Equal(before))
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()
	game := testBoard(t)
	undo := New()

	game = moveCard(t, undo, game, card.Column(0), card.Column(1))
	auto, ok := game.AutoMoveToFoundations()
	require.True(t, ok)
	game = undo.SneakUpdate(game, auto)
	game = undo.Undo(game)

	restored, err := FromSnapshot(undo.Snapshot())
	require.NoError(t, err)

	// identical behaviour from the restored stack
	a := undo.Redo(game)
	b := restored.Redo(game)
	assert.True(t, a.Equal(b))
	assert.Equal(t, undo.Depth(), restored.Depth())
}
