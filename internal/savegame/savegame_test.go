package savegame

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FBemf/freecell/internal/board"
	"github.com/FBemf/freecell/internal/card"
	"github.com/FBemf/freecell/internal/history"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	seed := uint64(12345)
	b := board.NewDeal(seed)
	undo := history.New()

	// record a real move so the history has content
	picked, err := b.PickUpCard(card.Column(0))
	require.NoError(t, err)
	b = undo.Update(b, picked)
	placed, err := b.Place(card.FreeCell(0))
	require.NoError(t, err)
	b = undo.Update(b, placed)

	path := filepath.Join(t.TempDir(), "save")
	require.NoError(t, Save(path, seed, b, undo))

	loadedSeed, loadedBoard, loadedUndo, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, seed, loadedSeed)
	assert.True(t, b.Equal(loadedBoard))

	// the restored history undoes to the same place
	a := undo.Undo(b)
	l := loadedUndo.Undo(loadedBoard)
	assert.True(t, a.Equal(l))
}

func TestSaveLoadMidMove(t *testing.T) {
	t.Parallel()

	seed := uint64(777)
	b := board.NewDeal(seed)
	undo := history.New()

	picked, err := b.PickUpCard(card.Column(3))
	require.NoError(t, err)
	b = undo.Update(b, picked)
	require.True(t, b.HasFloating())

	path := filepath.Join(t.TempDir(), "save")
	require.NoError(t, Save(path, seed, b, undo))

	_, loadedBoard, _, err := Load(path)
	require.NoError(t, err)
	assert.True(t, loadedBoard.HasFloating(), "reload resumes mid-move")
	assert.True(t, b.Equal(loadedBoard))
}

func TestSaveNewPicksUnusedNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	b := board.NewDeal(1)
	undo := history.New()

	first, err := SaveNew(dir, "game_", 1, b, undo)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "game_0"), first)

	second, err := SaveNew(dir, "game_", 1, b, undo)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "game_1"), second)
}

func TestLoadRejectsGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "save")
	_, _, _, err := Load(path)
	assert.Error(t, err, "missing file")

	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, _, _, err = Load(path)
	assert.Error(t, err, "malformed file")
}
