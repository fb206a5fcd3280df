// Package savegame round-trips the persistence triple (seed, board state,
// undo history) to and from JSON save files. A game saved while the player
// is holding cards reloads still holding them.
package savegame

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FBemf/freecell/internal/board"
	"github.com/FBemf/freecell/internal/fileutil"
	"github.com/FBemf/freecell/internal/history"
)

type saveFile struct {
	Seed    uint64           `json:"seed"`
	Board   board.State      `json:"board"`
	History history.Snapshot `json:"history"`
}

// Save writes the triple to path atomically
func Save(path string, seed uint64, b *board.Board, undo *history.UndoStack) error {
	data, err := json.Marshal(saveFile{
		Seed:    seed,
		Board:   b.State(),
		History: undo.Snapshot(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	return nil
}

// SaveNew writes the triple to the first unused numbered filename
// (prefix0, prefix1, ...) under dir, and returns the path it chose.
func SaveNew(dir, prefix string, seed uint64, b *board.Board, undo *history.UndoStack) (string, error) {
	for n := 0; ; n++ {
		path := filepath.Join(dir, fmt.Sprintf("%s%d", prefix, n))
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to probe %s: %w", path, err)
		}
		return path, Save(path, seed, b, undo)
	}
}

// Load reads a save file and reconstructs the board and history exactly as
// they were saved.
func Load(path string) (uint64, *board.Board, *history.UndoStack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to read save: %w", err)
	}
	var sf saveFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return 0, nil, nil, fmt.Errorf("failed to decode save: %w", err)
	}
	b, err := board.FromState(sf.Board)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("invalid board in save: %w", err)
	}
	undo, err := history.FromSnapshot(sf.History)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("invalid history in save: %w", err)
	}
	return sf.Seed, b, undo, nil
}
