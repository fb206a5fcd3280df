package history

import "github.com/FBemf/freecell/internal/board"

// Snapshot is the serializable form of an UndoStack, part of the
// (seed, board, history) persistence triple.
type Snapshot struct {
	History []EntrySnapshot `json:"history"`
	Redo    []board.State   `json:"redo"`
}

// EntrySnapshot serializes one undo entry
type EntrySnapshot struct {
	Sneak bool        `json:"sneak"`
	State board.State `json:"state"`
}

// Snapshot captures the stack for serialization
func (u *UndoStack) Snapshot() Snapshot {
	s := Snapshot{
		History: make([]EntrySnapshot, 0, len(u.history)),
		Redo:    make([]board.State, 0, len(u.redo)),
	}
	for _, e := range u.history {
		s.History = append(s.History, EntrySnapshot{
			Sneak: e.kind == SystemInitiated,
			State: e.state.State(),
		})
	}
	for _, b := range u.redo {
		s.Redo = append(s.Redo, b.State())
	}
	return s
}

// FromSnapshot reconstructs an UndoStack from its serialized form
func FromSnapshot(s Snapshot) (*UndoStack, error) {
	u := New()
	for _, e := range s.History {
		b, err := board.FromState(e.State)
		if err != nil {
			return nil, err
		}
		kind := Manual
		if e.Sneak {
			kind = SystemInitiated
		}
		u.history = append(u.history, entry{kind: kind, state: b})
	}
	for _, st := range s.Redo {
		b, err := board.FromState(st)
		if err != nil {
			return nil, err
		}
		u.redo = append(u.redo, b)
	}
	return u, nil
}
