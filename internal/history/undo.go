// Package history implements the undo/redo stack for a deal. It records
// board snapshots for every accepted transition and keeps mid-move
// ("floating") intermediates and system-initiated auto-moves invisible to
// the player: one undo always lands on the previous settled, manual state.
//
// Every operation is total. Undoing at the start of history, or redoing with
// nothing undone, degrades to a no-op instead of failing.
package history

import "github.com/FBemf/freecell/internal/board"

// EntryKind tags how a history entry came to be
type EntryKind int

const (
	// Manual entries record player-initiated moves
	Manual EntryKind = iota
	// SystemInitiated entries record auto-moves; undo skips past them so a
	// single undo reverses the player's last manual move, not the automatic
	// cleanup that followed it.
	SystemInitiated
)

type entry struct {
	kind  EntryKind
	state *board.Board
}

// UndoStack holds the undo history and the redo history for one deal.
// The zero value is not usable; call New.
type UndoStack struct {
	history []entry
	redo    []*board.Board
}

// New creates an empty undo stack
func New() *UndoStack {
	return &UndoStack{}
}

// Update records a player-initiated transition from old to new and returns
// new unchanged. Rejected and ineffective moves (old == new) leave the stack
// untouched. When a move only shuffles through floating intermediates and
// lands back on a previously recorded settled state, the intervening entries
// are truncated instead of pushed, so pick-up-then-put-back never grows the
// history.
func (u *UndoStack) Update(old, new *board.Board) *board.Board {
	if old.Equal(new) {
		return new
	}

	if old.HasFloating() {
		// walk back past floating intermediates; if the nearest settled
		// state is exactly new, jump back to it
		for n := len(u.history) - 1; n >= 0; n-- {
			prev := u.history[n].state
			if prev.HasFloating() {
				continue
			}
			if prev.Equal(new) {
				u.history = u.history[:n]
				return new
			}
			break
		}
	}

	u.history = append(u.history, entry{kind: Manual, state: old})
	u.noteRedo(new)
	return new
}

// SneakUpdate records a system-initiated transition. The bookkeeping matches
// Update, but the entry is tagged so that Undo pops straight through it.
func (u *UndoStack) SneakUpdate(old, new *board.Board) *board.Board {
	if n := len(u.history); n == 0 || !u.history[n-1].state.Equal(old) {
		u.history = append(u.history, entry{kind: SystemInitiated, state: old})
	}
	u.noteRedo(new)
	return new
}

// noteRedo keeps the redo stack coherent after a recorded move: manually
// replaying the undone move consumes it, anything else abandons the branch.
func (u *UndoStack) noteRedo(new *board.Board) {
	if n := len(u.redo); n > 0 {
		if u.redo[n-1].Equal(new) {
			u.redo = u.redo[:n-1]
		} else {
			u.redo = nil
		}
	}
}

// Undo returns the most recent settled manual state, absorbing any trailing
// system-initiated moves and floating intermediates in the same call. With
// nothing left to undo it returns current unchanged.
func (u *UndoStack) Undo(current *board.Board) *board.Board {
	u.redo = append(u.redo, current)
	for len(u.history) > 0 {
		top := u.history[len(u.history)-1]
		u.history = u.history[:len(u.history)-1]
		if top.kind == Manual && !top.state.HasFloating() {
			return top.state
		}
		u.redo = append(u.redo, top.state)
	}
	// nothing to undo; take back the state we just parked on the redo stack
	last := u.redo[len(u.redo)-1]
	u.redo = u.redo[:len(u.redo)-1]
	return last
}

// Redo reinstates the most recently undone settled state, or returns current
// unchanged if nothing has been undone.
func (u *UndoStack) Redo(current *board.Board) *board.Board {
	u.history = append(u.history, entry{kind: Manual, state: current})
	for len(u.redo) > 0 {
		top := u.redo[len(u.redo)-1]
		u.redo = u.redo[:len(u.redo)-1]
		if !top.HasFloating() {
			return top
		}
		u.history = append(u.history, entry{kind: Manual, state: top})
	}
	last := u.history[len(u.history)-1]
	u.history = u.history[:len(u.history)-1]
	return last.state
}

// Depth returns the number of recorded undo entries. Display-only.
func (u *UndoStack) Depth() int {
	return len(u.history)
}
