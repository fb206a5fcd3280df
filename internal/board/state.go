package board

import (
	"fmt"

	"github.com/FBemf/freecell/internal/card"
)

// State is the serializable container for a board. It captures every field,
// floating cards and rank-0 foundation sentinels included, so that a game
// saved mid-move reloads mid-move. The JSON shape is the persistence
// contract shared with the savegame package.
type State struct {
	Columns       [][]card.Card `json:"columns"`
	Foundations   []card.Card   `json:"foundations"`
	FreeCells     []*card.Card  `json:"free_cells"`
	Floating      *card.Card    `json:"floating,omitempty"`
	FloatingStack []card.Card   `json:"floating_stack,omitempty"`
}

// State captures the board for serialization
func (b *Board) State() State {
	c := b.clone()
	return State{
		Columns:       c.columns,
		Foundations:   c.foundations,
		FreeCells:     c.freeCells,
		Floating:      c.floating,
		FloatingStack: c.floatingStack,
	}
}

// FromState reconstructs a board from a serialized State, validating the
// shape so a corrupt save file fails loudly instead of producing a board
// with missing slots.
func FromState(s State) (*Board, error) {
	if len(s.Foundations) != card.NumSuits {
		return nil, fmt.Errorf("save has %d foundations, want %d", len(s.Foundations), card.NumSuits)
	}
	if len(s.FreeCells) != numFreeCells {
		return nil, fmt.Errorf("save has %d free cells, want %d", len(s.FreeCells), numFreeCells)
	}
	if s.Floating != nil && s.FloatingStack != nil {
		return nil, fmt.Errorf("save holds both a floating card and a floating stack")
	}
	b := &Board{
		columns:       s.Columns,
		foundations:   s.Foundations,
		freeCells:     s.FreeCells,
		floating:      s.Floating,
		floatingStack: s.FloatingStack,
	}
	return b.clone(), nil
}
