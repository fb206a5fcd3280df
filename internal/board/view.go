package board

import (
	"strings"

	"github.com/FBemf/freecell/internal/card"
)

// View is the read-only projection of a board handed to renderers. It is a
// fully materialised copy: mutating it cannot affect the board it came from.
// A held single card and a held stack both surface as the Floating slice.
type View struct {
	Columns     [][]card.Card
	Foundations []card.Card
	FreeCells   []*card.Card
	Floating    []card.Card
}

// View produces the board's public projection
func (b *Board) View() View {
	v := View{
		Columns:     make([][]card.Card, len(b.columns)),
		Foundations: append([]card.Card(nil), b.foundations...),
		FreeCells:   make([]*card.Card, len(b.freeCells)),
	}
	for i, column := range b.columns {
		v.Columns[i] = append([]card.Card(nil), column...)
	}
	for i, cell := range b.freeCells {
		if cell != nil {
			c := *cell
			v.FreeCells[i] = &c
		}
	}
	if b.floating != nil {
		v.Floating = []card.Card{*b.floating}
	} else if b.floatingStack != nil {
		v.Floating = append([]card.Card(nil), b.floatingStack...)
	}
	return v
}

// IsWon reports whether every foundation has been built up to the king
func (v View) IsWon() bool {
	for _, f := range v.Foundations {
		if f.Rank != 13 {
			return false
		}
	}
	return true
}

// String lays the board out as plain text: free cells and foundations on the
// first row, then the columns row by row, then any held cards.
func (v View) String() string {
	var sb strings.Builder
	for _, cell := range v.FreeCells {
		if cell != nil {
			sb.WriteString(cell.String())
		} else {
			sb.WriteString("  ")
		}
		sb.WriteString(" ")
	}
	sb.WriteString("|")
	for _, f := range v.Foundations {
		sb.WriteString(" ")
		sb.WriteString(f.String())
	}
	sb.WriteString("\n")

	for row := 0; ; row++ {
		line := ""
		any := false
		for _, column := range v.Columns {
			if row < len(column) {
				line += column[row].String() + " "
				any = true
			} else {
				line += "   "
			}
		}
		if !any {
			break
		}
		sb.WriteString("\n")
		sb.WriteString(strings.TrimRight(line, " "))
	}

	if v.Floating != nil {
		sb.WriteString("\n-> ")
		for i, c := range v.Floating {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}
