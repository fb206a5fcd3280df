package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/FBemf/freecell/internal/board"
	"github.com/FBemf/freecell/internal/card"
)

const cardWidth = 4

// renderBoard draws the free cells and foundations on one row, the tableau
// below it, and any held cards last.
func renderBoard(v board.View) string {
	var sb strings.Builder

	for i, cell := range v.FreeCells {
		if cell != nil {
			sb.WriteString(pad(styleCard(*cell)))
		} else {
			sb.WriteString(pad(EmptySlotStyle.Render(fmt.Sprintf("_%c", 'a'+i))))
		}
	}
	sb.WriteString("  ")
	for _, f := range v.Foundations {
		if f.Rank == 0 {
			sb.WriteString(pad(EmptySlotStyle.Render("_" + f.Suit.Glyph())))
		} else {
			sb.WriteString(pad(styleCard(f)))
		}
	}
	sb.WriteString("\n\n")

	header := ""
	for i := range v.Columns {
		header += pad(InfoStyle.Render(fmt.Sprintf(" %d", i+1)))
	}
	sb.WriteString(header)
	for row := 0; ; row++ {
		line := ""
		any := false
		for _, column := range v.Columns {
			if row < len(column) {
				line += pad(styleCard(column[row]))
				any = true
			} else {
				line += strings.Repeat(" ", cardWidth)
			}
		}
		if !any {
			break
		}
		sb.WriteString("\n")
		sb.WriteString(strings.TrimRight(line, " "))
	}
	sb.WriteString("\n")

	if v.Floating != nil {
		rendered := make([]string, len(v.Floating))
		for i, c := range v.Floating {
			rendered[i] = styleCard(c)
		}
		sb.WriteString("\n")
		sb.WriteString(FloatingStyle.Render("holding: "))
		sb.WriteString(strings.Join(rendered, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

func styleCard(c card.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// pad right-pads a rendered card to the column width, counting the card's
// visible width rather than the ANSI-styled string length.
func pad(rendered string) string {
	w := lipgloss.Width(rendered)
	if w >= cardWidth {
		return rendered + " "
	}
	return rendered + strings.Repeat(" ", cardWidth-w)
}
