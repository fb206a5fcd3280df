package tui

import (
	"fmt"
	"strconv"

	"github.com/FBemf/freecell/internal/board"
	"github.com/FBemf/freecell/internal/card"
)

// Command address notation: columns are 1-8, free cells are a-d, and a
// destination of "f" means the held card's own foundation. Columns are
// 1-based on screen and 0-based in the engine.

func parseSource(token string) (card.Address, error) {
	if addr, ok := parseCell(token); ok {
		return addr, nil
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 1 && n <= 8 {
		return card.Column(n - 1), nil
	}
	return card.Address{}, fmt.Errorf("bad source %q (1-8 or a-d)", token)
}

func parseDestination(token string, b *board.Board) (card.Address, error) {
	if token == "f" {
		suit, ok := heldSuit(b)
		if !ok {
			return card.Address{}, fmt.Errorf("only a single card can go to a foundation")
		}
		return card.Foundation(suit), nil
	}
	if addr, ok := parseCell(token); ok {
		return addr, nil
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 1 && n <= 8 {
		return card.Column(n - 1), nil
	}
	return card.Address{}, fmt.Errorf("bad destination %q (1-8, a-d, or f)", token)
}

func parseCell(token string) (card.Address, bool) {
	if len(token) == 1 && token[0] >= 'a' && token[0] <= 'd' {
		return card.FreeCell(int(token[0] - 'a')), true
	}
	return card.Address{}, false
}

// heldSuit returns the suit of the single held card, if exactly one card is
// held.
func heldSuit(b *board.Board) (card.Suit, bool) {
	floating := b.View().Floating
	if len(floating) != 1 {
		return 0, false
	}
	return floating[0].Suit, true
}

func parseSeed(token string) (uint64, error) {
	seed, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad seed %q", token)
	}
	return seed, nil
}
