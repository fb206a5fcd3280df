package card

import "fmt"

// AddressKind discriminates the three kinds of board location
type AddressKind int

const (
	KindColumn AddressKind = iota
	KindFoundation
	KindFreeCell
)

// Address identifies a location on the board: a tableau column, a suit
// foundation, or a free cell. It is a comparable value type so it can be
// used as move input, map key, and error context alike.
type Address struct {
	Kind  AddressKind `json:"kind"`
	Index int         `json:"index,omitempty"`
	Suit  Suit        `json:"suit,omitempty"`
}

// Column addresses tableau column i
func Column(i int) Address {
	return Address{Kind: KindColumn, Index: i}
}

// Foundation addresses the foundation pile for suit s
func Foundation(s Suit) Address {
	return Address{Kind: KindFoundation, Suit: s}
}

// FreeCell addresses free cell i
func FreeCell(i int) Address {
	return Address{Kind: KindFreeCell, Index: i}
}

// String renders the address for status text and error messages
func (a Address) String() string {
	switch a.Kind {
	case KindColumn:
		return fmt.Sprintf("column %d", a.Index)
	case KindFoundation:
		return fmt.Sprintf("foundation %s", a.Suit)
	case KindFreeCell:
		return fmt.Sprintf("free cell %d", a.Index)
	default:
		return "unknown address"
	}
}
