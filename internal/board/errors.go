package board

import (
	"fmt"

	"github.com/FBemf/freecell/internal/card"
)

// Reason explains why a pick-up or placement was rejected. Reasons are
// user-facing; the interface shows them verbatim as status text.
type Reason string

const (
	ReasonAlreadyHolding        Reason = "already holding cards"
	ReasonEmptyAddress          Reason = "empty address"
	ReasonMoveOffFoundation     Reason = "cannot move off foundation"
	ReasonEmptyStack            Reason = "cannot pick up zero-card stack"
	ReasonUnsoundStack          Reason = "cards in stack don't stack"
	ReasonStackTooLarge         Reason = "cannot pick up that many cards at once"
	ReasonStackLargerThanColumn Reason = "there are not that many cards in that column"
	ReasonOnlyFromColumn        Reason = "cannot pick up a stack from anywhere except a column"
	ReasonDoesNotFit            Reason = "those cards do not fit there"
	ReasonNoCardsHeld           Reason = "cannot place cards when not holding cards"
)

// CannotPickUpError reports a pick-up that would violate a rule or invariant
type CannotPickUpError struct {
	From   card.Address
	Reason Reason
}

func (e *CannotPickUpError) Error() string {
	return fmt.Sprintf("cannot pick up cards from %s: %s", e.From, e.Reason)
}

// CannotPlaceError reports a placement that would violate a rule
type CannotPlaceError struct {
	To     card.Address
	Reason Reason
}

func (e *CannotPlaceError) Error() string {
	return fmt.Sprintf("cannot move current cards to %s: %s", e.To, e.Reason)
}

// IllegalAddressError reports an address that does not exist on the board
type IllegalAddressError struct {
	Address card.Address
}

func (e *IllegalAddressError) Error() string {
	return fmt.Sprintf("address %s does not exist on the board", e.Address)
}
