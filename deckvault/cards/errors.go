package cards

import "fmt"

// ValidationError reports a card reference that does not resolve against its
// catalog, or a type tag outside the closed set.
type ValidationError struct {
	CardType string
	CardID   string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.CardID == "" {
		return fmt.Sprintf("invalid card type %q: %s", e.CardType, e.Reason)
	}
	return fmt.Sprintf("invalid card %s/%s: %s", e.CardType, e.CardID, e.Reason)
}

// CardinalityError reports a violation of the one-per-deck rule.
type CardinalityError struct {
	CardType string
	CardID   string
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("card %s/%s is limited to one per deck", e.CardType, e.CardID)
}
