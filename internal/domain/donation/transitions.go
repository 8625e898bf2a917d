package donation

import "givemarket-backend/internal/domain/shared"

type transitionKey struct {
	From Status
	To   Status
}

// transitions: a donation leaves pending exactly once. completed and failed
// are terminal, which is what protects the balance aggregate from being
// applied twice.
var transitions = map[transitionKey]struct{}{
	{StatusPending, StatusCompleted}: {},
	{StatusPending, StatusFailed}:    {},
}

func ValidateTransition(from, to Status) error {
	if _, ok := transitions[transitionKey{from, to}]; !ok {
		return shared.ErrInvalidTransition.WithMessage(
			"cannot move a donation from %q to %q", from, to)
	}
	return nil
}
