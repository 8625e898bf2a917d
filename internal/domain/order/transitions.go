package order

import "givemarket-backend/internal/domain/shared"

type Action string

const (
	ActionShip     Action = "ship"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

type transitionKey struct {
	From Status
	Act  Action
}

var transitions = map[transitionKey]Status{
	{StatusPending, ActionShip}:     StatusShipped,
	{StatusPending, ActionComplete}: StatusCompleted,
	{StatusShipped, ActionComplete}: StatusCompleted,
	{StatusPending, ActionCancel}:   StatusCancelled,
}

func Next(current Status, act Action) (Status, error) {
	next, ok := transitions[transitionKey{current, act}]
	if !ok {
		return current, shared.ErrInvalidTransition.WithMessage(
			"cannot %s an order in state %q", act, current)
	}
	return next, nil
}

// Cancellable guards the cancel edge: the cancel transition exists only from
// pending, and never once payment has been taken.
func Cancellable(status Status, payment PaymentStatus) error {
	if payment == PaymentPaid {
		return shared.ErrInvalidTransition.WithMessage("cannot cancel a paid order")
	}
	_, err := Next(status, ActionCancel)
	return err
}
