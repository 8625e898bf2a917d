package product

import "givemarket-backend/internal/domain/shared"

type Action string

const (
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

type transitionKey struct {
	From Status
	Act  Action
}

// transitions is the complete approval state machine. An (state, action)
// pair absent from the table is an invalid transition.
var transitions = map[transitionKey]Status{
	{StatusDraft, ActionSubmit}:    StatusPending,
	{StatusRejected, ActionSubmit}: StatusPending,
	{StatusPending, ActionApprove}: StatusApproved,
	{StatusPending, ActionReject}:  StatusRejected,
}

// Next resolves the state an action leads to from the current state.
func Next(current Status, act Action) (Status, error) {
	next, ok := transitions[transitionKey{current, act}]
	if !ok {
		return current, shared.ErrInvalidTransition.WithMessage(
			"cannot %s a product in state %q", act, current)
	}
	return next, nil
}

// CanSoftDelete: sellers may only remove products that never cleared review.
func CanSoftDelete(current Status) bool {
	return current == StatusDraft || current == StatusRejected
}
