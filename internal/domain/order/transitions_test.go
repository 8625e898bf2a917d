package order

import (
	"errors"
	"testing"

	"givemarket-backend/internal/domain/shared"
)

func TestNext_ValidEdges(t *testing.T) {
	cases := []struct {
		from Status
		act  Action
		want Status
	}{
		{StatusPending, ActionShip, StatusShipped},
		{StatusPending, ActionComplete, StatusCompleted},
		{StatusShipped, ActionComplete, StatusCompleted},
		{StatusPending, ActionCancel, StatusCancelled},
	}
	for _, c := range cases {
		got, err := Next(c.from, c.act)
		if err != nil {
			t.Fatalf("Next(%s, %s): unexpected error %v", c.from, c.act, err)
		}
		if got != c.want {
			t.Fatalf("Next(%s, %s) = %s, want %s", c.from, c.act, got, c.want)
		}
	}
}

func TestNext_InvalidEdges(t *testing.T) {
	cases := []struct {
		from Status
		act  Action
	}{
		{StatusShipped, ActionCancel},   // shipped orders cannot be cancelled
		{StatusShipped, ActionShip},
		{StatusCompleted, ActionShip},   // completed is terminal
		{StatusCompleted, ActionCancel},
		{StatusCancelled, ActionShip},   // cancelled is terminal
		{StatusCancelled, ActionComplete},
	}
	for _, c := range cases {
		if _, err := Next(c.from, c.act); !errors.Is(err, shared.ErrInvalidTransition) {
			t.Fatalf("Next(%s, %s): error = %v, want ErrInvalidTransition", c.from, c.act, err)
		}
	}
}

func TestCancellable(t *testing.T) {
	if err := Cancellable(StatusPending, PaymentUnpaid); err != nil {
		t.Fatalf("pending+unpaid should be cancellable: %v", err)
	}
	if err := Cancellable(StatusPending, PaymentFailed); err != nil {
		t.Fatalf("pending+failed payment should be cancellable: %v", err)
	}

	// payment guard wins even in pending
	if err := Cancellable(StatusPending, PaymentPaid); !errors.Is(err, shared.ErrInvalidTransition) {
		t.Fatalf("paid order must not be cancellable, got %v", err)
	}
	// state guard
	if err := Cancellable(StatusShipped, PaymentUnpaid); !errors.Is(err, shared.ErrInvalidTransition) {
		t.Fatalf("shipped order must not be cancellable, got %v", err)
	}
	if err := Cancellable(StatusCompleted, PaymentUnpaid); !errors.Is(err, shared.ErrInvalidTransition) {
		t.Fatalf("completed order must not be cancellable, got %v", err)
	}
}
