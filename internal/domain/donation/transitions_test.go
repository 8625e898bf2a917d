package donation

import (
	"errors"
	"testing"

	"givemarket-backend/internal/domain/shared"
)

func TestValidateTransition_FromPending(t *testing.T) {
	if err := ValidateTransition(StatusPending, StatusCompleted); err != nil {
		t.Fatalf("pending→completed should be valid: %v", err)
	}
	if err := ValidateTransition(StatusPending, StatusFailed); err != nil {
		t.Fatalf("pending→failed should be valid: %v", err)
	}
}

func TestValidateTransition_TerminalStatesStayTerminal(t *testing.T) {
	cases := []struct{ from, to Status }{
		{StatusCompleted, StatusCompleted}, // double confirmation
		{StatusCompleted, StatusFailed},
		{StatusCompleted, StatusPending},
		{StatusFailed, StatusCompleted},
		{StatusFailed, StatusFailed},
		{StatusFailed, StatusPending},
		{StatusPending, StatusPending}, // no self-loop either
	}
	for _, c := range cases {
		if err := ValidateTransition(c.from, c.to); !errors.Is(err, shared.ErrInvalidTransition) {
			t.Fatalf("%s→%s: error = %v, want ErrInvalidTransition", c.from, c.to, err)
		}
	}
}
