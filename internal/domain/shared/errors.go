package shared

import "fmt"

// DomainError is a business-rule failure with a stable machine-readable code.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string { return e.Message }

// Is matches two domain errors by code, so errors.Is works on errors built
// with WithMessage.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// WithMessage keeps the code (so errors.Is still matches the sentinel) but
// replaces the message with operation-specific detail.
func (e *DomainError) WithMessage(format string, args ...any) *DomainError {
	return &DomainError{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "resource not found")
	ErrInvalidTransition = NewDomainError("INVALID_TRANSITION", "operation not allowed from current state")
	ErrNotAuthorized     = NewDomainError("NOT_AUTHORIZED", "not authorized to perform this action")
	ErrConflict          = NewDomainError("CONFLICT", "resource already exists")
	ErrHasDependents     = NewDomainError("HAS_DEPENDENTS", "resource is referenced by other records")
	ErrValidation        = NewDomainError("VALIDATION_ERROR", "invalid input")
	ErrInvalidState      = NewDomainError("INVALID_STATE", "resource is not in a state that allows this operation")
)
