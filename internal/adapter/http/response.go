package http

import (
	"errors"
	"net/http"

	"givemarket-backend/internal/domain/shared"

	"github.com/labstack/echo/v4"
)

// statusFor maps the stable domain error codes onto HTTP statuses.
var statusFor = map[string]int{
	"NOT_FOUND":          http.StatusNotFound,
	"INVALID_TRANSITION": http.StatusConflict,
	"NOT_AUTHORIZED":     http.StatusForbidden,
	"CONFLICT":           http.StatusConflict,
	"HAS_DEPENDENTS":     http.StatusConflict,
	"VALIDATION_ERROR":   http.StatusUnprocessableEntity,
	"INVALID_STATE":      http.StatusConflict,
}

type errorBody struct {
	Error *shared.DomainError `json:"error"`
}

// respondErr turns any error into the structured error envelope. Unknown
// errors become opaque 500s; the real cause stays in the server log.
func respondErr(c echo.Context, err error) error {
	var de *shared.DomainError
	if errors.As(err, &de) {
		status, ok := statusFor[de.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		return c.JSON(status, errorBody{Error: de})
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, errorBody{
		Error: shared.NewDomainError("INTERNAL", "internal server error"),
	})
}
