package http

import (
	"errors"
	"net/http"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	"github.com/ScoutDevs/Rechartering/internal/domain/organization"
	"github.com/ScoutDevs/Rechartering/internal/domain/security"
	"github.com/labstack/echo/v4"
)

// writeError maps domain errors → HTTP codes. Anything unrecognised is a 500 and
// its text is not exposed.
func writeError(c echo.Context, err error) error {
	var invalid *entity.InvalidObjectError
	switch {
	case errors.As(err, &invalid):
		details := make([]FieldError, 0, len(invalid.Violations))
		for _, v := range invalid.Violations {
			details = append(details, FieldError{Field: invalid.Kind, Message: v})
		}
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid " + invalid.Kind, Details: details})
	case errors.Is(err, entity.ErrInvalidObject):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrInvalidAction):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, security.ErrInsufficientPermission):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, organization.ErrInvalidImportFile):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// bindAndValidate fills req from the body and runs the struct tags. It writes the
// 400/422 response itself and reports whether the handler may continue.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}
