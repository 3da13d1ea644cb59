package httpapi

import (
	"errors"
	"net/http"

	"github.com/Anish2905/JobApplicantTracker/internal/common"
	"github.com/labstack/echo/v4"
)

// writeError maps service errors to the response statuses the clients
// expect. Not-found is deliberately identical for absent, tombstoned, and
// foreign records so ownership cannot be enumerated.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrMalformedRequest):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, common.ErrUsernameTaken):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username already taken"})
	case errors.Is(err, common.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	case errors.Is(err, common.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Not found"})
	case errors.Is(err, common.ErrStoreUnavailable):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "Database not ready, please try again"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
}
