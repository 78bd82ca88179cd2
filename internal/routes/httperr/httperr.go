package httperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
)

// JSON maps domain errors onto HTTP statuses. Domain validation errors are
// expected outcomes and are returned with their reason; anything unmapped is
// a storage failure, logged with context and surfaced as a 500.
func JSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, entity.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, entity.ErrAlreadySwiped):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "already swiped"})
	case errors.Is(err, entity.ErrInvalidOperation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid operation"})
	case errors.Is(err, entity.ErrInvalidArgument):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid argument"})
	case errors.Is(err, entity.ErrInsufficientFunds):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "insufficient funds"})
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request().Method,
			"path":   c.Request().URL.Path,
		}).Error("request failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
