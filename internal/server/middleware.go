package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/team-chat/internal/models"
)

// errorHandler translates domain errors into HTTP responses: unknown ids
// are 404s, missing or malformed fields are 400s, everything else is a 500.
func errorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			c.Logger().Error(err)
		case models.IsNotFound(err):
			he = echo.NewHTTPError(http.StatusNotFound, err.Error())
		case models.IsValidation(err):
			he = echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			he = &echo.HTTPError{
				Code:    http.StatusInternalServerError,
				Message: http.StatusText(http.StatusInternalServerError),
			}
		}

		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead {
				err = c.NoContent(he.Code)
			} else {
				err = c.JSON(he.Code, he)
			}
			if err != nil {
				c.Logger().Error(err)
			}
		}
	}
}
