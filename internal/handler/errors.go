package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/errs"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/notice"
)

// httpError turns an action error into the response status and the same
// text the action showed as a notice.
func httpError(err error, fallback string) *echo.HTTPError {
	msg := notice.Error(errs.Message(errors.Cause(err), fallback)).Text

	var apiErr *errs.APIError
	var tErr *errs.TransportError
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, msg)
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, msg)
	case errors.Is(err, errs.ErrMissingISBN),
		errors.Is(err, errs.ErrMissingBookID),
		errors.Is(err, errs.ErrMissingReturnID),
		errors.Is(err, errs.ErrMissingBook),
		errors.Is(err, errs.ErrRequiredFields):
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	case errors.Is(err, errs.ErrNoActiveLoan):
		return echo.NewHTTPError(http.StatusNotFound, msg)
	case errors.Is(err, errs.ErrNoLoanID):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, msg)
	case errors.Is(err, errs.ErrViewClosed):
		return echo.NewHTTPError(http.StatusRequestTimeout, msg)
	case errors.As(err, &apiErr):
		return echo.NewHTTPError(apiErr.Status, msg)
	case errors.As(err, &tErr):
		return echo.NewHTTPError(http.StatusBadGateway, msg)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, msg)
	}
}
