package http

import (
	"errors"
	"net/http"

	"deliveryfee/internal/core/domain/services"
	"deliveryfee/internal/core/ports"
	"deliveryfee/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const missingDestinationMessage = "cannot compute: address missing"

// statusFor maps use case errors to HTTP status codes. Engine errors are checked
// first because they wrap validation sentinels.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingDestination),
		errors.Is(err, services.ErrUnsupportedPricingCase):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrFeeComputationFailed):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, ports.ErrOrderAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	switch {
	case errors.Is(err, services.ErrMissingDestination):
		message = missingDestinationMessage
	case status == http.StatusInternalServerError:
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
