package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	conflicts = []error{
		order.ErrNotReady,
		order.ErrAlreadyFinal,
		order.ErrNoJourney,
		order.ErrDuplicateReturn,
		order.ErrAlreadyApproved,
		product.ErrInsufficientStock,
		services.ErrNoAvailableAgent,
		errs.ErrVersionIsInvalid,
	}
	unprocessable = []error{
		order.ErrMissingCity,
		order.ErrNoLocalStation,
		services.ErrNoFulfillmentCenter,
	}
	invalid = []error{
		errs.ErrValueIsRequired,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
	}
)

// statusOf maps an error to a response code. Business rule violations are checked
// before the generic kinds they are wrapped in.
func statusOf(err error) int {
	switch {
	case isAny(err, conflicts):
		return http.StatusConflict
	case isAny(err, unprocessable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case isAny(err, invalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// errorHandler renders errors returned by route handlers. Internal errors are logged
// and answered with an opaque message.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			code    int
			message string
			he      *echo.HTTPError
		)
		if errors.As(err, &he) {
			code = he.Code
			message = http.StatusText(code)
			if m, ok := he.Message.(string); ok {
				message = m
			}
		} else {
			code = statusOf(err)
			message = err.Error()
		}

		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err))
			message = http.StatusText(code)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, ErrorResponse{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.Warn("failed to write error response", zap.Error(writeErr))
		}
	}
}
