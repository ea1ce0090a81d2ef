package http

import (
	"errors"
	"net/http"

	"planner/internal/core/domain/model/order"
	"planner/internal/core/domain/model/truck"
	"planner/internal/core/domain/services"
	"planner/internal/core/ports"
	"planner/internal/generated/servers"
	"planner/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var conflictErrors = []error{
	services.ErrInsufficientContiguousSpace,
	truck.ErrInvalidShapeChange,
	truck.ErrSlotIsEmpty,
	truck.ErrSlotIsOccupied,
	truck.ErrSlotIsDisabled,
	truck.ErrRowCapacityExceeded,
	truck.ErrTripIsNotEmpty,
	truck.ErrLastTrip,
	order.ErrOrderAlreadyPlaced,
	order.ErrSlotNotHeld,
	ports.ErrDuplicateOrderCode,
}

var notFoundErrors = []error{
	errs.ErrObjectNotFound,
	truck.ErrTripNotFound,
	services.ErrOrderNotFound,
}

var validationErrors = []error{
	errs.ErrValueIsInvalid,
	errs.ErrValueIsRequired,
	errs.ErrValueIsOutOfRange,
}

// statusFor maps use case errors to HTTP status codes. Not found wins over
// conflict, conflict over validation; anything unknown is a server error.
func statusFor(err error) int {
	switch {
	case isAny(err, notFoundErrors):
		return http.StatusNotFound
	case isAny(err, conflictErrors):
		return http.StatusConflict
	case isAny(err, validationErrors):
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

func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}
	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}
