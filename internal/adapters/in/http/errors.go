package http

import (
	"errors"
	"net/http"
	"strconv"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/partner"
	"grocery/internal/core/domain/model/trip"
	"grocery/internal/core/domain/services"
	"grocery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const defaultAuditLimit = 100

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, ErrorResponse{
		Code:    http.StatusConflict,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// commandError maps a command handler failure onto an HTTP status.
// Missing aggregates are 404, business rule rejections are 409,
// anything unrecognized is a 500.
func commandError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return notFound(ctx, err.Error())
	}

	// Invalid status transitions surface as value-is-invalid errors, so
	// they land in the conflict bucket alongside explicit business rules.
	switch {
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, order.ErrOrderAlreadyClaimed),
		errors.Is(err, order.ErrFulfillmentNotAllowed),
		errors.Is(err, partner.ErrPartnerIsOffShift),
		errors.Is(err, partner.ErrPartnerIsBusy),
		errors.Is(err, trip.ErrTripNotPendingConfirm),
		errors.Is(err, services.ErrRouteMismatch),
		errors.Is(err, services.ErrOrderNotPacked),
		errors.Is(err, services.ErrDuplicateOrder),
		errors.Is(err, commands.ErrInvalidReturnCode),
		errors.Is(err, commands.ErrTripNotOwnedByPartner),
		errors.Is(err, commands.ErrClaimConflict):
		return conflict(ctx, err.Error())
	}

	if errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return badRequest(ctx, err.Error())
	}

	return internalError(ctx, "Operation failed")
}

func parsePositiveInt(raw string) (int, error) {
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if parsed < 1 {
		return 0, strconv.ErrRange
	}
	return parsed, nil
}
