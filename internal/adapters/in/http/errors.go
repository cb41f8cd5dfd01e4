package http

import (
	"errors"
	"net/http"

	"zoneship/internal/core/domain/model/delivery"
	"zoneship/internal/core/domain/model/manager"
	"zoneship/internal/core/domain/model/tariff"
	"zoneship/internal/core/ports"
	"zoneship/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFromError maps domain errors to HTTP status codes:
//
//   - zone authorization failures          -> 403
//   - unknown objects, unconfigured rates  -> 404
//   - illegal transitions, lost CAS races  -> 409
//   - validation failures                  -> 400
//
// Anything unrecognized is a 500, since it indicates an infrastructure
// problem rather than a client mistake.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, manager.ErrZoneForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, tariff.ErrTariffNotConfigured):
		return http.StatusNotFound
	case errors.Is(err, delivery.ErrIllegalTransition),
		errors.Is(err, delivery.ErrDriverNotAssignable),
		errors.Is(err, ports.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
