package http

import (
	"errors"
	"net/http"

	"lendcore-backend/internal/domain/client"
	"lendcore-backend/internal/domain/funding"
	"lendcore-backend/internal/domain/loan"
	"lendcore-backend/internal/domain/schedule"
	clientuc "lendcore-backend/internal/usecase/client"
	fundinguc "lendcore-backend/internal/usecase/funding"
	"lendcore-backend/internal/usecase/lifecycle"
	loanuc "lendcore-backend/internal/usecase/loan"
)

// errorStatus maps domain errors onto HTTP codes. Conflicts (illegal
// transition, lost compare-and-swap) are 409 so callers know to re-read;
// blocked preconditions and uncomputable terms are 422.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, client.ErrNotFound),
		errors.Is(err, funding.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrInvalidTransition),
		errors.Is(err, loan.ErrStatusConflict):
		return http.StatusConflict
	case errors.Is(err, funding.ErrNoFundingSource),
		errors.Is(err, funding.ErrInsufficientBalance),
		errors.Is(err, schedule.ErrNotComputable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, lifecycle.ErrNotConfirmed),
		errors.Is(err, lifecycle.ErrNoReason),
		errors.Is(err, loanuc.ErrInvalidInput),
		errors.Is(err, clientuc.ErrInvalidInput),
		errors.Is(err, fundinguc.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(err error) (int, ErrorResponse) {
	return errorStatus(err), ErrorResponse{Error: err.Error()}
}
