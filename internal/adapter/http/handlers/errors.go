package handlers

import (
	"errors"
	"net/http"
	"orders_dashboard/internal/usecase"
	"orders_dashboard/pkg"
)

// mapDashboardError converts use-case failures into the HTTP error body.
// Query failures expose the upstream message as-is; an *AppError already in
// the chain is passed through.
func mapDashboardError(err error) *pkg.AppError {
	if appErr, ok := pkg.IsAppError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrQueryFailure):
		return pkg.NewDomainError("QUERY_FAILURE", err.Error(), err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvalidSnapshotLimit):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "limit must be between 1 and 100", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSnapshotsNotConfigured):
		return pkg.NewDomainError("SNAPSHOTS_NOT_CONFIGURED", "Metrics snapshots are not configured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
