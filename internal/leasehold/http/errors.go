package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/service"
	"github.com/aussiebroadwan/leasehold/pkg/httpx"
	"github.com/aussiebroadwan/leasehold/pkg/leasesdk"
	"github.com/aussiebroadwan/leasehold/pkg/slogx"
)

func writeErr(w http.ResponseWriter, code int, errCode, desc string) {
	httpx.WriteJSON(w, code, leasesdk.ErrorResponse{
		Error:            errCode,
		ErrorDescription: desc,
	})
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	writeErr(w, http.StatusBadRequest, leasesdk.ErrorCodeInvalidRequest, desc)
}

// writeServiceError maps a service error to its JSON response. Anything not
// recognised is logged and reported as server_error without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, leasesdk.ErrorResponse{
			Error:            leasesdk.ErrorCodeValidation,
			ErrorDescription: "One or more fields are invalid",
			Details:          verr.Fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeErr(w, http.StatusNotFound, leasesdk.ErrorCodeNotFound, "Resource not found")
	case errors.Is(err, domain.ErrExpired):
		writeErr(w, http.StatusGone, leasesdk.ErrorCodeExpired, "Invitation has expired")
	case errors.Is(err, domain.ErrAlreadyUsed):
		writeErr(w, http.StatusConflict, leasesdk.ErrorCodeAlreadyUsed, "Invitation has already been used")
	case errors.Is(err, domain.ErrPropertyOccupied):
		writeErr(w, http.StatusConflict, leasesdk.ErrorCodePropertyOccupied, "Property is already occupied")
	case errors.Is(err, domain.ErrConflict):
		writeErr(w, http.StatusConflict, leasesdk.ErrorCodeConflict, "Resource changed concurrently")
	case errors.Is(err, domain.ErrForbidden):
		writeErr(w, http.StatusForbidden, leasesdk.ErrorCodeForbidden, "Not permitted")
	case errors.Is(err, domain.ErrInvalidLogin):
		writeErr(w, http.StatusUnauthorized, leasesdk.ErrorCodeInvalidGrant, "Invalid login or password")
	case errors.Is(err, service.ErrBootstrapUnauthorized):
		writeErr(w, http.StatusUnauthorized, leasesdk.ErrorCodeUnauthorized, "Invalid bootstrap token")
	case errors.Is(err, service.ErrBootstrapAlready):
		writeErr(w, http.StatusConflict, leasesdk.ErrorCodeConflict, "System has already been bootstrapped")
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		writeErr(w, http.StatusInternalServerError, leasesdk.ErrorCodeServerError, "An internal error occurred")
	}
}
