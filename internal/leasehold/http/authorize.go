package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/access"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/pkg/httpx"
	"github.com/aussiebroadwan/leasehold/pkg/leasesdk"
)

type AuthorizeHandler struct {
	Gate *access.Gate
}

// ServeHTTP asks the gate whether the caller may act on a resource.
//
//	@Summary		Authorize
//	@Description	Evaluates whether the authenticated caller may perform an action on a resource. Lets other services (maintenance, media) reuse the same ownership rules.
//	@Description	Actions: read, create, modify, delete, invite, remove_tenant. Kinds: account, property, invitation, binding.
//	@Tags			Authorization
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		leasesdk.AuthorizeRequest	true	"Action and resource"
//	@Success		200		{object}	leasesdk.AuthorizeResponse	"allowed, or denied with reason"
//	@Failure		400		{object}	leasesdk.ErrorResponse
//	@Failure		401		{object}	leasesdk.ErrorResponse
//	@Router			/v1/authorize [post].
func (h *AuthorizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req leasesdk.AuthorizeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Request body must be a valid JSON object")
		return
	}

	action, err := access.ParseAction(req.Action)
	if err != nil {
		writeServiceError(w, r, domain.FieldError("action", "unknown action"))
		return
	}
	kind, err := access.ParseKind(req.ResourceKind)
	if err != nil {
		writeServiceError(w, r, domain.FieldError("resource_kind", "unknown resource kind"))
		return
	}

	err = h.Gate.Authorize(r.Context(), subject(r), action, access.Resource{Kind: kind, ID: req.ResourceID})
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, leasesdk.AuthorizeResponse{Allowed: true})
	case errors.Is(err, domain.ErrForbidden):
		httpx.WriteJSON(w, http.StatusOK, leasesdk.AuthorizeResponse{Reason: leasesdk.ErrorCodeForbidden})
	case errors.Is(err, domain.ErrNotFound):
		httpx.WriteJSON(w, http.StatusOK, leasesdk.AuthorizeResponse{Reason: leasesdk.ErrorCodeNotFound})
	default:
		writeServiceError(w, r, err)
	}
}
