package http

import (
	"net/http"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/service"
	"github.com/aussiebroadwan/leasehold/pkg/httpx"
	"github.com/aussiebroadwan/leasehold/pkg/leasesdk"
)

type AccountsHandler struct {
	IdentityService *service.IdentityService
	SessionService  *service.SessionService
}

// HandleRegisterLandlord godoc
//
//	@Summary		Register Landlord
//	@Description	Creates a landlord account. Landlords register themselves; tenants only join through an invitation.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leasesdk.RegisterLandlordRequest	true	"Registration form"
//	@Success		201		{object}	leasesdk.AccountResponse
//	@Failure		400		{object}	leasesdk.ErrorResponse	"invalid_request or validation_error with details"
//	@Failure		500		{object}	leasesdk.ErrorResponse
//	@Router			/v1/landlords [post].
func (h *AccountsHandler) HandleRegisterLandlord(w http.ResponseWriter, r *http.Request) {
	var req leasesdk.RegisterLandlordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Request body must be a valid JSON object")
		return
	}

	reg := fromRegistration(req.Username, req.Email, req.Password, req.PasswordConfirm,
		req.FirstName, req.LastName, req.Phone, req.Gender)

	acc, err := h.IdentityService.RegisterLandlord(r.Context(), reg)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAccount(acc))
}

// HandleLogin godoc
//
//	@Summary		Create Session
//	@Description	Exchanges a username or email and password for a signed session token. The token carries the account role.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leasesdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	leasesdk.SessionResponse
//	@Failure		400		{object}	leasesdk.ErrorResponse	"invalid_request"
//	@Failure		401		{object}	leasesdk.ErrorResponse	"invalid_grant"
//	@Failure		429		{object}	leasesdk.ErrorResponse	"rate_limit_exceeded"
//	@Router			/v1/sessions [post].
func (h *AccountsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req leasesdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Request body must be a valid JSON object")
		return
	}

	acc, err := h.IdentityService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	sess, err := h.SessionService.Issue(r.Context(), acc)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSession(sess))
}

// HandleGet godoc
//
//	@Summary		Get Account
//	@Description	Returns an account the caller may see: itself, a tenant of one of its properties, or any account for admins.
//	@Tags			Accounts
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Account ID"
//	@Success		200	{object}	leasesdk.AccountResponse
//	@Failure		401	{object}	leasesdk.ErrorResponse
//	@Failure		403	{object}	leasesdk.ErrorResponse
//	@Failure		404	{object}	leasesdk.ErrorResponse
//	@Router			/v1/accounts/{id} [get].
func (h *AccountsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	acc, err := h.IdentityService.GetAccount(r.Context(), subject(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAccount(acc))
}

// HandleDeleteLandlord godoc
//
//	@Summary		Delete Landlord
//	@Description	Removes a landlord with its properties, their invitations, bindings and tenant accounts. Admin only.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Landlord account ID"
//	@Success		204
//	@Failure		400	{object}	leasesdk.ErrorResponse	"validation_error: not a landlord"
//	@Failure		403	{object}	leasesdk.ErrorResponse
//	@Failure		404	{object}	leasesdk.ErrorResponse
//	@Router			/v1/landlords/{id} [delete].
func (h *AccountsHandler) HandleDeleteLandlord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.IdentityService.DeleteLandlord(r.Context(), subject(r), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP creates the first admin account.
//
//	@Summary		Bootstrap the service
//	@Description	Creates the first admin account. Only available when a bootstrap token is configured and no admin exists yet.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string						true	"Operator bootstrap token"
//	@Param			request				body		leasesdk.BootstrapRequest	true	"Admin account"
//	@Success		201					{object}	leasesdk.AccountResponse
//	@Failure		400					{object}	leasesdk.ErrorResponse	"Invalid request body or validation failed"
//	@Failure		401					{object}	leasesdk.ErrorResponse	"Missing or invalid bootstrap token"
//	@Failure		404					{object}	leasesdk.ErrorResponse	"Bootstrap not enabled"
//	@Failure		409					{object}	leasesdk.ErrorResponse	"Already bootstrapped"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// 1. Check if enabled
	if h.BootstrapService.Token == "" {
		writeErr(w, http.StatusNotFound, leasesdk.ErrorCodeNotFound, "Bootstrap endpoint is not enabled")
		return
	}

	// 2. Require bootstrap token header
	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		writeErr(w, http.StatusUnauthorized, leasesdk.ErrorCodeUnauthorized,
			"Bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	// 3. Parse request body
	var req leasesdk.BootstrapRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Request body must be a valid JSON object")
		return
	}

	// 4. Perform bootstrap
	acc, err := h.BootstrapService.Bootstrap(r.Context(), token, domain.Registration{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.Password,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAccount(acc))
}
