package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/service"
	"github.com/aussiebroadwan/leasehold/pkg/httpx"
	"github.com/aussiebroadwan/leasehold/pkg/leasesdk"
	"github.com/aussiebroadwan/leasehold/pkg/slogx"
)

type InvitationsHandler struct {
	InvitationService *service.InvitationService

	// Now stamps derived statuses; defaults to time.Now.
	Now func() time.Time
}

func (h *InvitationsHandler) now() time.Time {
	if h.Now == nil {
		return time.Now().UTC()
	}
	return h.Now().UTC()
}

// HandleIssue godoc
//
//	@Summary		Issue Invitation
//	@Description	Mints a single-use invitation link for a vacant property owned by the caller. The link expires after the configured TTL (7 days by default).
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Property ID"
//	@Param			request	body		leasesdk.IssueInvitationRequest	false	"Optional invited email"
//	@Success		201		{object}	leasesdk.InvitationResponse
//	@Failure		400		{object}	leasesdk.ErrorResponse
//	@Failure		403		{object}	leasesdk.ErrorResponse
//	@Failure		404		{object}	leasesdk.ErrorResponse
//	@Failure		409		{object}	leasesdk.ErrorResponse	"property_occupied"
//	@Router			/v1/properties/{id}/invitations [post].
func (h *InvitationsHandler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req leasesdk.IssueInvitationRequest
	if r.ContentLength != 0 {
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			writeBadRequest(w, "Request body must be a valid JSON object")
			return
		}
	}

	ctx := slogx.With(r.Context(), "property_id", id)
	inv, err := h.InvitationService.Issue(ctx, subject(r), id, req.InvitedEmail)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toInvitation(inv, h.InvitationService.Link(inv.Token), h.now()))
}

// HandleList godoc
//
//	@Summary		List Invitations
//	@Description	Lists the unused invitations of a property, newest first. Expired ones are included with status "expired".
//	@Tags			Invitations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Property ID"
//	@Success		200	{object}	leasesdk.ListInvitationsResponse
//	@Failure		403	{object}	leasesdk.ErrorResponse
//	@Failure		404	{object}	leasesdk.ErrorResponse
//	@Router			/v1/properties/{id}/invitations [get].
func (h *InvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	invs, err := h.InvitationService.ListForProperty(r.Context(), subject(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	now := h.now()
	out := leasesdk.ListInvitationsResponse{Invitations: make([]leasesdk.InvitationResponse, 0, len(invs))}
	for _, inv := range invs {
		out.Invitations = append(out.Invitations, toInvitation(inv, h.InvitationService.Link(inv.Token), now))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleValidate godoc
//
//	@Summary		Check Invitation
//	@Description	Public. Reports whether an invitation link can still be redeemed and returns the invited email used to pre-fill the registration form.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string	true	"Invitation token"
//	@Success		200		{object}	leasesdk.InvitationStatusResponse
//	@Failure		404		{object}	leasesdk.ErrorResponse	"not_found"
//	@Failure		409		{object}	leasesdk.ErrorResponse	"already_used"
//	@Failure		410		{object}	leasesdk.ErrorResponse	"expired"
//	@Router			/v1/invitations/{token} [get].
func (h *InvitationsHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	inv, err := h.InvitationService.Validate(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, leasesdk.InvitationStatusResponse{
		Status:       string(domain.InvitationValid),
		PropertyID:   inv.PropertyID,
		InvitedEmail: inv.InvitedEmail,
		ExpiresAt:    inv.ExpiresAt,
	})
}

// HandleAccept godoc
//
//	@Summary		Accept Invitation
//	@Description	Public. Registers a tenant account from the invitation, binds it to the property and marks the property occupied. Returns a session for the new tenant.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string							true	"Invitation token"
//	@Param			request	body		leasesdk.AcceptInvitationRequest	true	"Tenant registration form"
//	@Success		201		{object}	leasesdk.AcceptInvitationResponse
//	@Failure		400		{object}	leasesdk.ErrorResponse	"invalid_request or validation_error with details"
//	@Failure		404		{object}	leasesdk.ErrorResponse	"not_found"
//	@Failure		409		{object}	leasesdk.ErrorResponse	"already_used or property_occupied"
//	@Failure		410		{object}	leasesdk.ErrorResponse	"expired"
//	@Failure		429		{object}	leasesdk.ErrorResponse	"rate_limit_exceeded"
//	@Router			/v1/invitations/{token}/accept [post].
func (h *InvitationsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	var req leasesdk.AcceptInvitationRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Request body must be a valid JSON object")
		return
	}

	reg := fromRegistration(req.Username, req.Email, req.Password, req.PasswordConfirm,
		req.FirstName, req.LastName, req.Phone, req.Gender)
	reg.MoveInDateText = req.MoveInDate

	red, err := h.InvitationService.Accept(r.Context(), r.PathValue("token"), reg)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	sess := toSession(red.Session)
	httpx.WriteJSON(w, http.StatusCreated, leasesdk.AcceptInvitationResponse{
		AccountID:   red.Account.ID,
		Binding:     toBinding(red.Binding),
		AccessToken: sess.AccessToken,
		TokenType:   sess.TokenType,
		ExpiresIn:   sess.ExpiresIn,
	})
}

// HandleRevoke godoc
//
//	@Summary		Revoke Invitation
//	@Description	Cancels an unused invitation. The record is kept and can never be redeemed.
//	@Tags			Invitations
//	@Security		BearerAuth
//	@Param			token	path	string	true	"Invitation token"
//	@Success		204
//	@Failure		403	{object}	leasesdk.ErrorResponse
//	@Failure		404	{object}	leasesdk.ErrorResponse
//	@Failure		409	{object}	leasesdk.ErrorResponse	"already_used"
//	@Router			/v1/invitations/{token}/revoke [post].
func (h *InvitationsHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	if err := h.InvitationService.Revoke(r.Context(), subject(r), r.PathValue("token")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
