package http

import (
	"net/http"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/service"
	"github.com/aussiebroadwan/leasehold/pkg/httpx"
	"github.com/aussiebroadwan/leasehold/pkg/leasesdk"
)

type TenancyHandler struct {
	TenancyService *service.TenancyService
}

// HandleGetOwn godoc
//
//	@Summary		Get Own Tenancy
//	@Description	Returns the calling tenant's binding with its property.
//	@Tags			Tenancy
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	leasesdk.TenancyResponse
//	@Failure		404	{object}	leasesdk.ErrorResponse	"caller has no tenancy"
//	@Router			/v1/tenancy [get].
func (h *TenancyHandler) HandleGetOwn(w http.ResponseWriter, r *http.Request) {
	t, err := h.TenancyService.GetOwn(r.Context(), subject(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTenancy(t))
}

// HandleGetForProperty godoc
//
//	@Summary		Get Property Tenant
//	@Description	Returns the tenancy on a property owned by the caller.
//	@Tags			Tenancy
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Property ID"
//	@Success		200	{object}	leasesdk.TenancyResponse
//	@Failure		403	{object}	leasesdk.ErrorResponse
//	@Failure		404	{object}	leasesdk.ErrorResponse	"no such property, or vacant"
//	@Router			/v1/properties/{id}/tenant [get].
func (h *TenancyHandler) HandleGetForProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	t, err := h.TenancyService.GetForProperty(r.Context(), subject(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTenancy(t))
}

// HandleRemove godoc
//
//	@Summary		Remove Tenant
//	@Description	Ends the tenancy on a property at once and frees the property. The binding is kept as an ended tenancy.
//	@Tags			Tenancy
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Property ID"
//	@Success		204
//	@Failure		403	{object}	leasesdk.ErrorResponse
//	@Failure		404	{object}	leasesdk.ErrorResponse	"no such property, or vacant"
//	@Router			/v1/properties/{id}/tenant [delete].
func (h *TenancyHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.TenancyService.RemoveTenant(r.Context(), subject(r), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleList godoc
//
//	@Summary		List Tenancies
//	@Description	Lists the caller's current tenancies, or the ended ones with state=ended.
//	@Tags			Tenancy
//	@Produce		json
//	@Security		BearerAuth
//	@Param			state	query		string	false	"current (default) or ended"
//	@Success		200		{object}	leasesdk.ListTenanciesResponse
//	@Failure		400		{object}	leasesdk.ErrorResponse	"unknown state"
//	@Failure		403		{object}	leasesdk.ErrorResponse
//	@Router			/v1/tenancies [get].
func (h *TenancyHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var ended bool
	switch r.URL.Query().Get("state") {
	case "", "current":
	case "ended":
		ended = true
	default:
		writeBadRequest(w, "state must be current or ended")
		return
	}

	list, err := h.TenancyService.ListForLandlord(r.Context(), subject(r), ended)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := leasesdk.ListTenanciesResponse{Tenancies: make([]leasesdk.TenancyResponse, 0, len(list))}
	for _, t := range list {
		resp.Tenancies = append(resp.Tenancies, toTenancy(t))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleTerminate godoc
//
//	@Summary		Terminate Tenancy
//	@Description	Records the caller's request to end a tenancy. It ends, freeing the property, once both the landlord and the tenant have asked.
//	@Tags			Tenancy
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Binding ID"
//	@Success		200	{object}	leasesdk.TenancyResponse
//	@Failure		403	{object}	leasesdk.ErrorResponse
//	@Failure		404	{object}	leasesdk.ErrorResponse
//	@Failure		409	{object}	leasesdk.ErrorResponse	"already terminated"
//	@Router			/v1/tenancies/{id}/terminate [post].
func (h *TenancyHandler) HandleTerminate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	t, err := h.TenancyService.Terminate(r.Context(), subject(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTenancy(t))
}
