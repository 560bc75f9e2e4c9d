package http

import (
	"net/http"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/service"
	"github.com/aussiebroadwan/leasehold/pkg/httpx"
	"github.com/aussiebroadwan/leasehold/pkg/leasesdk"
)

type PropertiesHandler struct {
	PropertyService *service.PropertyService
}

func decodeProperty(w http.ResponseWriter, r *http.Request) (domain.PropertyDetails, bool) {
	var req leasesdk.PropertyRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Request body must be a valid JSON object")
		return domain.PropertyDetails{}, false
	}
	return domain.PropertyDetails{
		Name:       req.Name,
		Address:    req.Address,
		UnitNumber: req.UnitNumber,
	}, true
}

// HandleCreate godoc
//
//	@Summary		Create Property
//	@Description	Registers a vacant property owned by the calling landlord.
//	@Tags			Properties
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		leasesdk.PropertyRequest	true	"Property details"
//	@Success		201		{object}	leasesdk.PropertyResponse
//	@Failure		400		{object}	leasesdk.ErrorResponse
//	@Failure		403		{object}	leasesdk.ErrorResponse
//	@Router			/v1/properties [post].
func (h *PropertiesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	d, ok := decodeProperty(w, r)
	if !ok {
		return
	}

	p, err := h.PropertyService.Create(r.Context(), subject(r), d)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toProperty(p))
}

// HandleList godoc
//
//	@Summary		List Properties
//	@Description	Lists the caller's properties, newest first.
//	@Tags			Properties
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	leasesdk.ListPropertiesResponse
//	@Failure		403	{object}	leasesdk.ErrorResponse
//	@Router			/v1/properties [get].
func (h *PropertiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	props, err := h.PropertyService.ListOwn(r.Context(), subject(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := leasesdk.ListPropertiesResponse{Properties: make([]leasesdk.PropertyResponse, 0, len(props))}
	for _, p := range props {
		out.Properties = append(out.Properties, toProperty(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get Property
//	@Description	Returns a property owned by the caller, or the one the calling tenant lives in.
//	@Tags			Properties
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Property ID"
//	@Success		200	{object}	leasesdk.PropertyResponse
//	@Failure		403	{object}	leasesdk.ErrorResponse
//	@Failure		404	{object}	leasesdk.ErrorResponse
//	@Router			/v1/properties/{id} [get].
func (h *PropertiesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.PropertyService.Get(r.Context(), subject(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProperty(p))
}

// HandleUpdate godoc
//
//	@Summary		Update Property
//	@Description	Replaces name, address and unit number. Occupancy cannot be changed here.
//	@Tags			Properties
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Property ID"
//	@Param			request	body		leasesdk.PropertyRequest	true	"Property details"
//	@Success		200		{object}	leasesdk.PropertyResponse
//	@Failure		400		{object}	leasesdk.ErrorResponse
//	@Failure		403		{object}	leasesdk.ErrorResponse
//	@Failure		404		{object}	leasesdk.ErrorResponse
//	@Router			/v1/properties/{id} [put].
func (h *PropertiesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	d, ok := decodeProperty(w, r)
	if !ok {
		return
	}

	p, err := h.PropertyService.Update(r.Context(), subject(r), id, d)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProperty(p))
}

// HandleDelete godoc
//
//	@Summary		Delete Property
//	@Description	Deletes a property with its invitations, its binding and the bound tenant's account.
//	@Tags			Properties
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Property ID"
//	@Success		204
//	@Failure		403	{object}	leasesdk.ErrorResponse
//	@Failure		404	{object}	leasesdk.ErrorResponse
//	@Router			/v1/properties/{id} [delete].
func (h *PropertiesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.PropertyService.Delete(r.Context(), subject(r), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
