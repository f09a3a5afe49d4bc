package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/service"
	"github.com/aussiebroadwan/propcloud/pkg/httpx"
	"github.com/aussiebroadwan/propcloud/pkg/propcloudsdk"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
)

// PropertiesHandler serves the caller's properties. Other users' properties
// are reported as not found.
type PropertiesHandler struct {
	PropertyService *service.PropertyService
}

// HandleList godoc
//
//	@Summary		List Properties
//	@Description	Lists the caller's properties, newest first.
//	@Tags			Properties
//	@Produce		json
//	@Security		BearerAuth
//	@Param			status	query		string								false	"Status tab: active, inactive, maintenance or all"
//	@Param			q		query		string								false	"Search name, city and address"
//	@Success		200		{object}	propcloudsdk.PropertyListResponse	"properties"
//	@Failure		401		{object}	propcloudsdk.ErrorResponse			"Unauthorized"
//	@Failure		500		{object}	propcloudsdk.ErrorResponse			"Internal error"
//	@Router			/api/properties [get].
func (h *PropertiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := httpx.PrincipalFrom(ctx)

	q := r.URL.Query()
	props, err := h.PropertyService.List(ctx, p.UserID, q.Get("status"), q.Get("q"))
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to list properties")
		return
	}

	out := make([]propcloudsdk.Property, 0, len(props))
	for _, prop := range props {
		out = append(out, toProperty(prop))
	}
	httpx.WriteJSON(w, http.StatusOK, propcloudsdk.PropertyListResponse{Properties: out})
}

// HandleGet godoc
//
//	@Summary		Get Property
//	@Tags			Properties
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Property ID"
//	@Success		200	{object}	propcloudsdk.Property		"property"
//	@Failure		401	{object}	propcloudsdk.ErrorResponse	"Unauthorized"
//	@Failure		404	{object}	propcloudsdk.ErrorResponse	"Property not found"
//	@Router			/api/properties/{id} [get].
func (h *PropertiesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := httpx.PrincipalFrom(ctx)

	prop, err := h.PropertyService.Get(ctx, p.UserID, r.PathValue("id"))
	if err != nil {
		writeDashboardError(w, r, err, "Failed to load property")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProperty(prop))
}

// HandleCreate godoc
//
//	@Summary		Create Property
//	@Description	Creates a property owned by the caller. Status defaults to active; descriptions are sanitized.
//	@Tags			Properties
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		propcloudsdk.PropertyRequest	true	"Property"
//	@Success		201		{object}	propcloudsdk.Property			"property"
//	@Failure		400		{object}	propcloudsdk.ErrorResponse		"Validation error"
//	@Failure		401		{object}	propcloudsdk.ErrorResponse		"Unauthorized"
//	@Router			/api/properties [post].
func (h *PropertiesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := httpx.PrincipalFrom(ctx)

	var req propcloudsdk.PropertyRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prop, err := h.PropertyService.Create(ctx, p.UserID, toPropertyInput(req))
	if err != nil {
		writeDashboardError(w, r, err, "Failed to create property")
		return
	}

	slogx.FromContext(ctx).Info("property created", "property_id", prop.ID)
	httpx.WriteJSON(w, http.StatusCreated, toProperty(prop))
}

// HandleUpdate godoc
//
//	@Summary		Update Property
//	@Description	Replaces every editable field of the property.
//	@Tags			Properties
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Property ID"
//	@Param			request	body		propcloudsdk.PropertyRequest	true	"Property"
//	@Success		200		{object}	propcloudsdk.Property			"property"
//	@Failure		400		{object}	propcloudsdk.ErrorResponse		"Validation error"
//	@Failure		401		{object}	propcloudsdk.ErrorResponse		"Unauthorized"
//	@Failure		404		{object}	propcloudsdk.ErrorResponse		"Property not found"
//	@Router			/api/properties/{id} [put].
func (h *PropertiesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := httpx.PrincipalFrom(ctx)

	var req propcloudsdk.PropertyRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prop, err := h.PropertyService.Update(ctx, p.UserID, r.PathValue("id"), toPropertyInput(req))
	if err != nil {
		writeDashboardError(w, r, err, "Failed to update property")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProperty(prop))
}

// HandleDelete godoc
//
//	@Summary		Delete Property
//	@Description	Deletes the property and its bookings.
//	@Tags			Properties
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Property ID"
//	@Success		204
//	@Failure		401	{object}	propcloudsdk.ErrorResponse	"Unauthorized"
//	@Failure		404	{object}	propcloudsdk.ErrorResponse	"Property not found"
//	@Router			/api/properties/{id} [delete].
func (h *PropertiesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := httpx.PrincipalFrom(ctx)

	if err := h.PropertyService.Delete(ctx, p.UserID, r.PathValue("id")); err != nil {
		writeDashboardError(w, r, err, "Failed to delete property")
		return
	}

	slogx.FromContext(ctx).Info("property deleted", "property_id", r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func writeDashboardError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, service.ErrPropertyNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Property not found")
	case errors.Is(err, service.ErrBookingNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Booking not found")
	default:
		slogx.FromContext(r.Context()).Error(fallback, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, fallback)
	}
}
