package http

import (
	"net/http"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/service"
	"github.com/aussiebroadwan/propcloud/pkg/httpx"
	"github.com/aussiebroadwan/propcloud/pkg/propcloudsdk"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
)

// BookingsHandler serves bookings on the caller's properties.
type BookingsHandler struct {
	BookingService *service.BookingService
}

// HandleList godoc
//
//	@Summary		List Bookings
//	@Description	Lists bookings on the caller's properties by check-in date.
//	@Tags			Bookings
//	@Produce		json
//	@Security		BearerAuth
//	@Param			status	query		string								false	"Status tab: pending, confirmed, cancelled, completed or all"
//	@Param			q		query		string								false	"Search guest name, guest email and property name"
//	@Success		200		{object}	propcloudsdk.BookingListResponse	"bookings"
//	@Failure		401		{object}	propcloudsdk.ErrorResponse			"Unauthorized"
//	@Failure		500		{object}	propcloudsdk.ErrorResponse			"Internal error"
//	@Router			/api/bookings [get].
func (h *BookingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := httpx.PrincipalFrom(ctx)

	q := r.URL.Query()
	bookings, err := h.BookingService.List(ctx, p.UserID, q.Get("status"), q.Get("q"))
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, propcloudsdk.BookingListResponse{Bookings: toBookings(bookings)})
}

// HandleGet godoc
//
//	@Summary		Get Booking
//	@Tags			Bookings
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Booking ID"
//	@Success		200	{object}	propcloudsdk.Booking		"booking"
//	@Failure		401	{object}	propcloudsdk.ErrorResponse	"Unauthorized"
//	@Failure		404	{object}	propcloudsdk.ErrorResponse	"Booking not found"
//	@Router			/api/bookings/{id} [get].
func (h *BookingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := httpx.PrincipalFrom(ctx)

	b, err := h.BookingService.Get(ctx, p.UserID, r.PathValue("id"))
	if err != nil {
		writeDashboardError(w, r, err, "Failed to load booking")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toBooking(b))
}

// HandleCreate godoc
//
//	@Summary		Create Booking
//	@Description	Books a stay at one of the caller's properties. total_price defaults to nights x price per night plus the cleaning fee.
//	@Tags			Bookings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		propcloudsdk.BookingRequest	true	"Booking"
//	@Success		201		{object}	propcloudsdk.Booking		"booking"
//	@Failure		400		{object}	propcloudsdk.ErrorResponse	"Validation error"
//	@Failure		401		{object}	propcloudsdk.ErrorResponse	"Unauthorized"
//	@Failure		404		{object}	propcloudsdk.ErrorResponse	"Property not found"
//	@Router			/api/bookings [post].
func (h *BookingsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := httpx.PrincipalFrom(ctx)

	var req propcloudsdk.BookingRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.BookingService.Create(ctx, p.UserID, service.BookingInput{
		PropertyID: req.PropertyID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		TotalPrice: req.TotalPrice,
		Status:     req.Status,
	})
	if err != nil {
		writeDashboardError(w, r, err, "Failed to create booking")
		return
	}

	slogx.FromContext(ctx).Info("booking created", "booking_id", b.ID, "property_id", b.PropertyID)
	httpx.WriteJSON(w, http.StatusCreated, toBooking(b))
}

// HandleUpdateStatus godoc
//
//	@Summary		Update Booking Status
//	@Tags			Bookings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"Booking ID"
//	@Param			request	body		propcloudsdk.BookingStatusRequest	true	"New status"
//	@Success		200		{object}	propcloudsdk.Booking				"booking"
//	@Failure		400		{object}	propcloudsdk.ErrorResponse			"Invalid booking status"
//	@Failure		401		{object}	propcloudsdk.ErrorResponse			"Unauthorized"
//	@Failure		404		{object}	propcloudsdk.ErrorResponse			"Booking not found"
//	@Router			/api/bookings/{id}/status [patch].
func (h *BookingsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := httpx.PrincipalFrom(ctx)

	var req propcloudsdk.BookingStatusRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.BookingService.UpdateStatus(ctx, p.UserID, r.PathValue("id"), req.Status)
	if err != nil {
		writeDashboardError(w, r, err, "Failed to update booking")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toBooking(b))
}
