package http

import (
	"net/http"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/service"
	"github.com/aussiebroadwan/propcloud/pkg/httpx"
	"github.com/aussiebroadwan/propcloud/pkg/propcloudsdk"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
)

type OverviewHandler struct {
	DashboardService *service.DashboardService
}

// ServeHTTP godoc
//
//	@Summary		Dashboard Overview
//	@Description	Property counts, upcoming bookings and revenue over the last 30 days.
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	propcloudsdk.OverviewResponse	"overview"
//	@Failure		401	{object}	propcloudsdk.ErrorResponse		"Unauthorized"
//	@Failure		500	{object}	propcloudsdk.ErrorResponse		"Internal error"
//	@Router			/api/dashboard/overview [get].
func (h *OverviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := httpx.PrincipalFrom(ctx)

	o, err := h.DashboardService.Overview(ctx, p.UserID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to build overview", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to load overview")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, propcloudsdk.OverviewResponse{
		Properties:       o.Properties,
		ActiveProperties: o.ActiveProperties,
		UpcomingBookings: o.UpcomingBookings,
		Revenue30d:       o.Revenue30d,
		RecentBookings:   toBookings(o.RecentBookings),
	})
}
