package http

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/service"
	"github.com/aussiebroadwan/propcloud/pkg/httpx"
	"github.com/aussiebroadwan/propcloud/pkg/propcloudsdk"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
)

type JoinWaitlistHandler struct {
	WaitlistService *service.WaitlistService
}

// ServeHTTP godoc
//
//	@Summary		Join Waitlist
//	@Description	Adds an email to the waitlist. Repeat signups return the original position and send no email.
//	@Tags			Waitlist
//	@Accept			json
//	@Produce		json
//	@Param			request	body		propcloudsdk.JoinWaitlistRequest	true	"Signup form"
//	@Success		200		{object}	propcloudsdk.JoinWaitlistResponse	"message, position"
//	@Failure		400		{object}	propcloudsdk.ErrorResponse			"Invalid request body or email"
//	@Failure		429		{object}	propcloudsdk.ErrorResponse			"Rate limited"
//	@Failure		500		{object}	propcloudsdk.ErrorResponse			"Store failure"
//	@Router			/api/waitlist [post].
func (h *JoinWaitlistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req joinWaitlistBody
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.WaitlistService.Join(ctx, req.input())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			httpx.WriteError(w, http.StatusBadRequest, "Valid email is required")
		case errors.Is(err, service.ErrWaitlistLookup):
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to check waitlist")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to join waitlist")
		}
		return
	}

	message := propcloudsdk.MessageJoined
	if res.Existing {
		message = propcloudsdk.MessageAlreadyRegistered
	}
	httpx.WriteJSON(w, http.StatusOK, propcloudsdk.JoinWaitlistResponse{
		Message:  message,
		Position: res.Entry.Position,
	})
}

type ExportWaitlistHandler struct {
	WaitlistService *service.WaitlistService
	// Now defaults to time.Now; it dates the CSV filename.
	Now func() time.Time
}

// ServeHTTP godoc
//
//	@Summary		Export Waitlist
//	@Description	Lists waitlist entries in position order. format=csv downloads the same rows as CSV.
//	@Tags			Waitlist
//	@Produce		json
//	@Produce		text/csv
//	@Security		BearerAuth
//	@Param			status	query		string								false	"Status tab: pending, invited, active or all"
//	@Param			q		query		string								false	"Search email, name and company"
//	@Param			format	query		string								false	"json (default) or csv"
//	@Success		200		{object}	propcloudsdk.WaitlistExportResponse	"waitlist"
//	@Failure		401		{object}	propcloudsdk.ErrorResponse			"Unauthorized"
//	@Failure		403		{object}	propcloudsdk.ErrorResponse			"Forbidden"
//	@Failure		500		{object}	propcloudsdk.ErrorResponse			"Store failure"
//	@Router			/api/waitlist/export [get].
func (h *ExportWaitlistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	q := r.URL.Query()
	entries, err := h.WaitlistService.List(ctx, q.Get("status"), q.Get("q"))
	if err != nil {
		log.Error("failed to export waitlist", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to export waitlist")
		return
	}

	if q.Get("format") == "csv" {
		h.writeCSV(w, r, entries)
		return
	}

	out := make([]propcloudsdk.WaitlistEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toWaitlistEntry(e))
	}
	httpx.WriteJSON(w, http.StatusOK, propcloudsdk.WaitlistExportResponse{Waitlist: out})
}

var csvHeader = []string{"Email", "Full Name", "Company", "Properties", "Position", "Date Joined", "Status"}

func (h *ExportWaitlistHandler) writeCSV(w http.ResponseWriter, r *http.Request, entries []domain.WaitlistEntry) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	filename := fmt.Sprintf("propcloud-waitlist-%s.csv", now().UTC().Format(domain.DateLayout))

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeader)
	for _, e := range entries {
		properties := ""
		if e.PropertiesCount != nil {
			properties = strconv.Itoa(*e.PropertiesCount)
		}
		_ = cw.Write([]string{
			csvCell(e.Email),
			csvCell(deref(e.FullName)),
			csvCell(deref(e.CompanyName)),
			properties,
			strconv.FormatInt(e.Position, 10),
			e.CreatedAt.UTC().Format(domain.DateLayout),
			string(e.Status),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slogx.FromContext(r.Context()).Warn("failed to stream waitlist csv", "err", err)
	}
}

// csvCell stops spreadsheet apps from evaluating submitted text as a
// formula.
func csvCell(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type InviteWaitlistHandler struct {
	WaitlistService *service.WaitlistService
}

// ServeHTTP godoc
//
//	@Summary		Invite From Waitlist
//	@Description	Marks the entry invited and emails a signup link. Repeat invites re-stamp invited_at.
//	@Tags			Waitlist
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		propcloudsdk.InviteRequest		true	"Email to invite"
//	@Success		200		{object}	propcloudsdk.MessageResponse	"Invitation sent successfully"
//	@Failure		400		{object}	propcloudsdk.ErrorResponse		"Email is required"
//	@Failure		401		{object}	propcloudsdk.ErrorResponse		"Unauthorized"
//	@Failure		403		{object}	propcloudsdk.ErrorResponse		"Forbidden"
//	@Failure		404		{object}	propcloudsdk.ErrorResponse		"Email not found in waitlist"
//	@Failure		500		{object}	propcloudsdk.ErrorResponse		"Store failure"
//	@Router			/api/waitlist/invite [post].
func (h *InviteWaitlistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req propcloudsdk.InviteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.WaitlistService.Invite(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			httpx.WriteError(w, http.StatusBadRequest, "Email is required")
		case errors.Is(err, service.ErrWaitlistNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Email not found in waitlist")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to send invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, propcloudsdk.MessageResponse{Message: "Invitation sent successfully"})
}
