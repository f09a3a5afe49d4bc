package propcloudsdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Session is an authenticated client. It is safe for concurrent use.
type Session struct {
	client    *Client
	token     string
	expiresAt time.Time

	// User is the account returned by Login. It is empty for sessions built
	// from a token.
	User User
}

func (s *Session) Token() string { return s.token }

// ExpiresAt is zero for sessions built from a token.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

func (s *Session) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	return s.client.doRequest(ctx, method, path, s.token, body)
}

// Me returns the account behind the session.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/auth/session", nil)
	if err != nil {
		return nil, err
	}

	var out SessionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.do(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// ============================================================================
// Properties
// ============================================================================

func (s *Session) ListProperties(ctx context.Context, opts ListOptions) ([]Property, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/properties"+opts.query(), nil)
	if err != nil {
		return nil, err
	}

	var out PropertyListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Properties, nil
}

func (s *Session) GetProperty(ctx context.Context, id string) (*Property, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/properties/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out Property
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateProperty(ctx context.Context, req PropertyRequest) (*Property, error) {
	resp, err := s.do(ctx, http.MethodPost, "/api/properties", req)
	if err != nil {
		return nil, err
	}

	var out Property
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateProperty(ctx context.Context, id string, req PropertyRequest) (*Property, error) {
	resp, err := s.do(ctx, http.MethodPut, "/api/properties/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out Property
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteProperty(ctx context.Context, id string) error {
	resp, err := s.do(ctx, http.MethodDelete, "/api/properties/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Bookings
// ============================================================================

func (s *Session) ListBookings(ctx context.Context, opts ListOptions) ([]Booking, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/bookings"+opts.query(), nil)
	if err != nil {
		return nil, err
	}

	var out BookingListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}

func (s *Session) GetBooking(ctx context.Context, id string) (*Booking, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/bookings/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out Booking
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateBooking(ctx context.Context, req BookingRequest) (*Booking, error) {
	resp, err := s.do(ctx, http.MethodPost, "/api/bookings", req)
	if err != nil {
		return nil, err
	}

	var out Booking
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateBookingStatus(ctx context.Context, id, status string) (*Booking, error) {
	resp, err := s.do(ctx, http.MethodPatch, "/api/bookings/"+url.PathEscape(id)+"/status", BookingStatusRequest{Status: status})
	if err != nil {
		return nil, err
	}

	var out Booking
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Overview(ctx context.Context) (*OverviewResponse, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/dashboard/overview", nil)
	if err != nil {
		return nil, err
	}

	var out OverviewResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Waitlist admin
// ============================================================================

// ExportWaitlist returns entries in position order. Requires an admin
// session or the static admin token.
func (s *Session) ExportWaitlist(ctx context.Context, opts ListOptions) ([]WaitlistEntry, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/waitlist/export"+opts.query(), nil)
	if err != nil {
		return nil, err
	}

	var out WaitlistExportResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Waitlist, nil
}

// ExportWaitlistCSV streams the CSV export into w.
func (s *Session) ExportWaitlistCSV(ctx context.Context, w io.Writer, opts ListOptions) error {
	q := opts.query()
	if q == "" {
		q = "?format=csv"
	} else {
		q += "&format=csv"
	}

	resp, err := s.do(ctx, http.MethodGet, "/api/waitlist/export"+q, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, body)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to read export: %w", err)
	}
	return nil
}

// InviteToWaitlist invites a waitlisted email, re-stamping repeat invites.
func (s *Session) InviteToWaitlist(ctx context.Context, email string) error {
	resp, err := s.do(ctx, http.MethodPost, "/api/waitlist/invite", InviteRequest{Email: email})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}
