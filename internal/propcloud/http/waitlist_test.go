package http_test

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	propcloudhttp "github.com/aussiebroadwan/propcloud/internal/propcloud/http"
	"github.com/aussiebroadwan/propcloud/pkg/propcloudsdk"
	"github.com/stretchr/testify/require"
)

func TestJoinWaitlist(t *testing.T) {
	env := newTestEnv(t, propcloudhttp.Options{})

	t.Run("first signup gets position 1", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/waitlist", "", map[string]any{
			"email":           "first@example.com",
			"fullName":        "First Owner",
			"propertiesCount": 3,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"Successfully joined waitlist","position":1}`, rec.Body.String())
		require.Equal(t, 1, env.notifier.count("joined"))
	})

	t.Run("duplicate signup keeps position and sends nothing", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/waitlist", "", map[string]any{"email": "first@example.com"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"Email already registered","position":1}`, rec.Body.String())
		require.Equal(t, 1, env.notifier.count("joined"))
	})

	t.Run("next signup gets position 2", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/waitlist", "", map[string]any{"email": "second@example.com"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, int64(2), decode[propcloudsdk.JoinWaitlistResponse](t, rec).Position)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email"} {
			rec := env.do(t, http.MethodPost, "/api/waitlist", "", map[string]any{"email": email})
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.JSONEq(t, `{"error":"Valid email is required"}`, rec.Body.String())
		}
	})

	t.Run("non-string email is an invalid email", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/waitlist", "", map[string]any{"email": 42})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Valid email is required"}`, rec.Body.String())
	})

	t.Run("form values posted as strings are accepted", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/waitlist", "", map[string]any{
			"email":            "form@example.com",
			"propertiesCount":  "5",
			"phone":            61400111222,
			"marketingConsent": "on",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		e, err := env.store.Waitlist().GetByEmail(t.Context(), "form@example.com")
		require.NoError(t, err)
		require.NotNil(t, e.PropertiesCount)
		require.Equal(t, 5, *e.PropertiesCount)
		require.Equal(t, "61400111222", *e.Phone)
		require.True(t, e.MarketingConsent)
	})

	t.Run("unparseable property count is dropped", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/waitlist", "", map[string]any{
			"email":           "range@example.com",
			"propertiesCount": "10-20",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		e, err := env.store.Waitlist().GetByEmail(t.Context(), "range@example.com")
		require.NoError(t, err)
		require.Nil(t, e.PropertiesCount)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/waitlist", "", "{not json")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
	})
}

func TestExportWaitlistRequiresAdmin(t *testing.T) {
	env := newTestEnv(t, propcloudhttp.Options{})
	env.do(t, http.MethodPost, "/api/waitlist", "", map[string]any{"email": "lead@example.com"})

	rec := env.do(t, http.MethodGet, "/api/waitlist/export", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())

	user := env.session(t, "user@example.com", false)
	rec = env.do(t, http.MethodGet, "/api/waitlist/export", user, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error":"Forbidden"}`, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/waitlist/invite", user, map[string]any{"email": "lead@example.com"})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRoleRevokedTakesEffectImmediately(t *testing.T) {
	env := newTestEnv(t, propcloudhttp.Options{})
	admin := env.session(t, "admin@example.com", true)

	rec := env.do(t, http.MethodGet, "/api/waitlist/export", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, env.store.Users().SetRole(t.Context(), "admin@example.com", domain.RoleUser, time.Now()))

	rec = env.do(t, http.MethodGet, "/api/waitlist/export", admin, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error":"Forbidden"}`, rec.Body.String())
}

func TestExportWaitlist(t *testing.T) {
	env := newTestEnv(t, propcloudhttp.Options{})
	for _, body := range []map[string]any{
		{"email": "a@example.com", "fullName": "Alice", "companyName": "Harbour Stays"},
		{"email": "b@example.com", "fullName": "Bob"},
		{"email": "c@example.com", "companyName": "Alpine Lodges", "propertiesCount": 12},
	} {
		require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/waitlist", "", body).Code)
	}
	admin := env.session(t, "admin@example.com", true)
	require.Equal(t, http.StatusOK,
		env.do(t, http.MethodPost, "/api/waitlist/invite", admin, map[string]any{"email": "b@example.com"}).Code)

	t.Run("json in position order", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/waitlist/export", admin, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		entries := decode[propcloudsdk.WaitlistExportResponse](t, rec).Waitlist
		require.Len(t, entries, 3)
		for i, e := range entries {
			require.Equal(t, int64(i+1), e.Position)
		}
		require.Equal(t, "invited", entries[1].Status)
		require.NotNil(t, entries[1].InvitedAt)
	})

	t.Run("status tab then search", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/waitlist/export?status=pending&q=ALP", admin, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		entries := decode[propcloudsdk.WaitlistExportResponse](t, rec).Waitlist
		require.Len(t, entries, 1)
		require.Equal(t, "c@example.com", entries[0].Email)

		rec = env.do(t, http.MethodGet, "/api/waitlist/export?status=invited&q=alice", admin, nil)
		require.Empty(t, decode[propcloudsdk.WaitlistExportResponse](t, rec).Waitlist)
	})

	t.Run("csv download", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/waitlist/export?format=csv", admin, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

		today := time.Now().UTC().Format("2006-01-02")
		require.Equal(t,
			`attachment; filename="propcloud-waitlist-`+today+`.csv"`,
			rec.Header().Get("Content-Disposition"))

		rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 4)
		require.Equal(t, []string{"Email", "Full Name", "Company", "Properties", "Position", "Date Joined", "Status"}, rows[0])
		require.Equal(t, []string{"b@example.com", "Bob", "", "", "2", today, "invited"}, rows[2])
		require.Equal(t, []string{"c@example.com", "", "Alpine Lodges", "12", "3", today, "pending"}, rows[3])
	})
}

func TestExportWaitlistCSVNeutralisesFormulas(t *testing.T) {
	env := newTestEnv(t, propcloudhttp.Options{})
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/waitlist", "", map[string]any{
		"email":       "lead@example.com",
		"fullName":    `=HYPERLINK("http://evil","x")`,
		"companyName": "@SUM(A1:A2)",
	}).Code)
	admin := env.session(t, "admin@example.com", true)

	rec := env.do(t, http.MethodGet, "/api/waitlist/export?format=csv", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, `'=HYPERLINK("http://evil","x")`, rows[1][1])
	require.Equal(t, "'@SUM(A1:A2)", rows[1][2])
	require.Equal(t, "lead@example.com", rows[1][0])
}

func TestInviteWaitlist(t *testing.T) {
	env := newTestEnv(t, propcloudhttp.Options{})
	env.do(t, http.MethodPost, "/api/waitlist", "", map[string]any{"email": "lead@example.com"})
	env.do(t, http.MethodPost, "/api/waitlist", "", map[string]any{"email": "other@example.com"})
	admin := env.session(t, "admin@example.com", true)

	t.Run("unknown email is 404", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/waitlist/invite", admin, map[string]any{"email": "nobody@example.com"})
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"error":"Email not found in waitlist"}`, rec.Body.String())
	})

	t.Run("empty email is 400", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/waitlist/invite", admin, map[string]any{"email": ""})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Email is required"}`, rec.Body.String())
	})

	t.Run("invite changes only the target row", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/waitlist/invite", admin, map[string]any{"email": "lead@example.com"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"Invitation sent successfully"}`, rec.Body.String())
		require.Equal(t, 1, env.notifier.count("invited"))

		entries := decode[propcloudsdk.WaitlistExportResponse](t,
			env.do(t, http.MethodGet, "/api/waitlist/export", admin, nil)).Waitlist
		require.Equal(t, "invited", entries[0].Status)
		require.Equal(t, "pending", entries[1].Status)
		require.Nil(t, entries[1].InvitedAt)
	})
}

func TestAdminStaticTokenMode(t *testing.T) {
	env := newTestEnv(t, propcloudhttp.Options{
		AdminAuthMode: propcloudhttp.AdminAuthToken,
		AdminAPIKey:   "s3cret",
	})
	env.do(t, http.MethodPost, "/api/waitlist", "", map[string]any{"email": "lead@example.com"})

	require.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/waitlist/export", "", nil).Code)
	require.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/waitlist/export", "wrong", nil).Code)

	// Admin sessions do not satisfy the static token guard.
	admin := env.session(t, "admin@example.com", true)
	require.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/waitlist/export", admin, nil).Code)

	rec := env.do(t, http.MethodGet, "/api/waitlist/export", "s3cret", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[propcloudsdk.WaitlistExportResponse](t, rec).Waitlist, 1)
}
