package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/guard"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/service"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/store"
	"github.com/aussiebroadwan/propcloud/pkg/httpx"
	"github.com/aussiebroadwan/propcloud/pkg/jwtx"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
	"github.com/go-chi/cors"

	_ "github.com/aussiebroadwan/propcloud/api/propcloud" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Admin guard modes.
const (
	AdminAuthSession = "session"
	AdminAuthToken   = "token"
)

// Options tune the router for a deployment.
type Options struct {
	// AdminAuthMode is AdminAuthSession (admin role on a session) or
	// AdminAuthToken (static bearer AdminAPIKey).
	AdminAuthMode string
	AdminAPIKey   string

	// WebRoot is an optional directory of static pages served behind the
	// route guard.
	WebRoot        string
	AllowedOrigins []string

	// SecureCookies marks the session cookie Secure.
	SecureCookies bool
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	opts         Options

	store            store.Store
	WaitlistService  *service.WaitlistService
	AuthService      *service.AuthService
	PropertyService  *service.PropertyService
	BookingService   *service.BookingService
	DashboardService *service.DashboardService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	opts Options,
) *Router {
	if opts.AdminAuthMode == "" {
		opts.AdminAuthMode = AdminAuthSession
	}

	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		opts:         opts,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}
	if len(opts.AllowedOrigins) > 0 {
		r.middlewares = append(r.middlewares, cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{
				http.MethodHead,
				http.MethodGet,
				http.MethodPost,
				http.MethodPut,
				http.MethodPatch,
				http.MethodDelete,
				http.MethodOptions,
			},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", slogx.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.middlewares = append(r.middlewares,
		httpx.LoadSession(r.verifier),
		guard.Middleware(r.hasSession),
	)

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerWaitlist()
	r.registerAuth()
	r.registerProperties()
	r.registerBookings()
	r.registerDashboard()
	r.registerSystem()
	r.registerWeb()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			PropCloud API
//	@version		0.1.0
//	@description	Waitlist intake, account management and the property dashboard for PropCloud.io.
//	@description
//	@description				Session tokens are EdDSA signed JWTs, sent as the propcloud_session cookie or a bearer token.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/propcloud
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token or admin API key. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// hasSession reports whether LoadSession attached a principal.
func (r *Router) hasSession(req *http.Request) bool {
	_, ok := httpx.PrincipalFrom(req.Context())
	return ok
}

// adminGuard is the capability check in front of the waitlist admin API.
func (r *Router) adminGuard() []httpx.Middleware {
	if r.opts.AdminAuthMode == AdminAuthToken {
		return []httpx.Middleware{
			httpx.RequireStaticToken(r.opts.AdminAPIKey),
		}
	}
	return []httpx.Middleware{
		httpx.RequireSession(r.verifier),
		httpx.RequireRole(httpx.RoleAdmin, r.currentRole),
	}
}

// currentRole reads the role from the account store so that demoting an
// admin takes effect on their open sessions.
func (r *Router) currentRole(ctx context.Context, userID string) (string, error) {
	user, err := r.AuthService.CurrentUser(ctx, userID)
	if errors.Is(err, service.ErrUserNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (r *Router) authenticated(h http.Handler) http.Handler {
	return httpx.Chain(h,
		httpx.RequireSession(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
}

func (r *Router) registerWaitlist() {
	// POST /api/waitlist - public intake, moderate rate limit by IP
	joinHandler := &JoinWaitlistHandler{WaitlistService: r.WaitlistService}
	r.Mux.Handle("POST /api/waitlist",
		httpx.Chain(joinHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	exportHandler := &ExportWaitlistHandler{WaitlistService: r.WaitlistService}
	r.Mux.Handle("GET /api/waitlist/export",
		httpx.Chain(exportHandler, append(r.adminGuard(), httpx.RateLimitByUser(httpx.ModerateLimit))...),
	)

	inviteHandler := &InviteWaitlistHandler{WaitlistService: r.WaitlistService}
	r.Mux.Handle("POST /api/waitlist/invite",
		httpx.Chain(inviteHandler, append(r.adminGuard(), httpx.RateLimitByUser(httpx.ModerateLimit))...),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:   r.AuthService,
		SecureCookies: r.opts.SecureCookies,
	}

	// Credential endpoints - strict rate limit by IP
	r.Mux.Handle("POST /api/auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup), httpx.RateLimitByIP(httpx.StrictLimit)),
	)
	r.Mux.Handle("POST /api/auth/confirm",
		httpx.Chain(http.HandlerFunc(h.HandleConfirm), httpx.RateLimitByIP(httpx.StrictLimit)),
	)
	r.Mux.Handle("POST /api/auth/forgot-password",
		httpx.Chain(http.HandlerFunc(h.HandleForgotPassword), httpx.RateLimitByIP(httpx.StrictLimit)),
	)
	r.Mux.Handle("POST /api/auth/reset-password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword), httpx.RateLimitByIP(httpx.StrictLimit)),
	)

	// POST /login - strict rate limit by IP + email to slow credential stuffing
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	r.Mux.Handle("POST /api/auth/logout", http.HandlerFunc(h.HandleLogout))
	r.Mux.Handle("GET /api/auth/session", r.authenticated(http.HandlerFunc(h.HandleSession)))
}

func (r *Router) registerProperties() {
	h := &PropertiesHandler{PropertyService: r.PropertyService}

	r.Mux.Handle("GET /api/properties", r.authenticated(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /api/properties", r.authenticated(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /api/properties/{id}", r.authenticated(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PUT /api/properties/{id}", r.authenticated(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /api/properties/{id}", r.authenticated(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerBookings() {
	h := &BookingsHandler{BookingService: r.BookingService}

	r.Mux.Handle("GET /api/bookings", r.authenticated(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /api/bookings", r.authenticated(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /api/bookings/{id}", r.authenticated(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PATCH /api/bookings/{id}/status", r.authenticated(http.HandlerFunc(h.HandleUpdateStatus)))
}

func (r *Router) registerDashboard() {
	h := &OverviewHandler{DashboardService: r.DashboardService}
	r.Mux.Handle("GET /api/dashboard/overview", r.authenticated(h))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

// registerWeb serves the optional static site. Guarded prefixes have
// already been checked by the global guard middleware.
func (r *Router) registerWeb() {
	if r.opts.WebRoot == "" {
		return
	}
	r.Mux.Handle("GET /", http.FileServer(http.Dir(r.opts.WebRoot)))
}
