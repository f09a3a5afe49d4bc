package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/service"
	"github.com/aussiebroadwan/propcloud/pkg/httpx"
	"github.com/aussiebroadwan/propcloud/pkg/propcloudsdk"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
)

const forgotPasswordMessage = "If an account exists for that email, a reset link has been sent"

// AuthHandler serves the account endpoints.
type AuthHandler struct {
	AuthService   *service.AuthService
	SecureCookies bool
}

// HandleSignup godoc
//
//	@Summary		Sign Up
//	@Description	Creates an account and emails a confirmation link. An invited waitlist entry for the email becomes active.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		propcloudsdk.SignupRequest		true	"Account details"
//	@Success		201		{object}	propcloudsdk.MessageResponse	"Confirmation email sent"
//	@Failure		400		{object}	propcloudsdk.ErrorResponse		"Invalid email or password"
//	@Failure		409		{object}	propcloudsdk.ErrorResponse		"Email already registered"
//	@Failure		500		{object}	propcloudsdk.ErrorResponse		"Internal error"
//	@Router			/api/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req propcloudsdk.SignupRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.AuthService.Signup(ctx, service.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			httpx.WriteError(w, http.StatusBadRequest, "Valid email is required")
		case errors.Is(err, service.ErrWeakPassword):
			httpx.WriteError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteError(w, http.StatusConflict, "Email already registered")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to create account")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, propcloudsdk.MessageResponse{
		Message: "Check your email to confirm your account",
	})
}

// HandleConfirm godoc
//
//	@Summary		Confirm Email
//	@Description	Consumes the token from the confirmation email.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		propcloudsdk.ConfirmRequest		true	"Confirmation token"
//	@Success		200		{object}	propcloudsdk.MessageResponse	"Email confirmed"
//	@Failure		400		{object}	propcloudsdk.ErrorResponse		"Invalid or expired token"
//	@Failure		500		{object}	propcloudsdk.ErrorResponse		"Internal error"
//	@Router			/api/auth/confirm [post].
func (h *AuthHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	var req propcloudsdk.ConfirmRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.AuthService.Confirm(r.Context(), req.Token); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid or expired token")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to confirm email")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, propcloudsdk.MessageResponse{Message: "Email confirmed"})
}

// HandleLogin godoc
//
//	@Summary		Log In
//	@Description	Exchanges credentials for a session token, set as the propcloud_session cookie and returned in the body.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		propcloudsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	propcloudsdk.LoginResponse	"access_token, expires_at, user"
//	@Failure		400		{object}	propcloudsdk.ErrorResponse	"Invalid request body"
//	@Failure		401		{object}	propcloudsdk.ErrorResponse	"Invalid email or password"
//	@Failure		403		{object}	propcloudsdk.ErrorResponse	"Email not confirmed"
//	@Failure		429		{object}	propcloudsdk.ErrorResponse	"Rate limited"
//	@Failure		500		{object}	propcloudsdk.ErrorResponse	"Internal error"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req propcloudsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Info("login failed")
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, service.ErrEmailNotConfirmed):
			httpx.WriteError(w, http.StatusForbidden, "Email not confirmed")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	log.Info("user logged in", "user_id", sess.User.ID)

	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.WriteJSON(w, http.StatusOK, propcloudsdk.LoginResponse{
		AccessToken: sess.Token,
		ExpiresAt:   sess.ExpiresAt,
		User:        toUser(sess.User),
	})
}

// HandleLogout godoc
//
//	@Summary		Log Out
//	@Description	Expires the session cookie. Session tokens are stateless and stay valid until they expire.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	propcloudsdk.MessageResponse	"Logged out"
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.WriteJSON(w, http.StatusOK, propcloudsdk.MessageResponse{Message: "Logged out"})
}

// HandleSession godoc
//
//	@Summary		Current Session
//	@Description	Returns the account behind the session token.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	propcloudsdk.SessionResponse	"user"
//	@Failure		401	{object}	propcloudsdk.ErrorResponse		"Unauthorized"
//	@Router			/api/auth/session [get].
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, _ := httpx.PrincipalFrom(ctx)
	user, err := h.AuthService.CurrentUser(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		log.Error("failed to load session user", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to load session")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, propcloudsdk.SessionResponse{User: toUser(user)})
}

// HandleForgotPassword godoc
//
//	@Summary		Forgot Password
//	@Description	Emails a reset link when the account exists. The response is the same either way.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		propcloudsdk.ForgotPasswordRequest	true	"Account email"
//	@Success		200		{object}	propcloudsdk.MessageResponse		"Reset link sent if the account exists"
//	@Failure		400		{object}	propcloudsdk.ErrorResponse			"Invalid request body"
//	@Router			/api/auth/forgot-password [post].
func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req propcloudsdk.ForgotPasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Failures are logged by the service and not reported, so the response
	// never reveals whether the account exists.
	_ = h.AuthService.ForgotPassword(r.Context(), req.Email)

	httpx.WriteJSON(w, http.StatusOK, propcloudsdk.MessageResponse{Message: forgotPasswordMessage})
}

// HandleResetPassword godoc
//
//	@Summary		Reset Password
//	@Description	Consumes the token from the reset email and sets a new password.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		propcloudsdk.ResetPasswordRequest	true	"Reset token and new password"
//	@Success		200		{object}	propcloudsdk.MessageResponse		"Password updated"
//	@Failure		400		{object}	propcloudsdk.ErrorResponse			"Invalid token or weak password"
//	@Failure		500		{object}	propcloudsdk.ErrorResponse			"Internal error"
//	@Router			/api/auth/reset-password [post].
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req propcloudsdk.ResetPasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.AuthService.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword):
			httpx.WriteError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		case errors.Is(err, service.ErrInvalidToken):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid or expired token")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to reset password")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, propcloudsdk.MessageResponse{Message: "Password updated"})
}
