package propcloudsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client calls the unauthenticated endpoints and opens Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// JoinWaitlist signs an email up. Repeat signups succeed with the original
// position and MessageAlreadyRegistered.
func (c *Client) JoinWaitlist(ctx context.Context, req JoinWaitlistRequest) (*JoinWaitlistResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/waitlist", "", req)
	if err != nil {
		return nil, err
	}

	var out JoinWaitlistResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup creates an account. The confirmation link is emailed.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/signup", "", req)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusCreated)
}

func (c *Client) ConfirmEmail(ctx context.Context, token string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/confirm", "", ConfirmRequest{Token: token})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &Session{client: c, token: out.AccessToken, expiresAt: out.ExpiresAt, User: out.User}, nil
}

// ForgotPassword always succeeds for well formed requests, whether or not
// the account exists.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/forgot-password", "", ForgotPasswordRequest{Email: email})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/reset-password", "",
		ResetPasswordRequest{Token: token, Password: password})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// NewSessionFromToken wraps an existing session token or the static admin
// API key.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetJWKS fetches the keys that verify session tokens.
func (c *Client) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/.well-known/jwks.json", "", nil)
	if err != nil {
		return nil, err
	}

	var jwks JWKSResponse
	if err := decodeJSON(resp, &jwks, http.StatusOK); err != nil {
		return nil, err
	}
	return &jwks, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
