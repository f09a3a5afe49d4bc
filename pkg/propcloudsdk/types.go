package propcloudsdk

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges a mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Waitlist
// ============================================================================

// JoinWaitlistRequest is the public signup form. Only Email is required.
type JoinWaitlistRequest struct {
	Email            string  `json:"email"`
	FullName         *string `json:"fullName,omitempty"`
	CompanyName      *string `json:"companyName,omitempty"`
	PropertiesCount  *int    `json:"propertiesCount,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Website          *string `json:"website,omitempty"`
	CurrentSoftware  *string `json:"currentSoftware,omitempty"`
	PainPoints       *string `json:"painPoints,omitempty"`
	MarketingConsent bool    `json:"marketingConsent,omitempty"`
}

// JoinWaitlistResponse is returned for both new and repeat signups; Message
// tells them apart.
type JoinWaitlistResponse struct {
	Message  string `json:"message"`
	Position int64  `json:"position"`
}

const (
	MessageJoined            = "Successfully joined waitlist"
	MessageAlreadyRegistered = "Email already registered"
)

type WaitlistEntry struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	FullName         *string    `json:"full_name"`
	CompanyName      *string    `json:"company_name"`
	PropertiesCount  *int       `json:"properties_count"`
	Phone            *string    `json:"phone"`
	Website          *string    `json:"website"`
	CurrentSoftware  *string    `json:"current_software"`
	PainPoints       *string    `json:"pain_points"`
	MarketingConsent bool       `json:"marketing_consent"`
	Position         int64      `json:"position"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	InvitedAt        *time.Time `json:"invited_at"`
	ActivatedAt      *time.Time `json:"activated_at"`
}

type WaitlistExportResponse struct {
	Waitlist []WaitlistEntry `json:"waitlist"`
}

type InviteRequest struct {
	Email string `json:"email"`
}

// ============================================================================
// Auth
// ============================================================================

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

type ConfirmRequest struct {
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	EmailConfirmed bool   `json:"email_confirmed"`
}

// LoginResponse carries the session token. Browsers also receive it as the
// session cookie.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}

type SessionResponse struct {
	User User `json:"user"`
}

// ============================================================================
// Properties
// ============================================================================

// PropertyRequest is the body of create and full update.
type PropertyRequest struct {
	Name          string           `json:"name"`
	Description   *string          `json:"description,omitempty"`
	PropertyType  *string          `json:"property_type,omitempty"`
	Status        string           `json:"status,omitempty"`
	Address       *string          `json:"address,omitempty"`
	City          *string          `json:"city,omitempty"`
	State         *string          `json:"state,omitempty"`
	ZipCode       *string          `json:"zip_code,omitempty"`
	Country       *string          `json:"country,omitempty"`
	Bedrooms      *int             `json:"bedrooms,omitempty"`
	Bathrooms     *float64         `json:"bathrooms,omitempty"`
	MaxGuests     *int             `json:"max_guests,omitempty"`
	PricePerNight *decimal.Decimal `json:"price_per_night,omitempty"`
	CleaningFee   *decimal.Decimal `json:"cleaning_fee,omitempty"`
	Images        []string         `json:"images,omitempty"`
	Amenities     []string         `json:"amenities,omitempty"`
}

type Property struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Description   *string             `json:"description"`
	PropertyType  *string             `json:"property_type"`
	Status        string              `json:"status"`
	Address       *string             `json:"address"`
	City          *string             `json:"city"`
	State         *string             `json:"state"`
	ZipCode       *string             `json:"zip_code"`
	Country       *string             `json:"country"`
	Bedrooms      *int                `json:"bedrooms"`
	Bathrooms     *float64            `json:"bathrooms"`
	MaxGuests     *int                `json:"max_guests"`
	PricePerNight decimal.NullDecimal `json:"price_per_night" swaggertype:"string"`
	CleaningFee   decimal.NullDecimal `json:"cleaning_fee" swaggertype:"string"`
	Images        []string            `json:"images"`
	Amenities     []string            `json:"amenities"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type PropertyListResponse struct {
	Properties []Property `json:"properties"`
}

// ============================================================================
// Bookings
// ============================================================================

type BookingRequest struct {
	PropertyID string           `json:"property_id"`
	GuestName  string           `json:"guest_name"`
	GuestEmail *string          `json:"guest_email,omitempty"`
	GuestPhone *string          `json:"guest_phone,omitempty"`
	CheckIn    string           `json:"check_in"`  // YYYY-MM-DD
	CheckOut   string           `json:"check_out"` // YYYY-MM-DD
	TotalPrice *decimal.Decimal `json:"total_price,omitempty" swaggertype:"string"`
	Status     string           `json:"status,omitempty"`
}

type BookingStatusRequest struct {
	Status string `json:"status"`
}

type Booking struct {
	ID           string          `json:"id"`
	PropertyID   string          `json:"property_id"`
	PropertyName string          `json:"property_name"`
	GuestName    string          `json:"guest_name"`
	GuestEmail   *string         `json:"guest_email"`
	GuestPhone   *string         `json:"guest_phone"`
	CheckIn      string          `json:"check_in"`
	CheckOut     string          `json:"check_out"`
	Nights       int             `json:"nights"`
	TotalPrice   decimal.Decimal `json:"total_price" swaggertype:"string"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
}

// ============================================================================
// Dashboard
// ============================================================================

type OverviewResponse struct {
	Properties       int             `json:"properties"`
	ActiveProperties int             `json:"active_properties"`
	UpcomingBookings int             `json:"upcoming_bookings"`
	Revenue30d       decimal.Decimal `json:"revenue_30d" swaggertype:"string"`
	RecentBookings   []Booking       `json:"recent_bookings"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// JWK is an Ed25519 session verification key.
type JWK struct {
	KeyType   string `json:"kty"`
	Curve     string `json:"crv"`
	X         string `json:"x"`
	KeyID     string `json:"kid"`
	Use       string `json:"use"`
	Algorithm string `json:"alg"`
}

// JWKSResponse lists the keys session tokens may be signed with.
type JWKSResponse struct {
	Keys []JWK `json:"keys"`
}

// ListOptions narrows list endpoints. Status is the tab ("all" or empty for
// everything); Search is a case-insensitive substring.
type ListOptions struct {
	Status string
	Search string
}
