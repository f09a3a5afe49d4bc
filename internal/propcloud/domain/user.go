package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID               string
	Email            string // stored lowercased
	PasswordHash     string // argon2id PHC string
	FullName         string
	Role             string
	EmailConfirmedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (u User) Confirmed() bool { return u.EmailConfirmedAt != nil }

type TokenPurpose string

const (
	PurposeConfirmEmail  TokenPurpose = "confirm_email"
	PurposeResetPassword TokenPurpose = "reset_password"
)

// AuthToken is a single use token mailed to a user. Only the fingerprint of
// the token is persisted.
type AuthToken struct {
	ID        string
	UserID    string
	Purpose   TokenPurpose
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}
