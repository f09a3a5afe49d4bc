package app

import (
	"context"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/service"
)

// PromoteAdmin grants the admin role to the account registered under email.
// The account must have signed in again for its session to carry the role.
func PromoteAdmin(ctx context.Context, cfg Config, email string) error {
	db, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	auth := &service.AuthService{Store: db}
	return auth.Promote(ctx, email)
}

// Migrate applies pending database migrations and exits.
func Migrate(cfg Config) error {
	db, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	return db.Close()
}
