package migration

import (
	"context"

	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
)

// AdminSeed holds the configured back-office account
type AdminSeed struct {
	Username string
	Email    string
	Password string
}

// SeedAdmin creates the configured admin account if it is missing. An empty username disables seeding.
func SeedAdmin(ctx context.Context, auth usecase.AuthUseCase, seed AdminSeed, logger coreport.Logger) error {
	if seed.Username == "" {
		logger.Info("Admin seeding disabled", nil)
		return nil
	}

	if err := auth.SeedAdmin(ctx, seed.Username, seed.Email, seed.Password); err != nil {
		logger.Error("Failed to seed admin account", map[string]any{
			"username": seed.Username,
			"error":    err.Error(),
		})
		return err
	}
	return nil
}
