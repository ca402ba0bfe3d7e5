package usecase

import (
	"context"
	"time"

	"github.com/simplecyberhub/txc/internal/domain/entity"
)

// RegisterRequest holds the fields accepted at registration
type RegisterRequest struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginResult is returned after a successful login
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// AuthUseCase defines registration, email verification and login
type AuthUseCase interface {
	// Register creates the user and an empty wallet, then sends the verification token
	Register(ctx context.Context, req RegisterRequest) (*entity.User, error)

	// VerifyEmail consumes a verification token
	VerifyEmail(ctx context.Context, token string) error

	// Login checks credentials and issues an access token
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Me returns the caller's user record
	Me(ctx context.Context, userID uint64) (*entity.User, error)

	// SeedAdmin creates the configured admin account if it does not exist
	SeedAdmin(ctx context.Context, username, email, password string) error
}
