package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
)

// DefaultVerificationTTL is how long an email verification token stays valid
const DefaultVerificationTTL = 24 * time.Hour

// Dependencies groups the collaborators of AuthUseCase
type Dependencies struct {
	UoW            persistence.UnitOfWork
	Ledger         usecase.LedgerUseCase
	Hasher         coreport.PasswordHasher
	Tokens         coreport.TokenIssuer
	TokenGenerator coreport.TokenGenerator
	Notifier       coreport.Notifier
	TimeProvider   coreport.TimeProvider
	Logger         coreport.Logger
	Metrics        coreport.Metrics
}

// AuthUseCase implements registration, email verification and login
type AuthUseCase struct {
	Dependencies
	verificationTTL time.Duration
}

// NewAuthUseCase creates a new AuthUseCase. A zero verificationTTL uses DefaultVerificationTTL.
func NewAuthUseCase(deps Dependencies, verificationTTL time.Duration) *AuthUseCase {
	if verificationTTL <= 0 {
		verificationTTL = DefaultVerificationTTL
	}
	if deps.Metrics == nil {
		deps.Metrics = coreport.NoopMetrics{}
	}
	deps.Logger = deps.Logger.With(map[string]any{"component": "auth"})
	return &AuthUseCase{Dependencies: deps, verificationTTL: verificationTTL}
}

// Register creates an unverified user with an empty wallet and sends the verification token
func (a *AuthUseCase) Register(ctx context.Context, req usecase.RegisterRequest) (*entity.User, error) {
	user, err := a.newUser(req.Username, req.Email, req.Password)
	if err != nil {
		a.Metrics.AuthEvent("register", "invalid")
		return nil, err
	}
	user.SetProfile(req.FirstName, req.LastName)

	token, err := a.TokenGenerator.Generate()
	if err != nil {
		a.Logger.Error("Failed to generate verification token", map[string]any{"error": err.Error()})
		return nil, errs.ErrInternalServer
	}
	user.IssueVerificationToken(token, a.verificationTTL, a.TimeProvider)

	if err := a.createWithWallet(ctx, user); err != nil {
		a.Metrics.AuthEvent("register", "failure")
		return nil, err
	}

	// delivery problems must not undo the registration; the user can ask again
	if err := a.Notifier.SendVerification(ctx, user.Email, user.Username, token); err != nil {
		a.Logger.Warn("Failed to send verification", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}

	a.Metrics.AuthEvent("register", "success")
	a.Logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}

func (a *AuthUseCase) newUser(username, email, password string) (*entity.User, error) {
	if err := entity.ValidatePassword(password); err != nil {
		return nil, errs.NewValidationError("password", err)
	}
	// validate before the expensive hash
	if _, err := entity.NewUser(username, email, "pending", a.TimeProvider); err != nil {
		return nil, err
	}

	hash, err := a.Hasher.Hash(password)
	if err != nil {
		a.Logger.Error("Failed to hash password", map[string]any{"error": err.Error()})
		return nil, errs.ErrInternalServer
	}
	return entity.NewUser(username, email, hash, a.TimeProvider)
}

func (a *AuthUseCase) createWithWallet(ctx context.Context, user *entity.User) error {
	return a.UoW.Do(ctx, func(ctx context.Context) error {
		userRepo := a.UoW.GetUserRepository(ctx)

		exists, err := userRepo.ExistsByUsernameOrEmail(ctx, user.Username, user.Email)
		if err != nil {
			return err
		}
		if exists {
			return errs.NewConflictError("user", user.Username, errs.ErrDuplicateUser)
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		_, err = a.Ledger.CreateWallet(ctx, user.ID)
		return err
	})
}

// VerifyEmail consumes a verification token
func (a *AuthUseCase) VerifyEmail(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errs.ErrVerificationTokenNotFound
	}

	return a.UoW.Do(ctx, func(ctx context.Context) error {
		userRepo := a.UoW.GetUserRepository(ctx)

		user, err := userRepo.GetByVerificationToken(ctx, token)
		if err != nil {
			return err
		}
		if err := user.ConfirmEmail(token, a.TimeProvider); err != nil {
			a.Logger.Info("Verification token refused", map[string]any{
				"user_id": user.ID,
				"reason":  err.Error(),
			})
			return err
		}
		if err := userRepo.SaveEmailConfirmation(ctx, user, token); err != nil {
			return err
		}

		a.Metrics.AuthEvent("verify_email", "success")
		a.Logger.Info("Email verified", map[string]any{"user_id": user.ID})
		return nil
	})
}

// Login checks credentials and issues an access token
func (a *AuthUseCase) Login(ctx context.Context, username, password string) (*usecase.LoginResult, error) {
	user, err := a.UoW.GetUserRepository(ctx).GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			a.Metrics.AuthEvent("login", "failure")
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}

	if err := a.Hasher.Compare(user.PasswordHash, password); err != nil {
		a.Metrics.AuthEvent("login", "failure")
		a.Logger.Info("Login refused", map[string]any{"user_id": user.ID})
		return nil, errs.ErrUnauthorized
	}

	if !user.IsEmailVerified {
		a.Metrics.AuthEvent("login", "unverified")
		return nil, errs.ErrEmailNotVerified
	}

	token, expiresAt, err := a.Tokens.Issue(coreport.Identity{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
	if err != nil {
		a.Logger.Error("Failed to issue access token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	a.Metrics.AuthEvent("login", "success")
	return &usecase.LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Me returns the caller's user record
func (a *AuthUseCase) Me(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return a.UoW.GetUserRepository(ctx).GetByID(ctx, userID)
}

// SeedAdmin creates an email-verified admin with a wallet. An existing user
// with the same name is left untouched.
func (a *AuthUseCase) SeedAdmin(ctx context.Context, username, email, password string) error {
	existing, err := a.UoW.GetUserRepository(ctx).GetByUsername(ctx, strings.TrimSpace(username))
	switch {
	case err == nil:
		if !existing.IsAdmin {
			a.Logger.Warn("Seed admin username belongs to a regular user", map[string]any{"user_id": existing.ID})
		}
		return nil
	case !errors.Is(err, errs.ErrUserNotFound):
		return err
	}

	user, err := a.newUser(username, email, password)
	if err != nil {
		return err
	}
	user.IsAdmin = true
	user.IsEmailVerified = true

	if err := a.createWithWallet(ctx, user); err != nil {
		return err
	}

	a.Logger.Info("Admin account seeded", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}
