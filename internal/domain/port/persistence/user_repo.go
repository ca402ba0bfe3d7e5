package persistence

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
)

// UserRepository defines the methods needed to store and look up account holders
type UserRepository interface {
	// Create inserts a new user and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If the username or email is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by username. Used for login.
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that username
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// GetByVerificationToken retrieves the user holding an email verification token
	//
	// Possible errors:
	// - ErrVerificationTokenNotFound: If no user holds the token
	// - ErrDatabaseConnection: If database connection fails
	GetByVerificationToken(ctx context.Context, token string) (*entity.User, error)

	// ExistsByUsernameOrEmail reports whether either identifier is taken
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// SaveEmailConfirmation writes the email-verified flag and clears the
	// verification token. Only the email verification columns are touched, and
	// only while the row still holds token.
	//
	// Possible errors:
	// - ErrVerificationTokenNotFound: If the token was consumed or replaced meanwhile
	// - ErrDatabaseConnection: If database connection fails
	SaveEmailConfirmation(ctx context.Context, user *entity.User, token string) error

	// MarkVerified sets the KYC-approved flag
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	MarkVerified(ctx context.Context, userID uint64) error

	// List returns users ordered by ID
	List(ctx context.Context, page Page) ([]*entity.User, error)

	// Count returns the number of users
	Count(ctx context.Context) (int64, error)
}
