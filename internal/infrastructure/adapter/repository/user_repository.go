package repository

import (
	"context"
	"fmt"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:                      m.ID,
		Username:                m.Username,
		Email:                   m.Email,
		PasswordHash:            m.PasswordHash,
		FirstName:               m.FirstName,
		LastName:                m.LastName,
		IsEmailVerified:         m.IsEmailVerified,
		IsVerified:              m.IsVerified,
		IsAdmin:                 m.IsAdmin,
		VerificationToken:       m.VerificationToken,
		VerificationTokenExpiry: m.VerificationTokenExpiry,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}

func userToModel(u *entity.User) model.User {
	return model.User{
		ID:                      u.ID,
		Username:                u.Username,
		Email:                   u.Email,
		PasswordHash:            u.PasswordHash,
		FirstName:               u.FirstName,
		LastName:                u.LastName,
		IsEmailVerified:         u.IsEmailVerified,
		IsVerified:              u.IsVerified,
		IsAdmin:                 u.IsAdmin,
		VerificationToken:       u.VerificationToken,
		VerificationTokenExpiry: u.VerificationTokenExpiry,
		CreatedAt:               u.CreatedAt,
		UpdatedAt:               u.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.Translate(err, errs.ErrUserNotFound, errs.ErrDuplicateUser)
	if errs.IsNotFoundError(mapped) || errs.IsConflictError(mapped) {
		r.logger.Debug(fmt.Sprintf("User lookup failed when %s", operation), fields)
		return mapped
	}

	fields["error"] = err.Error()
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return mapped
}

// Create creates a new user and sets its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := userToModel(user)

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, map[string]any{"username": user.Username})
	}

	user.ID = userModel.ID
	r.logger.Info("User created successfully", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, map[string]any{"user_id": id})
	}
	return userToEntity(&userModel), nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting user by username", err, map[string]any{"username": username})
	}
	return userToEntity(&userModel), nil
}

// GetByVerificationToken retrieves the user holding the token
func (r *UserRepository) GetByVerificationToken(ctx context.Context, token string) (*entity.User, error) {
	var userModel model.User
	err := r.db.WithContext(ctx).Where("verification_token = ?", token).First(&userModel).Error
	if err != nil {
		mapped := r.handleDatabaseError("getting user by verification token", err, map[string]any{})
		if errs.IsNotFoundError(mapped) {
			return nil, errs.ErrVerificationTokenNotFound
		}
		return nil, mapped
	}
	return userToEntity(&userModel), nil
}

// ExistsByUsernameOrEmail reports whether either identifier is taken
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking user existence", err, map[string]any{"username": username})
	}
	return count > 0, nil
}

// SaveEmailConfirmation writes the email verification columns while the row still holds token
func (r *UserRepository) SaveEmailConfirmation(ctx context.Context, user *entity.User, token string) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND verification_token = ?", user.ID, token).
		Updates(map[string]any{
			"is_email_verified":         user.IsEmailVerified,
			"verification_token":        user.VerificationToken,
			"verification_token_expiry": user.VerificationTokenExpiry,
			"updated_at":                user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("saving email confirmation", result.Error, map[string]any{"user_id": user.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrVerificationTokenNotFound
	}

	r.logger.Debug("Email confirmation saved", map[string]any{"user_id": user.ID})
	return nil
}

// MarkVerified sets the KYC-approved flag
func (r *UserRepository) MarkVerified(ctx context.Context, userID uint64) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"is_verified": true,
			"updated_at":  r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("marking user verified", result.Error, map[string]any{"user_id": userID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Info("User marked verified", map[string]any{"user_id": userID})
	return nil
}

// List returns users ordered by ID
func (r *UserRepository) List(ctx context.Context, page persistence.Page) ([]*entity.User, error) {
	var models []model.User
	if err := paginate(r.db.WithContext(ctx), page).Order("id ASC").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing users", err, map[string]any{})
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, userToEntity(&models[i]))
	}
	return users, nil
}

// Count returns the number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting users", err, map[string]any{})
	}
	return count, nil
}
