package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/simplecyberhub/txc/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	EntityTypeUser        EntityType = "user"
	EntityTypeWallet      EntityType = "wallet"
	EntityTypeKYC         EntityType = "kyc"
	EntityTypeTransaction EntityType = "transaction"
	EntityTypeContent     EntityType = "content"
	EntityTypeSetting     EntityType = "setting"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error that escaped the repositories to a domain error.
// Errors that already carry a domain kind are returned unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if isDomainError(err) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation: %s", domainErr.ErrDatabaseConnection, operation, err.Error())
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "lock timeout"):
		return fmt.Errorf("%w: %s operation was interrupted by a concurrent update", domainErr.ErrConflict, operation)

	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return domainErr.ErrConstraintViolation

	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint"):
		return domainErr.ErrConstraintViolation

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "database is closed"):
		return domainErr.ErrDatabaseConnection

	case strings.Contains(errMsg, "timeout"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return fmt.Errorf("%w: %s: %s", domainErr.ErrInternalServer, operation, err.Error())
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeUser:
			return domainErr.ErrUserNotFound
		case EntityTypeWallet:
			return domainErr.ErrWalletNotFound
		case EntityTypeKYC:
			return domainErr.ErrKYCNotFound
		case EntityTypeTransaction:
			return domainErr.ErrTransactionNotFound
		case EntityTypeContent:
			return domainErr.ErrContentNotFound
		case EntityTypeSetting:
			return domainErr.ErrSettingNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}

func isDomainError(err error) bool {
	for _, kind := range []error{
		domainErr.ErrValidation,
		domainErr.ErrConflict,
		domainErr.ErrVerificationRequired,
		domainErr.ErrInsufficientFunds,
		domainErr.ErrNotFound,
		domainErr.ErrNotSupported,
		domainErr.ErrUnauthorized,
		domainErr.ErrForbidden,
		domainErr.ErrEmailNotVerified,
		domainErr.ErrRateLimited,
		domainErr.ErrInternalServer,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
