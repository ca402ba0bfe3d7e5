package persistence

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
)

// KYCRepository stores identity document submissions
type KYCRepository interface {
	// Create inserts a pending record
	//
	// Possible errors:
	// - ErrDuplicateKYC: If the user already has a record
	Create(ctx context.Context, record *entity.KYCRecord) error

	// GetByID retrieves a record by ID
	//
	// Possible errors:
	// - ErrKYCNotFound: If the record doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.KYCRecord, error)

	// GetByUserID retrieves the record of a user
	//
	// Possible errors:
	// - ErrKYCNotFound: If the user never submitted
	GetByUserID(ctx context.Context, userID uint64) (*entity.KYCRecord, error)

	// ListByStatus returns records with the given status, oldest first
	ListByStatus(ctx context.Context, status entity.KYCStatus, page Page) ([]*entity.KYCRecord, error)

	// SaveDecision persists a decision only if the stored record is still pending
	//
	// Possible errors:
	// - ErrKYCNotFound: If the record doesn't exist
	// - ErrKYCAlreadyDecided: If the record was decided concurrently
	SaveDecision(ctx context.Context, record *entity.KYCRecord) error

	// CountByStatus returns the number of records with the given status
	CountByStatus(ctx context.Context, status entity.KYCStatus) (int64, error)
}
