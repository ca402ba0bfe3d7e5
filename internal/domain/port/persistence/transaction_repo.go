package persistence

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
)

// TransactionRepository defines the methods needed to store ledger transactions
type TransactionRepository interface {
	// Create saves a new transaction and sets its ID
	//
	// Possible errors:
	// - ErrUserNotFound: If referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// ListByUser returns a user's transactions, oldest first
	ListByUser(ctx context.Context, userID uint64, page Page) ([]*entity.Transaction, error)

	// ListByStatus returns transactions with the given status, oldest first
	ListByStatus(ctx context.Context, status entity.TransactionStatus, page Page) ([]*entity.Transaction, error)

	// SaveDecision persists the terminal status only if the stored transaction is still pending
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrTransactionAlreadyDecided: If the transaction was decided concurrently
	SaveDecision(ctx context.Context, transaction *entity.Transaction) error

	// CountByStatus returns the number of transactions with the given status
	CountByStatus(ctx context.Context, status entity.TransactionStatus) (int64, error)
}
