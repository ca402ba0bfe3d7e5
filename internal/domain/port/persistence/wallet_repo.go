package persistence

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
)

// WalletRepository stores user cash balances
type WalletRepository interface {
	// Create inserts a wallet. Each user has exactly one.
	//
	// Possible errors:
	// - ErrConstraintViolation: If the user already has a wallet
	Create(ctx context.Context, wallet *entity.Wallet) error

	// GetByUserID retrieves the wallet of a user
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user has no wallet
	// - ErrDatabaseConnection: If database connection fails
	GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// AdjustBalance adds delta to the balance in a single conditional statement
	// and returns the updated wallet. The balance never goes below zero.
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user has no wallet
	// - ErrInsufficientFunds: If the debit exceeds the balance
	// - ErrBalanceLimit: If the credit would take the balance past MaxAmountInCents
	// - ErrDatabaseConnection: If database connection fails
	AdjustBalance(ctx context.Context, userID uint64, delta int64) (*entity.Wallet, error)
}
