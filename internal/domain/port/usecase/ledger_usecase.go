package usecase

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
)

// LedgerUseCase exposes wallet balances. Only the transaction engine changes them.
type LedgerUseCase interface {
	// GetBalance returns the user's wallet
	GetBalance(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// AdjustBalance applies delta inside the unit of work carried by ctx
	AdjustBalance(ctx context.Context, userID uint64, delta int64) (*entity.Wallet, error)

	// CreateWallet creates an empty USD wallet inside the unit of work carried by ctx
	CreateWallet(ctx context.Context, userID uint64) (*entity.Wallet, error)
}
