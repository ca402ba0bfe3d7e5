package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Do runs fn inside a transaction. It commits when fn returns nil and rolls back otherwise.
	// If ctx already carries a transaction, fn joins it.
	Do(ctx context.Context, fn func(ctx context.Context) error) error

	// Repositories bound to the transaction carried by ctx, or to the pool when there is none
	GetUserRepository(ctx context.Context) UserRepository
	GetWalletRepository(ctx context.Context) WalletRepository
	GetKYCRepository(ctx context.Context) KYCRepository
	GetTransactionRepository(ctx context.Context) TransactionRepository
	GetPortfolioRepository(ctx context.Context) PortfolioRepository
	GetWatchlistRepository(ctx context.Context) WatchlistRepository
	GetContentRepository(ctx context.Context) ContentRepository
	GetSettingRepository(ctx context.Context) SettingRepository
}
