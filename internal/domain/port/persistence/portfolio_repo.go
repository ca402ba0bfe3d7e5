package persistence

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
)

// PortfolioRepository stores holdings recorded by buys
type PortfolioRepository interface {
	Create(ctx context.Context, entry *entity.PortfolioEntry) error
	ListByUser(ctx context.Context, userID uint64) ([]*entity.PortfolioEntry, error)
}

// WatchlistRepository stores the assets a user follows
type WatchlistRepository interface {
	// Create adds an entry
	//
	// Possible errors:
	// - ErrDuplicateWatchlistEntry: If the user already follows the symbol
	Create(ctx context.Context, entry *entity.WatchlistEntry) error

	ListByUser(ctx context.Context, userID uint64) ([]*entity.WatchlistEntry, error)

	// DeleteForUser removes an entry owned by the user
	//
	// Possible errors:
	// - ErrWatchlistEntryNotFound: If no such entry belongs to the user
	DeleteForUser(ctx context.Context, userID, entryID uint64) error
}
