package usecase

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
)

// PortfolioUseCase reads and appends holdings
type PortfolioUseCase interface {
	ListForUser(ctx context.Context, userID uint64) ([]*entity.PortfolioEntry, error)

	// RecordBuy appends a holding inside the unit of work carried by ctx
	RecordBuy(ctx context.Context, entry *entity.PortfolioEntry) error
}

// WatchlistAddRequest is an asset to follow
type WatchlistAddRequest struct {
	UserID      uint64
	AssetSymbol string
	AssetName   string
	AssetType   string
	Exchange    string
}

// WatchlistUseCase manages followed assets
type WatchlistUseCase interface {
	Add(ctx context.Context, req WatchlistAddRequest) (*entity.WatchlistEntry, error)
	ListForUser(ctx context.Context, userID uint64) ([]*entity.WatchlistEntry, error)
	Remove(ctx context.Context, userID, entryID uint64) error
}
