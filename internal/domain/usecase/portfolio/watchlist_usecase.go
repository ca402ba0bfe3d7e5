package portfolio

import (
	"context"
	"errors"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
)

// WatchlistUseCase manages the assets a user follows
type WatchlistUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewWatchlistUseCase creates a new WatchlistUseCase
func NewWatchlistUseCase(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *WatchlistUseCase {
	return &WatchlistUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"component": "watchlist"}),
	}
}

func (w *WatchlistUseCase) Add(ctx context.Context, req usecase.WatchlistAddRequest) (*entity.WatchlistEntry, error) {
	entry, err := entity.NewWatchlistEntry(req.UserID, req.AssetSymbol, req.AssetName, req.AssetType, req.Exchange, w.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := w.uow.GetWatchlistRepository(ctx).Create(ctx, entry); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return nil, errs.NewConflictError("watchlist", entry.AssetSymbol, errs.ErrDuplicateWatchlistEntry)
		}
		return nil, err
	}

	w.logger.Debug("Asset added to watchlist", map[string]any{
		"user_id": req.UserID,
		"symbol":  entry.AssetSymbol,
	})
	return entry, nil
}

func (w *WatchlistUseCase) ListForUser(ctx context.Context, userID uint64) ([]*entity.WatchlistEntry, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return w.uow.GetWatchlistRepository(ctx).ListByUser(ctx, userID)
}

// Remove deletes an entry. Entries of other users are reported as not found.
func (w *WatchlistUseCase) Remove(ctx context.Context, userID, entryID uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}
	if entryID == 0 {
		return errs.ErrInvalidID
	}
	return w.uow.GetWatchlistRepository(ctx).DeleteForUser(ctx, userID, entryID)
}
