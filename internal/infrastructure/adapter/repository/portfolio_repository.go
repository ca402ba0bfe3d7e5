package repository

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PortfolioRepository implements PortfolioRepository interface using GORM
type PortfolioRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPortfolioRepository creates a new PortfolioRepository instance
func NewPortfolioRepository(db *gorm.DB, logger coreport.Logger) *PortfolioRepository {
	return &PortfolioRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create appends a holding and sets its ID
func (r *PortfolioRepository) Create(ctx context.Context, entry *entity.PortfolioEntry) error {
	entryModel := model.PortfolioEntry{
		UserID:       entry.UserID,
		AssetSymbol:  entry.AssetSymbol,
		AssetType:    entry.AssetType,
		Quantity:     entry.Quantity,
		AveragePrice: entry.AveragePrice,
		CreatedAt:    entry.CreatedAt,
		UpdatedAt:    entry.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&entryModel).Error; err != nil {
		r.logger.Error("Failed to create portfolio entry", map[string]any{
			"user_id": entry.UserID,
			"symbol":  entry.AssetSymbol,
			"error":   err.Error(),
		})
		return r.errorClassifier.Translate(err, errs.ErrNotFound, errs.ErrConstraintViolation)
	}

	entry.ID = entryModel.ID
	return nil
}

// ListByUser returns the user's holdings, oldest first
func (r *PortfolioRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.PortfolioEntry, error) {
	var models []model.PortfolioEntry
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&models).Error
	if err != nil {
		return nil, r.errorClassifier.Translate(err, errs.ErrNotFound, errs.ErrConstraintViolation)
	}

	entries := make([]*entity.PortfolioEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, &entity.PortfolioEntry{
			ID:           m.ID,
			UserID:       m.UserID,
			AssetSymbol:  m.AssetSymbol,
			AssetType:    m.AssetType,
			Quantity:     m.Quantity,
			AveragePrice: m.AveragePrice,
			CreatedAt:    m.CreatedAt,
			UpdatedAt:    m.UpdatedAt,
		})
	}
	return entries, nil
}

// WatchlistRepository implements WatchlistRepository interface using GORM
type WatchlistRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWatchlistRepository creates a new WatchlistRepository instance
func NewWatchlistRepository(db *gorm.DB, logger coreport.Logger) *WatchlistRepository {
	return &WatchlistRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create adds an entry and sets its ID
func (r *WatchlistRepository) Create(ctx context.Context, entry *entity.WatchlistEntry) error {
	entryModel := model.WatchlistEntry{
		UserID:      entry.UserID,
		AssetSymbol: entry.AssetSymbol,
		AssetName:   entry.AssetName,
		AssetType:   entry.AssetType,
		Exchange:    entry.Exchange,
		CreatedAt:   entry.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&entryModel).Error; err != nil {
		return r.errorClassifier.Translate(err, errs.ErrWatchlistEntryNotFound, errs.ErrDuplicateWatchlistEntry)
	}

	entry.ID = entryModel.ID
	return nil
}

// ListByUser returns the user's watchlist, oldest first
func (r *WatchlistRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.WatchlistEntry, error) {
	var models []model.WatchlistEntry
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&models).Error
	if err != nil {
		return nil, r.errorClassifier.Translate(err, errs.ErrWatchlistEntryNotFound, errs.ErrDuplicateWatchlistEntry)
	}

	entries := make([]*entity.WatchlistEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, &entity.WatchlistEntry{
			ID:          m.ID,
			UserID:      m.UserID,
			AssetSymbol: m.AssetSymbol,
			AssetName:   m.AssetName,
			AssetType:   m.AssetType,
			Exchange:    m.Exchange,
			CreatedAt:   m.CreatedAt,
		})
	}
	return entries, nil
}

// DeleteForUser removes an entry only when the user owns it
func (r *WatchlistRepository) DeleteForUser(ctx context.Context, userID, entryID uint64) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", entryID, userID).Delete(&model.WatchlistEntry{})
	if result.Error != nil {
		return r.errorClassifier.Translate(result.Error, errs.ErrWatchlistEntryNotFound, errs.ErrDuplicateWatchlistEntry)
	}
	if result.RowsAffected == 0 {
		return errs.ErrWatchlistEntryNotFound
	}
	return nil
}
