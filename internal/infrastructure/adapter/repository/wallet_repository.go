package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// getOperationType returns "credit" for positive or zero changes and "debit" for negative changes
func getOperationType(balanceChange int64) string {
	if balanceChange >= 0 {
		return "credit"
	}
	return "debit"
}

// WalletRepository implements WalletRepository interface using GORM
type WalletRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func walletToEntity(m *model.Wallet) *entity.Wallet {
	w := &entity.Wallet{
		ID:        m.ID,
		UserID:    m.UserID,
		Currency:  m.Currency,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	w.SetBalance(m.Balance)
	return w
}

// Create inserts a wallet and sets its ID
func (r *WalletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.Wallet{
		UserID:    wallet.UserID,
		Balance:   wallet.Balance(),
		Currency:  wallet.Currency,
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: wallet.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&walletModel).Error; err != nil {
		r.logger.Error("Failed to create wallet", map[string]any{
			"user_id": wallet.UserID,
			"error":   err.Error(),
		})
		return r.errorClassifier.Translate(err, errs.ErrWalletNotFound, errs.ErrConstraintViolation)
	}

	wallet.ID = walletModel.ID
	return nil
}

// GetByUserID retrieves the wallet of a user
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	var walletModel model.Wallet
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&walletModel).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Error("Database error when getting wallet", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return nil, r.errorClassifier.Translate(err, errs.ErrWalletNotFound, errs.ErrConstraintViolation)
	}
	return walletToEntity(&walletModel), nil
}

// AdjustBalance applies delta with a conditional increment so the balance can never go below zero,
// whatever other transactions are doing to the same row.
func (r *WalletRepository) AdjustBalance(ctx context.Context, userID uint64, delta int64) (*entity.Wallet, error) {
	r.logger.Debug("Adjusting wallet balance", map[string]any{
		"user_id":        userID,
		"operation_type": getOperationType(delta),
		"change_amount":  entity.AmountInCentsToString(delta),
	})

	if delta > entity.MaxAmountInCents || delta < -entity.MaxAmountInCents {
		return nil, fmt.Errorf("%w: change of %s", errs.ErrBalanceLimit, entity.AmountInCentsToString(delta))
	}

	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("user_id = ? AND balance + ? >= 0 AND balance <= ?", userID, delta, entity.MaxAmountInCents-delta).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		r.logger.Error("Failed to adjust wallet balance", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, r.errorClassifier.Translate(result.Error, errs.ErrWalletNotFound, errs.ErrConstraintViolation)
	}

	wallet, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if result.RowsAffected == 0 && delta > 0 {
		r.logger.Warn("Credit would exceed the wallet limit", map[string]any{
			"user_id":          userID,
			"current_balance":  wallet.GetBalance(),
			"requested_change": entity.AmountInCentsToString(delta),
		})
		return nil, errs.NewValidationError("amount", errs.ErrBalanceLimit)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Insufficient balance for debit", map[string]any{
			"user_id":          userID,
			"current_balance":  wallet.GetBalance(),
			"requested_change": entity.AmountInCentsToString(delta),
		})
		return nil, errs.NewInsufficientFundsError(userID, entity.AmountInCentsToString(-delta), wallet.GetBalance())
	}

	r.logger.Info("Wallet balance adjusted", map[string]any{
		"user_id":        userID,
		"operation_type": getOperationType(delta),
		"new_balance":    wallet.GetBalance(),
	})
	return wallet, nil
}
