package ledger

import (
	"context"
	"errors"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
)

// LedgerUseCase owns wallet balances. Callers that need atomicity pass a
// context obtained from UnitOfWork.Do and every write joins that transaction.
type LedgerUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase
func NewLedgerUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"component": "ledger"}),
	}
}

// GetBalance returns the user's wallet
func (l *LedgerUseCase) GetBalance(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	wallet, err := l.uow.GetWalletRepository(ctx).GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			l.logger.Error("Failed to get wallet", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return nil, err
	}
	return wallet, nil
}

// AdjustBalance credits (delta > 0) or debits (delta < 0) the user's wallet
func (l *LedgerUseCase) AdjustBalance(ctx context.Context, userID uint64, delta int64) (*entity.Wallet, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if delta == 0 {
		return nil, errs.ErrNonPositiveAmount
	}

	wallet, err := l.uow.GetWalletRepository(ctx).AdjustBalance(ctx, userID, delta)
	if err != nil {
		fields := map[string]any{
			"user_id": userID,
			"delta":   entity.AmountInCentsToString(delta),
		}
		for k, v := range errs.LogFields(err) {
			fields[k] = v
		}
		if errs.IsInsufficientFundsError(err) || errs.IsNotFoundError(err) || errs.IsValidationError(err) {
			l.logger.Warn("Balance adjustment refused", fields)
		} else {
			l.logger.Error("Balance adjustment failed", fields)
		}
		return nil, err
	}

	return wallet, nil
}

// CreateWallet creates an empty wallet for the user
func (l *LedgerUseCase) CreateWallet(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	wallet, err := entity.NewWallet(userID, l.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := l.uow.GetWalletRepository(ctx).Create(ctx, wallet); err != nil {
		return nil, err
	}

	l.logger.Debug("Wallet created", map[string]any{
		"user_id":   userID,
		"wallet_id": wallet.ID,
	})
	return wallet, nil
}
