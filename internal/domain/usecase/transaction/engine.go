package transaction

import (
	"context"
	"errors"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
)

// Engine creates and decides ledger transactions. Every status change and
// its balance effect are written in one unit of work.
type Engine struct {
	uow          persistence.UnitOfWork
	ledger       usecase.LedgerUseCase
	portfolio    usecase.PortfolioUseCase
	validator    *TransactionValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
}

// NewEngine creates a new transaction engine
func NewEngine(
	uow persistence.UnitOfWork,
	ledger usecase.LedgerUseCase,
	portfolio usecase.PortfolioUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
) *Engine {
	if metrics == nil {
		metrics = coreport.NoopMetrics{}
	}
	return &Engine{
		uow:          uow,
		ledger:       ledger,
		portfolio:    portfolio,
		validator:    NewTransactionValidator(),
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"component": "transaction_engine"}),
		metrics:      metrics,
	}
}

// Create handles deposits, withdrawals and sells, and routes buys to Buy
func (e *Engine) Create(ctx context.Context, req usecase.CreateTransactionRequest) (*entity.Transaction, error) {
	txType, amountInCents, err := e.validator.ValidateCreate(req)
	if err != nil {
		return nil, err
	}

	switch txType {
	case entity.TypeSell:
		e.logger.Info("Sell order refused", map[string]any{"user_id": req.UserID})
		return nil, errs.ErrSellNotSupported

	case entity.TypeBuy:
		result, err := e.Buy(ctx, usecase.BuyRequest{
			UserID:      req.UserID,
			AssetSymbol: req.AssetSymbol,
			AssetType:   req.AssetType,
			Quantity:    req.Quantity,
			Price:       req.Price,
			Options:     req.Options,
		})
		if err != nil {
			return nil, err
		}
		return result.Transaction, nil

	case entity.TypeDeposit:
		return e.deposit(ctx, req.UserID, amountInCents)

	default:
		return e.requestWithdrawal(ctx, req.UserID, amountInCents)
	}
}

// deposit records and settles a deposit immediately
func (e *Engine) deposit(ctx context.Context, userID uint64, amountInCents int64) (*entity.Transaction, error) {
	var txn *entity.Transaction

	err := e.uow.Do(ctx, func(ctx context.Context) error {
		if _, err := e.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
			return err
		}

		var err error
		txn, err = entity.NewTransaction(userID, string(entity.TypeDeposit), amountInCents, e.timeProvider)
		if err != nil {
			return err
		}

		txRepo := e.uow.GetTransactionRepository(ctx)
		if err := txRepo.Create(ctx, txn); err != nil {
			return err
		}

		if _, err := e.ledger.AdjustBalance(ctx, userID, settlementDelta(txn)); err != nil {
			return errs.NewTransactionError(txn.ID, userID, string(txn.Type), txn.Amount(), "credit failed", err)
		}

		if err := txn.MarkAsCompleted(e.timeProvider); err != nil {
			return err
		}
		return txRepo.SaveDecision(ctx, txn)
	})
	if err != nil {
		e.logFailure("Deposit failed", err, map[string]any{
			"user_id": userID,
			"amount":  entity.AmountInCentsToString(amountInCents),
		})
		return nil, err
	}

	e.metrics.TransactionCreated(string(txn.Type), string(txn.Status))
	e.logger.Info("Deposit completed", map[string]any{
		"transaction_id": txn.ID,
		"user_id":        userID,
		"amount":         txn.Amount(),
	})
	return txn, nil
}

// requestWithdrawal records a pending withdrawal. The balance is only checked
// here; the debit happens when an admin completes it.
func (e *Engine) requestWithdrawal(ctx context.Context, userID uint64, amountInCents int64) (*entity.Transaction, error) {
	var txn *entity.Transaction

	err := e.uow.Do(ctx, func(ctx context.Context) error {
		user, err := e.uow.GetUserRepository(ctx).GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if !user.CanTransact() {
			return errs.ErrVerificationRequired
		}

		wallet, err := e.ledger.GetBalance(ctx, userID)
		if err != nil {
			return err
		}
		if !wallet.CanDebit(amountInCents) {
			return errs.NewInsufficientFundsError(userID, entity.AmountInCentsToString(amountInCents), wallet.GetBalance())
		}

		txn, err = entity.NewTransaction(userID, string(entity.TypeWithdrawal), amountInCents, e.timeProvider)
		if err != nil {
			return err
		}
		return e.uow.GetTransactionRepository(ctx).Create(ctx, txn)
	})
	if err != nil {
		e.logFailure("Withdrawal request refused", err, map[string]any{
			"user_id": userID,
			"amount":  entity.AmountInCentsToString(amountInCents),
		})
		return nil, err
	}

	e.metrics.TransactionCreated(string(txn.Type), string(txn.Status))
	e.logger.Info("Withdrawal requested", map[string]any{
		"transaction_id": txn.ID,
		"user_id":        userID,
		"amount":         txn.Amount(),
	})
	return txn, nil
}

// Buy debits the wallet, appends the holding and records a completed buy, all or nothing
func (e *Engine) Buy(ctx context.Context, req usecase.BuyRequest) (*usecase.BuyResult, error) {
	entry, err := entity.NewPortfolioEntry(req.UserID, req.AssetSymbol, req.AssetType, req.Quantity, req.Price, e.timeProvider)
	if err != nil {
		return nil, err
	}

	totalCost, err := entry.TotalCostInCents()
	if err != nil {
		return nil, errs.NewValidationError("amount", err)
	}

	meta, err := e.validator.ValidateTradeOptions(entry.AssetSymbol, entry.AssetType, req.Options)
	if err != nil {
		return nil, err
	}

	result := &usecase.BuyResult{Entry: entry}
	err = e.uow.Do(ctx, func(ctx context.Context) error {
		user, err := e.uow.GetUserRepository(ctx).GetByID(ctx, req.UserID)
		if err != nil {
			return err
		}
		if !user.CanTransact() {
			return errs.ErrVerificationRequired
		}

		result.Wallet, err = e.ledger.AdjustBalance(ctx, req.UserID, -totalCost)
		if err != nil {
			return err
		}

		if err := e.portfolio.RecordBuy(ctx, entry); err != nil {
			return err
		}

		txn, err := entity.NewTransaction(req.UserID, string(entity.TypeBuy), totalCost, e.timeProvider, entity.WithTradeMeta(meta))
		if err != nil {
			return err
		}
		if err := txn.MarkAsCompleted(e.timeProvider); err != nil {
			return err
		}
		if err := e.uow.GetTransactionRepository(ctx).Create(ctx, txn); err != nil {
			return err
		}
		result.Transaction = txn
		return nil
	})
	if err != nil {
		e.logFailure("Buy failed", err, map[string]any{
			"user_id":    req.UserID,
			"symbol":     entry.AssetSymbol,
			"total_cost": entity.AmountInCentsToString(totalCost),
		})
		return nil, err
	}

	e.metrics.TransactionCreated(string(entity.TypeBuy), string(entity.StatusCompleted))
	e.logger.Info("Buy completed", map[string]any{
		"transaction_id": result.Transaction.ID,
		"user_id":        req.UserID,
		"symbol":         entry.AssetSymbol,
		"quantity":       entry.Quantity.String(),
		"price":          entry.AveragePrice.String(),
		"total_cost":     result.Transaction.Amount(),
	})
	return result, nil
}

// Decide moves a pending transaction to completed or rejected. Completing a
// withdrawal debits the wallet; a shortfall rolls back and leaves it pending.
func (e *Engine) Decide(ctx context.Context, transactionID uint64, outcome string) (*entity.Transaction, error) {
	if transactionID == 0 {
		return nil, errs.ErrInvalidID
	}
	status, err := entity.ParseDecisionOutcome(outcome)
	if err != nil {
		return nil, err
	}

	var txn *entity.Transaction
	err = e.uow.Do(ctx, func(ctx context.Context) error {
		txRepo := e.uow.GetTransactionRepository(ctx)

		txn, err = txRepo.GetByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if status == entity.StatusCompleted {
			err = txn.MarkAsCompleted(e.timeProvider)
		} else {
			err = txn.MarkAsRejected(e.timeProvider)
		}
		if err != nil {
			return err
		}

		// claim the row first; a concurrent decider stops here with a conflict
		if err := txRepo.SaveDecision(ctx, txn); err != nil {
			return err
		}

		if delta := settlementDelta(txn); status == entity.StatusCompleted && delta != 0 {
			if _, err := e.ledger.AdjustBalance(ctx, txn.UserID, delta); err != nil {
				return errs.NewTransactionError(txn.ID, txn.UserID, string(txn.Type), txn.Amount(), "settlement failed", err)
			}
		}
		return nil
	})
	if err != nil {
		e.logFailure("Transaction decision failed", err, map[string]any{
			"transaction_id": transactionID,
			"outcome":        outcome,
		})
		return nil, err
	}

	e.metrics.TransactionDecided(string(status))
	e.logger.Info("Transaction decided", map[string]any{
		"transaction_id": txn.ID,
		"user_id":        txn.UserID,
		"type":           txn.Type,
		"status":         txn.Status,
		"amount":         txn.Amount(),
	})
	return txn, nil
}

// ListForUser returns the user's transactions, oldest first
func (e *Engine) ListForUser(ctx context.Context, userID uint64, page persistence.Page) ([]*entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return e.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID, page.Normalize())
}

// ListPendingForAdmin returns transactions awaiting a decision, oldest first
func (e *Engine) ListPendingForAdmin(ctx context.Context, page persistence.Page) ([]*entity.Transaction, error) {
	return e.uow.GetTransactionRepository(ctx).ListByStatus(ctx, entity.StatusPending, page.Normalize())
}

// settlementDelta is the balance change a transaction applies when it completes
func settlementDelta(txn *entity.Transaction) int64 {
	switch {
	case txn.IsCredit():
		return txn.AmountInCents
	case txn.IsDebit():
		return -txn.AmountInCents
	default:
		return 0
	}
}

func (e *Engine) logFailure(msg string, err error, fields map[string]any) {
	for k, v := range errs.LogFields(err) {
		fields[k] = v
	}
	switch {
	case errs.IsValidationError(err), errs.IsNotFoundError(err), errs.IsConflictError(err),
		errs.IsInsufficientFundsError(err), errors.Is(err, errs.ErrVerificationRequired):
		e.logger.Warn(msg, fields)
	default:
		e.logger.Error(msg, fields)
	}
}
