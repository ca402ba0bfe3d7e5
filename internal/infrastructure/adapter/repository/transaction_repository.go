package repository

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:            transaction.ID,
		UserID:        transaction.UserID,
		Type:          string(transaction.Type),
		AmountInCents: transaction.AmountInCents,
		Currency:      transaction.Currency,
		Status:        string(transaction.Status),
		AssetSymbol:   transaction.AssetSymbol,
		AssetType:     transaction.AssetType,
		Duration:      transaction.Duration,
		TakeProfit:    transaction.TakeProfit,
		StopLoss:      transaction.StopLoss,
		Margin:        transaction.Margin,
		OrderType:     transaction.OrderType,
		CreatedAt:     transaction.CreatedAt,
		DecidedAt:     transaction.DecidedAt,
	}
}

func transactionToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		Type:          entity.TransactionType(m.Type),
		AmountInCents: m.AmountInCents,
		Currency:      m.Currency,
		Status:        entity.TransactionStatus(m.Status),
		TradeMeta: entity.TradeMeta{
			AssetSymbol: m.AssetSymbol,
			AssetType:   m.AssetType,
			Duration:    m.Duration,
			TakeProfit:  m.TakeProfit,
			StopLoss:    m.StopLoss,
			Margin:      m.Margin,
			OrderType:   m.OrderType,
		},
		CreatedAt: m.CreatedAt,
		DecidedAt: m.DecidedAt,
	}
}

func (r *TransactionRepository) translate(err error) error {
	return r.errorClassifier.Translate(err, errs.ErrTransactionNotFound, errs.ErrConstraintViolation)
}

// Create saves a new transaction and sets its ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	if err := r.db.WithContext(ctx).Create(&transactionModel).Error; err != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"user_id": transaction.UserID,
			"type":    transaction.Type,
			"error":   err.Error(),
		})
		return r.translate(err)
	}

	transaction.ID = transactionModel.ID
	r.logger.Debug("Transaction created successfully", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"type":           transaction.Type,
		"status":         transaction.Status,
	})
	return nil
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	if err := r.db.WithContext(ctx).First(&transactionModel, id).Error; err != nil {
		return nil, r.translate(err)
	}
	return transactionToEntity(&transactionModel), nil
}

// ListByUser returns a user's transactions, oldest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, page persistence.Page) ([]*entity.Transaction, error) {
	return r.list(ctx, page, "user_id = ?", userID)
}

// ListByStatus returns transactions with the given status, oldest first
func (r *TransactionRepository) ListByStatus(ctx context.Context, status entity.TransactionStatus, page persistence.Page) ([]*entity.Transaction, error) {
	return r.list(ctx, page, "status = ?", string(status))
}

func (r *TransactionRepository) list(ctx context.Context, page persistence.Page, query string, arg any) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := paginate(r.db.WithContext(ctx), page).
		Where(query, arg).
		Order("created_at ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, r.translate(err)
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, transactionToEntity(&models[i]))
	}
	return transactions, nil
}

// SaveDecision writes the terminal status only while the stored transaction is pending
func (r *TransactionRepository) SaveDecision(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status = ?", transaction.ID, string(entity.StatusPending)).
		Updates(map[string]any{
			"status":     string(transaction.Status),
			"decided_at": transaction.DecidedAt,
		})
	if result.Error != nil {
		r.logger.Error("Failed to save transaction decision", map[string]any{
			"transaction_id": transaction.ID,
			"error":          result.Error.Error(),
		})
		return r.translate(result.Error)
	}

	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, transaction.ID); err != nil {
			return err
		}
		return errs.ErrTransactionAlreadyDecided
	}
	return nil
}

// CountByStatus returns the number of transactions with the given status
func (r *TransactionRepository) CountByStatus(ctx context.Context, status entity.TransactionStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("status = ?", string(status)).Count(&count).Error
	if err != nil {
		return 0, r.translate(err)
	}
	return count, nil
}
