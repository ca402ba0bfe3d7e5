package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// TransactionType represents what a transaction does to the ledger
type TransactionType string

// Transaction types
const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeBuy        TransactionType = "buy"
	TypeSell       TransactionType = "sell"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants. Completed and rejected are terminal.
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusRejected  TransactionStatus = "rejected"
)

// DefaultTradeDuration is the trade duration in days when none is given
const DefaultTradeDuration = 1

// TradeMeta is optional trade metadata. None of it is enforced against a pricing engine.
type TradeMeta struct {
	AssetSymbol *string
	AssetType   *string
	Duration    int
	TakeProfit  *decimal.Decimal
	StopLoss    *decimal.Decimal
	Margin      *decimal.Decimal
	OrderType   *string
}

// Transaction represents a ledger-affecting request with a pending to terminal lifecycle
type Transaction struct {
	ID            uint64
	UserID        uint64
	Type          TransactionType
	AmountInCents int64
	Currency      string
	Status        TransactionStatus
	TradeMeta
	CreatedAt time.Time
	DecidedAt *time.Time
}

// TransactionOption customises a new transaction
type TransactionOption func(*Transaction)

// WithTradeMeta attaches trade metadata
func WithTradeMeta(meta TradeMeta) TransactionOption {
	return func(t *Transaction) {
		t.TradeMeta = meta
	}
}

// NewTransaction creates a pending transaction after validating its type and amount
func NewTransaction(
	userID uint64,
	txType string,
	amountInCents int64,
	timeProvider coreport.TimeProvider,
	opts ...TransactionOption,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	parsedType, err := ParseTransactionType(txType)
	if err != nil {
		return nil, err
	}

	if amountInCents <= 0 {
		return nil, errs.ErrNonPositiveAmount
	}

	t := &Transaction{
		UserID:        userID,
		Type:          parsedType,
		AmountInCents: amountInCents,
		Currency:      DefaultCurrency,
		Status:        StatusPending,
		CreatedAt:     timeProvider.Now(),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.Duration == 0 {
		t.Duration = DefaultTradeDuration
	}
	if t.Duration < 0 {
		return nil, errs.NewValidationError("duration", fmt.Errorf("must be at least %d", DefaultTradeDuration))
	}

	return t, nil
}

// ParseTransactionType validates a transaction type string
func ParseTransactionType(txType string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(txType))) {
	case TypeDeposit:
		return TypeDeposit, nil
	case TypeWithdrawal:
		return TypeWithdrawal, nil
	case TypeBuy:
		return TypeBuy, nil
	case TypeSell:
		return TypeSell, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidTransactionType, txType)
	}
}

// ParseDecisionOutcome accepts only terminal statuses
func ParseDecisionOutcome(outcome string) (TransactionStatus, error) {
	switch TransactionStatus(outcome) {
	case StatusCompleted, StatusRejected:
		return TransactionStatus(outcome), nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidDecision, outcome)
	}
}

// Amount returns the amount as a string with 2 decimal places
func (t *Transaction) Amount() string {
	return AmountInCentsToString(t.AmountInCents)
}

// IsTerminal reports whether the transaction has been decided
func (t *Transaction) IsTerminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusRejected
}

// IsCredit returns true if completing this transaction increases the balance
func (t *Transaction) IsCredit() bool {
	return t.Type == TypeDeposit
}

// IsDebit returns true if completing this transaction decreases the balance
func (t *Transaction) IsDebit() bool {
	return t.Type == TypeWithdrawal || t.Type == TypeBuy
}

// Decide moves a pending transaction to a terminal status
func (t *Transaction) Decide(outcome TransactionStatus, timeProvider coreport.TimeProvider) error {
	if outcome != StatusCompleted && outcome != StatusRejected {
		return fmt.Errorf("%w: %q", errs.ErrInvalidDecision, outcome)
	}
	if t.IsTerminal() {
		return errs.ErrTransactionAlreadyDecided
	}

	now := timeProvider.Now()
	t.Status = outcome
	t.DecidedAt = &now
	return nil
}

// MarkAsCompleted completes a pending transaction
func (t *Transaction) MarkAsCompleted(timeProvider coreport.TimeProvider) error {
	return t.Decide(StatusCompleted, timeProvider)
}

// MarkAsRejected rejects a pending transaction
func (t *Transaction) MarkAsRejected(timeProvider coreport.TimeProvider) error {
	return t.Decide(StatusRejected, timeProvider)
}
