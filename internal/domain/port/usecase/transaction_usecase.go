package usecase

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
)

// TradeOptions is optional trade metadata as received from the client
type TradeOptions struct {
	Duration   int
	TakeProfit string
	StopLoss   string
	Margin     string
	OrderType  string
}

// CreateTransactionRequest represents an incoming deposit, withdrawal, buy or sell
type CreateTransactionRequest struct {
	UserID      uint64
	Type        string
	Amount      string
	AssetSymbol string
	AssetType   string
	Quantity    string
	Price       string
	Options     TradeOptions
}

// BuyRequest represents a buy at a caller-supplied price
type BuyRequest struct {
	UserID      uint64
	AssetSymbol string
	AssetType   string
	Quantity    string
	Price       string
	Options     TradeOptions
}

// BuyResult holds everything a buy writes
type BuyResult struct {
	Transaction *entity.Transaction
	Entry       *entity.PortfolioEntry
	Wallet      *entity.Wallet
}

// TransactionUseCase defines the transaction engine
type TransactionUseCase interface {
	// Create handles deposits, withdrawals and sells. Buys are routed to Buy.
	Create(ctx context.Context, req CreateTransactionRequest) (*entity.Transaction, error)

	// Buy debits the wallet and records the holding and transaction atomically
	Buy(ctx context.Context, req BuyRequest) (*BuyResult, error)

	// Decide moves a pending transaction to completed or rejected
	Decide(ctx context.Context, transactionID uint64, outcome string) (*entity.Transaction, error)

	// ListForUser returns the user's transactions
	ListForUser(ctx context.Context, userID uint64, page persistence.Page) ([]*entity.Transaction, error)

	// ListPendingForAdmin returns transactions awaiting a decision
	ListPendingForAdmin(ctx context.Context, page persistence.Page) ([]*entity.Transaction, error)
}
