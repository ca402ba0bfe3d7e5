package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/simplecyberhub/txc/internal/domain/entity"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
)

// TradeOptionsRequest carries the optional trade fields
type TradeOptionsRequest struct {
	Duration   int    `json:"duration"`
	TakeProfit string `json:"takeProfit"`
	StopLoss   string `json:"stopLoss"`
	Margin     string `json:"margin"`
	OrderType  string `json:"orderType"`
}

func (o TradeOptionsRequest) toUseCase() usecase.TradeOptions {
	return usecase.TradeOptions{
		Duration:   o.Duration,
		TakeProfit: o.TakeProfit,
		StopLoss:   o.StopLoss,
		Margin:     o.Margin,
		OrderType:  o.OrderType,
	}
}

// TransactionRequest represents POST /api/transactions
type TransactionRequest struct {
	Type        string `json:"type" binding:"required,oneof=deposit withdrawal buy sell"`
	Amount      string `json:"amount"`
	AssetSymbol string `json:"assetSymbol"`
	AssetType   string `json:"assetType"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
	TradeOptionsRequest
}

// ToUseCase maps the body for the caller
func (r TransactionRequest) ToUseCase(userID uint64) usecase.CreateTransactionRequest {
	return usecase.CreateTransactionRequest{
		UserID:      userID,
		Type:        r.Type,
		Amount:      r.Amount,
		AssetSymbol: r.AssetSymbol,
		AssetType:   r.AssetType,
		Quantity:    r.Quantity,
		Price:       r.Price,
		Options:     r.TradeOptionsRequest.toUseCase(),
	}
}

// BuyRequest represents POST /api/portfolio
type BuyRequest struct {
	AssetSymbol string `json:"assetSymbol" binding:"required"`
	AssetType   string `json:"assetType" binding:"required"`
	Quantity    string `json:"quantity" binding:"required"`
	Price       string `json:"price" binding:"required"`
	TradeOptionsRequest
}

// ToUseCase maps the body for the caller
func (r BuyRequest) ToUseCase(userID uint64) usecase.BuyRequest {
	return usecase.BuyRequest{
		UserID:      userID,
		AssetSymbol: r.AssetSymbol,
		AssetType:   r.AssetType,
		Quantity:    r.Quantity,
		Price:       r.Price,
		Options:     r.TradeOptionsRequest.toUseCase(),
	}
}

// DecisionRequest represents an admin verdict on a transaction
type DecisionRequest struct {
	Status string `json:"status" binding:"required"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          uint64           `json:"id"`
	UserID      uint64           `json:"userId"`
	Type        string           `json:"type"`
	Amount      string           `json:"amount"`
	Currency    string           `json:"currency"`
	Status      string           `json:"status"`
	AssetSymbol *string          `json:"assetSymbol,omitempty"`
	AssetType   *string          `json:"assetType,omitempty"`
	Duration    int              `json:"duration,omitempty"`
	TakeProfit  *decimal.Decimal `json:"takeProfit,omitempty"`
	StopLoss    *decimal.Decimal `json:"stopLoss,omitempty"`
	Margin      *decimal.Decimal `json:"margin,omitempty"`
	OrderType   *string          `json:"orderType,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	DecidedAt   *time.Time       `json:"decidedAt,omitempty"`
}

// NewTransactionResponse maps a transaction
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Type:        string(t.Type),
		Amount:      entity.AmountInCentsToString(t.AmountInCents),
		Currency:    t.Currency,
		Status:      string(t.Status),
		AssetSymbol: t.AssetSymbol,
		AssetType:   t.AssetType,
		Duration:    t.Duration,
		TakeProfit:  t.TakeProfit,
		StopLoss:    t.StopLoss,
		Margin:      t.Margin,
		OrderType:   t.OrderType,
		CreatedAt:   t.CreatedAt,
		DecidedAt:   t.DecidedAt,
	}
}

// NewTransactionList maps a slice, never returning nil
func NewTransactionList(ts []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}
