package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/simplecyberhub/txc/internal/domain/entity"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
)

// PortfolioEntryResponse represents a holding
type PortfolioEntryResponse struct {
	ID           uint64          `json:"id"`
	AssetSymbol  string          `json:"assetSymbol"`
	AssetType    string          `json:"assetType"`
	Quantity     decimal.Decimal `json:"quantity"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// NewPortfolioList maps holdings
func NewPortfolioList(entries []*entity.PortfolioEntry) []PortfolioEntryResponse {
	out := make([]PortfolioEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, newPortfolioEntryResponse(e))
	}
	return out
}

func newPortfolioEntryResponse(e *entity.PortfolioEntry) PortfolioEntryResponse {
	return PortfolioEntryResponse{
		ID:           e.ID,
		AssetSymbol:  e.AssetSymbol,
		AssetType:    e.AssetType,
		Quantity:     e.Quantity,
		AveragePrice: e.AveragePrice,
		CreatedAt:    e.CreatedAt,
	}
}

// BuyResponse is returned after a successful buy
type BuyResponse struct {
	Transaction TransactionResponse    `json:"transaction"`
	Entry       PortfolioEntryResponse `json:"entry"`
	Wallet      WalletResponse         `json:"wallet"`
}

// NewBuyResponse maps everything the buy wrote
func NewBuyResponse(r *usecase.BuyResult) BuyResponse {
	return BuyResponse{
		Transaction: NewTransactionResponse(r.Transaction),
		Entry:       newPortfolioEntryResponse(r.Entry),
		Wallet:      NewWalletResponse(r.Wallet),
	}
}

// WatchlistRequest represents POST /api/watchlist
type WatchlistRequest struct {
	AssetSymbol string `json:"assetSymbol" binding:"required"`
	AssetName   string `json:"assetName" binding:"required"`
	AssetType   string `json:"assetType" binding:"required"`
	Exchange    string `json:"exchange"`
}

// WatchlistEntryResponse represents a followed asset
type WatchlistEntryResponse struct {
	ID          uint64    `json:"id"`
	AssetSymbol string    `json:"assetSymbol"`
	AssetName   string    `json:"assetName"`
	AssetType   string    `json:"assetType"`
	Exchange    *string   `json:"exchange,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewWatchlistEntryResponse maps an entry
func NewWatchlistEntryResponse(e *entity.WatchlistEntry) WatchlistEntryResponse {
	return WatchlistEntryResponse{
		ID:          e.ID,
		AssetSymbol: e.AssetSymbol,
		AssetName:   e.AssetName,
		AssetType:   e.AssetType,
		Exchange:    e.Exchange,
		CreatedAt:   e.CreatedAt,
	}
}

// NewWatchlist maps entries
func NewWatchlist(entries []*entity.WatchlistEntry) []WatchlistEntryResponse {
	out := make([]WatchlistEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewWatchlistEntryResponse(e))
	}
	return out
}
