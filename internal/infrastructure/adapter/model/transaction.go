package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID            uint64           `gorm:"primaryKey;autoIncrement"`
	UserID        uint64           `gorm:"not null;index"`
	Type          string           `gorm:"not null;size:20"`
	AmountInCents int64            `gorm:"not null;check:chk_transactions_amount,amount_in_cents > 0"`
	Currency      string           `gorm:"not null;size:3"`
	Status        string           `gorm:"not null;size:20;index"`
	AssetSymbol   *string          `gorm:"size:20"`
	AssetType     *string          `gorm:"size:20"`
	Duration      int              `gorm:"not null;default:1"`
	TakeProfit    *decimal.Decimal `gorm:"type:decimal(20,8)"`
	StopLoss      *decimal.Decimal `gorm:"type:decimal(20,8)"`
	Margin        *decimal.Decimal `gorm:"type:decimal(20,8)"`
	OrderType     *string          `gorm:"size:20"`
	CreatedAt     time.Time        `gorm:"not null;index"`
	DecidedAt     *time.Time
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// PortfolioEntry represents the database model for holdings
type PortfolioEntry struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement"`
	UserID       uint64          `gorm:"not null;index"`
	AssetSymbol  string          `gorm:"not null;size:20"`
	AssetType    string          `gorm:"not null;size:20"`
	Quantity     decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	AveragePrice decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName specifies the table name for PortfolioEntry
func (PortfolioEntry) TableName() string {
	return "portfolio"
}

// WatchlistEntry represents the database model for watched assets
type WatchlistEntry struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;uniqueIndex:idx_watchlist_user_symbol"`
	AssetSymbol string    `gorm:"not null;size:20;uniqueIndex:idx_watchlist_user_symbol"`
	AssetName   string    `gorm:"not null;size:100"`
	AssetType   string    `gorm:"not null;size:20"`
	Exchange    *string   `gorm:"size:50"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for WatchlistEntry
func (WatchlistEntry) TableName() string {
	return "watchlist"
}
