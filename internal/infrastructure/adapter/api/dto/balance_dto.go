package dto

import (
	"time"

	"github.com/simplecyberhub/txc/internal/domain/entity"
)

// WalletResponse represents the API response for a user's balance
type WalletResponse struct {
	UserID    uint64    `json:"userId"`
	Balance   string    `json:"balance"`
	Currency  string    `json:"currency"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewWalletResponse formats the balance with two decimal places
func NewWalletResponse(w *entity.Wallet) WalletResponse {
	return WalletResponse{
		UserID:    w.UserID,
		Balance:   w.GetBalance(),
		Currency:  w.Currency,
		UpdatedAt: w.UpdatedAt,
	}
}
