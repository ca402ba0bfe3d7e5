package entity

import (
	"time"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
)

// Wallet holds a user's cash balance
type Wallet struct {
	ID        uint64
	UserID    uint64
	balance   int64 // cents, never negative
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWallet creates an empty wallet for the user
func NewWallet(userID uint64, timeProvider coreport.TimeProvider) (*Wallet, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	now := timeProvider.Now()
	return &Wallet{
		UserID:    userID,
		Currency:  DefaultCurrency,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Balance returns the current balance in cents
func (w *Wallet) Balance() int64 {
	return w.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (w *Wallet) GetBalance() string {
	return AmountInCentsToString(w.balance)
}

// SetBalance updates the balance directly (for repositories hydrating from storage)
func (w *Wallet) SetBalance(balanceInCents int64) {
	w.balance = balanceInCents
}

// CanDebit checks if the wallet covers amountInCents
func (w *Wallet) CanDebit(amountInCents int64) bool {
	return w.balance >= amountInCents
}

// WalletBalance is the read model returned for a wallet
type WalletBalance struct {
	UserID   uint64 `json:"userId"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

// ToBalance converts the wallet to its read model
func (w *Wallet) ToBalance() WalletBalance {
	return WalletBalance{
		UserID:   w.UserID,
		Balance:  w.GetBalance(),
		Currency: w.Currency,
	}
}
