package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// PortfolioEntry is a holding recorded by one buy. Entries for the same symbol are not merged.
type PortfolioEntry struct {
	ID           uint64
	UserID       uint64
	AssetSymbol  string
	AssetType    string
	Quantity     decimal.Decimal
	AveragePrice decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewPortfolioEntry validates and creates an entry from string quantity and price
func NewPortfolioEntry(
	userID uint64,
	assetSymbol, assetType string,
	quantity, price string,
	timeProvider coreport.TimeProvider,
) (*PortfolioEntry, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	symbol, kind, err := NormalizeAsset(assetSymbol, assetType)
	if err != nil {
		return nil, err
	}

	q, err := ParseQuantity(quantity, errs.ErrInvalidQuantity)
	if err != nil {
		return nil, err
	}
	p, err := ParseQuantity(price, errs.ErrInvalidPrice)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &PortfolioEntry{
		UserID:       userID,
		AssetSymbol:  symbol,
		AssetType:    kind,
		Quantity:     q,
		AveragePrice: p,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// TotalCostInCents is quantity times price rounded half up to cents
func (p *PortfolioEntry) TotalCostInCents() (int64, error) {
	cents, err := DecimalToCents(p.Quantity.Mul(p.AveragePrice))
	if err != nil {
		return 0, err
	}
	if cents <= 0 {
		return 0, fmt.Errorf("%w: total cost rounds to zero", errs.ErrNonPositiveAmount)
	}
	return cents, nil
}

// NormalizeAsset upper-cases the symbol and lower-cases the type
func NormalizeAsset(assetSymbol, assetType string) (string, string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(assetSymbol))
	kind := strings.ToLower(strings.TrimSpace(assetType))
	if symbol == "" || kind == "" {
		return "", "", errs.ErrInvalidAsset
	}
	return symbol, kind, nil
}
