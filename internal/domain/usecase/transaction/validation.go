package transaction

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
)

// Accepted order types for trade metadata
var validOrderTypes = map[string]bool{
	"market": true,
	"limit":  true,
	"stop":   true,
}

// TransactionValidator provides validation for transaction requests
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// ValidateCreate checks the user, type and amount of a request. The amount is
// only required for deposits and withdrawals; buys are priced from quantity and price.
func (v *TransactionValidator) ValidateCreate(req usecase.CreateTransactionRequest) (entity.TransactionType, int64, error) {
	if req.UserID == 0 {
		return "", 0, errs.ErrInvalidUserID
	}

	txType, err := entity.ParseTransactionType(req.Type)
	if err != nil {
		return "", 0, errs.NewValidationError("type", err)
	}

	switch txType {
	case entity.TypeBuy, entity.TypeSell:
		return txType, 0, nil
	}

	amountInCents, err := v.validateAmount(req.Amount)
	if err != nil {
		return "", 0, err
	}
	return txType, amountInCents, nil
}

// ValidateTradeOptions converts client supplied trade options into metadata
func (v *TransactionValidator) ValidateTradeOptions(assetSymbol, assetType string, opts usecase.TradeOptions) (entity.TradeMeta, error) {
	meta := entity.TradeMeta{Duration: opts.Duration}

	if assetSymbol != "" {
		meta.AssetSymbol = &assetSymbol
	}
	if assetType != "" {
		meta.AssetType = &assetType
	}

	if opts.Duration < 0 {
		return entity.TradeMeta{}, errs.NewValidationError("duration", fmt.Errorf("must be at least %d", entity.DefaultTradeDuration))
	}

	var err error
	if meta.TakeProfit, err = v.validateOptionalDecimal("takeProfit", opts.TakeProfit); err != nil {
		return entity.TradeMeta{}, err
	}
	if meta.StopLoss, err = v.validateOptionalDecimal("stopLoss", opts.StopLoss); err != nil {
		return entity.TradeMeta{}, err
	}
	if meta.Margin, err = v.validateOptionalDecimal("margin", opts.Margin); err != nil {
		return entity.TradeMeta{}, err
	}

	if orderType := strings.ToLower(strings.TrimSpace(opts.OrderType)); orderType != "" {
		if !validOrderTypes[orderType] {
			return entity.TradeMeta{}, errs.NewValidationError("orderType", fmt.Errorf("unknown order type %q", opts.OrderType))
		}
		meta.OrderType = &orderType
	}

	return meta, nil
}

// validateAmount checks that the amount is a positive money value with at most two decimals
func (v *TransactionValidator) validateAmount(amount string) (int64, error) {
	if amount == "" {
		return 0, errs.NewValidationError("amount", errs.ErrInvalidAmount)
	}

	amountInCents, err := entity.ParsePositiveAmount(amount)
	if err != nil {
		return 0, errs.NewValidationError("amount", err)
	}
	return amountInCents, nil
}

func (v *TransactionValidator) validateOptionalDecimal(field, value string) (*decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := entity.ParseQuantity(value, errs.ErrValidation)
	if err != nil {
		return nil, errs.NewValidationError(field, err)
	}
	return &d, nil
}
