package entity

import (
	"fmt"
	"strings"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxQuantityDecimalPlaces bounds asset quantities and prices
const MaxQuantityDecimalPlaces = 8

// DefaultCurrency is the only currency wallets hold
const DefaultCurrency = "USD"

// MaxAmountInCents bounds a single amount and a wallet balance (10 trillion units).
// Sums of two bounded values stay well inside int64 and are exact as float64.
const MaxAmountInCents int64 = 1_000_000_000_000_000

var maxCents = decimal.NewFromInt(MaxAmountInCents)

// ValidateAndConvertAmount parses a non-negative money string such as "10", "10.5" or "10.50"
// into cents. Only digits and a single decimal point are accepted.
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	if strings.Trim(amount, "0123456789.") != "" || strings.Count(amount, ".") > 1 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if !value.Equal(value.Truncate(MaxDecimalPlaces)) {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	return DecimalToCents(value)
}

// ParsePositiveAmount is ValidateAndConvertAmount with a strictly positive result
func ParsePositiveAmount(amount string) (int64, error) {
	cents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents <= 0 {
		return 0, errs.ErrNonPositiveAmount
	}
	return cents, nil
}

// DecimalToCents rounds half away from zero to whole cents. Results beyond
// MaxAmountInCents are refused.
func DecimalToCents(value decimal.Decimal) (int64, error) {
	cents := value.Shift(MaxDecimalPlaces).Round(0)
	if cents.Abs().GreaterThan(maxCents) {
		return 0, fmt.Errorf("%w: amount is too large", errs.ErrInvalidAmount)
	}
	return cents.IntPart(), nil
}

// CentsToDecimal converts cents back to a decimal value
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -MaxDecimalPlaces)
}

// AmountInCentsToString converts integer amount to a decimal string
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
func AmountInCentsToString(amountInCents int64) string {
	return CentsToDecimal(amountInCents).StringFixed(MaxDecimalPlaces)
}

// ParseQuantity parses a strictly positive asset quantity or unit price with up to 8 decimals
func ParseQuantity(value string, kind error) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.Trim(value, "0123456789.") != "" {
		return decimal.Zero, fmt.Errorf("%w: %q", kind, value)
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", kind, err.Error())
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: must be greater than zero", kind)
	}
	if !d.Equal(d.Truncate(MaxQuantityDecimalPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", kind, MaxQuantityDecimalPlaces)
	}
	return d, nil
}
