package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation           = 4000
	CodeInsufficientFunds    = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidUserID        = 4003
	CodeUnauthorized         = 4010
	CodeForbidden            = 4030
	CodeVerificationRequired = 4031
	CodeEmailNotVerified     = 4032
	CodeNotFound             = 4040
	CodeUserNotFound         = 4041
	CodeTransactionNotFound  = 4042
	CodeKYCNotFound          = 4043
	CodeConflict             = 4090
	CodeAlreadyDecided       = 4091
	CodeDuplicateKYC         = 4092
	CodeNotSupported         = 4220
	CodeRateLimited          = 4290

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5001
)

// Kinds. Every domain error wraps exactly one of these.
var (
	// ErrValidation is returned for malformed input
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when the request collides with existing state
	ErrConflict = errors.New("conflict")

	// ErrVerificationRequired is returned when an action needs an approved KYC
	ErrVerificationRequired = errors.New("identity verification required")

	// ErrInsufficientFunds is returned when a wallet cannot cover a debit
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrNotSupported is returned for recognised but unimplemented operations
	ErrNotSupported = errors.New("operation not supported")

	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrEmailNotVerified = errors.New("email address not verified")
	ErrRateLimited      = errors.New("too many requests")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = fmt.Errorf("%w: database connection error", ErrInternalServer)
)

// Validation errors
var (
	ErrInvalidAmount          = fmt.Errorf("%w: invalid amount format", ErrValidation)
	ErrNegativeAmount         = fmt.Errorf("%w: amount cannot be negative", ErrValidation)
	ErrNonPositiveAmount      = fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	ErrInvalidUserID          = fmt.Errorf("%w: user ID must be positive", ErrValidation)
	ErrInvalidID              = fmt.Errorf("%w: id must be a positive integer", ErrValidation)
	ErrInvalidTransactionType = fmt.Errorf("%w: invalid transaction type", ErrValidation)
	ErrInvalidDecision        = fmt.Errorf("%w: invalid decision", ErrValidation)
	ErrInvalidQuantity        = fmt.Errorf("%w: invalid quantity", ErrValidation)
	ErrInvalidPrice           = fmt.Errorf("%w: invalid price", ErrValidation)
	ErrInvalidAsset           = fmt.Errorf("%w: asset symbol and type are required", ErrValidation)
	ErrInvalidDocument        = fmt.Errorf("%w: document type and id are required", ErrValidation)
	ErrRejectionReason        = fmt.Errorf("%w: rejection reason is required", ErrValidation)
	ErrInvalidUsername        = fmt.Errorf("%w: username must be 3 to 50 characters", ErrValidation)
	ErrInvalidEmail           = fmt.Errorf("%w: invalid email address", ErrValidation)
	ErrWeakPassword           = fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	ErrVerificationExpired    = fmt.Errorf("%w: verification token has expired", ErrValidation)
	ErrInvalidSlug            = fmt.Errorf("%w: invalid slug", ErrValidation)
	ErrInvalidSetting         = fmt.Errorf("%w: invalid setting", ErrValidation)
	ErrFileTooLarge           = fmt.Errorf("%w: file exceeds the size limit", ErrValidation)
	ErrUnsupportedFileType    = fmt.Errorf("%w: only JPEG, PNG and PDF files are allowed", ErrValidation)
	ErrBalanceLimit           = fmt.Errorf("%w: balance would exceed the wallet limit", ErrValidation)
)

// Not found errors
var (
	ErrUserNotFound              = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrWalletNotFound            = fmt.Errorf("%w: wallet not found", ErrNotFound)
	ErrKYCNotFound               = fmt.Errorf("%w: kyc record not found", ErrNotFound)
	ErrTransactionNotFound       = fmt.Errorf("%w: transaction not found", ErrNotFound)
	ErrVerificationTokenNotFound = fmt.Errorf("%w: verification token not found", ErrNotFound)
	ErrWatchlistEntryNotFound    = fmt.Errorf("%w: watchlist entry not found", ErrNotFound)
	ErrContentNotFound           = fmt.Errorf("%w: content not found", ErrNotFound)
	ErrSettingNotFound           = fmt.Errorf("%w: setting not found", ErrNotFound)
)

// Conflict errors
var (
	ErrDuplicateUser             = fmt.Errorf("%w: username or email already registered", ErrConflict)
	ErrDuplicateKYC              = fmt.Errorf("%w: kyc already submitted", ErrConflict)
	ErrKYCAlreadyDecided         = fmt.Errorf("%w: kyc already decided", ErrConflict)
	ErrTransactionAlreadyDecided = fmt.Errorf("%w: transaction already decided", ErrConflict)
	ErrDuplicateWatchlistEntry   = fmt.Errorf("%w: asset already on watchlist", ErrConflict)
	ErrDuplicateSlug             = fmt.Errorf("%w: slug already in use", ErrConflict)
	ErrConstraintViolation       = fmt.Errorf("%w: database constraint violation", ErrConflict)
)

// ErrSellNotSupported is returned for sell orders
var ErrSellNotSupported = fmt.Errorf("%w: sell orders are not supported", ErrNotSupported)

// ErrorCode returns standardized error codes for known errors.
// More specific errors are matched before their kind.
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrNonPositiveAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrKYCNotFound):
		return CodeKYCNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrKYCAlreadyDecided),
		errors.Is(err, ErrTransactionAlreadyDecided):
		return CodeAlreadyDecided
	case errors.Is(err, ErrDuplicateKYC):
		return CodeDuplicateKYC
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrVerificationRequired):
		return CodeVerificationRequired
	case errors.Is(err, ErrEmailNotVerified):
		return CodeEmailNotVerified
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrNotSupported):
		return CodeNotSupported
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a failed debit
type InsufficientFundsError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, amount, currentBalance string) error {
	return &InsufficientFundsError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// TransactionError represents an error raised while creating or deciding a transaction
type TransactionError struct {
	TransactionID uint64
	UserID        uint64
	Type          string
	Amount        string
	Reason        string
	Err           error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction %d (user: %d, type: %s, amount: %s): %s: %v",
		e.TransactionID, e.UserID, e.Type, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "transaction_error",
		"transaction_id": e.TransactionID,
		"user_id":        e.UserID,
		"type":           e.Type,
		"amount":         e.Amount,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(transactionID, userID uint64, txType, amount, reason string, err error) error {
	return &TransactionError{
		TransactionID: transactionID,
		UserID:        userID,
		Type:          txType,
		Amount:        amount,
		Reason:        reason,
		Err:           err,
	}
}

// ValidationError names the offending field
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is makes every ValidationError match ErrValidation even when Err is a plain error
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e),
	}
}

// NewValidationError creates a validation error for a field
func NewValidationError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// ConflictError names the resource that collided with existing state
type ConflictError struct {
	Resource string
	Key      string
	Err      error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Resource, e.Key, e.Err)
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "conflict",
		"resource":   e.Resource,
		"key":        e.Key,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewConflictError wraps a conflict sentinel with the offending key
func NewConflictError(resource, key string, err error) error {
	return &ConflictError{Resource: resource, Key: key, Err: err}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflictError checks if the error is any conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidationError checks if the error is any validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// LogFields extracts structured fields from typed errors, falling back to the message
func LogFields(err error) map[string]any {
	var withFields interface{ LogFields() map[string]any }
	if errors.As(err, &withFields) {
		return withFields.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}
