package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind error
	}{
		{"InvalidAmountIsValidation", ErrInvalidAmount, ErrValidation},
		{"RejectionReasonIsValidation", ErrRejectionReason, ErrValidation},
		{"UserNotFoundIsNotFound", ErrUserNotFound, ErrNotFound},
		{"DuplicateKYCIsConflict", ErrDuplicateKYC, ErrConflict},
		{"AlreadyDecidedIsConflict", ErrTransactionAlreadyDecided, ErrConflict},
		{"SellIsNotSupported", ErrSellNotSupported, ErrNotSupported},
		{"DatabaseIsInternal", ErrDatabaseConnection, ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.kind) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tc.err, tc.kind)
			}
		})
	}

	if errors.Is(ErrDuplicateKYC, ErrNotFound) {
		t.Errorf("conflict error must not match ErrNotFound")
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientFunds", ErrInsufficientFunds, CodeInsufficientFunds},
		{"InvalidAmount", ErrInvalidAmount, CodeInvalidAmount},
		{"InvalidAmountWrapped", fmt.Errorf("%w: empty value", ErrInvalidAmount), CodeInvalidAmount},
		{"InvalidUserID", ErrInvalidUserID, CodeInvalidUserID},
		{"GenericValidation", ErrInvalidEmail, CodeValidation},
		{"UserNotFound", ErrUserNotFound, CodeUserNotFound},
		{"ContentNotFound", ErrContentNotFound, CodeNotFound},
		{"AlreadyDecided", ErrKYCAlreadyDecided, CodeAlreadyDecided},
		{"DuplicateKYC", ErrDuplicateKYC, CodeDuplicateKYC},
		{"DuplicateSlug", ErrDuplicateSlug, CodeConflict},
		{"VerificationRequired", ErrVerificationRequired, CodeVerificationRequired},
		{"NotSupported", ErrSellNotSupported, CodeNotSupported},
		{"RateLimited", ErrRateLimited, CodeRateLimited},
		{"Database", ErrDatabaseConnection, CodeDatabaseConnection},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(123, "80.00", "20.00")

	expectedErrMsg := "insufficient funds for user 123: required 80.00, available 20.00"
	if err.Error() != expectedErrMsg {
		t.Errorf("Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("errors.Is(err, ErrInsufficientFunds) = false, want true")
	}

	wrapped := fmt.Errorf("decide: %w", err)
	if !IsInsufficientFundsError(wrapped) {
		t.Errorf("wrapped insufficient funds error not recognised")
	}

	fields := LogFields(wrapped)
	if fields["error_type"] != "insufficient_funds" {
		t.Errorf("LogFields()[error_type] = %v, want insufficient_funds", fields["error_type"])
	}
	if fields["current_balance"] != "20.00" {
		t.Errorf("LogFields()[current_balance] = %v, want 20.00", fields["current_balance"])
	}
}

func TestTransactionError(t *testing.T) {
	txError := NewTransactionError(7, 456, "withdrawal", "200.75", "decision failed", ErrTransactionAlreadyDecided)

	if !errors.Is(txError, ErrConflict) {
		t.Errorf("errors.Is(txError, ErrConflict) = false, want true")
	}

	var te *TransactionError
	if !errors.As(txError, &te) {
		t.Fatalf("errors.As(txError, *TransactionError) = false, want true")
	}

	fields := te.LogFields()
	if fields["transaction_id"] != uint64(7) {
		t.Errorf("LogFields()[transaction_id] = %v, want 7", fields["transaction_id"])
	}
	if fields["error_code"] != CodeAlreadyDecided {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeAlreadyDecided)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("amount", errors.New("must be positive"))

	if !IsValidationError(err) {
		t.Errorf("IsValidationError() = false, want true")
	}
	if err.Error() != "amount: must be positive" {
		t.Errorf("Error() = %s", err.Error())
	}
	if ErrorCode(err) != CodeValidation {
		t.Errorf("ErrorCode() = %d, want %d", ErrorCode(err), CodeValidation)
	}
}

func TestLogFieldsFallback(t *testing.T) {
	fields := LogFields(ErrUserNotFound)
	if fields["error_code"] != CodeUserNotFound {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeUserNotFound)
	}
	if fields["error"] != ErrUserNotFound.Error() {
		t.Errorf("LogFields()[error] = %v", fields["error"])
	}
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("kyc", "user 7", ErrDuplicateKYC)

	if !IsConflictError(err) {
		t.Errorf("IsConflictError() = false, want true")
	}
	if ErrorCode(err) != CodeDuplicateKYC {
		t.Errorf("ErrorCode() = %d, want %d", ErrorCode(err), CodeDuplicateKYC)
	}
	if LogFields(err)["resource"] != "kyc" {
		t.Errorf("LogFields()[resource] = %v, want kyc", LogFields(err)["resource"])
	}
}
