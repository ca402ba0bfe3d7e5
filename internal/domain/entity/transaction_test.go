package entity

import (
	"testing"
	"time"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coremocks "github.com/simplecyberhub/txc/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid transaction creation", func(t *testing.T) {
		tx, err := NewTransaction(1, "deposit", 10000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.UserID)
		assert.Equal(t, TypeDeposit, tx.Type)
		assert.Equal(t, int64(10000), tx.AmountInCents)
		assert.Equal(t, "100.00", tx.Amount())
		assert.Equal(t, "USD", tx.Currency)
		assert.Equal(t, StatusPending, tx.Status)
		assert.Equal(t, DefaultTradeDuration, tx.Duration)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.Nil(t, tx.DecidedAt)
	})

	t.Run("Type is case insensitive", func(t *testing.T) {
		tx, err := NewTransaction(1, " Withdrawal ", 500, mockTime)
		require.NoError(t, err)
		assert.Equal(t, TypeWithdrawal, tx.Type)
	})

	t.Run("With trade metadata", func(t *testing.T) {
		symbol := "AAPL"
		tp := decimal.RequireFromString("210.5")
		tx, err := NewTransaction(1, "buy", 500, mockTime, WithTradeMeta(TradeMeta{
			AssetSymbol: &symbol,
			Duration:    7,
			TakeProfit:  &tp,
		}))
		require.NoError(t, err)
		assert.Equal(t, "AAPL", *tx.AssetSymbol)
		assert.Equal(t, 7, tx.Duration)
		assert.True(t, tx.TakeProfit.Equal(tp))
	})

	t.Run("Negative duration", func(t *testing.T) {
		_, err := NewTransaction(1, "buy", 500, mockTime, WithTradeMeta(TradeMeta{Duration: -1}))
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Invalid type", func(t *testing.T) {
		tx, err := NewTransaction(1, "transfer", 500, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
		assert.Nil(t, tx)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		for _, amount := range []int64{0, -100} {
			_, err := NewTransaction(1, "deposit", amount, mockTime)
			assert.ErrorIs(t, err, errs.ErrNonPositiveAmount)
		}
	})

	t.Run("Zero user ID", func(t *testing.T) {
		_, err := NewTransaction(0, "deposit", 100, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestTransactionDirection(t *testing.T) {
	testCases := []struct {
		txType TransactionType
		credit bool
		debit  bool
	}{
		{TypeDeposit, true, false},
		{TypeWithdrawal, false, true},
		{TypeBuy, false, true},
		{TypeSell, false, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.txType), func(t *testing.T) {
			tx := &Transaction{Type: tc.txType}
			assert.Equal(t, tc.credit, tx.IsCredit())
			assert.Equal(t, tc.debit, tx.IsDebit())
		})
	}
}

func TestTransactionDecide(t *testing.T) {
	created := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	decided := created.Add(time.Hour)

	newPending := func(t *testing.T) *Transaction {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(created).Maybe()
		tx, err := NewTransaction(1, "withdrawal", 2500, mockTime)
		require.NoError(t, err)
		return tx
	}

	t.Run("Complete", func(t *testing.T) {
		tx := newPending(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(decided)

		require.NoError(t, tx.MarkAsCompleted(mockTime))
		assert.Equal(t, StatusCompleted, tx.Status)
		require.NotNil(t, tx.DecidedAt)
		assert.Equal(t, decided, *tx.DecidedAt)
		assert.True(t, tx.IsTerminal())
	})

	t.Run("Reject", func(t *testing.T) {
		tx := newPending(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(decided)

		require.NoError(t, tx.MarkAsRejected(mockTime))
		assert.Equal(t, StatusRejected, tx.Status)
	})

	t.Run("Terminal status is final", func(t *testing.T) {
		tx := newPending(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(decided).Maybe()
		require.NoError(t, tx.MarkAsRejected(mockTime))

		err := tx.MarkAsCompleted(mockTime)
		assert.ErrorIs(t, err, errs.ErrTransactionAlreadyDecided)
		assert.Equal(t, StatusRejected, tx.Status)
	})

	t.Run("Pending is not an outcome", func(t *testing.T) {
		tx := newPending(t)
		err := tx.Decide(StatusPending, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidDecision)
	})
}

func TestParseDecisionOutcome(t *testing.T) {
	outcome, err := ParseDecisionOutcome("completed")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, outcome)

	_, err = ParseDecisionOutcome("approved")
	assert.ErrorIs(t, err, errs.ErrInvalidDecision)
}
