package entity

import (
	"testing"
	"time"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coremocks "github.com/simplecyberhub/txc/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKYCRecord(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Pending on creation", func(t *testing.T) {
		record, err := NewKYCRecord(3, "passport", "X123", "uploads/a.pdf", mockTime)
		require.NoError(t, err)
		assert.Equal(t, KYCStatusPending, record.Status)
		assert.Nil(t, record.RejectionReason)
		assert.False(t, record.IsTerminal())
	})

	t.Run("Missing document fields", func(t *testing.T) {
		_, err := NewKYCRecord(3, " ", "X123", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidDocument)

		_, err = NewKYCRecord(3, "passport", "", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidDocument)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		_, err := NewKYCRecord(0, "passport", "X123", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestKYCRecordDecide(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Approve", func(t *testing.T) {
		record, err := NewKYCRecord(3, "passport", "X123", "", mockTime)
		require.NoError(t, err)

		require.NoError(t, record.Decide(KYCStatusApproved, "ignored", "looks good", mockTime))
		assert.Equal(t, KYCStatusApproved, record.Status)
		assert.Nil(t, record.RejectionReason)
		require.NotNil(t, record.AdminNotes)
		assert.Equal(t, "looks good", *record.AdminNotes)
	})

	t.Run("Reject keeps reason", func(t *testing.T) {
		record, err := NewKYCRecord(3, "passport", "X123", "", mockTime)
		require.NoError(t, err)

		require.NoError(t, record.Decide(KYCStatusRejected, "blurry scan", "", mockTime))
		require.NotNil(t, record.RejectionReason)
		assert.Equal(t, "blurry scan", *record.RejectionReason)
	})

	t.Run("Second decision is a conflict", func(t *testing.T) {
		record, err := NewKYCRecord(3, "passport", "X123", "", mockTime)
		require.NoError(t, err)
		require.NoError(t, record.Decide(KYCStatusRejected, "blurry", "", mockTime))

		err = record.Decide(KYCStatusApproved, "", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrKYCAlreadyDecided)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, KYCStatusRejected, record.Status)
	})

	t.Run("Pending is not a decision", func(t *testing.T) {
		record, err := NewKYCRecord(3, "passport", "X123", "", mockTime)
		require.NoError(t, err)
		assert.ErrorIs(t, record.Decide(KYCStatusPending, "", "", mockTime), errs.ErrInvalidDecision)
	})
}

func TestParseKYCDecision(t *testing.T) {
	d, err := ParseKYCDecision("approved")
	require.NoError(t, err)
	assert.Equal(t, KYCStatusApproved, d)

	_, err = ParseKYCDecision("none")
	assert.ErrorIs(t, err, errs.ErrValidation)
}
