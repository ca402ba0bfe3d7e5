package kyc

import (
	"context"
	"testing"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKYC(t *testing.T) (*KYCUseCase, *database.TestDB) {
	tdb := database.NewTestDB(t)
	return NewKYCUseCase(tdb.UoW, tdb.TimeProvider, tdb.Logger, coreport.NoopMetrics{}), tdb
}

func submit(t *testing.T, uc *KYCUseCase, userID uint64) *entity.KYCRecord {
	t.Helper()
	record, err := uc.Submit(context.Background(), usecase.KYCSubmission{
		UserID:       userID,
		DocumentType: "passport",
		DocumentID:   "X1234567",
		DocumentPath: "uploads/doc.png",
	})
	require.NoError(t, err)
	return record
}

func isVerified(t *testing.T, tdb *database.TestDB, userID uint64) bool {
	t.Helper()
	user, err := tdb.UoW.GetUserRepository(context.Background()).GetByID(context.Background(), userID)
	require.NoError(t, err)
	return user.IsVerified
}

func TestSubmit(t *testing.T) {
	uc, tdb := newKYC(t)
	user := tdb.CreateTestUser(t, database.TestUser{Username: "alice"})

	record := submit(t, uc, user.ID)
	assert.NotZero(t, record.ID)
	assert.Equal(t, entity.KYCStatusPending, record.Status)

	_, err := uc.Submit(context.Background(), usecase.KYCSubmission{
		UserID: user.ID, DocumentType: "passport", DocumentID: "other",
	})
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.ErrorIs(t, err, errs.ErrDuplicateKYC)
}

func TestSubmit_Validation(t *testing.T) {
	uc, tdb := newKYC(t)
	user := tdb.CreateTestUser(t, database.TestUser{Username: "alice"})

	_, err := uc.Submit(context.Background(), usecase.KYCSubmission{UserID: user.ID, DocumentType: "passport"})
	assert.ErrorIs(t, err, errs.ErrInvalidDocument)

	_, err = uc.Submit(context.Background(), usecase.KYCSubmission{UserID: user.ID + 50, DocumentType: "passport", DocumentID: "1"})
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestSubmit_NoResubmissionAfterRejection(t *testing.T) {
	uc, tdb := newKYC(t)
	user := tdb.CreateTestUser(t, database.TestUser{Username: "alice"})
	record := submit(t, uc, user.ID)

	_, err := uc.Decide(context.Background(), usecase.KYCDecision{
		KYCID: record.ID, Status: "rejected", RejectionReason: "blurry scan",
	})
	require.NoError(t, err)

	_, err = uc.Submit(context.Background(), usecase.KYCSubmission{
		UserID: user.ID, DocumentType: "passport", DocumentID: "X1234567",
	})
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestDecide_ApprovalVerifiesOnlyTheOwner(t *testing.T) {
	uc, tdb := newKYC(t)
	owner := tdb.CreateTestUser(t, database.TestUser{Username: "owner"})
	other := tdb.CreateTestUser(t, database.TestUser{Username: "other"})
	record := submit(t, uc, owner.ID)
	submit(t, uc, other.ID)

	decided, err := uc.Decide(context.Background(), usecase.KYCDecision{
		KYCID: record.ID, Status: "approved", AdminNotes: "looks good",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.KYCStatusApproved, decided.Status)
	require.NotNil(t, decided.AdminNotes)
	assert.Equal(t, "looks good", *decided.AdminNotes)

	assert.True(t, isVerified(t, tdb, owner.ID))
	assert.False(t, isVerified(t, tdb, other.ID))
}

func TestDecide_RejectionLeavesUserUnverified(t *testing.T) {
	uc, tdb := newKYC(t)
	user := tdb.CreateTestUser(t, database.TestUser{Username: "alice"})
	record := submit(t, uc, user.ID)

	decided, err := uc.Decide(context.Background(), usecase.KYCDecision{
		KYCID: record.ID, Status: "rejected", RejectionReason: "expired document",
	})
	require.NoError(t, err)
	require.NotNil(t, decided.RejectionReason)
	assert.Equal(t, "expired document", *decided.RejectionReason)
	assert.False(t, isVerified(t, tdb, user.ID))
}

func TestDecide_SecondDecisionConflicts(t *testing.T) {
	uc, tdb := newKYC(t)
	user := tdb.CreateTestUser(t, database.TestUser{Username: "alice"})
	record := submit(t, uc, user.ID)

	_, err := uc.Decide(context.Background(), usecase.KYCDecision{KYCID: record.ID, Status: "rejected", RejectionReason: "no"})
	require.NoError(t, err)

	_, err = uc.Decide(context.Background(), usecase.KYCDecision{KYCID: record.ID, Status: "approved"})
	assert.ErrorIs(t, err, errs.ErrKYCAlreadyDecided)
	assert.ErrorIs(t, err, errs.ErrConflict)

	view, err := uc.StatusFor(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.KYCStatusRejected, view.Status)
	assert.False(t, view.IsVerified)
}

func TestDecide_Errors(t *testing.T) {
	uc, tdb := newKYC(t)
	user := tdb.CreateTestUser(t, database.TestUser{Username: "alice"})
	record := submit(t, uc, user.ID)

	_, err := uc.Decide(context.Background(), usecase.KYCDecision{KYCID: record.ID + 10, Status: "approved"})
	assert.ErrorIs(t, err, errs.ErrKYCNotFound)

	_, err = uc.Decide(context.Background(), usecase.KYCDecision{KYCID: record.ID, Status: "pending"})
	assert.ErrorIs(t, err, errs.ErrInvalidDecision)

	_, err = uc.Decide(context.Background(), usecase.KYCDecision{Status: "approved"})
	assert.ErrorIs(t, err, errs.ErrInvalidID)
}

func TestStatusFor(t *testing.T) {
	uc, tdb := newKYC(t)
	user := tdb.CreateTestUser(t, database.TestUser{Username: "alice"})

	view, err := uc.StatusFor(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.KYCStatusNone, view.Status)
	assert.Nil(t, view.Record)

	submit(t, uc, user.ID)
	view, err = uc.StatusFor(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.KYCStatusPending, view.Status)
	assert.NotNil(t, view.Record)

	_, err = uc.StatusFor(context.Background(), user.ID+10)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestListPending(t *testing.T) {
	uc, tdb := newKYC(t)
	first := tdb.CreateTestUser(t, database.TestUser{Username: "first"})
	second := tdb.CreateTestUser(t, database.TestUser{Username: "second"})
	third := tdb.CreateTestUser(t, database.TestUser{Username: "third"})

	r1 := submit(t, uc, first.ID)
	r2 := submit(t, uc, second.ID)
	r3 := submit(t, uc, third.ID)

	_, err := uc.Decide(context.Background(), usecase.KYCDecision{KYCID: r2.ID, Status: "approved"})
	require.NoError(t, err)

	pending, err := uc.ListPending(context.Background(), persistence.Page{})
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, r1.ID, pending[0].ID)
	assert.Equal(t, r3.ID, pending[1].ID)
}
