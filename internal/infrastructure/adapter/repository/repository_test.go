package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/database"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletRepository_AdjustBalance(t *testing.T) {
	tdb := database.NewTestDB(t)
	ctx := context.Background()
	user := tdb.CreateTestUser(t, database.TestUser{Username: "alice", BalanceCents: 1000})
	repo := tdb.UoW.GetWalletRepository(ctx)

	wallet, err := repo.AdjustBalance(ctx, user.ID, -400)
	require.NoError(t, err)
	assert.Equal(t, int64(600), wallet.Balance())

	_, err = repo.AdjustBalance(ctx, user.ID, -601)
	assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	assert.True(t, errs.IsInsufficientFundsError(err))
	assert.Equal(t, int64(600), tdb.BalanceOf(t, user.ID))

	wallet, err = repo.AdjustBalance(ctx, user.ID, -600)
	require.NoError(t, err)
	assert.Equal(t, int64(0), wallet.Balance())

	_, err = repo.AdjustBalance(ctx, user.ID+100, 10)
	assert.ErrorIs(t, err, errs.ErrWalletNotFound)
}

func TestWalletRepository_AdjustBalanceLimit(t *testing.T) {
	tdb := database.NewTestDB(t)
	ctx := context.Background()
	user := tdb.CreateTestUser(t, database.TestUser{Username: "alice", BalanceCents: entity.MaxAmountInCents - 100})
	repo := tdb.UoW.GetWalletRepository(ctx)

	_, err := repo.AdjustBalance(ctx, user.ID, 101)
	assert.ErrorIs(t, err, errs.ErrBalanceLimit)
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t, entity.MaxAmountInCents-100, tdb.BalanceOf(t, user.ID))

	_, err = repo.AdjustBalance(ctx, user.ID, entity.MaxAmountInCents+1)
	assert.ErrorIs(t, err, errs.ErrBalanceLimit)

	wallet, err := repo.AdjustBalance(ctx, user.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxAmountInCents, wallet.Balance())

	wallet, err = repo.AdjustBalance(ctx, user.ID, -entity.MaxAmountInCents)
	require.NoError(t, err)
	assert.Equal(t, int64(0), wallet.Balance())
}

func TestWalletRepository_OneWalletPerUser(t *testing.T) {
	tdb := database.NewTestDB(t)
	ctx := context.Background()
	user := tdb.CreateTestUser(t, database.TestUser{Username: "alice"})

	wallet, err := entity.NewWallet(user.ID, tdb.TimeProvider)
	require.NoError(t, err)
	assert.ErrorIs(t, tdb.UoW.GetWalletRepository(ctx).Create(ctx, wallet), errs.ErrConflict)
}

func TestUserRepository(t *testing.T) {
	tdb := database.NewTestDB(t)
	ctx := context.Background()
	repo := tdb.UoW.GetUserRepository(ctx)

	user := tdb.CreateTestUser(t, database.TestUser{Username: "alice"})

	exists, err := repo.ExistsByUsernameOrEmail(ctx, "someone", "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsByUsernameOrEmail(ctx, "bob", "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.MarkVerified(ctx, user.ID))
	stored, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)

	assert.ErrorIs(t, repo.MarkVerified(ctx, 999), errs.ErrUserNotFound)
	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_SaveEmailConfirmationKeepsOtherFlags(t *testing.T) {
	tdb := database.NewTestDB(t)
	ctx := context.Background()
	repo := tdb.UoW.GetUserRepository(ctx)

	user, err := entity.NewUser("carol", "carol@example.com", "hash", tdb.TimeProvider)
	require.NoError(t, err)
	user.IssueVerificationToken("tok-1", time.Hour, tdb.TimeProvider)
	require.NoError(t, repo.Create(ctx, user))

	stale, err := repo.GetByVerificationToken(ctx, "tok-1")
	require.NoError(t, err)

	// KYC approval lands between the read and the write
	require.NoError(t, repo.MarkVerified(ctx, user.ID))

	require.NoError(t, stale.ConfirmEmail("tok-1", tdb.TimeProvider))
	require.NoError(t, repo.SaveEmailConfirmation(ctx, stale, "tok-1"))

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsEmailVerified)
	assert.True(t, stored.IsVerified)
	assert.Nil(t, stored.VerificationToken)

	assert.ErrorIs(t, repo.SaveEmailConfirmation(ctx, stale, "tok-1"), errs.ErrVerificationTokenNotFound)
}

func TestTransactionRepository_SaveDecision(t *testing.T) {
	tdb := database.NewTestDB(t)
	ctx := context.Background()
	user := tdb.CreateTestUser(t, database.TestUser{Username: "alice"})
	repo := tdb.UoW.GetTransactionRepository(ctx)

	tx, err := entity.NewTransaction(user.ID, "withdrawal", 700, tdb.TimeProvider)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, tx))
	require.NotZero(t, tx.ID)

	// two deciders loaded the same pending row
	first, err := repo.GetByID(ctx, tx.ID)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, tx.ID)
	require.NoError(t, err)

	require.NoError(t, first.Decide(entity.StatusRejected, tdb.TimeProvider))
	require.NoError(t, repo.SaveDecision(ctx, first))

	require.NoError(t, second.Decide(entity.StatusCompleted, tdb.TimeProvider))
	assert.ErrorIs(t, repo.SaveDecision(ctx, second), errs.ErrTransactionAlreadyDecided)

	stored, err := repo.GetByID(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, stored.Status)
	assert.NotNil(t, stored.DecidedAt)

	missing := &entity.Transaction{ID: 999, Status: entity.StatusCompleted}
	assert.ErrorIs(t, repo.SaveDecision(ctx, missing), errs.ErrTransactionNotFound)
}

func TestTransactionRepository_Lists(t *testing.T) {
	tdb := database.NewTestDB(t)
	ctx := context.Background()
	alice := tdb.CreateTestUser(t, database.TestUser{Username: "alice"})
	bob := tdb.CreateTestUser(t, database.TestUser{Username: "bob"})
	repo := tdb.UoW.GetTransactionRepository(ctx)

	for _, userID := range []uint64{alice.ID, bob.ID, alice.ID} {
		tx, err := entity.NewTransaction(userID, "deposit", 100, tdb.TimeProvider)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, tx))
	}

	mine, err := repo.ListByUser(ctx, alice.ID, persistence.Page{})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Less(t, mine[0].ID, mine[1].ID)

	pending, err := repo.ListByStatus(ctx, entity.StatusPending, persistence.Page{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	count, err := repo.CountByStatus(ctx, entity.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestWatchlistRepository(t *testing.T) {
	tdb := database.NewTestDB(t)
	ctx := context.Background()
	alice := tdb.CreateTestUser(t, database.TestUser{Username: "alice"})
	bob := tdb.CreateTestUser(t, database.TestUser{Username: "bob"})
	repo := tdb.UoW.GetWatchlistRepository(ctx)

	entry, err := entity.NewWatchlistEntry(alice.ID, "AAPL", "Apple", "stock", "NASDAQ", tdb.TimeProvider)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, entry))

	dup, err := entity.NewWatchlistEntry(alice.ID, "AAPL", "Apple", "stock", "NASDAQ", tdb.TimeProvider)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, dup), errs.ErrDuplicateWatchlistEntry)

	assert.ErrorIs(t, repo.DeleteForUser(ctx, bob.ID, entry.ID), errs.ErrWatchlistEntryNotFound)
	require.NoError(t, repo.DeleteForUser(ctx, alice.ID, entry.ID))

	entries, err := repo.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestErrorClassifier_Translate(t *testing.T) {
	c := repository.NewErrorClassifier()

	testCases := []struct {
		name string
		err  error
		want error
	}{
		{"Duplicate", errors.New("UNIQUE constraint failed: users.email"), errs.ErrDuplicateUser},
		{"Locked", errors.New("database is locked"), errs.ErrConflict},
		{"Connection", errors.New("dial tcp: connection refused"), errs.ErrDatabaseConnection},
		{"ForeignKey", errors.New("FOREIGN KEY constraint failed"), errs.ErrConstraintViolation},
		{"Unknown", errors.New("boom"), errs.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, c.Translate(tc.err, errs.ErrUserNotFound, errs.ErrDuplicateUser), tc.want)
		})
	}
	assert.NoError(t, c.Translate(nil, errs.ErrUserNotFound, errs.ErrDuplicateUser))
}
