package database

import (
	"context"
	"errors"
	"testing"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	domainErr "github.com/simplecyberhub/txc/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_DoCommits(t *testing.T) {
	tdb := NewTestDB(t)
	ctx := context.Background()

	var userID uint64
	err := tdb.UoW.Do(ctx, func(ctx context.Context) error {
		user, err := entity.NewUser("alice", "alice@example.com", "hash", tdb.TimeProvider)
		if err != nil {
			return err
		}
		if err := tdb.UoW.GetUserRepository(ctx).Create(ctx, user); err != nil {
			return err
		}
		userID = user.ID
		wallet, err := entity.NewWallet(user.ID, tdb.TimeProvider)
		if err != nil {
			return err
		}
		return tdb.UoW.GetWalletRepository(ctx).Create(ctx, wallet)
	})
	require.NoError(t, err)

	wallet, err := tdb.UoW.GetWalletRepository(ctx).GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), wallet.Balance())
}

func TestUnitOfWork_DoRollsBack(t *testing.T) {
	tdb := NewTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tdb.UoW.Do(ctx, func(ctx context.Context) error {
		user, err := entity.NewUser("bob", "bob@example.com", "hash", tdb.TimeProvider)
		if err != nil {
			return err
		}
		if err := tdb.UoW.GetUserRepository(ctx).Create(ctx, user); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = tdb.UoW.GetUserRepository(ctx).GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, domainErr.ErrUserNotFound)
}

func TestUnitOfWork_NestedDoJoinsOuter(t *testing.T) {
	tdb := NewTestDB(t)
	ctx := context.Background()

	err := tdb.UoW.Do(ctx, func(outer context.Context) error {
		return tdb.UoW.Do(outer, func(inner context.Context) error {
			assert.Equal(t, outer, inner)
			return nil
		})
	})
	assert.NoError(t, err)
}

func TestUnitOfWork_CommitWithoutTransaction(t *testing.T) {
	tdb := NewTestDB(t)
	assert.Error(t, tdb.UoW.Commit(context.Background()))
	assert.Error(t, tdb.UoW.Rollback(context.Background()))
}

func TestManager_Ping(t *testing.T) {
	tdb := NewTestDB(t)
	assert.NoError(t, tdb.Manager.Ping(context.Background()))
}
