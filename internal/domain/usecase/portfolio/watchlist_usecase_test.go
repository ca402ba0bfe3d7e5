package portfolio

import (
	"context"
	"testing"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchlist_AddListRemove(t *testing.T) {
	tdb := database.NewTestDB(t)
	uc := NewWatchlistUseCase(tdb.UoW, tdb.TimeProvider, tdb.Logger)
	ctx := context.Background()
	user := tdb.CreateTestUser(t, database.TestUser{Username: "alice"})

	entry, err := uc.Add(ctx, usecase.WatchlistAddRequest{
		UserID: user.ID, AssetSymbol: "aapl", AssetName: "Apple Inc.", AssetType: "Stock", Exchange: "NASDAQ",
	})
	require.NoError(t, err)
	assert.Equal(t, "AAPL", entry.AssetSymbol)
	assert.Equal(t, "stock", entry.AssetType)

	_, err = uc.Add(ctx, usecase.WatchlistAddRequest{UserID: user.ID, AssetSymbol: "AAPL", AssetType: "stock"})
	assert.ErrorIs(t, err, errs.ErrDuplicateWatchlistEntry)

	entries, err := uc.ListForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, uc.Remove(ctx, user.ID, entry.ID))
	entries, err = uc.ListForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWatchlist_RemoveIsScopedToOwner(t *testing.T) {
	tdb := database.NewTestDB(t)
	uc := NewWatchlistUseCase(tdb.UoW, tdb.TimeProvider, tdb.Logger)
	ctx := context.Background()
	owner := tdb.CreateTestUser(t, database.TestUser{Username: "owner"})
	intruder := tdb.CreateTestUser(t, database.TestUser{Username: "intruder"})

	entry, err := uc.Add(ctx, usecase.WatchlistAddRequest{UserID: owner.ID, AssetSymbol: "BTC", AssetType: "crypto"})
	require.NoError(t, err)

	err = uc.Remove(ctx, intruder.ID, entry.ID)
	assert.ErrorIs(t, err, errs.ErrWatchlistEntryNotFound)

	entries, err := uc.ListForUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// the same symbol may be followed by different users
	_, err = uc.Add(ctx, usecase.WatchlistAddRequest{UserID: intruder.ID, AssetSymbol: "BTC", AssetType: "crypto"})
	assert.NoError(t, err)
}

func TestWatchlist_Validation(t *testing.T) {
	tdb := database.NewTestDB(t)
	uc := NewWatchlistUseCase(tdb.UoW, tdb.TimeProvider, tdb.Logger)
	user := tdb.CreateTestUser(t, database.TestUser{Username: "alice"})

	_, err := uc.Add(context.Background(), usecase.WatchlistAddRequest{UserID: user.ID, AssetSymbol: " ", AssetType: "stock"})
	assert.ErrorIs(t, err, errs.ErrInvalidAsset)

	assert.ErrorIs(t, uc.Remove(context.Background(), user.ID, 0), errs.ErrInvalidID)
}
