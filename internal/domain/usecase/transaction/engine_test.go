package transaction

import (
	"context"
	"sync"
	"testing"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
	"github.com/simplecyberhub/txc/internal/domain/usecase/ledger"
	"github.com/simplecyberhub/txc/internal/domain/usecase/portfolio"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engineFixture struct {
	engine *Engine
	tdb    *database.TestDB
	ctx    context.Context
}

func newEngineFixture(t *testing.T) *engineFixture {
	return newEngineFixtureOn(database.NewTestDB(t))
}

func newEngineFixtureOn(tdb *database.TestDB) *engineFixture {
	engine := NewEngine(
		tdb.UoW,
		ledger.NewLedgerUseCase(tdb.UoW, tdb.TimeProvider, tdb.Logger),
		portfolio.NewPortfolioUseCase(tdb.UoW, tdb.Logger),
		tdb.TimeProvider,
		tdb.Logger,
		coreport.NoopMetrics{},
	)
	return &engineFixture{engine: engine, tdb: tdb, ctx: context.Background()}
}

func (f *engineFixture) transactionsOf(t *testing.T, userID uint64) []*entity.Transaction {
	t.Helper()
	txns, err := f.engine.ListForUser(f.ctx, userID, persistence.Page{})
	require.NoError(t, err)
	return txns
}

func (f *engineFixture) withdraw(t *testing.T, userID uint64, amount string) *entity.Transaction {
	t.Helper()
	txn, err := f.engine.Create(f.ctx, usecase.CreateTransactionRequest{UserID: userID, Type: "withdrawal", Amount: amount})
	require.NoError(t, err)
	return txn
}

func TestDeposit(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", BalanceCents: 1000})

	txn, err := f.engine.Create(f.ctx, usecase.CreateTransactionRequest{UserID: user.ID, Type: "deposit", Amount: "25.50"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, txn.Status)
	assert.Equal(t, int64(2550), txn.AmountInCents)
	assert.NotNil(t, txn.DecidedAt)

	assert.Equal(t, int64(3550), f.tdb.BalanceOf(t, user.ID))

	txns := f.transactionsOf(t, user.ID)
	require.Len(t, txns, 1)
	assert.Equal(t, entity.TypeDeposit, txns[0].Type)
	assert.Equal(t, entity.StatusCompleted, txns[0].Status)
}

func TestDeposit_DoesNotRequireVerification(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice"})

	_, err := f.engine.Create(f.ctx, usecase.CreateTransactionRequest{UserID: user.ID, Type: "deposit", Amount: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(100), f.tdb.BalanceOf(t, user.ID))
}

func TestDeposit_WalletLimit(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", BalanceCents: entity.MaxAmountInCents - 100})

	_, err := f.engine.Create(f.ctx, usecase.CreateTransactionRequest{UserID: user.ID, Type: "deposit", Amount: "92233720368547758.07"})
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	_, err = f.engine.Create(f.ctx, usecase.CreateTransactionRequest{UserID: user.ID, Type: "deposit", Amount: "1.01"})
	assert.ErrorIs(t, err, errs.ErrBalanceLimit)
	assert.ErrorIs(t, err, errs.ErrValidation)

	assert.Equal(t, entity.MaxAmountInCents-100, f.tdb.BalanceOf(t, user.ID))
	assert.Empty(t, f.transactionsOf(t, user.ID))
}

func TestCreate_AmountValidation(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", KYCVerified: true, BalanceCents: 1000})

	for _, amount := range []string{"", "0", "0.00", "-5", "1.234", "abc", "1e3"} {
		t.Run(amount, func(t *testing.T) {
			_, err := f.engine.Create(f.ctx, usecase.CreateTransactionRequest{UserID: user.ID, Type: "deposit", Amount: amount})
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}

	_, err := f.engine.Create(f.ctx, usecase.CreateTransactionRequest{UserID: user.ID, Type: "transfer", Amount: "1"})
	assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)

	assert.Equal(t, int64(1000), f.tdb.BalanceOf(t, user.ID))
	assert.Empty(t, f.transactionsOf(t, user.ID))
}

func TestWithdrawal_RequiresVerification(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", BalanceCents: 10000})

	_, err := f.engine.Create(f.ctx, usecase.CreateTransactionRequest{UserID: user.ID, Type: "withdrawal", Amount: "10"})
	assert.ErrorIs(t, err, errs.ErrVerificationRequired)
	assert.Equal(t, int64(10000), f.tdb.BalanceOf(t, user.ID))
	assert.Empty(t, f.transactionsOf(t, user.ID))
}

func TestWithdrawal_AboveBalance(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", KYCVerified: true, BalanceCents: 5000})

	_, err := f.engine.Create(f.ctx, usecase.CreateTransactionRequest{UserID: user.ID, Type: "withdrawal", Amount: "50.01"})
	assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	assert.Equal(t, int64(5000), f.tdb.BalanceOf(t, user.ID))
	assert.Empty(t, f.transactionsOf(t, user.ID))
}

func TestWithdrawal_PendingUntilApproved(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", KYCVerified: true, BalanceCents: 5000})

	txn := f.withdraw(t, user.ID, "20")
	assert.Equal(t, entity.StatusPending, txn.Status)
	assert.Equal(t, int64(5000), f.tdb.BalanceOf(t, user.ID), "request must not touch the balance")

	decided, err := f.engine.Decide(f.ctx, txn.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, decided.Status)
	assert.Equal(t, int64(3000), f.tdb.BalanceOf(t, user.ID))
}

func TestWithdrawal_RejectedHasNoLedgerEffect(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", KYCVerified: true, BalanceCents: 5000})

	txn := f.withdraw(t, user.ID, "20")
	decided, err := f.engine.Decide(f.ctx, txn.ID, "rejected")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, decided.Status)
	assert.Equal(t, int64(5000), f.tdb.BalanceOf(t, user.ID))
}

func TestDecide_SecondDecisionConflicts(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", KYCVerified: true, BalanceCents: 5000})
	txn := f.withdraw(t, user.ID, "20")

	_, err := f.engine.Decide(f.ctx, txn.ID, "rejected")
	require.NoError(t, err)

	_, err = f.engine.Decide(f.ctx, txn.ID, "completed")
	assert.ErrorIs(t, err, errs.ErrConflict)

	txns := f.transactionsOf(t, user.ID)
	require.Len(t, txns, 1)
	assert.Equal(t, entity.StatusRejected, txns[0].Status)
	assert.Equal(t, int64(5000), f.tdb.BalanceOf(t, user.ID))
}

func TestDecide_ShortfallLeavesWithdrawalPending(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", KYCVerified: true, BalanceCents: 5000})
	first := f.withdraw(t, user.ID, "40")
	second := f.withdraw(t, user.ID, "40")

	_, err := f.engine.Decide(f.ctx, first.ID, "completed")
	require.NoError(t, err)

	_, err = f.engine.Decide(f.ctx, second.ID, "completed")
	assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

	pending, err := f.engine.ListPendingForAdmin(f.ctx, persistence.Page{})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
	assert.Equal(t, int64(1000), f.tdb.BalanceOf(t, user.ID))
}

// The sqlite test pool holds a single connection, so these two run the
// deciders one after another. engine_postgres_test.go repeats them with
// concurrent writers.
func TestDecide_ConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	checkConcurrentWithdrawalsNeverOverdraw(t, newEngineFixture(t), "alice")
}

func TestDecide_ConcurrentDecidersOnOneTransaction(t *testing.T) {
	checkOneDeciderWins(t, newEngineFixture(t), "alice")
}

func checkConcurrentWithdrawalsNeverOverdraw(t *testing.T, f *engineFixture, username string) {
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: username, KYCVerified: true, BalanceCents: 10000})
	ids := []uint64{f.withdraw(t, user.ID, "70").ID, f.withdraw(t, user.ID, "70").ID}

	errsCh := make(chan error, len(ids))
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			_, err := f.engine.Decide(f.ctx, id, "completed")
			errsCh <- err
		}(id)
	}
	wg.Wait()
	close(errsCh)

	var succeeded, insufficient int
	for err := range errsCh {
		switch {
		case err == nil:
			succeeded++
		case errs.IsInsufficientFundsError(err):
			insufficient++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, insufficient)
	assert.Equal(t, int64(3000), f.tdb.BalanceOf(t, user.ID))
}

func checkOneDeciderWins(t *testing.T, f *engineFixture, username string) {
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: username, KYCVerified: true, BalanceCents: 10000})
	txn := f.withdraw(t, user.ID, "30")

	const deciders = 4
	results := make(chan error, deciders)
	var wg sync.WaitGroup
	for i := 0; i < deciders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.engine.Decide(f.ctx, txn.ID, "completed")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var won int
	for err := range results {
		if err == nil {
			won++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrConflict)
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, int64(7000), f.tdb.BalanceOf(t, user.ID), "the withdrawal must be debited exactly once")
}

func TestDecide_Errors(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.engine.Decide(f.ctx, 999, "completed")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

	_, err = f.engine.Decide(f.ctx, 1, "pending")
	assert.ErrorIs(t, err, errs.ErrInvalidDecision)

	_, err = f.engine.Decide(f.ctx, 0, "completed")
	assert.ErrorIs(t, err, errs.ErrInvalidID)
}

func TestSell_NotSupported(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", KYCVerified: true, BalanceCents: 10000})

	_, err := f.engine.Create(f.ctx, usecase.CreateTransactionRequest{
		UserID: user.ID, Type: "sell", AssetSymbol: "AAPL", AssetType: "stock", Quantity: "1", Price: "10",
	})
	assert.ErrorIs(t, err, errs.ErrNotSupported)
	assert.Empty(t, f.transactionsOf(t, user.ID))
}

func TestBuy(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", KYCVerified: true, BalanceCents: 100000})

	result, err := f.engine.Buy(f.ctx, usecase.BuyRequest{
		UserID: user.ID, AssetSymbol: "aapl", AssetType: "stock", Quantity: "2.5", Price: "150.333",
		Options: usecase.TradeOptions{OrderType: "Market", TakeProfit: "200"},
	})
	require.NoError(t, err)

	// 2.5 * 150.333 = 375.8325, rounded half up to 375.83
	assert.Equal(t, int64(37583), result.Transaction.AmountInCents)
	assert.Equal(t, entity.StatusCompleted, result.Transaction.Status)
	assert.Equal(t, entity.TypeBuy, result.Transaction.Type)
	require.NotNil(t, result.Transaction.OrderType)
	assert.Equal(t, "market", *result.Transaction.OrderType)
	assert.Equal(t, entity.DefaultTradeDuration, result.Transaction.Duration)
	assert.Equal(t, int64(100000-37583), result.Wallet.Balance())

	holdings, err := portfolio.NewPortfolioUseCase(f.tdb.UoW, f.tdb.Logger).ListForUser(f.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, "AAPL", holdings[0].AssetSymbol)
	assert.Equal(t, "2.5", holdings[0].Quantity.String())
}

func TestBuy_EntriesAreNotMerged(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", KYCVerified: true, BalanceCents: 100000})

	for i := 0; i < 2; i++ {
		_, err := f.engine.Create(f.ctx, usecase.CreateTransactionRequest{
			UserID: user.ID, Type: "buy", AssetSymbol: "BTC", AssetType: "crypto", Quantity: "0.01", Price: "30000",
		})
		require.NoError(t, err)
	}

	holdings, err := portfolio.NewPortfolioUseCase(f.tdb.UoW, f.tdb.Logger).ListForUser(f.ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, holdings, 2)
	assert.Equal(t, int64(100000-2*30000), f.tdb.BalanceOf(t, user.ID))
}

func TestBuy_InsufficientFundsIsAtomic(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", KYCVerified: true, BalanceCents: 1000})

	_, err := f.engine.Buy(f.ctx, usecase.BuyRequest{
		UserID: user.ID, AssetSymbol: "AAPL", AssetType: "stock", Quantity: "1", Price: "10.01",
	})
	assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

	holdings, err := portfolio.NewPortfolioUseCase(f.tdb.UoW, f.tdb.Logger).ListForUser(f.ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, holdings)
	assert.Empty(t, f.transactionsOf(t, user.ID))
	assert.Equal(t, int64(1000), f.tdb.BalanceOf(t, user.ID))
}

func TestBuy_Validation(t *testing.T) {
	f := newEngineFixture(t)
	unverified := f.tdb.CreateTestUser(t, database.TestUser{Username: "bob", BalanceCents: 100000})
	verified := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", KYCVerified: true, BalanceCents: 100000})

	_, err := f.engine.Buy(f.ctx, usecase.BuyRequest{UserID: unverified.ID, AssetSymbol: "AAPL", AssetType: "stock", Quantity: "1", Price: "1"})
	assert.ErrorIs(t, err, errs.ErrVerificationRequired)

	testCases := []struct {
		name string
		req  usecase.BuyRequest
		kind error
	}{
		{"MissingSymbol", usecase.BuyRequest{AssetType: "stock", Quantity: "1", Price: "1"}, errs.ErrInvalidAsset},
		{"ZeroQuantity", usecase.BuyRequest{AssetSymbol: "A", AssetType: "stock", Quantity: "0", Price: "1"}, errs.ErrInvalidQuantity},
		{"MissingPrice", usecase.BuyRequest{AssetSymbol: "A", AssetType: "stock", Quantity: "1"}, errs.ErrInvalidPrice},
		{"CostRoundsToZero", usecase.BuyRequest{AssetSymbol: "A", AssetType: "stock", Quantity: "0.001", Price: "1"}, errs.ErrValidation},
		{"BadOrderType", usecase.BuyRequest{AssetSymbol: "A", AssetType: "stock", Quantity: "1", Price: "1", Options: usecase.TradeOptions{OrderType: "iceberg"}}, errs.ErrValidation},
		{"BadStopLoss", usecase.BuyRequest{AssetSymbol: "A", AssetType: "stock", Quantity: "1", Price: "1", Options: usecase.TradeOptions{StopLoss: "-3"}}, errs.ErrValidation},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.UserID = verified.ID
			_, err := f.engine.Buy(f.ctx, tc.req)
			assert.ErrorIs(t, err, tc.kind)
		})
	}

	assert.Equal(t, int64(100000), f.tdb.BalanceOf(t, verified.ID))
}

func TestListForUser_OrderedOldestFirst(t *testing.T) {
	f := newEngineFixture(t)
	user := f.tdb.CreateTestUser(t, database.TestUser{Username: "alice", KYCVerified: true})
	other := f.tdb.CreateTestUser(t, database.TestUser{Username: "bob"})

	var ids []uint64
	for _, amount := range []string{"1", "2", "3"} {
		txn, err := f.engine.Create(f.ctx, usecase.CreateTransactionRequest{UserID: user.ID, Type: "deposit", Amount: amount})
		require.NoError(t, err)
		ids = append(ids, txn.ID)
	}
	_, err := f.engine.Create(f.ctx, usecase.CreateTransactionRequest{UserID: other.ID, Type: "deposit", Amount: "9"})
	require.NoError(t, err)

	txns := f.transactionsOf(t, user.ID)
	require.Len(t, txns, 3)
	for i, txn := range txns {
		assert.Equal(t, ids[i], txn.ID)
	}

	_, err = f.engine.ListForUser(f.ctx, 0, persistence.Page{})
	assert.ErrorIs(t, err, errs.ErrInvalidUserID)
}
