package database

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/logger"
	timeprovider "github.com/simplecyberhub/txc/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// TestDB bundles a migrated in-memory database with its unit of work
type TestDB struct {
	Manager      *Manager
	DB           *gorm.DB
	UoW          persistence.UnitOfWork
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDB opens a fresh, migrated sqlite database private to the test.
// It is closed automatically when the test finishes.
func NewTestDB(t testing.TB) *TestDB {
	t.Helper()
	return NewTestDBWithClock(t, timeprovider.NewRealTimeProvider())
}

// NewTestDBWithClock is NewTestDB with a caller supplied clock
func NewTestDBWithClock(t testing.TB, clock coreport.TimeProvider) *TestDB {
	t.Helper()

	log := logger.NewNoopLogger()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	config := DefaultConfig()
	config.Driver = DriverSQLite
	config.Database = fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_busy_timeout=5000", name, testDBSeq.Add(1))
	config.LogLevel = "silent"
	config.RetryAttempts = 1
	config.QueryTimeout = 5 * time.Second

	manager := NewManager(config, log, clock)
	db, err := manager.Connect(context.Background())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDB{
		Manager:      manager,
		DB:           db,
		UoW:          manager.CreateUnitOfWork(),
		Logger:       log,
		TimeProvider: clock,
	}
}

// NewPostgresTestDB connects to the Postgres database named by the
// TXC_TEST_DB_* variables and skips the test when TXC_TEST_DB_HOST is unset.
// Unlike sqlite, the pool allows concurrent writers, so row-level contention is real.
func NewPostgresTestDB(t testing.TB) *TestDB {
	t.Helper()

	host := os.Getenv("TXC_TEST_DB_HOST")
	if host == "" {
		t.Skip("TXC_TEST_DB_HOST not set")
	}

	config := DefaultConfig()
	config.Host = host
	config.Username = os.Getenv("TXC_TEST_DB_USER")
	config.Password = os.Getenv("TXC_TEST_DB_PASSWORD")
	config.Database = os.Getenv("TXC_TEST_DB_NAME")
	if port, err := strconv.Atoi(os.Getenv("TXC_TEST_DB_PORT")); err == nil {
		config.Port = port
	}
	config.LogLevel = "silent"
	config.RetryAttempts = 1

	log := logger.NewNoopLogger()
	clock := timeprovider.NewRealTimeProvider()
	manager := NewManager(config, log, clock)
	db, err := manager.Connect(context.Background())
	if err != nil {
		t.Fatalf("Failed to open postgres test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate postgres test database: %v", err)
	}

	return &TestDB{
		Manager:      manager,
		DB:           db,
		UoW:          manager.CreateUnitOfWork(),
		Logger:       log,
		TimeProvider: clock,
	}
}

// TestUser describes a user created by CreateTestUser
type TestUser struct {
	Username      string
	BalanceCents  int64
	KYCVerified   bool
	EmailVerified bool
	Admin         bool
}

// CreateTestUser inserts a user with a funded wallet, bypassing registration
func (d *TestDB) CreateTestUser(t testing.TB, want TestUser) *entity.User {
	t.Helper()
	ctx := context.Background()

	user, err := entity.NewUser(want.Username, want.Username+"@example.com", "not-a-real-hash", d.TimeProvider)
	if err != nil {
		t.Fatalf("Failed to build test user: %v", err)
	}
	user.IsVerified = want.KYCVerified
	user.IsEmailVerified = want.EmailVerified
	user.IsAdmin = want.Admin

	err = d.UoW.Do(ctx, func(ctx context.Context) error {
		if err := d.UoW.GetUserRepository(ctx).Create(ctx, user); err != nil {
			return err
		}
		wallet, err := entity.NewWallet(user.ID, d.TimeProvider)
		if err != nil {
			return err
		}
		if err := d.UoW.GetWalletRepository(ctx).Create(ctx, wallet); err != nil {
			return err
		}
		if want.BalanceCents > 0 {
			_, err = d.UoW.GetWalletRepository(ctx).AdjustBalance(ctx, user.ID, want.BalanceCents)
		}
		return err
	})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// BalanceOf returns the wallet balance of a user in cents
func (d *TestDB) BalanceOf(t testing.TB, userID uint64) int64 {
	t.Helper()
	wallet, err := d.UoW.GetWalletRepository(context.Background()).GetByUserID(context.Background(), userID)
	if err != nil {
		t.Fatalf("Failed to read wallet: %v", err)
	}
	return wallet.Balance()
}
