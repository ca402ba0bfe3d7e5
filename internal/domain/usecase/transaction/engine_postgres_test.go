//go:build postgres

package transaction

import (
	"fmt"
	"testing"
	"time"

	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/database"
)

// Run with: go test -tags postgres ./internal/domain/usecase/transaction/
// against a disposable database named by TXC_TEST_DB_HOST, _PORT, _USER, _PASSWORD and _NAME.

func uniqueUsername(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func TestPostgres_ConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	f := newEngineFixtureOn(database.NewPostgresTestDB(t))
	for i := 0; i < 10; i++ {
		checkConcurrentWithdrawalsNeverOverdraw(t, f, uniqueUsername("overdraw"))
	}
}

func TestPostgres_ConcurrentDecidersOnOneTransaction(t *testing.T) {
	f := newEngineFixtureOn(database.NewPostgresTestDB(t))
	for i := 0; i < 10; i++ {
		checkOneDeciderWins(t, f, uniqueUsername("decider"))
	}
}
