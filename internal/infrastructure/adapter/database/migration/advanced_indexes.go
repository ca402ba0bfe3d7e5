package migration

import (
	"context"

	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

func (m *AdvancedIndexManager) isPostgres() bool {
	return m.db.Dialector.Name() == "postgres"
}

// CreateAdvancedIndexes creates partial and BRIN indexes. It is a no-op outside PostgreSQL.
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	if !m.isPostgres() {
		m.logger.Debug("Skipping advanced indexes for non-postgres dialect", map[string]any{
			"dialect": m.db.Dialector.Name(),
		})
		return nil
	}

	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	indexes := []struct {
		name string
		sql  string
	}{
		{
			// Admin queue of withdrawals awaiting a decision
			name: "idx_transactions_pending",
			sql: `CREATE INDEX IF NOT EXISTS idx_transactions_pending
				ON transactions (created_at, id)
				WHERE status = 'pending'`,
		},
		{
			name: "idx_kyc_pending",
			sql: `CREATE INDEX IF NOT EXISTS idx_kyc_pending
				ON kyc (created_at, id)
				WHERE status = 'pending'`,
		},
		{
			name: "idx_transactions_created_at_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
				ON transactions USING BRIN (created_at)
				WITH (pages_per_range = 32)`,
		},
		{
			name: "idx_users_verification_token",
			sql: `CREATE INDEX IF NOT EXISTS idx_users_verification_token_partial
				ON users (verification_token)
				WHERE verification_token IS NOT NULL`,
		},
	}

	for _, idx := range indexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create advanced index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage tweaks. Failures are logged, not returned.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	if !m.isPostgres() {
		return
	}

	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Wallet rows are updated on every ledger change; leave room for HOT updates
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE wallets SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for wallets table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
