package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domainErr "github.com/simplecyberhub/txc/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper_MapError(t *testing.T) {
	m := NewErrorMapper()

	testCases := []struct {
		name string
		err  error
		kind error
	}{
		{"RecordNotFound", gorm.ErrRecordNotFound, domainErr.ErrNotFound},
		{"DomainErrorPassesThrough", domainErr.ErrKYCAlreadyDecided, domainErr.ErrKYCAlreadyDecided},
		{"Deadline", context.DeadlineExceeded, domainErr.ErrDatabaseConnection},
		{"Deadlock", errors.New("ERROR: deadlock detected"), domainErr.ErrConflict},
		{"Unique", errors.New("duplicate key value violates unique constraint"), domainErr.ErrConstraintViolation},
		{"Refused", errors.New("dial tcp: connection refused"), domainErr.ErrDatabaseConnection},
		{"Unknown", errors.New("something odd"), domainErr.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, m.MapError(tc.err, "test"), tc.kind)
		})
	}

	assert.NoError(t, m.MapError(nil, "test"))
}

func TestErrorMapper_MapEntityNotFoundError(t *testing.T) {
	m := NewErrorMapper()
	wrapped := fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound)

	assert.ErrorIs(t, m.MapEntityNotFoundError(wrapped, EntityTypeUser), domainErr.ErrUserNotFound)
	assert.ErrorIs(t, m.MapEntityNotFoundError(wrapped, EntityTypeWallet), domainErr.ErrWalletNotFound)
	assert.ErrorIs(t, m.MapEntityNotFoundError(wrapped, EntityTypeKYC), domainErr.ErrKYCNotFound)
	assert.ErrorIs(t, m.MapEntityNotFoundError(wrapped, EntityTypeTransaction), domainErr.ErrTransactionNotFound)
	assert.ErrorIs(t, m.MapEntityNotFoundError(wrapped, EntityTypeSetting), domainErr.ErrSettingNotFound)
	assert.ErrorIs(t, m.MapEntityNotFoundError(wrapped, EntityType("other")), domainErr.ErrNotFound)
}
