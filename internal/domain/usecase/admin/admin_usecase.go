package admin

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
)

// AdminUseCase serves the back-office user list and dashboard counts
type AdminUseCase struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

// NewAdminUseCase creates a new AdminUseCase
func NewAdminUseCase(uow persistence.UnitOfWork, logger coreport.Logger) *AdminUseCase {
	return &AdminUseCase{
		uow:    uow,
		logger: logger.With(map[string]any{"component": "admin"}),
	}
}

func (a *AdminUseCase) ListUsers(ctx context.Context, page persistence.Page) ([]*entity.User, error) {
	return a.uow.GetUserRepository(ctx).List(ctx, page.Normalize())
}

// Overview counts users and the pending review queues in one read transaction
func (a *AdminUseCase) Overview(ctx context.Context) (*usecase.Overview, error) {
	var overview usecase.Overview
	err := a.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		if overview.Users, err = a.uow.GetUserRepository(ctx).Count(ctx); err != nil {
			return err
		}
		if overview.PendingKYC, err = a.uow.GetKYCRepository(ctx).CountByStatus(ctx, entity.KYCStatusPending); err != nil {
			return err
		}
		overview.PendingTransactions, err = a.uow.GetTransactionRepository(ctx).CountByStatus(ctx, entity.StatusPending)
		return err
	})
	if err != nil {
		a.logger.Error("Failed to build overview", map[string]any{"error": err.Error()})
		return nil, err
	}
	return &overview, nil
}
