package portfolio

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
)

// PortfolioUseCase reads and appends holdings
type PortfolioUseCase struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

// NewPortfolioUseCase creates a new PortfolioUseCase
func NewPortfolioUseCase(uow persistence.UnitOfWork, logger coreport.Logger) *PortfolioUseCase {
	return &PortfolioUseCase{
		uow:    uow,
		logger: logger.With(map[string]any{"component": "portfolio"}),
	}
}

// ListForUser returns every holding row of the user, oldest first
func (p *PortfolioUseCase) ListForUser(ctx context.Context, userID uint64) ([]*entity.PortfolioEntry, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return p.uow.GetPortfolioRepository(ctx).ListByUser(ctx, userID)
}

// RecordBuy appends a holding. Rows for the same symbol are kept separate.
func (p *PortfolioUseCase) RecordBuy(ctx context.Context, entry *entity.PortfolioEntry) error {
	if err := p.uow.GetPortfolioRepository(ctx).Create(ctx, entry); err != nil {
		p.logger.Error("Failed to record holding", map[string]any{
			"user_id": entry.UserID,
			"symbol":  entry.AssetSymbol,
			"error":   err.Error(),
		})
		return err
	}
	return nil
}
