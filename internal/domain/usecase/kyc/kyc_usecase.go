package kyc

import (
	"context"
	"errors"
	"fmt"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
)

// KYCUseCase implements the identity verification gate
type KYCUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
}

// NewKYCUseCase creates a new KYCUseCase
func NewKYCUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
) *KYCUseCase {
	if metrics == nil {
		metrics = coreport.NoopMetrics{}
	}
	return &KYCUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"component": "kyc"}),
		metrics:      metrics,
	}
}

// Submit records a pending submission. Users get exactly one record, even after a rejection.
func (k *KYCUseCase) Submit(ctx context.Context, req usecase.KYCSubmission) (*entity.KYCRecord, error) {
	record, err := entity.NewKYCRecord(req.UserID, req.DocumentType, req.DocumentID, req.DocumentPath, k.timeProvider)
	if err != nil {
		return nil, err
	}

	err = k.uow.Do(ctx, func(ctx context.Context) error {
		if _, err := k.uow.GetUserRepository(ctx).GetByID(ctx, req.UserID); err != nil {
			return err
		}

		kycRepo := k.uow.GetKYCRepository(ctx)
		existing, err := kycRepo.GetByUserID(ctx, req.UserID)
		switch {
		case err == nil:
			return errs.NewConflictError("kyc", fmt.Sprintf("user %d (%s)", req.UserID, existing.Status), errs.ErrDuplicateKYC)
		case !errors.Is(err, errs.ErrKYCNotFound):
			return err
		}

		// the unique index on user_id catches a concurrent submit that passed the check above
		if err := kycRepo.Create(ctx, record); err != nil {
			if errors.Is(err, errs.ErrConflict) {
				return errs.NewConflictError("kyc", fmt.Sprintf("user %d", req.UserID), errs.ErrDuplicateKYC)
			}
			return err
		}
		return nil
	})
	if err != nil {
		k.logFailure("KYC submission rejected", err, map[string]any{"user_id": req.UserID})
		return nil, err
	}

	k.metrics.KYCSubmitted()
	k.logger.Info("KYC submitted", map[string]any{
		"user_id":       record.UserID,
		"kyc_id":        record.ID,
		"document_type": record.DocumentType,
	})
	return record, nil
}

// Decide approves or rejects a pending submission. Approval marks the owner
// verified in the same unit of work.
func (k *KYCUseCase) Decide(ctx context.Context, req usecase.KYCDecision) (*entity.KYCRecord, error) {
	if req.KYCID == 0 {
		return nil, errs.ErrInvalidID
	}
	decision, err := entity.ParseKYCDecision(req.Status)
	if err != nil {
		return nil, err
	}

	var record *entity.KYCRecord
	err = k.uow.Do(ctx, func(ctx context.Context) error {
		kycRepo := k.uow.GetKYCRepository(ctx)

		record, err = kycRepo.GetByID(ctx, req.KYCID)
		if err != nil {
			return err
		}
		if err := record.Decide(decision, req.RejectionReason, req.AdminNotes, k.timeProvider); err != nil {
			return err
		}
		if err := kycRepo.SaveDecision(ctx, record); err != nil {
			return err
		}

		if decision == entity.KYCStatusApproved {
			return k.uow.GetUserRepository(ctx).MarkVerified(ctx, record.UserID)
		}
		return nil
	})
	if err != nil {
		k.logFailure("KYC decision failed", err, map[string]any{
			"kyc_id":   req.KYCID,
			"decision": req.Status,
		})
		return nil, err
	}

	k.metrics.KYCDecided(string(decision))
	k.logger.Info("KYC decided", map[string]any{
		"kyc_id":   record.ID,
		"user_id":  record.UserID,
		"decision": record.Status,
	})
	return record, nil
}

// StatusFor reports the user's verification state
func (k *KYCUseCase) StatusFor(ctx context.Context, userID uint64) (*usecase.KYCStatusView, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := k.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &usecase.KYCStatusView{
		Status:     entity.KYCStatusNone,
		IsVerified: user.IsVerified,
	}

	record, err := k.uow.GetKYCRepository(ctx).GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrKYCNotFound) {
			return view, nil
		}
		return nil, err
	}

	view.Status = record.Status
	view.RejectionReason = record.RejectionReason
	view.Record = record
	return view, nil
}

// ListPending returns submissions awaiting a decision, oldest first
func (k *KYCUseCase) ListPending(ctx context.Context, page persistence.Page) ([]*entity.KYCRecord, error) {
	return k.uow.GetKYCRepository(ctx).ListByStatus(ctx, entity.KYCStatusPending, page.Normalize())
}

func (k *KYCUseCase) logFailure(msg string, err error, fields map[string]any) {
	for key, v := range errs.LogFields(err) {
		fields[key] = v
	}
	if errs.IsConflictError(err) || errs.IsNotFoundError(err) || errs.IsValidationError(err) {
		k.logger.Warn(msg, fields)
		return
	}
	k.logger.Error(msg, fields)
}
