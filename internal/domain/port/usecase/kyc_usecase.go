package usecase

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
)

// KYCSubmission is a user's identity document
type KYCSubmission struct {
	UserID       uint64
	DocumentType string
	DocumentID   string
	DocumentPath string
}

// KYCDecision is an admin's verdict on a submission
type KYCDecision struct {
	KYCID           uint64
	Status          string
	RejectionReason string
	AdminNotes      string
}

// KYCStatusView is what a user sees about their own verification
type KYCStatusView struct {
	Status          entity.KYCStatus
	IsVerified      bool
	RejectionReason *string
	Record          *entity.KYCRecord
}

// KYCUseCase defines the KYC gate
type KYCUseCase interface {
	// Submit records a pending submission. A user may submit only once.
	Submit(ctx context.Context, req KYCSubmission) (*entity.KYCRecord, error)

	// Decide approves or rejects a pending submission
	Decide(ctx context.Context, req KYCDecision) (*entity.KYCRecord, error)

	// StatusFor reports the user's KYC status, "none" when nothing was submitted
	StatusFor(ctx context.Context, userID uint64) (*KYCStatusView, error)

	// ListPending returns submissions awaiting a decision
	ListPending(ctx context.Context, page persistence.Page) ([]*entity.KYCRecord, error)
}
