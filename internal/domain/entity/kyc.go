package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
)

// KYCStatus is the verification state of a user's KYC submission
type KYCStatus string

// KYC statuses. KYCStatusNone is never stored; it is reported when no record exists.
const (
	KYCStatusNone     KYCStatus = "none"
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusApproved KYCStatus = "approved"
	KYCStatusRejected KYCStatus = "rejected"
)

// KYCRecord is a user's identity document submission
type KYCRecord struct {
	ID              uint64
	UserID          uint64
	DocumentType    string
	DocumentID      string
	DocumentPath    string
	Status          KYCStatus
	RejectionReason *string
	AdminNotes      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewKYCRecord creates a pending submission
func NewKYCRecord(userID uint64, documentType, documentID, documentPath string, timeProvider coreport.TimeProvider) (*KYCRecord, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	documentType = strings.TrimSpace(documentType)
	documentID = strings.TrimSpace(documentID)
	if documentType == "" || documentID == "" {
		return nil, errs.ErrInvalidDocument
	}

	now := timeProvider.Now()
	return &KYCRecord{
		UserID:       userID,
		DocumentType: documentType,
		DocumentID:   documentID,
		DocumentPath: documentPath,
		Status:       KYCStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ParseKYCDecision accepts only terminal statuses
func ParseKYCDecision(decision string) (KYCStatus, error) {
	switch KYCStatus(decision) {
	case KYCStatusApproved, KYCStatusRejected:
		return KYCStatus(decision), nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidDecision, decision)
	}
}

// IsTerminal reports whether the record has been decided
func (k *KYCRecord) IsTerminal() bool {
	return k.Status == KYCStatusApproved || k.Status == KYCStatusRejected
}

// Decide moves a pending record to approved or rejected. Decisions are final.
func (k *KYCRecord) Decide(decision KYCStatus, rejectionReason, adminNotes string, timeProvider coreport.TimeProvider) error {
	if decision != KYCStatusApproved && decision != KYCStatusRejected {
		return fmt.Errorf("%w: %q", errs.ErrInvalidDecision, decision)
	}
	if k.IsTerminal() {
		return errs.ErrKYCAlreadyDecided
	}

	k.Status = decision
	if decision == KYCStatusRejected {
		k.RejectionReason = optionalString(rejectionReason)
	}
	k.AdminNotes = optionalString(adminNotes)
	k.UpdatedAt = timeProvider.Now()
	return nil
}
