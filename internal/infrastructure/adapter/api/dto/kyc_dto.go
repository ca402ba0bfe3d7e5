package dto

import (
	"time"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
)

// KYCDecisionRequest represents PUT /api/admin/kyc/:id
type KYCDecisionRequest struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejectionReason"`
	AdminNotes      string `json:"adminNotes"`
}

// KYCResponse represents a submission
type KYCResponse struct {
	ID              uint64    `json:"id"`
	UserID          uint64    `json:"userId"`
	DocumentType    string    `json:"documentType"`
	DocumentID      string    `json:"documentId"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
	AdminNotes      *string   `json:"adminNotes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewKYCResponse maps a record. The stored document path stays internal.
func NewKYCResponse(r *entity.KYCRecord) KYCResponse {
	return KYCResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		DocumentType:    r.DocumentType,
		DocumentID:      r.DocumentID,
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
		AdminNotes:      r.AdminNotes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// NewKYCList maps records
func NewKYCList(records []*entity.KYCRecord) []KYCResponse {
	out := make([]KYCResponse, 0, len(records))
	for _, r := range records {
		out = append(out, NewKYCResponse(r))
	}
	return out
}

// KYCStatusResponse represents GET /api/kyc/status
type KYCStatusResponse struct {
	Status          string       `json:"status"`
	IsVerified      bool         `json:"isVerified"`
	RejectionReason *string      `json:"rejectionReason,omitempty"`
	Record          *KYCResponse `json:"record,omitempty"`
}

// NewKYCStatusResponse maps the status view
func NewKYCStatusResponse(v *usecase.KYCStatusView) KYCStatusResponse {
	resp := KYCStatusResponse{
		Status:          string(v.Status),
		IsVerified:      v.IsVerified,
		RejectionReason: v.RejectionReason,
	}
	if v.Record != nil {
		record := NewKYCResponse(v.Record)
		resp.Record = &record
	}
	return resp
}
