package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/api/dto"
)

// multipart framing allowance on top of the document limit
const multipartOverhead = 1 << 20

var errDocumentRequired = errors.New("document file is required")

// KYCHandler handles document submission and review
type KYCHandler struct {
	kyc      usecase.KYCUseCase
	store    coreport.DocumentStore
	maxBytes int64
	logger   coreport.Logger
}

// NewKYCHandler creates a new KYC handler instance. maxBytes bounds the uploaded document.
func NewKYCHandler(kyc usecase.KYCUseCase, store coreport.DocumentStore, maxBytes int64, logger coreport.Logger) *KYCHandler {
	return &KYCHandler{
		kyc:      kyc,
		store:    store,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Submit handles POST /api/kyc. The form carries documentType, documentId and the document file.
func (h *KYCHandler) Submit(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		respondError(c, h.logger, "submit kyc", err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	header, err := c.FormFile("document")
	if err != nil {
		if isBodyTooLarge(err) {
			respondError(c, h.logger, "submit kyc", errs.ErrFileTooLarge)
			return
		}
		respondError(c, h.logger, "submit kyc", errs.NewValidationError("document", errDocumentRequired))
		return
	}
	if header.Size > h.maxBytes {
		respondError(c, h.logger, "submit kyc", errs.ErrFileTooLarge)
		return
	}

	submission := usecase.KYCSubmission{
		UserID:       userID,
		DocumentType: c.PostForm("documentType"),
		DocumentID:   c.PostForm("documentId"),
	}
	if submission.DocumentType == "" || submission.DocumentID == "" {
		respondError(c, h.logger, "submit kyc", errs.ErrInvalidDocument)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, h.logger, "submit kyc", errs.NewValidationError("document", err))
		return
	}
	defer file.Close()

	submission.DocumentPath, err = h.store.Save(c.Request.Context(), file)
	if err != nil {
		respondError(c, h.logger, "submit kyc", err)
		return
	}

	record, err := h.kyc.Submit(c.Request.Context(), submission)
	if err != nil {
		h.discard(c.Request.Context(), submission.DocumentPath)
		respondError(c, h.logger, "submit kyc", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewKYCResponse(record))
}

// discard removes a stored document whose KYC record was never written
func (h *KYCHandler) discard(ctx context.Context, path string) {
	if err := h.store.Delete(context.WithoutCancel(ctx), path); err != nil {
		h.logger.Warn("Failed to remove orphaned document", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
	}
}

// Status handles GET /api/kyc/status
func (h *KYCHandler) Status(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		respondError(c, h.logger, "kyc status", err)
		return
	}

	view, err := h.kyc.StatusFor(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "kyc status", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewKYCStatusResponse(view))
}

// ListPending handles GET /api/admin/kyc/pending
func (h *KYCHandler) ListPending(c *gin.Context) {
	records, err := h.kyc.ListPending(c.Request.Context(), pageFrom(c))
	if err != nil {
		respondError(c, h.logger, "list pending kyc", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewKYCList(records))
}

// Decide handles PUT /api/admin/kyc/:id
func (h *KYCHandler) Decide(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, "decide kyc", err)
		return
	}

	var req dto.KYCDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "decide kyc", bindError(err))
		return
	}
	if req.Status == string(entity.KYCStatusRejected) && strings.TrimSpace(req.RejectionReason) == "" {
		respondError(c, h.logger, "decide kyc", errs.ErrRejectionReason)
		return
	}

	record, err := h.kyc.Decide(c.Request.Context(), usecase.KYCDecision{
		KYCID:           id,
		Status:          req.Status,
		RejectionReason: req.RejectionReason,
		AdminNotes:      req.AdminNotes,
	})
	if err != nil {
		respondError(c, h.logger, "decide kyc", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewKYCResponse(record))
}
