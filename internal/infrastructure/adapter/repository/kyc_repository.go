package repository

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// KYCRepository implements KYCRepository interface using GORM
type KYCRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewKYCRepository creates a new KYCRepository instance
func NewKYCRepository(db *gorm.DB, logger coreport.Logger) *KYCRepository {
	return &KYCRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func kycToEntity(m *model.KYC) *entity.KYCRecord {
	return &entity.KYCRecord{
		ID:              m.ID,
		UserID:          m.UserID,
		DocumentType:    m.DocumentType,
		DocumentID:      m.DocumentID,
		DocumentPath:    m.DocumentPath,
		Status:          entity.KYCStatus(m.Status),
		RejectionReason: m.RejectionReason,
		AdminNotes:      m.AdminNotes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *KYCRepository) translate(err error) error {
	return r.errorClassifier.Translate(err, errs.ErrKYCNotFound, errs.ErrDuplicateKYC)
}

// Create inserts a pending record. The unique index on user_id turns a second submission into a conflict.
func (r *KYCRepository) Create(ctx context.Context, record *entity.KYCRecord) error {
	kycModel := model.KYC{
		UserID:       record.UserID,
		DocumentType: record.DocumentType,
		DocumentID:   record.DocumentID,
		DocumentPath: record.DocumentPath,
		Status:       string(record.Status),
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&kycModel).Error; err != nil {
		mapped := r.translate(err)
		if !errs.IsConflictError(mapped) {
			r.logger.Error("Failed to create kyc record", map[string]any{
				"user_id": record.UserID,
				"error":   err.Error(),
			})
		}
		return mapped
	}

	record.ID = kycModel.ID
	return nil
}

// GetByID retrieves a record by ID
func (r *KYCRepository) GetByID(ctx context.Context, id uint64) (*entity.KYCRecord, error) {
	var kycModel model.KYC
	if err := r.db.WithContext(ctx).First(&kycModel, id).Error; err != nil {
		return nil, r.translate(err)
	}
	return kycToEntity(&kycModel), nil
}

// GetByUserID retrieves the record of a user
func (r *KYCRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.KYCRecord, error) {
	var kycModel model.KYC
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&kycModel).Error; err != nil {
		return nil, r.translate(err)
	}
	return kycToEntity(&kycModel), nil
}

// ListByStatus returns records with the given status, oldest first
func (r *KYCRepository) ListByStatus(ctx context.Context, status entity.KYCStatus, page persistence.Page) ([]*entity.KYCRecord, error) {
	var models []model.KYC
	err := paginate(r.db.WithContext(ctx), page).
		Where("status = ?", string(status)).
		Order("created_at ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, r.translate(err)
	}

	records := make([]*entity.KYCRecord, 0, len(models))
	for i := range models {
		records = append(records, kycToEntity(&models[i]))
	}
	return records, nil
}

// SaveDecision writes the decision only while the stored record is pending
func (r *KYCRepository) SaveDecision(ctx context.Context, record *entity.KYCRecord) error {
	result := r.db.WithContext(ctx).Model(&model.KYC{}).
		Where("id = ? AND status = ?", record.ID, string(entity.KYCStatusPending)).
		Updates(map[string]any{
			"status":           string(record.Status),
			"rejection_reason": record.RejectionReason,
			"admin_notes":      record.AdminNotes,
			"updated_at":       record.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("Failed to save kyc decision", map[string]any{
			"kyc_id": record.ID,
			"error":  result.Error.Error(),
		})
		return r.translate(result.Error)
	}

	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, record.ID); err != nil {
			return err
		}
		return errs.ErrKYCAlreadyDecided
	}
	return nil
}

// CountByStatus returns the number of records with the given status
func (r *KYCRepository) CountByStatus(ctx context.Context, status entity.KYCStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.KYC{}).Where("status = ?", string(status)).Count(&count).Error
	if err != nil {
		return 0, r.translate(err)
	}
	return count, nil
}
