package repository

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentRepository implements ContentRepository interface using GORM
type ContentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewContentRepository creates a new ContentRepository instance
func NewContentRepository(db *gorm.DB, logger coreport.Logger) *ContentRepository {
	return &ContentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func contentToEntity(m *model.Content) *entity.Content {
	return &entity.Content{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Body:        m.Body,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *ContentRepository) translate(err error) error {
	return r.errorClassifier.Translate(err, errs.ErrContentNotFound, errs.ErrDuplicateSlug)
}

// Create inserts a page and sets its ID
func (r *ContentRepository) Create(ctx context.Context, content *entity.Content) error {
	contentModel := model.Content{
		Title:       content.Title,
		Slug:        content.Slug,
		Body:        content.Body,
		IsPublished: content.IsPublished,
		CreatedAt:   content.CreatedAt,
		UpdatedAt:   content.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&contentModel).Error; err != nil {
		return r.translate(err)
	}
	content.ID = contentModel.ID
	return nil
}

// Update writes the editable fields
func (r *ContentRepository) Update(ctx context.Context, content *entity.Content) error {
	result := r.db.WithContext(ctx).Model(&model.Content{}).
		Where("id = ?", content.ID).
		Updates(map[string]any{
			"title":        content.Title,
			"slug":         content.Slug,
			"body":         content.Body,
			"is_published": content.IsPublished,
			"updated_at":   content.UpdatedAt,
		})
	if result.Error != nil {
		return r.translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrContentNotFound
	}
	return nil
}

// GetByID retrieves a page by ID
func (r *ContentRepository) GetByID(ctx context.Context, id uint64) (*entity.Content, error) {
	var contentModel model.Content
	if err := r.db.WithContext(ctx).First(&contentModel, id).Error; err != nil {
		return nil, r.translate(err)
	}
	return contentToEntity(&contentModel), nil
}

// GetBySlug retrieves a page by slug
func (r *ContentRepository) GetBySlug(ctx context.Context, slug string) (*entity.Content, error) {
	var contentModel model.Content
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&contentModel).Error; err != nil {
		return nil, r.translate(err)
	}
	return contentToEntity(&contentModel), nil
}

// List returns pages ordered by ID
func (r *ContentRepository) List(ctx context.Context, page persistence.Page) ([]*entity.Content, error) {
	var models []model.Content
	if err := paginate(r.db.WithContext(ctx), page).Order("id ASC").Find(&models).Error; err != nil {
		return nil, r.translate(err)
	}

	contents := make([]*entity.Content, 0, len(models))
	for i := range models {
		contents = append(contents, contentToEntity(&models[i]))
	}
	return contents, nil
}

// SettingRepository implements SettingRepository interface using GORM
type SettingRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSettingRepository creates a new SettingRepository instance
func NewSettingRepository(db *gorm.DB, logger coreport.Logger) *SettingRepository {
	return &SettingRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func settingToEntity(m *model.Setting) *entity.Setting {
	return &entity.Setting{
		ID:        m.ID,
		Key:       m.Key,
		Value:     m.Value,
		Type:      entity.SettingType(m.Type),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Upsert inserts the setting or replaces the value and type of the existing key
func (r *SettingRepository) Upsert(ctx context.Context, setting *entity.Setting) error {
	settingModel := model.Setting{
		Key:       setting.Key,
		Value:     setting.Value,
		Type:      string(setting.Type),
		CreatedAt: setting.CreatedAt,
		UpdatedAt: setting.UpdatedAt,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "type", "updated_at"}),
	}).Create(&settingModel).Error
	if err != nil {
		return r.errorClassifier.Translate(err, errs.ErrSettingNotFound, errs.ErrConstraintViolation)
	}

	stored, err := r.GetByKey(ctx, setting.Key)
	if err != nil {
		return err
	}
	*setting = *stored
	return nil
}

// GetByKey retrieves a setting
func (r *SettingRepository) GetByKey(ctx context.Context, key string) (*entity.Setting, error) {
	var settingModel model.Setting
	if err := r.db.WithContext(ctx).Where(&model.Setting{Key: key}).First(&settingModel).Error; err != nil {
		return nil, r.errorClassifier.Translate(err, errs.ErrSettingNotFound, errs.ErrConstraintViolation)
	}
	return settingToEntity(&settingModel), nil
}

// List returns all settings ordered by key
func (r *SettingRepository) List(ctx context.Context) ([]*entity.Setting, error) {
	var models []model.Setting
	err := r.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&models).Error
	if err != nil {
		return nil, r.errorClassifier.Translate(err, errs.ErrSettingNotFound, errs.ErrConstraintViolation)
	}

	settings := make([]*entity.Setting, 0, len(models))
	for i := range models {
		settings = append(settings, settingToEntity(&models[i]))
	}
	return settings, nil
}
