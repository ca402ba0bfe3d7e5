package usecase

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
)

// Overview holds the counts shown on the admin dashboard
type Overview struct {
	Users               int64
	PendingKYC          int64
	PendingTransactions int64
}

// AdminUseCase covers back-office reads
type AdminUseCase interface {
	ListUsers(ctx context.Context, page persistence.Page) ([]*entity.User, error)
	Overview(ctx context.Context) (*Overview, error)
}

// ContentRequest holds the editable fields of a page
type ContentRequest struct {
	Title       string
	Slug        string
	Body        string
	IsPublished bool
}

// ContentUseCase manages admin pages
type ContentUseCase interface {
	Create(ctx context.Context, req ContentRequest) (*entity.Content, error)
	Update(ctx context.Context, id uint64, req ContentRequest) (*entity.Content, error)
	ListAll(ctx context.Context, page persistence.Page) ([]*entity.Content, error)

	// GetPublishedBySlug hides unpublished pages behind NotFound
	GetPublishedBySlug(ctx context.Context, slug string) (*entity.Content, error)
}

// SettingUseCase manages typed settings
type SettingUseCase interface {
	Upsert(ctx context.Context, key, value, settingType string) (*entity.Setting, error)
	Get(ctx context.Context, key string) (*entity.Setting, error)
	List(ctx context.Context) ([]*entity.Setting, error)
}
