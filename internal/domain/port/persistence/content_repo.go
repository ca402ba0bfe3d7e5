package persistence

import (
	"context"

	"github.com/simplecyberhub/txc/internal/domain/entity"
)

// ContentRepository stores admin-managed pages
type ContentRepository interface {
	// Create inserts a page
	//
	// Possible errors:
	// - ErrDuplicateSlug: If the slug is in use
	Create(ctx context.Context, content *entity.Content) error

	// Update writes the editable fields
	//
	// Possible errors:
	// - ErrContentNotFound: If the page doesn't exist
	// - ErrDuplicateSlug: If the new slug is in use
	Update(ctx context.Context, content *entity.Content) error

	GetByID(ctx context.Context, id uint64) (*entity.Content, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Content, error)
	List(ctx context.Context, page Page) ([]*entity.Content, error)
}

// SettingRepository stores typed key/value settings
type SettingRepository interface {
	// Upsert inserts or replaces the setting with the same key
	Upsert(ctx context.Context, setting *entity.Setting) error

	// GetByKey retrieves a setting
	//
	// Possible errors:
	// - ErrSettingNotFound: If the key is unknown
	GetByKey(ctx context.Context, key string) (*entity.Setting, error)

	List(ctx context.Context) ([]*entity.Setting, error)
}
