package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
)

// ContentUseCase manages the pages edited from the admin surface
type ContentUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewContentUseCase creates a new ContentUseCase
func NewContentUseCase(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *ContentUseCase {
	return &ContentUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"component": "content"}),
	}
}

func (c *ContentUseCase) Create(ctx context.Context, req usecase.ContentRequest) (*entity.Content, error) {
	content, err := entity.NewContent(req.Title, req.Slug, req.Body, req.IsPublished, c.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := c.uow.GetContentRepository(ctx).Create(ctx, content); err != nil {
		return nil, slugConflict(content.Slug, err)
	}

	c.logger.Info("Content created", map[string]any{
		"content_id": content.ID,
		"slug":       content.Slug,
	})
	return content, nil
}

func (c *ContentUseCase) Update(ctx context.Context, id uint64, req usecase.ContentRequest) (*entity.Content, error) {
	if id == 0 {
		return nil, errs.ErrInvalidID
	}

	var content *entity.Content
	err := c.uow.Do(ctx, func(ctx context.Context) error {
		repo := c.uow.GetContentRepository(ctx)

		var err error
		if content, err = repo.GetByID(ctx, id); err != nil {
			return err
		}
		if err := content.Apply(req.Title, req.Slug, req.Body, req.IsPublished, c.timeProvider); err != nil {
			return err
		}
		return slugConflict(content.Slug, repo.Update(ctx, content))
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("Content updated", map[string]any{
		"content_id": content.ID,
		"published":  content.IsPublished,
	})
	return content, nil
}

func (c *ContentUseCase) ListAll(ctx context.Context, page persistence.Page) ([]*entity.Content, error) {
	return c.uow.GetContentRepository(ctx).List(ctx, page.Normalize())
}

func (c *ContentUseCase) GetPublishedBySlug(ctx context.Context, slug string) (*entity.Content, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, errs.ErrContentNotFound
	}

	content, err := c.uow.GetContentRepository(ctx).GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !content.IsPublished {
		return nil, errs.ErrContentNotFound
	}
	return content, nil
}

func slugConflict(slug string, err error) error {
	if err != nil && errors.Is(err, errs.ErrDuplicateSlug) {
		return errs.NewConflictError("content", slug, errs.ErrDuplicateSlug)
	}
	return err
}
