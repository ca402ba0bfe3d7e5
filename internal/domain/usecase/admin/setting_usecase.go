package admin

import (
	"context"
	"strings"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
)

// SettingUseCase manages typed platform settings
type SettingUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSettingUseCase creates a new SettingUseCase
func NewSettingUseCase(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *SettingUseCase {
	return &SettingUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"component": "settings"}),
	}
}

// Upsert validates the value against its type and stores it under key
func (s *SettingUseCase) Upsert(ctx context.Context, key, value, settingType string) (*entity.Setting, error) {
	setting, err := entity.NewSetting(key, value, settingType, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetSettingRepository(ctx).Upsert(ctx, setting); err != nil {
		return nil, err
	}

	s.logger.Info("Setting saved", map[string]any{
		"key":  setting.Key,
		"type": string(setting.Type),
	})
	return setting, nil
}

func (s *SettingUseCase) Get(ctx context.Context, key string) (*entity.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errs.ErrSettingNotFound
	}
	return s.uow.GetSettingRepository(ctx).GetByKey(ctx, key)
}

func (s *SettingUseCase) List(ctx context.Context) ([]*entity.Setting, error) {
	return s.uow.GetSettingRepository(ctx).List(ctx)
}
