package service

import (
	"context"
	"strings"

	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/pkg/apperror"
)

// SettingsService handles settings-related business logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// Get retrieves a setting by key
func (s *SettingsService) Get(ctx context.Context, key string) (*entity.Setting, error) {
	if entity.IsProtected(key) {
		return nil, apperror.NewNotFoundError("Setting")
	}

	setting, err := s.settingsRepo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, apperror.NewNotFoundError("Setting")
	}
	return setting, nil
}

// Set stores a setting
func (s *SettingsService) Set(ctx context.Context, key, value string) (*entity.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, apperror.NewBadRequestError("Setting key is required")
	}
	if entity.IsProtected(key) {
		return nil, apperror.NewBadRequestError("Setting " + key + " cannot be changed here")
	}
	if key == entity.SettingLanguage {
		return s.setLanguage(ctx, value)
	}

	if err := s.settingsRepo.Set(ctx, key, value); err != nil {
		return nil, err
	}
	return &entity.Setting{Key: key, Value: value}, nil
}

// Language returns the preferred language, DefaultLanguage when unset
func (s *SettingsService) Language(ctx context.Context) (string, error) {
	setting, err := s.settingsRepo.Get(ctx, entity.SettingLanguage)
	if err != nil {
		return "", err
	}
	if setting == nil || setting.Value == "" {
		return entity.DefaultLanguage, nil
	}
	return setting.Value, nil
}

// SetLanguage stores the preferred language
func (s *SettingsService) SetLanguage(ctx context.Context, language string) (string, error) {
	setting, err := s.setLanguage(ctx, language)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *SettingsService) setLanguage(ctx context.Context, language string) (*entity.Setting, error) {
	language = strings.TrimSpace(language)
	if language == "" {
		return nil, apperror.NewBadRequestError("Language is required")
	}
	if err := s.settingsRepo.Set(ctx, entity.SettingLanguage, language); err != nil {
		return nil, err
	}
	return &entity.Setting{Key: entity.SettingLanguage, Value: language}, nil
}
