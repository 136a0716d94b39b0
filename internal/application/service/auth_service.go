package service

import (
	"context"
	"time"

	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/pkg/apperror"
	"github.com/sangkips/cafeteria-pos/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// MinPINLength is the shortest manager PIN accepted on change
const MinPINLength = 4

// AuthService handles manager PIN authentication
type AuthService struct {
	settingsRepo repository.SettingsRepository
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(settingsRepo repository.SettingsRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		settingsRepo: settingsRepo,
		jwtManager:   jwtManager,
	}
}

// LoginOutput represents the login output
type LoginOutput struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Login exchanges the manager PIN for a session token
func (s *AuthService) Login(ctx context.Context, pin string, now time.Time) (*LoginOutput, error) {
	if err := s.checkPIN(ctx, pin); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.jwtManager.GenerateToken(utils.RoleManager, now)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{AccessToken: token, ExpiresAt: expiresAt}, nil
}

// ChangePIN replaces the manager PIN after verifying the current one
func (s *AuthService) ChangePIN(ctx context.Context, currentPIN, newPIN string) error {
	if err := s.checkPIN(ctx, currentPIN); err != nil {
		return err
	}
	if len(newPIN) < MinPINLength {
		return apperror.NewBadRequestError("PIN must be at least 4 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPIN), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.settingsRepo.Set(ctx, entity.SettingManagerPINHash, string(hash))
}

func (s *AuthService) checkPIN(ctx context.Context, pin string) error {
	stored, err := s.settingsRepo.Get(ctx, entity.SettingManagerPINHash)
	if err != nil {
		return err
	}
	if stored == nil || pin == "" {
		return apperror.ErrInvalidPIN
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Value), []byte(pin)); err != nil {
		return apperror.ErrInvalidPIN
	}
	return nil
}
