package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"research-admin/internal/dto"
	"research-admin/internal/repositories"
	"research-admin/pkg/config"
	apperrors "research-admin/pkg/errors"
	"research-admin/pkg/service"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
	GetProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error)
}

type AuthService struct {
	userRepository repositories.UserRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	jwtService     service.JWTService
	authConfig     config.AuthConfig
	logger         *zap.Logger
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	authConfig config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepository: userRepository,
		cacheRepo:      cacheRepo,
		jwtService:     jwtService,
		authConfig:     authConfig,
		logger:         logger,
	}
}

func loginAttemptsKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", strings.ToLower(email))
}

// registerFailedAttempt bumps the per-email counter and arms the lockout
// window on the first failure. Returns ErrAccountLocked once the counter
// reaches the configured limit.
func (s *AuthService) registerFailedAttempt(ctx context.Context, email string) error {
	key := loginAttemptsKey(email)

	attempts, err := s.cacheRepo.Incr(ctx, key)
	if err != nil {
		s.logger.Warn("login attempt counter unavailable", zap.Error(err))
		return apperrors.ErrInvalidCredentials
	}
	if attempts == 1 {
		if _, err := s.cacheRepo.Expire(ctx, key, s.authConfig.LockoutDuration); err != nil {
			s.logger.Warn("failed to set lockout TTL", zap.Error(err))
		}
	}
	if attempts >= int64(s.authConfig.MaxLoginAttempts) {
		return apperrors.ErrAccountLocked
	}
	return apperrors.ErrInvalidCredentials
}

func (s *AuthService) isLockedOut(ctx context.Context, email string) bool {
	val, err := s.cacheRepo.Get(ctx, loginAttemptsKey(email))
	if err != nil {
		return false
	}
	attempts, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false
	}
	return attempts >= int64(s.authConfig.MaxLoginAttempts)
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	if s.isLockedOut(ctx, payload.Email) {
		return nil, apperrors.ErrAccountLocked
	}

	user, err := s.userRepository.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Burn an attempt anyway so probing for valid emails costs the same.
			return nil, s.registerFailedAttempt(ctx, payload.Email)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		s.logger.Info("failed login", zap.String("email", payload.Email))
		return nil, s.registerFailedAttempt(ctx, payload.Email)
	}

	if err := s.cacheRepo.Del(ctx, loginAttemptsKey(payload.Email)); err != nil {
		s.logger.Warn("failed to reset login attempt counter", zap.Error(err))
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	user, err := s.userRepository.FindUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrForbidden
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error) {
	user, err := s.userRepository.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileDTO{ID: user.ID, FullName: user.FullName, Email: user.Email}, nil
}
