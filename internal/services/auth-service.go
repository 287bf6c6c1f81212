package services

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/config"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"
	"maintenance-system/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterDTO) (*dto.AuthResponseDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, error)
	Me(ctx context.Context, userID uint64) (*entities.User, error)
	ChangePassword(ctx context.Context, userID uint64, payload dto.ChangePasswordDTO) error
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	jwtService service.JWTService
	authConfig config.AuthConfig
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	authConfig config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		jwtService: jwtService,
		authConfig: authConfig,
		logger:     logger,
	}
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*dto.AuthResponseDTO, error) {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	role := payload.Role
	if role == "" {
		role = constants.RoleUser
	}

	user := &entities.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: hash,
		Phone:    payload.Phone,
		Role:     role,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.buildAuthResponse(created)
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	if err := s.checkLoginAttempts(ctx, payload.Email); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		// Не раскрываем, существует ли такой email.
		s.registerFailedAttempt(ctx, payload.Email)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.registerFailedAttempt(ctx, payload.Email)
		return nil, apperrors.ErrInvalidCredentials
	}

	s.resetLoginAttempts(ctx, payload.Email)

	return s.buildAuthResponse(user)
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	// Роль берём из базы, а не из токена: она могла смениться.
	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	return s.buildAuthResponse(user)
}

func (s *AuthService) Me(ctx context.Context, userID uint64) (*entities.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uint64, payload dto.ChangePasswordDTO) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := utils.ComparePasswords(user.Password, payload.OldPassword); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(payload.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, hash)
}

func (s *AuthService) buildAuthResponse(user *entities.User) (*dto.AuthResponseDTO, error) {
	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		s.logger.Error("Не удалось сгенерировать токены", zap.Error(err))
		return nil, err
	}

	return &dto.AuthResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func loginAttemptsKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

func (s *AuthService) checkLoginAttempts(ctx context.Context, email string) error {
	val, err := s.cacheRepo.Get(ctx, loginAttemptsKey(email))
	if err != nil {
		// Redis недоступен или ключа нет: вход не блокируем.
		return nil
	}
	attempts, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	if attempts >= s.authConfig.MaxLoginAttempts {
		s.logger.Warn("Вход заблокирован из-за превышения числа попыток",
			zap.String("email", email), zap.Int("attempts", attempts))
		return apperrors.ErrTooManyAttempts
	}
	return nil
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, email string) {
	key := loginAttemptsKey(email)
	attempts, err := s.cacheRepo.Incr(ctx, key)
	if err != nil {
		s.logger.Warn("Не удалось записать неудачную попытку входа", zap.Error(err))
		return
	}
	if attempts == 1 {
		if _, err := s.cacheRepo.Expire(ctx, key, s.authConfig.LockoutDuration); err != nil {
			s.logger.Warn("Не удалось выставить TTL счётчика попыток", zap.Error(err))
		}
	}
}

func (s *AuthService) resetLoginAttempts(ctx context.Context, email string) {
	if err := s.cacheRepo.Del(ctx, loginAttemptsKey(email)); err != nil {
		s.logger.Warn("Не удалось сбросить счётчик попыток входа", zap.Error(err))
	}
}
