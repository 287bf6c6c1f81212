package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/pkg/config"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"
	"maintenance-system/pkg/types"
	"maintenance-system/pkg/utils"
)

// fakeCache — простая замена Redis для тестов.
type fakeCache struct {
	values map[string]int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]int64)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", errors.New("ключ не найден")
	}
	return strconv.FormatInt(v, 10), nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeCache) Incr(ctx context.Context, key string) (int64, error) {
	f.values[key]++
	return f.values[key], nil
}

func (f *fakeCache) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	return true, nil
}

// stubUserRepo хранит одного пользователя в памяти.
type stubUserRepo struct {
	user *entities.User
}

func (s *stubUserRepo) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	return []entities.User{*s.user}, 1, nil
}

func (s *stubUserRepo) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, apperrors.ErrNotFound
}

func (s *stubUserRepo) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, apperrors.ErrNotFound
}

func (s *stubUserRepo) CreateUser(ctx context.Context, user *entities.User) (uint64, error) {
	user.ID = 1
	s.user = user
	return 1, nil
}

func (s *stubUserRepo) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) error {
	return nil
}

func (s *stubUserRepo) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	s.user.Password = passwordHash
	return nil
}

func (s *stubUserRepo) DeleteUser(ctx context.Context, id uint64) error { return nil }

func newAuthServiceForTest(t *testing.T) (AuthServiceInterface, *stubUserRepo) {
	t.Helper()

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	userRepo := &stubUserRepo{user: &entities.User{
		ID:       1,
		Name:     "Анна",
		Email:    "anna@maintenance.local",
		Password: hash,
		Role:     constants.RoleUser,
	}}

	jwtSvc := service.NewJWTService("test-secret", time.Hour, 24*time.Hour, zap.NewNop())
	authCfg := config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: time.Minute}

	svc := NewAuthService(userRepo, newFakeCache(), jwtSvc, authCfg, zap.NewNop())
	return svc, userRepo
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)

	resp, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "anna@maintenance.local",
		Password: "correct-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, uint64(1), resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "anna@maintenance.local",
		Password: "wrong",
	})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}

// После MaxLoginAttempts неудачных попыток вход блокируется,
// даже если пароль наконец верный.
func TestLogin_LockoutAfterTooManyAttempts(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Login(ctx, dto.LoginDTO{
			Email:    "anna@maintenance.local",
			Password: "wrong",
		})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	}

	_, err := svc.Login(ctx, dto.LoginDTO{
		Email:    "anna@maintenance.local",
		Password: "correct-password",
	})
	assert.True(t, errors.Is(err, apperrors.ErrTooManyAttempts))
}

// Успешный вход сбрасывает счётчик неудачных попыток.
func TestLogin_SuccessResetsAttempts(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, _ = svc.Login(ctx, dto.LoginDTO{Email: "anna@maintenance.local", Password: "wrong"})
	}

	_, err := svc.Login(ctx, dto.LoginDTO{Email: "anna@maintenance.local", Password: "correct-password"})
	require.NoError(t, err)

	// Счётчик сброшен: снова можно ошибаться без блокировки.
	for i := 0; i < 2; i++ {
		_, err := svc.Login(ctx, dto.LoginDTO{Email: "anna@maintenance.local", Password: "wrong"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	}
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)

	resp, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "anna@maintenance.local",
		Password: "correct-password",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), resp.AccessToken)
	assert.True(t, errors.Is(err, apperrors.ErrTokenIsNotRefresh))
}

func TestChangePassword(t *testing.T) {
	svc, userRepo := newAuthServiceForTest(t)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, 1, dto.ChangePasswordDTO{
		OldPassword: "wrong",
		NewPassword: "new-password",
	})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))

	err = svc.ChangePassword(ctx, 1, dto.ChangePasswordDTO{
		OldPassword: "correct-password",
		NewPassword: "new-password",
	})
	require.NoError(t, err)

	assert.NoError(t, utils.ComparePasswords(userRepo.user.Password, "new-password"))
}
