package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"research-admin/internal/dto"
	"research-admin/internal/entities"
	"research-admin/pkg/config"
	apperrors "research-admin/pkg/errors"
	"research-admin/pkg/service"
)

type fakeUserRepo struct {
	usersByEmail map[string]entities.User
}

func (f *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*entities.User, error) {
	u, ok := f.usersByEmail[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) FindUser(_ context.Context, id uint64) (*entities.User, error) {
	for _, u := range f.usersByEmail {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user entities.User) (uint64, error) {
	f.usersByEmail[user.Email] = user
	return user.ID, nil
}

func newAuthServiceForTest(t *testing.T, maxAttempts int) (AuthServiceInterface, *fakeCache, service.JWTService) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{usersByEmail: map[string]entities.User{
		"admin@university.edu.my": {
			ID:           1,
			FullName:     "Research Office Administrator",
			Email:        "admin@university.edu.my",
			PasswordHash: string(hash),
			IsActive:     true,
		},
	}}
	cache := newFakeCache()
	jwtSvc := service.NewJWTService("test-secret", time.Minute, time.Hour, zap.NewNop())

	cfg := config.AuthConfig{MaxLoginAttempts: maxAttempts, LockoutDuration: time.Minute}
	return NewAuthService(users, cache, jwtSvc, cfg, zap.NewNop()), cache, jwtSvc
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, _, jwtSvc := newAuthServiceForTest(t, 5)

	tokens, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@university.edu.my",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	accessClaims, err := jwtSvc.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), accessClaims.UserID)
	assert.False(t, accessClaims.IsRefreshToken)

	refreshClaims, err := jwtSvc.ValidateToken(tokens.RefreshToken)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestLoginWrongPasswordIsInvalidCredentials(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t, 5)

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@university.edu.my",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginLocksAfterRepeatedFailures(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t, 3)
	ctx := context.Background()
	payload := dto.LoginDTO{Email: "admin@university.edu.my", Password: "wrong"}

	_, err := svc.Login(ctx, payload)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(ctx, payload)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, payload)
	assert.ErrorIs(t, err, apperrors.ErrAccountLocked)

	// Even the correct password is refused while the lockout holds.
	_, err = svc.Login(ctx, dto.LoginDTO{Email: "admin@university.edu.my", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperrors.ErrAccountLocked)
}

func TestLoginSuccessResetsAttemptCounter(t *testing.T) {
	svc, cache, _ := newAuthServiceForTest(t, 3)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginDTO{Email: "admin@university.edu.my", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginDTO{Email: "admin@university.edu.my", Password: "correct-horse"})
	require.NoError(t, err)

	assert.NotContains(t, cache.data, loginAttemptsKey("admin@university.edu.my"))
}

func TestLoginUnknownEmailBurnsAnAttempt(t *testing.T) {
	svc, cache, _ := newAuthServiceForTest(t, 5)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "ghost@university.edu.my", Password: "whatever1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Contains(t, cache.data, loginAttemptsKey("ghost@university.edu.my"))
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _, jwtSvc := newAuthServiceForTest(t, 5)

	access, _, err := jwtSvc.GenerateTokens(1)
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), access)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	svc, _, jwtSvc := newAuthServiceForTest(t, 5)

	_, refresh, err := jwtSvc.GenerateTokens(1)
	require.NoError(t, err)

	tokens, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}
