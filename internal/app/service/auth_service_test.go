package service

import (
	"context"
	"errors"
	"sysdesignlab/internal/common"
	"sysdesignlab/internal/common/security"
	"sysdesignlab/internal/domain/model"
	"sysdesignlab/internal/platform/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authServiceFixture() (*AuthService, *fakeUserRepo) {
	config.AppConfig = &config.Config{JWTKey: []byte("test-secret"), JWTExp: time.Hour}
	security.InitJWT()
	repo := newFakeUserRepo()
	return NewAuthService(repo), repo
}

func TestSignupCreatesFreeUser(t *testing.T) {
	svc, repo := authServiceFixture()

	resp, err := svc.Signup(context.Background(), SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleFree, resp.User.Role)
	assert.Equal(t, model.SubscriptionInactive, resp.User.SubscriptionStatus)
	assert.Empty(t, resp.User.HashedPassword)

	stored := repo.users[resp.User.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.HashedPassword)
}

func TestSignupRejectsShortPassword(t *testing.T) {
	svc, _ := authServiceFixture()

	_, err := svc.Signup(context.Background(), SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "short",
	})
	assert.True(t, errors.Is(err, common.ErrBadRequest))
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	svc, _ := authServiceFixture()

	_, err := svc.Signup(context.Background(), SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), SignupRequest{Name: "Also Ada", Email: "ada@example.com", Password: "secret456"})
	assert.True(t, errors.Is(err, common.ErrConflict))
}

func TestLoginVerifiesPassword(t *testing.T) {
	svc, _ := authServiceFixture()

	_, err := svc.Signup(context.Background(), SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestLoginUnknownEmailIsUnauthorized(t *testing.T) {
	svc, _ := authServiceFixture()

	// Unknown accounts must not be distinguishable from bad passwords.
	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}
