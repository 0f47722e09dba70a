package service

import (
	"context"
	"testing"

	"github.com/staffdir/staffdir-backend/internal/config"
	"github.com/staffdir/staffdir-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfigWithSecret(secret string) *config.Config {
	return &config.Config{JWTSecret: secret, JWTExpiryMinutes: 30}
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()

	registered, err := svcs.Auth.Register(ctx, "ana", "s3cret!pw")
	require.NoError(t, err)
	assert.Equal(t, 1, registered.ID)
	assert.Equal(t, repository.AuthRoleWorker, registered.RoleType)
	assert.NotEmpty(t, registered.Token)

	login, err := svcs.Auth.Login(ctx, "ana", "s3cret!pw")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, login.ID)
	assert.Equal(t, repository.AuthRoleWorker, login.RoleType)
	assert.NotEmpty(t, login.Token)
}

func TestAuthServiceRegisterDuplicateUsername(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()

	_, err := svcs.Auth.Register(ctx, "ana", "s3cret!pw")
	require.NoError(t, err)

	_, err = svcs.Auth.Register(ctx, "ana", "another!pw")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAuthServiceLoginFailures(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()

	_, err := svcs.Auth.Register(ctx, "ana", "s3cret!pw")
	require.NoError(t, err)

	// wrong password and unknown username collapse into the same error
	_, err = svcs.Auth.Login(ctx, "ana", "wrong!pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svcs.Auth.Login(ctx, "nobody", "s3cret!pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceTokenRoundTrip(t *testing.T) {
	_, svcs := setupServices(t)

	registered, err := svcs.Auth.Register(context.Background(), "ana", "s3cret!pw")
	require.NoError(t, err)

	token, err := svcs.Auth.ValidateToken(registered.Token)
	require.NoError(t, err)

	id, err := svcs.Auth.GetAuthIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, id)
}

func TestAuthServiceValidateTokenRejectsGarbage(t *testing.T) {
	_, svcs := setupServices(t)

	_, err := svcs.Auth.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthServiceValidateTokenRejectsWrongKey(t *testing.T) {
	repos := repository.NewRepositories()
	cfgA := testConfigWithSecret("secret-a")
	cfgB := testConfigWithSecret("secret-b")
	svcA := NewAuthService(cfgA, repos.AuthRepo)
	svcB := NewAuthService(cfgB, repos.AuthRepo)

	registered, err := svcA.Register(context.Background(), "ana", "s3cret!pw")
	require.NoError(t, err)

	_, err = svcB.ValidateToken(registered.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAdminServiceAddTag(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()

	tag, err := svcs.Admin.AddTag(ctx, "Kotlin")
	require.NoError(t, err)
	assert.Equal(t, 1, tag.ID)
	assert.Equal(t, "Kotlin", tag.Name)

	second, err := svcs.Admin.AddTag(ctx, "Rust")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}
