package seed

import (
	"context"
	"testing"

	"github.com/staffdir/staffdir-backend/internal/config"
	"github.com/staffdir/staffdir-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedDataPopulatesCatalogAndAdmin(t *testing.T) {
	repos := repository.NewRepositories()
	cfg := &config.Config{AdminUsername: "admin", AdminPassword: "admin123!"}

	SeedData(cfg, repos)

	tags, err := repos.TagRepo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, len(defaultTags))
	assert.Equal(t, "C#", tags[0].Name)
	assert.Equal(t, "Go", tags[len(tags)-1].Name)

	admin, err := repos.AuthRepo.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, repository.AuthRoleAdmin, admin.RoleType)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123!")))
}

func TestSeedDataIsIdempotent(t *testing.T) {
	repos := repository.NewRepositories()
	cfg := &config.Config{AdminUsername: "admin", AdminPassword: "admin123!"}

	SeedData(cfg, repos)
	before, err := repos.AuthRepo.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)

	SeedData(cfg, repos)

	tags, err := repos.TagRepo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, tags, len(defaultTags))

	after, err := repos.AuthRepo.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, before.Password, after.Password)
}
