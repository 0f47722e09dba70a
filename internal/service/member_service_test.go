package service

import (
	"context"
	"testing"

	"github.com/staffdir/staffdir-backend/internal/config"
	"github.com/staffdir/staffdir-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServices(t *testing.T) (*repository.Repositories, *Services) {
	t.Helper()
	repos := repository.NewRepositories()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryMinutes: 30}
	return repos, NewServices(cfg, repos)
}

// seedTags creates catalog tags and returns their ids in creation order.
func seedTags(t *testing.T, repos *repository.Repositories, names ...string) []int {
	t.Helper()
	ids := make([]int, len(names))
	for i, name := range names {
		tag := &repository.Tag{Name: name}
		require.NoError(t, repos.TagRepo.Create(context.Background(), tag))
		ids[i] = tag.ID
	}
	return ids
}

func TestMemberServiceCreateRoundTrip(t *testing.T) {
	repos, svcs := setupServices(t)
	ctx := context.Background()
	tagIDs := seedTags(t, repos, "C#", "Python", "Ruby")

	created, err := svcs.Contractor.Create(ctx, "Ana", 6, tagIDs)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "Ana", created.Name)
	assert.Equal(t, 6, created.Attribute)
	assert.ElementsMatch(t, tagIDs, created.TagIDs)

	loaded, err := svcs.Contractor.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, "Ana", loaded.Name)
	assert.Equal(t, 6, loaded.Attribute)
	assert.ElementsMatch(t, tagIDs, loaded.TagIDs)
}

func TestMemberServiceCreateDropsUnknownTagIDs(t *testing.T) {
	repos, svcs := setupServices(t)
	ctx := context.Background()
	seedTags(t, repos, "C#", "Python")

	created, err := svcs.Contractor.Create(ctx, "Ana", 6, []int{1, 2, 999})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, created.TagIDs)
}

func TestMemberServiceCreateCollapsesDuplicateTagIDs(t *testing.T) {
	repos, svcs := setupServices(t)
	ctx := context.Background()
	seedTags(t, repos, "C#")

	created, err := svcs.Contractor.Create(ctx, "Ana", 6, []int{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, created.TagIDs)
}

func TestMemberServiceCreateWithoutTags(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()

	created, err := svcs.Employee.Create(ctx, "Bo", repository.RoleScrumMaster, nil)
	require.NoError(t, err)
	assert.Empty(t, created.TagIDs)
	assert.NotNil(t, created.TagIDs)
}

func TestMemberServiceUpdateTagSemantics(t *testing.T) {
	repos, svcs := setupServices(t)
	ctx := context.Background()
	seedTags(t, repos, "C#", "Python", "Ruby", "Java", "Angular")

	created, err := svcs.Contractor.Create(ctx, "Ana", 6, []int{1, 2})
	require.NoError(t, err)

	// nil tag list leaves tags untouched
	updated, err := svcs.Contractor.Update(ctx, created.ID, "Ana", 9, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Attribute)
	assert.ElementsMatch(t, []int{1, 2}, updated.TagIDs)

	// non-empty list replaces the whole set
	updated, err = svcs.Contractor.Update(ctx, created.ID, "Ana", 9, []int{4, 5})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{4, 5}, updated.TagIDs)

	// empty non-nil list clears everything
	updated, err = svcs.Contractor.Update(ctx, created.ID, "Ana", 9, []int{})
	require.NoError(t, err)
	assert.Empty(t, updated.TagIDs)
}

func TestMemberServiceUpdateDropsUnknownTagIDs(t *testing.T) {
	repos, svcs := setupServices(t)
	ctx := context.Background()
	seedTags(t, repos, "C#", "Python")

	created, err := svcs.Contractor.Create(ctx, "Ana", 6, []int{1})
	require.NoError(t, err)

	updated, err := svcs.Contractor.Update(ctx, created.ID, "Ana", 6, []int{2, 999})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, updated.TagIDs)
}

func TestMemberServiceUpdateOverwritesNameAndAttribute(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()

	created, err := svcs.Employee.Create(ctx, "Bo", repository.RoleScrumMaster, nil)
	require.NoError(t, err)

	updated, err := svcs.Employee.Update(ctx, created.ID, "Bo Chen", repository.RoleDeliveryManager, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bo Chen", updated.Name)
	assert.Equal(t, repository.RoleDeliveryManager, updated.Attribute)
}

func TestMemberServiceUpdateNotFound(t *testing.T) {
	_, svcs := setupServices(t)

	_, err := svcs.Contractor.Update(context.Background(), 42, "Ana", 6, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemberServiceGetByIDNotFound(t *testing.T) {
	_, svcs := setupServices(t)

	_, err := svcs.Contractor.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemberServiceDeleteCascades(t *testing.T) {
	repos, svcs := setupServices(t)
	ctx := context.Background()
	seedTags(t, repos, "C#", "Python")

	created, err := svcs.Contractor.Create(ctx, "Ana", 6, []int{1, 2})
	require.NoError(t, err)

	require.NoError(t, svcs.Contractor.Delete(ctx, created.ID))

	// no association survives the member
	memberIDs, err := repos.AssociationRepo.FindMemberIDsByTags(ctx, []int{1, 2})
	require.NoError(t, err)
	assert.Empty(t, memberIDs)

	_, err = svcs.Contractor.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemberServiceDeleteNotFound(t *testing.T) {
	_, svcs := setupServices(t)

	err := svcs.Contractor.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemberServiceFilterMatchesAnyTag(t *testing.T) {
	repos, svcs := setupServices(t)
	ctx := context.Background()
	seedTags(t, repos, "C#", "Python", "Ruby", "Java")

	a, err := svcs.Contractor.Create(ctx, "A", 3, []int{2})
	require.NoError(t, err)
	b, err := svcs.Contractor.Create(ctx, "B", 6, []int{3, 4})
	require.NoError(t, err)

	matched, err := svcs.Contractor.Filter(ctx, []int{2, 4})
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, a.ID, matched[0].ID)
	assert.Equal(t, b.ID, matched[1].ID)

	matched, err = svcs.Contractor.Filter(ctx, []int{99})
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestMemberServiceFilterIsKindScoped(t *testing.T) {
	repos, svcs := setupServices(t)
	ctx := context.Background()
	seedTags(t, repos, "C#")

	contractor, err := svcs.Contractor.Create(ctx, "Ana", 6, []int{1})
	require.NoError(t, err)
	employee, err := svcs.Employee.Create(ctx, "Bo", repository.RoleScrumMaster, []int{1})
	require.NoError(t, err)

	contractors, err := svcs.Contractor.Filter(ctx, []int{1})
	require.NoError(t, err)
	require.Len(t, contractors, 1)
	assert.Equal(t, contractor.ID, contractors[0].ID)

	employees, err := svcs.Employee.Filter(ctx, []int{1})
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, employee.ID, employees[0].ID)
}

func TestMemberServiceKindIsolation(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()

	contractor, err := svcs.Contractor.Create(ctx, "Ana", 6, nil)
	require.NoError(t, err)
	_, err = svcs.Employee.Create(ctx, "Bo", repository.RoleSoftwareEngineer, nil)
	require.NoError(t, err)

	employees, err := svcs.Employee.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.NotEqual(t, contractor.ID, employees[0].ID)

	_, err = svcs.Employee.GetByID(ctx, contractor.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemberServiceScenario(t *testing.T) {
	repos, svcs := setupServices(t)
	ctx := context.Background()
	seedTags(t, repos, "C#", "Python")

	created, err := svcs.Contractor.Create(ctx, "Ana", 6, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Ana", created.Name)
	assert.Equal(t, 6, created.Attribute)
	assert.Equal(t, []int{1, 2}, created.TagIDs)

	all, err := svcs.Contractor.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)

	matched, err := svcs.Contractor.Filter(ctx, []int{2})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, created.ID, matched[0].ID)

	require.NoError(t, svcs.Contractor.Delete(ctx, created.ID))
	_, err = svcs.Contractor.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
