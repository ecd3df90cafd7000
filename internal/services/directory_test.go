package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"research-admin/internal/directory"
	"research-admin/internal/entities"
)

// countingLabRepo wraps fakeLabRepo and counts GetAllLabs calls so tests can
// tell a cache hit from a recomputation.
type countingLabRepo struct {
	*fakeLabRepo
	getAllCalls int
}

func (c *countingLabRepo) GetAllLabs(ctx context.Context) ([]entities.Lab, error) {
	c.getAllCalls++
	return c.fakeLabRepo.GetAllLabs(ctx)
}

func seedDirectoryLabs(repo *fakeLabRepo) {
	text := func(s string) *string { return &s }
	repo.labs[1] = entities.Lab{ID: 1, Name: "Optics Lab", HeadName: "Dr. Tan", Type: "Research Lab", Status: "Active", EquipmentText: text("Laser, Oscilloscope")}
	repo.labs[2] = entities.Lab{ID: 2, Name: "Robotics Lab", HeadName: "Dr. Lee", Type: "Teaching Lab", Status: "Active", EquipmentText: text("3D Printer; Oscilloscope")}
	repo.labs[3] = entities.Lab{ID: 3, Name: "Materials Lab", HeadName: "Dr. Wong", Type: "Research Lab", Status: "Active", EquipmentText: text("3D Printer")}
	repo.nextID = 4
}

func newDirectoryServiceForTest(repo *countingLabRepo, cache *fakeCache) DirectoryServiceInterface {
	return NewDirectoryService(repo, cache, time.Minute, zap.NewNop())
}

func TestQueryLabsFiltersSortsAndPaginates(t *testing.T) {
	repo := &countingLabRepo{fakeLabRepo: newFakeLabRepo()}
	seedDirectoryLabs(repo.fakeLabRepo)
	svc := newDirectoryServiceForTest(repo, newFakeCache())

	page, err := svc.QueryLabs(context.Background(), DirectoryQuery{
		Criteria: directory.Criteria{LabType: "Research Lab"},
		Page:     1,
		PageSize: 1,
	})
	require.NoError(t, err)

	require.Len(t, page.Labs, 1)
	assert.Equal(t, "Materials Lab", page.Labs[0].Name, "alphabetical order, first page")
	assert.Equal(t, uint64(2), page.Pagination.TotalCount)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Nil(t, page.Facets)
}

func TestQueryLabsEquipmentCriterion(t *testing.T) {
	repo := &countingLabRepo{fakeLabRepo: newFakeLabRepo()}
	seedDirectoryLabs(repo.fakeLabRepo)
	svc := newDirectoryServiceForTest(repo, newFakeCache())

	page, err := svc.QueryLabs(context.Background(), DirectoryQuery{
		Criteria: directory.Criteria{Equipment: "oscilloscope"},
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)

	require.Len(t, page.Labs, 2)
	assert.Equal(t, "Optics Lab", page.Labs[0].Name)
	assert.Equal(t, "Robotics Lab", page.Labs[1].Name)
}

func TestQueryLabsWithFacets(t *testing.T) {
	repo := &countingLabRepo{fakeLabRepo: newFakeLabRepo()}
	seedDirectoryLabs(repo.fakeLabRepo)
	svc := newDirectoryServiceForTest(repo, newFakeCache())

	page, err := svc.QueryLabs(context.Background(), DirectoryQuery{
		Page:       1,
		PageSize:   10,
		WithFacets: true,
	})
	require.NoError(t, err)

	require.NotNil(t, page.Facets)
	assert.Equal(t, []string{"Research Lab", "Teaching Lab"}, page.Facets.LabTypes)

	counts := make(map[string]int, len(page.Facets.Equipment))
	for _, facet := range page.Facets.Equipment {
		counts[facet.Tag] = facet.Count
	}
	assert.Equal(t, 2, counts["3D Printer"])
	assert.Equal(t, 2, counts["Oscilloscope"])
	assert.Equal(t, 1, counts["Laser"])
}

func TestFacetsServedFromCacheAfterFirstComputation(t *testing.T) {
	repo := &countingLabRepo{fakeLabRepo: newFakeLabRepo()}
	seedDirectoryLabs(repo.fakeLabRepo)
	svc := newDirectoryServiceForTest(repo, newFakeCache())

	first, err := svc.GetFacets(context.Background())
	require.NoError(t, err)
	callsAfterFirst := repo.getAllCalls

	second, err := svc.GetFacets(context.Background())
	require.NoError(t, err)

	assert.Equal(t, callsAfterFirst, repo.getAllCalls, "second call must hit the cache")
	assert.Equal(t, first, second)
}

func TestCorruptFacetCacheEntryIsDiscarded(t *testing.T) {
	repo := &countingLabRepo{fakeLabRepo: newFakeLabRepo()}
	seedDirectoryLabs(repo.fakeLabRepo)
	cache := newFakeCache()
	cache.data[directoryFacetsCacheKey] = "{not json"
	svc := newDirectoryServiceForTest(repo, cache)

	facets, err := svc.GetFacets(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, facets.LabTypes)
	assert.Contains(t, cache.deleted, directoryFacetsCacheKey)
}
