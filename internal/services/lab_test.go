package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"research-admin/internal/dto"
	"research-admin/internal/entities"
	apperrors "research-admin/pkg/errors"
	"research-admin/pkg/types"
	"research-admin/pkg/utils"
)

// fakeLabRepo keeps labs and assignments in memory. Writes go to a staging
// copy so the fake tx manager can throw them away on error, mirroring a real
// rollback.
type fakeLabRepo struct {
	labs        map[uint64]entities.Lab
	assignments map[uint64][]entities.LabEquipment
	nextID      uint64

	// badEquipmentID simulates a foreign key violation on insert.
	badEquipmentID uint64
	replaceCalls   int
}

func newFakeLabRepo() *fakeLabRepo {
	return &fakeLabRepo{
		labs:        make(map[uint64]entities.Lab),
		assignments: make(map[uint64][]entities.LabEquipment),
		nextID:      1,
	}
}

func (f *fakeLabRepo) snapshot() (map[uint64]entities.Lab, map[uint64][]entities.LabEquipment, uint64) {
	labs := make(map[uint64]entities.Lab, len(f.labs))
	for k, v := range f.labs {
		labs[k] = v
	}
	assignments := make(map[uint64][]entities.LabEquipment, len(f.assignments))
	for k, v := range f.assignments {
		assignments[k] = append([]entities.LabEquipment(nil), v...)
	}
	return labs, assignments, f.nextID
}

func (f *fakeLabRepo) restore(labs map[uint64]entities.Lab, assignments map[uint64][]entities.LabEquipment, nextID uint64) {
	f.labs = labs
	f.assignments = assignments
	f.nextID = nextID
}

func (f *fakeLabRepo) GetLabs(ctx context.Context, filter types.Filter) ([]entities.Lab, uint64, error) {
	labs, err := f.GetAllLabs(ctx)
	return labs, uint64(len(labs)), err
}

func (f *fakeLabRepo) GetAllLabs(_ context.Context) ([]entities.Lab, error) {
	out := make([]entities.Lab, 0, len(f.labs))
	for _, lab := range f.labs {
		out = append(out, lab)
	}
	return out, nil
}

func (f *fakeLabRepo) FindLab(_ context.Context, id uint64) (*entities.Lab, error) {
	lab, ok := f.labs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	lab.Equipment = append([]entities.LabEquipment(nil), f.assignments[id]...)
	return &lab, nil
}

func (f *fakeLabRepo) CreateLab(_ context.Context, _ pgx.Tx, lab entities.Lab) (uint64, error) {
	id := f.nextID
	f.nextID++
	lab.ID = id
	lab.CreatedAt = time.Now()
	lab.UpdatedAt = lab.CreatedAt
	f.labs[id] = lab
	return id, nil
}

func (f *fakeLabRepo) UpdateLab(_ context.Context, _ pgx.Tx, id uint64, lab entities.Lab) error {
	if _, ok := f.labs[id]; !ok {
		return apperrors.ErrNotFound
	}
	lab.ID = id
	f.labs[id] = lab
	return nil
}

func (f *fakeLabRepo) DeleteLab(_ context.Context, id uint64) error {
	if _, ok := f.labs[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.labs, id)
	delete(f.assignments, id)
	return nil
}

func (f *fakeLabRepo) ReplaceEquipment(_ context.Context, _ pgx.Tx, labID uint64, items []entities.LabEquipment) error {
	f.replaceCalls++
	delete(f.assignments, labID)
	for _, item := range items {
		if item.EquipmentID == f.badEquipmentID {
			return fmt.Errorf("insert lab equipment %d: foreign key violation", item.EquipmentID)
		}
		item.LabID = labID
		f.assignments[labID] = append(f.assignments[labID], item)
	}
	return nil
}

func (f *fakeLabRepo) GetEquipmentForLab(_ context.Context, labID uint64) ([]entities.LabEquipment, error) {
	return append([]entities.LabEquipment(nil), f.assignments[labID]...), nil
}

// fakeTxManager snapshots the repo before the callback and restores it when
// the callback fails, so tests observe rollback semantics.
type fakeTxManager struct {
	repo *fakeLabRepo
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	labs, assignments, nextID := m.repo.snapshot()
	if err := fn(nil); err != nil {
		m.repo.restore(labs, assignments, nextID)
		return err
	}
	return nil
}

type fakeCache struct {
	data    map[string]string
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.data[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.data[key] = fmt.Sprint(value)
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

func (c *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	var n int64
	fmt.Sscan(c.data[key], &n)
	n++
	c.data[key] = fmt.Sprint(n)
	return n, nil
}

func (c *fakeCache) Expire(_ context.Context, _ string, _ time.Duration) (bool, error) {
	return true, nil
}

func newLabServiceForTest(repo *fakeLabRepo, cache *fakeCache) LabServiceInterface {
	return NewLabService(repo, &fakeTxManager{repo: repo}, cache, zap.NewNop())
}

func validCreatePayload() dto.CreateLabDTO {
	return dto.CreateLabDTO{
		Name:     "Photonics Lab",
		HeadName: "Dr. Chen",
		Type:     "Research Lab",
		Status:   "Active",
		Equipment: []dto.LabEquipmentInputDTO{
			{EquipmentID: 1, Quantity: 2},
			{EquipmentID: 2, Quantity: 1},
		},
	}
}

func TestCreateLabRejectsUnknownType(t *testing.T) {
	repo := newFakeLabRepo()
	svc := newLabServiceForTest(repo, newFakeCache())

	payload := validCreatePayload()
	payload.Type = "Garage"

	_, err := svc.CreateLab(context.Background(), payload)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Contains(t, httpErr.Details, "type")
	assert.Empty(t, repo.labs)
}

func TestCreateLabDropsNonPositiveQuantities(t *testing.T) {
	repo := newFakeLabRepo()
	svc := newLabServiceForTest(repo, newFakeCache())

	payload := validCreatePayload()
	payload.Equipment = []dto.LabEquipmentInputDTO{
		{EquipmentID: 1, Quantity: 3},
		{EquipmentID: 2, Quantity: 0},
		{EquipmentID: 3, Quantity: -1},
	}

	created, err := svc.CreateLab(context.Background(), payload)
	require.NoError(t, err)

	require.Len(t, created.Equipment, 1)
	assert.Equal(t, uint64(1), created.Equipment[0].EquipmentID)
	assert.Equal(t, 3, created.Equipment[0].Quantity)
}

func TestCreateLabRollsBackOnBadEquipment(t *testing.T) {
	repo := newFakeLabRepo()
	repo.badEquipmentID = 99
	svc := newLabServiceForTest(repo, newFakeCache())

	payload := validCreatePayload()
	payload.Equipment = []dto.LabEquipmentInputDTO{
		{EquipmentID: 1, Quantity: 1},
		{EquipmentID: 99, Quantity: 1},
	}

	_, err := svc.CreateLab(context.Background(), payload)
	require.Error(t, err)

	assert.Empty(t, repo.labs, "lab row must not survive a failed assignment insert")
	assert.Empty(t, repo.assignments, "no partial assignment set may survive")
}

func TestUpdateLabLeavesAssignmentsWhenPatchOmitsThem(t *testing.T) {
	repo := newFakeLabRepo()
	svc := newLabServiceForTest(repo, newFakeCache())

	created, err := svc.CreateLab(context.Background(), validCreatePayload())
	require.NoError(t, err)
	repo.replaceCalls = 0

	newName := "Photonics and Optics Lab"
	updated, err := svc.UpdateLab(context.Background(), created.ID, dto.UpdateLabDTO{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, 0, repo.replaceCalls, "omitted equipment must not touch assignments")
	assert.Len(t, updated.Equipment, 2)
}

func TestUpdateLabClearsAssignmentsWithEmptySet(t *testing.T) {
	repo := newFakeLabRepo()
	svc := newLabServiceForTest(repo, newFakeCache())

	created, err := svc.CreateLab(context.Background(), validCreatePayload())
	require.NoError(t, err)

	empty := []dto.LabEquipmentInputDTO{}
	updated, err := svc.UpdateLab(context.Background(), created.ID, dto.UpdateLabDTO{Equipment: &empty})
	require.NoError(t, err)

	assert.Empty(t, updated.Equipment)
}

func TestLabWritesInvalidateFacetCache(t *testing.T) {
	repo := newFakeLabRepo()
	cache := newFakeCache()
	cache.data[directoryFacetsCacheKey] = `{"lab_types":[],"equipment":[]}`
	svc := newLabServiceForTest(repo, cache)

	created, err := svc.CreateLab(context.Background(), validCreatePayload())
	require.NoError(t, err)
	assert.Contains(t, cache.deleted, directoryFacetsCacheKey)

	cache.deleted = nil
	require.NoError(t, svc.DeleteLab(context.Background(), created.ID))
	assert.Contains(t, cache.deleted, directoryFacetsCacheKey)
}

func TestFindLabMapsTimestamps(t *testing.T) {
	repo := newFakeLabRepo()
	svc := newLabServiceForTest(repo, newFakeCache())

	created, err := svc.CreateLab(context.Background(), validCreatePayload())
	require.NoError(t, err)

	parsed, err := time.Parse(utils.TimestampFormat, created.CreatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)
}
