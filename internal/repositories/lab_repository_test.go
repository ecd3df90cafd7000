package repositories

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"research-admin/internal/entities"
	apperrors "research-admin/pkg/errors"
	"research-admin/pkg/types"
)

var testPool *pgxpool.Pool

// TestMain connects to the database named by TEST_DATABASE_URL and applies
// the test schema. Without the variable the integration tests are skipped.
func TestMain(m *testing.M) {
	testDbUrl := os.Getenv("TEST_DATABASE_URL")
	if testDbUrl == "" {
		os.Exit(m.Run())
	}

	var err error
	testPool, err = pgxpool.New(context.Background(), testDbUrl)
	if err != nil {
		log.Fatalf("failed to connect to the test database: %v", err)
	}
	defer testPool.Close()

	applySchema(testPool)

	os.Exit(m.Run())
}

func applySchema(pool *pgxpool.Pool) {
	path, _ := filepath.Abs("../../testdata/schema.sql")
	schema, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read schema.sql: %v", err)
	}
	if _, err := pool.Exec(context.Background(), string(schema)); err != nil {
		log.Fatalf("failed to apply the test schema: %v", err)
	}
}

func requireTestPool(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL is not set")
	}
}

func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE TABLE lab_equipments, equipments, labs RESTART IDENTITY CASCADE;`)
	require.NoError(t, err, "failed to truncate tables")
}

func seedEquipment(t *testing.T, pool *pgxpool.Pool, names ...string) []uint64 {
	t.Helper()
	ids := make([]uint64, 0, len(names))
	for _, name := range names {
		var id uint64
		err := pool.QueryRow(context.Background(), `INSERT INTO equipments (name) VALUES ($1) RETURNING id`, name).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func inTx(t *testing.T, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	t.Helper()
	return NewTxManager(pool).RunInTransaction(context.Background(), fn)
}

func strPtr(s string) *string { return &s }

func createTestLab(t *testing.T, repo LabRepositoryInterface, lab entities.Lab) uint64 {
	t.Helper()
	var id uint64
	err := inTx(t, testPool, func(tx pgx.Tx) error {
		var err error
		id, err = repo.CreateLab(context.Background(), tx, lab)
		return err
	})
	require.NoError(t, err)
	return id
}

func TestLabRepository_Integration_CreateAndFind(t *testing.T) {
	requireTestPool(t)
	cleanupTables(t, testPool)
	repo := NewLabRepository(testPool, zap.NewNop())

	id := createTestLab(t, repo, entities.Lab{
		Name:         "Optics Lab",
		HeadName:     "Dr. Tan",
		HeadEmail:    strPtr("tan@university.edu.my"),
		Type:         "Research Lab",
		Status:       "Active",
		ResearchArea: strPtr("Photonics"),
	})
	require.True(t, id > 0)

	found, err := repo.FindLab(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Optics Lab", found.Name)
	assert.Equal(t, "Dr. Tan", found.HeadName)
	require.NotNil(t, found.HeadEmail)
	assert.Equal(t, "tan@university.edu.my", *found.HeadEmail)
	assert.Empty(t, found.Equipment)

	_, err = repo.FindLab(context.Background(), 99999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLabRepository_Integration_ReplaceEquipment(t *testing.T) {
	requireTestPool(t)
	cleanupTables(t, testPool)
	repo := NewLabRepository(testPool, zap.NewNop())

	eqIDs := seedEquipment(t, testPool, "Laser", "Oscilloscope", "Spectrometer")
	labID := createTestLab(t, repo, entities.Lab{Name: "Optics Lab", HeadName: "Dr. Tan", Type: "Research Lab", Status: "Active"})

	err := inTx(t, testPool, func(tx pgx.Tx) error {
		return repo.ReplaceEquipment(context.Background(), tx, labID, []entities.LabEquipment{
			{EquipmentID: eqIDs[0], Quantity: 2},
			{EquipmentID: eqIDs[1], Quantity: 1},
		})
	})
	require.NoError(t, err)

	items, err := repo.GetEquipmentForLab(context.Background(), labID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Laser", items[0].EquipmentName)
	assert.Equal(t, 2, items[0].Quantity)

	// A second replace fully supersedes the first set.
	err = inTx(t, testPool, func(tx pgx.Tx) error {
		return repo.ReplaceEquipment(context.Background(), tx, labID, []entities.LabEquipment{
			{EquipmentID: eqIDs[2], Quantity: 4},
		})
	})
	require.NoError(t, err)

	items, err = repo.GetEquipmentForLab(context.Background(), labID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Spectrometer", items[0].EquipmentName)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestLabRepository_Integration_ReplaceEquipmentRollsBackOnBadID(t *testing.T) {
	requireTestPool(t)
	cleanupTables(t, testPool)
	repo := NewLabRepository(testPool, zap.NewNop())

	eqIDs := seedEquipment(t, testPool, "Laser")
	labID := createTestLab(t, repo, entities.Lab{Name: "Optics Lab", HeadName: "Dr. Tan", Type: "Research Lab", Status: "Active"})

	err := inTx(t, testPool, func(tx pgx.Tx) error {
		if err := repo.ReplaceEquipment(context.Background(), tx, labID, []entities.LabEquipment{
			{EquipmentID: eqIDs[0], Quantity: 1},
			{EquipmentID: 99999, Quantity: 1},
		}); err != nil {
			return err
		}
		return nil
	})
	require.Error(t, err, "unknown equipment id must violate the foreign key")

	// The valid row from the same batch must not survive the rollback.
	items, err := repo.GetEquipmentForLab(context.Background(), labID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLabRepository_Integration_GetAllLabsAggregatesEquipmentText(t *testing.T) {
	requireTestPool(t)
	cleanupTables(t, testPool)
	repo := NewLabRepository(testPool, zap.NewNop())

	eqIDs := seedEquipment(t, testPool, "Oscilloscope", "Laser")
	withRows := createTestLab(t, repo, entities.Lab{Name: "Optics Lab", HeadName: "Dr. Tan", Type: "Research Lab", Status: "Active"})
	_ = createTestLab(t, repo, entities.Lab{
		Name:          "Materials Lab",
		HeadName:      "Dr. Wong",
		Type:          "Research Lab",
		Status:        "Active",
		EquipmentText: strPtr("Furnace, Hardness Tester"),
	})

	err := inTx(t, testPool, func(tx pgx.Tx) error {
		return repo.ReplaceEquipment(context.Background(), tx, withRows, []entities.LabEquipment{
			{EquipmentID: eqIDs[0], Quantity: 1},
			{EquipmentID: eqIDs[1], Quantity: 1},
		})
	})
	require.NoError(t, err)

	labs, err := repo.GetAllLabs(context.Background())
	require.NoError(t, err)
	require.Len(t, labs, 2)

	byName := make(map[string]entities.Lab, len(labs))
	for _, lab := range labs {
		byName[lab.Name] = lab
	}

	// Labs with normalized assignments show the aggregated names,
	// alphabetically ordered.
	require.NotNil(t, byName["Optics Lab"].EquipmentText)
	assert.Equal(t, "Laser, Oscilloscope", *byName["Optics Lab"].EquipmentText)

	// Labs with only the legacy column keep its text.
	require.NotNil(t, byName["Materials Lab"].EquipmentText)
	assert.Equal(t, "Furnace, Hardness Tester", *byName["Materials Lab"].EquipmentText)
}

func TestLabRepository_Integration_GetLabsFilterSearchPaginate(t *testing.T) {
	requireTestPool(t)
	cleanupTables(t, testPool)
	repo := NewLabRepository(testPool, zap.NewNop())

	createTestLab(t, repo, entities.Lab{Name: "Optics Lab", HeadName: "Dr. Tan", Type: "Research Lab", Status: "Active"})
	createTestLab(t, repo, entities.Lab{Name: "Robotics Lab", HeadName: "Dr. Lee", Type: "Research Lab", Status: "Under Maintenance"})
	createTestLab(t, repo, entities.Lab{Name: "Circuits Teaching Lab", HeadName: "Dr. Wong", Type: "Teaching Lab", Status: "Active"})

	t.Run("filter by type", func(t *testing.T) {
		labs, total, err := repo.GetLabs(context.Background(), types.Filter{
			Filter: map[string]interface{}{"type": "Research Lab"},
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		assert.Len(t, labs, 2)
	})

	t.Run("search matches head name", func(t *testing.T) {
		labs, total, err := repo.GetLabs(context.Background(), types.Filter{Search: "lee"})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, labs, 1)
		assert.Equal(t, "Robotics Lab", labs[0].Name)
	})

	t.Run("pagination with name sort", func(t *testing.T) {
		labs, total, err := repo.GetLabs(context.Background(), types.Filter{
			Sort:           map[string]string{"name": "asc"},
			Limit:          2,
			Offset:         2,
			WithPagination: true,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, labs, 1)
		assert.Equal(t, "Robotics Lab", labs[0].Name)
	})

	t.Run("unknown filter key is ignored", func(t *testing.T) {
		_, total, err := repo.GetLabs(context.Background(), types.Filter{
			Filter: map[string]interface{}{"head_email": "x"},
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
	})
}

func TestLabRepository_Integration_UpdateAndDelete(t *testing.T) {
	requireTestPool(t)
	cleanupTables(t, testPool)
	repo := NewLabRepository(testPool, zap.NewNop())

	id := createTestLab(t, repo, entities.Lab{Name: "Optics Lab", HeadName: "Dr. Tan", Type: "Research Lab", Status: "Active"})

	err := inTx(t, testPool, func(tx pgx.Tx) error {
		return repo.UpdateLab(context.Background(), tx, id, entities.Lab{
			Name:     "Photonics Lab",
			HeadName: "Dr. Tan",
			Type:     "Research Lab",
			Status:   "Under Maintenance",
		})
	})
	require.NoError(t, err)

	updated, err := repo.FindLab(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Photonics Lab", updated.Name)
	assert.Equal(t, "Under Maintenance", updated.Status)

	err = inTx(t, testPool, func(tx pgx.Tx) error {
		return repo.UpdateLab(context.Background(), tx, 99999, entities.Lab{Name: "x", HeadName: "y", Type: "Research Lab", Status: "Active"})
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.DeleteLab(context.Background(), id))
	_, err = repo.FindLab(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, repo.DeleteLab(context.Background(), id), apperrors.ErrNotFound)
}
