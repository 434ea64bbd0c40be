package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isdelr/vehicle-registry-be/internal/database"
	"github.com/isdelr/vehicle-registry-be/internal/models"
	"github.com/isdelr/vehicle-registry-be/internal/repository"
)

// Both implementations must honor the same contract; the tests run against
// each through the interface.
func repositories(t *testing.T) map[string]repository.VehicleRepository {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	return map[string]repository.VehicleRepository{
		"sqlite": repository.NewSQLiteVehicleRepository(db),
		"memory": repository.NewMemoryVehicleRepository(),
	}
}

func TestVehicleRepository_CreateAssignsID(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			first, err := repo.Create(models.Vehicle{Make: "Toyota", Model: "Corolla", Year: 2022, LicensePlate: "BRA2E19"})
			require.NoError(t, err)
			require.Equal(t, int64(1), first.ID)

			second, err := repo.Create(models.Vehicle{Make: "Honda", Model: "Civic", Year: 2021, LicensePlate: "ABC1D23"})
			require.NoError(t, err)
			require.Equal(t, int64(2), second.ID)
		})
	}
}

func TestVehicleRepository_GetByID(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			created, err := repo.Create(models.Vehicle{Make: "Toyota", Model: "Corolla", Year: 2022, LicensePlate: "BRA2E19"})
			require.NoError(t, err)

			got, err := repo.GetByID(created.ID)
			require.NoError(t, err)
			require.Equal(t, created, got)

			_, err = repo.GetByID(999)
			require.ErrorIs(t, err, models.ErrNotFound)
		})
	}
}

func TestVehicleRepository_GetAll(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			all, err := repo.GetAll()
			require.NoError(t, err)
			require.Empty(t, all)

			_, err = repo.Create(models.Vehicle{Make: "Toyota", Model: "Corolla", Year: 2022, LicensePlate: "BRA2E19"})
			require.NoError(t, err)
			_, err = repo.Create(models.Vehicle{Make: "Honda", Model: "Civic", Year: 2021, LicensePlate: "ABC1D23"})
			require.NoError(t, err)

			all, err = repo.GetAll()
			require.NoError(t, err)
			require.Len(t, all, 2)

			makes := []string{all[0].Make, all[1].Make}
			require.ElementsMatch(t, []string{"Toyota", "Honda"}, makes)
		})
	}
}

func TestVehicleRepository_Update(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			created, err := repo.Create(models.Vehicle{Make: "Toyota", Model: "Corolla", Year: 2022, LicensePlate: "BRA2E19"})
			require.NoError(t, err)

			updated := models.Vehicle{ID: created.ID, Make: "Toyota", Model: "Camry", Year: 2023, LicensePlate: "XYZ9A87"}
			require.NoError(t, repo.Update(updated))

			got, err := repo.GetByID(created.ID)
			require.NoError(t, err)
			require.Equal(t, updated, got)

			err = repo.Update(models.Vehicle{ID: 999, Make: "Ghost", Model: "None", Year: 2000, LicensePlate: "NOPE000"})
			require.ErrorIs(t, err, models.ErrNotFound)
		})
	}
}

func TestVehicleRepository_DeleteIdempotent(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			created, err := repo.Create(models.Vehicle{Make: "Toyota", Model: "Corolla", Year: 2022, LicensePlate: "BRA2E19"})
			require.NoError(t, err)

			deleted, err := repo.Delete(created.ID)
			require.NoError(t, err)
			require.True(t, deleted)

			// Absence reports false, on first and repeated calls alike.
			deleted, err = repo.Delete(created.ID)
			require.NoError(t, err)
			require.False(t, deleted)

			deleted, err = repo.Delete(created.ID)
			require.NoError(t, err)
			require.False(t, deleted)

			_, err = repo.GetByID(created.ID)
			require.ErrorIs(t, err, models.ErrNotFound)
		})
	}
}
