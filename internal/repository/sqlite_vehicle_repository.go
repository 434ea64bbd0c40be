package repository

import (
	"database/sql"
	"errors"

	"github.com/isdelr/vehicle-registry-be/internal/models"
)

// SQLiteVehicleRepository persists vehicle records in a SQL database.
type SQLiteVehicleRepository struct {
	db *sql.DB
}

// NewSQLiteVehicleRepository creates a new SQLiteVehicleRepository.
func NewSQLiteVehicleRepository(db *sql.DB) *SQLiteVehicleRepository {
	return &SQLiteVehicleRepository{db: db}
}

// GetAll retrieves every vehicle record.
func (r *SQLiteVehicleRepository) GetAll() ([]models.Vehicle, error) {
	rows, err := r.db.Query("SELECT id, make, model, year, license_plate FROM vehicles")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.LicensePlate); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// GetByID retrieves a single vehicle by its ID.
func (r *SQLiteVehicleRepository) GetByID(id int64) (models.Vehicle, error) {
	var v models.Vehicle
	row := r.db.QueryRow("SELECT id, make, model, year, license_plate FROM vehicles WHERE id = ?", id)
	err := row.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.LicensePlate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vehicle{}, models.ErrNotFound
		}
		return models.Vehicle{}, err
	}
	return v, nil
}

// Create inserts a new vehicle and returns it with its assigned ID.
func (r *SQLiteVehicleRepository) Create(vehicle models.Vehicle) (models.Vehicle, error) {
	res, err := r.db.Exec("INSERT INTO vehicles(make, model, year, license_plate) VALUES(?, ?, ?, ?)",
		vehicle.Make, vehicle.Model, vehicle.Year, vehicle.LicensePlate)
	if err != nil {
		return models.Vehicle{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Vehicle{}, err
	}
	vehicle.ID = id
	return vehicle, nil
}

// Update replaces the business fields of an existing vehicle. The ID itself
// is never altered.
func (r *SQLiteVehicleRepository) Update(vehicle models.Vehicle) error {
	res, err := r.db.Exec("UPDATE vehicles SET make = ?, model = ?, year = ?, license_plate = ? WHERE id = ?",
		vehicle.Make, vehicle.Model, vehicle.Year, vehicle.LicensePlate, vehicle.ID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a vehicle by its ID, reporting whether a row was deleted.
// Deleting an absent id is not an error.
func (r *SQLiteVehicleRepository) Delete(id int64) (bool, error) {
	res, err := r.db.Exec("DELETE FROM vehicles WHERE id = ?", id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
