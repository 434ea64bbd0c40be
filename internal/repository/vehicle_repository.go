package repository

import "github.com/isdelr/vehicle-registry-be/internal/models"

// VehicleRepository is the persistence abstraction for vehicle records. The
// storage engine assigns identifiers on create; lookups and updates on an
// absent id return models.ErrNotFound.
type VehicleRepository interface {
	GetAll() ([]models.Vehicle, error)
	GetByID(id int64) (models.Vehicle, error)
	Create(vehicle models.Vehicle) (models.Vehicle, error)
	Update(vehicle models.Vehicle) error
	Delete(id int64) (bool, error)
}
