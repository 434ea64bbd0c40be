package repository

import (
	"sort"
	"sync"

	"github.com/isdelr/vehicle-registry-be/internal/models"
)

// MemoryVehicleRepository keeps vehicle records in a mutex-guarded map. It
// backs the service tests; identifiers are assigned from a monotonically
// increasing counter, matching the production repository's behavior.
type MemoryVehicleRepository struct {
	mu       sync.Mutex
	vehicles map[int64]models.Vehicle
	nextID   int64
}

// NewMemoryVehicleRepository creates an empty MemoryVehicleRepository.
func NewMemoryVehicleRepository() *MemoryVehicleRepository {
	return &MemoryVehicleRepository{vehicles: make(map[int64]models.Vehicle)}
}

// GetAll retrieves every vehicle record, ordered by ID.
func (r *MemoryVehicleRepository) GetAll() ([]models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vehicles := make([]models.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		vehicles = append(vehicles, v)
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].ID < vehicles[j].ID })
	return vehicles, nil
}

// GetByID retrieves a single vehicle by its ID.
func (r *MemoryVehicleRepository) GetByID(id int64) (models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vehicles[id]
	if !ok {
		return models.Vehicle{}, models.ErrNotFound
	}
	return v, nil
}

// Create stores a new vehicle and returns it with its assigned ID.
func (r *MemoryVehicleRepository) Create(vehicle models.Vehicle) (models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	vehicle.ID = r.nextID
	r.vehicles[vehicle.ID] = vehicle
	return vehicle, nil
}

// Update replaces the business fields of an existing vehicle.
func (r *MemoryVehicleRepository) Update(vehicle models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vehicles[vehicle.ID]; !ok {
		return models.ErrNotFound
	}
	r.vehicles[vehicle.ID] = vehicle
	return nil
}

// Delete removes a vehicle by its ID, reporting whether it was present.
func (r *MemoryVehicleRepository) Delete(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vehicles[id]; !ok {
		return false, nil
	}
	delete(r.vehicles, id)
	return true, nil
}
