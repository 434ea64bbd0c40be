package services

import (
	"github.com/isdelr/vehicle-registry-be/internal/models"
	"github.com/isdelr/vehicle-registry-be/internal/repository"
)

// VehicleServiceProvider defines the interface for vehicle services.
type VehicleServiceProvider interface {
	GetAll() ([]models.Vehicle, error)
	GetByID(id int64) (models.Vehicle, error)
	Create(input models.VehicleInput) (models.Vehicle, error)
	Update(id int64, input models.VehicleInput) (models.Vehicle, error)
	Delete(id int64) (bool, error)
}

// VehicleService provides business logic for vehicle records. It holds no
// state of its own; every call is a single pass over the repository.
type VehicleService struct {
	repo repository.VehicleRepository
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(repo repository.VehicleRepository) *VehicleService {
	return &VehicleService{repo: repo}
}

const (
	maxMakeLen  = 100
	maxModelLen = 100
	maxPlateLen = 7
)

// validateInput checks the structural constraints on a vehicle payload and
// collects every violation into a single ValidationError.
func validateInput(input models.VehicleInput) error {
	fields := map[string]string{}

	switch {
	case input.Make == "":
		fields["make"] = "is required"
	case len(input.Make) > maxMakeLen:
		fields["make"] = "must be at most 100 characters"
	}

	switch {
	case input.Model == "":
		fields["model"] = "is required"
	case len(input.Model) > maxModelLen:
		fields["model"] = "must be at most 100 characters"
	}

	switch {
	case input.LicensePlate == "":
		fields["licensePlate"] = "is required"
	case len(input.LicensePlate) > maxPlateLen:
		fields["licensePlate"] = "must be at most 7 characters"
	}

	if len(fields) > 0 {
		return &models.ValidationError{Fields: fields}
	}
	return nil
}

// GetAll returns every vehicle record. Ordering follows the repository.
func (s *VehicleService) GetAll() ([]models.Vehicle, error) {
	return s.repo.GetAll()
}

// GetByID returns a single vehicle, or models.ErrNotFound when absent.
// Absence is a normal outcome, not a failure.
func (s *VehicleService) GetByID(id int64) (models.Vehicle, error) {
	return s.repo.GetByID(id)
}

// Create validates the input and persists a new vehicle. The repository
// assigns the identifier.
func (s *VehicleService) Create(input models.VehicleInput) (models.Vehicle, error) {
	if err := validateInput(input); err != nil {
		return models.Vehicle{}, err
	}

	vehicle := models.Vehicle{
		Make:         input.Make,
		Model:        input.Model,
		Year:         input.Year,
		LicensePlate: input.LicensePlate,
	}
	return s.repo.Create(vehicle)
}

// Update replaces every business field of an existing vehicle. The identifier
// never changes; an absent id yields models.ErrNotFound.
func (s *VehicleService) Update(id int64, input models.VehicleInput) (models.Vehicle, error) {
	vehicle := models.Vehicle{
		ID:           id,
		Make:         input.Make,
		Model:        input.Model,
		Year:         input.Year,
		LicensePlate: input.LicensePlate,
	}
	if err := s.repo.Update(vehicle); err != nil {
		return models.Vehicle{}, err
	}
	return vehicle, nil
}

// Delete removes a vehicle by its ID. Deleting an absent id reports false
// rather than failing, on first and on repeated calls alike.
func (s *VehicleService) Delete(id int64) (bool, error) {
	return s.repo.Delete(id)
}
