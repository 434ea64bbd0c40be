package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/isdelr/vehicle-registry-be/internal/models"
	"github.com/isdelr/vehicle-registry-be/internal/services"
)

// VehicleHandler handles HTTP requests for vehicle records.
type VehicleHandler struct {
	service services.VehicleServiceProvider
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(service services.VehicleServiceProvider) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// vehicleID parses the {id} URL parameter. The vehicle namespace is numeric,
// so a non-numeric id can never name a record.
func vehicleID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// GetAll handles the request to get all vehicles.
func (h *VehicleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve vehicles")
		http.Error(w, "Failed to retrieve vehicles", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicles)
}

// Get handles the request to get a single vehicle by its ID.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := vehicleID(r)
	if err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	vehicle, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("vehicle_id", id).Msg("Failed to retrieve vehicle")
		http.Error(w, "Failed to retrieve vehicle", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicle)
}

// Create handles the request to register a new vehicle.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.VehicleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	vehicle, err := h.service.Create(input)
	if err != nil {
		if ve, ok := models.AsValidationError(err); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "Invalid vehicle data",
				"fields":  ve.Fields,
			})
			return
		}
		log.Error().Err(err).Msg("Failed to create vehicle")
		http.Error(w, "Failed to create vehicle", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", fmt.Sprintf("/vehicles/%d", vehicle.ID))
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(vehicle)
}

// Update handles the request to replace an existing vehicle's fields.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := vehicleID(r)
	if err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	var input models.VehicleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	vehicle, err := h.service.Update(id, input)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("vehicle_id", id).Msg("Failed to update vehicle")
		http.Error(w, "Failed to update vehicle", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicle)
}

// Delete handles the request to remove a vehicle. Deletion is permanent.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := vehicleID(r)
	if err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	deleted, err := h.service.Delete(id)
	if err != nil {
		log.Error().Err(err).Int64("vehicle_id", id).Msg("Failed to delete vehicle")
		http.Error(w, "Failed to delete vehicle", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
