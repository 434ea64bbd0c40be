package models

// Vehicle represents a single registered vehicle.
type Vehicle struct {
	ID           int64  `json:"id"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"licensePlate"`
}

// VehicleInput is the payload for creating or updating a vehicle. The
// identifier is never part of the input; the repository assigns it on create
// and it is immutable afterwards.
type VehicleInput struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"licensePlate"`
}
