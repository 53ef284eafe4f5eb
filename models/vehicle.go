package models

import "time"

// Registration and insurance statuses default to Valid
const (
	VehicleStatusValid = "Valid"
)

// Vehicle holds the structure for the civilian_vehicles table
type Vehicle struct {
	ID                 int64     `json:"id" db:"id"`
	CharacterID        int64     `json:"character_id" db:"character_id"`
	Make               string    `json:"make" db:"make"`
	Model              string    `json:"model" db:"model"`
	Color              string    `json:"color" db:"color"`
	Plate              string    `json:"plate" db:"plate"`
	RegistrationStatus string    `json:"registration_status" db:"registration_status"`
	InsuranceStatus    string    `json:"insurance_status" db:"insurance_status"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
