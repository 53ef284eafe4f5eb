package models

import "time"

// Drivers license statuses a character may hold
const (
	DriversLicenseValid     = "Valid"
	DriversLicenseSuspended = "Suspended"
	DriversLicenseExpired   = "Expired"
)

// Firearms license statuses a character may hold
const (
	FirearmsLicenseNone      = "None"
	FirearmsLicenseSuspended = "Suspended"
	FirearmsLicenseOpenCarry = "Open Carry"
	FirearmsLicenseConcealed = "Concealed"
)

// Character holds the structure for the civilian_characters table
type Character struct {
	ID                    int64     `json:"id" db:"id"`
	UserID                int64     `json:"user_id" db:"user_id"`
	Name                  string    `json:"name" db:"name"`
	DateOfBirth           string    `json:"date_of_birth" db:"date_of_birth"`
	Address               string    `json:"address" db:"address"`
	PhoneNumber           string    `json:"phone_number" db:"phone_number"`
	Profession            string    `json:"profession" db:"profession"`
	Gender                string    `json:"gender" db:"gender"`
	Race                  string    `json:"race" db:"race"`
	HairColor             string    `json:"hair_color" db:"hair_color"`
	EyeColor              string    `json:"eye_color" db:"eye_color"`
	Height                string    `json:"height" db:"height"`
	Weight                string    `json:"weight" db:"weight"`
	Backstory             string    `json:"backstory" db:"backstory"`
	DriversLicenseStatus  string    `json:"drivers_license_status" db:"drivers_license_status"`
	FirearmsLicenseStatus string    `json:"firearms_license_status" db:"firearms_license_status"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}

// CharacterSummary is the projection of a character returned by searches
type CharacterSummary struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	DateOfBirth string `json:"date_of_birth" db:"date_of_birth"`
	Address     string `json:"address" db:"address"`
}

// CharacterDetail bundles a character with all of its records and the
// caller's computed access, so the frontend can decide which actions to offer.
type CharacterDetail struct {
	Character      *Character `json:"character"`
	Vehicles       []Vehicle  `json:"vehicles"`
	Citations      []Citation `json:"citations"`
	Arrests        []Arrest   `json:"arrests"`
	Warrants       []Warrant  `json:"warrants"`
	IsOwner        bool       `json:"isOwner"`
	HasLEOAccess   bool       `json:"hasLEOAccess"`
	HasJudgeAccess bool       `json:"hasJudgeAccess"`
}
