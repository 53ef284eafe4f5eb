package models

import "time"

// Warrant statuses. A warrant moves from Active to Completed once and never back.
const (
	WarrantStatusActive    = "Active"
	WarrantStatusCompleted = "Completed"
)

// Warrant holds the structure for the civilian_warrants table
type Warrant struct {
	ID              int64      `json:"id" db:"id"`
	CharacterID     int64      `json:"character_id" db:"character_id"`
	Charges         string     `json:"charges" db:"charges"`
	Reason          string     `json:"reason" db:"reason"`
	Status          string     `json:"status" db:"status"`
	IssuedBy        int64      `json:"issued_by" db:"issued_by"`
	IssuedByName    string     `json:"issued_by_name" db:"issued_by_name"`
	CompletedBy     *int64     `json:"completed_by" db:"completed_by"`
	CompletedByName string     `json:"completed_by_name" db:"completed_by_name"`
	CompletedAt     *time.Time `json:"completed_at" db:"completed_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}
