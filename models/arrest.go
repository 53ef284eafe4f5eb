package models

import "time"

// Arrest holds the structure for the civilian_arrests table. Arrests are
// append-only.
type Arrest struct {
	ID             int64     `json:"id" db:"id"`
	CharacterID    int64     `json:"character_id" db:"character_id"`
	Charges        string    `json:"charges" db:"charges"`
	Location       string    `json:"location" db:"location"`
	Notes          string    `json:"notes" db:"notes"`
	ArrestedBy     int64     `json:"arrested_by" db:"arrested_by"`
	ArrestedByName string    `json:"arrested_by_name" db:"arrested_by_name"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
