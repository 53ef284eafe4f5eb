package models

import "time"

// Citation holds the structure for the civilian_citations table. Citations
// are append-only.
type Citation struct {
	ID           int64     `json:"id" db:"id"`
	CharacterID  int64     `json:"character_id" db:"character_id"`
	Violation    string    `json:"violation" db:"violation"`
	FineAmount   string    `json:"fine_amount" db:"fine_amount"`
	Notes        string    `json:"notes" db:"notes"`
	IssuedBy     int64     `json:"issued_by" db:"issued_by"`
	IssuedByName string    `json:"issued_by_name" db:"issued_by_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
