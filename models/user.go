package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// User holds the structure for the users table. Users are owned by the
// identity provider; this service only reads them.
type User struct {
	ID        int64     `json:"id" db:"id"`
	DiscordID string    `json:"discord_id" db:"discord_id"`
	Username  string    `json:"username" db:"username"`
	IsAdmin   bool      `json:"is_admin" db:"is_admin"`
	Roles     Roles     `json:"roles" db:"roles"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Role is a single community role granted to a user
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Roles is stored as a JSON array in the users table
type Roles []Role

// IDs returns the set of role identifiers
func (r Roles) IDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(r))
	for _, role := range r {
		ids[role.ID] = struct{}{}
	}
	return ids
}

// Scan implements sql.Scanner
func (r *Roles) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*r = Roles{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported roles column type %T", src)
	}
	if len(b) == 0 {
		*r = Roles{}
		return nil
	}
	var roles Roles
	if err := json.Unmarshal(b, &roles); err != nil {
		return fmt.Errorf("failed to decode roles: %w", err)
	}
	*r = roles
	return nil
}

// Value implements driver.Valuer
func (r Roles) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Profile is returned to the caller describing who they are and what they
// may do
type Profile struct {
	User           *User `json:"user"`
	HasLEOAccess   bool  `json:"hasLEOAccess"`
	HasJudgeAccess bool  `json:"hasJudgeAccess"`
}
