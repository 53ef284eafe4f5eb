// Package records implements the DMV record operations. Every operation
// takes the caller's capabilities, checks them before touching the
// store and returns a *Error for expected failures.
package records

import (
	"strings"
	"time"

	"github.com/linesmerrill/dmv-records-api/access"
	"github.com/linesmerrill/dmv-records-api/databases"
)

const (
	// SearchLimit caps the number of search results
	SearchLimit = 20
	// MinSearchLength is the shortest query sent to the store
	MinSearchLength = 2
)

// Service exposes the records operations over the table databases
type Service struct {
	Characters databases.CharacterDatabase
	Vehicles   databases.VehicleDatabase
	Citations  databases.CitationDatabase
	Arrests    databases.ArrestDatabase
	Warrants   databases.WarrantDatabase

	// Now stamps created_at, updated_at and completed_at
	Now func() time.Time
}

// New builds a Service whose tables share the given connection
func New(db databases.DatabaseHelper) *Service {
	return &Service{
		Characters: databases.NewCharacterDatabase(db),
		Vehicles:   databases.NewVehicleDatabase(db),
		Citations:  databases.NewCitationDatabase(db),
		Arrests:    databases.NewArrestDatabase(db),
		Warrants:   databases.NewWarrantDatabase(db),
		Now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}

func requireAuthenticated(caps access.Capabilities) error {
	if caps == nil || !caps.Authenticated() {
		return ErrUnauthenticated
	}
	return nil
}

// canEdit is the owner-or-judge rule shared by character and vehicle writes
func canEdit(caps access.Capabilities, ownerID int64) bool {
	return caps.IsOwner(ownerID) || caps.HasJudge()
}

func isLEOOrJudge(caps access.Capabilities) bool {
	return caps.HasLEO() || caps.HasJudge()
}

// missing returns the names of the blank fields, in order
func missing(fields ...[2]string) []string {
	var names []string
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			names = append(names, f[0])
		}
	}
	return names
}

func requireFields(fields ...[2]string) error {
	if names := missing(fields...); len(names) > 0 {
		return validationError("missing required fields: %s", strings.Join(names, ", "))
	}
	return nil
}

func field(name, value string) [2]string {
	return [2]string{name, value}
}

func orDefault(value, def string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return def
}
