// Package access holds the role predicates that gate every records
// operation. The predicates are pure: they only look at the authenticated
// user, the configured role identifiers and the target's owner.
package access

import "github.com/linesmerrill/dmv-records-api/models"

// Roles are the configured role identifiers that grant LEO and judge access
type Roles struct {
	LEORoleID   string
	JudgeRoleID string
}

// IsAdmin reports whether the user carries the admin flag
func IsAdmin(u *models.User) bool {
	return u != nil && u.IsAdmin
}

// HasLEOAccess reports whether the user is an admin or holds the LEO role
func HasLEOAccess(u *models.User, roles Roles) bool {
	return IsAdmin(u) || hasRole(u, roles.LEORoleID)
}

// HasJudgeAccess reports whether the user is an admin or holds the judge role
func HasJudgeAccess(u *models.User, roles Roles) bool {
	return IsAdmin(u) || hasRole(u, roles.JudgeRoleID)
}

// IsOwner reports whether the character belongs to the user
func IsOwner(u *models.User, c *models.Character) bool {
	if u == nil || c == nil {
		return false
	}
	return c.UserID == u.ID
}

func hasRole(u *models.User, roleID string) bool {
	if u == nil || roleID == "" {
		return false
	}
	_, ok := u.Roles.IDs()[roleID]
	return ok
}

// Capabilities is what a caller may do, computed once per request and handed
// to every records operation.
type Capabilities interface {
	// Authenticated is false for an absent user
	Authenticated() bool
	UserID() int64
	IsOwner(ownerID int64) bool
	HasLEO() bool
	HasJudge() bool
}

type principal struct {
	user  *models.User
	leo   bool
	judge bool
}

// For computes the capabilities of u. A nil user yields capabilities for
// which every check is false.
func For(u *models.User, roles Roles) Capabilities {
	return principal{
		user:  u,
		leo:   HasLEOAccess(u, roles),
		judge: HasJudgeAccess(u, roles),
	}
}

func (p principal) Authenticated() bool { return p.user != nil }

func (p principal) UserID() int64 {
	if p.user == nil {
		return 0
	}
	return p.user.ID
}

func (p principal) IsOwner(ownerID int64) bool {
	return p.user != nil && p.user.ID == ownerID
}

func (p principal) HasLEO() bool { return p.leo }
func (p principal) HasJudge() bool { return p.judge }
