package handlers

import (
	"net/http"
	"strings"

	"github.com/linesmerrill/dmv-records-api/api"
	"github.com/linesmerrill/dmv-records-api/config"
	"github.com/linesmerrill/dmv-records-api/models"
)

// User serves the caller's own profile and token
type User struct {
	Auth *api.Authenticator
}

// MeHandler returns the authenticated user and what they may do
func (u User) MeHandler(w http.ResponseWriter, r *http.Request) {
	user := api.UserFrom(r.Context())
	if user == nil {
		config.ErrorStatus("unauthorized", http.StatusUnauthorized, w, nil)
		return
	}
	caps := api.CapabilitiesFrom(r.Context())
	writeJSON(w, http.StatusOK, models.Profile{
		User:           user,
		HasLEOAccess:   caps.HasLEO(),
		HasJudgeAccess: caps.HasJudge(),
	})
}

// RevokeTokenHandler drops the caller's token from the cache so later
// requests carrying it are verified again
func (u User) RevokeTokenHandler(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	if token == "" {
		config.ErrorStatus("missing bearer token", http.StatusBadRequest, w, nil)
		return
	}
	if err := u.Auth.Revoke(r, token); err != nil {
		config.ErrorStatus("failed to revoke token", http.StatusInternalServerError, w, err)
		return
	}
	success(w)
}
