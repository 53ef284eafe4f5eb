package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/linesmerrill/dmv-records-api/api"
	"github.com/linesmerrill/dmv-records-api/config"
	"github.com/linesmerrill/dmv-records-api/records"
)

// Warrant exported for testing purposes
type Warrant struct {
	Service *records.Service
}

// CreateWarrantHandler issues an Active warrant against a character
func (v Warrant) CreateWarrantHandler(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "character_id")
	if err != nil {
		config.ErrorStatus("invalid character id", http.StatusBadRequest, w, err)
		return
	}
	var in records.WarrantInput
	if err := decodeBody(w, r, &in); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := v.Service.IssueWarrant(ctx, api.CapabilitiesFrom(r.Context()), characterID, in)
	if err != nil {
		writeError(w, err, "failed to issue warrant")
		return
	}
	created(w, id)
}

// CompleteWarrantHandler marks a warrant Completed
func (v Warrant) CompleteWarrantHandler(w http.ResponseWriter, r *http.Request) {
	warrantID, err := pathID(r, "warrant_id")
	if err != nil {
		config.ErrorStatus("invalid warrant id", http.StatusBadRequest, w, err)
		return
	}
	zap.S().Debugf("warrant_id: %v", warrantID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := v.Service.CompleteWarrant(ctx, api.CapabilitiesFrom(r.Context()), warrantID); err != nil {
		writeError(w, err, "failed to complete warrant")
		return
	}
	success(w)
}
