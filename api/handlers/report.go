package handlers

import (
	"net/http"

	"github.com/linesmerrill/dmv-records-api/api"
	"github.com/linesmerrill/dmv-records-api/config"
	"github.com/linesmerrill/dmv-records-api/records"
)

// Report handles the append-only citation and arrest records
type Report struct {
	Service *records.Service
}

// CreateCitationHandler issues a citation against a character
func (p Report) CreateCitationHandler(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "character_id")
	if err != nil {
		config.ErrorStatus("invalid character id", http.StatusBadRequest, w, err)
		return
	}
	var in records.CitationInput
	if err := decodeBody(w, r, &in); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := p.Service.IssueCitation(ctx, api.CapabilitiesFrom(r.Context()), characterID, in)
	if err != nil {
		writeError(w, err, "failed to issue citation")
		return
	}
	created(w, id)
}

// CreateArrestHandler files an arrest report against a character
func (p Report) CreateArrestHandler(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "character_id")
	if err != nil {
		config.ErrorStatus("invalid character id", http.StatusBadRequest, w, err)
		return
	}
	var in records.ArrestInput
	if err := decodeBody(w, r, &in); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := p.Service.FileArrest(ctx, api.CapabilitiesFrom(r.Context()), characterID, in)
	if err != nil {
		writeError(w, err, "failed to file arrest")
		return
	}
	created(w, id)
}
