package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/linesmerrill/dmv-records-api/api"
	"github.com/linesmerrill/dmv-records-api/config"
	"github.com/linesmerrill/dmv-records-api/records"
)

// Character exported for testing purposes
type Character struct {
	Service *records.Service
}

// ListCharactersHandler returns the characters owned by the caller
func (c Character) ListCharactersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	characters, err := c.Service.ListMyCharacters(ctx, api.CapabilitiesFrom(r.Context()))
	if err != nil {
		writeError(w, err, "failed to get characters")
		return
	}
	writeJSON(w, http.StatusOK, characters)
}

// CreateCharacterHandler creates a character owned by the caller
func (c Character) CreateCharacterHandler(w http.ResponseWriter, r *http.Request) {
	var in records.CharacterInput
	if err := decodeBody(w, r, &in); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := c.Service.CreateCharacter(ctx, api.CapabilitiesFrom(r.Context()), in)
	if err != nil {
		writeError(w, err, "failed to create character")
		return
	}
	created(w, id)
}

// CharacterByIDHandler returns a character with its vehicles, citations,
// arrests and warrants
func (c Character) CharacterByIDHandler(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "character_id")
	if err != nil {
		config.ErrorStatus("invalid character id", http.StatusBadRequest, w, err)
		return
	}
	zap.S().Debugf("character_id: %v", characterID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	detail, err := c.Service.GetCharacter(ctx, api.CapabilitiesFrom(r.Context()), characterID)
	if err != nil {
		writeError(w, err, "failed to get character")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// UpdateCharacterHandler overwrites a character's details
func (c Character) UpdateCharacterHandler(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "character_id")
	if err != nil {
		config.ErrorStatus("invalid character id", http.StatusBadRequest, w, err)
		return
	}
	var in records.CharacterInput
	if err := decodeBody(w, r, &in); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.Service.UpdateCharacter(ctx, api.CapabilitiesFrom(r.Context()), characterID, in); err != nil {
		writeError(w, err, "failed to update character")
		return
	}
	success(w)
}

// SearchHandler searches characters by name or address
func (c Character) SearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	zap.S().Debugf("query: '%v'", query)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	results, err := c.Service.Search(ctx, api.CapabilitiesFrom(r.Context()), query)
	if err != nil {
		writeError(w, err, "failed to search characters")
		return
	}
	writeJSON(w, http.StatusOK, results)
}
