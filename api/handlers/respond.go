package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/linesmerrill/dmv-records-api/config"
	"github.com/linesmerrill/dmv-records-api/models"
	"github.com/linesmerrill/dmv-records-api/records"
)

// maxBodyBytes caps the size of a JSON request body
const maxBodyBytes = 1 << 20

// writeJSON marshals v and writes it with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// writeError maps a records error kind onto its status. Anything else is an
// internal failure whose detail is only logged.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var rerr *records.Error
	if !errors.As(err, &rerr) {
		config.ErrorStatus(fallback, http.StatusInternalServerError, w, err)
		return
	}
	status := http.StatusInternalServerError
	switch rerr.Kind {
	case records.KindValidation:
		status = http.StatusBadRequest
	case records.KindUnauthenticated:
		status = http.StatusUnauthorized
	case records.KindForbidden:
		status = http.StatusForbidden
	case records.KindNotFound:
		status = http.StatusNotFound
	case records.KindConflict:
		status = http.StatusConflict
	}
	config.ErrorStatus(rerr.Message, status, w, err)
}

// pathID parses a numeric route variable
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// decodeBody reads a JSON request body into v
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

func created(w http.ResponseWriter, id int64) {
	writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true, ID: id})
}

func success(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}
