package handlers

import (
	"net/http"

	"github.com/linesmerrill/dmv-records-api/api"
	"github.com/linesmerrill/dmv-records-api/config"
	"github.com/linesmerrill/dmv-records-api/records"
)

// Vehicle exported for testing purposes
type Vehicle struct {
	Service *records.Service
}

// AddVehicleHandler registers a vehicle to a character
func (v Vehicle) AddVehicleHandler(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "character_id")
	if err != nil {
		config.ErrorStatus("invalid character id", http.StatusBadRequest, w, err)
		return
	}
	var in records.VehicleInput
	if err := decodeBody(w, r, &in); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := v.Service.AddVehicle(ctx, api.CapabilitiesFrom(r.Context()), characterID, in)
	if err != nil {
		writeError(w, err, "failed to add vehicle")
		return
	}
	created(w, id)
}

// UpdateVehicleHandler overwrites a vehicle
func (v Vehicle) UpdateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "vehicle_id")
	if err != nil {
		config.ErrorStatus("invalid vehicle id", http.StatusBadRequest, w, err)
		return
	}
	var in records.VehicleInput
	if err := decodeBody(w, r, &in); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := v.Service.UpdateVehicle(ctx, api.CapabilitiesFrom(r.Context()), vehicleID, in); err != nil {
		writeError(w, err, "failed to update vehicle")
		return
	}
	success(w)
}

// DeleteVehicleHandler deletes a vehicle
func (v Vehicle) DeleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "vehicle_id")
	if err != nil {
		config.ErrorStatus("invalid vehicle id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := v.Service.DeleteVehicle(ctx, api.CapabilitiesFrom(r.Context()), vehicleID); err != nil {
		writeError(w, err, "failed to delete vehicle")
		return
	}
	success(w)
}
