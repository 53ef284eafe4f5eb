package records

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/linesmerrill/dmv-records-api/access"
	"github.com/linesmerrill/dmv-records-api/databases"
	"github.com/linesmerrill/dmv-records-api/models"
)

// VehicleInput is the writable part of a vehicle
type VehicleInput struct {
	Make               string `json:"make"`
	Model              string `json:"model"`
	Color              string `json:"color"`
	Plate              string `json:"plate"`
	RegistrationStatus string `json:"registration_status"`
	InsuranceStatus    string `json:"insurance_status"`
}

func (in VehicleInput) validate() error {
	return requireFields(
		field("make", in.Make),
		field("model", in.Model),
		field("color", in.Color),
		field("plate", in.Plate),
	)
}

func (in VehicleInput) apply(v *models.Vehicle) {
	v.Make = strings.TrimSpace(in.Make)
	v.Model = strings.TrimSpace(in.Model)
	v.Color = strings.TrimSpace(in.Color)
	v.Plate = NormalizePlate(in.Plate)
	v.RegistrationStatus = orDefault(in.RegistrationStatus, v.RegistrationStatus)
	v.InsuranceStatus = orDefault(in.InsuranceStatus, v.InsuranceStatus)
}

// NormalizePlate is the canonical form plates are stored and compared in
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// AddVehicle registers a vehicle to a character. Only the owner or a judge
// may do so and the plate must not be in use.
func (s *Service) AddVehicle(ctx context.Context, caps access.Capabilities, characterID int64, in VehicleInput) (int64, error) {
	if err := requireAuthenticated(caps); err != nil {
		return 0, err
	}
	c, err := s.findCharacter(ctx, characterID)
	if err != nil {
		return 0, err
	}
	if !canEdit(caps, c.UserID) {
		return 0, forbidden("not allowed to add vehicles to this character")
	}
	if err := in.validate(); err != nil {
		return 0, err
	}

	now := s.now()
	v := &models.Vehicle{
		CharacterID:        characterID,
		RegistrationStatus: models.VehicleStatusValid,
		InsuranceStatus:    models.VehicleStatusValid,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	in.apply(v)

	if err := s.checkPlate(ctx, v.Plate, 0); err != nil {
		return 0, err
	}
	id, err := s.Vehicles.InsertOne(ctx, v)
	if err != nil {
		if errors.Is(err, databases.ErrDuplicate) {
			return 0, conflict("plate already registered", err)
		}
		return 0, fmt.Errorf("failed to add vehicle: %w", err)
	}
	zap.S().Debugw("vehicle added", "vehicle_id", id, "character_id", characterID)
	return id, nil
}

// UpdateVehicle overwrites a vehicle. Only the owner of its character or a
// judge may do so; the new plate must not belong to a different vehicle.
func (s *Service) UpdateVehicle(ctx context.Context, caps access.Capabilities, vehicleID int64, in VehicleInput) error {
	if err := requireAuthenticated(caps); err != nil {
		return err
	}
	v, c, err := s.findVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}
	if !canEdit(caps, c.UserID) {
		return forbidden("not allowed to edit this vehicle")
	}
	if err := in.validate(); err != nil {
		return err
	}

	in.apply(v)
	v.UpdatedAt = s.now()
	if err := s.checkPlate(ctx, v.Plate, v.ID); err != nil {
		return err
	}
	if err := s.Vehicles.UpdateOne(ctx, v); err != nil {
		switch {
		case errors.Is(err, databases.ErrDuplicate):
			return conflict("plate already registered", err)
		case errors.Is(err, databases.ErrNotFound):
			return notFound("vehicle not found", err)
		}
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

// DeleteVehicle removes a vehicle. Only the owner of its character or a
// judge may do so.
func (s *Service) DeleteVehicle(ctx context.Context, caps access.Capabilities, vehicleID int64) error {
	if err := requireAuthenticated(caps); err != nil {
		return err
	}
	_, c, err := s.findVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}
	if !canEdit(caps, c.UserID) {
		return forbidden("not allowed to delete this vehicle")
	}
	if err := s.Vehicles.DeleteOne(ctx, vehicleID); err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			return notFound("vehicle not found", err)
		}
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	zap.S().Debugw("vehicle deleted", "vehicle_id", vehicleID, "user_id", caps.UserID())
	return nil
}

// checkPlate fails with a conflict when plate belongs to a vehicle other
// than self. The unique index backs this up for concurrent writers.
func (s *Service) checkPlate(ctx context.Context, plate string, self int64) error {
	existing, err := s.Vehicles.FindByPlate(ctx, plate)
	switch {
	case errors.Is(err, databases.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check plate: %w", err)
	case existing.ID != self:
		return conflict("plate already registered", nil)
	}
	return nil
}

func (s *Service) findVehicle(ctx context.Context, id int64) (*models.Vehicle, *models.Character, error) {
	v, err := s.Vehicles.FindOne(ctx, id)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			return nil, nil, notFound("vehicle not found", err)
		}
		return nil, nil, fmt.Errorf("failed to get vehicle %d: %w", id, err)
	}
	c, err := s.findCharacter(ctx, v.CharacterID)
	if err != nil {
		return nil, nil, err
	}
	return v, c, nil
}
