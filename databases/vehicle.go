package databases

//go generate: mockery --name VehicleDatabase

import (
	"context"
	"fmt"

	"github.com/linesmerrill/dmv-records-api/models"
)

const vehicleColumns = `id, character_id, make, model, color, plate,
	registration_status, insurance_status, created_at, updated_at`

// VehicleDatabase contains the methods to use with the vehicle table
type VehicleDatabase interface {
	FindOne(ctx context.Context, id int64) (*models.Vehicle, error)
	FindByPlate(ctx context.Context, plate string) (*models.Vehicle, error)
	FindByCharacterID(ctx context.Context, characterID int64) ([]models.Vehicle, error)
	InsertOne(ctx context.Context, v *models.Vehicle) (int64, error)
	UpdateOne(ctx context.Context, v *models.Vehicle) error
	DeleteOne(ctx context.Context, id int64) error
}

type vehicleDatabase struct {
	db DatabaseHelper
}

// NewVehicleDatabase initializes a new instance of vehicle database with the provided db connection
func NewVehicleDatabase(db DatabaseHelper) VehicleDatabase {
	return &vehicleDatabase{
		db: db,
	}
}

func (c *vehicleDatabase) FindOne(ctx context.Context, id int64) (*models.Vehicle, error) {
	vehicle := &models.Vehicle{}
	query := c.db.Rebind(`SELECT ` + vehicleColumns + ` FROM civilian_vehicles WHERE id = ?`)
	if err := c.db.GetContext(ctx, vehicle, query, id); err != nil {
		return nil, translateError(err)
	}
	return vehicle, nil
}

func (c *vehicleDatabase) FindByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	vehicle := &models.Vehicle{}
	query := c.db.Rebind(`SELECT ` + vehicleColumns + ` FROM civilian_vehicles WHERE plate = ?`)
	if err := c.db.GetContext(ctx, vehicle, query, plate); err != nil {
		return nil, translateError(err)
	}
	return vehicle, nil
}

func (c *vehicleDatabase) FindByCharacterID(ctx context.Context, characterID int64) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	query := c.db.Rebind(`SELECT ` + vehicleColumns + ` FROM civilian_vehicles
		WHERE character_id = ?
		ORDER BY created_at DESC, id DESC`)
	if err := c.db.SelectContext(ctx, &vehicles, query, characterID); err != nil {
		return nil, fmt.Errorf("failed to get vehicles for character %d: %w", characterID, err)
	}
	return vehicles, nil
}

func (c *vehicleDatabase) InsertOne(ctx context.Context, v *models.Vehicle) (int64, error) {
	query := c.db.Rebind(`INSERT INTO civilian_vehicles (
			character_id, make, model, color, plate,
			registration_status, insurance_status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)
	var id int64
	err := c.db.QueryRowxContext(ctx, query,
		v.CharacterID, v.Make, v.Model, v.Color, v.Plate,
		v.RegistrationStatus, v.InsuranceStatus, v.CreatedAt, v.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert vehicle: %w", translateError(err))
	}
	return id, nil
}

func (c *vehicleDatabase) UpdateOne(ctx context.Context, v *models.Vehicle) error {
	query := c.db.Rebind(`UPDATE civilian_vehicles SET
			make = ?, model = ?, color = ?, plate = ?,
			registration_status = ?, insurance_status = ?, updated_at = ?
		WHERE id = ?`)
	res, err := c.db.ExecContext(ctx, query,
		v.Make, v.Model, v.Color, v.Plate,
		v.RegistrationStatus, v.InsuranceStatus, v.UpdatedAt, v.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle %d: %w", v.ID, translateError(err))
	}
	return requireAffected(res)
}

func (c *vehicleDatabase) DeleteOne(ctx context.Context, id int64) error {
	query := c.db.Rebind(`DELETE FROM civilian_vehicles WHERE id = ?`)
	res, err := c.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle %d: %w", id, err)
	}
	return requireAffected(res)
}
