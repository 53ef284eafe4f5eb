package databases

//go generate: mockery --name CharacterDatabase

import (
	"context"
	"fmt"
	"strings"

	"github.com/linesmerrill/dmv-records-api/models"
)

const characterColumns = `id, user_id, name, date_of_birth, address, phone_number, profession,
	gender, race, hair_color, eye_color, height, weight, backstory,
	drivers_license_status, firearms_license_status, created_at, updated_at`

// CharacterDatabase contains the methods to use with the character table
type CharacterDatabase interface {
	FindOne(ctx context.Context, id int64) (*models.Character, error)
	FindByUserID(ctx context.Context, userID int64) ([]models.Character, error)
	Search(ctx context.Context, query string, limit int) ([]models.CharacterSummary, error)
	InsertOne(ctx context.Context, c *models.Character) (int64, error)
	UpdateOne(ctx context.Context, c *models.Character) error
}

type characterDatabase struct {
	db DatabaseHelper
}

// NewCharacterDatabase initializes a new instance of character database with the provided db connection
func NewCharacterDatabase(db DatabaseHelper) CharacterDatabase {
	return &characterDatabase{
		db: db,
	}
}

func (c *characterDatabase) FindOne(ctx context.Context, id int64) (*models.Character, error) {
	character := &models.Character{}
	query := c.db.Rebind(`SELECT ` + characterColumns + ` FROM civilian_characters WHERE id = ?`)
	if err := c.db.GetContext(ctx, character, query, id); err != nil {
		return nil, translateError(err)
	}
	return character, nil
}

func (c *characterDatabase) FindByUserID(ctx context.Context, userID int64) ([]models.Character, error) {
	var characters []models.Character
	query := c.db.Rebind(`SELECT ` + characterColumns + ` FROM civilian_characters
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`)
	if err := c.db.SelectContext(ctx, &characters, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get characters for user %d: %w", userID, err)
	}
	return characters, nil
}

// Search matches the query as a case-insensitive substring of the name or
// the address. It compares against the folded columns since sqlite's LOWER
// only folds ASCII.
func (c *characterDatabase) Search(ctx context.Context, query string, limit int) ([]models.CharacterSummary, error) {
	var summaries []models.CharacterSummary
	pattern := likePattern(query)
	q := c.db.Rebind(`SELECT id, name, date_of_birth, address
		FROM civilian_characters
		WHERE name_folded LIKE ? ESCAPE '\' OR address_folded LIKE ? ESCAPE '\'
		ORDER BY name, id
		LIMIT ?`)
	if err := c.db.SelectContext(ctx, &summaries, q, pattern, pattern, limit); err != nil {
		return nil, fmt.Errorf("failed to search characters: %w", err)
	}
	return summaries, nil
}

func (c *characterDatabase) InsertOne(ctx context.Context, ch *models.Character) (int64, error) {
	query := c.db.Rebind(`INSERT INTO civilian_characters (
			user_id, name, name_folded, date_of_birth, address, address_folded,
			phone_number, profession, gender, race, hair_color, eye_color, height,
			weight, backstory, drivers_license_status, firearms_license_status,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)
	var id int64
	err := c.db.QueryRowxContext(ctx, query,
		ch.UserID, ch.Name, fold(ch.Name), ch.DateOfBirth, ch.Address, fold(ch.Address),
		ch.PhoneNumber, ch.Profession, ch.Gender, ch.Race, ch.HairColor, ch.EyeColor, ch.Height,
		ch.Weight, ch.Backstory, ch.DriversLicenseStatus, ch.FirearmsLicenseStatus,
		ch.CreatedAt, ch.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert character: %w", translateError(err))
	}
	return id, nil
}

func (c *characterDatabase) UpdateOne(ctx context.Context, ch *models.Character) error {
	query := c.db.Rebind(`UPDATE civilian_characters SET
			name = ?, name_folded = ?, date_of_birth = ?, address = ?, address_folded = ?,
			phone_number = ?, profession = ?,
			gender = ?, race = ?, hair_color = ?, eye_color = ?, height = ?, weight = ?,
			backstory = ?, drivers_license_status = ?, firearms_license_status = ?,
			updated_at = ?
		WHERE id = ?`)
	res, err := c.db.ExecContext(ctx, query,
		ch.Name, fold(ch.Name), ch.DateOfBirth, ch.Address, fold(ch.Address), ch.PhoneNumber, ch.Profession,
		ch.Gender, ch.Race, ch.HairColor, ch.EyeColor, ch.Height, ch.Weight,
		ch.Backstory, ch.DriversLicenseStatus, ch.FirearmsLicenseStatus,
		ch.UpdatedAt, ch.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update character %d: %w", ch.ID, translateError(err))
	}
	return requireAffected(res)
}

// fold lowercases with full unicode rules for the search columns
func fold(s string) string {
	return strings.ToLower(s)
}
