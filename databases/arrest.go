package databases

//go generate: mockery --name ArrestDatabase

import (
	"context"
	"fmt"

	"github.com/linesmerrill/dmv-records-api/models"
)

// ArrestDatabase contains the methods to use with the arrest table.
// Arrests are append-only so there is no update or delete.
type ArrestDatabase interface {
	FindByCharacterID(ctx context.Context, characterID int64) ([]models.Arrest, error)
	InsertOne(ctx context.Context, a *models.Arrest) (int64, error)
}

type arrestDatabase struct {
	db DatabaseHelper
}

// NewArrestDatabase initializes a new instance of arrest database with the provided db connection
func NewArrestDatabase(db DatabaseHelper) ArrestDatabase {
	return &arrestDatabase{
		db: db,
	}
}

func (c *arrestDatabase) FindByCharacterID(ctx context.Context, characterID int64) ([]models.Arrest, error) {
	var arrests []models.Arrest
	query := c.db.Rebind(`SELECT a.id, a.character_id, a.charges, a.location, a.notes,
			a.arrested_by, COALESCE(u.username, '') AS arrested_by_name, a.created_at
		FROM civilian_arrests a
		LEFT JOIN users u ON a.arrested_by = u.id
		WHERE a.character_id = ?
		ORDER BY a.created_at DESC, a.id DESC`)
	if err := c.db.SelectContext(ctx, &arrests, query, characterID); err != nil {
		return nil, fmt.Errorf("failed to get arrests for character %d: %w", characterID, err)
	}
	return arrests, nil
}

func (c *arrestDatabase) InsertOne(ctx context.Context, a *models.Arrest) (int64, error) {
	query := c.db.Rebind(`INSERT INTO civilian_arrests (
			character_id, charges, location, notes, arrested_by, created_at
		) VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)
	var id int64
	err := c.db.QueryRowxContext(ctx, query,
		a.CharacterID, a.Charges, a.Location, a.Notes, a.ArrestedBy, a.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert arrest: %w", translateError(err))
	}
	return id, nil
}
