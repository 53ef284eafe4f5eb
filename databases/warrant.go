package databases

//go generate: mockery --name WarrantDatabase

import (
	"context"
	"fmt"
	"time"

	"github.com/linesmerrill/dmv-records-api/models"
)

const warrantSelect = `SELECT w.id, w.character_id, w.charges, w.reason, w.status,
		w.issued_by, COALESCE(u.username, '') AS issued_by_name,
		w.completed_by, COALESCE(u2.username, '') AS completed_by_name,
		w.completed_at, w.created_at
	FROM civilian_warrants w
	LEFT JOIN users u ON w.issued_by = u.id
	LEFT JOIN users u2 ON w.completed_by = u2.id`

// WarrantDatabase contains the methods to use with the warrant table
type WarrantDatabase interface {
	FindOne(ctx context.Context, id int64) (*models.Warrant, error)
	// FindByCharacterID returns the warrants of a character, restricted to
	// the given status unless status is empty
	FindByCharacterID(ctx context.Context, characterID int64, status string) ([]models.Warrant, error)
	InsertOne(ctx context.Context, w *models.Warrant) (int64, error)
	// Complete moves an Active warrant to Completed. It reports false when
	// the warrant was not Active.
	Complete(ctx context.Context, id, completedBy int64, completedAt time.Time) (bool, error)
}

type warrantDatabase struct {
	db DatabaseHelper
}

// NewWarrantDatabase initializes a new instance of warrant database with the provided db connection
func NewWarrantDatabase(db DatabaseHelper) WarrantDatabase {
	return &warrantDatabase{
		db: db,
	}
}

func (c *warrantDatabase) FindOne(ctx context.Context, id int64) (*models.Warrant, error) {
	warrant := &models.Warrant{}
	query := c.db.Rebind(warrantSelect + ` WHERE w.id = ?`)
	if err := c.db.GetContext(ctx, warrant, query, id); err != nil {
		return nil, translateError(err)
	}
	return warrant, nil
}

func (c *warrantDatabase) FindByCharacterID(ctx context.Context, characterID int64, status string) ([]models.Warrant, error) {
	var warrants []models.Warrant
	query := warrantSelect + ` WHERE w.character_id = ?`
	args := []interface{}{characterID}
	if status != "" {
		query += ` AND w.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY w.created_at DESC, w.id DESC`

	if err := c.db.SelectContext(ctx, &warrants, c.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get warrants for character %d: %w", characterID, err)
	}
	return warrants, nil
}

func (c *warrantDatabase) InsertOne(ctx context.Context, w *models.Warrant) (int64, error) {
	query := c.db.Rebind(`INSERT INTO civilian_warrants (
			character_id, charges, reason, status, issued_by, created_at
		) VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)
	var id int64
	err := c.db.QueryRowxContext(ctx, query,
		w.CharacterID, w.Charges, w.Reason, w.Status, w.IssuedBy, w.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert warrant: %w", translateError(err))
	}
	return id, nil
}

func (c *warrantDatabase) Complete(ctx context.Context, id, completedBy int64, completedAt time.Time) (bool, error) {
	query := c.db.Rebind(`UPDATE civilian_warrants SET
			status = ?, completed_by = ?, completed_at = ?
		WHERE id = ? AND status = ?`)
	res, err := c.db.ExecContext(ctx, query,
		models.WarrantStatusCompleted, completedBy, completedAt, id, models.WarrantStatusActive,
	)
	if err != nil {
		return false, fmt.Errorf("failed to complete warrant %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
