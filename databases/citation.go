package databases

//go generate: mockery --name CitationDatabase

import (
	"context"
	"fmt"

	"github.com/linesmerrill/dmv-records-api/models"
)

// CitationDatabase contains the methods to use with the citation table.
// Citations are append-only so there is no update or delete.
type CitationDatabase interface {
	FindByCharacterID(ctx context.Context, characterID int64) ([]models.Citation, error)
	InsertOne(ctx context.Context, c *models.Citation) (int64, error)
}

type citationDatabase struct {
	db DatabaseHelper
}

// NewCitationDatabase initializes a new instance of citation database with the provided db connection
func NewCitationDatabase(db DatabaseHelper) CitationDatabase {
	return &citationDatabase{
		db: db,
	}
}

func (c *citationDatabase) FindByCharacterID(ctx context.Context, characterID int64) ([]models.Citation, error) {
	var citations []models.Citation
	query := c.db.Rebind(`SELECT c.id, c.character_id, c.violation, c.fine_amount, c.notes,
			c.issued_by, COALESCE(u.username, '') AS issued_by_name, c.created_at
		FROM civilian_citations c
		LEFT JOIN users u ON c.issued_by = u.id
		WHERE c.character_id = ?
		ORDER BY c.created_at DESC, c.id DESC`)
	if err := c.db.SelectContext(ctx, &citations, query, characterID); err != nil {
		return nil, fmt.Errorf("failed to get citations for character %d: %w", characterID, err)
	}
	return citations, nil
}

func (c *citationDatabase) InsertOne(ctx context.Context, ct *models.Citation) (int64, error) {
	query := c.db.Rebind(`INSERT INTO civilian_citations (
			character_id, violation, fine_amount, notes, issued_by, created_at
		) VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)
	var id int64
	err := c.db.QueryRowxContext(ctx, query,
		ct.CharacterID, ct.Violation, ct.FineAmount, ct.Notes, ct.IssuedBy, ct.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert citation: %w", translateError(err))
	}
	return id, nil
}
