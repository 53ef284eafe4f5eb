package databases

//go generate: mockery --name UserDatabase

import (
	"context"
	"fmt"

	"github.com/linesmerrill/dmv-records-api/models"
)

// UserDatabase contains the methods to use with the users table
type UserDatabase interface {
	FindOne(ctx context.Context, id int64) (*models.User, error)
	InsertOne(ctx context.Context, u *models.User) (int64, error)
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

func (c *userDatabase) FindOne(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := c.db.Rebind(`SELECT id, discord_id, username, is_admin, roles, created_at
		FROM users WHERE id = ?`)
	if err := c.db.GetContext(ctx, user, query, id); err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

// InsertOne registers a user row. Users normally arrive through the identity
// provider; this is used when seeding development and test databases.
func (c *userDatabase) InsertOne(ctx context.Context, u *models.User) (int64, error) {
	query := c.db.Rebind(`INSERT INTO users (discord_id, username, is_admin, roles, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`)
	var id int64
	err := c.db.QueryRowxContext(ctx, query, u.DiscordID, u.Username, u.IsAdmin, u.Roles, u.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", translateError(err))
	}
	return id, nil
}
