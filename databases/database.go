package databases

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/linesmerrill/dmv-records-api/config"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

var (
	// ErrNotFound is returned when a lookup matches no row
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint
	ErrDuplicate = errors.New("duplicate record")
)

// DatabaseHelper contains the query methods every table database is built on.
// *sqlx.DB satisfies it.
type DatabaseHelper interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

// Client owns the connection pool. It is opened once at process start and
// closed on shutdown.
type Client struct {
	*sqlx.DB
	driver string
}

// NewClient uses the values from the config and returns a database client.
// No connection is made until Connect is called.
func NewClient(conf *config.Config) (*Client, error) {
	driver := conf.DatabaseDriver
	if driver == "" {
		driver = DriverPostgres
	}
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	dsn := conf.DatabaseURL
	if dsn == "" && driver == DriverSQLite {
		dsn = "file:dmv.db?_foreign_keys=1"
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// sqlite serialises writers; a single connection avoids "database is locked"
		db.SetMaxOpenConns(1)
	} else if conf.MaxOpenConns > 0 {
		db.SetMaxOpenConns(conf.MaxOpenConns)
	}

	return &Client{DB: db, driver: driver}, nil
}

// Driver returns the name of the sql driver in use
func (c *Client) Driver() string {
	return c.driver
}

// Connect verifies the connection and applies the schema
func (c *Client) Connect(ctx context.Context) error {
	if err := c.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", c.driver, err)
	}
	if err := c.Migrate(ctx); err != nil {
		return err
	}
	zap.S().Infow("database schema is up to date", "driver", c.driver)
	return nil
}

// Migrate creates the tables and indexes when they do not exist yet
func (c *Client) Migrate(ctx context.Context) error {
	for _, stmt := range schemaFor(c.driver) {
		if _, err := c.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// translateError maps driver errors onto the package sentinel errors
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("%w: %s", ErrDuplicate, sqliteErr.Error())
	}
	return err
}

// likePattern builds a case-insensitive substring pattern, escaping the LIKE
// wildcards contained in the user input.
func likePattern(query string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(fold(query)) + "%"
}

// requireAffected turns an update or delete that touched no row into ErrNotFound
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
