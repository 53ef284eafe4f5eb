package databases

import "strings"

// schema is written once with placeholders for the column types that differ
// between postgres and sqlite.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id {{id}},
		discord_id TEXT NOT NULL UNIQUE,
		username TEXT NOT NULL DEFAULT '',
		is_admin {{bool}} NOT NULL DEFAULT FALSE,
		roles TEXT NOT NULL DEFAULT '[]',
		created_at {{time}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS civilian_characters (
		id {{id}},
		user_id BIGINT NOT NULL,
		name TEXT NOT NULL,
		name_folded TEXT NOT NULL DEFAULT '',
		date_of_birth TEXT NOT NULL,
		address TEXT NOT NULL,
		address_folded TEXT NOT NULL DEFAULT '',
		phone_number TEXT NOT NULL DEFAULT '',
		profession TEXT NOT NULL,
		gender TEXT NOT NULL,
		race TEXT NOT NULL,
		hair_color TEXT NOT NULL DEFAULT '',
		eye_color TEXT NOT NULL DEFAULT '',
		height TEXT NOT NULL DEFAULT '',
		weight TEXT NOT NULL DEFAULT '',
		backstory TEXT NOT NULL DEFAULT '',
		drivers_license_status TEXT NOT NULL DEFAULT 'Valid',
		firearms_license_status TEXT NOT NULL DEFAULT 'None',
		created_at {{time}} NOT NULL,
		updated_at {{time}} NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_civilian_characters_user_id ON civilian_characters (user_id)`,
	`CREATE TABLE IF NOT EXISTS civilian_vehicles (
		id {{id}},
		character_id BIGINT NOT NULL REFERENCES civilian_characters (id),
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		color TEXT NOT NULL,
		plate TEXT NOT NULL,
		registration_status TEXT NOT NULL DEFAULT 'Valid',
		insurance_status TEXT NOT NULL DEFAULT 'Valid',
		created_at {{time}} NOT NULL,
		updated_at {{time}} NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_civilian_vehicles_plate ON civilian_vehicles (plate)`,
	`CREATE INDEX IF NOT EXISTS idx_civilian_vehicles_character_id ON civilian_vehicles (character_id)`,
	`CREATE TABLE IF NOT EXISTS civilian_citations (
		id {{id}},
		character_id BIGINT NOT NULL REFERENCES civilian_characters (id),
		violation TEXT NOT NULL,
		fine_amount {{decimal}} NOT NULL CHECK (CAST(fine_amount AS REAL) >= 0),
		notes TEXT NOT NULL DEFAULT '',
		issued_by BIGINT NOT NULL,
		created_at {{time}} NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_civilian_citations_character_id ON civilian_citations (character_id)`,
	`CREATE TABLE IF NOT EXISTS civilian_arrests (
		id {{id}},
		character_id BIGINT NOT NULL REFERENCES civilian_characters (id),
		charges TEXT NOT NULL,
		location TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		arrested_by BIGINT NOT NULL,
		created_at {{time}} NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_civilian_arrests_character_id ON civilian_arrests (character_id)`,
	`CREATE TABLE IF NOT EXISTS civilian_warrants (
		id {{id}},
		character_id BIGINT NOT NULL REFERENCES civilian_characters (id),
		charges TEXT NOT NULL,
		reason TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Completed')),
		issued_by BIGINT NOT NULL,
		completed_by BIGINT,
		completed_at {{time}},
		created_at {{time}} NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_civilian_warrants_character_id ON civilian_warrants (character_id)`,
}

var columnTypes = map[string]*strings.Replacer{
	DriverPostgres: strings.NewReplacer(
		"{{id}}", "BIGSERIAL PRIMARY KEY",
		"{{bool}}", "BOOLEAN",
		"{{time}}", "TIMESTAMPTZ",
		"{{decimal}}", "NUMERIC(12, 2)",
	),
	DriverSQLite: strings.NewReplacer(
		"{{id}}", "INTEGER PRIMARY KEY AUTOINCREMENT",
		"{{bool}}", "BOOLEAN",
		"{{time}}", "TIMESTAMP",
		// TEXT keeps the decimal exactly as written
		"{{decimal}}", "TEXT",
	),
}

func schemaFor(driver string) []string {
	r := columnTypes[driver]
	stmts := make([]string, len(schema))
	for i, stmt := range schema {
		stmts[i] = r.Replace(stmt)
	}
	return stmts
}
