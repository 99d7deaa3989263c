package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"petclinic/internal/database"
)

type migrationStep struct {
	Name string
	SQL  string
}

var postgresSteps = []migrationStep{
	{
		Name: "create_table_vets",
		SQL: `CREATE TABLE IF NOT EXISTS vets (
  id         INTEGER     GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  first_name VARCHAR(30),
  last_name  VARCHAR(30)
);`,
	},
	{
		Name: "create_table_specialties",
		SQL: `CREATE TABLE IF NOT EXISTS specialties (
  id   INTEGER     GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  name VARCHAR(80)
);`,
	},
	{
		Name: "create_table_vet_specialties",
		SQL: `CREATE TABLE IF NOT EXISTS vet_specialties (
  vet_id       INTEGER NOT NULL REFERENCES vets (id),
  specialty_id INTEGER NOT NULL REFERENCES specialties (id),
  PRIMARY KEY (vet_id, specialty_id)
);`,
	},
	{
		Name: "create_table_types",
		SQL: `CREATE TABLE IF NOT EXISTS types (
  id   INTEGER     GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  name VARCHAR(80)
);`,
	},
	{
		Name: "create_table_owners",
		SQL: `CREATE TABLE IF NOT EXISTS owners (
  id         INTEGER      GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  first_name VARCHAR(30),
  last_name  VARCHAR(30),
  address    VARCHAR(255),
  city       VARCHAR(80),
  telephone  VARCHAR(20)
);`,
	},
	{
		Name: "create_table_pets",
		SQL: `CREATE TABLE IF NOT EXISTS pets (
  id         INTEGER     GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  name       VARCHAR(30),
  birth_date DATE,
  type_id    INTEGER     NOT NULL REFERENCES types (id),
  owner_id   INTEGER     REFERENCES owners (id)
);`,
	},
	{
		Name: "create_table_visits",
		SQL: `CREATE TABLE IF NOT EXISTS visits (
  id          INTEGER      GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  pet_id      INTEGER      REFERENCES pets (id),
  visit_date  DATE,
  description VARCHAR(255)
);`,
	},
}

var sqliteSteps = []migrationStep{
	{
		Name: "create_table_vets",
		SQL: `CREATE TABLE IF NOT EXISTS vets (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  first_name VARCHAR(30),
  last_name  VARCHAR(30)
);`,
	},
	{
		Name: "create_table_specialties",
		SQL: `CREATE TABLE IF NOT EXISTS specialties (
  id   INTEGER PRIMARY KEY AUTOINCREMENT,
  name VARCHAR(80)
);`,
	},
	{
		Name: "create_table_vet_specialties",
		SQL: `CREATE TABLE IF NOT EXISTS vet_specialties (
  vet_id       INTEGER NOT NULL REFERENCES vets (id),
  specialty_id INTEGER NOT NULL REFERENCES specialties (id),
  PRIMARY KEY (vet_id, specialty_id)
);`,
	},
	{
		Name: "create_table_types",
		SQL: `CREATE TABLE IF NOT EXISTS types (
  id   INTEGER PRIMARY KEY AUTOINCREMENT,
  name VARCHAR(80)
);`,
	},
	{
		Name: "create_table_owners",
		SQL: `CREATE TABLE IF NOT EXISTS owners (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  first_name VARCHAR(30),
  last_name  VARCHAR(30),
  address    VARCHAR(255),
  city       VARCHAR(80),
  telephone  VARCHAR(20)
);`,
	},
	{
		Name: "create_table_pets",
		SQL: `CREATE TABLE IF NOT EXISTS pets (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  name       VARCHAR(30),
  birth_date DATE,
  type_id    INTEGER NOT NULL REFERENCES types (id),
  owner_id   INTEGER REFERENCES owners (id)
);`,
	},
	{
		Name: "create_table_visits",
		SQL: `CREATE TABLE IF NOT EXISTS visits (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  pet_id      INTEGER REFERENCES pets (id),
  visit_date  DATE,
  description VARCHAR(255)
);`,
	},
}

// indexSteps use syntax shared by both dialects.
var indexSteps = []migrationStep{
	{Name: "create_index_vets_last_name", SQL: `CREATE INDEX IF NOT EXISTS idx_vets_last_name ON vets (last_name);`},
	{Name: "create_index_specialties_name", SQL: `CREATE INDEX IF NOT EXISTS idx_specialties_name ON specialties (name);`},
	{Name: "create_index_types_name", SQL: `CREATE INDEX IF NOT EXISTS idx_types_name ON types (name);`},
	{Name: "create_index_owners_last_name", SQL: `CREATE INDEX IF NOT EXISTS idx_owners_last_name ON owners (last_name);`},
	{Name: "create_index_pets_name", SQL: `CREATE INDEX IF NOT EXISTS idx_pets_name ON pets (name);`},
	{Name: "create_index_visits_pet_id", SQL: `CREATE INDEX IF NOT EXISTS idx_visits_pet_id ON visits (pet_id);`},
}

const (
	postgresSentinel = `SELECT to_regclass('public.owners') IS NOT NULL`
	sqliteSentinel   = `SELECT COUNT(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = 'owners'`
)

func stepsFor(db *sqlx.DB) (string, []migrationStep) {
	steps := postgresSteps
	sentinel := postgresSentinel
	if database.IsSQLite(db) {
		steps = sqliteSteps
		sentinel = sqliteSentinel
	}
	all := make([]migrationStep, 0, len(steps)+len(indexSteps))
	all = append(all, steps...)
	all = append(all, indexSteps...)
	return sentinel, all
}

// EnsureMigrated checks if the 'owners' table exists and creates the schema if it doesn't.
func EnsureMigrated(ctx context.Context, db *sqlx.DB, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_driver", db.DriverName()).Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	sentinel, steps := stepsFor(db)

	var exists bool
	if err := db.QueryRowContext(ctx, sentinel).Scan(&exists); err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Send()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int("steps", len(steps)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
