package migration

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/internal/config"
	"petclinic/internal/database"
)

func openSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestEnsureMigrated_SQLite(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	require.NoError(t, EnsureMigrated(ctx, db, log))

	for _, table := range []string{"owners", "pets", "types", "visits", "vets", "specialties", "vet_specialties"} {
		var name string
		err := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "missing table %s", table)
	}
	assert.Contains(t, buf.String(), "db_migration_success")

	// Second run hits the sentinel and skips.
	buf.Reset()
	require.NoError(t, EnsureMigrated(ctx, db, log))
	assert.Contains(t, buf.String(), "db_migration_skip")
}

func TestEnsureMigrated_PostgresSkipsExistingSchema(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, database.PgxDriver)

	mock.ExpectQuery(`SELECT to_regclass\('public.owners'\) IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err = EnsureMigrated(context.Background(), db, zerolog.Nop())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureMigrated_PostgresRunsSteps(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, database.PgxDriver)

	mock.ExpectQuery(`SELECT to_regclass`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	for range len(postgresSteps) + len(indexSteps) {
		mock.ExpectExec(`CREATE`).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	err = EnsureMigrated(context.Background(), db, zerolog.Nop())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureMigrated_Errors(t *testing.T) {
	t.Run("sentinel error", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer mockDB.Close()
		db := sqlx.NewDb(mockDB, database.PgxDriver)

		mock.ExpectQuery(`SELECT to_regclass`).WillReturnError(errors.New("connection reset"))

		err = EnsureMigrated(context.Background(), db, zerolog.Nop())
		assert.ErrorContains(t, err, "failed to check sentinel table")
	})

	t.Run("step error", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer mockDB.Close()
		db := sqlx.NewDb(mockDB, database.PgxDriver)

		mock.ExpectQuery(`SELECT to_regclass`).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS vets`).WillReturnError(errors.New("permission denied"))

		err = EnsureMigrated(context.Background(), db, zerolog.Nop())
		assert.ErrorContains(t, err, "migration step create_table_vets failed: permission denied")
	})
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	require.NoError(t, EnsureMigrated(ctx, db, zerolog.Nop()))

	require.NoError(t, Seed(ctx, db, zerolog.Nop()))

	count := func(table string) int {
		var n int
		require.NoError(t, db.GetContext(ctx, &n, `SELECT COUNT(*) FROM `+table))
		return n
	}
	assert.Equal(t, len(seedVets), count("vets"))
	assert.Equal(t, len(seedSpecialties), count("specialties"))
	assert.Equal(t, 5, count("vet_specialties"))
	assert.Equal(t, len(seedTypes), count("types"))
	assert.Equal(t, len(seedOwners), count("owners"))
	assert.Equal(t, len(seedPets), count("pets"))
	assert.Equal(t, len(seedVisits), count("visits"))

	var visits int
	require.NoError(t, db.GetContext(ctx, &visits,
		`SELECT COUNT(*) FROM visits v JOIN pets p ON p.id = v.pet_id WHERE p.name = 'Max'`))
	assert.Equal(t, 2, visits)

	// Seeding twice is a no-op.
	require.NoError(t, Seed(ctx, db, zerolog.Nop()))
	assert.Equal(t, len(seedOwners), count("owners"))
}
