// Package sqlstore implements the repository contracts on database/sql through sqlx.
//
// Queries are written with "?" placeholders and rebound for the connected driver,
// so the same statements serve PostgreSQL (pgx) and SQLite.
package sqlstore

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"petclinic/internal/repository"
)

// runInTx runs fn in a transaction, committing on success and rolling back on any error.
func runInTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return errors.Wrap(tx.Commit(), "commit transaction")
}

// insertReturningID executes an INSERT ... RETURNING id and returns the generated key.
func insertReturningID(ctx context.Context, q sqlx.ExtContext, query string, args ...any) (int, error) {
	var id int
	if err := q.QueryRowxContext(ctx, q.Rebind(query), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// updateByID executes an UPDATE and reports ErrNotFound when no row matched.
func updateByID(ctx context.Context, q sqlx.ExtContext, query string, args ...any) error {
	res, err := q.ExecContext(ctx, q.Rebind(query), args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// selectIn runs a query containing a single "IN (?)" clause expanded for ids.
func selectIn(ctx context.Context, q sqlx.ExtContext, dest any, query string, ids []int) error {
	expanded, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	return sqlx.SelectContext(ctx, q, dest, q.Rebind(expanded), args...)
}

// likePrefix escapes LIKE wildcards in s and appends "%" for a starts-with match.
// Queries using it must declare ESCAPE '\'.
func likePrefix(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s) + "%"
}

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate maps driver errors onto repository sentinels and wraps everything else with op.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, repository.ErrNotFound) {
		return errors.Wrap(repository.ErrNotFound, op)
	}
	if errors.Is(err, repository.ErrConflict) || errors.Is(err, repository.ErrInvalidReference) {
		return errors.Wrap(err, op)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errors.Wrapf(repository.ErrConflict, "%s: %s", op, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return errors.Wrapf(repository.ErrInvalidReference, "%s: %s", op, pgErr.ConstraintName)
		}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		msg := liteErr.Error()
		switch {
		case strings.Contains(msg, "UNIQUE"), strings.Contains(msg, "PRIMARY KEY"):
			return errors.Wrapf(repository.ErrConflict, "%s: %s", op, msg)
		case strings.Contains(msg, "FOREIGN KEY"):
			return errors.Wrapf(repository.ErrInvalidReference, "%s: %s", op, msg)
		}
	}

	return errors.Wrap(err, op)
}
