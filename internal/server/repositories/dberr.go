// Package repositories holds helpers shared by the PostgreSQL repositories.
package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
)

// PostgreSQL error codes the repositories translate.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// MapError converts a driver error into the shared sentinels:
// sql.ErrNoRows becomes common.ErrorNotFound, a unique violation
// common.ErrorAlreadyExists and a foreign key violation
// common.ErrorValidation. Anything else is wrapped as "db error".
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", common.ErrorAlreadyExists, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s", common.ErrorValidation, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("db error: %w", err)
}

// RequireAffected turns a zero-row UPDATE or DELETE into common.ErrorNotFound.
func RequireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
