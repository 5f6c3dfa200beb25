package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsDuplicateKeyError checks if err is a unique constraint violation. On PostgreSQL
// the violated constraint name must contain constraintName; translated gorm errors
// carry no constraint name and always match.
func IsDuplicateKeyError(err error, constraintName string) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return false
}

// IsForeignKeyError checks if err is a foreign key violation
func IsForeignKeyError(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		return pgErr.Code == "23503"
	}
	return false
}
