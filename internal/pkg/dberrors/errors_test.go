package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{
		Code:           "23505",
		ConstraintName: constraint,
		Message:        "duplicate key value violates unique constraint",
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches a unique violation", func(t *testing.T) {
		assert.True(t, IsUniqueViolation(uniqueViolation("users_email_key")))
	})

	t.Run("matches when wrapped", func(t *testing.T) {
		err := fmt.Errorf("insert user: %w", uniqueViolation("users_email_key"))
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("rejects other pg errors", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23503"}
		assert.False(t, IsUniqueViolation(err))
	})

	t.Run("rejects plain errors", func(t *testing.T) {
		assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	})

	t.Run("rejects nil", func(t *testing.T) {
		assert.False(t, IsUniqueViolation(nil))
	})
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Run("matches a foreign key violation", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23503", ConstraintName: "projects_owner_id_fkey"}
		assert.True(t, IsForeignKeyViolation(err))
	})

	t.Run("rejects unique violations", func(t *testing.T) {
		assert.False(t, IsForeignKeyViolation(uniqueViolation("users_email_key")))
	})
}

func TestIsDuplicateConstraintError(t *testing.T) {
	t.Run("matches the named constraint", func(t *testing.T) {
		err := uniqueViolation("courses_code_key")
		assert.True(t, IsDuplicateConstraintError(err, "courses_code_key"))
	})

	t.Run("rejects a different constraint", func(t *testing.T) {
		err := uniqueViolation("users_email_key")
		assert.False(t, IsDuplicateConstraintError(err, "users_student_id_key"))
	})

	t.Run("rejects non-unique errors", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23503", ConstraintName: "projects_owner_id_fkey"}
		assert.False(t, IsDuplicateConstraintError(err, "projects_owner_id_fkey"))
	})
}
