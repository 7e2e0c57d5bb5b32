package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/db"
	"github.com/yigit/campushub/internal/pkg/apperrors"
	"github.com/yigit/campushub/internal/pkg/dberrors"
	"github.com/yigit/campushub/internal/pkg/logger"
)

// userPatchColumns maps JSON keys accepted by PATCH to their columns.
var userPatchColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"student_id": "student_id",
}

// UserRepository handles user database operations
type UserRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new user and fills in the generated id.
// A duplicate email or student_id yields a conflict error.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Insert("users").
		Columns("name", "email", "student_id").
		Values(user.Name, user.Email, user.StudentID).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&user.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("User already exists")
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "student_id").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by ID SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.Name, &user.Email, &user.StudentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}

	return user, nil
}

// List retrieves all users ordered by id
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "student_id").
		From("users").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list users SQL")
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.StudentID); err != nil {
			logger.Error().Err(err).Msg("Error scanning user row during list")
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating user rows")
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// Replace overwrites every field of an existing user. Returns not-found when
// no row matched the id.
func (r *UserRepository) Replace(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Update("users").
		SetMap(map[string]interface{}{
			"name":       user.Name,
			"email":      user.Email,
			"student_id": user.StudentID,
		}).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update user SQL")
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("User update failed (duplicate email or student_id)")
		}
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error executing update user query")
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Patch applies the supplied fields to an existing user. Unknown keys are
// ignored; an empty remainder degrades to a plain read.
func (r *UserRepository) Patch(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error) {
	assignments := patchAssignments(fields, userPatchColumns)
	if len(assignments) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := r.sb.Update("users").
		SetMap(assignments).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, email, student_id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building patch user SQL")
		return nil, fmt.Errorf("failed to build patch user query: %w", err)
	}

	user := &models.User{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.Name, &user.Email, &user.StudentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("User partial update failed")
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing patch user query")
		return nil, fmt.Errorf("error patching user: %w", err)
	}

	return user, nil
}

// Delete removes a user. Owned projects go with it through the
// ON DELETE CASCADE constraint.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete user SQL")
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing delete user query")
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
