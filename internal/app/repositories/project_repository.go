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

// projectPatchColumns maps JSON keys accepted by PATCH to their columns.
var projectPatchColumns = map[string]string{
	"name":        "name",
	"description": "description",
	"owner_id":    "owner_id",
}

// ProjectRepository handles project database operations
type ProjectRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(database *db.PostgresDB) *ProjectRepository {
	return &ProjectRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new project after verifying the owner exists. The check
// and the insert share a transaction so a failed insert leaves nothing
// behind.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		exists, err := userExists(ctx, tx, project.OwnerID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrUserNotFound
		}

		sql, args, err := r.sb.Insert("projects").
			Columns("name", "description", "owner_id").
			Values(project.Name, project.Description, project.OwnerID).
			Suffix("RETURNING id").
			ToSql()

		if err != nil {
			logger.Error().Err(err).Msg("Error building create project SQL")
			return fmt.Errorf("failed to build create project query: %w", err)
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&project.ID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewConflictError("Project creation failed")
			}
			// Owner deleted between the existence check and the insert
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrUserNotFound
			}
			logger.Error().Err(err).Msg("Error executing create project query")
			return fmt.Errorf("error creating project: %w", err)
		}

		return nil
	})
}

// List retrieves all projects ordered by id
func (r *ProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "owner_id").
		From("projects").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list projects SQL")
		return nil, fmt.Errorf("failed to build list projects query: %w", err)
	}

	return r.queryProjects(ctx, sql, args)
}

// ListByOwner retrieves all projects owned by a user. An unknown user yields
// an empty list, not an error.
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Project, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "owner_id").
		From("projects").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list projects by owner SQL")
		return nil, fmt.Errorf("failed to build list projects by owner query: %w", err)
	}

	return r.queryProjects(ctx, sql, args)
}

// queryProjects runs a project select and scans the rows
func (r *ProjectRepository) queryProjects(ctx context.Context, sql string, args []interface{}) ([]*models.Project, error) {
	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing project list query")
		return nil, fmt.Errorf("error querying projects: %w", err)
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		project := &models.Project{}
		if err := rows.Scan(&project.ID, &project.Name, &project.Description, &project.OwnerID); err != nil {
			logger.Error().Err(err).Msg("Error scanning project row")
			return nil, fmt.Errorf("error scanning project row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating project rows")
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// GetWithOwner retrieves a project by id with its owner eagerly loaded in a
// single round trip.
func (r *ProjectRepository) GetWithOwner(ctx context.Context, id int64) (*models.Project, error) {
	sql, args, err := r.sb.Select(
		"p.id", "p.name", "p.description", "p.owner_id",
		"u.id", "u.name", "u.email", "u.student_id").
		From("projects p").
		Join("users u ON u.id = p.owner_id").
		Where(squirrel.Eq{"p.id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get project with owner SQL")
		return nil, fmt.Errorf("failed to build get project query: %w", err)
	}

	project := &models.Project{Owner: &models.User{}}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&project.ID, &project.Name, &project.Description, &project.OwnerID,
		&project.Owner.ID, &project.Owner.Name, &project.Owner.Email, &project.Owner.StudentID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		logger.Error().Err(err).Int64("projectID", id).Msg("Error scanning project with owner row")
		return nil, fmt.Errorf("error getting project by ID: %w", err)
	}

	return project, nil
}

// Replace overwrites every field of an existing project. The project and the
// new owner must both exist.
func (r *ProjectRepository) Replace(ctx context.Context, project *models.Project) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		exists, err := projectExists(ctx, tx, project.ID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrProjectNotFound
		}

		ownerOK, err := userExists(ctx, tx, project.OwnerID)
		if err != nil {
			return err
		}
		if !ownerOK {
			return apperrors.ErrOwnerNotFound
		}

		sql, args, err := r.sb.Update("projects").
			SetMap(map[string]interface{}{
				"name":        project.Name,
				"description": project.Description,
				"owner_id":    project.OwnerID,
			}).
			Where(squirrel.Eq{"id": project.ID}).
			ToSql()

		if err != nil {
			logger.Error().Err(err).Msg("Error building update project SQL")
			return fmt.Errorf("failed to build update project query: %w", err)
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewConflictError("Project update failed")
			}
			logger.Error().Err(err).Int64("projectID", project.ID).Msg("Error executing update project query")
			return fmt.Errorf("error updating project: %w", err)
		}

		return nil
	})
}

// Patch applies the supplied fields to an existing project. A supplied
// owner_id must reference an existing user; unknown keys are ignored.
func (r *ProjectRepository) Patch(ctx context.Context, id int64, fields map[string]interface{}) (*models.Project, error) {
	project := &models.Project{}

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		exists, err := projectExists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrProjectNotFound
		}

		assignments := patchAssignments(fields, projectPatchColumns)

		if raw, ok := assignments["owner_id"]; ok {
			ownerID, ok := toInt64(raw)
			if !ok {
				return apperrors.NewBadRequestError("owner_id must be an integer")
			}

			ownerOK, err := userExists(ctx, tx, ownerID)
			if err != nil {
				return err
			}
			if !ownerOK {
				return apperrors.ErrOwnerNotFound
			}
			assignments["owner_id"] = ownerID
		}

		// Nothing left after filtering degrades to a plain read
		var sql string
		var args []interface{}
		if len(assignments) == 0 {
			sql, args, err = r.sb.Select("id", "name", "description", "owner_id").
				From("projects").
				Where(squirrel.Eq{"id": id}).
				ToSql()
		} else {
			sql, args, err = r.sb.Update("projects").
				SetMap(assignments).
				Where(squirrel.Eq{"id": id}).
				Suffix("RETURNING id, name, description, owner_id").
				ToSql()
		}

		if err != nil {
			logger.Error().Err(err).Msg("Error building patch project SQL")
			return fmt.Errorf("failed to build patch project query: %w", err)
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(
			&project.ID, &project.Name, &project.Description, &project.OwnerID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrProjectNotFound
			}
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewConflictError("Project partial update failed")
			}
			logger.Error().Err(err).Int64("projectID", id).Msg("Error executing patch project query")
			return fmt.Errorf("error patching project: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}
