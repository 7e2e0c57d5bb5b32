package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yigit/campushub/internal/db"
)

// Repositories bundles all repositories behind a single constructor
type Repositories struct {
	UserRepository    *UserRepository
	CourseRepository  *CourseRepository
	ProjectRepository *ProjectRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(database),
		CourseRepository:  NewCourseRepository(database),
		ProjectRepository: NewProjectRepository(database),
	}
}

// querier is the subset of the pgx API shared by *pgxpool.Pool and pgx.Tx,
// so existence checks can run either on the pool or inside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// userExists checks whether a user row exists
func userExists(ctx context.Context, q querier, id int64) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking user existence: %w", err)
	}
	return exists, nil
}

// projectExists checks whether a project row exists
func projectExists(ctx context.Context, q querier, id int64) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking project existence: %w", err)
	}
	return exists, nil
}

// patchAssignments filters a raw partial-update map down to known columns.
// Unknown keys are dropped silently.
func patchAssignments(fields map[string]interface{}, allowed map[string]string) map[string]interface{} {
	assignments := make(map[string]interface{})
	for key, value := range fields {
		if column, ok := allowed[key]; ok {
			assignments[column] = value
		}
	}
	return assignments
}

// toInt64 coerces a decoded JSON value into an int64. encoding/json delivers
// numbers as float64, so integral floats are accepted.
func toInt64(value interface{}) (int64, bool) {
	switch n := value.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}
