package services

import (
	"context"

	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/pkg/logger"
)

// ProjectStore defines the project persistence operations the service relies on
type ProjectStore interface {
	Create(ctx context.Context, project *models.Project) error
	List(ctx context.Context) ([]*models.Project, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Project, error)
	GetWithOwner(ctx context.Context, id int64) (*models.Project, error)
	Replace(ctx context.Context, project *models.Project) error
	Patch(ctx context.Context, id int64, fields map[string]interface{}) (*models.Project, error)
}

// ProjectService handles project-related operations
type ProjectService struct {
	projects ProjectStore
}

// NewProjectService creates a new project service instance
func NewProjectService(projects ProjectStore) *ProjectService {
	return &ProjectService{projects: projects}
}

// CreateProject creates a project owned by the user named in the payload
func (s *ProjectService) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*models.Project, error) {
	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	logger.Info().Int64("projectID", project.ID).Int64("ownerID", project.OwnerID).Msg("Project created")
	return project, nil
}

// CreateProjectForUser creates a project owned by the user named in the path
func (s *ProjectService) CreateProjectForUser(ctx context.Context, ownerID int64, req *dto.CreateProjectForUserRequest) (*models.Project, error) {
	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	logger.Info().Int64("projectID", project.ID).Int64("ownerID", ownerID).Msg("Project created for user")
	return project, nil
}

// ListProjects returns all projects ordered by id
func (s *ProjectService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	return s.projects.List(ctx)
}

// ListProjectsByUser returns all projects owned by the given user; an unknown
// user yields an empty list
func (s *ProjectService) ListProjectsByUser(ctx context.Context, ownerID int64) ([]*models.Project, error) {
	return s.projects.ListByOwner(ctx, ownerID)
}

// GetProjectWithOwner returns a project with its owner eagerly loaded
func (s *ProjectService) GetProjectWithOwner(ctx context.Context, id int64) (*models.Project, error) {
	return s.projects.GetWithOwner(ctx, id)
}

// ReplaceProject fully updates a project; every field comes from the payload
func (s *ProjectService) ReplaceProject(ctx context.Context, id int64, req *dto.CreateProjectRequest) (*models.Project, error) {
	project := &models.Project{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	}

	if err := s.projects.Replace(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// PatchProject applies only the supplied fields to a project
func (s *ProjectService) PatchProject(ctx context.Context, id int64, fields map[string]interface{}) (*models.Project, error) {
	return s.projects.Patch(ctx, id, fields)
}
