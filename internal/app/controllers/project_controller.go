package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/middleware"
)

// ProjectService defines the project operations the controller depends on
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*models.Project, error)
	CreateProjectForUser(ctx context.Context, ownerID int64, req *dto.CreateProjectForUserRequest) (*models.Project, error)
	ListProjects(ctx context.Context) ([]*models.Project, error)
	ListProjectsByUser(ctx context.Context, ownerID int64) ([]*models.Project, error)
	GetProjectWithOwner(ctx context.Context, id int64) (*models.Project, error)
	ReplaceProject(ctx context.Context, id int64, req *dto.CreateProjectRequest) (*models.Project, error)
	PatchProject(ctx context.Context, id int64, fields map[string]interface{}) (*models.Project, error)
}

// ProjectController handles project-related endpoints, including the routes
// nested under users
type ProjectController struct {
	projectService ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// CreateProject creates a project for the owner named in the body
// @Summary Create a new project
// @Description The owner_id must reference an existing user
// @Tags projects
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Project information"
// @Success 201 {object} models.Project "Project created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Project creation failed"
// @Router /api/projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid project data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.projectService.CreateProject(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

// CreateProjectForUser creates a project owned by the user in the path
// @Summary Create a project for a user
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.CreateProjectForUserRequest true "Project information"
// @Success 201 {object} models.Project "Project created successfully"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Project creation failed"
// @Router /api/users/{id}/projects [post]
func (c *ProjectController) CreateProjectForUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateProjectForUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid project data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.projectService.CreateProjectForUser(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

// ListProjects returns all projects ordered by id
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Router /api/projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	projects, err := c.projectService.ListProjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// ListProjectsByUser returns all projects owned by the user in the path.
// A user without projects gets an empty list, not an error.
// @Summary List a user's projects
// @Tags projects
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Project
// @Router /api/users/{id}/projects [get]
func (c *ProjectController) ListProjectsByUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	projects, err := c.projectService.ListProjectsByUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// GetProject returns a single project with its owner eagerly loaded
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project "Project with nested owner"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Router /api/projects/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	project, err := c.projectService.GetProjectWithOwner(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// ReplaceProject fully updates a project record
// @Summary Replace a project
// @Description PUT expects the full payload; every field is overwritten
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body dto.CreateProjectRequest true "Project information"
// @Success 200 {object} models.Project
// @Failure 404 {object} dto.ErrorResponse "Project or owner not found"
// @Failure 409 {object} dto.ErrorResponse "Project update failed"
// @Router /api/projects/{id} [put]
func (c *ProjectController) ReplaceProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid project data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.projectService.ReplaceProject(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// PatchProject partially updates a project record
// @Summary Patch a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body object true "Fields to update"
// @Success 200 {object} models.Project
// @Failure 404 {object} dto.ErrorResponse "Project or owner not found"
// @Failure 409 {object} dto.ErrorResponse "Project partial update failed"
// @Router /api/projects/{id} [patch]
func (c *ProjectController) PatchProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid patch data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.projectService.PatchProject(ctx, id, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}
