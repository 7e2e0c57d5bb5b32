package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/pkg/apperrors"
)

func TestProjectController_CreateProject(t *testing.T) {
	t.Run("returns 201 with the created project", func(t *testing.T) {
		desc := "Semester planning tool"
		projects := &fakeProjectService{createResult: &models.Project{
			ID:          10,
			Name:        "Course planner",
			Description: &desc,
			OwnerID:     3,
		}}
		router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, projects)

		recorder := performRequest(t, router, http.MethodPost, "/api/projects", gin.H{
			"name":        "Course planner",
			"description": "Semester planning tool",
			"owner_id":    3,
		})

		require.Equal(t, http.StatusCreated, recorder.Code)

		var project models.Project
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &project))
		assert.Equal(t, int64(10), project.ID)
		assert.Equal(t, int64(3), project.OwnerID)
	})

	t.Run("returns 404 when the owner does not exist", func(t *testing.T) {
		projects := &fakeProjectService{createErr: apperrors.ErrUserNotFound}
		router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, projects)

		recorder := performRequest(t, router, http.MethodPost, "/api/projects", gin.H{
			"name":     "Course planner",
			"owner_id": 99,
		})

		require.Equal(t, http.StatusNotFound, recorder.Code)
		response := decodeErrorResponse(t, recorder)
		assert.Equal(t, "User not found", response.Error.Message)
	})

	t.Run("returns 400 when owner_id is missing", func(t *testing.T) {
		router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, &fakeProjectService{})

		recorder := performRequest(t, router, http.MethodPost, "/api/projects", gin.H{
			"name": "Course planner",
		})

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestProjectController_CreateProjectForUser(t *testing.T) {
	t.Run("takes the owner from the path", func(t *testing.T) {
		projects := &fakeProjectService{createResult: &models.Project{
			ID:      11,
			Name:    "Thesis tracker",
			OwnerID: 4,
		}}
		router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, projects)

		recorder := performRequest(t, router, http.MethodPost, "/api/users/4/projects", gin.H{
			"name": "Thesis tracker",
		})

		require.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, int64(4), projects.lastOwnerID)
	})

	t.Run("returns 404 for an unknown user", func(t *testing.T) {
		projects := &fakeProjectService{createErr: apperrors.ErrUserNotFound}
		router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, projects)

		recorder := performRequest(t, router, http.MethodPost, "/api/users/99/projects", gin.H{
			"name": "Thesis tracker",
		})

		require.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestProjectController_GetProject(t *testing.T) {
	t.Run("returns the project with its nested owner", func(t *testing.T) {
		projects := &fakeProjectService{getResult: &models.Project{
			ID:      1,
			Name:    "Course planner",
			OwnerID: 3,
			Owner:   &models.User{ID: 3, Name: "Ann Kaya", Email: "ann@school.edu.tr"},
		}}
		router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, projects)

		recorder := performRequest(t, router, http.MethodGet, "/api/projects/1", nil)

		require.Equal(t, http.StatusOK, recorder.Code)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		owner, ok := payload["owner"].(map[string]interface{})
		require.True(t, ok, "owner should be embedded in the response")
		assert.Equal(t, "Ann Kaya", owner["name"])
	})

	t.Run("omits the owner key when not loaded", func(t *testing.T) {
		projects := &fakeProjectService{getResult: &models.Project{ID: 1, Name: "Course planner", OwnerID: 3}}
		router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, projects)

		recorder := performRequest(t, router, http.MethodGet, "/api/projects/1", nil)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.NotContains(t, payload, "owner")
	})

	t.Run("returns 404 with the expected message", func(t *testing.T) {
		projects := &fakeProjectService{getErr: apperrors.ErrProjectNotFound}
		router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, projects)

		recorder := performRequest(t, router, http.MethodGet, "/api/projects/404", nil)

		require.Equal(t, http.StatusNotFound, recorder.Code)
		response := decodeErrorResponse(t, recorder)
		assert.Equal(t, "Project not found", response.Error.Message)
	})
}

func TestProjectController_ListProjectsByUser(t *testing.T) {
	t.Run("returns an empty list for a user without projects", func(t *testing.T) {
		projects := &fakeProjectService{byOwnerResult: []*models.Project{}}
		router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, projects)

		recorder := performRequest(t, router, http.MethodGet, "/api/users/8/projects", nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
		assert.Equal(t, int64(8), projects.lastOwnerID)
	})
}

func TestProjectController_ReplaceProject(t *testing.T) {
	t.Run("returns 404 when the new owner does not exist", func(t *testing.T) {
		projects := &fakeProjectService{replaceErr: apperrors.ErrOwnerNotFound}
		router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, projects)

		recorder := performRequest(t, router, http.MethodPut, "/api/projects/1", gin.H{
			"name":     "Renamed",
			"owner_id": 99,
		})

		require.Equal(t, http.StatusNotFound, recorder.Code)
		response := decodeErrorResponse(t, recorder)
		assert.Equal(t, "Owner user not found", response.Error.Message)
		assert.Equal(t, "owner_id", response.Error.Field)
	})

	t.Run("returns the updated project", func(t *testing.T) {
		projects := &fakeProjectService{replaceResult: &models.Project{
			ID:      1,
			Name:    "Renamed",
			OwnerID: 3,
		}}
		router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, projects)

		recorder := performRequest(t, router, http.MethodPut, "/api/projects/1", gin.H{
			"name":     "Renamed",
			"owner_id": 3,
		})

		require.Equal(t, http.StatusOK, recorder.Code)

		var project models.Project
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &project))
		assert.Equal(t, "Renamed", project.Name)
	})
}

func TestProjectController_PatchProject(t *testing.T) {
	t.Run("returns 400 when owner_id is not an integer", func(t *testing.T) {
		projects := &fakeProjectService{patchErr: apperrors.NewBadRequestError("owner_id must be an integer")}
		router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, projects)

		recorder := performRequest(t, router, http.MethodPatch, "/api/projects/1", gin.H{
			"owner_id": "three",
		})

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		response := decodeErrorResponse(t, recorder)
		assert.Equal(t, "owner_id must be an integer", response.Error.Message)
	})

	t.Run("returns 409 with the partial update message", func(t *testing.T) {
		projects := &fakeProjectService{patchErr: apperrors.NewConflictError("Project partial update failed")}
		router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, projects)

		recorder := performRequest(t, router, http.MethodPatch, "/api/projects/1", gin.H{
			"name": "Renamed",
		})

		require.Equal(t, http.StatusConflict, recorder.Code)
		response := decodeErrorResponse(t, recorder)
		assert.Equal(t, "Project partial update failed", response.Error.Message)
	})
}
