package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campushub/internal/app/controllers"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/routes"
)

// fakeUserService implements controllers.UserService for handler tests.
type fakeUserService struct {
	createResult  *models.User
	createErr     error
	listResult    []*models.User
	getResult     *models.User
	getErr        error
	replaceResult *models.User
	replaceErr    error
	patchResult   *models.User
	patchErr      error
	deleteErr     error

	lastPatchFields map[string]interface{}
}

func (f *fakeUserService) CreateUser(_ context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	return f.createResult, f.createErr
}

func (f *fakeUserService) ListUsers(_ context.Context) ([]*models.User, error) {
	return f.listResult, nil
}

func (f *fakeUserService) GetUser(_ context.Context, id int64) (*models.User, error) {
	return f.getResult, f.getErr
}

func (f *fakeUserService) ReplaceUser(_ context.Context, id int64, req *dto.CreateUserRequest) (*models.User, error) {
	return f.replaceResult, f.replaceErr
}

func (f *fakeUserService) PatchUser(_ context.Context, id int64, fields map[string]interface{}) (*models.User, error) {
	f.lastPatchFields = fields
	return f.patchResult, f.patchErr
}

func (f *fakeUserService) DeleteUser(_ context.Context, id int64) error {
	return f.deleteErr
}

// fakeCourseService implements controllers.CourseService.
type fakeCourseService struct {
	createResult *models.Course
	createErr    error
	listResult   []*models.Course

	lastLimit  int
	lastOffset int
}

func (f *fakeCourseService) CreateCourse(_ context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	return f.createResult, f.createErr
}

func (f *fakeCourseService) ListCourses(_ context.Context, limit, offset int) ([]*models.Course, error) {
	f.lastLimit = limit
	f.lastOffset = offset
	return f.listResult, nil
}

// fakeProjectService implements controllers.ProjectService.
type fakeProjectService struct {
	createResult  *models.Project
	createErr     error
	listResult    []*models.Project
	byOwnerResult []*models.Project
	getResult     *models.Project
	getErr        error
	replaceResult *models.Project
	replaceErr    error
	patchResult   *models.Project
	patchErr      error

	lastOwnerID int64
}

func (f *fakeProjectService) CreateProject(_ context.Context, req *dto.CreateProjectRequest) (*models.Project, error) {
	return f.createResult, f.createErr
}

func (f *fakeProjectService) CreateProjectForUser(_ context.Context, ownerID int64, req *dto.CreateProjectForUserRequest) (*models.Project, error) {
	f.lastOwnerID = ownerID
	return f.createResult, f.createErr
}

func (f *fakeProjectService) ListProjects(_ context.Context) ([]*models.Project, error) {
	return f.listResult, nil
}

func (f *fakeProjectService) ListProjectsByUser(_ context.Context, ownerID int64) ([]*models.Project, error) {
	f.lastOwnerID = ownerID
	return f.byOwnerResult, nil
}

func (f *fakeProjectService) GetProjectWithOwner(_ context.Context, id int64) (*models.Project, error) {
	return f.getResult, f.getErr
}

func (f *fakeProjectService) ReplaceProject(_ context.Context, id int64, req *dto.CreateProjectRequest) (*models.Project, error) {
	return f.replaceResult, f.replaceErr
}

func (f *fakeProjectService) PatchProject(_ context.Context, id int64, fields map[string]interface{}) (*models.Project, error) {
	return f.patchResult, f.patchErr
}

// newTestRouter wires the real route table onto fake services.
func newTestRouter(users controllers.UserService, courses controllers.CourseService, projects controllers.ProjectService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	routes.SetupRouter(router,
		controllers.NewHealthController(),
		controllers.NewUserController(users),
		controllers.NewCourseController(courses),
		controllers.NewProjectController(projects),
	)

	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder) *dto.ErrorResponse {
	t.Helper()
	var response dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotNil(t, response.Error)
	return &response
}
