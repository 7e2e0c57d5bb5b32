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

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, &fakeProjectService{})

	recorder := performRequest(t, router, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestCourseController_CreateCourse(t *testing.T) {
	t.Run("returns 201 with the created course", func(t *testing.T) {
		courses := &fakeCourseService{createResult: &models.Course{
			ID:      1,
			Code:    "CENG301",
			Title:   "Software Engineering",
			Credits: 6,
		}}
		router := newTestRouter(&fakeUserService{}, courses, &fakeProjectService{})

		recorder := performRequest(t, router, http.MethodPost, "/api/courses", gin.H{
			"code":    "CENG301",
			"title":   "Software Engineering",
			"credits": 6,
		})

		require.Equal(t, http.StatusCreated, recorder.Code)

		var course models.Course
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &course))
		assert.Equal(t, "CENG301", course.Code)
		assert.Equal(t, 6, course.Credits)
	})

	t.Run("returns 409 when the code is taken", func(t *testing.T) {
		courses := &fakeCourseService{createErr: apperrors.NewConflictError("Course already exists")}
		router := newTestRouter(&fakeUserService{}, courses, &fakeProjectService{})

		recorder := performRequest(t, router, http.MethodPost, "/api/courses", gin.H{
			"code":  "CENG301",
			"title": "Software Engineering",
		})

		require.Equal(t, http.StatusConflict, recorder.Code)
		response := decodeErrorResponse(t, recorder)
		assert.Equal(t, "Course already exists", response.Error.Message)
	})

	t.Run("returns 400 without a code", func(t *testing.T) {
		router := newTestRouter(&fakeUserService{}, &fakeCourseService{}, &fakeProjectService{})

		recorder := performRequest(t, router, http.MethodPost, "/api/courses", gin.H{
			"title": "Software Engineering",
		})

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestCourseController_ListCourses(t *testing.T) {
	t.Run("forwards pagination parameters", func(t *testing.T) {
		courses := &fakeCourseService{listResult: []*models.Course{{ID: 1, Code: "CENG301"}}}
		router := newTestRouter(&fakeUserService{}, courses, &fakeProjectService{})

		recorder := performRequest(t, router, http.MethodGet, "/api/courses?limit=25&offset=50", nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 25, courses.lastLimit)
		assert.Equal(t, 50, courses.lastOffset)
	})

	t.Run("uses defaults when absent", func(t *testing.T) {
		courses := &fakeCourseService{listResult: []*models.Course{}}
		router := newTestRouter(&fakeUserService{}, courses, &fakeProjectService{})

		recorder := performRequest(t, router, http.MethodGet, "/api/courses", nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 10, courses.lastLimit)
		assert.Equal(t, 0, courses.lastOffset)
	})
}
