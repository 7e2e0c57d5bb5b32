package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/middleware"
	"github.com/yigit/campushub/internal/pkg/helpers"
)

// CourseService defines the course operations the controller depends on
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	ListCourses(ctx context.Context, limit, offset int) ([]*models.Course, error)
}

// CourseController handles course-related endpoints
type CourseController struct {
	courseService CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Fails if a course with the same code already exists
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} models.Course "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Course already exists"
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// ListCourses returns courses ordered by id with limit/offset pagination
// @Summary List courses
// @Tags courses
// @Produce json
// @Param limit query int false "Maximum records to return" default(10)
// @Param offset query int false "Records to skip" default(0)
// @Success 200 {array} models.Course
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	limit, offset := helpers.ParseLimitOffset(ctx)

	courses, err := c.courseService.ListCourses(ctx, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}
