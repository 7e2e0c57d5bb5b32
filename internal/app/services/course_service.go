package services

import (
	"context"

	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/pkg/logger"
)

// CourseStore defines the course persistence operations the service relies on
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	List(ctx context.Context, limit, offset int) ([]*models.Course, error)
}

// CourseService handles course-related operations
type CourseService struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{courses: courses}
}

// CreateCourse creates a new course entry and returns it with the generated
// id. Fails with a conflict when a course with the same code exists.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Code:    req.Code,
		Title:   req.Title,
		Credits: req.Credits,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	logger.Info().Int64("courseID", course.ID).Str("code", course.Code).Msg("Course created")
	return course, nil
}

// ListCourses returns courses ordered by id honoring limit/offset
func (s *CourseService) ListCourses(ctx context.Context, limit, offset int) ([]*models.Course, error) {
	return s.courses.List(ctx, limit, offset)
}
