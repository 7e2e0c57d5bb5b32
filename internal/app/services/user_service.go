package services

import (
	"context"

	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/pkg/logger"
)

// UserStore defines the user persistence operations the service relies on
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Replace(ctx context.Context, user *models.User) error
	Patch(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserService handles user-related operations
type UserService struct {
	users UserStore
}

// NewUserService creates a new user service instance
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// CreateUser creates a new user and returns it with the generated id
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		StudentID: req.StudentID,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("User created")
	return user, nil
}

// ListUsers returns all users ordered by id
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

// GetUser returns a single user by id
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// ReplaceUser fully updates a user; every field comes from the payload
func (s *UserService) ReplaceUser(ctx context.Context, id int64, req *dto.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		StudentID: req.StudentID,
	}

	if err := s.users.Replace(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// PatchUser applies only the supplied fields to a user
func (s *UserService) PatchUser(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error) {
	return s.users.Patch(ctx, id, fields)
}

// DeleteUser removes a user together with all projects it owns
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("userID", id).Msg("User deleted with owned projects")
	return nil
}
