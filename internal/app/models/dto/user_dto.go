package dto

// CreateUserRequest represents the payload for creating a user. PUT reuses it
// since a full update requires every field.
type CreateUserRequest struct {
	Name      string `json:"name" binding:"required" example:"Ann Kaya"`
	Email     string `json:"email" binding:"required,email" example:"ann@school.edu.tr"`
	StudentID string `json:"student_id" binding:"required" example:"20210101"`
}
