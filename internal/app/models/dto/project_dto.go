package dto

// CreateProjectRequest represents the payload for creating a project through
// the global endpoint, and for fully replacing one via PUT.
type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required" example:"Course planner"`
	Description *string `json:"description" example:"Semester planning tool"`
	OwnerID     int64   `json:"owner_id" binding:"required" example:"3"`
}

// CreateProjectForUserRequest represents the payload for creating a project
// nested under a user; the owner comes from the path.
type CreateProjectForUserRequest struct {
	Name        string  `json:"name" binding:"required" example:"Course planner"`
	Description *string `json:"description" example:"Semester planning tool"`
}
