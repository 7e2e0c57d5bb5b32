package dto

// CreateCourseRequest represents the payload for creating a course.
type CreateCourseRequest struct {
	Code    string `json:"code" binding:"required" example:"CENG301"`
	Title   string `json:"title" binding:"required" example:"Software Engineering"`
	Credits int    `json:"credits" example:"6"`
}
