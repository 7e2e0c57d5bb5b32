package models

// User defines the user model based on the 'users' table
type User struct {
	ID        int64  `json:"id" db:"id" example:"1"`                              // Unique identifier for the user
	Name      string `json:"name" db:"name" example:"Ann Kaya"`                   // User's full name
	Email     string `json:"email" db:"email" example:"ann@school.edu.tr"`        // User's email address (unique)
	StudentID string `json:"student_id" db:"student_id" example:"20210101"`       // User's student number (unique)
}
