package models

// Course represents a course entry. The course code is unique.
type Course struct {
	ID      int64  `json:"id" db:"id" example:"1"`
	Code    string `json:"code" db:"code" example:"CENG301"`
	Title   string `json:"title" db:"title" example:"Software Engineering"`
	Credits int    `json:"credits" db:"credits" example:"6"`
}
