package models

// Project defines the project model based on the 'projects' table.
// Description is nullable.
type Project struct {
	ID          int64   `json:"id" db:"id" example:"1"`
	Name        string  `json:"name" db:"name" example:"Course planner"`
	Description *string `json:"description" db:"description" example:"Semester planning tool"`
	OwnerID     int64   `json:"owner_id" db:"owner_id" example:"3"`

	// Relations (populated when needed)
	Owner *User `json:"owner,omitempty"`
}
