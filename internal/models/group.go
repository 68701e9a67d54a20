package models

import "time"

// Group is a community posts can be tagged to. Deleting a group never deletes
// its posts; they only lose the reference.
type Group struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:100"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateGroupRequest defines the request body for creating a new group
type CreateGroupRequest struct {
	Slug        string `json:"slug" validate:"required,min=2,max=50,lowercase"`
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
}
