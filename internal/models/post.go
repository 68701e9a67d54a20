package models

import "time"

// Post is an entry authored by a user, optionally tagged to a group and
// optionally carrying an opaque image reference. Listings always order posts
// newest first.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	GroupID   *uint     `json:"group_id,omitempty" gorm:"index"`
	Group     *Group    `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	Text      string    `json:"text" gorm:"type:text"`
	Image     string    `json:"image,omitempty"` // opaque upload-storage reference
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Text    string `json:"text" validate:"required,min=1,max=4000"`
	GroupID *uint  `json:"group_id,omitempty"`
	Image   string `json:"image,omitempty" validate:"omitempty,max=255"`
}

// UpdatePostRequest defines the request body for editing an existing post
type UpdatePostRequest struct {
	Text    string `json:"text" validate:"required,min=1,max=4000"`
	GroupID *uint  `json:"group_id,omitempty"`
	Image   string `json:"image,omitempty" validate:"omitempty,max=255"`
}
