package models

import "time"

// Comment belongs to exactly one post and one author. Comments are listed in
// insertion order, oldest first.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Text      string    `json:"text" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for commenting on a post.
// The author is always the authenticated account, never part of the payload.
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}
