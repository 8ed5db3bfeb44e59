package models

import "time"

// Comment represents a comment on a post. Comments carry no update timestamp.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index"` // ID of the post the comment belongs to
	UserID    uint      `json:"user_id" gorm:"index"` // ID of the user who made the comment
	Text      string    `json:"text" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}
