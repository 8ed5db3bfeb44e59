package models

import "time"

// Post represents a post owned by a user
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index"` // ID of the user who created the post
	Image     string    `json:"image"`
	Caption   string    `json:"caption" gorm:"size:2000"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Image   string `json:"image" validate:"required,url"`
	Caption string `json:"caption,omitempty" validate:"omitempty,max=2000"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Image   string `json:"image,omitempty" validate:"omitempty,url"`
	Caption string `json:"caption,omitempty" validate:"omitempty,max=2000"`
}
