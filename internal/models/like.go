package models

import "time"

// PostLike represents a like on a post. The (user, post) pair is unique at
// the schema level so concurrent duplicate inserts collapse to one row.
type PostLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_post_like"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_user_post_like"`
	CreatedAt time.Time `json:"created_at"`
}
