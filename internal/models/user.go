package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents a registered account.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:30"`
	Email     string    `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Bio       string    `json:"bio" gorm:"size:200"`
	Avatar    string    `json:"avatar,omitempty"`
	Website   string    `json:"website,omitempty" gorm:"size:50"`
	Password  string    `json:"-"` // Store hashed password, ignore for JSON serialization
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserCompact is the embedded author shape used in feed items and listings.
type UserCompact struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// ToCompact converts a User into its compact listing form.
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}

// UserProfile is the detail view of a user with aggregate counts and the
// caller-relative follow flag.
type UserProfile struct {
	User
	PostsCount     int64 `json:"posts_count"`
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
	IsFollowing    bool  `json:"is_following"`
}

// RegisterRequest defines the request body for account registration
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=30"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

// LoginRequest defines the request body for login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest defines the request body for refreshing a token pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ChangePasswordRequest defines the request body for a password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// UpdateProfileRequest defines the request body for profile edits
type UpdateProfileRequest struct {
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=200"`
	Avatar    string `json:"avatar,omitempty" validate:"omitempty,url"`
	Website   string `json:"website,omitempty" validate:"omitempty,url,max=50"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"` // "access" or "refresh"
	jwt.RegisteredClaims
}
