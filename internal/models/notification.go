package models

import "time"

// NotificationType is the closed set of fan-out kinds.
type NotificationType string

const (
	NotificationTypeLike    NotificationType = "like"
	NotificationTypeComment NotificationType = "comment"
	NotificationTypeFollow  NotificationType = "follow"
)

// Notification represents a fan-out entry in a user's notification log.
// PostID is nil for follow notifications and is deliberately not a foreign
// key: deleting a post leaves its past notifications dangling-safe.
type Notification struct {
	ID         uint             `json:"id" gorm:"primaryKey"`
	SenderID   uint             `json:"sender_id" gorm:"index"`
	ReceiverID uint             `json:"receiver_id" gorm:"index"`
	Type       NotificationType `json:"type" gorm:"size:30;index"`
	PostID     *uint            `json:"post_id,omitempty"`
	IsRead     bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt  time.Time        `json:"created_at" gorm:"index"`
}
