// Package notify appends notification-log entries as a side effect of
// comment, like and follow mutations. The mutating handler calls it
// directly so causality stays explicit. Insert failures are logged and
// swallowed: a lost notification never fails the triggering write.
package notify

import (
	"log/slog"

	"github.com/Musabek03/Instagram-clone/internal/models"
	"github.com/Musabek03/Instagram-clone/internal/repositories"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "notifications_emitted_total",
	Help: "Notifications written by fan-out, by type",
}, []string{"type"})

var notificationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "notifications_failed_total",
	Help: "Notification inserts that failed and were swallowed, by type",
}, []string{"type"})

// Notifier performs notification fan-out.
type Notifier struct {
	notifications repositories.NotificationRepository
}

// New creates a Notifier backed by the given repository.
func New(notifications repositories.NotificationRepository) *Notifier {
	return &Notifier{notifications: notifications}
}

// CommentCreated emits a comment notification to the post author. Authors
// commenting on their own posts produce no entry. Every other comment
// inserts unconditionally: two comments from the same user are two entries.
func (n *Notifier) CommentCreated(senderID uint, post *models.Post) {
	if senderID == post.AuthorID {
		return
	}
	postID := post.ID
	notification := &models.Notification{
		SenderID:   senderID,
		ReceiverID: post.AuthorID,
		Type:       models.NotificationTypeComment,
		PostID:     &postID,
	}
	if err := n.notifications.CreateNotification(notification); err != nil {
		notificationsFailed.WithLabelValues(string(models.NotificationTypeComment)).Inc()
		slog.Error("comment notification insert failed", "sender", senderID, "post", post.ID, "err", err)
		return
	}
	notificationsEmitted.WithLabelValues(string(models.NotificationTypeComment)).Inc()
}

// LikeAdded emits at most one like notification per (liker, post) edge.
// Self-likes produce no entry, and a duplicate toggle sequence reuses the
// existing entry via the create-if-absent path.
func (n *Notifier) LikeAdded(senderID uint, post *models.Post) {
	if senderID == post.AuthorID {
		return
	}
	postID := post.ID
	notification := &models.Notification{
		SenderID:   senderID,
		ReceiverID: post.AuthorID,
		Type:       models.NotificationTypeLike,
		PostID:     &postID,
	}
	if err := n.notifications.CreateNotificationIfAbsent(notification); err != nil {
		notificationsFailed.WithLabelValues(string(models.NotificationTypeLike)).Inc()
		slog.Error("like notification insert failed", "sender", senderID, "post", post.ID, "err", err)
		return
	}
	notificationsEmitted.WithLabelValues(string(models.NotificationTypeLike)).Inc()
}

// Followed emits at most one follow notification toward the followed
// account. Unfollow emits nothing.
func (n *Notifier) Followed(senderID, receiverID uint) {
	notification := &models.Notification{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Type:       models.NotificationTypeFollow,
	}
	if err := n.notifications.CreateNotificationIfAbsent(notification); err != nil {
		notificationsFailed.WithLabelValues(string(models.NotificationTypeFollow)).Inc()
		slog.Error("follow notification insert failed", "sender", senderID, "receiver", receiverID, "err", err)
		return
	}
	notificationsEmitted.WithLabelValues(string(models.NotificationTypeFollow)).Inc()
}
