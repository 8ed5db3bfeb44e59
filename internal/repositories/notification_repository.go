package repositories

import (
	"github.com/Musabek03/Instagram-clone/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	CreateNotificationIfAbsent(notification *models.Notification) error
	GetByRecipientID(recipientID uint, offset, limit int) ([]models.Notification, int64, error)
	GetUnreadCount(recipientID uint) (int64, error)
	MarkAsRead(notificationID, recipientID uint) error
	MarkAllAsRead(recipientID uint) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// CreateNotificationIfAbsent inserts the notification unless one with the
// same (sender, receiver, type, post) key already exists. Like and follow
// fan-out goes through here so the same logical action firing twice emits
// at most one entry.
func (r *postgresNotificationRepository) CreateNotificationIfAbsent(notification *models.Notification) error {
	q := r.db.Where(
		"sender_id = ? AND receiver_id = ? AND type = ?",
		notification.SenderID, notification.ReceiverID, notification.Type,
	)
	if notification.PostID != nil {
		q = q.Where("post_id = ?", *notification.PostID)
	} else {
		q = q.Where("post_id IS NULL")
	}

	var existing models.Notification
	err := q.First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.Create(notification).Error
}

func (r *postgresNotificationRepository) GetByRecipientID(recipientID uint, offset, limit int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	if err := r.db.Model(&models.Notification{}).Where("receiver_id = ?", recipientID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("receiver_id = ?", recipientID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("receiver_id = ? AND is_read = ?", recipientID, false).Count(&count).Error
	return count, err
}

// MarkAsRead flips the read flag; scoped to the recipient so one account
// cannot mark another account's notifications.
func (r *postgresNotificationRepository) MarkAsRead(notificationID, recipientID uint) error {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND receiver_id = ?", notificationID, recipientID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postgresNotificationRepository) MarkAllAsRead(recipientID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("receiver_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
}
