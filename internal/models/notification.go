package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
)

// Notification is an in-app message for a user, created as a side effect of
// budget evaluation.
//
// Notifications are never deleted. "Clear all" marks everything read.
type Notification struct {
	DefaultModel
	UserID  uuid.UUID
	User    User `json:"-"`
	Type    NotificationType
	Message string
	Read    bool
}

func (n *Notification) BeforeSave(_ *gorm.DB) error {
	if n.Type == "" {
		n.Type = NotificationTypeInfo
	}

	if n.Type != NotificationTypeInfo && n.Type != NotificationTypeWarning {
		return ErrNotificationTypeInvalid
	}

	return nil
}

// MarkAllNotificationsRead marks every unread notification of a user as read.
func MarkAllNotificationsRead(db *gorm.DB, userID uuid.UUID) error {
	return db.Model(&Notification{}).
		Where(&Notification{UserID: userID}).
		Where("read = ?", false).
		Update("read", true).Error
}
