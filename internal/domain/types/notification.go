package types

import "time"

// NotificationType selects the fixed title and presentation of a notification.
type NotificationType string

// Notification severities.
const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
	NotifyWarning NotificationType = "warning"
	NotifyInfo    NotificationType = "info"
)

// Notification is one entry of the in-process notification queue. It is
// created by the UI state helpers and expires on its own unless removed first.
type Notification struct {
	ID        NotificationID
	Type      NotificationType
	Title     string
	Message   string
	CreatedAt time.Time
}
