package models

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient status message.
type Notification struct {
	Message string
	Kind    NotificationKind
}
