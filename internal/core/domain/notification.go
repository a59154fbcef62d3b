package domain

import "time"

// NotificationVariant distinguishes success toasts from failure ones.
type NotificationVariant string

const (
	NotificationDefault     NotificationVariant = "default"
	NotificationDestructive NotificationVariant = "destructive"
)

// Notification is a human-readable outcome of a session operation, raised as
// a side effect for the presentation layer to display.
type Notification struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
	At          time.Time           `json:"at"`
}
