package entity

import "time"

// Notification is a per-user message. The only permitted mutation is
// flipping Read.
type Notification struct {
	ID        string
	UserID    string // recipient
	Message   string
	Read      bool
	CreatedAt time.Time
}
