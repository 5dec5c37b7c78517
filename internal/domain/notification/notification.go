// Package notification provides the write-only notification sink filled by
// lifecycle transitions and later marked read by the presentation layer.
package notification

import "time"

// Notification is one fire-and-forget message for a recipient.
type Notification struct {
	ID        string    `json:"id"`
	Recipient string    `json:"user"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}
