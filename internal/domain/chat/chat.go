// Package chat provides per-campaign table talk.
package chat

import (
	"time"

	"github.com/tableforge/tableforge/internal/domain/dice"
)

// Type distinguishes plain messages from roll announcements.
type Type string

const (
	TypeText Type = "text"
	TypeRoll Type = "roll"
)

// Message is one chat entry, scoped to a campaign.
type Message struct {
	ID         string     `json:"id"`
	CampaignID string     `json:"campaign"`
	User       string     `json:"user"`
	Body       string     `json:"message"`
	Type       Type       `json:"type"`
	Roll       *dice.Roll `json:"roll,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}
