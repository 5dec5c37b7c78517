// Package sheet provides the character-sheet aggregate and its approval
// state machine: pending → approved / rejected, with any re-upload
// resetting the sheet back to pending.
package sheet

import "time"

// Status is the master-approval state of a sheet.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Sheet is one player's character sheet for one campaign. At most one
// exists per (campaign, user) pair.
type Sheet struct {
	ID         string     `json:"id"`
	CampaignID string     `json:"campaign"`
	User       string     `json:"user"`
	ImageRef   string     `json:"image"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// IsTransitionAllowed enforces the sheet approval state machine. A master
// decision is only valid on a pending sheet; a re-upload resets any state
// back to pending.
func IsTransitionAllowed(from, to Status) bool {
	switch to {
	case StatusApproved, StatusRejected:
		return from == StatusPending
	case StatusPending:
		return true
	default:
		return false
	}
}
