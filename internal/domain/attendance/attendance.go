// Package attendance tracks per-session presence for enrolled players.
package attendance

import "time"

// Status is the confirmation state of one (campaign, user, session) record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusAbsent    Status = "absent"
)

// Record is one attendance entry. Records are created at enrollment time,
// one per session already on the campaign calendar; sessions scheduled
// later do not backfill records for existing players.
type Record struct {
	ID           string    `json:"id"`
	CampaignID   string    `json:"campaign"`
	CampaignName string    `json:"campaignName"`
	User         string    `json:"user"`
	Session      time.Time `json:"session"`
	Status       Status    `json:"status"`
	Reason       string    `json:"reason,omitempty"`
}
