// Package campaign provides the campaign aggregate and its lifecycle rules.
//
// A campaign moves through pending → approved → (started) → finished, with
// rejection removing the record entirely. Enrollment, scheduling, and
// category data live on the aggregate; eligibility checks that need the
// whole store live in the policy package.
package campaign

import "time"

// Status is the admin-approval state that gates visibility and enrollment.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

const (
	// DefaultMaxPlayers is the enrollment capacity when none is chosen.
	DefaultMaxPlayers = 4
	// MaxTimeSlots bounds how many weekly slots a campaign may claim.
	MaxTimeSlots = 2
	// MaxCategories bounds the campaign category chips.
	MaxCategories = 3
)

// Campaign is a scheduled game instance owned by one master.
type Campaign struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	System      string      `json:"system,omitempty"`
	Description string      `json:"desc,omitempty"`
	Master      string      `json:"master"`
	Status      Status      `json:"status"`
	Enrolled    []string    `json:"enrolled"`
	Started     bool        `json:"started"`
	Finished    bool        `json:"finished"`
	Sessions    []time.Time `json:"sessions"`
	Schedule    []string    `json:"schedule"`
	Categories  []string    `json:"categories"`
	MaxPlayers  int         `json:"maxPlayers"`
	CreatedAt   time.Time   `json:"createdAt"`
	StartedAt   *time.Time  `json:"startedAt,omitempty"`
	FinishedAt  *time.Time  `json:"finishedAt,omitempty"`
}

// Active reports whether the campaign is approved and still running.
// Only active campaigns count against quotas and accept enrollment.
func (c *Campaign) Active() bool {
	return c.Status == StatusApproved && !c.Finished
}

// IsEnrolled reports whether the named user holds a seat.
func (c *Campaign) IsEnrolled(name string) bool {
	for _, u := range c.Enrolled {
		if u == name {
			return true
		}
	}
	return false
}

// Capacity returns the effective seat limit.
func (c *Campaign) Capacity() int {
	if c.MaxPlayers > 0 {
		return c.MaxPlayers
	}
	return DefaultMaxPlayers
}

// HasSession reports whether the timestamp is already on the calendar.
func (c *Campaign) HasSession(at time.Time) bool {
	for _, s := range c.Sessions {
		if s.Equal(at) {
			return true
		}
	}
	return false
}
