package state

import (
	"sort"
	"time"

	"github.com/tableforge/tableforge/internal/domain/attendance"
	"github.com/tableforge/tableforge/internal/domain/campaign"
	"github.com/tableforge/tableforge/internal/domain/chat"
	"github.com/tableforge/tableforge/internal/domain/dice"
	"github.com/tableforge/tableforge/internal/domain/mastery"
	"github.com/tableforge/tableforge/internal/domain/notification"
	"github.com/tableforge/tableforge/internal/domain/sheet"
	"github.com/tableforge/tableforge/internal/domain/user"
)

// UserByName returns a pointer into the store so callers can mutate the
// record in place.
func (st *State) UserByName(name string) (*user.User, bool) {
	for i := range st.Users {
		if st.Users[i].Name == name {
			return &st.Users[i], true
		}
	}
	return nil, false
}

// CampaignByID returns a pointer into the store.
func (st *State) CampaignByID(id string) (*campaign.Campaign, bool) {
	for i := range st.Campaigns {
		if st.Campaigns[i].ID == id {
			return &st.Campaigns[i], true
		}
	}
	return nil, false
}

// ActiveEnrollments returns the non-finished approved campaigns the user
// holds a seat in.
func (st *State) ActiveEnrollments(name string) []*campaign.Campaign {
	var out []*campaign.Campaign
	for i := range st.Campaigns {
		c := &st.Campaigns[i]
		if c.Active() && c.IsEnrolled(name) {
			out = append(out, c)
		}
	}
	return out
}

// ActiveCampaignsByMaster returns the master's non-finished campaigns,
// pending ones included: a pending campaign still occupies a quota slot.
func (st *State) ActiveCampaignsByMaster(master string) []*campaign.Campaign {
	var out []*campaign.Campaign
	for i := range st.Campaigns {
		c := &st.Campaigns[i]
		if c.Master == master && !c.Finished {
			out = append(out, c)
		}
	}
	return out
}

// SheetFor returns the character sheet for one (campaign, user) pair.
func (st *State) SheetFor(campaignID, userName string) (*sheet.Sheet, bool) {
	for i := range st.CharacterSheets {
		s := &st.CharacterSheets[i]
		if s.CampaignID == campaignID && s.User == userName {
			return s, true
		}
	}
	return nil, false
}

// AttendanceFor returns the record for one (campaign, user, session)
// triple.
func (st *State) AttendanceFor(campaignID, userName string, session time.Time) (*attendance.Record, bool) {
	for i := range st.Attendance {
		r := &st.Attendance[i]
		if r.CampaignID == campaignID && r.User == userName && r.Session.Equal(session) {
			return r, true
		}
	}
	return nil, false
}

// AttendanceByUser returns the user's records, optionally filtered by
// status. An empty status matches everything.
func (st *State) AttendanceByUser(userName string, status attendance.Status) []attendance.Record {
	var out []attendance.Record
	for _, r := range st.Attendance {
		if r.User != userName {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, r)
	}
	return out
}

// MasterRequestByID returns a pointer into the store.
func (st *State) MasterRequestByID(id string) (*mastery.Request, bool) {
	for i := range st.MasterRequests {
		if st.MasterRequests[i].ID == id {
			return &st.MasterRequests[i], true
		}
	}
	return nil, false
}

// BlockingMasterRequest returns the user's pending or approved request, if
// any. Rejected requests do not block a retry.
func (st *State) BlockingMasterRequest(userName string) (*mastery.Request, bool) {
	for i := range st.MasterRequests {
		r := &st.MasterRequests[i]
		if r.User == userName && r.Blocks() {
			return r, true
		}
	}
	return nil, false
}

// NotificationByID returns a pointer into the store.
func (st *State) NotificationByID(id string) (*notification.Notification, bool) {
	for i := range st.Notifications {
		if st.Notifications[i].ID == id {
			return &st.Notifications[i], true
		}
	}
	return nil, false
}

// NotificationsFor returns the recipient's notifications in insertion
// order.
func (st *State) NotificationsFor(recipient string) []notification.Notification {
	var out []notification.Notification
	for _, n := range st.Notifications {
		if n.Recipient == recipient {
			out = append(out, n)
		}
	}
	return out
}

// UnreadCount returns how many notifications the recipient has not read.
func (st *State) UnreadCount(recipient string) int {
	count := 0
	for _, n := range st.Notifications {
		if n.Recipient == recipient && !n.Read {
			count++
		}
	}
	return count
}

// MacroByID returns a pointer into the store.
func (st *State) MacroByID(id string) (*dice.Macro, bool) {
	for i := range st.DiceMacros {
		if st.DiceMacros[i].ID == id {
			return &st.DiceMacros[i], true
		}
	}
	return nil, false
}

// MacrosByUser returns the user's saved macros in insertion order.
func (st *State) MacrosByUser(userName string) []dice.Macro {
	var out []dice.Macro
	for _, m := range st.DiceMacros {
		if m.User == userName {
			out = append(out, m)
		}
	}
	return out
}

// MessagesByCampaign returns a campaign's chat log in insertion order.
func (st *State) MessagesByCampaign(campaignID string) []chat.Message {
	var out []chat.Message
	for _, m := range st.ChatMessages {
		if m.CampaignID == campaignID {
			out = append(out, m)
		}
	}
	return out
}

// Stats summarizes the store for the admin dashboard.
type Stats struct {
	Users            int
	Campaigns        int
	PendingCampaigns int
	ActiveCampaigns  int
}

// AdminStats computes the dashboard counters.
func (st *State) AdminStats() Stats {
	s := Stats{Users: len(st.Users), Campaigns: len(st.Campaigns)}
	for i := range st.Campaigns {
		c := &st.Campaigns[i]
		if c.Status == campaign.StatusPending {
			s.PendingCampaigns++
		}
		if c.Active() {
			s.ActiveCampaigns++
		}
	}
	return s
}

// RankingStats aggregates attendance across players with at least one
// confirmed session.
type RankingStats struct {
	ActivePlayers   int
	TotalSessions   int
	AverageSessions float64
}

// Ranking computes the club-wide attendance aggregates.
func (st *State) Ranking() RankingStats {
	var rs RankingStats
	for _, u := range st.Users {
		if u.SessionsAttended > 0 {
			rs.ActivePlayers++
			rs.TotalSessions += u.SessionsAttended
		}
	}
	if rs.ActivePlayers > 0 {
		rs.AverageSessions = float64(rs.TotalSessions) / float64(rs.ActivePlayers)
	}
	return rs
}

// Leaderboard returns up to n users ordered by sessions attended,
// excluding admin accounts. Ties keep registration order.
func (st *State) Leaderboard(n int) []user.User {
	var players []user.User
	for _, u := range st.Users {
		if u.Role != user.RoleAdmin {
			players = append(players, u)
		}
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].SessionsAttended > players[j].SessionsAttended
	})
	if n > 0 && len(players) > n {
		players = players[:n]
	}
	return players
}
