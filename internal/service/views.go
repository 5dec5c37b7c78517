package service

import (
	"github.com/tableforge/tableforge/internal/domain/campaign"
	"github.com/tableforge/tableforge/internal/domain/mastery"
	"github.com/tableforge/tableforge/internal/domain/sheet"
	"github.com/tableforge/tableforge/internal/domain/user"
	"github.com/tableforge/tableforge/internal/state"
)

// User returns one account by name.
func (s *Service) User(name string) (user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.st.UserByName(name); ok {
		return *u, true
	}
	return user.User{}, false
}

// Campaign returns one campaign by id.
func (s *Service) Campaign(id string) (campaign.Campaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.st.CampaignByID(id); ok {
		return *c, true
	}
	return campaign.Campaign{}, false
}

// Campaigns returns every campaign in submission order.
func (s *Service) Campaigns() []campaign.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]campaign.Campaign(nil), s.st.Campaigns...)
}

// OpenCampaigns returns the approved, unfinished campaigns a player could
// browse for a seat.
func (s *Service) OpenCampaigns() []campaign.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []campaign.Campaign
	for _, c := range s.st.Campaigns {
		if c.Active() {
			out = append(out, c)
		}
	}
	return out
}

// CampaignsByMaster returns every campaign the master owns, finished
// ones included.
func (s *Service) CampaignsByMaster(masterName string) []campaign.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []campaign.Campaign
	for _, c := range s.st.Campaigns {
		if c.Master == masterName {
			out = append(out, c)
		}
	}
	return out
}

// Enrollments returns the active campaigns the user holds a seat in.
func (s *Service) Enrollments(userName string) []campaign.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []campaign.Campaign
	for _, c := range s.st.ActiveEnrollments(userName) {
		out = append(out, *c)
	}
	return out
}

// SheetsByCampaign returns every character sheet filed for a campaign.
func (s *Service) SheetsByCampaign(campaignID string) []sheet.Sheet {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []sheet.Sheet
	for _, sh := range s.st.CharacterSheets {
		if sh.CampaignID == campaignID {
			out = append(out, sh)
		}
	}
	return out
}

// PendingMasterRequests returns the promotion requests awaiting a
// verdict.
func (s *Service) PendingMasterRequests() []mastery.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []mastery.Request
	for _, r := range s.st.MasterRequests {
		if r.Status == mastery.StatusPending {
			out = append(out, r)
		}
	}
	return out
}

// AdminStats returns the dashboard counters.
func (s *Service) AdminStats() state.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.AdminStats()
}

// Ranking returns the club-wide attendance aggregates.
func (s *Service) Ranking() state.RankingStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Ranking()
}

// Leaderboard returns up to n players by sessions attended.
func (s *Service) Leaderboard(n int) []user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Leaderboard(n)
}
