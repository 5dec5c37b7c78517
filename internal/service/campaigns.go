package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tableforge/tableforge/internal/domain/attendance"
	"github.com/tableforge/tableforge/internal/domain/campaign"
	"github.com/tableforge/tableforge/internal/domain/user"
	apperrors "github.com/tableforge/tableforge/internal/platform/errors"
	"github.com/tableforge/tableforge/internal/policy"
)

var (
	// ErrCampaignNameEmpty indicates a submission without a name.
	ErrCampaignNameEmpty = apperrors.New(apperrors.CodeCampaignNameEmpty, "campaign name is required")
	// ErrTooManySlots indicates a schedule over the per-campaign slot cap.
	ErrTooManySlots = apperrors.New(apperrors.CodeCampaignTooManySlots, "campaign claims too many weekly slots")
	// ErrInvalidSlot indicates a slot outside the weekly grid.
	ErrInvalidSlot = apperrors.New(apperrors.CodeCampaignInvalidSlot, "slot is not on the weekly grid")
	// ErrDuplicateSession indicates a session already on the calendar.
	ErrDuplicateSession = apperrors.New(apperrors.CodeCampaignDuplicateSession, "session already scheduled")
	// ErrNotEnrolled indicates a player command against a campaign the
	// player has no seat in.
	ErrNotEnrolled = apperrors.New(apperrors.CodeCampaignNotEnrolled, "user is not enrolled in this campaign")
)

// CampaignInput carries the fields of a campaign submission.
type CampaignInput struct {
	Name        string
	System      string
	Description string
	MaxPlayers  int
	Schedule    []string
	Categories  []string
}

// CampaignUpdate carries the fields a master may edit after submission.
type CampaignUpdate struct {
	Name        string
	System      string
	Description string
}

// SubmitCampaign creates a campaign awaiting admin approval. The actor
// must hold the master role and have room under the tier quota.
func (s *Service) SubmitCampaign(ctx context.Context, masterName string, in CampaignInput) (campaign.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, ok := s.st.UserByName(masterName)
	if !ok {
		return campaign.Campaign{}, ErrUserNotFound
	}
	if actor.Role == user.RolePlayer {
		return campaign.Campaign{}, ErrNotMaster
	}
	if err := policy.CanCreateCampaign(s.st, masterName); err != nil {
		return campaign.Campaign{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return campaign.Campaign{}, ErrCampaignNameEmpty
	}
	if len(in.Schedule) > campaign.MaxTimeSlots {
		return campaign.Campaign{}, ErrTooManySlots
	}
	for _, slot := range in.Schedule {
		if !campaign.IsValidSlot(slot) {
			return campaign.Campaign{}, apperrors.WithMetadata(
				apperrors.CodeCampaignInvalidSlot,
				"slot is not on the weekly grid",
				map[string]string{"slot": slot},
			)
		}
	}
	maxPlayers := in.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = campaign.DefaultMaxPlayers
	}
	categories := in.Categories
	if len(categories) > campaign.MaxCategories {
		categories = categories[:campaign.MaxCategories]
	}

	c := campaign.Campaign{
		ID:          s.newID(),
		Name:        name,
		System:      in.System,
		Description: in.Description,
		Master:      masterName,
		Status:      campaign.StatusPending,
		Enrolled:    []string{},
		Sessions:    []time.Time{},
		Schedule:    append([]string(nil), in.Schedule...),
		Categories:  append([]string(nil), categories...),
		MaxPlayers:  maxPlayers,
		CreatedAt:   s.stamp(),
	}
	s.st.Campaigns = append(s.st.Campaigns, c)
	s.save(ctx)
	return c, nil
}

// ApproveCampaign opens a pending campaign for enrollment. Admin only.
func (s *Service) ApproveCampaign(ctx context.Context, adminName, campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(adminName); err != nil {
		return err
	}
	c, ok := s.st.CampaignByID(campaignID)
	if !ok {
		return ErrCampaignNotFound
	}
	if err := campaign.ValidateOperation(c, campaign.OpApprove); err != nil {
		return err
	}
	c.Status = campaign.StatusApproved
	s.notify(c.Master, "Campanha Aprovada", fmt.Sprintf("Sua campanha %q foi aprovada!", c.Name))
	s.save(ctx)
	return nil
}

// RejectCampaign removes a pending campaign. Admin only. Later lookups
// of the id fail with a not-found error.
func (s *Service) RejectCampaign(ctx context.Context, adminName, campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(adminName); err != nil {
		return err
	}
	c, ok := s.st.CampaignByID(campaignID)
	if !ok {
		return ErrCampaignNotFound
	}
	if err := campaign.ValidateOperation(c, campaign.OpReject); err != nil {
		return err
	}
	s.notify(c.Master, "Campanha Rejeitada", fmt.Sprintf("Sua campanha %q foi rejeitada.", c.Name))
	for i := range s.st.Campaigns {
		if s.st.Campaigns[i].ID == campaignID {
			s.st.Campaigns = append(s.st.Campaigns[:i], s.st.Campaigns[i+1:]...)
			break
		}
	}
	s.save(ctx)
	return nil
}

// UpdateCampaign edits the descriptive fields of a campaign the actor
// owns. Finished campaigns are read-only.
func (s *Service) UpdateCampaign(ctx context.Context, masterName, campaignID string, in CampaignUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.st.CampaignByID(campaignID)
	if !ok {
		return ErrCampaignNotFound
	}
	if err := requireOwner(c, masterName); err != nil {
		return err
	}
	if err := campaign.ValidateOperation(c, campaign.OpMutate); err != nil {
		return err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ErrCampaignNameEmpty
	}
	c.Name = name
	c.System = in.System
	c.Description = in.Description
	s.save(ctx)
	return nil
}

// StartCampaign marks the campaign as running once every enrolled player
// has an approved sheet. An empty table may start. Owner only.
func (s *Service) StartCampaign(ctx context.Context, masterName, campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.st.CampaignByID(campaignID)
	if !ok {
		return ErrCampaignNotFound
	}
	if err := requireOwner(c, masterName); err != nil {
		return err
	}
	if err := policy.CanStartCampaign(s.st, campaignID); err != nil {
		return err
	}
	now := s.stamp()
	c.Started = true
	c.StartedAt = &now
	for _, player := range c.Enrolled {
		s.notify(player, "Campanha Iniciada", fmt.Sprintf("A campanha %q foi iniciada!", c.Name))
	}
	s.save(ctx)
	return nil
}

// FinishCampaign archives the campaign. Its records stay readable but no
// further mutation is accepted. Owner only.
func (s *Service) FinishCampaign(ctx context.Context, masterName, campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.st.CampaignByID(campaignID)
	if !ok {
		return ErrCampaignNotFound
	}
	if err := requireOwner(c, masterName); err != nil {
		return err
	}
	if err := campaign.ValidateOperation(c, campaign.OpFinish); err != nil {
		return err
	}
	now := s.stamp()
	c.Finished = true
	c.FinishedAt = &now
	s.save(ctx)
	return nil
}

// ScheduleSession adds a session date to the campaign calendar. Players
// already seated do not get attendance records backfilled; they confirm
// or excuse themselves per session. Owner only.
func (s *Service) ScheduleSession(ctx context.Context, masterName, campaignID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.st.CampaignByID(campaignID)
	if !ok {
		return ErrCampaignNotFound
	}
	if err := requireOwner(c, masterName); err != nil {
		return err
	}
	if err := campaign.ValidateOperation(c, campaign.OpSchedule); err != nil {
		return err
	}
	if c.HasSession(at) {
		return ErrDuplicateSession
	}
	c.Sessions = append(c.Sessions, at.UTC())
	s.save(ctx)
	return nil
}

// Enroll claims a seat. On success a pending attendance record is created
// for every session already on the calendar.
func (s *Service) Enroll(ctx context.Context, userName, campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := policy.CanEnroll(s.st, userName, campaignID); err != nil {
		return err
	}
	c, _ := s.st.CampaignByID(campaignID)
	c.Enrolled = append(c.Enrolled, userName)
	for _, session := range c.Sessions {
		s.st.Attendance = append(s.st.Attendance, attendance.Record{
			ID:           s.newID(),
			CampaignID:   c.ID,
			CampaignName: c.Name,
			User:         userName,
			Session:      session,
			Status:       attendance.StatusPending,
		})
	}
	s.save(ctx)
	return nil
}

// Leave gives up a seat. The leaver's attendance records and character
// sheet for this campaign go with it; other players' records and the
// campaign itself are untouched.
func (s *Service) Leave(ctx context.Context, userName, campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.st.CampaignByID(campaignID)
	if !ok {
		return ErrCampaignNotFound
	}
	if !c.IsEnrolled(userName) {
		return ErrNotEnrolled
	}
	for i, seat := range c.Enrolled {
		if seat == userName {
			c.Enrolled = append(c.Enrolled[:i], c.Enrolled[i+1:]...)
			break
		}
	}
	s.st.Attendance = filterInPlace(s.st.Attendance, func(i int) bool {
		rec := s.st.Attendance[i]
		return !(rec.User == userName && rec.CampaignID == campaignID)
	})
	s.st.CharacterSheets = filterInPlace(s.st.CharacterSheets, func(i int) bool {
		sh := s.st.CharacterSheets[i]
		return !(sh.User == userName && sh.CampaignID == campaignID)
	})
	s.save(ctx)
	return nil
}

// SlotConflicts reports the approved campaigns of other masters that
// already claim a weekly slot. The result is advisory: submissions with
// overlapping slots are still accepted.
func (s *Service) SlotConflicts(slot, masterName string) []campaign.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	return policy.SlotHolders(s.st, slot, masterName)
}

// RoomSchedule maps every claimed weekly slot to the campaigns holding
// it, for the shared schedule board.
func (s *Service) RoomSchedule() map[string][]campaign.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := make(map[string][]campaign.Campaign)
	for _, c := range s.st.Campaigns {
		if !c.Active() {
			continue
		}
		for _, slot := range c.Schedule {
			board[slot] = append(board[slot], c)
		}
	}
	return board
}
