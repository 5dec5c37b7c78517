// Package policy is the eligibility engine: pure, side-effect-free
// predicates over a state snapshot. Centralizing these checks keeps every
// lifecycle rule testable without a rendering surface.
package policy

import (
	"strconv"

	"github.com/tableforge/tableforge/internal/domain/campaign"
	"github.com/tableforge/tableforge/internal/domain/mastery"
	"github.com/tableforge/tableforge/internal/domain/sheet"
	"github.com/tableforge/tableforge/internal/domain/user"
	apperrors "github.com/tableforge/tableforge/internal/platform/errors"
	"github.com/tableforge/tableforge/internal/state"
)

// MaxActiveEnrollments bounds how many non-finished approved campaigns a
// user may be enrolled in at once.
const MaxActiveEnrollments = 2

var (
	// ErrCampaignNotFound indicates a stale campaign reference.
	ErrCampaignNotFound = apperrors.New(apperrors.CodeNotFound, "campaign not found")
	// ErrUserNotFound indicates a stale user reference.
	ErrUserNotFound = apperrors.New(apperrors.CodeNotFound, "user not found")
	// ErrCampaignFull indicates enrollment at capacity.
	ErrCampaignFull = apperrors.New(apperrors.CodeCapacityExceeded, "campaign is full")
	// ErrEnrollmentQuota indicates the user is already in the maximum of
	// active campaigns.
	ErrEnrollmentQuota = apperrors.New(apperrors.CodeQuotaExceeded, "active enrollment limit reached")
	// ErrCampaignQuota indicates the master reached the tier limit on
	// concurrent campaigns.
	ErrCampaignQuota = apperrors.New(apperrors.CodeQuotaExceeded, "active campaign limit reached")
	// ErrAlreadyEnrolled indicates a duplicate seat claim.
	ErrAlreadyEnrolled = apperrors.New(apperrors.CodeCampaignAlreadyEnrolled, "user already enrolled")
	// ErrOwnCampaign indicates a master enrolling in their own table.
	ErrOwnCampaign = apperrors.New(apperrors.CodeCampaignOwnEnrollment, "masters cannot enroll in their own campaign")
	// ErrIncompleteApproval indicates unapproved sheets blocking a start.
	ErrIncompleteApproval = apperrors.New(apperrors.CodeIncompleteApproval, "every enrolled player needs an approved sheet")
	// ErrRequirementsNotMet indicates missing promotion prerequisites.
	ErrRequirementsNotMet = apperrors.New(apperrors.CodeRequirementsNotMet, "promotion requirements not met")
	// ErrDuplicateRequest indicates an existing pending or approved
	// promotion request.
	ErrDuplicateRequest = apperrors.New(apperrors.CodeDuplicateRequest, "promotion request already submitted")
)

// CanEnroll reports whether the user may take a seat in the campaign.
func CanEnroll(st *state.State, userName, campaignID string) error {
	c, ok := st.CampaignByID(campaignID)
	if !ok {
		return ErrCampaignNotFound
	}
	if err := campaign.ValidateOperation(c, campaign.OpEnroll); err != nil {
		return err
	}
	if c.Master == userName {
		return ErrOwnCampaign
	}
	if c.IsEnrolled(userName) {
		return ErrAlreadyEnrolled
	}
	if len(c.Enrolled) >= c.Capacity() {
		return ErrCampaignFull
	}
	if len(st.ActiveEnrollments(userName)) >= MaxActiveEnrollments {
		return ErrEnrollmentQuota
	}
	return nil
}

// CanCreateCampaign reports whether the master has quota for another
// non-finished campaign. Pending campaigns count against the quota.
func CanCreateCampaign(st *state.State, masterName string) error {
	u, ok := st.UserByName(masterName)
	if !ok {
		return ErrUserNotFound
	}
	limit := user.TierLimit(u.MasterTier)
	if len(st.ActiveCampaignsByMaster(masterName)) >= limit {
		return apperrors.WithMetadata(
			apperrors.CodeQuotaExceeded,
			"active campaign limit reached",
			map[string]string{"limit": strconv.Itoa(limit), "tier": string(u.MasterTier)},
		)
	}
	return nil
}

// CanStartCampaign succeeds only when every enrolled player has an approved
// sheet for the campaign. A missing sheet blocks the start just like a
// pending or rejected one.
func CanStartCampaign(st *state.State, campaignID string) error {
	c, ok := st.CampaignByID(campaignID)
	if !ok {
		return ErrCampaignNotFound
	}
	if err := campaign.ValidateOperation(c, campaign.OpStart); err != nil {
		return err
	}
	for _, player := range c.Enrolled {
		s, ok := st.SheetFor(campaignID, player)
		if !ok || s.Status != sheet.StatusApproved {
			return apperrors.WithMetadata(
				apperrors.CodeIncompleteApproval,
				"every enrolled player needs an approved sheet",
				map[string]string{"player": player},
			)
		}
	}
	return nil
}

// CanRequestMastery checks the promotion prerequisites: enough attended
// sessions, a passing exam score, and no pending or approved request
// already on file. A previously rejected request does not block a retry.
func CanRequestMastery(st *state.State, userName string, examScore int) error {
	u, ok := st.UserByName(userName)
	if !ok {
		return ErrUserNotFound
	}
	if _, blocked := st.BlockingMasterRequest(userName); blocked {
		return ErrDuplicateRequest
	}
	if u.SessionsAttended < mastery.MinSessions || !mastery.Passed(examScore) {
		return apperrors.WithMetadata(
			apperrors.CodeRequirementsNotMet,
			"promotion requirements not met",
			map[string]string{
				"sessions": strconv.Itoa(u.SessionsAttended),
				"score":    strconv.Itoa(examScore),
			},
		)
	}
	return nil
}

// SlotHolders returns the non-finished campaigns claiming the weekly slot,
// excluding the named master's own tables. The lookup is advisory: it
// feeds the room-schedule conflict view and never blocks creation.
func SlotHolders(st *state.State, slot, excludeMaster string) []campaign.Campaign {
	var out []campaign.Campaign
	for i := range st.Campaigns {
		c := &st.Campaigns[i]
		if c.Finished || c.Master == excludeMaster {
			continue
		}
		if c.ClaimsSlot(slot) {
			out = append(out, *c)
		}
	}
	return out
}
