package policy

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tableforge/tableforge/internal/domain/campaign"
	"github.com/tableforge/tableforge/internal/domain/mastery"
	"github.com/tableforge/tableforge/internal/domain/sheet"
	"github.com/tableforge/tableforge/internal/domain/user"
	"github.com/tableforge/tableforge/internal/state"
)

func testState() *state.State {
	st := state.New()
	st.Users = append(st.Users,
		user.User{Name: "ana", Role: user.RolePlayer},
		user.User{Name: "bruno", Role: user.RoleMaster, MasterTier: user.TierBronze},
	)
	st.Campaigns = append(st.Campaigns, campaign.Campaign{
		ID: "c1", Name: "Mesa Um", Master: "bruno",
		Status: campaign.StatusApproved, MaxPlayers: 4,
	})
	return st
}

func addCampaign(st *state.State, id, master string, status campaign.Status, enrolled ...string) {
	st.Campaigns = append(st.Campaigns, campaign.Campaign{
		ID: id, Name: id, Master: master, Status: status,
		Enrolled: enrolled, MaxPlayers: 4,
	})
}

func TestCanEnroll(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		st := testState()
		if err := CanEnroll(st, "ana", "c1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("campaign missing", func(t *testing.T) {
		st := testState()
		if err := CanEnroll(st, "ana", "ghost"); !errors.Is(err, ErrCampaignNotFound) {
			t.Fatalf("expected ErrCampaignNotFound, got %v", err)
		}
	})

	t.Run("pending campaign", func(t *testing.T) {
		st := testState()
		addCampaign(st, "c2", "bruno", campaign.StatusPending)
		if err := CanEnroll(st, "ana", "c2"); !errors.Is(err, campaign.ErrStatusDisallowsOperation) {
			t.Fatalf("expected status error, got %v", err)
		}
	})

	t.Run("own campaign", func(t *testing.T) {
		st := testState()
		if err := CanEnroll(st, "bruno", "c1"); !errors.Is(err, ErrOwnCampaign) {
			t.Fatalf("expected ErrOwnCampaign, got %v", err)
		}
	})

	t.Run("already enrolled", func(t *testing.T) {
		st := testState()
		st.Campaigns[0].Enrolled = []string{"ana"}
		if err := CanEnroll(st, "ana", "c1"); !errors.Is(err, ErrAlreadyEnrolled) {
			t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
		}
	})

	t.Run("capacity", func(t *testing.T) {
		st := testState()
		st.Campaigns[0].Enrolled = []string{"p1", "p2", "p3", "p4"}
		if err := CanEnroll(st, "ana", "c1"); !errors.Is(err, ErrCampaignFull) {
			t.Fatalf("expected ErrCampaignFull, got %v", err)
		}
	})

	t.Run("enrollment quota", func(t *testing.T) {
		st := testState()
		addCampaign(st, "c2", "bruno", campaign.StatusApproved, "ana")
		addCampaign(st, "c3", "bruno", campaign.StatusApproved, "ana")
		if err := CanEnroll(st, "ana", "c1"); !errors.Is(err, ErrEnrollmentQuota) {
			t.Fatalf("expected ErrEnrollmentQuota, got %v", err)
		}
	})

	t.Run("finished campaigns free quota", func(t *testing.T) {
		st := testState()
		addCampaign(st, "c2", "bruno", campaign.StatusApproved, "ana")
		addCampaign(st, "c3", "bruno", campaign.StatusApproved, "ana")
		st.Campaigns[2].Finished = true
		if err := CanEnroll(st, "ana", "c1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCanCreateCampaign(t *testing.T) {
	tests := []struct {
		name   string
		tier   user.Tier
		owned  int
		wantOK bool
	}{
		{"bronze under limit", user.TierBronze, 1, true},
		{"bronze at limit", user.TierBronze, 2, false},
		{"unset tier uses bronze limit", user.TierNone, 2, false},
		{"silver under limit", user.TierSilver, 2, true},
		{"silver at limit", user.TierSilver, 3, false},
		{"gold under limit", user.TierGold, 4, true},
		{"gold at limit", user.TierGold, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := state.New()
			st.Users = append(st.Users, user.User{Name: "m", Role: user.RoleMaster, MasterTier: tt.tier})
			for i := 0; i < tt.owned; i++ {
				addCampaign(st, fmt.Sprintf("c%d", i), "m", campaign.StatusApproved)
			}
			err := CanCreateCampaign(st, "m")
			if tt.wantOK && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.wantOK && !errors.Is(err, ErrCampaignQuota) {
				t.Fatalf("expected ErrCampaignQuota, got %v", err)
			}
		})
	}

	t.Run("pending campaigns count", func(t *testing.T) {
		st := state.New()
		st.Users = append(st.Users, user.User{Name: "m", Role: user.RoleMaster, MasterTier: user.TierBronze})
		addCampaign(st, "c1", "m", campaign.StatusApproved)
		addCampaign(st, "c2", "m", campaign.StatusPending)
		if err := CanCreateCampaign(st, "m"); !errors.Is(err, ErrCampaignQuota) {
			t.Fatalf("expected ErrCampaignQuota, got %v", err)
		}
	})
}

func TestCanStartCampaign(t *testing.T) {
	setup := func(statuses map[string]sheet.Status) *state.State {
		st := testState()
		st.Campaigns[0].Enrolled = []string{"ana", "clara"}
		for player, status := range statuses {
			st.CharacterSheets = append(st.CharacterSheets, sheet.Sheet{
				ID: "s-" + player, CampaignID: "c1", User: player, Status: status,
			})
		}
		return st
	}

	t.Run("all approved", func(t *testing.T) {
		st := setup(map[string]sheet.Status{"ana": sheet.StatusApproved, "clara": sheet.StatusApproved})
		if err := CanStartCampaign(st, "c1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("pending sheet blocks", func(t *testing.T) {
		st := setup(map[string]sheet.Status{"ana": sheet.StatusApproved, "clara": sheet.StatusPending})
		if err := CanStartCampaign(st, "c1"); !errors.Is(err, ErrIncompleteApproval) {
			t.Fatalf("expected ErrIncompleteApproval, got %v", err)
		}
	})

	t.Run("rejected sheet blocks", func(t *testing.T) {
		st := setup(map[string]sheet.Status{"ana": sheet.StatusRejected, "clara": sheet.StatusApproved})
		if err := CanStartCampaign(st, "c1"); !errors.Is(err, ErrIncompleteApproval) {
			t.Fatalf("expected ErrIncompleteApproval, got %v", err)
		}
	})

	t.Run("missing sheet blocks", func(t *testing.T) {
		st := setup(map[string]sheet.Status{"ana": sheet.StatusApproved})
		if err := CanStartCampaign(st, "c1"); !errors.Is(err, ErrIncompleteApproval) {
			t.Fatalf("expected ErrIncompleteApproval, got %v", err)
		}
	})

	t.Run("empty table can start", func(t *testing.T) {
		st := testState()
		if err := CanStartCampaign(st, "c1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCanRequestMastery(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		st := testState()
		st.Users[0].SessionsAttended = 3
		if err := CanRequestMastery(st, "ana", 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("too few sessions", func(t *testing.T) {
		st := testState()
		st.Users[0].SessionsAttended = 2
		if err := CanRequestMastery(st, "ana", 10); !errors.Is(err, ErrRequirementsNotMet) {
			t.Fatalf("expected ErrRequirementsNotMet, got %v", err)
		}
	})

	t.Run("failing score", func(t *testing.T) {
		st := testState()
		st.Users[0].SessionsAttended = 5
		if err := CanRequestMastery(st, "ana", 6); !errors.Is(err, ErrRequirementsNotMet) {
			t.Fatalf("expected ErrRequirementsNotMet, got %v", err)
		}
	})

	t.Run("pending request blocks", func(t *testing.T) {
		st := testState()
		st.Users[0].SessionsAttended = 5
		st.MasterRequests = append(st.MasterRequests, mastery.Request{ID: "m1", User: "ana", Status: mastery.StatusPending})
		if err := CanRequestMastery(st, "ana", 9); !errors.Is(err, ErrDuplicateRequest) {
			t.Fatalf("expected ErrDuplicateRequest, got %v", err)
		}
	})

	t.Run("rejected request allows retry", func(t *testing.T) {
		st := testState()
		st.Users[0].SessionsAttended = 5
		st.MasterRequests = append(st.MasterRequests, mastery.Request{ID: "m1", User: "ana", Status: mastery.StatusRejected})
		if err := CanRequestMastery(st, "ana", 9); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSlotHolders(t *testing.T) {
	st := state.New()
	now := time.Now()
	st.Campaigns = append(st.Campaigns,
		campaign.Campaign{ID: "c1", Master: "bruno", Status: campaign.StatusApproved, Schedule: []string{"20:00"}, CreatedAt: now},
		campaign.Campaign{ID: "c2", Master: "carla", Status: campaign.StatusApproved, Schedule: []string{"20:00"}, CreatedAt: now},
		campaign.Campaign{ID: "c3", Master: "carla", Status: campaign.StatusApproved, Schedule: []string{"18:00"}, CreatedAt: now},
		campaign.Campaign{ID: "c4", Master: "davi", Status: campaign.StatusApproved, Schedule: []string{"20:00"}, Finished: true, CreatedAt: now},
	)

	holders := SlotHolders(st, "20:00", "bruno")
	if len(holders) != 1 || holders[0].ID != "c2" {
		t.Fatalf("expected only c2 holding 20:00, got %v", holders)
	}

	// Advisory only: the same slot can be claimed again; the lookup just
	// reports the holders.
	all := SlotHolders(st, "20:00", "")
	if len(all) != 2 {
		t.Fatalf("expected 2 active holders, got %d", len(all))
	}
}
