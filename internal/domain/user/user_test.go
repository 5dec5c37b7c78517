package user

import (
	"testing"
	"time"
)

func TestTierLimit(t *testing.T) {
	tests := []struct {
		name string
		tier Tier
		want int
	}{
		{"bronze", TierBronze, 2},
		{"silver", TierSilver, 3},
		{"gold", TierGold, 5},
		{"unset defaults to bronze", TierNone, 2},
		{"unknown defaults to bronze", Tier("Platinum"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierLimit(tt.tier); got != tt.want {
				t.Fatalf("TierLimit(%q) = %d, want %d", tt.tier, got, tt.want)
			}
		})
	}
}

func TestGrantDeduplicatesByName(t *testing.T) {
	u := User{Name: "ana", Role: RolePlayer}
	badge := Achievement{Name: AchievementVeteran, Icon: "⭐", EarnedAt: time.Now()}

	if !u.Grant(badge) {
		t.Fatal("first grant should succeed")
	}
	if u.Grant(badge) {
		t.Fatal("second grant should be rejected")
	}

	count := 0
	for _, a := range u.Achievements {
		if a.Name == AchievementVeteran {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one %q entry, got %d", AchievementVeteran, count)
	}
}

func TestMissingAchievements(t *testing.T) {
	tests := []struct {
		name string
		user User
		want []string
	}{
		{
			name: "no sessions",
			user: User{Role: RolePlayer},
			want: nil,
		},
		{
			name: "first session",
			user: User{Role: RolePlayer, SessionsAttended: 1},
			want: []string{AchievementFirstSession},
		},
		{
			name: "veteran threshold grants backlog",
			user: User{Role: RolePlayer, SessionsAttended: 5},
			want: []string{AchievementFirstSession, AchievementVeteran},
		},
		{
			name: "legendary master",
			user: User{Role: RoleMaster, SessionsAttended: 10},
			want: []string{AchievementFirstSession, AchievementVeteran, AchievementLegendary, AchievementFirstMaster},
		},
		{
			name: "already earned are skipped",
			user: User{
				Role:             RolePlayer,
				SessionsAttended: 5,
				Achievements:     []Achievement{{Name: AchievementFirstSession}},
			},
			want: []string{AchievementVeteran},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingAchievements(tt.user)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d badges, got %d (%v)", len(tt.want), len(got), got)
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Fatalf("badge %d = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}
