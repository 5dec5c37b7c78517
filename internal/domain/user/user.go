// Package user provides the user aggregate: identity, role, master tier,
// attendance counter, and earned achievements.
package user

import "time"

// Role describes what a user is allowed to do in the club.
type Role string

const (
	RolePlayer Role = "player"
	RoleMaster Role = "master"
	RoleAdmin  Role = "admin"
)

// Tier is a master's capacity level bounding concurrent active campaigns.
type Tier string

const (
	TierNone   Tier = ""
	TierBronze Tier = "Bronze"
	TierSilver Tier = "Silver"
	TierGold   Tier = "Gold"
)

// TierLimit returns how many non-finished campaigns a master of the given
// tier may own. Unknown or empty tiers fall back to the Bronze limit.
func TierLimit(t Tier) int {
	switch t {
	case TierGold:
		return 5
	case TierSilver:
		return 3
	default:
		return 2
	}
}

// IsValidTier reports whether t is an assignable master tier.
func IsValidTier(t Tier) bool {
	switch t {
	case TierBronze, TierSilver, TierGold:
		return true
	default:
		return false
	}
}

// Achievement is one earned badge in a user's ordered achievement list.
type Achievement struct {
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	EarnedAt time.Time `json:"date"`
}

// User is a registered club member. The name doubles as the identifier;
// every cross-entity reference is by name.
type User struct {
	Name             string        `json:"user"`
	Password         string        `json:"pass"`
	Role             Role          `json:"role"`
	MasterTier       Tier          `json:"masterTier,omitempty"`
	AvatarRef        string        `json:"avatar,omitempty"`
	SessionsAttended int           `json:"sessionsAttended"`
	Achievements     []Achievement `json:"achievements"`
}

// HasAchievement reports whether the user already earned the named badge.
func (u *User) HasAchievement(name string) bool {
	for _, a := range u.Achievements {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Grant appends the achievement unless one with the same name exists.
// It reports whether the badge was added.
func (u *User) Grant(a Achievement) bool {
	if u.HasAchievement(a.Name) {
		return false
	}
	u.Achievements = append(u.Achievements, a)
	return true
}
