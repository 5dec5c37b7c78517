package user

// The badge catalog. Session milestones are cumulative; the master badge is
// tied to the role, not the counter.
const (
	AchievementFirstSession = "Primeira Sessão"
	AchievementVeteran      = "Veterano"
	AchievementLegendary    = "Lendário"
	AchievementFirstMaster  = "Primeiro Mestre"
)

var sessionMilestones = []struct {
	name     string
	icon     string
	sessions int
}{
	{AchievementFirstSession, "🎯", 1},
	{AchievementVeteran, "⭐", 5},
	{AchievementLegendary, "👑", 10},
}

// MissingAchievements returns the badges u currently qualifies for but has
// not earned yet, in catalog order. EarnedAt is left zero; the caller stamps
// it when granting.
func MissingAchievements(u User) []Achievement {
	var missing []Achievement
	for _, m := range sessionMilestones {
		if u.SessionsAttended >= m.sessions && !u.HasAchievement(m.name) {
			missing = append(missing, Achievement{Name: m.name, Icon: m.icon})
		}
	}
	if u.Role == RoleMaster && !u.HasAchievement(AchievementFirstMaster) {
		missing = append(missing, Achievement{Name: AchievementFirstMaster, Icon: "🧙"})
	}
	return missing
}
