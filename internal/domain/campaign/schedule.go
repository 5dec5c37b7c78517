package campaign

// TimeSlots is the fixed weekly grid a campaign may claim slots from.
var TimeSlots = []string{
	"08:00", "10:00", "12:00", "14:00",
	"16:00", "18:00", "20:00", "22:00",
}

// IsValidSlot reports whether the label is on the grid.
func IsValidSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// ClaimsSlot reports whether the campaign's schedule includes the slot.
func (c *Campaign) ClaimsSlot(slot string) bool {
	for _, s := range c.Schedule {
		if s == slot {
			return true
		}
	}
	return false
}
