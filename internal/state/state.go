// Package state holds the single aggregate store. Every entity collection
// is a sibling slice in one struct; relationships are by string identifier,
// and the whole aggregate serializes wholesale as one JSON blob.
package state

import (
	"encoding/json"
	"fmt"

	"github.com/tableforge/tableforge/internal/domain/attendance"
	"github.com/tableforge/tableforge/internal/domain/campaign"
	"github.com/tableforge/tableforge/internal/domain/chat"
	"github.com/tableforge/tableforge/internal/domain/dice"
	"github.com/tableforge/tableforge/internal/domain/mastery"
	"github.com/tableforge/tableforge/internal/domain/notification"
	"github.com/tableforge/tableforge/internal/domain/sheet"
	"github.com/tableforge/tableforge/internal/domain/user"
)

// State is the aggregate store. There is no schema version field; loading
// an incompatible shape yields whatever the JSON decoder produces.
type State struct {
	Users           []user.User                 `json:"users"`
	Campaigns       []campaign.Campaign         `json:"campaigns"`
	Attendance      []attendance.Record         `json:"attendance"`
	MasterRequests  []mastery.Request           `json:"masterRequests"`
	Notifications   []notification.Notification `json:"notifications"`
	DiceHistory     []dice.Roll                 `json:"diceHistory"`
	DiceMacros      []dice.Macro                `json:"diceMacros"`
	ChatMessages    []chat.Message              `json:"chatMessages"`
	CharacterSheets []sheet.Sheet               `json:"characterSheets"`
}

// New returns an empty aggregate.
func New() *State {
	return &State{}
}

// Bootstrap returns a fresh aggregate seeded with the built-in admin
// account.
func Bootstrap(adminName, adminPassword string) *State {
	st := New()
	st.Users = append(st.Users, user.User{
		Name:     adminName,
		Password: adminPassword,
		Role:     user.RoleAdmin,
	})
	return st
}

// Encode serializes the aggregate as one JSON blob.
func Encode(st *State) ([]byte, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// Decode deserializes a JSON blob produced by Encode.
func Decode(data []byte) (*State, error) {
	st := New()
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return st, nil
}

// Clone returns a deep copy via a JSON round trip. Snapshots handed to the
// presentation layer must never alias service-owned slices.
func (st *State) Clone() (*State, error) {
	data, err := Encode(st)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
