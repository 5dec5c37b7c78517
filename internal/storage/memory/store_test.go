package memory

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/tableforge/tableforge/internal/domain/user"
	"github.com/tableforge/tableforge/internal/state"
	"github.com/tableforge/tableforge/internal/storage"
)

func TestLoadBeforeSave(t *testing.T) {
	s := New()
	if _, err := s.Load(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New()
	st := state.Bootstrap("host", "secret")
	st.Users = append(st.Users, user.User{Name: "ana", Role: user.RolePlayer, SessionsAttended: 2})

	if err := s.Save(context.Background(), st); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(st, got) {
		t.Fatal("loaded state differs from saved state")
	}

	// Mutating the loaded copy must not leak into later loads.
	got.Users[0].Name = "intruso"
	again, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if again.Users[0].Name != "host" {
		t.Fatal("loaded state aliases a previous load")
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := New()
	first := state.Bootstrap("host", "secret")
	if err := s.Save(context.Background(), first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := state.Bootstrap("host", "secret")
	second.Users = append(second.Users, user.User{Name: "bruno", Role: user.RoleMaster})
	if err := s.Save(context.Background(), second); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Users) != 2 {
		t.Fatalf("expected overwritten snapshot with 2 users, got %d", len(got.Users))
	}
}
