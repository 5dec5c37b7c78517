package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tableforge/tableforge/internal/domain/campaign"
	"github.com/tableforge/tableforge/internal/domain/user"
	"github.com/tableforge/tableforge/internal/state"
	"github.com/tableforge/tableforge/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestLoadBeforeSave(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Load(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	st := state.Bootstrap("host", "secret")
	st.Users = append(st.Users, user.User{Name: "ana", Role: user.RolePlayer})
	st.Campaigns = append(st.Campaigns, campaign.Campaign{
		ID: "c1", Name: "Mesa Um", Master: "host",
		Status: campaign.StatusApproved, MaxPlayers: 4,
	})

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
}

func TestSaveOverwritesSingleRow(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 3; i++ {
		st := state.Bootstrap("host", "secret")
		st.Users[0].SessionsAttended = i
		if err := s.Save(context.Background(), st); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Users[0].SessionsAttended != 2 {
		t.Fatalf("expected last snapshot to win, got counter %d", got.Users[0].SessionsAttended)
	}

	var rows int
	if err := s.sqlDB.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&rows); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected a single snapshot row, got %d", rows)
	}
}

func TestReopenKeepsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	st := state.Bootstrap("host", "secret")
	if err := s.Save(context.Background(), st); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Users[0].Name != "host" {
		t.Fatal("snapshot lost across reopen")
	}
}
