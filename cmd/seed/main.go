// Package main provides a CLI for seeding a local development database
// with a demo club: an admin, two masters with campaigns, and players
// with enrollments, sheets, and attendance. Everything goes through the
// service layer so seeded data obeys the same rules as live data.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/tableforge/tableforge/internal/domain/user"
	"github.com/tableforge/tableforge/internal/platform/config"
	"github.com/tableforge/tableforge/internal/service"
	"github.com/tableforge/tableforge/internal/storage/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error loading config: %v", err)
	}

	var dbPath string
	var reset bool
	var rngSeed int64
	flag.StringVar(&dbPath, "db", cfg.DBPath, "SQLite database path")
	flag.BoolVar(&reset, "reset", false, "remove the database file before seeding")
	flag.Int64Var(&rngSeed, "seed", 1, "random seed for dice history")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		config.Exitf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	if reset {
		if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
			config.Exitf("Error removing %s: %v", dbPath, err)
		}
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		config.Exitf("Error opening database: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	svc, err := service.Restore(ctx, store, cfg, logger,
		service.WithRand(rand.New(rand.NewSource(rngSeed))))
	if err != nil {
		config.Exitf("Error restoring state: %v", err)
	}

	if err := seed(ctx, svc, cfg.AdminName); err != nil {
		config.Exitf("Error seeding: %v", err)
	}

	stats := svc.AdminStats()
	fmt.Printf("Seeded %s: %d users, %d campaigns (%d pending, %d active)\n",
		dbPath, stats.Users, stats.Campaigns, stats.PendingCampaigns, stats.ActiveCampaigns)
}

func seed(ctx context.Context, svc *service.Service, admin string) error {
	for _, name := range []string{"ana", "beto", "carla", "diego", "marina", "otavio"} {
		if _, err := svc.Register(ctx, name, "senha123"); err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
	}

	// The masters earn their promotion through the real flow.
	for _, m := range []struct {
		name string
		tier user.Tier
	}{
		{"marina", user.TierGold},
		{"otavio", user.TierBronze},
	} {
		if err := promote(ctx, svc, admin, m.name, m.tier); err != nil {
			return err
		}
	}

	tumba, err := svc.SubmitCampaign(ctx, "marina", service.CampaignInput{
		Name:        "A Tumba dos Reis Esquecidos",
		System:      "D&D 5e",
		Description: "Exploração de masmorra clássica com intriga política.",
		MaxPlayers:  4,
		Schedule:    []string{"20:00"},
		Categories:  []string{"dungeon", "intriga"},
	})
	if err != nil {
		return fmt.Errorf("submit tumba: %w", err)
	}
	if err := svc.ApproveCampaign(ctx, admin, tumba.ID); err != nil {
		return fmt.Errorf("approve tumba: %w", err)
	}

	sombras, err := svc.SubmitCampaign(ctx, "otavio", service.CampaignInput{
		Name:        "Sombras de Arkham",
		System:      "Call of Cthulhu",
		Description: "Investigação e horror cósmico nos anos 1920.",
		Schedule:    []string{"18:00", "20:00"},
		Categories:  []string{"terror", "investigação"},
	})
	if err != nil {
		return fmt.Errorf("submit sombras: %w", err)
	}
	if err := svc.ApproveCampaign(ctx, admin, sombras.ID); err != nil {
		return fmt.Errorf("approve sombras: %w", err)
	}

	// One campaign left pending for the admin dashboard.
	if _, err := svc.SubmitCampaign(ctx, "marina", service.CampaignInput{
		Name:       "Corações de Ferro",
		System:     "Fate",
		Categories: []string{"drama"},
	}); err != nil {
		return fmt.Errorf("submit pending campaign: %w", err)
	}

	session := time.Now().UTC().Truncate(time.Hour).Add(72 * time.Hour)
	if err := svc.ScheduleSession(ctx, "marina", tumba.ID, session); err != nil {
		return fmt.Errorf("schedule session: %w", err)
	}

	for _, name := range []string{"ana", "beto", "carla"} {
		if err := svc.Enroll(ctx, name, tumba.ID); err != nil {
			return fmt.Errorf("enroll %s: %w", name, err)
		}
		if err := svc.UploadSheet(ctx, name, tumba.ID, "sheets/"+name+".png"); err != nil {
			return fmt.Errorf("upload sheet %s: %w", name, err)
		}
	}
	for _, name := range []string{"ana", "beto"} {
		if err := svc.ApproveSheet(ctx, "marina", tumba.ID, name); err != nil {
			return fmt.Errorf("approve sheet %s: %w", name, err)
		}
	}
	if err := svc.Enroll(ctx, "diego", sombras.ID); err != nil {
		return fmt.Errorf("enroll diego: %w", err)
	}

	for _, name := range []string{"ana", "beto"} {
		if err := svc.ConfirmPresence(ctx, name, tumba.ID, session); err != nil {
			return fmt.Errorf("confirm %s: %w", name, err)
		}
	}
	if err := svc.DeclareAbsence(ctx, "carla", tumba.ID, session, "Viagem de trabalho"); err != nil {
		return fmt.Errorf("absence carla: %w", err)
	}

	rolls := []struct {
		user string
		die  string
		n    int
		mod  int
		desc string
	}{
		{"ana", "d20", 1, 3, "Iniciativa"},
		{"beto", "d6", 3, 2, "Dano da espada"},
		{"marina", "d20", 1, 0, "Teste oculto"},
	}
	for _, r := range rolls {
		if _, err := svc.Roll(ctx, r.user, r.die, r.n, r.mod, r.desc); err != nil {
			return fmt.Errorf("roll %s: %w", r.user, err)
		}
	}
	if _, err := svc.SaveMacro(ctx, "ana", "Ataque", "d20", 1, 5); err != nil {
		return fmt.Errorf("save macro: %w", err)
	}

	for _, m := range []struct{ user, body string }{
		{"marina", "Sessão confirmada para quinta!"},
		{"ana", "Levo os mapas impressos."},
		{"beto", "Meu bárbaro está pronto."},
	} {
		if _, err := svc.SendMessage(ctx, m.user, tumba.ID, m.body); err != nil {
			return fmt.Errorf("chat %s: %w", m.user, err)
		}
	}
	return nil
}

// promote walks a user through the real promotion flow. A throwaway
// one-seat campaign owned by the admin supplies the attended sessions the
// mastery request requires, then gets finished so it stops counting
// against quotas.
func promote(ctx context.Context, svc *service.Service, admin, name string, tier user.Tier) error {
	boot, err := svc.SubmitCampaign(ctx, admin, service.CampaignInput{
		Name:       "Mesa de Iniciação: " + name,
		System:     "One-shots",
		MaxPlayers: 1,
	})
	if err != nil {
		return fmt.Errorf("bootstrap campaign for %s: %w", name, err)
	}
	if err := svc.ApproveCampaign(ctx, admin, boot.ID); err != nil {
		return fmt.Errorf("approve bootstrap for %s: %w", name, err)
	}
	base := time.Now().UTC().Truncate(time.Hour).Add(-30 * 24 * time.Hour)
	sessions := make([]time.Time, 3)
	for i := range sessions {
		sessions[i] = base.Add(time.Duration(i) * 7 * 24 * time.Hour)
		if err := svc.ScheduleSession(ctx, admin, boot.ID, sessions[i]); err != nil {
			return fmt.Errorf("schedule bootstrap session: %w", err)
		}
	}
	// Enrolling after scheduling backfills a pending attendance record
	// per session.
	if err := svc.Enroll(ctx, name, boot.ID); err != nil {
		return fmt.Errorf("enroll %s: %w", name, err)
	}
	for _, session := range sessions {
		if err := svc.ConfirmPresence(ctx, name, boot.ID, session); err != nil {
			return fmt.Errorf("confirm bootstrap session: %w", err)
		}
	}
	req, err := svc.SubmitMasterRequest(ctx, name, 9)
	if err != nil {
		return fmt.Errorf("mastery request for %s: %w", name, err)
	}
	if err := svc.ApproveMasterRequest(ctx, admin, req.ID); err != nil {
		return fmt.Errorf("approve mastery for %s: %w", name, err)
	}
	if err := svc.FinishCampaign(ctx, admin, boot.ID); err != nil {
		return fmt.Errorf("finish bootstrap for %s: %w", name, err)
	}
	if err := svc.ChangeMasterTier(ctx, admin, name, tier); err != nil {
		return fmt.Errorf("tier for %s: %w", name, err)
	}
	return nil
}
