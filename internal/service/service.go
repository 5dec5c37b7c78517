// Package service is the command dispatcher for the campaign engine.
//
// Every user intent is a method on Service. One mutex is the explicit
// ownership boundary around the aggregate: a command runs to completion,
// invariants are checked by the policy package before any mutation, and a
// save is attempted after every mutation. Save failures are logged and
// swallowed so a storage hiccup never interrupts play; the periodic flusher
// retries soon after.
package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tableforge/tableforge/internal/domain/campaign"
	"github.com/tableforge/tableforge/internal/domain/user"
	"github.com/tableforge/tableforge/internal/platform/config"
	apperrors "github.com/tableforge/tableforge/internal/platform/errors"
	"github.com/tableforge/tableforge/internal/platform/id"
	"github.com/tableforge/tableforge/internal/state"
	"github.com/tableforge/tableforge/internal/storage"
)

var (
	// ErrPermissionDenied indicates an actor lacking the role or ownership
	// a command requires.
	ErrPermissionDenied = apperrors.New(apperrors.CodePermissionDenied, "operation not allowed for this user")
	// ErrUserNotFound indicates a stale user reference.
	ErrUserNotFound = apperrors.New(apperrors.CodeNotFound, "user not found")
	// ErrCampaignNotFound indicates a stale campaign reference.
	ErrCampaignNotFound = apperrors.New(apperrors.CodeNotFound, "campaign not found")
)

// Service owns the aggregate and dispatches commands against it.
type Service struct {
	mu        sync.Mutex
	st        *state.State
	persister storage.Persister
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
	rng       *rand.Rand
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source; tests pin it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides entity id generation; tests pin it.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// WithRand overrides the dice random source; tests seed it.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// New creates a service over an existing aggregate.
func New(st *state.State, persister storage.Persister, logger *zap.Logger, opts ...Option) *Service {
	if st == nil {
		st = state.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		st:        st,
		persister: persister,
		logger:    logger,
		now:       time.Now,
		newID:     id.MustNewID,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Restore loads the last snapshot from the persister, bootstrapping a
// fresh aggregate with the built-in admin when none exists yet.
func Restore(ctx context.Context, persister storage.Persister, cfg config.Config, logger *zap.Logger, opts ...Option) (*Service, error) {
	st, err := persister.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		st = state.Bootstrap(cfg.AdminName, cfg.AdminPassword)
	} else if err != nil {
		return nil, err
	}
	return New(st, persister, logger, opts...), nil
}

// save persists the aggregate. Failures are logged only; the caller's
// mutation stays in memory and the next save retries the full snapshot.
func (s *Service) save(ctx context.Context) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, s.st); err != nil {
		s.logger.Error("persist state snapshot", zap.Error(err))
	}
}

// Snapshot returns a deep copy of the aggregate for rendering.
func (s *Service) Snapshot() (*state.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Clone()
}

// requireAdmin resolves the actor and checks for the admin role.
func (s *Service) requireAdmin(name string) error {
	u, ok := s.st.UserByName(name)
	if !ok {
		return ErrUserNotFound
	}
	if u.Role != user.RoleAdmin {
		return ErrPermissionDenied
	}
	return nil
}

// requireOwner checks the actor owns the campaign.
func requireOwner(c *campaign.Campaign, name string) error {
	if c.Master != name {
		return ErrPermissionDenied
	}
	return nil
}

func (s *Service) stamp() time.Time {
	return s.now().UTC()
}

// grantPending stamps and grants every badge the user newly qualifies for.
func (s *Service) grantPending(u *user.User) {
	for _, badge := range user.MissingAchievements(*u) {
		badge.EarnedAt = s.stamp()
		u.Grant(badge)
	}
}
