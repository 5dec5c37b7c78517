package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tableforge/tableforge/internal/domain/user"
	apperrors "github.com/tableforge/tableforge/internal/platform/errors"
)

var (
	// ErrMissingFields indicates a registration without name or password.
	ErrMissingFields = apperrors.New(apperrors.CodeValidation, "name and password are required")
	// ErrUserExists indicates a registration under a taken name.
	ErrUserExists = apperrors.New(apperrors.CodeUserAlreadyExists, "user name already taken")
	// ErrBadCredentials indicates a failed login.
	ErrBadCredentials = apperrors.New(apperrors.CodeUserBadCredentials, "invalid name or password")
	// ErrNotMaster indicates a command reserved for masters.
	ErrNotMaster = apperrors.New(apperrors.CodeUserNotMaster, "user is not a master")
	// ErrInvalidTier indicates an unknown tier name.
	ErrInvalidTier = apperrors.New(apperrors.CodeUserInvalidTier, "unknown master tier")
	// ErrProtectedUser indicates an attempt to delete an admin account.
	ErrProtectedUser = apperrors.New(apperrors.CodeUserProtectedDelete, "admin accounts cannot be deleted")
)

// Register creates a player account.
func (s *Service) Register(ctx context.Context, name, password string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return user.User{}, ErrMissingFields
	}
	if _, ok := s.st.UserByName(name); ok {
		return user.User{}, ErrUserExists
	}
	u := user.User{
		Name:         name,
		Password:     password,
		Role:         user.RolePlayer,
		Achievements: []user.Achievement{},
	}
	s.st.Users = append(s.st.Users, u)
	s.save(ctx)
	return u, nil
}

// Authenticate checks credentials and returns the account.
func (s *Service) Authenticate(name, password string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.st.UserByName(name)
	if !ok || u.Password != password {
		return user.User{}, ErrBadCredentials
	}
	return *u, nil
}

// SetAvatar updates the account's avatar reference.
func (s *Service) SetAvatar(ctx context.Context, name, avatarRef string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.st.UserByName(name)
	if !ok {
		return ErrUserNotFound
	}
	u.AvatarRef = avatarRef
	s.save(ctx)
	return nil
}

// ChangeMasterTier sets a master's tier. Admin only.
func (s *Service) ChangeMasterTier(ctx context.Context, adminName, userName string, tier user.Tier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(adminName); err != nil {
		return err
	}
	u, ok := s.st.UserByName(userName)
	if !ok {
		return ErrUserNotFound
	}
	if u.Role != user.RoleMaster {
		return ErrNotMaster
	}
	if !user.IsValidTier(tier) {
		return ErrInvalidTier
	}
	u.MasterTier = tier
	s.notify(userName, "Tier Atualizado", fmt.Sprintf("Seu tier foi alterado para %s!", tier))
	s.save(ctx)
	return nil
}

// DemoteMaster returns a master to the player role and clears the tier.
// Admin only.
func (s *Service) DemoteMaster(ctx context.Context, adminName, userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(adminName); err != nil {
		return err
	}
	u, ok := s.st.UserByName(userName)
	if !ok {
		return ErrUserNotFound
	}
	if u.Role != user.RoleMaster {
		return ErrNotMaster
	}
	u.Role = user.RolePlayer
	u.MasterTier = user.TierNone
	s.notify(userName, "Papel Alterado", "Você foi rebaixado para jogador.")
	s.save(ctx)
	return nil
}

// DeleteUser removes an account and every record that depends on it:
// campaign seats, attendance, character sheets, mastery requests, dice
// macros and notifications. Chat messages and the shared roll history
// stay, like the records of a finished campaign. Admin only.
func (s *Service) DeleteUser(ctx context.Context, adminName, userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(adminName); err != nil {
		return err
	}
	target, ok := s.st.UserByName(userName)
	if !ok {
		return ErrUserNotFound
	}
	if target.Role == user.RoleAdmin {
		return ErrProtectedUser
	}

	for i := range s.st.Users {
		if s.st.Users[i].Name == userName {
			s.st.Users = append(s.st.Users[:i], s.st.Users[i+1:]...)
			break
		}
	}
	for i := range s.st.Campaigns {
		c := &s.st.Campaigns[i]
		for j, seat := range c.Enrolled {
			if seat == userName {
				c.Enrolled = append(c.Enrolled[:j], c.Enrolled[j+1:]...)
				break
			}
		}
	}
	s.st.Attendance = filterInPlace(s.st.Attendance, func(i int) bool {
		return s.st.Attendance[i].User != userName
	})
	s.st.CharacterSheets = filterInPlace(s.st.CharacterSheets, func(i int) bool {
		return s.st.CharacterSheets[i].User != userName
	})
	s.st.MasterRequests = filterInPlace(s.st.MasterRequests, func(i int) bool {
		return s.st.MasterRequests[i].User != userName
	})
	s.st.DiceMacros = filterInPlace(s.st.DiceMacros, func(i int) bool {
		return s.st.DiceMacros[i].User != userName
	})
	s.st.Notifications = filterInPlace(s.st.Notifications, func(i int) bool {
		return s.st.Notifications[i].Recipient != userName
	})
	s.save(ctx)
	return nil
}

// filterInPlace keeps the elements of xs whose index satisfies keep,
// preserving order.
func filterInPlace[T any](xs []T, keep func(i int) bool) []T {
	out := xs[:0]
	for i := range xs {
		if keep(i) {
			out = append(out, xs[i])
		}
	}
	return out
}
