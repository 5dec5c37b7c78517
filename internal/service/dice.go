package service

import (
	"context"
	"strings"

	"github.com/tableforge/tableforge/internal/domain/dice"
	apperrors "github.com/tableforge/tableforge/internal/platform/errors"
)

var (
	// ErrMacroNameEmpty indicates a macro saved without a name.
	ErrMacroNameEmpty = apperrors.New(apperrors.CodeDiceMacroNameEmpty, "macro name is required")
	// ErrMacroNotFound indicates a stale macro id.
	ErrMacroNotFound = apperrors.New(apperrors.CodeNotFound, "dice macro not found")
)

// Roll throws count dice of the given kind, applies the modifier and
// prepends the result to the shared history.
func (s *Service) Roll(ctx context.Context, userName, die string, count, modifier int, description string) (dice.Roll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roll(ctx, userName, die, count, modifier, description)
}

func (s *Service) roll(ctx context.Context, userName, die string, count, modifier int, description string) (dice.Roll, error) {
	if _, ok := s.st.UserByName(userName); !ok {
		return dice.Roll{}, ErrUserNotFound
	}
	r, err := dice.RollWithRng(s.rng, die, count, modifier)
	if err != nil {
		return dice.Roll{}, err
	}
	r.ID = s.newID()
	r.User = userName
	r.Description = description
	r.Timestamp = s.stamp()
	s.st.DiceHistory = dice.Prepend(s.st.DiceHistory, r)
	s.save(ctx)
	return r, nil
}

// SaveMacro stores a named roll shortcut for the user.
func (s *Service) SaveMacro(ctx context.Context, userName, name, die string, count, modifier int) (dice.Macro, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.st.UserByName(userName); !ok {
		return dice.Macro{}, ErrUserNotFound
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return dice.Macro{}, ErrMacroNameEmpty
	}
	if _, err := dice.ParseDie(die); err != nil {
		return dice.Macro{}, err
	}
	if count < 1 || count > dice.MaxCount {
		return dice.Macro{}, dice.ErrCountOutOfRange
	}
	label := strings.ToLower(strings.TrimSpace(die))
	m := dice.Macro{
		ID:       s.newID(),
		User:     userName,
		Name:     name,
		Formula:  dice.Formula(count, label, modifier),
		Die:      label,
		Count:    count,
		Modifier: modifier,
	}
	s.st.DiceMacros = append(s.st.DiceMacros, m)
	s.save(ctx)
	return m, nil
}

// RollMacro replays a saved macro. Macros roll only for their owner.
func (s *Service) RollMacro(ctx context.Context, userName, macroID string) (dice.Roll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.st.MacroByID(macroID)
	if !ok {
		return dice.Roll{}, ErrMacroNotFound
	}
	if m.User != userName {
		return dice.Roll{}, ErrPermissionDenied
	}
	return s.roll(ctx, userName, m.Die, m.Count, m.Modifier, m.Name)
}

// DeleteMacro removes one of the user's macros.
func (s *Service) DeleteMacro(ctx context.Context, userName, macroID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.st.MacroByID(macroID)
	if !ok {
		return ErrMacroNotFound
	}
	if m.User != userName {
		return ErrPermissionDenied
	}
	s.st.DiceMacros = filterInPlace(s.st.DiceMacros, func(i int) bool {
		return s.st.DiceMacros[i].ID != macroID
	})
	s.save(ctx)
	return nil
}

// Macros lists the user's saved macros.
func (s *Service) Macros(userName string) []dice.Macro {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.MacrosByUser(userName)
}

// RollHistory returns the shared roll log, newest first.
func (s *Service) RollHistory() []dice.Roll {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dice.Roll(nil), s.st.DiceHistory...)
}

// ClearRollHistory empties the shared roll log.
func (s *Service) ClearRollHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.DiceHistory = s.st.DiceHistory[:0]
	s.save(ctx)
	return nil
}
