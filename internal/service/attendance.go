package service

import (
	"context"
	"strings"
	"time"

	"github.com/tableforge/tableforge/internal/domain/attendance"
	apperrors "github.com/tableforge/tableforge/internal/platform/errors"
)

var (
	// ErrAttendanceNotFound indicates no record for that user, campaign
	// and session.
	ErrAttendanceNotFound = apperrors.New(apperrors.CodeNotFound, "attendance record not found")
	// ErrReasonRequired indicates an absence declared without a reason.
	ErrReasonRequired = apperrors.New(apperrors.CodeAttendanceReasonRequired, "absence reason is required")
)

// ConfirmPresence marks the player confirmed for a session and credits
// an attended session, which may unlock milestone badges. Confirming the
// same record again credits again; callers that need idempotence check
// the record status first.
func (s *Service) ConfirmPresence(ctx context.Context, userName, campaignID string, session time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.st.AttendanceFor(campaignID, userName, session)
	if !ok {
		return ErrAttendanceNotFound
	}
	u, ok := s.st.UserByName(userName)
	if !ok {
		return ErrUserNotFound
	}
	rec.Status = attendance.StatusConfirmed
	rec.Reason = ""
	u.SessionsAttended++
	s.grantPending(u)
	s.save(ctx)
	return nil
}

// DeclareAbsence marks the player absent for a session with a reason the
// master can read.
func (s *Service) DeclareAbsence(ctx context.Context, userName, campaignID string, session time.Time, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	rec, ok := s.st.AttendanceFor(campaignID, userName, session)
	if !ok {
		return ErrAttendanceNotFound
	}
	rec.Status = attendance.StatusAbsent
	rec.Reason = reason
	s.save(ctx)
	return nil
}

// AttendanceByUser lists a player's attendance records across campaigns.
// An empty status matches every record.
func (s *Service) AttendanceByUser(userName string, status attendance.Status) []attendance.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.AttendanceByUser(userName, status)
}
