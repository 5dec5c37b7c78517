package service

import (
	"context"

	"github.com/tableforge/tableforge/internal/domain/mastery"
	"github.com/tableforge/tableforge/internal/domain/user"
	apperrors "github.com/tableforge/tableforge/internal/platform/errors"
	"github.com/tableforge/tableforge/internal/policy"
)

var (
	// ErrRequestNotFound indicates a stale mastery request id.
	ErrRequestNotFound = apperrors.New(apperrors.CodeNotFound, "mastery request not found")
	// ErrRequestSettled indicates a verdict on an already settled request.
	ErrRequestSettled = apperrors.New(apperrors.CodeValidation, "mastery request already settled")
)

// Exam returns the mastery exam questions.
func (s *Service) Exam() []mastery.Question {
	return mastery.DefaultExam()
}

// SubmitMasterRequest files a request to become a master. The caller
// must have attended enough sessions, passed the exam, and have no
// pending or approved request on file.
func (s *Service) SubmitMasterRequest(ctx context.Context, userName string, examScore int) (mastery.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := policy.CanRequestMastery(s.st, userName, examScore); err != nil {
		return mastery.Request{}, err
	}
	req := mastery.Request{
		ID:          s.newID(),
		User:        userName,
		SubmittedAt: s.stamp(),
		Status:      mastery.StatusPending,
		ExamScore:   examScore,
	}
	s.st.MasterRequests = append(s.st.MasterRequests, req)
	s.save(ctx)
	return req, nil
}

// ApproveMasterRequest promotes the requester to master at the Bronze
// tier. Admin only.
func (s *Service) ApproveMasterRequest(ctx context.Context, adminName, requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(adminName); err != nil {
		return err
	}
	req, ok := s.st.MasterRequestByID(requestID)
	if !ok {
		return ErrRequestNotFound
	}
	if req.Status != mastery.StatusPending {
		return ErrRequestSettled
	}
	u, ok := s.st.UserByName(req.User)
	if !ok {
		return ErrUserNotFound
	}
	req.Status = mastery.StatusApproved
	u.Role = user.RoleMaster
	u.MasterTier = user.TierBronze
	s.grantPending(u)
	s.notify(req.User, "Parabéns!", "Você foi aprovado como Mestre!")
	s.save(ctx)
	return nil
}

// RejectMasterRequest declines a pending request. The requester may file
// again later. Admin only.
func (s *Service) RejectMasterRequest(ctx context.Context, adminName, requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(adminName); err != nil {
		return err
	}
	req, ok := s.st.MasterRequestByID(requestID)
	if !ok {
		return ErrRequestNotFound
	}
	if req.Status != mastery.StatusPending {
		return ErrRequestSettled
	}
	req.Status = mastery.StatusRejected
	s.notify(req.User, "Requisição Rejeitada", "Sua requisição para se tornar Mestre foi rejeitada.")
	s.save(ctx)
	return nil
}
