package service

import (
	"context"
	"fmt"

	"github.com/tableforge/tableforge/internal/domain/sheet"
	apperrors "github.com/tableforge/tableforge/internal/platform/errors"
)

var (
	// ErrSheetImageEmpty indicates an upload without an image reference.
	ErrSheetImageEmpty = apperrors.New(apperrors.CodeSheetImageEmpty, "sheet image reference is required")
	// ErrSheetNotFound indicates no sheet for that player and campaign.
	ErrSheetNotFound = apperrors.New(apperrors.CodeNotFound, "character sheet not found")
	// ErrSheetTransition indicates an approve or reject outside the
	// pending state.
	ErrSheetTransition = apperrors.New(apperrors.CodeSheetInvalidTransition, "sheet is not awaiting review")
)

// UploadSheet stores a character sheet for review. Re-uploading replaces
// the image and resets the verdict to pending, whatever it was. The
// campaign master is told either way.
func (s *Service) UploadSheet(ctx context.Context, userName, campaignID, imageRef string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.st.CampaignByID(campaignID)
	if !ok {
		return ErrCampaignNotFound
	}
	if !c.IsEnrolled(userName) {
		return ErrNotEnrolled
	}
	if imageRef == "" {
		return ErrSheetImageEmpty
	}

	now := s.stamp()
	if existing, ok := s.st.SheetFor(campaignID, userName); ok {
		existing.ImageRef = imageRef
		existing.Status = sheet.StatusPending
		existing.UpdatedAt = &now
	} else {
		s.st.CharacterSheets = append(s.st.CharacterSheets, sheet.Sheet{
			ID:         s.newID(),
			CampaignID: campaignID,
			User:       userName,
			ImageRef:   imageRef,
			Status:     sheet.StatusPending,
			CreatedAt:  now,
		})
	}
	s.notify(c.Master, "Nova Ficha", fmt.Sprintf("%s enviou uma ficha em %q", userName, c.Name))
	s.save(ctx)
	return nil
}

// ApproveSheet accepts a pending sheet. Owner master only.
func (s *Service) ApproveSheet(ctx context.Context, masterName, campaignID, playerName string) error {
	return s.reviewSheet(ctx, masterName, campaignID, playerName, sheet.StatusApproved,
		"Ficha Aprovada", "Sua ficha foi aprovada pelo mestre!")
}

// RejectSheet turns a pending sheet back to the player for a new
// version. Owner master only.
func (s *Service) RejectSheet(ctx context.Context, masterName, campaignID, playerName string) error {
	return s.reviewSheet(ctx, masterName, campaignID, playerName, sheet.StatusRejected,
		"Ficha Rejeitada", "Sua ficha foi rejeitada. Por favor, envie uma nova versão.")
}

func (s *Service) reviewSheet(ctx context.Context, masterName, campaignID, playerName string, verdict sheet.Status, title, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.st.CampaignByID(campaignID)
	if !ok {
		return ErrCampaignNotFound
	}
	if err := requireOwner(c, masterName); err != nil {
		return err
	}
	sh, ok := s.st.SheetFor(campaignID, playerName)
	if !ok {
		return ErrSheetNotFound
	}
	if !sheet.IsTransitionAllowed(sh.Status, verdict) {
		return ErrSheetTransition
	}
	now := s.stamp()
	sh.Status = verdict
	sh.UpdatedAt = &now
	s.notify(playerName, title, message)
	s.save(ctx)
	return nil
}
