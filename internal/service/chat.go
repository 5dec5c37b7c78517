package service

import (
	"context"
	"strings"

	"github.com/tableforge/tableforge/internal/domain/chat"
	apperrors "github.com/tableforge/tableforge/internal/platform/errors"
)

// ErrMessageEmpty indicates a chat message without text.
var ErrMessageEmpty = apperrors.New(apperrors.CodeChatMessageEmpty, "message text is required")

// SendMessage posts table talk to a campaign. Only seated players and the
// owning master may post.
func (s *Service) SendMessage(ctx context.Context, userName, campaignID, body string) (chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.st.CampaignByID(campaignID)
	if !ok {
		return chat.Message{}, ErrCampaignNotFound
	}
	if !c.IsEnrolled(userName) && c.Master != userName {
		return chat.Message{}, ErrNotEnrolled
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return chat.Message{}, ErrMessageEmpty
	}
	m := chat.Message{
		ID:         s.newID(),
		CampaignID: campaignID,
		User:       userName,
		Body:       body,
		Type:       chat.TypeText,
		Timestamp:  s.stamp(),
	}
	s.st.ChatMessages = append(s.st.ChatMessages, m)
	s.save(ctx)
	return m, nil
}

// ShareRoll announces one of the user's rolls in a campaign chat. The
// roll must be the user's own and still in the history.
func (s *Service) ShareRoll(ctx context.Context, userName, campaignID, rollID string) (chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.st.CampaignByID(campaignID)
	if !ok {
		return chat.Message{}, ErrCampaignNotFound
	}
	if !c.IsEnrolled(userName) && c.Master != userName {
		return chat.Message{}, ErrNotEnrolled
	}
	for _, r := range s.st.DiceHistory {
		if r.ID != rollID {
			continue
		}
		if r.User != userName {
			return chat.Message{}, ErrPermissionDenied
		}
		roll := r
		m := chat.Message{
			ID:         s.newID(),
			CampaignID: campaignID,
			User:       userName,
			Body:       roll.Formula,
			Type:       chat.TypeRoll,
			Roll:       &roll,
			Timestamp:  s.stamp(),
		}
		s.st.ChatMessages = append(s.st.ChatMessages, m)
		s.save(ctx)
		return m, nil
	}
	return chat.Message{}, apperrors.New(apperrors.CodeNotFound, "roll not found in history")
}

// Messages returns a campaign's chat log in posting order.
func (s *Service) Messages(campaignID string) []chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.MessagesByCampaign(campaignID)
}
