package service

import (
	"context"

	"github.com/tableforge/tableforge/internal/domain/notification"
	apperrors "github.com/tableforge/tableforge/internal/platform/errors"
)

// ErrNotificationNotFound indicates a stale notification id.
var ErrNotificationNotFound = apperrors.New(apperrors.CodeNotFound, "notification not found")

// notify appends a notification for the recipient. Callers hold the
// mutex and save afterwards.
func (s *Service) notify(recipient, title, message string) {
	s.st.Notifications = append(s.st.Notifications, notification.Notification{
		ID:        s.newID(),
		Recipient: recipient,
		Title:     title,
		Message:   message,
		Timestamp: s.stamp(),
	})
}

// Notifications returns the user's notifications in delivery order.
func (s *Service) Notifications(userName string) []notification.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.NotificationsFor(userName)
}

// UnreadNotifications returns how many notifications the user has not
// read yet.
func (s *Service) UnreadNotifications(userName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.UnreadCount(userName)
}

// MarkNotificationRead flags one notification as read. Only the
// recipient may mark their own.
func (s *Service) MarkNotificationRead(ctx context.Context, userName, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.st.NotificationByID(notificationID)
	if !ok {
		return ErrNotificationNotFound
	}
	if n.Recipient != userName {
		return ErrPermissionDenied
	}
	n.Read = true
	s.save(ctx)
	return nil
}
