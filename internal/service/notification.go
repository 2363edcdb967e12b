package service

import (
	"context"

	"github.com/sarahbeaino/pharmapos/internal/state"
)

// Notifications returns accumulated alerts, newest first.
func (s *Pharmacy) Notifications(_ context.Context) []string {
	return s.Snapshot().Notifications
}

// AddNotification appends a free-form alert message.
func (s *Pharmacy) AddNotification(ctx context.Context, message string) error {
	if message == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.applyAndSave(ctx, state.AddNotification{Message: message})
	return err
}

// ClearNotifications drops all accumulated alerts.
func (s *Pharmacy) ClearNotifications(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.applyAndSave(ctx, state.ClearNotifications{})
	return err
}
