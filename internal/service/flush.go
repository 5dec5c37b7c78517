package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunAutoFlush persists the aggregate on a fixed interval until the
// context is canceled. A final flush runs on shutdown so the last
// commands are not lost between ticks.
func (s *Service) RunAutoFlush(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("auto flush started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			s.flush(context.Background())
			s.logger.Info("auto flush stopped")
			return
		case <-ticker.C:
			s.flush(ctx)
		}
	}
}

func (s *Service) flush(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(ctx)
}
