// Package cleanup enforces session retention: terminal sessions older
// than the retention window are purged, cascading their event logs and
// mounts. Purge is the only deletion path into the event log.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/relay-agents/relay/pkg/services"
)

// Config holds retention parameters. Retention 0 disables the sweeper.
type Config struct {
	Retention time.Duration
	Interval  time.Duration
}

// Service is the background retention loop. Idempotent and safe to run
// from multiple replicas.
type Service struct {
	cfg      Config
	sessions *services.SessionService
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention sweeper. Returns nil when retention is
// disabled.
func NewService(cfg Config, sessions *services.SessionService) *Service {
	if cfg.Retention <= 0 {
		return nil
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	return &Service{
		cfg:      cfg,
		sessions: sessions,
		logger:   slog.Default().With("component", "cleanup"),
	}
}

// Start launches the background loop. Nil-safe.
func (s *Service) Start(ctx context.Context) {
	if s == nil || s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Retention sweeper started",
		"retention", s.cfg.Retention,
		"interval", s.cfg.Interval)
}

// Stop signals the loop to exit and waits for it to finish. Nil-safe.
func (s *Service) Stop() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Retention sweeper stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Service) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	count, err := s.sessions.PurgeTerminalOlderThan(ctx, s.cfg.Retention)
	if err != nil {
		s.logger.Error("Retention sweep failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Purged expired sessions", "count", count)
	}
}
