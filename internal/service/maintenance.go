package service

import (
	"time"

	"sponsorbot/internal/repository"

	"go.uber.org/zap"
)

// MaintenanceService evicts idle user state and expires archived feedback
type MaintenanceService struct {
	states        repository.StateRepository
	archive       repository.FeedbackRepository
	idleTTL       time.Duration
	retentionDays int
	logger        *zap.Logger
	now           func() time.Time
}

// NewMaintenanceService creates a new maintenance service. archive may be nil.
func NewMaintenanceService(
	states repository.StateRepository,
	archive repository.FeedbackRepository,
	idleTTL time.Duration,
	retentionDays int,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		states:        states,
		archive:       archive,
		idleTTL:       idleTTL,
		retentionDays: retentionDays,
		logger:        logger,
		now:           time.Now,
	}
}

// Cleanup evicts users idle longer than idleTTL and deletes feedback older than retentionDays
func (s *MaintenanceService) Cleanup() error {
	if s.idleTTL > 0 {
		evicted := s.states.EvictIdle(s.now().Add(-s.idleTTL))
		s.logger.Info("Evicted idle user states",
			zap.Int("evicted", evicted),
			zap.Duration("idle_ttl", s.idleTTL),
		)
	}

	if s.archive != nil && s.retentionDays > 0 {
		s.logger.Info("Starting cleanup of old feedback", zap.Int("retention_days", s.retentionDays))

		if err := s.archive.CleanOldFeedback(s.retentionDays); err != nil {
			s.logger.Error("Failed to cleanup old feedback", zap.Error(err))
			return err
		}
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
