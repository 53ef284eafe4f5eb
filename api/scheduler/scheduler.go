package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// checkTimeout bounds a single store health check
const checkTimeout = 10 * time.Second

// Store is the part of the connection pool the health job needs
type Store interface {
	PingContext(ctx context.Context) error
	Stats() sql.DBStats
}

// Scheduler handles periodic background jobs against the records store
type Scheduler struct {
	cron       *cron.Cron
	DB         Store
	Schedule   string
	instanceID string
}

// NewScheduler creates a new scheduler instance
func NewScheduler(db Store, schedule string) *Scheduler {
	// Generate a unique instance ID for this pod
	instanceID := os.Getenv("DYNO") // Heroku sets this to "web.1", "web.2", etc.
	if instanceID == "" {
		instanceID = fmt.Sprintf("instance-%d", time.Now().UnixNano())
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		DB:         db,
		Schedule:   schedule,
		instanceID: instanceID,
	}
}

// Start registers the jobs and starts the scheduler
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.Schedule, s.runStoreCheck); err != nil {
		return fmt.Errorf("failed to register store health job %q: %w", s.Schedule, err)
	}
	s.cron.Start()
	zap.S().Infow("Records scheduler started", "schedule", s.Schedule, "instance", s.instanceID)
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Records scheduler stopped")
}

func (s *Scheduler) runStoreCheck() {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()
	_ = s.CheckStore(ctx)
}

// CheckStore pings the store and logs the pool statistics
func (s *Scheduler) CheckStore(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		zap.S().Errorw("store health check failed", "error", err, "instance", s.instanceID)
		return err
	}
	stats := s.DB.Stats()
	zap.S().Infow("store health check",
		"instance", s.instanceID,
		"open", stats.OpenConnections,
		"inUse", stats.InUse,
		"idle", stats.Idle,
		"waitCount", stats.WaitCount,
		"waitDuration", stats.WaitDuration,
	)
	return nil
}
