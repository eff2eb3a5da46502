package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs the configured simulation set on a cron cadence so that
// daemon mode keeps summaries current as new closes arrive.
type Scheduler struct {
	Cron    *cron.Cron
	Refresh func()
}

// NewScheduler creates a scheduler around the refresh task.
func NewScheduler(refresh func()) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Refresh: refresh,
	}
}

// Register adds the refresh task at the given 6-field cron expression.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.run); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.run()
}

func (s *Scheduler) run() {
	log.Println("[INFO] running simulation refresh")
	s.Refresh()
}
