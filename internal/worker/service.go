// Package worker runs the application's background maintenance tasks.
package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"sharecase/internal/models"
	"sharecase/internal/services"

	"gorm.io/gorm"
)

const (
	engagementInterval = 15 * time.Minute
	retentionInterval  = 24 * time.Hour

	// Activity entries are immutable while retained; they age out after a
	// year to keep the log bounded
	activityRetention = 365 * 24 * time.Hour
)

// Service manages background workers for the application
type Service struct {
	db         *gorm.DB
	engagement *services.EngagementService
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	running    bool
	startedAt  time.Time
	mu         sync.RWMutex
}

// NewService creates a new worker service
func NewService(db *gorm.DB) *Service {
	ctx, cancel := context.WithCancel(context.Background())

	return &Service{
		db:         db,
		engagement: services.NewEngagementService(db),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts all background workers
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	log.Println("Starting background workers...")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runPeriodicTasks()
	}()

	s.running = true
	s.startedAt = time.Now()
	log.Println("Background workers started successfully")

	return nil
}

// Stop stops all background workers and waits for them to finish
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	log.Println("Stopping background workers...")
	s.cancel()
	s.wg.Wait()
	s.running = false
	log.Println("Background workers stopped")
}

// IsRunning returns whether the worker service is currently running
func (s *Service) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// GetStatus returns the current status of the worker service
func (s *Service) GetStatus() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := map[string]interface{}{
		"running":        s.running,
		"periodic_tasks": true,
	}
	if s.running {
		status["uptime"] = time.Since(s.startedAt).String()
	}
	return status
}

// runPeriodicTasks drives the recurring maintenance work
func (s *Service) runPeriodicTasks() {
	log.Println("Starting periodic tasks worker...")

	engagementTicker := time.NewTicker(engagementInterval)
	retentionTicker := time.NewTicker(retentionInterval)
	defer engagementTicker.Stop()
	defer retentionTicker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			log.Println("Periodic tasks worker stopped")
			return

		case <-engagementTicker.C:
			if err := s.engagement.UpdateAllProjectPoints(); err != nil {
				log.Printf("Failed to update project points: %v", err)
			}

		case <-retentionTicker.C:
			s.trimActivityLog()
		}
	}
}

// trimActivityLog removes activity entries past the retention window
func (s *Service) trimActivityLog() {
	cutoff := time.Now().Add(-activityRetention)

	res := s.db.Where("created_at < ?", cutoff).Delete(&models.Activity{})
	if res.Error != nil {
		log.Printf("Failed to trim activity log: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("🧹 Trimmed %d expired activity entries", res.RowsAffected)
	}
}
