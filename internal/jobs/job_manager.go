package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	routeWarmupJob *RouteWarmupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	trucks trucksForDateHandler,
	routes truckRouteHandler,
	routeWarmupSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		routeWarmupJob: NewRouteWarmupJob(trucks, routes, routeWarmupSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.routeWarmupJob.Start(); err != nil {
		return fmt.Errorf("failed to start route warm-up job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.routeWarmupJob.Stop()
}
