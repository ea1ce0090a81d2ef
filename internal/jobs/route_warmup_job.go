package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"planner/internal/core/application/usecases/queries"
	"planner/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultRouteWarmupSchedule runs the warm-up every five minutes.
const DefaultRouteWarmupSchedule = "0 */5 * * * *"

type (
	trucksForDateHandler interface {
		Handle(ctx context.Context, query queries.GetTrucksForDateQuery) ([]queries.GetTrucksForDateQueryResponse, error)
	}

	truckRouteHandler interface {
		Handle(ctx context.Context, query queries.GetTruckRouteQuery) (queries.GetTruckRouteQueryResponse, error)
	}
)

// RouteWarmupJob computes the optimized route of every truck delivering today so
// the planning board finds them in the route cache.
type RouteWarmupJob struct {
	trucks   trucksForDateHandler
	routes   truckRouteHandler
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRouteWarmupJob creates the job. An empty schedule selects DefaultRouteWarmupSchedule;
// schedules use the six-field cron format with seconds.
func NewRouteWarmupJob(
	trucks trucksForDateHandler,
	routes truckRouteHandler,
	schedule string,
	logger *slog.Logger,
) *RouteWarmupJob {
	if schedule == "" {
		schedule = DefaultRouteWarmupSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RouteWarmupJob{
		trucks:   trucks,
		routes:   routes,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "route_warmup_job"),
	}
}

// Start registers the warm-up with the scheduler and starts it.
func (j *RouteWarmupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Route warm-up job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running warm-up to finish.
func (j *RouteWarmupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Route warm-up job stopped")
}

// Run warms the routes of today's trucks once and returns the number of routes
// computed or read from cache. A failing truck is logged and skipped.
func (j *RouteWarmupJob) Run(ctx context.Context) int {
	query, err := queries.NewGetTrucksForDateQuery(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Route warm-up job failed", "error", err)
		return 0
	}

	trucks, err := j.trucks.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Route warm-up job failed to list trucks", "error", err)
		return 0
	}

	warmed := 0
	for _, t := range trucks {
		if t.Orders == 0 {
			continue
		}

		routeQuery, err := queries.NewGetTruckRouteQuery(t.ID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Route warm-up skipped truck", "truck_id", t.ID.String(), "error", err)
			continue
		}

		if _, err = j.routes.Handle(ctx, routeQuery); err != nil {
			// The truck can disappear between listing and routing.
			if !errors.Is(err, errs.ErrObjectNotFound) {
				j.logger.ErrorContext(ctx, "Route warm-up failed for truck", "truck_id", t.ID.String(), "error", err)
			}
			continue
		}
		warmed++
	}

	j.logger.DebugContext(ctx, "Route warm-up finished", "trucks", len(trucks), "warmed", warmed)
	return warmed
}
