// Package jobs provides scheduled background tasks for the planner.
//
// Jobs are cron based, using github.com/robfig/cron/v3 with the six-field
// format that includes seconds.
//
// # Available Jobs
//
// RouteWarmupJob lists the trucks delivering today and requests the optimized
// route of each one that has orders, so the route cache is filled before the
// planning board asks for it. The schedule comes from ROUTE_WARMUP_SCHEDULE and
// defaults to every five minutes.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(trucksHandler, routeHandler, config.RouteWarmupSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A truck that fails to route is logged and skipped; trucks deleted between
// listing and routing are skipped silently. Failed job starts return an error
// from StartAll.
package jobs
