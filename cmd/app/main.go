package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planner/cmd"
	httpin "planner/internal/adapters/in/http"
	"planner/internal/adapters/out/postgres"
	"planner/internal/adapters/out/redis"
	"planner/internal/core/ports"
	"planner/internal/generated/servers"
	"planner/internal/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustGormOpen(ctx, configs.DSN())
	routeCache := mustRouteCache(ctx, configs, logger)
	if closer, ok := routeCache.(io.Closer); ok {
		defer closer.Close()
	}
	metrics.RegisterDefault()

	app := cmd.NewCompositionRoot(configs, gormDB, routeCache, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	configs, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return configs
}

func mustGormOpen(ctx context.Context, dsn string) *gorm.DB {
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("connection to postgres failed: %v", err)
	}
	if err := postgres.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	return gormDB
}

// mustRouteCache falls back to no caching when REDIS_URL is unset.
func mustRouteCache(ctx context.Context, configs cmd.Config, logger *slog.Logger) ports.RouteCache {
	if configs.RedisURL == "" {
		logger.Info("route cache disabled")
		return redis.NopRouteCache{}
	}
	cache, err := redis.Connect(ctx, configs.RedisURL, configs.RouteCacheTTL)
	if err != nil {
		log.Fatalf("connection to redis failed: %v", err)
	}
	return cache
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := servers.GetSwagger()
	if err != nil {
		log.Fatalf("error loading openapi document: %v", err)
	}

	e, err := httpin.NewRouter(app.CreateHTTPServer(), doc, logger)
	if err != nil {
		log.Fatalf("error building router: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}
