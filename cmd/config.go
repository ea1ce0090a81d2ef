package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"planner/internal/core/domain/model/kernel"
)

const (
	// DefaultDepotLat and DefaultDepotLng place the depot in the centre of the
	// Netherlands when no depot is configured.
	DefaultDepotLat = 52.1
	DefaultDepotLng = 5.3

	DefaultHTTPPort      = "8080"
	DefaultRouteCacheTTL = 24 * time.Hour
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisURL is a redis:// URL. Empty disables the route cache.
	RedisURL      string
	RouteCacheTTL time.Duration

	Depot               kernel.Coordinate
	RouteMaxPasses      int
	RouteWarmupSchedule string
}

// LoadConfig reads the configuration through getenv, typically os.Getenv after
// godotenv has loaded .env. Unset optional values get their defaults; malformed
// values are reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:            withDefault(getenv("HTTP_PORT"), DefaultHTTPPort),
		DBHost:              getenv("DB_HOST"),
		DBPort:              getenv("DB_PORT"),
		DBUser:              getenv("DB_USER"),
		DBPassword:          getenv("DB_PASSWORD"),
		DBName:              getenv("DB_NAME"),
		DBSslMode:           withDefault(getenv("DB_SSLMODE"), "disable"),
		RedisURL:            getenv("REDIS_URL"),
		RouteWarmupSchedule: getenv("ROUTE_WARMUP_SCHEDULE"),
	}

	lat, latErr := parseFloat("DEPOT_LAT", getenv("DEPOT_LAT"), DefaultDepotLat)
	lng, lngErr := parseFloat("DEPOT_LNG", getenv("DEPOT_LNG"), DefaultDepotLng)
	passes, passesErr := parseInt("ROUTE_MAX_PASSES", getenv("ROUTE_MAX_PASSES"), 0)
	ttl, ttlErr := parseDuration("ROUTE_CACHE_TTL", getenv("ROUTE_CACHE_TTL"), DefaultRouteCacheTTL)
	if err := errors.Join(latErr, lngErr, passesErr, ttlErr); err != nil {
		return Config{}, err
	}

	depot, err := kernel.NewCoordinate(lat, lng)
	if err != nil {
		return Config{}, fmt.Errorf("depot: %w", err)
	}

	config.Depot = depot
	config.RouteMaxPasses = passes
	config.RouteCacheTTL = ttl
	return config, nil
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func parseFloat(key, v string, def float64) (float64, error) {
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func parseInt(key, v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func parseDuration(key, v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
