package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables understood by pagesim.
const (
	EnvViewportWidth = "PAGESIM_VIEWPORT_WIDTH"
	EnvDuration      = "PAGESIM_DURATION"
	EnvTraceDB       = "PAGESIM_TRACE_DB"
	EnvMonitorPort   = "PAGESIM_MONITOR_PORT"
	EnvClickHouseDSN = "PAGESIM_CLICKHOUSE_DSN"
	EnvMySQLDSN      = "PAGESIM_MYSQL_DSN"
	EnvMongoDBURI    = "PAGESIM_MONGODB_URI"
)

// Env holds the environment overrides. Zero values mean "not set".
type Env struct {
	ViewportWidth float64
	Duration      time.Duration
	TraceDB       string
	MonitorPort   int
	ClickHouseDSN string
	MySQLDSN      string
	MongoDBURI    string
}

// LoadEnv loads the given dotenv files, or ./.env if it exists and none are
// given, and then reads the overrides. Variables already in the environment
// win over the files.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			files = []string{".env"}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("config: %w", err)
		}
	}

	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Env{}, fmt.Errorf("config: %w", err)
		}
	}

	return ReadEnv()
}

// ReadEnv reads the overrides from the process environment.
func ReadEnv() (Env, error) {
	var env Env

	if v := os.Getenv(EnvViewportWidth); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil || !(w > 0) {
			return Env{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvViewportWidth, v)
		}

		env.ViewportWidth = w
	}

	if v := os.Getenv(EnvDuration); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Env{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvDuration, v)
		}

		env.Duration = d
	}

	env.TraceDB = os.Getenv(EnvTraceDB)
	env.ClickHouseDSN = os.Getenv(EnvClickHouseDSN)
	env.MySQLDSN = os.Getenv(EnvMySQLDSN)
	env.MongoDBURI = os.Getenv(EnvMongoDBURI)

	if v := os.Getenv(EnvMonitorPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 0 || port > 65535 {
			return Env{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvMonitorPort, v)
		}

		env.MonitorPort = port
	}

	return env, nil
}

// Apply copies the page-level overrides onto p.
func (e Env) Apply(p *Page) {
	if e.ViewportWidth > 0 {
		p.Viewport.Width = e.ViewportWidth
	}
}
