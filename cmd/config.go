package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"solverdesk/internal/core/domain/model/solver"
	"solverdesk/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	EnvHTTPPort       = "HTTP_PORT"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvSolverRoster   = "SOLVER_ROSTER"
	EnvSolverCapacity = "SOLVER_CAPACITY"
	EnvReportSchedule = "REPORT_SCHEDULE"
)

type Config struct {
	HTTPPort  string
	LogLevel  string
	LogFormat string
	// SolverRoster is an optional YAML file; empty means DefaultRoster.
	SolverRoster string
	// SolverCapacity applies to roster entries that do not set their own.
	SolverCapacity int
	ReportSchedule string
}

func DefaultConfig() Config {
	return Config{
		HTTPPort:       "8080",
		LogLevel:       "info",
		LogFormat:      "text",
		SolverCapacity: solver.DefaultCapacity,
		ReportSchedule: "@every 1m",
	}
}

// LoadConfig starts from DefaultConfig and applies the environment. envFile is
// loaded first when it exists; variables already set in the process win over
// the file. The result is not validated, so that flags applied afterwards can
// still correct it; call Validate once they are in.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := DefaultConfig()
	setString(&cfg.HTTPPort, EnvHTTPPort)
	setString(&cfg.LogLevel, EnvLogLevel)
	setString(&cfg.LogFormat, EnvLogFormat)
	setString(&cfg.SolverRoster, EnvSolverRoster)
	setString(&cfg.ReportSchedule, EnvReportSchedule)

	if raw := strings.TrimSpace(os.Getenv(EnvSolverCapacity)); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause(EnvSolverCapacity, err)
		}
		cfg.SolverCapacity = capacity
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var result []error
	if strings.TrimSpace(c.HTTPPort) == "" {
		result = append(result, errs.NewValueIsRequiredError(EnvHTTPPort))
	} else if port, err := strconv.Atoi(c.HTTPPort); err != nil || port <= 0 || port > 65535 {
		result = append(result, errs.NewValueIsOutOfRangeError(EnvHTTPPort, c.HTTPPort, 1, 65535))
	}
	if c.SolverCapacity <= 0 {
		result = append(result, errs.NewValueIsOutOfRangeError(EnvSolverCapacity, c.SolverCapacity, 1, "unbounded"))
	}
	if strings.TrimSpace(c.ReportSchedule) == "" {
		result = append(result, errs.NewValueIsRequiredError(EnvReportSchedule))
	}
	return errors.Join(result...)
}

// Addr is the listen address of the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%s", c.HTTPPort)
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
