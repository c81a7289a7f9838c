package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"solverdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvHTTPPort, EnvLogLevel, EnvLogFormat, EnvSolverRoster, EnvSolverCapacity, EnvReportSchedule,
	} {
		// absent, so godotenv may fill it
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoadConfig_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHTTPPort, "9090")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvSolverCapacity, " 3 ")
	t.Setenv(EnvReportSchedule, "@every 30s")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 3, cfg.SolverCapacity)
	assert.Equal(t, "@every 30s", cfg.ReportSchedule)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHTTPPort, "7000")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=6000\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.HTTPPort, "process environment wins over the file")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidCapacity(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSolverCapacity, "five")

	_, err := LoadConfig("")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestLoadConfig_OutOfRangeValuesAreLeftForOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSolverCapacity, "0")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.SolverCapacity)
	require.ErrorIs(t, cfg.Validate(), errs.ErrValueIsOutOfRange)

	cfg.SolverCapacity = 3
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HTTPPort = "70000"
	cfg.SolverCapacity = 0
	cfg.ReportSchedule = " "

	err := cfg.Validate()

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), EnvHTTPPort)
	assert.Contains(t, err.Error(), EnvSolverCapacity)
}
