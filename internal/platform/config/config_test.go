package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/srgjo27/hotel_reservation/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOTEL_BOOKINGS_FILE", "")
	t.Setenv("HOTEL_LOG_LEVEL", "")
	os.Unsetenv("HOTEL_BOOKINGS_FILE")
	os.Unsetenv("HOTEL_LOG_LEVEL")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "bookings.txt", cfg.BookingsFile)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_FromEnvFile(t *testing.T) {
	t.Setenv("HOTEL_BOOKINGS_FILE", "")
	t.Setenv("HOTEL_LOG_LEVEL", "")
	os.Unsetenv("HOTEL_BOOKINGS_FILE")
	os.Unsetenv("HOTEL_LOG_LEVEL")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HOTEL_BOOKINGS_FILE=/tmp/hotel.txt\nHOTEL_LOG_LEVEL=debug\n"), 0o644))

	cfg, err := config.Load(envFile)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/hotel.txt", cfg.BookingsFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	t.Setenv("HOTEL_BOOKINGS_FILE", "from-env.txt")
	t.Setenv("HOTEL_LOG_LEVEL", "info")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HOTEL_BOOKINGS_FILE=from-file.txt\n"), 0o644))

	cfg, err := config.Load(envFile)

	require.NoError(t, err)
	assert.Equal(t, "from-env.txt", cfg.BookingsFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Fail_InvalidLogLevel(t *testing.T) {
	t.Setenv("HOTEL_LOG_LEVEL", "loud")

	_, err := config.Load("")

	assert.ErrorContains(t, err, "invalid config")
}

func TestValidate_Fail_EmptyBookingsFile(t *testing.T) {
	cfg := config.App{BookingsFile: "", LogLevel: "warn"}

	assert.Error(t, cfg.Validate())
}
