package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8080
read_timeout = 10
write_timeout = 10
idle_timeout = 60
shutdown_timeout = 15

[database]
host = "localhost"
port = 5432
user = "charter"
password = "charter"
dbname = "charter_bookings"
sslmode = "disable"

[logs]
level = "info"

[rate_limit]
rps = 0.5
burst = 3
`

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "charter_bookings", cfg.Database.DBName)
	assert.Equal(t, 0.5, cfg.RateLimit.RPS)
}

func TestLoad_PolicyDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	policy := cfg.Policy.ToDomain()
	assert.Equal(t, 6, policy.DayStartHour)
	assert.Equal(t, 18, policy.DayEndHour)
	assert.Equal(t, 3, policy.MinDurationHours)
	assert.Equal(t, 8, policy.MaxDurationHours)
	assert.Equal(t, 2, policy.InterBookingBufferHours)
	assert.Equal(t, 60, policy.TimeStepMinutes)
}

func TestLoad_PolicyOverride(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig+`
[policy]
day_start_hour = 7
inter_booking_buffer_hours = 1
`))
	require.NoError(t, err)

	policy := cfg.Policy.ToDomain()
	assert.Equal(t, 7, policy.DayStartHour)
	assert.Equal(t, 1, policy.InterBookingBufferHours)
	// Остальное остается дефолтным
	assert.Equal(t, 18, policy.DayEndHour)
}

func TestLoad_InvalidWindow(t *testing.T) {
	_, err := Load(writeConfig(t, validConfig+`
[policy]
day_start_hour = 18
day_end_hour = 6
`))
	assert.Error(t, err)
}

func TestLoad_MissingPort(t *testing.T) {
	_, err := Load(writeConfig(t, `
[database]
host = "localhost"
dbname = "charter_bookings"
`))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "charter",
		Password: "secret",
		DBName:   "charter_bookings",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=charter password=secret dbname=charter_bookings sslmode=disable",
		cfg.DSN())
}
