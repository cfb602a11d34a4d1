package config_test

import (
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablebook/config"
)

func TestConfig_EnvironmentKeys(t *testing.T) {
	t.Setenv("SERVER_LOG_LEVEL", "debug")
	t.Setenv("APP_APP_NAME", "bookings")
	t.Setenv("APP_TIMEZONE", "Europe/Kyiv")
	t.Setenv("RESERVATION_LEGACY_TABLE_LABELS", "true")
	t.Setenv("RESERVATION_SEED_FILE", "restaurants.csv")
	t.Setenv("EXTERNAL_OTEL_ENDPOINT", "localhost:4317")

	var cfg config.Config
	require.NoError(t, envconfig.Process("", &cfg))

	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "bookings", cfg.App.Name)
	assert.Equal(t, "Europe/Kyiv", cfg.App.Timezone)
	assert.True(t, cfg.Reservation.LegacyTableLabels)
	assert.Equal(t, "restaurants.csv", cfg.Reservation.SeedFile)
	assert.Equal(t, "localhost:4317", cfg.External.Otel.Endpoint)
}

func TestConfig_Defaults(t *testing.T) {
	t.Setenv("EXTERNAL_OTEL_ENDPOINT", "")
	t.Setenv("OTEL_ENDPOINT", "localhost:4317")

	var cfg config.Config
	require.NoError(t, envconfig.Process("", &cfg))

	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "tablebook", cfg.App.Name)
	assert.False(t, cfg.Reservation.LegacyTableLabels)
	assert.Empty(t, cfg.External.Otel.Endpoint, "only the EXTERNAL_ prefixed key is read")
}
