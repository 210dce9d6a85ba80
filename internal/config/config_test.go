package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palettehub/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 25, cfg.DB.MaxOpen)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnLifetime)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTokenExpiry)
	assert.Equal(t, "https://colormagic.app/api", cfg.ColorMagic.BaseURL)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PALETTEHUB_DB_HOST", "db.internal")
	t.Setenv("PALETTEHUB_DB_PORT", "6543")
	t.Setenv("PALETTEHUB_JWT_SECRET", "topsecret")
	t.Setenv("PALETTEHUB_COLORMAGIC_TIMEOUT_SECS", "3")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, "topsecret", cfg.JWT.Secret)
	assert.Equal(t, 3, cfg.ColorMagic.TimeoutSecs)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_ExplicitPortWinsOverPlatformPort(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PALETTEHUB_SERVER_PORT", ":7070")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestDBConfig_DSN(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "palettehub",
		Password: "pw",
		Name:     "palettehub_db",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://palettehub:pw@localhost:5432/palettehub_db?sslmode=disable", cfg.DSN())
}

func TestLoad_CORSOriginsTrimmed(t *testing.T) {
	t.Setenv("PALETTEHUB_CORS_ALLOWED_ORIGINS", " https://palettehub.app , https://staging.palettehub.app ")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://palettehub.app", "https://staging.palettehub.app"}, cfg.CORS.AllowedOrigins)
}
