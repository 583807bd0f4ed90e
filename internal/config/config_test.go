package config_test

import (
	"testing"
	"time"

	"chai/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := config.NewViper()

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Port)
	assert.True(t, cfg.Server.CSRFEnabled)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "db.sqlite3", cfg.Database.DSN)
	assert.Equal(t, 12*time.Hour, cfg.Admin.TokenTTL)
	assert.Equal(t, []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}, cfg.Media.AllowedTypes)
	assert.Empty(t, cfg.RabbitMQ.URL)
}

func TestFromViper_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_DSN", "host=localhost user=postgres dbname=chai")
	t.Setenv("APP_PORT", ":9090")

	cfg, err := config.FromViper(config.NewViper())
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=localhost user=postgres dbname=chai", cfg.Database.DSN)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestFromViper_Invalid(t *testing.T) {
	v := config.NewViper()
	v.Set("DB_DRIVER", "mysql")
	_, err := config.FromViper(v)
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")

	v = config.NewViper()
	v.Set("MAX_UPLOAD_MB", 0)
	_, err = config.FromViper(v)
	assert.ErrorContains(t, err, "MAX_UPLOAD_MB")
}
