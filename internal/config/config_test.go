package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090
timezone = "UTC"

[database]
host = "db"
dbname = "salons"
user = "svc"

[auth]
jwt_secret = "from-file"

[cache]
backend = "redis"
ttl_seconds = 60

[mail]
transport = "smtp"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 60, int(cfg.Cache.TTL().Seconds()))
	assert.Equal(t, 5, cfg.Scheduler.DigestHour)
	assert.Equal(t, 7, cfg.Scheduler.ReminderHour)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "host=db port=5432 user=svc password= dbname=salons sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "UTC", cfg.Location().String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	const base = "[database]\nhost = \"db\"\ndbname = \"x\"\n"

	tests := []struct {
		name string
		body string
	}{
		{name: "missing secret", body: base},
		{name: "unknown cache backend", body: base + "[auth]\njwt_secret = \"k\"\n[cache]\nbackend = \"memcached\"\n"},
		{name: "unknown mail transport", body: base + "[auth]\njwt_secret = \"k\"\n[mail]\ntransport = \"pigeon\"\n"},
		{name: "bad timezone", body: base + "[auth]\njwt_secret = \"k\"\n[server]\ntimezone = \"Mars/Olympus\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			_, err := Load(writeConfig(t, tt.body))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.ErrorIs(t, err, ErrReadConfig)
}
