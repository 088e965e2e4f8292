package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "localhost"
port = 5432
user = "booking"
password = "from-file"
dbname = "shop"

[logs]
level = "debug"

[redis]
enabled = true
addr = "localhost:6379"
ttl = 60

[nats]
enabled = false

[auth]
jwt_secret = "file-secret"

[booking]
timezone = "Europe/Moscow"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, time.Minute, cfg.Redis.TTLDuration())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t,
		"host=localhost port=5432 user=booking password=from-file dbname=shop sslmode=disable",
		cfg.Database.DSN())

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("NATS_URL", "nats://nats:4222")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "nats://nats:4222", cfg.NATS.URL)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	tests := []struct {
		name    string
		content string
	}{
		{name: "broken toml", content: `[server`},
		{name: "no database", content: `[auth]
jwt_secret = "x"`},
		{name: "no secret", content: `[database]
host = "localhost"
dbname = "shop"`},
		{name: "bad timezone", content: `[database]
host = "localhost"
dbname = "shop"
[auth]
jwt_secret = "x"
[booking]
timezone = "Mars/Olympus"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
