package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigDir(t *testing.T, env, yaml string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(yaml), 0o600))

	paths, dotEnv := ConfigPaths, DotEnvPaths
	ConfigPaths, DotEnvPaths = []string{dir}, nil
	t.Cleanup(func() { ConfigPaths, DotEnvPaths = paths, dotEnv })

	t.Setenv("TXC_ENV", env)
}

func TestLoadConfig_FileAndDurations(t *testing.T) {
	withConfigDir(t, Test, `
server:
  port: 9090
  readTimeout: 5
  allowedOrigins: ["https://app.example.com"]
database:
  driver: sqlite
  database: ":memory:"
  connMaxLifetime: 2
auth:
  jwtSecret: "0123456789abcdef0123456789abcdef"
  tokenTTL: 30
rateLimit:
  window: 120
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 2*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.VerificationTTL)
	assert.Equal(t, 2*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "memory", cfg.RateLimit.Backend)
	assert.Equal(t, int64(5<<20), cfg.Uploads.MaxBytes)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	withConfigDir(t, Development, "server:\n  port: 8080\n")

	t.Setenv("TXC_SERVER_PORT", "7070")
	t.Setenv("TXC_DB_HOST", "db.internal")
	t.Setenv("TXC_JWT_SECRET", "from-env-from-env-from-env-from-env")
	t.Setenv("TXC_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("TXC_ADMIN_USERNAME", "root")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "from-env-from-env-from-env-from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "root", cfg.Admin.Username)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	paths := ConfigPaths
	ConfigPaths = []string{t.TempDir()}
	t.Cleanup(func() { ConfigPaths = paths })
	t.Setenv("TXC_ENV", "staging")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: 8080},
			Auth:      AuthConfig{JWTSecret: "0123456789abcdef0123456789abcdef"},
			RateLimit: RateLimitConfig{Enabled: true, Backend: "memory", Limit: 5, Window: time.Minute},
			Uploads:   UploadsConfig{Dir: "./uploads", MaxBytes: 1024},
		}
	}
	require.NoError(t, valid().Validate())

	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"BadPort", func(c *Config) { c.Server.Port = 0 }},
		{"ShortSecret", func(c *Config) { c.Auth.JWTSecret = "short" }},
		{"IncompleteAdmin", func(c *Config) { c.Admin.Username = "root" }},
		{"UnknownBackend", func(c *Config) { c.RateLimit.Backend = "memcached" }},
		{"ZeroWindow", func(c *Config) { c.RateLimit.Window = 0 }},
		{"NoUploadDir", func(c *Config) { c.Uploads.Dir = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	disabled := valid()
	disabled.RateLimit = RateLimitConfig{}
	assert.NoError(t, disabled.Validate())
}
