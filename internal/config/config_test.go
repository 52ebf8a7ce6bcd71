package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"DATABASE_URL", "DATABASE_NAME", "PORT", "PUBLIC_URL", "UPLOAD_DIR", "UPLOAD_MAX_BYTES",
	"S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET",
	"JWT_SECRET", "ADMIN_USER", "ADMIN_PASSWORD_HASH",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "HEALTH_PORT", "CORS_ORIGIN", "BIZSITE_CONFIG",
	"MONGO_URI", "TRUST_PROXY",
}

// clearEnv blanks every key for the test so the host env does not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	c, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017/bizsite", c.DatabaseURL)
	assert.Equal(t, "5000", c.Port)
	assert.Equal(t, "http://localhost:5000", c.PublicURL)
	assert.Equal(t, "uploads", c.UploadDir)
	assert.Equal(t, "*", c.CORSOrigin)
	assert.Equal(t, 5.0, c.RateLimitRPS)
	assert.Equal(t, 10, c.RateLimitBurst)
	assert.False(t, c.S3.Enabled())
	assert.False(t, c.AuthEnabled())
	assert.False(t, c.TrustProxy)
}

func TestMongoURIAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://legacy:27017/site")
	c, err := LoadFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "mongodb://legacy:27017/site", c.DatabaseURL)

	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/site")
	c, err = LoadFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/site", c.DatabaseURL)
}

func TestTrustProxy(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRUST_PROXY", "true")
	c, err := LoadFrom(viper.New())
	require.NoError(t, err)
	assert.True(t, c.TrustProxy)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/site")
	t.Setenv("PORT", "8080")
	t.Setenv("PUBLIC_URL", "https://example.test/")
	t.Setenv("UPLOAD_MAX_BYTES", "1048576")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")

	c, err := LoadFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/site", c.DatabaseURL)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "https://example.test", c.PublicURL)
	assert.EqualValues(t, 1<<20, c.UploadMaxBytes)
	assert.Zero(t, c.RateLimitRPS)
	assert.True(t, c.AuthEnabled())
	assert.Equal(t, "admin", c.AdminUser)
}

func TestConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bizsite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7000\"\nupload_dir: /srv/uploads\n"), 0o600))
	t.Setenv("BIZSITE_CONFIG", path)
	t.Setenv("UPLOAD_DIR", "/env/uploads")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7000", c.Port)
	assert.Equal(t, "/env/uploads", c.UploadDir)
}

func TestMissingExplicitConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("BIZSITE_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"partial s3", map[string]string{"S3_ENDPOINT": "localhost:9000", "S3_BUCKET": "b"}},
		{"secret without hash", map[string]string{"JWT_SECRET": "s"}},
		{"negative upload cap", map[string]string{"UPLOAD_MAX_BYTES": "-1"}},
		{"zero burst", map[string]string{"RATE_LIMIT_RPS": "2", "RATE_LIMIT_BURST": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFrom(viper.New())
			assert.Error(t, err)
		})
	}
}

func TestS3Enabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("S3_ACCESS_KEY", "minio")
	t.Setenv("S3_SECRET_KEY", "minio123")
	t.Setenv("S3_BUCKET", "uploads")

	c, err := LoadFrom(viper.New())
	require.NoError(t, err)
	assert.True(t, c.S3.Enabled())
}
