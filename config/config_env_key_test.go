package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"bucketUrl": "",
			"minio": map[string]any{
				"accessKey": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"catalog": map[string]any{
			"defaultPageSize": 5,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_MINIO_ACCESSKEY", want: "storage.minio.accessKey"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "CATALOG_DEFAULTPAGESIZE", want: "catalog.defaultPageSize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  serviceName: ecommerce
http:
  port: 8080
  timeouts:
    readTimeout: 5s
secretKey:
  access: from-file
catalog:
  defaultPageSize: 5
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("CATALOG_DEFAULTPAGESIZE", "12")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "ecommerce", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Catalog)
	assert.Equal(t, 12, cfg.Catalog.DefaultPageSize)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Storage: &StorageConfig{Provider: "blob"},
		Metrics: &MetricsConfig{Enabled: true},
	}

	cfg.applyDefaults()

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 5, cfg.Catalog.DefaultPageSize)
	assert.Equal(t, "https://placehold.co/300x300", cfg.Catalog.PlaceholderImageURL)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Catalog.SlowQueryThreshold)
	assert.Equal(t, int64(defaultMaxImageSize), cfg.Storage.MaxImageSize)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
