package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: development
  serviceName: identity
  log:
    level: debug
http:
  port: 8080
storage:
  driver: memory
secretKey:
  access: access-secret
  refresh: refresh-secret
cipher:
  secret: yaml-secret
auth:
  accessTokenTTL: 5m
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := writeConfig(t, testYAML)
	t.Setenv("CIPHER_SECRET", "env-secret")

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "identity", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "env-secret", cfg.Cipher.Secret)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestLoadWithEnv_SuppliedPathWinsOverWorkingDir(t *testing.T) {
	supplied := writeConfig(t, testYAML)
	cwd := writeConfig(t, "http:\n  port: 3000\nstorage:\n  driver: postgres\n")
	t.Chdir(cwd)

	cfg, err := LoadWithEnv[Config]("config", supplied)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)

	fallback, err := LoadWithEnv[Config]("config", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 3000, fallback.HTTP.Port)
	assert.Equal(t, StorageDriverPostgres, fallback.Storage.Driver)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in any search path")
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Env.ServiceName = "identity"
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, []string{defaultAllowedOrigin}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, defaultCipherSalt, cfg.Cipher.Salt)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultRefreshTokenTTL, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, "identity", cfg.Auth.Issuer)
	assert.NotNil(t, cfg.Cookie)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Storage.Driver = StorageDriverMemory
		cfg.Cipher.Secret = "cipher"
		cfg.SecretKey.Access = "access"
		cfg.SecretKey.Refresh = "refresh"

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing cipher secret", mutate: func(c *Config) { c.Cipher.Secret = "" }, wantErr: "cipher secret"},
		{name: "missing jwt secret", mutate: func(c *Config) { c.SecretKey.Refresh = "" }, wantErr: "jwt secrets"},
		{name: "same jwt secrets", mutate: func(c *Config) { c.SecretKey.Refresh = c.SecretKey.Access }, wantErr: "must differ"},
		{name: "postgres without connection", mutate: func(c *Config) { c.Storage.Driver = StorageDriverPostgres }, wantErr: "postgres configuration"},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "redis" }, wantErr: "unknown storage driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_SecureCookies(t *testing.T) {
	cfg := &Config{Cookie: &CookieConfig{}}
	assert.False(t, cfg.SecureCookies())

	cfg.Cookie.Secure = true
	assert.True(t, cfg.SecureCookies())

	cfg.Cookie.Secure = false
	cfg.Env.Env = "Production"
	assert.True(t, cfg.SecureCookies())
}
