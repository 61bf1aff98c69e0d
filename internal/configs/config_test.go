package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/core/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp переводит тест в пустой каталог, чтобы локальный .env не влиял на результат
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdirTemp(t)
	for _, key := range []string{"APP_NAME", "PORT", "JWT_SECRET", "SESSION_TTL", "PAGE_SIZE", "DEFAULT_LANGUAGE",
		"FLUENTBIT_ENABLED", "DATABASE_URL", "REDIS_ADDR", "RABBITMQ_URL", "CORS_ALLOWED_ORIGINS",
		"AUTH_LOGIN_DELAY", "AUTH_REGISTER_DELAY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "palcars", cfg.AppName)
	assert.Equal(t, "8080", cfg.Rest.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Rest.AllowedOrigins)
	assert.True(t, cfg.Auth.DevSecret)
	assert.Equal(t, 72*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 800*time.Millisecond, cfg.Auth.LoginDelay)
	assert.Equal(t, time.Second, cfg.Auth.RegisterDelay)
	assert.Equal(t, 6, cfg.Catalog.PageSize)
	assert.Equal(t, locale.Arabic, cfg.Catalog.DefaultLanguage)
	assert.False(t, cfg.FluentBit.Enabled)
	assert.Empty(t, cfg.Database.URL)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	dir := chdirTemp(t)
	envFile := filepath.Join(dir, "test.env")
	content := "PORT=9090\nJWT_SECRET=from-file\nSESSION_TTL=2h\nDEFAULT_LANGUAGE=en\nCORS_ALLOWED_ORIGINS=https://a.ps, https://b.ps\nREDIS_DB=not-a-number\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	for _, key := range []string{"PORT", "JWT_SECRET", "SESSION_TTL", "DEFAULT_LANGUAGE", "CORS_ALLOWED_ORIGINS", "REDIS_DB"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Rest.Port)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.False(t, cfg.Auth.DevSecret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, locale.English, cfg.Catalog.DefaultLanguage)
	assert.Equal(t, []string{"https://a.ps", "https://b.ps"}, cfg.Rest.AllowedOrigins)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	chdirTemp(t)
	_, err := LoadConfig("does-not-exist.env")
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	chdirTemp(t)

	t.Setenv("PAGE_SIZE", "0")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("PAGE_SIZE", "6")
	t.Setenv("DEFAULT_LANGUAGE", "fr")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_FluentWithoutHostIsDisabled(t *testing.T) {
	chdirTemp(t)
	t.Setenv("FLUENTBIT_ENABLED", "true")
	t.Setenv("FLUENTBIT_HOST", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.FluentBit.Enabled)
}
