package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClientAdapterConfig_Defaults(t *testing.T) {
	t.Setenv("USERS_API_ADDRESS", "")
	t.Setenv("USERS_API_TIMEOUT", "")

	cfg, err := loadClientAdapterConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "localhost:3000", cfg.HTTPAddress)
	assert.Equal(t, defaultClientRequestTimeout, cfg.RequestTimeout)
}

func TestLoadClientAdapterConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("USERS_API_ADDRESS", "http://api.test:8080")
	t.Setenv("USERS_API_TIMEOUT", "2s")

	cfg, err := loadClientAdapterConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://api.test:8080", cfg.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
}

func TestLoadClientAdapterConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("USERS_API_ADDRESS", "http://api.test:8080")
	t.Setenv("USERS_API_TIMEOUT", "2s")

	cfg, err := loadClientAdapterConfig([]string{"-a", "localhost:4000", "-timeout", "500ms"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:4000", cfg.HTTPAddress)
	assert.Equal(t, 500*time.Millisecond, cfg.RequestTimeout)
}

func TestLoadClientAdapterConfig_Errors(t *testing.T) {
	t.Setenv("USERS_API_ADDRESS", "")
	t.Setenv("USERS_API_TIMEOUT", "")

	_, err := loadClientAdapterConfig([]string{"-timeout", "-1s"})
	assert.ErrorIs(t, err, ErrInvalidClientConfigs)

	_, err = loadClientAdapterConfig([]string{"-unknown"})
	assert.Error(t, err)
}
