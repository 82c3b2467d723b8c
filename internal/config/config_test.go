package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 3000, cfg.ServerPort)
	require.Equal(t, "blogApp", cfg.MongoDB)
	require.Equal(t, "memory", cfg.SessionStore)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("PORT", "3000")
	t.Setenv("SESSION_STORE", "cookie-jar")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("SESSION_SWEEP", "every tuesday")
	_, err = Load()
	require.Error(t, err)
}
