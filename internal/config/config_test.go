package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "studydesk", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
	assert.Equal(t, 1500, cfg.Assistant.ReplyDelayMillis)
	assert.InDelta(t, 0.7, cfg.Assistant.PDFBias, 1e-9)
	assert.Equal(t, "chat.message.persist", cfg.RabbitMQ.MessagePersistQueue)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MYSQL_DB", "studydesk_test")
	t.Setenv("ASSISTANT_PDF_BIAS", "0.25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "studydesk_test", cfg.MySQL.DB)
	assert.InDelta(t, 0.25, cfg.Assistant.PDFBias, 1e-9)
}

func TestBadEnvIntFallsBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
}
