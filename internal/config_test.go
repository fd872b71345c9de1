package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, uint16(3000), cfg.Port)
	assert.Equal(t, "http://localhost:8000/Produto/produtos", cfg.Catalog.URL)
	assert.Equal(t, "local", cfg.Snapshot.Provider)
	assert.Equal(t, "vitrine:cart", cfg.Snapshot.Key)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestNewConfig_ProdRequiresWebhook(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("WEBHOOK_URL", "")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEBHOOK_URL")

	t.Setenv("WEBHOOK_URL", "https://hooks.example.com/orders")
	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://hooks.example.com/orders", cfg.Webhook.URL)
}

func TestNewConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("ENV", "staging")
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("WEBHOOK_URL", "https://hooks.example.com/orders")

	cfg, err := NewConfig()
	require.NoError(t, err)

	// Unknown env falls back to prod, unknown level to info
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, splitOrigins("*"))
	assert.Equal(t,
		[]string{"http://localhost:5173", "https://shop.example.com"},
		splitOrigins(" http://localhost:5173 , https://shop.example.com ,"),
	)
}
