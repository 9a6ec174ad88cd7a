package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juguetron/agent-api/pkg/config"
)

// TestLoad_ValoresPorDefecto sin env vars la configuración queda en los valores
// de producción del portal.
func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "juguetron-api", cfg.App.Name)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, "https://www.juguetron.mx/_v/segment/graphql/v1", cfg.VTEX.BaseURL)
	assert.NotEmpty(t, cfg.VTEX.AutocompleteHash)
	assert.NotEmpty(t, cfg.VTEX.ProductSuggestionsHash)
	assert.Equal(t, "C10126", cfg.Billing.InvoicePrefix)
	assert.Equal(t, uint64(100000), cfg.Billing.FolioStart)
}

// TestLoad_EnvTienePrioridad las variables de entorno sobreescriben los valores
// por defecto.
func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("BILLING_INVOICE_PREFIX", "C99999")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "C99999", cfg.Billing.InvoicePrefix)
}

func TestHTTPConfig_Addr(t *testing.T) {
	c := config.HTTPConfig{Host: "127.0.0.1", Port: 8000}

	assert.Equal(t, "127.0.0.1:8000", c.Addr())
}
