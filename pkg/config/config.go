package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	VTEX    VTEXConfig
	Billing BillingConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env     string // development, staging, production
	Name    string
	Version string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// VTEXConfig configuración del buscador VTEX de la tienda (GraphQL con
// consultas persistidas). Los hashes identifican las consultas registradas
// en la plataforma; cambian solo cuando la tienda publica una nueva versión.
type VTEXConfig struct {
	BaseURL                string
	AutocompleteHash       string
	ProductSuggestionsHash string
	Timeout                time.Duration
	RetryMax               int
}

// BillingConfig configuración de la facturación CFDI simulada.
type BillingConfig struct {
	InvoicePrefix string // prefijo del identificador de factura (ej. C10126)
	FolioStart    uint64 // primer folio que entrega el asignador
	PDFBaseURL    string // base para pdf_url de la factura CFDI
	SATBaseURL    string // base para la URL de verificación ante el SAT
	ERPPDFBaseURL string // base para pdf_url del ERP simulado
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, VTEX_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:     getString(v, "APP_ENV", "development"),
			Name:    getString(v, "APP_NAME", "juguetron-api"),
			Version: getString(v, "APP_VERSION", "1.1.0"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8000),
		},
		VTEX: VTEXConfig{
			BaseURL:                getString(v, "VTEX_BASE_URL", "https://www.juguetron.mx/_v/segment/graphql/v1"),
			AutocompleteHash:       getString(v, "VTEX_AUTOCOMPLETE_HASH", "069177eb2c038ccb948b55ca406e13189adcb5addcb00c25a8400450d20e0108"),
			ProductSuggestionsHash: getString(v, "VTEX_PRODUCT_SUGGESTIONS_HASH", "3eca26a431d4646a8bbce2644b78d3ca734bf8b4ba46afe4269621b64b0fb67d"),
			Timeout:                time.Duration(getInt(v, "VTEX_TIMEOUT_SECONDS", 15)) * time.Second,
			RetryMax:               getInt(v, "VTEX_RETRY_MAX", 2),
		},
		Billing: BillingConfig{
			InvoicePrefix: getString(v, "BILLING_INVOICE_PREFIX", "C10126"),
			FolioStart:    uint64(getInt(v, "BILLING_FOLIO_START", 100000)),
			PDFBaseURL:    getString(v, "BILLING_PDF_BASE_URL", "https://facturacionjuguetron.azurewebsites.net/api/invoices"),
			SATBaseURL:    getString(v, "BILLING_SAT_BASE_URL", "https://sat.gob.mx/cfdi"),
			ERPPDFBaseURL: getString(v, "BILLING_ERP_PDF_BASE_URL", "https://api.juguetron.mx/invoices"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
