package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	Stage              string
	LogLevel           string
	PublicDir          string
	ReceiptRenderer    string
	ReceiptTemplate    string
	CatalogFile        string
	PostgresDSN        string
	TaxRates           string
	MinOrderTotal      string
	CORSAllowedOrigins []string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getlist(k string) []string {
	var out []string
	for _, s := range strings.Split(os.Getenv(k), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	return Config{
		Port:               getenv("PORT", "3000"),
		Stage:              getenv("STAGE", "dev"),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		PublicDir:          getenv("PUBLIC_DIR", "public"),
		ReceiptRenderer:    getenv("RECEIPT_RENDERER", "template"),
		ReceiptTemplate:    os.Getenv("RECEIPT_TEMPLATE"),
		CatalogFile:        os.Getenv("CATALOG_FILE"),
		PostgresDSN:        os.Getenv("POSTGRES_DSN"),
		TaxRates:           os.Getenv("TAX_RATES"),
		MinOrderTotal:      getenv("MIN_ORDER_TOTAL", "10.00"),
		CORSAllowedOrigins: getlist("CORS_ALLOWED_ORIGINS"),
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
