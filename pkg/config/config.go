package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (lida via Viper do ambiente e, opcionalmente, de arquivo).
type Config struct {
	App       AppConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Store     StoreConfig
	Dashboard DashboardConfig
	POS       POSConfig
	Docs      DocsConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// JWTConfig configuração do token de sessão. Secret vazio desliga a emissão.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig loja padrão e carga inicial do store em memória.
type StoreConfig struct {
	DefaultID string
	Seed      bool
}

// DashboardConfig parâmetros dos indicadores.
type DashboardConfig struct {
	LowStockThreshold int
	Timezone          string
}

// Location fuso do "hoje" do painel. Nome inválido cai em UTC-3 fixo.
func (c DashboardConfig) Location() *time.Location {
	if loc, err := time.LoadLocation(c.Timezone); err == nil {
		return loc
	}
	return time.FixedZone("BRT", -3*60*60)
}

// POSConfig parâmetros do PDV.
type POSConfig struct {
	DecrementStock bool
	PaymentMethod  string
}

// DocsConfig documentação OpenAPI servida em /docs.
type DocsConfig struct {
	SwaggerFile string
}

// Load lê a configuração das variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // opcional

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // opcional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "edinho-pneus-manager"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "edinho-pneus"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			DefaultID: getString(v, "STORE_DEFAULT_ID", "1"),
			Seed:      getBool(v, "STORE_SEED", true),
		},
		Dashboard: DashboardConfig{
			LowStockThreshold: getInt(v, "DASHBOARD_LOW_STOCK_THRESHOLD", 3),
			Timezone:          getString(v, "DASHBOARD_TIMEZONE", "America/Sao_Paulo"),
		},
		POS: POSConfig{
			DecrementStock: getBool(v, "POS_DECREMENT_STOCK", true),
			PaymentMethod:  strings.ToUpper(getString(v, "POS_PAYMENT_METHOD", "MISTO")),
		},
		Docs: DocsConfig{
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT inválida: %d", cfg.HTTP.Port)
	}
	if cfg.Dashboard.LowStockThreshold < 0 {
		return nil, fmt.Errorf("config: DASHBOARD_LOW_STOCK_THRESHOLD negativo")
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		if b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key))); err == nil {
			return b
		}
	}
	return def
}
