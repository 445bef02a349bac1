package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
	SAP      SAPConfig
	Snapshot SnapshotConfig
	Portal   PortalConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// JWTConfig configuración de los tokens de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// SAPConfig conexión al Service Layer. Si BaseURL está vacío la aplicación
// opera solo con el dataset local (el sync nunca se intenta).
type SAPConfig struct {
	BaseURL     string
	CompanyDB   string
	Username    string
	Password    string
	Warehouse   string // código de bodega para el $filter de StockTransfers
	SyncMinutes int    // intervalo del auto-sync mientras hay conexión
}

// SnapshotConfig ruta del snapshot de sesión persistido en disco
// (el análogo del localStorage del front-end).
type SnapshotConfig struct {
	Path string
}

// PortalConfig reglas del portal.
type PortalConfig struct {
	GuestQuoteLimit int // máximo de productos únicos consolidables por un invitado
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, SAP_BASE_URL, etc.
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
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "lubriportal"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "lubriportal"),
		},
		SAP: SAPConfig{
			BaseURL:     getString(v, "SAP_BASE_URL", ""),
			CompanyDB:   getString(v, "SAP_COMPANY_DB", ""),
			Username:    getString(v, "SAP_USERNAME", ""),
			Password:    getString(v, "SAP_PASSWORD", ""),
			Warehouse:   getString(v, "SAP_WAREHOUSE", "01"),
			SyncMinutes: getInt(v, "SAP_SYNC_MINUTES", 5),
		},
		Snapshot: SnapshotConfig{
			Path: getString(v, "SNAPSHOT_PATH", "./data/session.json"),
		},
		Portal: PortalConfig{
			GuestQuoteLimit: getInt(v, "PORTAL_GUEST_QUOTE_LIMIT", 5),
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
