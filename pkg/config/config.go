// Package config lee la configuración de la aplicación vía Viper (variables
// de entorno con archivo .env opcional; las env vars tienen prioridad).
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación.
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	JWT  JWTConfig
	SII  SIIConfig
}

// AppConfig configuración general.
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

// JWTConfig configuración de tokens de la API.
type JWTConfig struct {
	Secret     string
	APIKey     string // clave que se intercambia por un token en /api/auth/token
	Expiration int    // minutos
	Issuer     string
}

// SIIConfig parámetros de emisión SII.
type SIIConfig struct {
	Environment string // "certificacion" o "produccion" (solo informativo: no se envían DTEs)
	TasaIVA     int    // tasa IVA por defecto en puntos porcentuales
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, API_KEY, SII_ENVIRONMENT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "dte-chile"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			APIKey:     getString(v, "API_KEY", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "dte-chile"),
		},
		SII: SIIConfig{
			Environment: getString(v, "SII_ENVIRONMENT", "certificacion"),
			TasaIVA:     getInt(v, "SII_TASA_IVA", 19),
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
		if s, ok := v.Get(key).(string); ok {
			n, err := strconv.Atoi(s)
			if err != nil {
				return def
			}
			return n
		}
		return v.GetInt(key)
	}
	return def
}
