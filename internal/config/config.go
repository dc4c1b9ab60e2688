package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Backends de verificación de credenciales
const (
	AuthBackendStatic   = "static"
	AuthBackendDatabase = "database"
)

// Config contiene toda la configuración del sistema
type Config struct {
	Auth     AuthConfig     `toml:"auth"`
	Database DatabaseConfig `toml:"database"`
	Discord  DiscordConfig  `toml:"discord"`
	Report   ReportConfig   `toml:"report"`
	Source   SourceConfig   `toml:"source"`
	Log      LogConfig      `toml:"log"`
}

// AuthConfig configuración del verificador de credenciales del lote
type AuthConfig struct {
	Backend  string `toml:"backend"` // static | database
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// DatabaseConfig configuración de la base de operadores
type DatabaseConfig struct {
	Driver     string `toml:"driver"` // mysql | sqlite
	Host       string `toml:"host"`
	Port       string `toml:"port"`
	Username   string `toml:"username"`
	Password   string `toml:"password"`
	Database   string `toml:"database"`
	SQLitePath string `toml:"sqlite_path"`
}

// DiscordConfig configuración del bot que publica los resúmenes
type DiscordConfig struct {
	BotToken  string `toml:"bot_token"`
	ChannelID string `toml:"channel_id"`
}

// ReportConfig configuración de la exportación de reportes
type ReportConfig struct {
	BasePath string `toml:"base_path"` // Directorio donde se escriben los reportes
}

// SourceConfig configuración de las fuentes remotas de lotes
type SourceConfig struct {
	Username       string `toml:"username"`
	APIToken       string `toml:"api_token"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// LogConfig configuración del logger
type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default devuelve la configuración por defecto
func Default() *Config {
	return &Config{
		Auth: AuthConfig{Backend: AuthBackendStatic},
		Database: DatabaseConfig{
			Driver:     "mysql",
			Host:       "localhost",
			Port:       "3306",
			Database:   "fermenta",
			SQLitePath: "data/fermenta.db",
		},
		Report: ReportConfig{BasePath: "data/reports"},
		Source: SourceConfig{TimeoutSeconds: 30},
		Log:    LogConfig{Level: "info"},
	}
}

// Load carga la configuración. Orden de precedencia: valores por defecto,
// archivo TOML (path o FERMENTA_CONFIG, opcional) y variables de entorno.
func Load(path string) (*Config, error) {
	// Cargar archivo .env si existe
	godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv("FERMENTA_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("error leyendo %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Auth.Backend = strings.ToLower(getEnvOrDefault("AUTH_BACKEND", cfg.Auth.Backend))
	cfg.Auth.Username = getEnvOrDefault("AUTH_USERNAME", cfg.Auth.Username)
	cfg.Auth.Password = getEnvOrDefault("AUTH_PASSWORD", cfg.Auth.Password)

	cfg.Database.Driver = getEnvOrDefault("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.Host = getEnvOrDefault("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnvOrDefault("DB_PORT", cfg.Database.Port)
	cfg.Database.Username = getEnvOrDefault("DB_USERNAME", cfg.Database.Username)
	cfg.Database.Password = getEnvOrDefault("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Database = getEnvOrDefault("DB_DATABASE", cfg.Database.Database)
	cfg.Database.SQLitePath = getEnvOrDefault("DB_SQLITE_PATH", cfg.Database.SQLitePath)

	cfg.Discord.BotToken = getEnvOrDefault("DISCORD_BOT_TOKEN", cfg.Discord.BotToken)
	cfg.Discord.ChannelID = getEnvOrDefault("DISCORD_CHANNEL_ID", cfg.Discord.ChannelID)

	cfg.Report.BasePath = getEnvOrDefault("REPORT_BASE_PATH", cfg.Report.BasePath)

	cfg.Source.Username = getEnvOrDefault("SOURCE_USERNAME", cfg.Source.Username)
	cfg.Source.APIToken = getEnvOrDefault("SOURCE_API_TOKEN", cfg.Source.APIToken)
	if timeout := os.Getenv("SOURCE_TIMEOUT_SECONDS"); timeout != "" {
		if parsed, err := strconv.Atoi(timeout); err == nil {
			cfg.Source.TimeoutSeconds = parsed
		}
	}

	cfg.Log.Level = getEnvOrDefault("LOG_LEVEL", cfg.Log.Level)
	if dev := os.Getenv("LOG_DEVELOPMENT"); dev != "" {
		cfg.Log.Development = dev == "true"
	}
}

// Validate revisa los valores que no tienen arreglo por defecto
func (c *Config) Validate() error {
	switch c.Auth.Backend {
	case AuthBackendStatic, AuthBackendDatabase:
	default:
		return fmt.Errorf("AUTH_BACKEND inválido: %q", c.Auth.Backend)
	}
	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER inválido: %q", c.Database.Driver)
	}
	if c.Source.TimeoutSeconds <= 0 {
		return fmt.Errorf("SOURCE_TIMEOUT_SECONDS debe ser positivo, valor %d", c.Source.TimeoutSeconds)
	}
	return nil
}

// DiscordEnabled indica si hay credenciales para publicar en Discord
func (c *Config) DiscordEnabled() bool {
	return c.Discord.BotToken != "" && c.Discord.ChannelID != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
