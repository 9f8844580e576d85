package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Unibot specifics
	Postgres  PostgresConfig
	Internal  InternalAPIConfig
	Gateway   GatewayConfig
	Bot       BotConfig
	RateLimit RateLimitConfig
	Reminder  ReminderConfig
	Admin     AdminConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig configures the dashboard datastore.
type PostgresConfig struct {
	DSN string
}

// InternalAPIConfig configures the worker→web internal API channel.
// The worker calls POST {BaseURL}/api/internal/wa/reply with the shared
// secret in the X-Internal-Secret header.
type InternalAPIConfig struct {
	BaseURL        string
	Secret         string
	TimeoutSeconds int
}

// GatewayConfig configures the external WhatsApp gateway used to send
// messages. The socket/transport itself lives outside this service.
type GatewayConfig struct {
	BaseURL string
	Token   string
}

// BotConfig identifies the bot inside WhatsApp groups.
type BotConfig struct {
	JID      string // full bot JID, e.g. 628123456789@s.whatsapp.net
	Name     string // mention token, e.g. "unibot" for @unibot
	WebURL   string // public dashboard URL shown in help replies
	Timezone string // IANA timezone for all date arithmetic
}

// RateLimitConfig gates how often a single sender may trigger the bot
// inside one group.
type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

// ReminderConfig drives the dashboard-managed reminder dispatcher.
type ReminderConfig struct {
	Enabled bool
	Cron    string // cron spec, e.g. "0 6 * * *"
}

// AdminConfig guards the dashboard CRUD API.
type AdminConfig struct {
	Token string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/unibot/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/unibot/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Datastore
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	// Internal API
	cfg.Internal.BaseURL = viper.GetString("internal.base_url")
	cfg.Internal.Secret = viper.GetString("internal.secret")
	cfg.Internal.TimeoutSeconds = viper.GetInt("internal.timeout_seconds")
	if secret := viper.GetString("internal_api_secret"); secret != "" {
		cfg.Internal.Secret = secret
	}

	// WhatsApp gateway
	cfg.Gateway.BaseURL = viper.GetString("gateway.base_url")
	cfg.Gateway.Token = viper.GetString("gateway.token")
	if token := viper.GetString("wa_gateway_token"); token != "" {
		cfg.Gateway.Token = token
	}

	// Bot identity
	cfg.Bot.JID = viper.GetString("bot.jid")
	cfg.Bot.Name = viper.GetString("bot.name")
	cfg.Bot.WebURL = viper.GetString("bot.web_url")
	cfg.Bot.Timezone = viper.GetString("bot.timezone")
	if webURL := viper.GetString("web_url"); webURL != "" {
		cfg.Bot.WebURL = webURL
	}

	// Rate limiting
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Reminders
	cfg.Reminder.Enabled = viper.GetBool("reminder.enabled")
	cfg.Reminder.Cron = viper.GetString("reminder.cron")

	// Admin API
	cfg.Admin.Token = viper.GetString("admin.token")
	if token := viper.GetString("admin_api_token"); token != "" {
		cfg.Admin.Token = token
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("internal.base_url", "http://localhost:8080")
	viper.SetDefault("internal.timeout_seconds", 5)

	viper.SetDefault("bot.name", "unibot")
	viper.SetDefault("bot.web_url", "http://localhost:3000")
	viper.SetDefault("bot.timezone", "Asia/Jakarta")

	viper.SetDefault("rate_limit.per_minute", 20)
	viper.SetDefault("rate_limit.burst", 5)

	viper.SetDefault("reminder.enabled", false)
	viper.SetDefault("reminder.cron", "0 6 * * *")
}
