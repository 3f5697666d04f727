package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AllowedOrigins        []string      `mapstructure:"ALLOWED_ORIGINS"`
	DatabaseURL           string        `mapstructure:"DATABASE_URL"`
	HTTPServerAddress     string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisServerAddress    string        `mapstructure:"REDIS_SERVER_ADDRESS"`
	TokenSecretKey        string        `mapstructure:"TOKEN_SECRET_KEY"`
	AccessTokenDuration   time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	AdminPasswordHash     string        `mapstructure:"ADMIN_PASSWORD_HASH"`
	CloudinaryURL         string        `mapstructure:"CLOUDINARY_URL"`
	LalamoveAPIKey        string        `mapstructure:"LALAMOVE_API_KEY"`
	LalamoveAPISecret     string        `mapstructure:"LALAMOVE_API_SECRET"`
	LalamoveWebhookSecret string        `mapstructure:"LALAMOVE_WEBHOOK_SECRET"`
	DiscordBotToken       string        `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordChannelID      string        `mapstructure:"DISCORD_CHANNEL_ID"`
	GmailSMTPUsername     string        `mapstructure:"GMAIL_SMTP_USERNAME"`
	GmailSMTPPassword     string        `mapstructure:"GMAIL_SMTP_PASSWORD"`
	StoreInboxAddress     string        `mapstructure:"STORE_INBOX_ADDRESS"`
	GeocodeBaseURL        string        `mapstructure:"GEOCODE_BASE_URL"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set defaults for non-sensitive config
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("ACCESS_TOKEN_DURATION", "24h")
	viper.SetDefault("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org")

	// Prefer environment variables over config file
	viper.AutomaticEnv()

	// Load config file
	viper.SetConfigFile(path)
	if err = viper.ReadInConfig(); err != nil {
		return
	}

	// Unmarshal config into struct
	err = viper.UnmarshalExact(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if config.TokenSecretKey == "" {
		return fmt.Errorf("TOKEN_SECRET_KEY is required")
	}
	if config.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if config.RedisServerAddress == "" {
		return fmt.Errorf("REDIS_SERVER_ADDRESS is required")
	}

	return nil
}

// GetRequiredSecret returns a named secret from the loaded config.
// The Lalamove client resolves its credentials through this instead of
// reading ambient environment state, so a missing key fails before any
// network call is made.
func (c *Config) GetRequiredSecret(name string) (string, error) {
	var value string
	switch name {
	case "LALAMOVE_API_KEY":
		value = c.LalamoveAPIKey
	case "LALAMOVE_API_SECRET":
		value = c.LalamoveAPISecret
	default:
		return "", fmt.Errorf("unknown secret %s", name)
	}

	if value == "" {
		return "", fmt.Errorf("missing required secret %s", name)
	}

	return value, nil
}
