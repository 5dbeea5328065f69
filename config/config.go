package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// WeatherOrNot specifics
	OpenAI         OpenAIConfig
	Forecast       ForecastConfig
	Database       DatabaseConfig
	GoogleCalendar GoogleCalendarConfig
	Dialogue       DialogueConfig
	Watch          WatchConfig
	RateLimit      RateLimitConfig
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

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type ForecastConfig struct {
	BaseURL string
	Timeout time.Duration
}

type DatabaseConfig struct {
	Path string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type DialogueConfig struct {
	Timezone string
}

type WatchConfig struct {
	Enabled bool
	Spec    string
}

type RateLimitConfig struct {
	PerMinute int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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

	// WeatherOrNot specifics
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	if apiKey := viper.GetString("openai_api_key"); apiKey != "" {
		cfg.OpenAI.APIKey = apiKey
	}

	cfg.Forecast.BaseURL = viper.GetString("forecast.base_url")
	cfg.Forecast.Timeout = viper.GetDuration("forecast.timeout")

	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("database_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Dialogue.Timezone = viper.GetString("dialogue.timezone")

	cfg.Watch.Enabled = viper.GetBool("watch.enabled")
	cfg.Watch.Spec = viper.GetString("watch.spec")

	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")

	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("openai.api_key is required - set OPENAI_API_KEY or add it to config.yaml")
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
	viper.SetDefault("openai.model", "gpt-4-1106-preview")
	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("forecast.base_url", "https://climathon.iblsoft.com/data/gfs-0.5deg/edr/collections/single-layer")
	viper.SetDefault("forecast.timeout", "30s")
	viper.SetDefault("database.path", "weatherornot.db")
	viper.SetDefault("dialogue.timezone", "Europe/Bratislava")
	viper.SetDefault("watch.enabled", false)
	viper.SetDefault("watch.spec", "0 */3 * * *")
	viper.SetDefault("rate_limit.per_minute", 60)
}
