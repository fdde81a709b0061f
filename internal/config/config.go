// Package config defines the configuration contract and handles loading and
// validating environment configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// Canonical environment variable keys.
	KeyTelegramToken  = "TELEGRAM_TOKEN"
	KeyWeatherAPIKey  = "WEATHER_API_KEY"
	KeyAppEnv         = "APP_ENV"
	KeyLogLevel       = "LOG_LEVEL"
	KeyHTTPPort       = "HTTP_PORT"
	KeyPrayerAPIURL   = "PRAYER_API_URL"
	KeyOverpassAPIURL = "OVERPASS_API_URL"
	KeyWeatherAPIURL  = "WEATHER_API_URL"

	// Allowed environment values.
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// Defaults for optional settings.
	DefaultAppEnv   = EnvProduction
	DefaultLogLevel = "info"
	DefaultHTTPPort = 8080
)

// VarSpec describes a single configuration key.
type VarSpec struct {
	Key         string // environment variable name
	Example     string // human-friendly sample value
	Required    bool   // whether the bot must refuse to start without this value
	Default     string // default when unset (empty when required)
	Description string // what the variable controls
	Notes       string // extra guidance or policies
}

// Contract enumerates the authoritative configuration keys for the bot.
// .env loading is only permitted when APP_ENV=development; production must rely
// on environment variables supplied by the runtime.
var Contract = []VarSpec{
	{
		Key:         KeyTelegramToken,
		Example:     "123:ABC",
		Required:    true,
		Description: "Telegram Bot Token issued by BotFather.",
	},
	{
		Key:         KeyWeatherAPIKey,
		Example:     "0a1b2c3d",
		Required:    true,
		Description: "OpenWeatherMap API key for the weather feature.",
	},
	{
		Key:         KeyAppEnv,
		Example:     EnvDevelopment + " / " + EnvProduction,
		Default:     DefaultAppEnv,
		Description: "Runtime environment; controls log format and dotenv usage.",
		Notes:       "Load .env files only when APP_ENV=" + EnvDevelopment + ".",
	},
	{
		Key:         KeyLogLevel,
		Example:     DefaultLogLevel,
		Default:     DefaultLogLevel,
		Description: "Overrides default log level.",
	},
	{
		Key:         KeyHTTPPort,
		Example:     strconv.Itoa(DefaultHTTPPort),
		Default:     strconv.Itoa(DefaultHTTPPort),
		Description: "HTTP health/diagnostics port.",
	},
	{
		Key:         KeyPrayerAPIURL,
		Example:     "http://api.aladhan.com",
		Description: "Prayer-times provider base URL; empty selects the public endpoint.",
	},
	{
		Key:         KeyOverpassAPIURL,
		Example:     "https://overpass-api.de/api/interpreter",
		Description: "Overpass endpoint for mosque search; empty selects the public endpoint.",
	},
	{
		Key:         KeyWeatherAPIURL,
		Example:     "https://api.openweathermap.org",
		Description: "Weather provider base URL; empty selects the public endpoint.",
	},
}

// Config mirrors resolved configuration values after loading.
type Config struct {
	TelegramToken  string
	WeatherAPIKey  string
	AppEnv         string
	LogLevel       string
	HTTPPort       int
	PrayerAPIURL   string
	OverpassAPIURL string
	WeatherAPIURL  string
}

// Load resolves configuration from the environment (with optional dotenv in development).
func Load() (Config, error) {
	appEnv, err := resolveAppEnv()
	if err != nil {
		return Config{}, err
	}

	if err := loadDotEnv(appEnv); err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:         firstNonEmpty(normalizeEnv(os.Getenv(KeyAppEnv)), appEnv),
		TelegramToken:  strings.TrimSpace(os.Getenv(KeyTelegramToken)),
		WeatherAPIKey:  strings.TrimSpace(os.Getenv(KeyWeatherAPIKey)),
		LogLevel:       firstNonEmpty(strings.TrimSpace(os.Getenv(KeyLogLevel)), DefaultLogLevel),
		HTTPPort:       DefaultHTTPPort,
		PrayerAPIURL:   strings.TrimSpace(os.Getenv(KeyPrayerAPIURL)),
		OverpassAPIURL: strings.TrimSpace(os.Getenv(KeyOverpassAPIURL)),
		WeatherAPIURL:  strings.TrimSpace(os.Getenv(KeyWeatherAPIURL)),
	}

	if err := validateAppEnv(cfg.AppEnv); err != nil {
		return Config{}, err
	}

	missing := make([]string, 0)

	if cfg.TelegramToken == "" {
		missing = append(missing, KeyTelegramToken)
	}

	if cfg.WeatherAPIKey == "" {
		missing = append(missing, KeyWeatherAPIKey)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variable(s): %s", strings.Join(missing, ", "))
	}

	httpPortRaw := strings.TrimSpace(os.Getenv(KeyHTTPPort))
	if httpPortRaw != "" {
		port, parseErr := strconv.Atoi(httpPortRaw)
		if parseErr != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", KeyHTTPPort, parseErr)
		}
		if port <= 0 {
			return Config{}, fmt.Errorf("%s must be greater than 0", KeyHTTPPort)
		}
		cfg.HTTPPort = port
	}

	return cfg, nil
}

// IsDevelopment reports if APP_ENV is development.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

func resolveAppEnv() (string, error) {
	if explicit := normalizeEnv(os.Getenv(KeyAppEnv)); explicit != "" {
		return explicit, nil
	}

	dotEnvValues, err := godotenv.Read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultAppEnv, nil
		}
		return "", fmt.Errorf("read .env: %w", err)
	}

	if envFromFile := normalizeEnv(dotEnvValues[KeyAppEnv]); envFromFile != "" {
		return envFromFile, nil
	}

	return DefaultAppEnv, nil
}

func loadDotEnv(appEnv string) error {
	if appEnv != EnvDevelopment {
		return nil
	}

	if err := godotenv.Load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}

func validateAppEnv(appEnv string) error {
	if appEnv == EnvDevelopment || appEnv == EnvProduction {
		return nil
	}

	return fmt.Errorf("invalid %s: must be %q or %q", KeyAppEnv, EnvDevelopment, EnvProduction)
}

// FormatRedacted renders the resolved configuration with secrets masked, for
// the --config-only diagnostic output.
func FormatRedacted(c Config) string {
	lines := []string{
		"telegram_token: " + maskSecret(c.TelegramToken),
		"weather_api_key: " + maskSecret(c.WeatherAPIKey),
		"app_env: " + c.AppEnv,
		"log_level: " + c.LogLevel,
		"http_port: " + strconv.Itoa(c.HTTPPort),
	}

	if c.PrayerAPIURL != "" {
		lines = append(lines, "prayer_api_url: "+c.PrayerAPIURL)
	}
	if c.OverpassAPIURL != "" {
		lines = append(lines, "overpass_api_url: "+c.OverpassAPIURL)
	}
	if c.WeatherAPIURL != "" {
		lines = append(lines, "weather_api_url: "+c.WeatherAPIURL)
	}

	return strings.Join(lines, "\n")
}

func maskSecret(value string) string {
	if len(value) <= 4 {
		return "redacted"
	}

	return value[:4] + "...redacted"
}

func normalizeEnv(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func firstNonEmpty(values ...string) string {
	for _, val := range values {
		if strings.TrimSpace(val) != "" {
			return strings.TrimSpace(val)
		}
	}
	return ""
}
