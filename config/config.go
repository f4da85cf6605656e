package config

import (
	"os"
	"strconv"
)

type Config struct {
	App    AppConfig
	Logger LoggerConfig
	API    APIConfig
	UI     UIConfig
}

type AppConfig struct {
	Env string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type UIConfig struct {
	RowsPerPage      int
	SearchDebounceMs int
	DateOptionDays   int
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "development"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		API: APIConfig{
			BaseURL:        getEnv("API_BASE_URL", "http://localhost:3000"),
			TimeoutSeconds: getEnvInt("API_TIMEOUT_SECONDS", 30),
		},
		UI: UIConfig{
			RowsPerPage:      getEnvInt("UI_ROWS_PER_PAGE", 5),
			SearchDebounceMs: getEnvInt("UI_SEARCH_DEBOUNCE_MS", 300),
			DateOptionDays:   getEnvInt("UI_DATE_OPTION_DAYS", 90),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
