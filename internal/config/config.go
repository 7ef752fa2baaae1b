package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Local store
	StoreDriver string
	StorePath   string
	StoreDSN    string

	// Chat provider (OpenAI-compatible chat completions)
	ChatAPIURL        string
	ChatAPIKey        string
	ChatModel         string
	ChatTemperature   float64
	ChatHistoryWindow int

	// Content provider
	AffirmationsAPIURL string

	AITimeout time.Duration

	// Subscription
	TrialDuration time.Duration

	// Logging
	LogLevel     string
	LogRetention time.Duration

	// Shell bridge
	BridgeSecret    string
	BridgeTokenTTL  time.Duration
	BridgeTokenFile string
	Port            string
	CORSOrigins     string

	// Error tracking
	SentryDSN string
	AppEnv    string
}

func Load() *Config {
	return &Config{
		StoreDriver: getEnv("STORE_DRIVER", "sqlite"),
		StorePath:   getEnv("STORE_PATH", "data/wellness.db"),
		StoreDSN:    getEnv("STORE_DSN", ""),

		ChatAPIURL:        getEnv("CHAT_API_URL", "https://api.openai.com/v1/chat/completions"),
		ChatAPIKey:        getEnv("CHAT_API_KEY", ""),
		ChatModel:         getEnv("CHAT_MODEL", "gpt-4o-mini"),
		ChatTemperature:   parseFloat(getEnv("CHAT_TEMPERATURE", "0.7"), 0.7),
		ChatHistoryWindow: parseInt(getEnv("CHAT_HISTORY_WINDOW", "20"), 20),

		AffirmationsAPIURL: getEnv("AFFIRMATIONS_API_URL", ""),

		AITimeout: parseDuration(getEnv("AI_TIMEOUT", "30s"), 30*time.Second),

		TrialDuration: parseDuration(getEnv("TRIAL_DURATION", "72h"), 72*time.Hour),

		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogRetention: parseDuration(getEnv("LOG_RETENTION", "720h"), 30*24*time.Hour),

		BridgeSecret:    getEnv("BRIDGE_SECRET", ""),
		BridgeTokenTTL:  parseDuration(getEnv("BRIDGE_TOKEN_TTL", "24h"), 24*time.Hour),
		BridgeTokenFile: getEnv("BRIDGE_TOKEN_FILE", "data/bridge.token"),
		Port:            getEnv("PORT", "8787"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),

		SentryDSN: getEnv("SENTRY_DSN", ""),
		AppEnv:    getEnv("APP_ENV", "development"),
	}
}

// RemoteEnabled reports whether a chat provider key is configured.
func (c *Config) RemoteEnabled() bool {
	return c.ChatAPIKey != "" && c.ChatAPIURL != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseFloat(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return fallback
	}
	return f
}
