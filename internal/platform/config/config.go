package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Path of the sqlite file holding the persisted dataset snapshot.
	SQLitePath string

	// Rate limit in ulule/limiter notation, e.g. "100-M" for 100 req/min.
	RateLimit string

	// Directory of static frontend assets; empty disables static serving.
	StaticDir string

	// Allowed CORS origins, comma separated; "*" allows all.
	CORSAllowedOrigins []string

	// Third-party credentials relayed to the frontend via /api/config.
	FinnhubAPIKey string
	GeminiAPIKey  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SQLITE_PATH", "data/financetracker.db")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("STATIC_DIR", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("FINNHUB_API_KEY", "")
	viper.SetDefault("GEMINI_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.StaticDir = viper.GetString("STATIC_DIR")

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	cfg.FinnhubAPIKey = viper.GetString("FINNHUB_API_KEY")
	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")

	// The relay endpoint is the hard failure point for these; at load time a
	// warning is enough.
	if cfg.FinnhubAPIKey == "" {
		log.Println("Warning: FINNHUB_API_KEY not set. The /api/config relay will report an error.")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. The /api/config relay will report an error.")
	}

	return cfg, nil
}
