package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret      = "a-very-secret-key-should-be-longer-and-random"
	defaultCashKeywords   = "kas,bank"
	defaultCapitalCode    = "3001"
	defaultRateLimit      = "100-M"
	defaultMigrationsPath = "file://migrations"
	defaultAllowedOrigins = "http://localhost:3000"
	defaultJWTIssuer      = "ledger-saas"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	JWTIssuer          string
	CORSAllowedOrigins []string
	RateLimit          string
	RedisURL           string
	MigrationsPath     string
	// CashAccountKeywords mark an asset account as cash or bank when its name contains one of them.
	CashAccountKeywords []string
	CapitalAccountCode  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	v.SetDefault("CASH_ACCOUNT_KEYWORDS", defaultCashKeywords)
	v.SetDefault("CAPITAL_ACCOUNT_CODE", defaultCapitalCode)

	// Environment variables override .env values, which override the defaults above.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         v.GetString("PGSQL_URL"),
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTIssuer:           v.GetString("JWT_ISSUER"),
		CORSAllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:           v.GetString("RATE_LIMIT"),
		RedisURL:            v.GetString("REDIS_URL"),
		MigrationsPath:      v.GetString("MIGRATIONS_PATH"),
		CashAccountKeywords: splitList(v.GetString("CASH_ACCOUNT_KEYWORDS")),
		CapitalAccountCode:  v.GetString("CAPITAL_ACCOUNT_CODE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if len(cfg.CashAccountKeywords) == 0 {
		cfg.CashAccountKeywords = splitList(defaultCashKeywords)
		log.Printf("Warning: CASH_ACCOUNT_KEYWORDS is empty. Defaulting to %s.\n", defaultCashKeywords)
	}
	if cfg.CapitalAccountCode == "" {
		cfg.CapitalAccountCode = defaultCapitalCode
	}
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	return cfg, nil
}

// splitList parses a comma separated value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
