package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Sktai    SktaiConfig
	Postgres PostgresConfig
}

type ServerConfig struct {
	Port           string
	DebugMode      bool
	AllowedOrigins string
}

type AuthConfig struct {
	JWTSecret      string
	JWTAccessTTL   string
	JWTRefreshTTL  string
	AllowSignup    string
	AdminUsername  string
	AdminPassword  string
	CookieDomain   string
	CookiePath     string
	CookieSecure   string
	CookieSameSite string
	OIDCIssuer     string
	OIDCClientID   string
}

type SktaiConfig struct {
	BaseURL            string
	ClientID           string
	ClientSecret       string
	Scope              string
	ExchangeClientName string
	AdminUsername      string
	ConnectTimeout     time.Duration
	ReadTimeout        time.Duration
	RetryCount         int
	RetryBackoff       time.Duration
	InsecureSkipVerify bool
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

func Load() Config {
	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:           getenv("PORT", "8080"),
			DebugMode:      os.Getenv("DEBUG_MODE") == "true" || os.Getenv("DEBUG_MODE") == "1",
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Auth: AuthConfig{
			JWTSecret:      os.Getenv("JWT_SECRET"),
			JWTAccessTTL:   getenv("JWT_ACCESS_TTL", "15m"),
			JWTRefreshTTL:  getenv("JWT_REFRESH_TTL", "168h"),
			AllowSignup:    os.Getenv("ALLOW_SIGNUP"),
			AdminUsername:  os.Getenv("ADMIN_USERNAME"),
			AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
			CookieDomain:   os.Getenv("AUTH_COOKIE_DOMAIN"),
			CookiePath:     os.Getenv("AUTH_COOKIE_PATH"),
			CookieSecure:   os.Getenv("AUTH_COOKIE_SECURE"),
			CookieSameSite: os.Getenv("AUTH_COOKIE_SAMESITE"),
			OIDCIssuer:     os.Getenv("OIDC_ISSUER"),
			OIDCClientID:   os.Getenv("OIDC_CLIENT_ID"),
		},
		Sktai: SktaiConfig{
			BaseURL:            getenv("SKTAI_BASE_URL", "http://sktai.local"),
			ClientID:           getenv("SKTAI_CLIENT_ID", "default"),
			ClientSecret:       os.Getenv("SKTAI_CLIENT_SECRET"),
			Scope:              getenv("SKTAI_SCOPE", "openid"),
			ExchangeClientName: getenv("SKTAI_EXCHANGE_CLIENT_NAME", "adxp"),
			AdminUsername:      getenv("SKTAI_ADMIN_USERNAME", "admin"),
			ConnectTimeout:     getduration("SKTAI_CONNECT_TIMEOUT", 30*time.Second),
			ReadTimeout:        getduration("SKTAI_READ_TIMEOUT", 5*time.Minute),
			RetryCount:         getint("SKTAI_RETRY_COUNT", 2),
			RetryBackoff:       getduration("SKTAI_RETRY_BACKOFF", 500*time.Millisecond),
			InsecureSkipVerify: os.Getenv("SKTAI_INSECURE_SKIP_VERIFY") == "true",
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getint(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
