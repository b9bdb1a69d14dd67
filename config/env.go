package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Port              string
	APIBaseURL        string
	APITimeout        time.Duration
	WSBaseURL         string
	SessionSecret     string
	SessionTTL        time.Duration
	CartDir           string
	RedisURL          string
	ProductCacheTTL   time.Duration
	OAuthClientID     string
	OAuthClientSecret string
	OAuthAuthURL      string
	OAuthTokenURL     string
	OAuthRedirectURL  string
	PaymentPublicKey  string
	OriginURL         string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "10s"))
	if err != nil {
		apiTimeout = 10 * time.Second
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "168h"))
	if err != nil {
		sessionTTL = 7 * 24 * time.Hour
	}

	cacheTTL, err := time.ParseDuration(getEnv("PRODUCT_CACHE_TTL", "5m"))
	if err != nil {
		cacheTTL = 5 * time.Minute
	}

	AppConfig = &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", getEnv("PORT", "8082")),
		APIBaseURL:        getEnv("API_BASE_URL", "http://localhost:8000"),
		APITimeout:        apiTimeout,
		WSBaseURL:         getEnv("WS_BASE_URL", ""),
		SessionSecret:     getEnv("SESSION_SECRET", "secret"),
		SessionTTL:        sessionTTL,
		CartDir:           getEnv("CART_DIR", "./carts"),
		RedisURL:          getEnv("REDIS_URL", ""),
		ProductCacheTTL:   cacheTTL,
		OAuthClientID:     getEnv("OAUTH_CLIENT_ID", ""),
		OAuthClientSecret: getEnv("OAUTH_CLIENT_SECRET", ""),
		OAuthAuthURL:      getEnv("OAUTH_AUTH_URL", ""),
		OAuthTokenURL:     getEnv("OAUTH_TOKEN_URL", ""),
		OAuthRedirectURL:  getEnv("OAUTH_REDIRECT_URL", ""),
		PaymentPublicKey:  getEnv("PAYMENT_PUBLIC_KEY", ""),
		OriginURL:         getEnv("ORIGIN_URL", ""),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Commerce API: %s", AppConfig.APIBaseURL)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
