package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	// Database
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DatabaseURL string

	// Redis
	EnableRedis bool
	RedisURL    string

	// Server
	Port        string
	Environment string

	// CORS
	CORSOrigins []string

	// Rate Limiting
	RateLimitRequests int
	RateLimitWindow   int
	RateLimitBurst    int

	// Features
	EnableCache bool

	// Affiliate network
	AffiliateBaseURL    string
	AffiliateCampaign   string
	AffiliateForwarding bool

	// Analytics
	EventQueueKey    string
	EventQueueMaxLen int64

	// Site Meta
	SiteName string
	SiteURL  string
}

func New() *Config {
	c := &Config{
		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "leadgen"),
		DBPassword: getEnv("DB_PASSWORD", "leadgen"),
		DBName:     getEnv("DB_NAME", "leadgendb"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Redis
		EnableRedis: getEnvAsBool("ENABLE_REDIS", true),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),

		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// CORS
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"), ","),

		// Rate Limiting
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvAsInt("RATE_LIMIT_WINDOW", 60),
		RateLimitBurst:    getEnvAsInt("RATE_LIMIT_BURST", 20),

		// Features
		EnableCache: getEnvAsBool("ENABLE_CACHE", true),

		// Affiliate network
		AffiliateBaseURL:    getEnv("AFFILIATE_BASE_URL", "https://offers.example-network.com/click"),
		AffiliateCampaign:   getEnv("AFFILIATE_CAMPAIGN", "default"),
		AffiliateForwarding: getEnvAsBool("AFFILIATE_FORWARDING", false),

		// Analytics
		EventQueueKey:    getEnv("EVENT_QUEUE_KEY", "events:engagement"),
		EventQueueMaxLen: int64(getEnvAsInt("EVENT_QUEUE_MAX_LEN", 10000)),

		// Site Meta
		SiteName: getEnv("SITE_NAME", "MyInsuranceBuddies"),
		SiteURL:  getEnv("SITE_URL", "https://myinsurancebuddies.com"),
	}

	// Build DSN
	c.DatabaseURL = fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)

	return c
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.ToLower(getEnv(key, ""))
	if valueStr == "" {
		return defaultValue
	}
	return valueStr == "true" || valueStr == "1" || valueStr == "yes"
}
