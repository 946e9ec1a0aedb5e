package config

import (
	"fmt"
	"os"
)

type Config struct {
	// Stripe
	StripeSecretKey      string
	StripePublishableKey string
	StripeWebhookSecret  string
	StripePriceID        string
	ProductID            string

	// Fallback charge when no price ID is configured (minor units)
	DefaultAmount   int64
	DefaultCurrency string

	// Supabase Storage
	SupabaseURL        string
	SupabaseServiceKey string
	StorageBucket      string

	// Email (Amazon SES)
	AWSRegion    string
	EmailFrom    string
	UseMockEmail bool

	// Server
	Port        string
	Environment string
	SiteURL     string
}

func Load() (*Config, error) {
	cfg := &Config{
		StripeSecretKey:      getEnv("STRIPE_SK", ""),
		StripePublishableKey: getEnv("STRIPE_PK", ""),
		StripeWebhookSecret:  getEnv("STRIPE_WEBHOOK_SECRET", ""),
		StripePriceID:        getEnv("STRIPE_PRICE_ID", ""),
		ProductID:            getEnv("PRODUCT_ID", "pdf-merge"),

		DefaultAmount:   399,
		DefaultCurrency: "usd",

		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
		StorageBucket:      getEnv("STORAGE_BUCKET", "merged-pdfs"),

		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		EmailFrom:    getEnv("EMAIL_FROM", ""),
		UseMockEmail: getEnv("USE_MOCK_AWS", "") == "true",

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		SiteURL:     getEnv("SITE_URL", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.StripeSecretKey == "" {
		return fmt.Errorf("STRIPE_SK is required")
	}
	if c.StripeWebhookSecret == "" {
		return fmt.Errorf("STRIPE_WEBHOOK_SECRET is required")
	}
	if !c.UseMockEmail && c.EmailFrom == "" {
		return fmt.Errorf("EMAIL_FROM is required unless USE_MOCK_AWS=true")
	}
	return nil
}

// StorageConfigured reports whether the object-storage binding is usable.
// Handlers that need storage answer 503 when it is not.
func (c *Config) StorageConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
