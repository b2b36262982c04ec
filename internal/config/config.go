package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// API Configuration
	APIPort       string
	APIHost       string
	PublicBaseURL string
	CORSOrigins   []string

	// OpenAI image generation
	OpenAIAPIKey       string
	OpenAIBaseURL      string
	OpenAIImageModel   string
	OpenAIImageStyle   string
	OpenAIImageQuality string

	// Printify
	PrintifyBaseURL  string
	PrintifyAPIToken string
	ShopID           string
	UploadFileName   string

	// Stripe
	StripeSecretKey  string
	CheckoutCurrency string
	ShippingAmount   int64

	// Kafka
	KafkaBrokers string
	KafkaTopic   string

	// Product templates
	CatalogFile     string
	DefaultTemplate string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		APIPort:            getEnv("API_PORT", "8080"),
		APIHost:            getEnv("API_HOST", "0.0.0.0"),
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		CORSOrigins:        getEnvAsList("CORS_ORIGINS", []string{"*"}),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIImageModel:   getEnv("OPENAI_IMAGE_MODEL", "dall-e-3"),
		OpenAIImageStyle:   getEnv("OPENAI_IMAGE_STYLE", "natural"),
		OpenAIImageQuality: getEnv("OPENAI_IMAGE_QUALITY", "hd"),
		PrintifyBaseURL:    getEnv("PRINTIFY_BASE_URL", "https://api.printify.com"),
		PrintifyAPIToken:   getEnv("PRINTIFY_API_TOKEN", ""),
		ShopID:             getEnv("SHOP_ID", ""),
		UploadFileName:     getEnv("UPLOAD_FILE_NAME", "generatedImage.png"),
		StripeSecretKey:    getEnv("STRIPE_SECRET_KEY", ""),
		CheckoutCurrency:   getEnv("CHECKOUT_CURRENCY", "gbp"),
		ShippingAmount:     int64(getEnvAsInt("SHIPPING_AMOUNT", 499)),
		KafkaBrokers:       getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:         getEnv("KAFKA_TOPIC", "storefront-events"),
		CatalogFile:        getEnv("CATALOG_FILE", ""),
		DefaultTemplate:    getEnv("DEFAULT_TEMPLATE", DefaultTemplateName),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}, nil
}

// Brokers splits the comma separated KAFKA_BROKERS value.
func (c *Config) Brokers() []string {
	return splitList(c.KafkaBrokers)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	if items := splitList(os.Getenv(key)); len(items) > 0 {
		return items
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
