package api

import (
	"fmt"

	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/services/openai"
	"storefront/internal/services/printify"
	"storefront/internal/storefront"
)

// NewFromConfig builds the provider clients and storefront components described by cfg
// and returns a server routing to them.
func NewFromConfig(cfg *config.Config, logger *logger.Logger) (*Server, error) {
	catalog, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load product templates: %w", err)
	}
	if _, err := catalog.Template(cfg.DefaultTemplate, config.DefaultTemplateName); err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_TEMPLATE: %w", err)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		publisher = events.NewKafkaPublisher(brokers, cfg.KafkaTopic, logger)
		logger.Info("Publishing pipeline events to %s on %v", cfg.KafkaTopic, brokers)
	}

	images := openai.New(openai.Options{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIImageModel,
		Style:   cfg.OpenAIImageStyle,
		Quality: cfg.OpenAIImageQuality,
	}, logger)
	provider := printify.NewClient(cfg.PrintifyBaseURL, cfg.ShopID, cfg.PrintifyAPIToken, logger)

	pipeline := storefront.NewPipeline(images, provider, storefront.PipelineOptions{
		Catalog:         catalog,
		DefaultTemplate: cfg.DefaultTemplate,
		UploadFileName:  cfg.UploadFileName,
		Events:          publisher,
	}, logger)
	checkout := storefront.NewCheckout(storefront.NewStripeSessions(cfg.StripeSecretKey), storefront.CheckoutOptions{
		Currency:       cfg.CheckoutCurrency,
		ShippingAmount: cfg.ShippingAmount,
	}, logger)

	return New(cfg, logger, Dependencies{
		Pipeline: pipeline,
		Products: storefront.NewRetriever(provider, logger),
		Checkout: checkout,
		Events:   publisher,
	}), nil
}
