package storefront

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/services/printify"
)

// Retriever loads products for display. Every call goes to the provider.
type Retriever struct {
	provider PrintProvider
	logger   *logger.Logger
}

func NewRetriever(provider PrintProvider, logger *logger.Logger) *Retriever {
	return &Retriever{provider: provider, logger: logger}
}

func (r *Retriever) Retrieve(ctx context.Context, productID string) (*models.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, ErrValidation
	}

	product, err := r.provider.GetProduct(ctx, productID)
	if errors.Is(err, printify.ErrNotFound) {
		r.logger.Info("Product %s not found", productID)
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("Error retrieving product %s: %v", productID, err)
		return nil, ErrRetrieval
	}
	if len(product.Variants) == 0 {
		r.logger.Error("Product %s has no variants", productID)
		return nil, ErrRetrieval
	}
	return product, nil
}
