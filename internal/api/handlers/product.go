package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/storefront"

	"github.com/gin-gonic/gin"
)

// ProductSource fetches live products. *storefront.Retriever satisfies it.
type ProductSource interface {
	Retrieve(ctx context.Context, productID string) (*models.Product, error)
}

type ProductHandler struct {
	products ProductSource
	logger   *logger.Logger
}

func NewProductHandler(products ProductSource, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

// Get handles GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	view, err := h.view(c)
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     view,
		"checkout": checkoutOrder(view),
	})
}

// Page handles GET /product/:id
func (h *ProductHandler) Page(c *gin.Context) {
	view, err := h.view(c)
	if err != nil {
		status, msg := statusFor(err)
		c.HTML(status, "error.tmpl", gin.H{"Message": msg})
		return
	}

	c.HTML(http.StatusOK, "product.tmpl", gin.H{
		"View":  view,
		"Order": checkoutOrder(view),
	})
}

// view loads the product and applies the shopper's selection. The optional variant
// query parameter is the previously selected variant; colour and size override its
// axes, and a pair with no variant keeps it.
func (h *ProductHandler) view(c *gin.Context) (models.ProductView, error) {
	previous, hasPrevious, err := intQuery(c, "variant")
	if err != nil {
		return models.ProductView{}, err
	}
	colour, hasColour, err := intQuery(c, "colour")
	if err != nil {
		return models.ProductView{}, err
	}
	size, hasSize, err := intQuery(c, "size")
	if err != nil {
		return models.ProductView{}, err
	}

	product, err := h.products.Retrieve(c.Request.Context(), c.Param("id"))
	if err != nil {
		return models.ProductView{}, err
	}

	selector, err := storefront.NewVariantSelector(product, h.logger)
	if err != nil {
		return models.ProductView{}, storefront.ErrRetrieval
	}
	if hasPrevious && !selector.SelectVariant(previous) {
		h.logger.Warn("Unknown variant %d on product %s, using default", previous, product.ID)
	}
	if hasColour || hasSize {
		sel := selector.Selection()
		if hasColour {
			sel.ColourID = colour
		}
		if hasSize {
			sel.SizeID = size
		}
		selector.Select(sel)
	}

	return selector.View(), nil
}

// checkoutOrder is the payload the product page posts to /checkout for the selected
// variant.
func checkoutOrder(view models.ProductView) models.CheckoutRequest {
	order := models.CheckoutRequest{
		ProductID:         view.Product.ID,
		ProductType:       view.ProductType,
		OrderTitle:        view.Product.Title,
		OrderVariantLabel: view.Variant.Title,
		OrderVariantID:    view.Variant.ID,
		Price:             view.PriceMinor,
	}
	if len(view.Images) > 0 {
		order.OrderPreview = view.Images[0].Src
	}
	return order
}

func intQuery(c *gin.Context, key string) (int, bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s must be an integer", storefront.ErrValidation, key)
	}
	return v, true, nil
}
