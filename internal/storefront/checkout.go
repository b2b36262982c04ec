package storefront

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"storefront/internal/logger"
	"storefront/internal/models"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

// SessionCreator creates hosted checkout sessions. *session.Client satisfies it.
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// NewStripeSessions returns a checkout session client bound to secretKey
func NewStripeSessions(secretKey string) SessionCreator {
	return &session.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey}
}

type CheckoutOptions struct {
	Currency string
	// ShippingAmount is the flat shipping rate in minor units
	ShippingAmount int64
}

type Checkout struct {
	sessions SessionCreator
	opts     CheckoutOptions
	logger   *logger.Logger
}

func NewCheckout(sessions SessionCreator, opts CheckoutOptions, logger *logger.Logger) *Checkout {
	if opts.Currency == "" {
		opts.Currency = "gbp"
	}
	return &Checkout{sessions: sessions, opts: opts, logger: logger}
}

// CreateSession provisions a payment-mode session for one unit of the requested variant
// and returns the hosted page URL. origin is the storefront base URL used for the success
// redirect; referer is where a cancelled payment returns to.
func (c *Checkout) CreateSession(ctx context.Context, req models.CheckoutRequest, origin, referer string) (string, error) {
	if err := validateCheckout(req); err != nil {
		c.logger.Error("Rejecting checkout for product %q: %v", req.ProductID, err)
		return "", ErrValidation
	}
	origin = strings.TrimRight(origin, "/")
	if referer == "" {
		referer = fmt.Sprintf("%s/product/%s", origin, req.ProductID)
	}

	params := c.sessionParams(req, origin, referer)
	params.Context = ctx

	sess, err := c.sessions.New(params)
	if err != nil {
		c.logger.Error("Error creating checkout session for product %s variant %d (price=%d): %v",
			req.ProductID, req.OrderVariantID, req.Price, err)
		return "", ErrCheckout
	}
	if sess == nil || sess.URL == "" {
		c.logger.Error("Checkout session for product %s returned no redirect url", req.ProductID)
		return "", ErrCheckout
	}

	c.logger.Info("Created checkout session %s for product %s variant %d", sess.ID, req.ProductID, req.OrderVariantID)
	return sess.URL, nil
}

func (c *Checkout) sessionParams(req models.CheckoutRequest, origin, referer string) *stripe.CheckoutSessionParams {
	productType := strings.TrimSpace(req.ProductType)
	if productType == "" {
		productType = defaultProductType
	}

	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(fmt.Sprintf("%s - %s", productType, req.OrderVariantLabel)),
	}
	if req.OrderTitle != "" {
		productData.Description = stripe.String(req.OrderTitle)
	}
	if req.OrderPreview != "" {
		productData.Images = []*string{stripe.String(req.OrderPreview)}
	}

	return &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		ShippingOptions: []*stripe.CheckoutSessionShippingOptionParams{
			{
				ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
					Type: stripe.String("fixed_amount"),
					FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
						Amount:   stripe.Int64(c.opts.ShippingAmount),
						Currency: stripe.String(c.opts.Currency),
					},
					DisplayName: stripe.String("Standard"),
					DeliveryEstimate: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateParams{
						Minimum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMinimumParams{
							Unit:  stripe.String("business_day"),
							Value: stripe.Int64(3),
						},
						Maximum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMaximumParams{
							Unit:  stripe.String("business_day"),
							Value: stripe.Int64(5),
						},
					},
				},
			},
		},
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String(c.opts.Currency),
					UnitAmount:  stripe.Int64(req.Price),
					ProductData: productData,
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"product_id":   req.ProductID,
				"variant_id":   strconv.Itoa(req.OrderVariantID),
				"product_type": productType,
			},
		},
		SuccessURL: stripe.String(origin + "/payment/success"),
		CancelURL:  stripe.String(referer),
		AutomaticTax: &stripe.CheckoutSessionAutomaticTaxParams{
			Enabled: stripe.Bool(true),
		},
	}
}

func validateCheckout(req models.CheckoutRequest) error {
	switch {
	case strings.TrimSpace(req.ProductID) == "":
		return fmt.Errorf("missing productId")
	case req.OrderVariantID == 0:
		return fmt.Errorf("missing orderVariantId")
	case req.Price <= 0:
		return fmt.Errorf("price must be positive, got %d", req.Price)
	}
	return nil
}
