package handlers

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/logger"
	"storefront/internal/models"

	"github.com/gin-gonic/gin"
)

// SessionStarter opens a hosted checkout. *storefront.Checkout satisfies it.
type SessionStarter interface {
	CreateSession(ctx context.Context, req models.CheckoutRequest, origin, referer string) (string, error)
}

type CheckoutHandler struct {
	checkout SessionStarter
	baseURL  string
	logger   *logger.Logger
}

// NewCheckoutHandler builds the handler. baseURL is the public origin used when a
// request carries no Origin header.
func NewCheckoutHandler(checkout SessionStarter, baseURL string, logger *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}
}

// Create handles POST /checkout
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	url, err := h.checkout.CreateSession(c.Request.Context(), req, h.origin(c), c.Request.Referer())
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, models.CheckoutResponse{URL: url})
}

// Success handles GET /payment/success
func (h *CheckoutHandler) Success(c *gin.Context) {
	c.HTML(http.StatusOK, "success.tmpl", nil)
}

func (h *CheckoutHandler) origin(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" && origin != "null" {
		return origin
	}
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
