package handlers

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/storefront"

	"github.com/gin-gonic/gin"
)

// Generator runs the prompt-to-product pipeline. *storefront.Pipeline satisfies it.
type Generator interface {
	Run(ctx context.Context, req models.GenerateRequest) (*storefront.Result, error)
}

type GenerateHandler struct {
	pipeline Generator
	logger   *logger.Logger
}

func NewGenerateHandler(pipeline Generator, logger *logger.Logger) *GenerateHandler {
	return &GenerateHandler{
		pipeline: pipeline,
		logger:   logger,
	}
}

// Generate handles POST /api/generateImage
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// the pipeline finishes even if the caller hangs up
	result, err := h.pipeline.Run(context.WithoutCancel(c.Request.Context()), req)
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, models.GenerateResponse{
		URL:       result.ImageURL,
		ProductID: result.Product.ID,
	})
}

// Page handles GET /image/:prompt, running the pipeline on the decoded path segment
func (h *GenerateHandler) Page(c *gin.Context) {
	prompt := c.Param("prompt")

	result, err := h.pipeline.Run(context.WithoutCancel(c.Request.Context()), models.GenerateRequest{Text: prompt})
	if err != nil {
		status, msg := statusFor(err)
		c.HTML(status, "error.tmpl", gin.H{"Message": msg})
		return
	}

	c.HTML(http.StatusOK, "image.tmpl", gin.H{
		"Prompt":     prompt,
		"ImageURL":   result.ImageURL,
		"ProductID":  result.Product.ID,
		"ProductURL": "/product/" + url.PathEscape(result.Product.ID),
	})
}
