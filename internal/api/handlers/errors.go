package handlers

import (
	"errors"
	"net/http"

	"storefront/internal/storefront"
)

// statusFor maps a storefront error to the status and message shown to callers.
// Upstream detail never leaves the process.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, storefront.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, storefront.ErrNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, storefront.ErrGeneration):
		return http.StatusInternalServerError, "Failed to generate image"
	case errors.Is(err, storefront.ErrUpload), errors.Is(err, storefront.ErrPublish):
		return http.StatusInternalServerError, "Failed to create product"
	case errors.Is(err, storefront.ErrRetrieval):
		return http.StatusInternalServerError, "Failed to fetch product"
	case errors.Is(err, storefront.ErrCheckout):
		return http.StatusInternalServerError, "Failed to start checkout"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
