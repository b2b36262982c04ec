package storefront

import "errors"

// Component errors. Upstream detail is logged where it happens and not carried in
// these values.
var (
	ErrValidation = errors.New("invalid request")
	ErrGeneration = errors.New("error generating image")
	ErrUpload     = errors.New("error uploading image to print provider")
	ErrPublish    = errors.New("error publishing product")
	ErrRetrieval  = errors.New("error retrieving product")
	ErrNotFound   = errors.New("product not found")
	ErrCheckout   = errors.New("error creating checkout session")
)
