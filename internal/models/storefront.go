package models

// GenerateRequest is the body accepted by the generation endpoint
type GenerateRequest struct {
	Text     string `json:"text"`
	Template string `json:"template,omitempty"`
}

type GenerateResponse struct {
	URL       string `json:"url"`
	ProductID string `json:"productId"`
}

// Selection is a shopper's colour and size choice, by option value id
type Selection struct {
	ColourID int `json:"colourId"`
	SizeID   int `json:"sizeId"`
}

// CheckoutRequest is posted by the product page's buy button. Price is already in the
// payment provider's minor unit (pence).
type CheckoutRequest struct {
	ProductID         string `json:"productId"`
	ProductType       string `json:"productType"`
	OrderTitle        string `json:"order_title"`
	OrderVariantLabel string `json:"order_variant_label"`
	OrderVariantID    int    `json:"orderVariantId"`
	OrderPreview      string `json:"order_preview"`
	Price             int64  `json:"price"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

// ProductView is what the product endpoints render
type ProductView struct {
	Product       *Product            `json:"product"`
	ColourOptions []OptionValue       `json:"colourOptions"`
	SizeOptions   []OptionValue       `json:"sizeOptions"`
	Selection     Selection           `json:"selection"`
	Variant       *ProductVariant     `json:"variant"`
	Images        []ProductImage      `json:"images"`
	ProductType   string              `json:"productType"`
	PriceInPounds float64             `json:"priceInPounds"`
	PriceMinor    int64               `json:"priceMinor"`
	Availability  ProductAvailability `json:"availability"`
}
