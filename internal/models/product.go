package models

// Product represents a Printify product as returned by create and retrieve calls
type Product struct {
	ID                        string           `json:"id"`
	Title                     string           `json:"title"`
	Description               string           `json:"description"`
	Tags                      []string         `json:"tags"`
	Options                   []ProductOption  `json:"options"`
	Variants                  []ProductVariant `json:"variants"`
	Images                    []ProductImage   `json:"images"`
	CreatedAt                 string           `json:"created_at"`
	UpdatedAt                 string           `json:"updated_at"`
	Visible                   bool             `json:"visible"`
	IsLocked                  bool             `json:"is_locked"`
	IsPrintifyExpressEligible bool             `json:"is_printify_express_eligible"`
	IsPrintifyExpressEnabled  bool             `json:"is_printify_express_enabled"`
	BlueprintID               int              `json:"blueprint_id"`
	UserID                    int              `json:"user_id"`
	ShopID                    int              `json:"shop_id"`
	PrintProviderID           int              `json:"print_provider_id"`
	PrintAreas                []PrintArea      `json:"print_areas"`
}

// ProductOption is a selectable attribute such as colour or size. Values keep the
// provider's ordering.
type ProductOption struct {
	Name   string        `json:"name"`
	Type   string        `json:"type"`
	Values []OptionValue `json:"values"`
}

type OptionValue struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// ProductVariant is one purchasable combination of option values. Options holds one
// value id per entry of Product.Options, in the same order. Price is in minor units.
type ProductVariant struct {
	ID                        int    `json:"id"`
	SKU                       string `json:"sku"`
	Cost                      int    `json:"cost"`
	Price                     int    `json:"price"`
	Title                     string `json:"title"`
	Grams                     int    `json:"grams"`
	IsEnabled                 bool   `json:"is_enabled"`
	IsDefault                 bool   `json:"is_default"`
	IsAvailable               bool   `json:"is_available"`
	IsPrintifyExpressEligible bool   `json:"is_printify_express_eligible"`
	Options                   []int  `json:"options"`
}

// ProductImage is a mockup image tagged with the variants it depicts
type ProductImage struct {
	Src        string `json:"src"`
	VariantIDs []int  `json:"variant_ids"`
	Position   string `json:"position"`
	IsDefault  bool   `json:"is_default"`
}

type PrintArea struct {
	VariantIDs   []int         `json:"variant_ids"`
	Placeholders []Placeholder `json:"placeholders"`
	Background   string        `json:"background,omitempty"`
}

type Placeholder struct {
	Position string             `json:"position"`
	Images   []PlaceholderImage `json:"images"`
}

type PlaceholderImage struct {
	ID     string  `json:"id"`
	Name   string  `json:"name,omitempty"`
	Type   string  `json:"type,omitempty"`
	Height int     `json:"height,omitempty"`
	Width  int     `json:"width,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Scale  float64 `json:"scale"`
	Angle  float64 `json:"angle"`
}

// Availability reports whether a variant can be bought
func (v ProductVariant) Availability() ProductAvailability {
	if v.IsEnabled && v.IsAvailable {
		return AvailabilityInStock
	}
	return AvailabilityOutOfStock
}

type ProductAvailability string

const (
	AvailabilityInStock    ProductAvailability = "IN_STOCK"
	AvailabilityOutOfStock ProductAvailability = "OUT_OF_STOCK"
)
