package storefront

import (
	"math"
	"strings"

	"storefront/internal/models"
)

const defaultProductType = "T-shirt"

// ToMinorUnits converts a major-unit amount (pounds) to the integer minor unit (pence)
// the payment provider charges in.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromMinorUnits converts a provider price in minor units to pounds
func FromMinorUnits(amount int) float64 {
	return float64(amount) / 100
}

// ProductType is the product's second tag, which Printify fills with the garment
// type for apparel blueprints.
func ProductType(product *models.Product) string {
	if len(product.Tags) > 1 && strings.TrimSpace(product.Tags[1]) != "" {
		return strings.TrimSpace(product.Tags[1])
	}
	return defaultProductType
}

// View gathers what a product page needs for the selected variant
func (s *VariantSelector) View() models.ProductView {
	variant := s.Selected()
	pounds := FromMinorUnits(variant.Price)
	return models.ProductView{
		Product:       s.product,
		ColourOptions: s.ColourOptions(),
		SizeOptions:   s.SizeOptions(),
		Selection:     s.Selection(),
		Variant:       variant,
		Images:        s.Images(),
		ProductType:   ProductType(s.product),
		PriceInPounds: pounds,
		PriceMinor:    ToMinorUnits(pounds),
		Availability:  variant.Availability(),
	}
}
