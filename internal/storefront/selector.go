package storefront

import (
	"strings"

	"storefront/internal/logger"
	"storefront/internal/models"
)

// OptionAxes names the positions of the colour and size options inside
// Product.Options, and so inside every variant's Options.
type OptionAxes struct {
	Colour int
	Size   int
}

// ResolveAxes finds the colour and size options by type or name. Options it cannot
// classify fall back to the provider's usual order: colour first, size second.
func ResolveAxes(options []models.ProductOption) OptionAxes {
	axes := OptionAxes{Colour: -1, Size: -1}
	for i, opt := range options {
		switch classifyOption(opt) {
		case "colour":
			if axes.Colour < 0 {
				axes.Colour = i
			}
		case "size":
			if axes.Size < 0 {
				axes.Size = i
			}
		}
	}
	if axes.Colour < 0 {
		axes.Colour = otherThan(0, axes.Size)
	}
	if axes.Size < 0 {
		axes.Size = otherThan(1, axes.Colour)
	}
	return axes
}

func classifyOption(opt models.ProductOption) string {
	for _, label := range []string{opt.Type, opt.Name} {
		switch strings.ToLower(strings.TrimSpace(label)) {
		case "color", "colour", "colors", "colours":
			return "colour"
		case "size", "sizes":
			return "size"
		}
	}
	return ""
}

func otherThan(preferred, taken int) int {
	if preferred != taken {
		return preferred
	}
	return 1 - preferred
}

// FindVariant returns the first variant whose colour and size option ids equal sel.
// Option dimensions other than colour and size are ignored.
func FindVariant(product *models.Product, axes OptionAxes, sel models.Selection) (*models.ProductVariant, bool) {
	for i := range product.Variants {
		v := &product.Variants[i]
		if axes.Colour >= len(v.Options) || axes.Size >= len(v.Options) {
			continue
		}
		if v.Options[axes.Colour] == sel.ColourID && v.Options[axes.Size] == sel.SizeID {
			return v, true
		}
	}
	return nil, false
}

// FilterImages keeps the images tagged with variantID, in source order. The result is
// empty, not nil, when nothing matches.
func FilterImages(images []models.ProductImage, variantID int) []models.ProductImage {
	out := make([]models.ProductImage, 0, len(images))
	for _, img := range images {
		for _, id := range img.VariantIDs {
			if id == variantID {
				out = append(out, img)
				break
			}
		}
	}
	return out
}

// DefaultVariant picks the provider's default variant, else the first enabled one,
// else the first variant. It returns nil only for a product without variants.
func DefaultVariant(product *models.Product) *models.ProductVariant {
	for i := range product.Variants {
		if product.Variants[i].IsDefault {
			return &product.Variants[i]
		}
	}
	for i := range product.Variants {
		if product.Variants[i].IsEnabled {
			return &product.Variants[i]
		}
	}
	if len(product.Variants) > 0 {
		return &product.Variants[0]
	}
	return nil
}

// VariantSelector tracks the shopper's current variant on one product
type VariantSelector struct {
	product  *models.Product
	axes     OptionAxes
	selected *models.ProductVariant
	logger   *logger.Logger
}

// NewVariantSelector starts on DefaultVariant
func NewVariantSelector(product *models.Product, logger *logger.Logger) (*VariantSelector, error) {
	s := &VariantSelector{
		product:  product,
		axes:     ResolveAxes(product.Options),
		selected: DefaultVariant(product),
		logger:   logger,
	}
	if s.selected == nil {
		return nil, ErrValidation
	}
	return s, nil
}

// SelectVariant restores a previously selected variant by id. It reports false and
// changes nothing when the product has no such variant.
func (s *VariantSelector) SelectVariant(id int) bool {
	for i := range s.product.Variants {
		if s.product.Variants[i].ID == id {
			s.selected = &s.product.Variants[i]
			return true
		}
	}
	return false
}

// Select switches to the variant matching sel. When no variant matches, the previous
// variant stays selected.
func (s *VariantSelector) Select(sel models.Selection) *models.ProductVariant {
	if v, ok := FindVariant(s.product, s.axes, sel); ok {
		s.selected = v
		return v
	}
	s.logger.Warn("No variant for colour=%d size=%d on product %s, keeping variant %d",
		sel.ColourID, sel.SizeID, s.product.ID, s.selected.ID)
	return s.selected
}

func (s *VariantSelector) Selected() *models.ProductVariant {
	return s.selected
}

// Selection reports the colour and size ids of the selected variant
func (s *VariantSelector) Selection() models.Selection {
	var sel models.Selection
	if s.axes.Colour < len(s.selected.Options) {
		sel.ColourID = s.selected.Options[s.axes.Colour]
	}
	if s.axes.Size < len(s.selected.Options) {
		sel.SizeID = s.selected.Options[s.axes.Size]
	}
	return sel
}

func (s *VariantSelector) Images() []models.ProductImage {
	return FilterImages(s.product.Images, s.selected.ID)
}

func (s *VariantSelector) ColourOptions() []models.OptionValue {
	return s.optionValues(s.axes.Colour)
}

func (s *VariantSelector) SizeOptions() []models.OptionValue {
	return s.optionValues(s.axes.Size)
}

func (s *VariantSelector) optionValues(idx int) []models.OptionValue {
	if idx < 0 || idx >= len(s.product.Options) {
		return []models.OptionValue{}
	}
	return s.product.Options[idx].Values
}
