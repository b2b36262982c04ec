package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultTemplateName = "unisex-softstyle-tee"

// ProductTemplate holds the fixed catalog values a generated product is built from.
// A template describes exactly one blueprint, one print provider and one variant.
type ProductTemplate struct {
	BlueprintID     int     `yaml:"blueprint_id"`
	PrintProviderID int     `yaml:"print_provider_id"`
	VariantID       int     `yaml:"variant_id"`
	Position        string  `yaml:"position"`
	Price           int     `yaml:"price"`
	Description     string  `yaml:"description"`
	TitleFormat     string  `yaml:"title_format"`
	X               float64 `yaml:"x"`
	Y               float64 `yaml:"y"`
	Scale           float64 `yaml:"scale"`
	Angle           float64 `yaml:"angle"`
}

// Catalog maps template names to templates.
type Catalog map[string]ProductTemplate

// DefaultTemplate is the Unisex Softstyle T-Shirt (blueprint 145) printed by Dimona Tee
// (provider 270) in Black / L (variant 38192).
func DefaultTemplate() ProductTemplate {
	return ProductTemplate{
		BlueprintID:     145,
		PrintProviderID: 270,
		VariantID:       38192,
		Position:        "front",
		Price:           2000,
		Description:     "Your new favorite t-shirt. Soft, comfortable, and high-quality.",
		TitleFormat:     `Your prompt: "%s"`,
		X:               0.5,
		Y:               0.5,
		Scale:           1,
		Angle:           0,
	}
}

// LoadCatalog reads product templates from a YAML file. An empty path yields the
// built-in catalog holding only DefaultTemplate. Missing fields in a file entry take
// the DefaultTemplate values.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return Catalog{DefaultTemplateName: DefaultTemplate()}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (Catalog, error) {
	var raw struct {
		Templates map[string]ProductTemplate `yaml:"templates"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(raw.Templates) == 0 {
		return nil, fmt.Errorf("catalog defines no templates")
	}

	catalog := make(Catalog, len(raw.Templates))
	for name, tmpl := range raw.Templates {
		tmpl = withDefaults(tmpl)
		if tmpl.BlueprintID == 0 || tmpl.PrintProviderID == 0 || tmpl.VariantID == 0 {
			return nil, fmt.Errorf("template %q: blueprint_id, print_provider_id and variant_id are required", name)
		}
		catalog[name] = tmpl
	}
	return catalog, nil
}

// Template returns the named template, falling back to fallback when name is empty.
func (c Catalog) Template(name, fallback string) (ProductTemplate, error) {
	if name == "" {
		name = fallback
	}
	tmpl, ok := c[name]
	if !ok {
		return ProductTemplate{}, fmt.Errorf("unknown product template %q", name)
	}
	return tmpl, nil
}

func withDefaults(t ProductTemplate) ProductTemplate {
	d := DefaultTemplate()
	if t.Position == "" {
		t.Position = d.Position
	}
	if t.Price == 0 {
		t.Price = d.Price
	}
	if t.Description == "" {
		t.Description = d.Description
	}
	if t.TitleFormat == "" {
		t.TitleFormat = d.TitleFormat
	}
	if t.X == 0 && t.Y == 0 {
		t.X, t.Y = d.X, d.Y
	}
	if t.Scale == 0 {
		t.Scale = d.Scale
	}
	return t
}
