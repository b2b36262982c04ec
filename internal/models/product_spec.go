package models

// ProductSpec is the create-product request body. It is built once per pipeline run
// and sent exactly once.
type ProductSpec struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	BlueprintID     int             `json:"blueprint_id"`
	PrintProviderID int             `json:"print_provider_id"`
	Variants        []VariantSpec   `json:"variants"`
	PrintAreas      []PrintAreaSpec `json:"print_areas"`
}

type VariantSpec struct {
	ID        int   `json:"id"`
	Price     int   `json:"price"`
	IsEnabled *bool `json:"is_enabled,omitempty"`
}

type PrintAreaSpec struct {
	VariantIDs   []int             `json:"variant_ids"`
	Placeholders []PlaceholderSpec `json:"placeholders"`
}

type PlaceholderSpec struct {
	Position string           `json:"position"`
	Images   []ImagePlacement `json:"images"`
}

// ImagePlacement places an uploaded asset inside a placeholder
type ImagePlacement struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
	Angle float64 `json:"angle"`
}

// PublishRequest marks which product fields are ready to publish. The storefront
// always publishes every field.
type PublishRequest struct {
	Title            bool `json:"title"`
	Description      bool `json:"description"`
	Images           bool `json:"images"`
	Variants         bool `json:"variants"`
	Tags             bool `json:"tags"`
	KeyFeatures      bool `json:"keyFeatures"`
	ShippingTemplate bool `json:"shipping_template"`
}

func PublishAll() PublishRequest {
	return PublishRequest{
		Title:            true,
		Description:      true,
		Images:           true,
		Variants:         true,
		Tags:             true,
		KeyFeatures:      true,
		ShippingTemplate: true,
	}
}

// UploadedAsset is an image held in the print provider's media library
type UploadedAsset struct {
	ID         string `json:"id"`
	FileName   string `json:"file_name"`
	Height     int    `json:"height"`
	Width      int    `json:"width"`
	Size       int    `json:"size"`
	MimeType   string `json:"mime_type"`
	PreviewURL string `json:"preview_url"`
	UploadTime string `json:"upload_time"`
}

// UploadRequest asks the provider to fetch an image from URL
type UploadRequest struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}
