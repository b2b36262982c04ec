package storefront

import (
	"fmt"
	"strings"

	"storefront/internal/config"
	"storefront/internal/models"
)

// BuildProductSpec places the uploaded asset on the template's print area and titles the
// product after the prompt. It performs no I/O.
func BuildProductSpec(assetID, prompt string, tmpl config.ProductTemplate) (*models.ProductSpec, error) {
	if strings.TrimSpace(assetID) == "" {
		return nil, fmt.Errorf("%w: empty asset id", ErrValidation)
	}

	return &models.ProductSpec{
		Title:           fmt.Sprintf(tmpl.TitleFormat, prompt),
		Description:     tmpl.Description,
		BlueprintID:     tmpl.BlueprintID,
		PrintProviderID: tmpl.PrintProviderID,
		Variants: []models.VariantSpec{{
			ID:    tmpl.VariantID,
			Price: tmpl.Price,
		}},
		PrintAreas: []models.PrintAreaSpec{{
			VariantIDs: []int{tmpl.VariantID},
			Placeholders: []models.PlaceholderSpec{{
				Position: tmpl.Position,
				Images: []models.ImagePlacement{{
					ID:    assetID,
					X:     tmpl.X,
					Y:     tmpl.Y,
					Scale: tmpl.Scale,
					Angle: tmpl.Angle,
				}},
			}},
		}},
	}, nil
}
