package validation

import (
	"fmt"
	"strings"

	"storefront/internal/events"
	"storefront/internal/logger"
)

type Validator struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *Validator {
	return &Validator{
		logger: logger,
	}
}

// ValidateEvent checks that event carries the fields its type promises
func (v *Validator) ValidateEvent(event events.Event) error {
	if strings.TrimSpace(event.RunID) == "" {
		return fmt.Errorf("%s event without run_id", event.Type)
	}
	if event.Timestamp.IsZero() {
		return fmt.Errorf("%s event for run %s without timestamp", event.Type, event.RunID)
	}

	switch event.Type {
	case events.TypeAssetUploaded:
		if AssetID(event) == "" {
			return fmt.Errorf("asset.uploaded event for run %s without asset_id", event.RunID)
		}
	case events.TypeProductCreated, events.TypeProductPublished, events.TypeProductPublishFailed:
		if event.ProductID == "" {
			return fmt.Errorf("%s event for run %s without product_id", event.Type, event.RunID)
		}
	case events.TypePipelineFailed:
		if Stage(event) == "" {
			return fmt.Errorf("pipeline.failed event for run %s without stage", event.RunID)
		}
	default:
		return fmt.Errorf("unknown event type %q", event.Type)
	}

	v.logger.Debug("Validated %s event for run %s", event.Type, event.RunID)
	return nil
}

// AssetID returns the uploaded asset named by the event, if any
func AssetID(event events.Event) string {
	return dataString(event, "asset_id")
}

// Stage returns the pipeline stage a pipeline.failed event stopped at
func Stage(event events.Event) string {
	return dataString(event, "stage")
}

func dataString(event events.Event, key string) string {
	s, _ := event.Data[key].(string)
	return s
}
