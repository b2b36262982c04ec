package processors

import (
	"fmt"

	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/worker/processors/validation"
)

// Summary counts what the processor has seen since it started
type Summary struct {
	Published      int
	PublishFailed  int
	Failed         int
	OrphanedAssets int
}

// EventProcessor surfaces pipeline partial states from the event stream: products
// created but never published, and uploaded assets a later failure left unused.
type EventProcessor struct {
	logger    *logger.Logger
	validator *validation.Validator
	summary   Summary
}

func NewEventProcessor(logger *logger.Logger) *EventProcessor {
	return &EventProcessor{
		logger:    logger,
		validator: validation.New(logger),
	}
}

func (ep *EventProcessor) Process(event events.Event) error {
	if err := ep.validator.ValidateEvent(event); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}

	log := ep.logger.With("run_id", event.RunID)
	switch event.Type {
	case events.TypeAssetUploaded:
		log.Debug("Asset %s uploaded", validation.AssetID(event))
	case events.TypeProductCreated:
		log.Info("Product %s created from asset %s", event.ProductID, validation.AssetID(event))
	case events.TypeProductPublished:
		ep.summary.Published++
		log.Info("Product %s published", event.ProductID)
	case events.TypeProductPublishFailed:
		ep.summary.PublishFailed++
		log.Warn("Product %s was created but never published and needs manual publishing", event.ProductID)
	case events.TypePipelineFailed:
		ep.summary.Failed++
		stage := validation.Stage(event)
		if asset := validation.AssetID(event); asset != "" {
			ep.summary.OrphanedAssets++
			log.Warn("Pipeline failed at %s, asset %s is orphaned in the media library", stage, asset)
		} else {
			log.Info("Pipeline failed at %s before anything was uploaded", stage)
		}
	}
	return nil
}

func (ep *EventProcessor) Summary() Summary {
	return ep.summary
}
