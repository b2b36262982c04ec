package storefront

import (
	"context"
	"strings"
	"time"

	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/models"

	"github.com/google/uuid"
)

// ImageGenerator turns a prompt into a short-lived image URL
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// PrintProvider is the print-on-demand API the storefront sells through
type PrintProvider interface {
	UploadImage(ctx context.Context, fileName, imageURL string) (*models.UploadedAsset, error)
	CreateProduct(ctx context.Context, spec *models.ProductSpec) (*models.Product, error)
	PublishProduct(ctx context.Context, productID string) error
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
}

type PipelineOptions struct {
	Catalog         config.Catalog
	DefaultTemplate string
	UploadFileName  string
	Events          events.Publisher
}

// Pipeline runs generate → upload → build → create → publish for one prompt.
// Steps run strictly in order and nothing is retried or rolled back.
type Pipeline struct {
	images   ImageGenerator
	provider PrintProvider
	opts     PipelineOptions
	logger   *logger.Logger
	newRunID func() string
}

type Result struct {
	RunID    string
	ImageURL string
	Asset    *models.UploadedAsset
	Product  *models.Product
}

func NewPipeline(images ImageGenerator, provider PrintProvider, opts PipelineOptions, logger *logger.Logger) *Pipeline {
	if opts.Catalog == nil {
		opts.Catalog = config.Catalog{config.DefaultTemplateName: config.DefaultTemplate()}
	}
	if opts.DefaultTemplate == "" {
		opts.DefaultTemplate = config.DefaultTemplateName
	}
	if opts.UploadFileName == "" {
		opts.UploadFileName = "generatedImage.png"
	}
	if opts.Events == nil {
		opts.Events = events.NopPublisher{}
	}
	return &Pipeline{
		images:   images,
		provider: provider,
		opts:     opts,
		logger:   logger,
		newRunID: uuid.NewString,
	}
}

func (p *Pipeline) Run(ctx context.Context, req models.GenerateRequest) (*Result, error) {
	prompt := strings.TrimSpace(req.Text)
	if prompt == "" {
		p.logger.Error("Text is required")
		return nil, ErrValidation
	}
	tmpl, err := p.opts.Catalog.Template(req.Template, p.opts.DefaultTemplate)
	if err != nil {
		p.logger.Error("Rejecting generation request: %v", err)
		return nil, ErrValidation
	}

	runID := p.newRunID()
	log := p.logger.With("run_id", runID)
	log.Info("Starting pipeline for prompt %q", prompt)

	imageURL, err := p.images.GenerateImage(ctx, prompt)
	if err != nil {
		log.Error("Error generating image: %v", err)
		p.emit(ctx, log, events.Event{Type: events.TypePipelineFailed, RunID: runID, Data: map[string]interface{}{"stage": "generate"}})
		return nil, ErrGeneration
	}
	log.Info("Generated image %s", imageURL)

	asset, err := p.provider.UploadImage(ctx, p.opts.UploadFileName, imageURL)
	if err != nil {
		log.Error("Error posting image to print provider (url=%s file=%s): %v", imageURL, p.opts.UploadFileName, err)
		p.emit(ctx, log, events.Event{Type: events.TypePipelineFailed, RunID: runID, Data: map[string]interface{}{"stage": "upload"}})
		return nil, ErrUpload
	}
	p.emit(ctx, log, events.Event{Type: events.TypeAssetUploaded, RunID: runID, Data: map[string]interface{}{"asset_id": asset.ID}})

	spec, err := BuildProductSpec(asset.ID, prompt, tmpl)
	if err != nil {
		log.Error("Error building product for asset %q: %v", asset.ID, err)
		p.emit(ctx, log, events.Event{Type: events.TypePipelineFailed, RunID: runID, Data: map[string]interface{}{"stage": "build", "asset_id": asset.ID}})
		return nil, err
	}

	product, err := p.provider.CreateProduct(ctx, spec)
	if err != nil {
		log.Error("Error creating product %q from asset %s: %v", spec.Title, asset.ID, err)
		p.emit(ctx, log, events.Event{Type: events.TypePipelineFailed, RunID: runID, Data: map[string]interface{}{"stage": "create", "asset_id": asset.ID}})
		return nil, ErrPublish
	}
	p.emit(ctx, log, events.Event{Type: events.TypeProductCreated, RunID: runID, ProductID: product.ID, Data: map[string]interface{}{"asset_id": asset.ID}})

	if err := p.provider.PublishProduct(ctx, product.ID); err != nil {
		log.Error("Product %s created but not published: %v", product.ID, err)
		p.emit(ctx, log, events.Event{Type: events.TypeProductPublishFailed, RunID: runID, ProductID: product.ID})
		return nil, ErrPublish
	}
	p.emit(ctx, log, events.Event{Type: events.TypeProductPublished, RunID: runID, ProductID: product.ID})

	log.Info("Published product %s (asset %s)", product.ID, asset.ID)
	return &Result{
		RunID:    runID,
		ImageURL: imageURL,
		Asset:    asset,
		Product:  product,
	}, nil
}

func (p *Pipeline) emit(ctx context.Context, log *logger.Logger, event events.Event) {
	event.Timestamp = time.Now().UTC()
	if err := p.opts.Events.Publish(ctx, event); err != nil {
		log.Warn("Failed to publish %s event: %v", event.Type, err)
	}
}
