package storefront

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pipelineFixture struct {
	log       *callLog
	generator *stubGenerator
	provider  *stubProvider
	events    *recordingPublisher
	pipeline  *Pipeline
}

func newPipelineFixture(opts PipelineOptions) *pipelineFixture {
	log := &callLog{}
	f := &pipelineFixture{
		log:       log,
		generator: &stubGenerator{log: log, url: "https://images.example.com/u.png"},
		provider: &stubProvider{
			log:     log,
			asset:   &models.UploadedAsset{ID: "a1", FileName: "generatedImage.png"},
			created: &models.Product{ID: "p-created"},
		},
		events: &recordingPublisher{},
	}
	opts.Events = f.events
	f.pipeline = NewPipeline(f.generator, f.provider, opts, logger.Nop())
	f.pipeline.newRunID = func() string { return "run-1" }
	return f
}

func TestPipelineRunsStepsInOrder(t *testing.T) {
	f := newPipelineFixture(PipelineOptions{})

	result, err := f.pipeline.Run(context.Background(), models.GenerateRequest{Text: "a red fox"})
	require.NoError(t, err)

	assert.Equal(t, []string{"generate", "upload", "create", "publish"}, f.log.calls)
	assert.Equal(t, []string{"a red fox"}, f.generator.prompts)
	require.Len(t, f.provider.uploads, 1)
	assert.Equal(t, "https://images.example.com/u.png", f.provider.uploads[0].url)
	assert.Equal(t, "generatedImage.png", f.provider.uploads[0].fileName)

	require.Len(t, f.provider.specs, 1)
	spec := f.provider.specs[0]
	assert.Equal(t, "a1", spec.PrintAreas[0].Placeholders[0].Images[0].ID)
	assert.Equal(t, `Your prompt: "a red fox"`, spec.Title)
	assert.Equal(t, []string{"p-created"}, f.provider.published)

	assert.Equal(t, "https://images.example.com/u.png", result.ImageURL)
	assert.Equal(t, "p-created", result.Product.ID)
	assert.Equal(t, "a1", result.Asset.ID)
	assert.Equal(t, "run-1", result.RunID)

	assert.Equal(t, []string{events.TypeAssetUploaded, events.TypeProductCreated, events.TypeProductPublished}, f.events.types())
}

func TestPipelineRejectsEmptyPrompt(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		f := newPipelineFixture(PipelineOptions{})
		result, err := f.pipeline.Run(context.Background(), models.GenerateRequest{Text: text})
		assert.ErrorIs(t, err, ErrValidation)
		assert.Nil(t, result)
		assert.Empty(t, f.log.calls, "no network call for %q", text)
		assert.Empty(t, f.events.events)
	}
}

func TestPipelineRejectsUnknownTemplate(t *testing.T) {
	f := newPipelineFixture(PipelineOptions{})
	_, err := f.pipeline.Run(context.Background(), models.GenerateRequest{Text: "a red fox", Template: "mug"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, f.log.calls)
}

func TestPipelineUsesNamedTemplate(t *testing.T) {
	hoodie := config.DefaultTemplate()
	hoodie.BlueprintID = 77
	hoodie.VariantID = 32918
	hoodie.Price = 3500
	f := newPipelineFixture(PipelineOptions{
		Catalog: config.Catalog{
			config.DefaultTemplateName: config.DefaultTemplate(),
			"hoodie":                   hoodie,
		},
		UploadFileName: "fox.png",
	})

	_, err := f.pipeline.Run(context.Background(), models.GenerateRequest{Text: "a red fox", Template: "hoodie"})
	require.NoError(t, err)

	spec := f.provider.specs[0]
	assert.Equal(t, 77, spec.BlueprintID)
	assert.Equal(t, []int{32918}, spec.PrintAreas[0].VariantIDs)
	assert.Equal(t, 3500, spec.Variants[0].Price)
	assert.Equal(t, "fox.png", f.provider.uploads[0].fileName)
}

func TestPipelineStopsAtFirstFailure(t *testing.T) {
	cases := []struct {
		name      string
		setup     func(f *pipelineFixture)
		wantErr   error
		wantCalls []string
		wantEvent string
	}{
		{
			name:      "generation",
			setup:     func(f *pipelineFixture) { f.generator.err = errUpstream },
			wantErr:   ErrGeneration,
			wantCalls: []string{"generate"},
			wantEvent: events.TypePipelineFailed,
		},
		{
			name:      "upload",
			setup:     func(f *pipelineFixture) { f.provider.uploadErr = errUpstream },
			wantErr:   ErrUpload,
			wantCalls: []string{"generate", "upload"},
			wantEvent: events.TypePipelineFailed,
		},
		{
			name:      "empty asset id",
			setup:     func(f *pipelineFixture) { f.provider.asset = &models.UploadedAsset{} },
			wantErr:   ErrValidation,
			wantCalls: []string{"generate", "upload"},
			wantEvent: events.TypePipelineFailed,
		},
		{
			name:      "create",
			setup:     func(f *pipelineFixture) { f.provider.createErr = errUpstream },
			wantErr:   ErrPublish,
			wantCalls: []string{"generate", "upload", "create"},
			wantEvent: events.TypePipelineFailed,
		},
		{
			name:      "publish",
			setup:     func(f *pipelineFixture) { f.provider.publishErr = errUpstream },
			wantErr:   ErrPublish,
			wantCalls: []string{"generate", "upload", "create", "publish"},
			wantEvent: events.TypeProductPublishFailed,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newPipelineFixture(PipelineOptions{})
			tc.setup(f)

			result, err := f.pipeline.Run(context.Background(), models.GenerateRequest{Text: "a red fox"})
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.False(t, errors.Is(err, errUpstream), "upstream detail must not leak")
			assert.Equal(t, tc.wantCalls, f.log.calls)

			require.NotEmpty(t, f.events.events)
			last := f.events.events[len(f.events.events)-1]
			assert.Equal(t, tc.wantEvent, last.Type)
		})
	}
}

func TestPipelinePublishFailureReportsCreatedProduct(t *testing.T) {
	f := newPipelineFixture(PipelineOptions{})
	f.provider.publishErr = errUpstream

	_, err := f.pipeline.Run(context.Background(), models.GenerateRequest{Text: "a red fox"})
	assert.ErrorIs(t, err, ErrPublish)

	last := f.events.events[len(f.events.events)-1]
	assert.Equal(t, "p-created", last.ProductID)
	assert.Equal(t, "run-1", last.RunID)
}

func TestPipelineIgnoresEventFailures(t *testing.T) {
	f := newPipelineFixture(PipelineOptions{})
	f.events.err = errors.New("broker down")

	result, err := f.pipeline.Run(context.Background(), models.GenerateRequest{Text: "a red fox"})
	require.NoError(t, err)
	assert.Equal(t, "p-created", result.Product.ID)
}
