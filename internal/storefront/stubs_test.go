package storefront

import (
	"context"
	"errors"

	"storefront/internal/events"
	"storefront/internal/models"
	"storefront/internal/services/printify"

	"github.com/stripe/stripe-go/v80"
)

// callLog records the order collaborators are invoked in
type callLog struct {
	calls []string
}

func (l *callLog) add(name string) { l.calls = append(l.calls, name) }

type stubGenerator struct {
	log     *callLog
	url     string
	err     error
	prompts []string
}

func (s *stubGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	s.log.add("generate")
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

type uploadCall struct {
	fileName string
	url      string
}

type stubProvider struct {
	log *callLog

	asset     *models.UploadedAsset
	uploadErr error
	uploads   []uploadCall

	created   *models.Product
	createErr error
	specs     []*models.ProductSpec

	publishErr error
	published  []string

	products map[string]*models.Product
	getErr   error
}

func (s *stubProvider) UploadImage(ctx context.Context, fileName, imageURL string) (*models.UploadedAsset, error) {
	s.log.add("upload")
	s.uploads = append(s.uploads, uploadCall{fileName: fileName, url: imageURL})
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	return s.asset, nil
}

func (s *stubProvider) CreateProduct(ctx context.Context, spec *models.ProductSpec) (*models.Product, error) {
	s.log.add("create")
	s.specs = append(s.specs, spec)
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubProvider) PublishProduct(ctx context.Context, productID string) error {
	s.log.add("publish")
	s.published = append(s.published, productID)
	return s.publishErr
}

func (s *stubProvider) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	if s.log != nil {
		s.log.add("get")
	}
	if s.getErr != nil {
		return nil, s.getErr
	}
	p, ok := s.products[productID]
	if !ok {
		return nil, printify.ErrNotFound
	}
	return p, nil
}

type recordingPublisher struct {
	events []events.Event
	err    error
}

func (r *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingPublisher) Close() error { return nil }

func (r *recordingPublisher) types() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type stubSessions struct {
	params []*stripe.CheckoutSessionParams
	sess   *stripe.CheckoutSession
	err    error
}

func (s *stubSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	s.params = append(s.params, params)
	if s.err != nil {
		return nil, s.err
	}
	return s.sess, nil
}

var errUpstream = errors.New("upstream exploded")

// teeProduct has two colours and three sizes with one variant per pair except
// White / XL.
func teeProduct() *models.Product {
	return &models.Product{
		ID:    "p1",
		Title: `Your prompt: "a red fox"`,
		Tags:  []string{"Men's Clothing", "T-shirts"},
		Options: []models.ProductOption{
			{Name: "Colors", Type: "color", Values: []models.OptionValue{{ID: 1, Title: "Black"}, {ID: 5, Title: "White"}}},
			{Name: "Sizes", Type: "size", Values: []models.OptionValue{{ID: 2, Title: "L"}, {ID: 3, Title: "M"}, {ID: 4, Title: "XL"}}},
		},
		Variants: []models.ProductVariant{
			{ID: 38192, Title: "Black / L", Price: 2000, IsEnabled: true, IsAvailable: true, IsDefault: true, Options: []int{1, 2}},
			{ID: 38191, Title: "Black / M", Price: 2000, IsEnabled: true, IsAvailable: true, Options: []int{1, 3}},
			{ID: 38193, Title: "Black / XL", Price: 2200, IsEnabled: true, IsAvailable: false, Options: []int{1, 4}},
			{ID: 38162, Title: "White / L", Price: 2000, IsEnabled: true, IsAvailable: true, Options: []int{5, 2}},
			{ID: 38161, Title: "White / M", Price: 1900, IsEnabled: true, IsAvailable: true, Options: []int{5, 3}},
		},
		Images: []models.ProductImage{
			{Src: "https://images.example.com/black-front.png", VariantIDs: []int{38192, 38191, 38193}, Position: "front", IsDefault: true},
			{Src: "https://images.example.com/white-front.png", VariantIDs: []int{38162, 38161}, Position: "front"},
			{Src: "https://images.example.com/black-back.png", VariantIDs: []int{38192, 38191}, Position: "back"},
		},
	}
}
