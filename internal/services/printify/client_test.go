package printify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/logger"
	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "shop-1", "token-1", logger.Nop())
}

func TestUploadImage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/uploads/images.json", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var body models.UploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "generatedImage.png", body.FileName)
		assert.Equal(t, "https://images.example.com/fox.png", body.URL)

		w.Write([]byte(`{"id":"a1","file_name":"generatedImage.png","height":1024,"width":1024,"size":1138575,"mime_type":"image/png","preview_url":"https://example.com/a1.png","upload_time":"2020-01-09 07:29:43"}`))
	})

	asset, err := client.UploadImage(context.Background(), "generatedImage.png", "https://images.example.com/fox.png")
	require.NoError(t, err)
	assert.Equal(t, "a1", asset.ID)
	assert.Equal(t, 1024, asset.Width)
	assert.Equal(t, "image/png", asset.MimeType)
	assert.Equal(t, "2020-01-09 07:29:43", asset.UploadTime)
}

func TestUploadImageFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"invalid url"}`},
		{name: "malformed json", status: http.StatusOK, body: `{"id":`},
		{name: "missing id", status: http.StatusOK, body: `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})
			asset, err := client.UploadImage(context.Background(), "f.png", "https://example.com/f.png")
			assert.Error(t, err)
			assert.Nil(t, asset)
		})
	}
}

func TestCreateProduct(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/shops/shop-1/products.json", r.URL.Path)

		var spec models.ProductSpec
		require.NoError(t, json.NewDecoder(r.Body).Decode(&spec))
		assert.Equal(t, 145, spec.BlueprintID)
		assert.Equal(t, "a1", spec.PrintAreas[0].Placeholders[0].Images[0].ID)

		w.Write([]byte(`{"id":"p1","title":"t","blueprint_id":145}`))
	})

	spec := &models.ProductSpec{
		Title:       "t",
		BlueprintID: 145,
		PrintAreas: []models.PrintAreaSpec{{
			VariantIDs:   []int{38192},
			Placeholders: []models.PlaceholderSpec{{Position: "front", Images: []models.ImagePlacement{{ID: "a1"}}}},
		}},
	}
	product, err := client.CreateProduct(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
}

func TestPublishProductSendsAllFlags(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/shops/shop-1/products/p1/publish.json", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var flags map[string]bool
		require.NoError(t, json.Unmarshal(raw, &flags))
		for _, key := range []string{"title", "description", "images", "variants", "tags", "keyFeatures", "shipping_template"} {
			assert.True(t, flags[key], key)
		}
		w.Write([]byte(`{}`))
	})

	require.NoError(t, client.PublishProduct(context.Background(), "p1"))
}

func TestGetProduct(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/v1/shops/shop-1/products/p1.json":
			w.Write([]byte(`{
				"id":"p1",
				"tags":["T-shirts","T-shirt"],
				"options":[{"name":"Colors","type":"color","values":[{"id":1,"title":"Black"}]},{"name":"Sizes","type":"size","values":[{"id":2,"title":"L"}]}],
				"variants":[{"id":38192,"price":2000,"title":"Black / L","is_enabled":true,"is_available":true,"options":[1,2]}],
				"images":[{"src":"https://example.com/m.png","variant_ids":[38192],"position":"front","is_default":true}]
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	product, err := client.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, product.Variants[0].Options)
	assert.Equal(t, "color", product.Options[0].Type)
	assert.Equal(t, []int{38192}, product.Images[0].VariantIDs)

	_, err = client.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
