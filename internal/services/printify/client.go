package printify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/internal/logger"
	"storefront/internal/models"
)

const DefaultBaseURL = "https://api.printify.com"

// ErrNotFound is returned when the provider answers 404
var ErrNotFound = errors.New("printify: not found")

type Client struct {
	baseURL     string
	shopID      string
	accessToken string
	httpClient  *http.Client
	logger      *logger.Logger
}

func NewClient(baseURL, shopID, accessToken string, logger *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		shopID:      shopID,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// UploadImage asks Printify to fetch imageURL into the media library. The URL must stay
// reachable until the call returns.
func (c *Client) UploadImage(ctx context.Context, fileName, imageURL string) (*models.UploadedAsset, error) {
	endpoint := c.baseURL + "/v1/uploads/images.json"
	payload := models.UploadRequest{FileName: fileName, URL: imageURL}

	var asset models.UploadedAsset
	if err := c.do(ctx, http.MethodPost, endpoint, payload, &asset); err != nil {
		return nil, err
	}
	if asset.ID == "" {
		return nil, fmt.Errorf("upload response missing image id")
	}

	c.logger.Debug("Uploaded image %s (%s, %dx%d)", asset.ID, asset.MimeType, asset.Width, asset.Height)
	return &asset, nil
}

// CreateProduct submits spec and returns the created product
func (c *Client) CreateProduct(ctx context.Context, spec *models.ProductSpec) (*models.Product, error) {
	endpoint := fmt.Sprintf("%s/v1/shops/%s/products.json", c.baseURL, url.PathEscape(c.shopID))

	var product models.Product
	if err := c.do(ctx, http.MethodPost, endpoint, spec, &product); err != nil {
		return nil, err
	}
	if product.ID == "" {
		return nil, fmt.Errorf("create response missing product id")
	}
	return &product, nil
}

// PublishProduct marks every product field as ready to publish
func (c *Client) PublishProduct(ctx context.Context, productID string) error {
	endpoint := fmt.Sprintf("%s/v1/shops/%s/products/%s/publish.json",
		c.baseURL, url.PathEscape(c.shopID), url.PathEscape(productID))

	return c.do(ctx, http.MethodPost, endpoint, models.PublishAll(), nil)
}

// GetProduct fetches a single product by ID
func (c *Client) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	endpoint := fmt.Sprintf("%s/v1/shops/%s/products/%s.json",
		c.baseURL, url.PathEscape(c.shopID), url.PathEscape(productID))

	var product models.Product
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
