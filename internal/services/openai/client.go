package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront/internal/logger"
)

const DefaultBaseURL = "https://api.openai.com"

type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Style   string
	Quality string
	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

type Client struct {
	opts       Options
	httpClient *http.Client
	logger     *logger.Logger
}

// OpenAI API structures
type ImageRequest struct {
	Model          string `json:"model,omitempty"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	ResponseFormat string `json:"response_format"`
	Style          string `json:"style,omitempty"`
	Quality        string `json:"quality,omitempty"`
}

type ImageResponse struct {
	Data []ImageData `json:"data"`
}

type ImageData struct {
	URL           string `json:"url"`
	RevisedPrompt string `json:"revised_prompt"`
}

func New(opts Options, logger *logger.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	httpClient := opts.HTTPClient
	if httpClient == nil {
		// image generation with hd quality regularly takes longer than 30s
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &Client{
		opts:       opts,
		httpClient: httpClient,
		logger:     logger,
	}
}

// GenerateImage requests a single image for prompt and returns its temporary URL.
// The URL expires after roughly an hour.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if c.opts.APIKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured")
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("image prompt required")
	}

	request := ImageRequest{
		Model:          c.opts.Model,
		Prompt:         prompt,
		N:              1,
		ResponseFormat: "url",
		Style:          c.opts.Style,
		Quality:        c.opts.Quality,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/v1/images/generations", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)

	c.logger.Debug("Generating image with %s for prompt %q", c.opts.Model, prompt)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI API error: %d - %s", resp.StatusCode, string(body))
	}

	var imageResp ImageResponse
	if err := json.Unmarshal(body, &imageResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %v", err)
	}

	if len(imageResp.Data) == 0 || strings.TrimSpace(imageResp.Data[0].URL) == "" {
		return "", fmt.Errorf("no image returned from OpenAI")
	}

	if revised := imageResp.Data[0].RevisedPrompt; revised != "" {
		c.logger.Debug("OpenAI revised prompt: %s", revised)
	}
	return strings.TrimSpace(imageResp.Data[0].URL), nil
}
