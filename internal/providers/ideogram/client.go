package ideogram

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

	"github.com/rs/zerolog"

	"thumbnailgen/internal/infra"
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = errors.New("ideogram: api key is required")

// ErrNoImageData indicates a well-formed response that carries no image.
var ErrNoImageData = errors.New("ideogram: no image data received from API")

// Options configures the Ideogram client.
type Options struct {
	APIKey         string
	BaseURL        string
	RenderingSpeed string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls to the Ideogram v3 text-to-image API.
type Client struct {
	apiKey         string
	baseURL        string
	renderingSpeed string
	httpClient     *http.Client
	logger         *infra.Logger
}

// ImageRequest captures the required inputs for image generation. AspectRatio
// uses the Ideogram token form ("16x9").
type ImageRequest struct {
	Prompt      string
	AspectRatio string
	Quality     string
}

// ImageAsset is the normalized result from the Ideogram API.
type ImageAsset struct {
	URL    string
	Data   []byte
	Format string
}

type generationRequest struct {
	Prompt         string `json:"prompt"`
	RenderingSpeed string `json:"rendering_speed"`
	AspectRatio    string `json:"aspect_ratio"`
	Quality        string `json:"quality,omitempty"`
}

type generationResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.ideogram.ai/v1"
	}
	speed := strings.TrimSpace(opts.RenderingSpeed)
	if speed == "" {
		speed = "TURBO"
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		apiKey:         strings.TrimSpace(opts.APIKey),
		baseURL:        baseURL,
		renderingSpeed: speed,
		httpClient:     httpClient,
		logger:         logger,
	}
}

// HasCredentials reports whether the client can perform remote calls.
func (c *Client) HasCredentials() bool {
	return c.apiKey != ""
}

// GenerateImage invokes the Ideogram API once, downloads the resulting image
// and returns a single asset.
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) (*ImageAsset, error) {
	if !c.HasCredentials() {
		return nil, ErrMissingAPIKey
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, errors.New("ideogram: prompt is required")
	}
	aspect := strings.TrimSpace(req.AspectRatio)
	if aspect == "" {
		aspect = "16x9"
	}
	payload := generationRequest{
		Prompt:         prompt,
		RenderingSpeed: c.renderingSpeed,
		AspectRatio:    aspect,
		Quality:        strings.TrimSpace(req.Quality),
	}

	endpoint := c.baseURL + "/ideogram-v3/generate"
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ideogram: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ideogram: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ideogram: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ideogram: read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		var detail errorResponse
		if err := json.Unmarshal(raw, &detail); err == nil {
			if msg := firstNonEmpty(detail.Error, detail.Message); msg != "" {
				return nil, fmt.Errorf("ideogram: status %d: %s", resp.StatusCode, msg)
			}
		}
		return nil, fmt.Errorf("ideogram: request failed with status %d", resp.StatusCode)
	}

	var decoded generationResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("ideogram: decode response: %w", err)
	}
	imageURL := firstImageURL(decoded)
	if imageURL == "" {
		return nil, ErrNoImageData
	}

	data, format, err := c.download(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("url", imageURL).
		Int("bytes", len(data)).
		Msg("ideogram: generated image asset")
	return &ImageAsset{URL: imageURL, Data: data, Format: format}, nil
}

func (c *Client) download(ctx context.Context, imageURL string) ([]byte, string, error) {
	parsed, err := url.Parse(strings.TrimSpace(imageURL))
	if err != nil || parsed.Scheme == "" {
		return nil, "", fmt.Errorf("ideogram: invalid image url: %s", imageURL)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("ideogram: build download request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("ideogram: download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("ideogram: download status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("ideogram: read image: %w", err)
	}
	format := resp.Header.Get("Content-Type")
	if format == "" {
		format = "image/png"
	}
	return data, format, nil
}

func firstImageURL(resp generationResponse) string {
	for _, item := range resp.Data {
		if u := strings.TrimSpace(item.URL); u != "" {
			return u
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
