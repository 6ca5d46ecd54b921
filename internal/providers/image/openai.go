package image

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIGenerator produces thumbnails through the OpenAI images API. It is
// the alternate backend selected with IMAGE_PROVIDER=openai.
type OpenAIGenerator struct {
	client     *openai.Client
	model      string
	httpClient *http.Client
}

// NewOpenAIGenerator constructs the generator. A nil httpClient falls back to
// http.DefaultClient for the image download.
func NewOpenAIGenerator(apiKey, model string, httpClient *http.Client) *OpenAIGenerator {
	if strings.TrimSpace(model) == "" {
		model = openai.CreateImageModelDallE3
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OpenAIGenerator{
		client:     openai.NewClient(apiKey),
		model:      model,
		httpClient: httpClient,
	}
}

// Generate fulfils the Generator interface.
func (g *OpenAIGenerator) Generate(ctx context.Context, req GenerateRequest) (*Asset, error) {
	if g == nil || g.client == nil {
		return nil, fmt.Errorf("openai generator not configured")
	}
	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         req.Prompt,
		Size:           openAISizeForAspect(req.AspectRatio),
		ResponseFormat: openai.CreateImageResponseFormatURL,
		N:              1,
		Model:          g.model,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: create image: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("openai: no image data received from API")
	}
	imageURL := resp.Data[0].URL

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("openai: build download request: %w", err)
	}
	dl, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: download image: %w", err)
	}
	defer dl.Body.Close()
	if dl.StatusCode >= 300 {
		return nil, fmt.Errorf("openai: download status %d", dl.StatusCode)
	}
	data, err := io.ReadAll(dl.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: read image: %w", err)
	}
	format := dl.Header.Get("Content-Type")
	if format == "" {
		format = "image/png"
	}
	return &Asset{URL: imageURL, Data: data, Format: format}, nil
}

// openAISizeForAspect picks the closest supported DALL-E canvas for the
// requested aspect ratio.
func openAISizeForAspect(aspect string) string {
	switch strings.TrimSpace(aspect) {
	case "16:9", "4:3":
		return openai.CreateImageSize1792x1024
	case "9:16", "3:4":
		return openai.CreateImageSize1024x1792
	default:
		return openai.CreateImageSize1024x1024
	}
}

var _ Generator = (*OpenAIGenerator)(nil)
