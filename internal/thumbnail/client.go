package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"thumbnailgen/internal/domain"
	"thumbnailgen/internal/infra"
	"thumbnailgen/internal/providers/ideogram"
	"thumbnailgen/internal/providers/image"
	"thumbnailgen/internal/storage"
)

// Recognized option defaults.
const (
	DefaultAspectRatio = "16:9"
	DefaultStyle       = "cinematic"
	DefaultQuality     = "medium"
)

// Options control a single generation call. Empty fields fall back to the
// defaults above. Unknown fields cannot be expressed here; the HTTP surface
// rejects them during decoding.
type Options struct {
	AspectRatio string `json:"aspect_ratio"`
	Style       string `json:"style"`
	Quality     string `json:"quality"`
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.AspectRatio) == "" {
		o.AspectRatio = DefaultAspectRatio
	}
	if strings.TrimSpace(o.Style) == "" {
		o.Style = DefaultStyle
	}
	if strings.TrimSpace(o.Quality) == "" {
		o.Quality = DefaultQuality
	}
	return o
}

// Result records the outcome for one topic in a batch. A Result is a value:
// produced once, never mutated.
type Result struct {
	Topic   string
	Path    string
	Err     error
	Message string
	OK      bool
}

// ClientOptions configures a Client.
type ClientOptions struct {
	Generator image.Generator
	Store     *storage.FileStore
	Logger    *infra.Logger
	// BatchDelay paces consecutive batch requests. Defaults to one second.
	BatchDelay time.Duration
}

// Client turns course topics into thumbnail files: it builds the prompt,
// calls the configured image provider, and writes the bytes under a slug
// file name in the output directory.
type Client struct {
	generator image.Generator
	store     *storage.FileStore
	logger    infra.Logger
	limiter   *rate.Limiter
}

// NewClient validates the wiring and returns a ready client.
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Generator == nil {
		return nil, fmt.Errorf("%w: image generator is required", domain.ErrConfig)
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("%w: file store is required", domain.ErrConfig)
	}
	logger := infra.Logger(zerolog.New(io.Discard))
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	delay := opts.BatchDelay
	if delay <= 0 {
		delay = time.Second
	}
	return &Client{
		generator: opts.Generator,
		store:     opts.Store,
		logger:    logger,
		limiter:   rate.NewLimiter(rate.Every(delay), 1),
	}, nil
}

// NewClientFromConfig wires the provider selected by configuration together
// with a file store rooted at the configured output directory.
func NewClientFromConfig(cfg *infra.Config, logger infra.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", domain.ErrConfig)
	}

	store, err := storage.NewFileStore(cfg.OutputDir)
	if err != nil {
		return nil, err
	}

	var generator image.Generator
	switch cfg.ImageProvider {
	case infra.ProviderOpenAI:
		generator = image.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel, nil)
	case infra.ProviderIdeogram:
		generator = image.NewIdeogramGenerator(ideogram.NewClient(ideogram.Options{
			APIKey:         cfg.IdeogramAPIKey,
			BaseURL:        cfg.IdeogramBaseURL,
			RenderingSpeed: cfg.RenderingSpeed,
			Logger:         &logger,
			RequestTimeout: cfg.RequestTimeout,
		}))
	default:
		return nil, fmt.Errorf("%w: unknown image provider %q", domain.ErrConfig, cfg.ImageProvider)
	}

	return NewClient(ClientOptions{
		Generator:  generator,
		Store:      store,
		Logger:     &logger,
		BatchDelay: cfg.BatchDelay,
	})
}

// Generate produces one thumbnail for the topic and returns the written file
// path. Failures carry one of the domain error kinds; a non-nil error always
// means no usable path.
func (c *Client) Generate(ctx context.Context, topic string, opts Options) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", fmt.Errorf("%w: topic is required", domain.ErrProvider)
	}
	opts = opts.withDefaults()

	requestID := uuid.NewString()
	hook := image.HookText(topic)
	prompt := image.BuildThumbnailPrompt(topic, hook, opts.Style)

	c.logger.Info().
		Str("request_id", requestID).
		Str("topic", topic).
		Str("hook", hook).
		Msg("generating thumbnail")

	asset, err := c.generator.Generate(ctx, image.GenerateRequest{
		Prompt:      prompt,
		AspectRatio: opts.AspectRatio,
		Quality:     opts.Quality,
		RequestID:   requestID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProvider), errors.Is(err, domain.ErrConfig):
			return "", err
		case errors.Is(err, ideogram.ErrMissingAPIKey):
			return "", fmt.Errorf("%w: %v", domain.ErrConfig, err)
		default:
			return "", fmt.Errorf("%w: %v", domain.ErrProvider, err)
		}
	}
	if asset == nil || len(asset.Data) == 0 {
		return "", fmt.Errorf("%w: no image data received from API", domain.ErrProvider)
	}

	path, err := c.store.Write(ctx, Slug(topic)+".png", asset.Data)
	if err != nil {
		return "", err
	}

	c.logger.Info().
		Str("request_id", requestID).
		Str("topic", topic).
		Str("path", path).
		Msg("thumbnail saved")
	return path, nil
}

// GenerateBatch processes topics sequentially and returns exactly one Result
// per topic, in input order. A failed topic is recorded and the batch moves
// on; nothing aborts the run. Calls are paced by the configured delay.
func (c *Client) GenerateBatch(ctx context.Context, topics []string, opts Options) []Result {
	results := make([]Result, 0, len(topics))
	for _, topic := range topics {
		// A cancelled context surfaces through the provider call below.
		_ = c.limiter.Wait(ctx)

		path, err := c.Generate(ctx, topic, opts)
		if err != nil {
			c.logger.Error().
				Err(err).
				Str("topic", topic).
				Msg("thumbnail generation failed")
			results = append(results, Result{Topic: topic, Err: err, Message: err.Error()})
			continue
		}
		results = append(results, Result{Topic: topic, Path: path, OK: true})
	}
	return results
}
