package image

import "context"

// GenerateRequest describes a normalized request passed to any image provider.
type GenerateRequest struct {
	Prompt      string
	AspectRatio string
	Quality     string
	RequestID   string
}

// Asset represents a generated image.
type Asset struct {
	URL    string
	Data   []byte
	Format string
}

// Generator is the contract implemented by all image providers. One request
// yields exactly one asset.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*Asset, error)
}
