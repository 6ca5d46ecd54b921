package image

import (
	"context"
	"fmt"

	"thumbnailgen/internal/providers/ideogram"
)

type ideogramClient interface {
	GenerateImage(ctx context.Context, req ideogram.ImageRequest) (*ideogram.ImageAsset, error)
	HasCredentials() bool
}

// IdeogramGenerator adapts the Ideogram client onto the Generator contract.
type IdeogramGenerator struct {
	client ideogramClient
}

// NewIdeogramGenerator wires an Ideogram client into the provider abstraction.
func NewIdeogramGenerator(client ideogramClient) *IdeogramGenerator {
	return &IdeogramGenerator{client: client}
}

// Generate fulfils the Generator interface. The credentials check happens
// before any request is built so a mis-keyed setup never touches the network.
func (g *IdeogramGenerator) Generate(ctx context.Context, req GenerateRequest) (*Asset, error) {
	if g == nil || g.client == nil {
		return nil, fmt.Errorf("ideogram generator not configured")
	}
	if !g.client.HasCredentials() {
		return nil, ideogram.ErrMissingAPIKey
	}
	asset, err := g.client.GenerateImage(ctx, ideogram.ImageRequest{
		Prompt:      req.Prompt,
		AspectRatio: AspectRatioTag(req.AspectRatio),
		Quality:     req.Quality,
	})
	if err != nil {
		return nil, err
	}
	return &Asset{URL: asset.URL, Data: asset.Data, Format: asset.Format}, nil
}

var _ Generator = (*IdeogramGenerator)(nil)
