package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"thumbnailgen/internal/providers/image"
	"thumbnailgen/internal/storage"
	"thumbnailgen/internal/thumbnail"
)

type stubGenerator struct {
	asset *image.Asset
	err   error
}

func (s *stubGenerator) Generate(ctx context.Context, req image.GenerateRequest) (*image.Asset, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.asset, nil
}

func newTestApp(t *testing.T, gen image.Generator) *App {
	t.Helper()
	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "thumbnails"))
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	client, err := thumbnail.NewClient(thumbnail.ClientOptions{
		Generator:  gen,
		Store:      store,
		BatchDelay: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	return NewApp(client)
}

func TestGenerateThumbnailEndpoint(t *testing.T) {
	app := newTestApp(t, &stubGenerator{asset: &image.Asset{Data: []byte("img")}})

	body := `{"topic":"Machine Learning Basics","options":{"aspect_ratio":"16:9","style":"cinematic"}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/thumbnails", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.GenerateThumbnail(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	var resp generateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if filepath.Base(resp.Path) != "machine-learning-basics.png" {
		t.Fatalf("unexpected path: %s", resp.Path)
	}
}

func TestGenerateThumbnailRejectsUnknownFields(t *testing.T) {
	app := newTestApp(t, &stubGenerator{asset: &image.Asset{Data: []byte("img")}})

	body := `{"topic":"Go Basics","options":{"aspect_ratio":"16:9","rendering":"fast"}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/thumbnails", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.GenerateThumbnail(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown option field, got %d", rec.Code)
	}
}

func TestGenerateThumbnailMissingTopic(t *testing.T) {
	app := newTestApp(t, &stubGenerator{asset: &image.Asset{Data: []byte("img")}})

	req := httptest.NewRequest(http.MethodPost, "/v1/thumbnails", strings.NewReader(`{"topic":"  "}`))
	rec := httptest.NewRecorder()
	app.GenerateThumbnail(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGenerateThumbnailProviderFailure(t *testing.T) {
	app := newTestApp(t, &stubGenerator{asset: &image.Asset{}})

	req := httptest.NewRequest(http.MethodPost, "/v1/thumbnails", strings.NewReader(`{"topic":"Go Basics"}`))
	rec := httptest.NewRecorder()
	app.GenerateThumbnail(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGenerateThumbnailBatchEndpoint(t *testing.T) {
	app := newTestApp(t, &stubGenerator{asset: &image.Asset{Data: []byte("img")}})

	body := `{"topics":["Good Topic","","Another Topic"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/thumbnails/batch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.GenerateThumbnailBatch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var resp batchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(resp.Results))
	}
	if !resp.Results[0].Success || !resp.Results[2].Success {
		t.Fatalf("expected outer topics to succeed: %+v", resp.Results)
	}
	if resp.Results[1].Success || resp.Results[1].Error == "" {
		t.Fatalf("expected middle topic to fail with message: %+v", resp.Results[1])
	}
	if resp.Results[0].Topic != "Good Topic" || resp.Results[2].Topic != "Another Topic" {
		t.Fatalf("results out of order: %+v", resp.Results)
	}
}
