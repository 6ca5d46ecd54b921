package infra

import (
	"errors"
	"testing"
	"time"

	"thumbnailgen/internal/domain"
)

func TestLoadConfigMissingAPIKey(t *testing.T) {
	t.Setenv("IMAGE_PROVIDER", "ideogram")
	t.Setenv("IDEOGRAM_API_KEY", "")

	_, err := LoadConfig()
	if !errors.Is(err, domain.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("IDEOGRAM_API_KEY", "test-key")
	t.Setenv("IMAGE_PROVIDER", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("BATCH_DELAY_SECONDS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.ImageProvider != ProviderIdeogram {
		t.Fatalf("unexpected provider: %s", cfg.ImageProvider)
	}
	if cfg.OutputDir != "./thumbnails" {
		t.Fatalf("unexpected output dir: %s", cfg.OutputDir)
	}
	if cfg.BatchDelay != time.Second {
		t.Fatalf("unexpected batch delay: %s", cfg.BatchDelay)
	}
	if cfg.IdeogramBaseURL == "" || cfg.RenderingSpeed != "TURBO" {
		t.Fatalf("ideogram defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigOpenAIRequiresKey(t *testing.T) {
	t.Setenv("IMAGE_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := LoadConfig()
	if !errors.Is(err, domain.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestLoadConfigUnknownProvider(t *testing.T) {
	t.Setenv("IMAGE_PROVIDER", "dalle9000")
	t.Setenv("IDEOGRAM_API_KEY", "k")

	_, err := LoadConfig()
	if !errors.Is(err, domain.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}
