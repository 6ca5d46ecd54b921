package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"thumbnailgen/internal/domain"
)

// Supported image providers.
const (
	ProviderIdeogram = "ideogram"
	ProviderOpenAI   = "openai"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv string
	Port   string

	ImageProvider   string
	IdeogramAPIKey  string
	IdeogramBaseURL string
	RenderingSpeed  string
	OpenAIAPIKey    string
	OpenAIModel     string

	OutputDir      string
	BatchDelay     time.Duration
	RequestTimeout time.Duration

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. The provider API key is validated here so that a
// misconfigured process fails before any request is attempted.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		ImageProvider:   strings.ToLower(getEnv("IMAGE_PROVIDER", ProviderIdeogram)),
		IdeogramAPIKey:  os.Getenv("IDEOGRAM_API_KEY"),
		IdeogramBaseURL: getEnv("IDEOGRAM_BASE_URL", "https://api.ideogram.ai/v1"),
		RenderingSpeed:  getEnv("IDEOGRAM_RENDERING_SPEED", "TURBO"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "dall-e-3"),

		OutputDir:      getEnv("OUTPUT_DIR", "./thumbnails"),
		BatchDelay:     time.Second * time.Duration(getEnvInt("BATCH_DELAY_SECONDS", 1)),
		RequestTimeout: time.Second * time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)),

		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	switch cfg.ImageProvider {
	case ProviderIdeogram:
		if cfg.IdeogramAPIKey == "" {
			return nil, fmt.Errorf("%w: IDEOGRAM_API_KEY is required", domain.ErrConfig)
		}
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is required", domain.ErrConfig)
		}
	default:
		return nil, fmt.Errorf("%w: unknown IMAGE_PROVIDER %q", domain.ErrConfig, cfg.ImageProvider)
	}

	if strings.TrimSpace(cfg.OutputDir) == "" {
		return nil, fmt.Errorf("%w: OUTPUT_DIR must not be blank", domain.ErrConfig)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
