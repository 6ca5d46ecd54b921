package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"thumbnailgen/internal/http/handlers"
	"thumbnailgen/internal/infra"
	appmw "thumbnailgen/internal/middleware"
)

// NewRouter assembles the API surface with the shared middleware chain.
func NewRouter(app *handlers.App, logger infra.Logger, rateLimitPerMin int) http.Handler {
	r := chi.NewRouter()

	r.Use(
		appmw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		appmw.Logger(logger),
		appmw.RateLimit(rateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/thumbnails", func(r chi.Router) {
		r.Post("/", app.GenerateThumbnail)
		r.Post("/batch", app.GenerateThumbnailBatch)
	})

	return r
}
