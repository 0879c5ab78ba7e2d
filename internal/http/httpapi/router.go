package httpapi

import (
	stdhttp "net/http"
	"time"

	"server/internal/http/handlers"
	"server/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(app *handlers.App, gatherer prometheus.Gatherer, lookup middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Locale,
		middleware.Logger(app.Logger, lookup),
		middleware.CORS(app.Config.CORSOrigins),
	)

	r.Get("/v1/healthz", app.Health)
	r.Method(stdhttp.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1/video", func(r chi.Router) {
		r.Use(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute))
		r.Get("/archetypes", app.Archetypes)
		r.Post("/validate-slots", app.ValidateSlots)
		r.Post("/validate-uploads", app.ValidateUploads)
	})

	return r
}
