package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// requestTimeout bounds a single request, image rendering included.
const requestTimeout = 30 * time.Second

// NewRouter wires the dashboard, the API and health check. Everything but
// the health check is rate limited per client.
func NewRouter(plots *PlotHandler, dashboard *DashboardHandler, limiter *RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware(limiter))
		r.Get("/", dashboard.Index)
		r.Get("/dashboard/", dashboard.Index)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimitMiddleware(limiter))

		r.Post("/charts", plots.Chart)
		r.Get("/charts/{family}.{format}", plots.RenderChart)
		r.Post("/plots", plots.StorePlot)
		r.Get("/plots/{id}.{format}", plots.RenderPlot)
		r.Post("/dashboard/state", dashboard.State)
	})

	return r
}
