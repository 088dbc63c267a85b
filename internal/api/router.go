package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.logRequests)
	r.Use(s.countRequests)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Get("/healthz", s.handleHealthz)

	r.Route("/api", func(r chi.Router) {
		r.Post("/scan-url", s.handleScanURL)
		r.Post("/scan-now", s.handleScanNow)
		r.Get("/projects", s.handleListProjects)
		r.Get("/projects/{projectID}/urls", s.handleListProjectURLs)
		r.Route("/urls", func(r chi.Router) {
			r.Post("/", s.handleImportURLs)
			r.Post("/{urlID}/scan", s.handleScanTrackedURL)
			r.Put("/{urlID}/pause", s.handleSetPaused)
		})
	})

	return r
}
