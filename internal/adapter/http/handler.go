package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ad-exchange/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the use cases, the token authenticator and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	viewing   port.ViewingUseCase
	dashboard port.DashboardUseCase
	auth      *Authenticator
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(viewing port.ViewingUseCase, dashboard port.DashboardUseCase, auth *Authenticator, logger *slog.Logger) *Handler {
	h := &Handler{viewing: viewing, dashboard: dashboard, auth: auth, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// Metrics wraps Recoverer so recovered panics are counted as 500s.
	r.Use(Metrics)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)
		r.Get("/dashboard", h.handleDashboard)
		r.Route("/view-ads/sessions", func(r chi.Router) {
			r.Post("/", h.handleStartSession)
			r.Get("/{id}", h.handleGetSession)
			r.Delete("/{id}", h.handleCloseSession)
			r.Post("/{id}/next", h.handleLoadDifferentAd)
			r.Post("/{id}/claim", h.handleClaim)
			r.Post("/{id}/interstitial/dismiss", h.handleDismissInterstitial)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
