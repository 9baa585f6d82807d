package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"budget-scheduler/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It exposes read-only views of the scheduler and a manual reconcile trigger
// on a chi.Router.
type Handler struct {
	svc    port.Reconciler
	logger *slog.Logger
	router chi.Router
	now    func() time.Time
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.Reconciler, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger, now: time.Now}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Get("/mode", h.handleMode)
		r.Get("/state", h.handleState)
		r.Get("/entities", h.handleEntities)
		r.Post("/reconcile", h.handleReconcile)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
