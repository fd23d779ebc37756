package httpadapter

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"adboard/internal/core/port"
	"adboard/internal/credentials"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. The transport layer resolves the acting user from the bearer
// token and passes the id into the usecases; the core performs no
// transport-level authentication itself.
type Handler struct {
	auth   port.AuthUseCase
	sites  port.SiteUseCase
	events port.EventUseCase
	creds  *credentials.Store
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. /track is also
// registered at the root because that is the URL embedded tracking
// snippets call.
func NewHandler(auth port.AuthUseCase, sites port.SiteUseCase, events port.EventUseCase, creds *credentials.Store, logger *slog.Logger) *Handler {
	h := &Handler{auth: auth, sites: sites, events: events, creds: creds, logger: logger}
	r := chi.NewRouter()

	r.Post("/track", h.handleTrack)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/track", h.handleTrack)
		r.Post("/auth/register", h.handleRegister)
		r.Post("/auth/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Post("/sites", h.handleCreateSite)
			r.Post("/sites/verify", h.handleVerifySites)
			r.Post("/sites/{id}/verify", h.handleVerifySite)
			r.Get("/dashboard", h.handleDashboard)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
