package admin

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the admin router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	// Auth routes (no session required)
	r.Post("/auth/login", h.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(h.tokens, h.service))

		// Current admin
		r.Get("/auth/me", h.Me)

		// Admin directory
		r.Route("/admin-accounts", func(r chi.Router) {
			r.Use(RequireFeature(FeatureAdminManagement))
			r.Get("/", h.List)
			r.Post("/", h.Create)
			r.Put("/{id}/status", h.UpdateStatus)
			r.Put("/{id}/unblock", h.Unblock)
			r.Put("/{id}/permissions", h.UpdatePermissions)
		})
	})

	return r
}
