package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/tesseralabs/tessera/internal/dashservice"
	"github.com/tesseralabs/tessera/internal/sse"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// broker, if non-nil, receives change events and serves GET /events
// inside the auth group.
func NewRouter(svc *dashservice.Service, authEnabled bool, token string, broker *sse.Broker) chi.Router {
	h := NewHandler(svc, broker)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Whole-document operations.
	r.Get("/dashboard", h.GetDashboard)
	r.Get("/export", h.Export)
	r.Post("/import", h.Import)
	r.Post("/reset", h.Reset)

	// Cards.
	r.Post("/cards", h.CreateCard)
	r.Put("/cards/order", h.ReorderCards)
	r.Patch("/cards/{cardID}", h.UpdateCard)
	r.Delete("/cards/{cardID}", h.DeleteCard)

	// Links.
	r.Post("/cards/{cardID}/links", h.CreateLink)
	r.Put("/cards/{cardID}/links/order", h.ReorderLinks)
	r.Patch("/cards/{cardID}/links/{linkID}", h.UpdateLink)
	r.Delete("/cards/{cardID}/links/{linkID}", h.DeleteLink)
	r.Post("/links/move", h.MoveLink)

	// Settings.
	r.Get("/settings", h.GetSettings)
	r.Put("/settings", h.PutSettings)
	r.Put("/settings/layout", h.PutLayout)

	// Static registries.
	r.Get("/palette", h.GetPalette)
	r.Get("/icons", h.GetIcons)

	// SSE endpoint (protected by the same auth middleware).
	if broker != nil {
		r.Get("/events", broker.ServeHTTP)
	}

	return r
}
