package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tesseralabs/tessera/internal/apperr"
	"github.com/tesseralabs/tessera/internal/dashservice"
	"github.com/tesseralabs/tessera/internal/models"
	"github.com/tesseralabs/tessera/internal/ordering"
	"github.com/tesseralabs/tessera/internal/sse"
)

// Handler holds API route handlers.
type Handler struct {
	svc    *dashservice.Service
	broker *sse.Broker
}

// NewHandler creates a new Handler. broker may be nil in tests.
func NewHandler(svc *dashservice.Service, broker *sse.Broker) *Handler {
	return &Handler{svc: svc, broker: broker}
}

func (h *Handler) notify(kind, id string) {
	if h.broker != nil {
		h.broker.PublishChange(kind, id)
	}
}

// ifMatch returns the optional optimistic-concurrency token.
func ifMatch(r *http.Request) string {
	return r.Header.Get("If-Match")
}

// fail maps service errors onto HTTP statuses.
func fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case errors.Is(err, apperr.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody("conflict"))
	case errors.Is(err, apperr.ErrInvalidImport):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	default:
		slog.Error(op+" failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return false
	}
	return true
}

// GetDashboard handles GET /api/dashboard.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Dashboard(r.Context())
	if err != nil {
		fail(w, "get dashboard", err)
		return
	}
	w.Header().Set("ETag", state.Revision)
	writeJSON(w, http.StatusOK, state)
}

// CreateCard handles POST /api/cards.
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req CreateCardRequest
	if !decode(w, r, &req) {
		return
	}
	card, err := h.svc.AddCard(r.Context(), ordering.CardTemplate{Title: req.Title, Color: req.Color}, ifMatch(r))
	if err != nil {
		fail(w, "create card", err)
		return
	}
	h.notify("card.created", card.ID)
	writeJSON(w, http.StatusCreated, card)
}

// UpdateCard handles PATCH /api/cards/{cardID}.
func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	var req UpdateCardRequest
	if !decode(w, r, &req) {
		return
	}
	cardID := chi.URLParam(r, "cardID")
	card, err := h.svc.UpdateCard(r.Context(), cardID, ordering.CardPatch{Title: req.Title, Color: req.Color}, ifMatch(r))
	if err != nil {
		fail(w, "update card", err)
		return
	}
	h.notify("card.updated", card.ID)
	writeJSON(w, http.StatusOK, card)
}

// DeleteCard handles DELETE /api/cards/{cardID}.
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardID")
	if err := h.svc.DeleteCard(r.Context(), cardID, ifMatch(r)); err != nil {
		fail(w, "delete card", err)
		return
	}
	h.notify("card.deleted", cardID)
	w.WriteHeader(http.StatusNoContent)
}

// ReorderCards handles PUT /api/cards/order.
func (h *Handler) ReorderCards(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if !decode(w, r, &req) {
		return
	}
	if len(req.Order) == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody("order is required"))
		return
	}
	state, err := h.svc.ReorderCards(r.Context(), req.Order, ifMatch(r))
	if err != nil {
		fail(w, "reorder cards", err)
		return
	}
	h.notify("cards.reordered", "")
	w.Header().Set("ETag", state.Revision)
	writeJSON(w, http.StatusOK, state)
}

// CreateLink handles POST /api/cards/{cardID}/links.
func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req CreateLinkRequest
	if !decode(w, r, &req) {
		return
	}
	cardID := chi.URLParam(r, "cardID")
	link, err := h.svc.AddLink(r.Context(), cardID, ordering.LinkTemplate{
		Title: req.Title,
		URL:   req.URL,
		Icon:  req.Icon,
		Color: req.Color,
	}, ifMatch(r))
	if err != nil {
		fail(w, "create link", err)
		return
	}
	h.notify("link.created", link.ID)
	writeJSON(w, http.StatusCreated, link)
}

// UpdateLink handles PATCH /api/cards/{cardID}/links/{linkID}.
func (h *Handler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	var req UpdateLinkRequest
	if !decode(w, r, &req) {
		return
	}
	cardID := chi.URLParam(r, "cardID")
	linkID := chi.URLParam(r, "linkID")
	link, err := h.svc.UpdateLink(r.Context(), cardID, linkID, ordering.LinkPatch{
		Title: req.Title,
		URL:   req.URL,
		Icon:  req.Icon,
		Color: req.Color,
	}, ifMatch(r))
	if err != nil {
		fail(w, "update link", err)
		return
	}
	h.notify("link.updated", link.ID)
	writeJSON(w, http.StatusOK, link)
}

// DeleteLink handles DELETE /api/cards/{cardID}/links/{linkID}.
func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardID")
	linkID := chi.URLParam(r, "linkID")
	if err := h.svc.DeleteLink(r.Context(), cardID, linkID, ifMatch(r)); err != nil {
		fail(w, "delete link", err)
		return
	}
	h.notify("link.deleted", linkID)
	w.WriteHeader(http.StatusNoContent)
}

// ReorderLinks handles PUT /api/cards/{cardID}/links/order.
func (h *Handler) ReorderLinks(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if !decode(w, r, &req) {
		return
	}
	if len(req.Order) == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody("order is required"))
		return
	}
	cardID := chi.URLParam(r, "cardID")
	if err := h.svc.ReorderLinks(r.Context(), cardID, req.Order, ifMatch(r)); err != nil {
		fail(w, "reorder links", err)
		return
	}
	h.notify("links.reordered", cardID)
	w.WriteHeader(http.StatusNoContent)
}

// MoveLink handles POST /api/links/move.
func (h *Handler) MoveLink(w http.ResponseWriter, r *http.Request) {
	var req MoveLinkRequest
	if !decode(w, r, &req) {
		return
	}
	if req.LinkID == "" || req.FromCardID == "" || req.ToCardID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("linkId, fromCardId and toCardId are required"))
		return
	}
	if req.FromCardID == req.ToCardID {
		writeJSON(w, http.StatusBadRequest, errorBody("same-card moves go through links/order"))
		return
	}
	if err := h.svc.MoveLink(r.Context(), req.LinkID, req.FromCardID, req.ToCardID, req.Index, ifMatch(r)); err != nil {
		fail(w, "move link", err)
		return
	}
	h.notify("link.moved", req.LinkID)
	w.WriteHeader(http.StatusNoContent)
}

// GetSettings handles GET /api/settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Settings(r.Context())
	if err != nil {
		fail(w, "get settings", err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// PutSettings handles PUT /api/settings.
func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if !decode(w, r, &settings) {
		return
	}
	saved, err := h.svc.SaveSettings(r.Context(), &settings)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	h.notify("settings.updated", "")
	writeJSON(w, http.StatusOK, saved)
}

// PutLayout handles PUT /api/settings/layout.
func (h *Handler) PutLayout(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if !decode(w, r, &req) {
		return
	}
	settings, err := h.svc.UpdateLayout(r.Context(), dashservice.LayoutPatch{
		CardWidth:       req.CardWidth,
		ContainerMargin: req.ContainerMargin,
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	h.notify("settings.updated", "")
	writeJSON(w, http.StatusOK, settings)
}

// Export handles GET /api/export.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	payload, err := h.svc.Export(r.Context())
	if err != nil {
		fail(w, "export", err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="tessera-backup.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// Import handles POST /api/import.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("unreadable body"))
		return
	}
	if err := h.svc.Import(r.Context(), payload); err != nil {
		fail(w, "import", err)
		return
	}
	h.notify("dashboard.imported", "")
	w.WriteHeader(http.StatusNoContent)
}

// Reset handles POST /api/reset.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		fail(w, "reset", err)
		return
	}
	h.notify("dashboard.reset", "")
	w.WriteHeader(http.StatusNoContent)
}

// GetPalette handles GET /api/palette.
func (h *Handler) GetPalette(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, PaletteResponse{
		Families: models.ColorFamilies,
		Shades:   models.ColorShades,
		Colors:   models.Palette(),
	})
}

// GetIcons handles GET /api/icons.
func (h *Handler) GetIcons(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, IconsResponse{Categories: models.IconCategories})
}
