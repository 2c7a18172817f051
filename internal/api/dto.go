package api

import (
	"github.com/tesseralabs/tessera/internal/dashservice"
	"github.com/tesseralabs/tessera/internal/models"
)

// DashboardResponse is the document plus its revision token. Clients echo
// the revision back via If-Match for optimistic concurrency.
type DashboardResponse = dashservice.DocumentState

// CreateCardRequest is the request body for creating a card.
type CreateCardRequest struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

// UpdateCardRequest is the merge patch for an existing card.
type UpdateCardRequest struct {
	Title *string `json:"title"`
	Color *string `json:"color"`
}

// CreateLinkRequest is the request body for creating a link.
type CreateLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// UpdateLinkRequest is the merge patch for an existing link.
type UpdateLinkRequest struct {
	Title *string `json:"title"`
	URL   *string `json:"url"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

// ReorderRequest carries an id sequence for cards or links.
type ReorderRequest struct {
	Order []string `json:"order"`
}

// MoveLinkRequest moves a link between two different cards.
type MoveLinkRequest struct {
	LinkID     string `json:"linkId"`
	FromCardID string `json:"fromCardId"`
	ToCardID   string `json:"toCardId"`
	Index      int    `json:"index"`
}

// LayoutRequest patches the layout subset of settings.
type LayoutRequest struct {
	CardWidth       *string `json:"cardWidth"`
	ContainerMargin *string `json:"containerMargin"`
}

// PaletteResponse lists the color registry.
type PaletteResponse struct {
	Families []string `json:"families"`
	Shades   []string `json:"shades"`
	Colors   []string `json:"colors"`
}

// IconsResponse lists the icon registry grouped by category.
type IconsResponse struct {
	Categories []models.IconCategory `json:"categories"`
}
