// Package ordering implements the order-mutating transforms over a
// dashboard document. Every operation leaves each sibling set with dense
// zero-based order values (a permutation of 0..n-1), identifies records by
// id only, and treats unknown ids as a no-op rather than corrupting
// surrounding order.
package ordering

import (
	"sort"

	"github.com/google/uuid"

	"github.com/tesseralabs/tessera/internal/models"
)

// NewID returns a fresh identifier for a card or link.
func NewID() string {
	return uuid.NewString()
}

// ReorderCards rebuilds card order to match orderedIDs. Cards missing from
// the sequence keep their relative prior order and are appended after the
// named ones, so an incomplete caller sequence can never drop data. Returns
// false when orderedIDs names no existing card.
func ReorderCards(doc *models.Document, orderedIDs []string) bool {
	sortCardsByOrder(doc.Cards)

	next := make([]models.Card, 0, len(doc.Cards))
	taken := make(map[string]bool, len(orderedIDs))
	matched := false

	for _, id := range orderedIDs {
		if taken[id] {
			continue
		}
		if c := doc.CardByID(id); c != nil {
			next = append(next, *c)
			taken[id] = true
			matched = true
		}
	}
	if !matched {
		return false
	}
	for _, c := range doc.Cards {
		if !taken[c.ID] {
			next = append(next, c)
		}
	}

	doc.Cards = next
	renumberCards(doc.Cards)
	return true
}

// ReorderLinks rebuilds link order within one card, with the same
// incomplete-sequence tolerance as ReorderCards. Returns false when the
// card is missing or orderedIDs names no existing link.
func ReorderLinks(doc *models.Document, cardID string, orderedIDs []string) bool {
	card := doc.CardByID(cardID)
	if card == nil {
		return false
	}
	sortLinksByOrder(card.Links)

	next := make([]models.Link, 0, len(card.Links))
	taken := make(map[string]bool, len(orderedIDs))
	matched := false

	for _, id := range orderedIDs {
		if taken[id] {
			continue
		}
		if l := card.LinkByID(id); l != nil {
			next = append(next, *l)
			taken[id] = true
			matched = true
		}
	}
	if !matched {
		return false
	}
	for _, l := range card.Links {
		if !taken[l.ID] {
			next = append(next, l)
		}
	}

	card.Links = next
	renumberLinks(card.Links)
	return true
}

// MoveLink removes linkID from the source card and inserts it into the
// destination card at index, then renumbers both link sets independently.
// index is clamped to [0, len] of the destination measured after removal.
// Same-card moves are rejected; those route through ReorderLinks so the
// caller accounts for the slot freed by the removal. Returns false, with
// no mutation, when either card or the link is missing.
func MoveLink(doc *models.Document, linkID, fromCardID, toCardID string, index int) bool {
	if fromCardID == toCardID {
		return false
	}
	from := doc.CardByID(fromCardID)
	to := doc.CardByID(toCardID)
	if from == nil || to == nil {
		return false
	}

	sortLinksByOrder(from.Links)
	sortLinksByOrder(to.Links)

	pos := -1
	for i := range from.Links {
		if from.Links[i].ID == linkID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false
	}

	link := from.Links[pos]
	from.Links = append(from.Links[:pos], from.Links[pos+1:]...)

	if index < 0 {
		index = 0
	}
	if index > len(to.Links) {
		index = len(to.Links)
	}
	to.Links = append(to.Links, models.Link{})
	copy(to.Links[index+1:], to.Links[index:])
	to.Links[index] = link

	renumberLinks(from.Links)
	renumberLinks(to.Links)
	return true
}

// CardTemplate carries caller-supplied fields for a new card.
type CardTemplate struct {
	Title string
	Color string
}

// AddCard appends a new card and returns a pointer to it. Empty template
// fields fall back to defaults; order is the current card count.
func AddCard(doc *models.Document, tmpl CardTemplate) *models.Card {
	card := models.Card{
		ID:    NewID(),
		Title: tmpl.Title,
		Color: tmpl.Color,
		Order: len(doc.Cards),
		Links: []models.Link{},
	}
	if card.Title == "" {
		card.Title = "New Card"
	}
	if !models.ValidColor(card.Color) {
		card.Color = models.DefaultColor
	}
	doc.Cards = append(doc.Cards, card)
	return &doc.Cards[len(doc.Cards)-1]
}

// CardPatch is a field-level merge for an existing card. Nil fields are
// left untouched.
type CardPatch struct {
	Title *string
	Color *string
}

// UpdateCard merges patch into the card and returns it, or nil when the
// card is missing.
func UpdateCard(doc *models.Document, cardID string, patch CardPatch) *models.Card {
	card := doc.CardByID(cardID)
	if card == nil {
		return nil
	}
	if patch.Title != nil {
		card.Title = *patch.Title
	}
	if patch.Color != nil && models.ValidColor(*patch.Color) {
		card.Color = *patch.Color
	}
	return card
}

// DeleteCard removes a card and renumbers the survivors. Returns false
// when the card is missing.
func DeleteCard(doc *models.Document, cardID string) bool {
	for i := range doc.Cards {
		if doc.Cards[i].ID == cardID {
			doc.Cards = append(doc.Cards[:i], doc.Cards[i+1:]...)
			sortCardsByOrder(doc.Cards)
			renumberCards(doc.Cards)
			return true
		}
	}
	return false
}

// LinkTemplate carries caller-supplied fields for a new link.
type LinkTemplate struct {
	Title string
	URL   string
	Icon  string
	Color string
}

// AddLink appends a new link to the card and returns a pointer to it, or
// nil when the card is missing.
func AddLink(doc *models.Document, cardID string, tmpl LinkTemplate) *models.Link {
	card := doc.CardByID(cardID)
	if card == nil {
		return nil
	}
	link := models.Link{
		ID:    NewID(),
		Title: tmpl.Title,
		URL:   tmpl.URL,
		Icon:  tmpl.Icon,
		Color: tmpl.Color,
		Order: len(card.Links),
	}
	if link.Title == "" {
		link.Title = "New Link"
	}
	if link.URL == "" {
		link.URL = "https://example.com"
	}
	if !models.ValidIcon(link.Icon) {
		link.Icon = models.DefaultIcon
	}
	if !models.ValidColor(link.Color) {
		link.Color = models.DefaultColor
	}
	card.Links = append(card.Links, link)
	return &card.Links[len(card.Links)-1]
}

// LinkPatch is a field-level merge for an existing link.
type LinkPatch struct {
	Title *string
	URL   *string
	Icon  *string
	Color *string
}

// UpdateLink merges patch into the link and returns it, or nil when the
// card or link is missing.
func UpdateLink(doc *models.Document, cardID, linkID string, patch LinkPatch) *models.Link {
	card := doc.CardByID(cardID)
	if card == nil {
		return nil
	}
	link := card.LinkByID(linkID)
	if link == nil {
		return nil
	}
	if patch.Title != nil {
		link.Title = *patch.Title
	}
	if patch.URL != nil && *patch.URL != "" {
		link.URL = *patch.URL
	}
	if patch.Icon != nil && models.ValidIcon(*patch.Icon) {
		link.Icon = *patch.Icon
	}
	if patch.Color != nil && models.ValidColor(*patch.Color) {
		link.Color = *patch.Color
	}
	return link
}

// DeleteLink removes a link from the card and renumbers the survivors.
// Returns false when the card or link is missing.
func DeleteLink(doc *models.Document, cardID, linkID string) bool {
	card := doc.CardByID(cardID)
	if card == nil {
		return false
	}
	for i := range card.Links {
		if card.Links[i].ID == linkID {
			card.Links = append(card.Links[:i], card.Links[i+1:]...)
			sortLinksByOrder(card.Links)
			renumberLinks(card.Links)
			return true
		}
	}
	return false
}

// Normalize sorts every sibling set by its order field and renumbers
// densely. Documents from older versions or external writers may carry
// gapped or duplicated order values; this restores the invariant.
func Normalize(doc *models.Document) {
	sortCardsByOrder(doc.Cards)
	renumberCards(doc.Cards)
	for i := range doc.Cards {
		sortLinksByOrder(doc.Cards[i].Links)
		renumberLinks(doc.Cards[i].Links)
	}
}

func sortCardsByOrder(cards []models.Card) {
	sort.SliceStable(cards, func(i, j int) bool { return cards[i].Order < cards[j].Order })
}

func sortLinksByOrder(links []models.Link) {
	sort.SliceStable(links, func(i, j int) bool { return links[i].Order < links[j].Order })
}

func renumberCards(cards []models.Card) {
	for i := range cards {
		cards[i].Order = i
	}
}

func renumberLinks(links []models.Link) {
	for i := range links {
		links[i].Order = i
	}
}
