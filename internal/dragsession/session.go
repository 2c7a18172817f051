// Package dragsession sequences one interactive drag into position
// resolution and a single persisted mutation. The in-memory document is
// never touched while a drag is in flight: hovering only computes preview
// indices, a drop triggers exactly one service round trip, and a cancel
// triggers none.
package dragsession

import (
	"context"
	"errors"

	"github.com/tesseralabs/tessera/internal/dashservice"
	"github.com/tesseralabs/tessera/internal/layout"
)

var (
	ErrNoDrag     = errors.New("no drag in progress")
	ErrDragActive = errors.New("drag already in progress")
	ErrWrongKind  = errors.New("operation does not match dragged kind")
)

// Kind discriminates what is being dragged.
type Kind int

const (
	KindNone Kind = iota
	KindCard
	KindLink
)

// LinkBox pairs a displayed link id with its bounding box, in display
// order.
type LinkBox struct {
	ID string
	layout.Box
}

// Session coordinates a single drag interaction. It is not reentrant: one
// interaction must complete (drop or cancel) before the next begins, which
// also serializes the underlying load-modify-save cycles.
type Session struct {
	svc *dashservice.Service

	kind       Kind
	cardID     string // dragged card, or source card of a dragged link
	linkID     string
	previewIdx int
}

// New creates a drag session coordinator over the service.
func New(svc *dashservice.Service) *Session {
	return &Session{svc: svc}
}

// Active reports whether a drag is in flight.
func (s *Session) Active() bool {
	return s.kind != KindNone
}

// BeginCard starts dragging a card.
func (s *Session) BeginCard(cardID string) error {
	if s.Active() {
		return ErrDragActive
	}
	s.kind = KindCard
	s.cardID = cardID
	s.previewIdx = -1
	return nil
}

// BeginLink starts dragging a link out of its source card.
func (s *Session) BeginLink(linkID, sourceCardID string) error {
	if s.Active() {
		return ErrDragActive
	}
	s.kind = KindLink
	s.linkID = linkID
	s.cardID = sourceCardID
	s.previewIdx = -1
	return nil
}

// HoverLinks computes the preview insertion index for the dragged link
// over a card's displayed link boxes. Pure; nothing is persisted.
func (s *Session) HoverLinks(pointerY float64, displayed []LinkBox) (int, error) {
	if s.kind != KindLink {
		return 0, ErrWrongKind
	}
	s.previewIdx = layout.ResolveInsertionIndex(pointerY, boxesOf(displayed))
	return s.previewIdx, nil
}

// PreviewIndex returns the index computed by the latest hover, or -1.
func (s *Session) PreviewIndex() int {
	if !s.Active() {
		return -1
	}
	return s.previewIdx
}

// Cancel aborts the interaction. No engine operation has run and nothing
// is persisted.
func (s *Session) Cancel() {
	s.reset()
}

// DropCard completes a card drag: the dragged card is lifted out of the
// displayed sequence and re-inserted before targetIndex, and the new
// sequence is persisted in one write. Returns false when nothing changed.
func (s *Session) DropCard(ctx context.Context, displayedIDs []string, targetIndex int) (bool, error) {
	if s.kind != KindCard {
		return false, ErrWrongKind
	}
	defer s.reset()

	ids := make([]string, 0, len(displayedIDs)+1)
	for _, id := range displayedIDs {
		if id != s.cardID {
			ids = append(ids, id)
		}
	}
	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex > len(ids) {
		targetIndex = len(ids)
	}
	ids = append(ids, "")
	copy(ids[targetIndex+1:], ids[targetIndex:])
	ids[targetIndex] = s.cardID

	if _, err := s.svc.ReorderCards(ctx, ids, ""); err != nil {
		return false, err
	}
	return true, nil
}

// DropLink completes a link drag onto targetCardID. displayed is the
// target card's current link list in display order — including the dragged
// link when the target is also its source card. The insertion index is
// resolved from the pointer position; a same-card drop accounts for the
// slot freed by lifting the link out before it re-inserts, and a
// cross-card drop delegates to the engine's move (clamped post-removal).
// Returns false for a same-card drop that would not change anything.
func (s *Session) DropLink(ctx context.Context, targetCardID string, pointerY float64, displayed []LinkBox) (bool, error) {
	if s.kind != KindLink {
		return false, ErrWrongKind
	}
	defer s.reset()

	dropIndex := layout.ResolveInsertionIndex(pointerY, boxesOf(displayed))

	if targetCardID != s.cardID {
		if err := s.svc.MoveLink(ctx, s.linkID, s.cardID, targetCardID, dropIndex, ""); err != nil {
			return false, err
		}
		return true, nil
	}

	// Same card: rebuild the id sequence around the freed slot.
	ids := make([]string, len(displayed))
	draggedIndex := -1
	for i, lb := range displayed {
		ids[i] = lb.ID
		if lb.ID == s.linkID {
			draggedIndex = i
		}
	}
	if draggedIndex == -1 || draggedIndex == dropIndex {
		return false, nil
	}

	ids = append(ids[:draggedIndex], ids[draggedIndex+1:]...)
	insertAt := dropIndex
	if dropIndex > draggedIndex {
		insertAt = dropIndex - 1
	}
	ids = append(ids, "")
	copy(ids[insertAt+1:], ids[insertAt:])
	ids[insertAt] = s.linkID

	if err := s.svc.ReorderLinks(ctx, targetCardID, ids, ""); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) reset() {
	s.kind = KindNone
	s.cardID = ""
	s.linkID = ""
	s.previewIdx = -1
}

func boxesOf(displayed []LinkBox) []layout.Box {
	boxes := make([]layout.Box, len(displayed))
	for i, lb := range displayed {
		boxes[i] = lb.Box
	}
	return boxes
}
