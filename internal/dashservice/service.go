// Package dashservice coordinates the persistent store, the schema
// migrator, and the ordering engine. Every operation is one
// load-mutate-save round trip over a fresh snapshot; the store is the
// only suspension point and nothing is mutated speculatively.
package dashservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tesseralabs/tessera/internal/apperr"
	"github.com/tesseralabs/tessera/internal/checksum"
	"github.com/tesseralabs/tessera/internal/migrate"
	"github.com/tesseralabs/tessera/internal/models"
	"github.com/tesseralabs/tessera/internal/ordering"
	"github.com/tesseralabs/tessera/internal/store"
)

// Service owns the read-modify-persist cycle for the dashboard and
// settings documents.
type Service struct {
	store store.Provider
}

// NewService creates a dashboard service over the given store.
func NewService(st store.Provider) *Service {
	return &Service{store: st}
}

// DocumentState is a document snapshot plus its revision token, used for
// optimistic concurrency on mutating calls.
type DocumentState struct {
	Document *models.Document `json:"data"`
	Revision string           `json:"revision"`
}

// Dashboard loads the document, seeding defaults on first use and
// persisting any migration before returning.
func (s *Service) Dashboard(ctx context.Context) (*DocumentState, error) {
	doc, rev, err := s.loadDocument(ctx)
	if err != nil {
		return nil, err
	}
	return &DocumentState{Document: doc, Revision: rev}, nil
}

// Settings loads the settings document, seeding defaults on first use and
// persisting any migration before returning.
func (s *Service) Settings(ctx context.Context) (*models.Settings, error) {
	raw, ok, err := s.store.Load(ctx, store.KeySettings)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if !ok {
		settings := models.DefaultSettings()
		if err := s.saveSettings(ctx, settings); err != nil {
			return nil, err
		}
		return settings, nil
	}

	var settings models.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if migrate.Settings(&settings) {
		if err := s.saveSettings(ctx, &settings); err != nil {
			return nil, err
		}
	}
	return &settings, nil
}

// SaveSettings validates, migrates, and persists the full settings object.
func (s *Service) SaveSettings(ctx context.Context, settings *models.Settings) (*models.Settings, error) {
	if settings.Theme != "" && !models.ValidTheme(settings.Theme) {
		return nil, fmt.Errorf("unknown theme %q", settings.Theme)
	}
	if settings.CardWidth != "" && !models.ValidCardWidth(settings.CardWidth) {
		return nil, fmt.Errorf("unknown card width %q", settings.CardWidth)
	}
	if settings.ContainerMargin != "" && !models.ValidMargin(settings.ContainerMargin) {
		return nil, fmt.Errorf("unknown container margin %q", settings.ContainerMargin)
	}
	migrate.Settings(settings)
	if err := s.saveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// LayoutPatch updates the layout subset of settings, leaving the rest
// untouched.
type LayoutPatch struct {
	CardWidth       *string
	ContainerMargin *string
}

// UpdateLayout applies a layout patch on top of the current settings.
func (s *Service) UpdateLayout(ctx context.Context, patch LayoutPatch) (*models.Settings, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}
	if patch.CardWidth != nil {
		if !models.ValidCardWidth(*patch.CardWidth) {
			return nil, fmt.Errorf("unknown card width %q", *patch.CardWidth)
		}
		settings.CardWidth = *patch.CardWidth
	}
	if patch.ContainerMargin != nil {
		if !models.ValidMargin(*patch.ContainerMargin) {
			return nil, fmt.Errorf("unknown container margin %q", *patch.ContainerMargin)
		}
		settings.ContainerMargin = *patch.ContainerMargin
	}
	if err := s.saveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// AddCard appends a new card and persists.
func (s *Service) AddCard(ctx context.Context, tmpl ordering.CardTemplate, ifMatch string) (*models.Card, error) {
	var card models.Card
	_, err := s.mutate(ctx, ifMatch, func(doc *models.Document) error {
		card = *ordering.AddCard(doc, tmpl)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCard merges a patch into an existing card and persists.
func (s *Service) UpdateCard(ctx context.Context, cardID string, patch ordering.CardPatch, ifMatch string) (*models.Card, error) {
	var card models.Card
	_, err := s.mutate(ctx, ifMatch, func(doc *models.Document) error {
		updated := ordering.UpdateCard(doc, cardID, patch)
		if updated == nil {
			return apperr.ErrNotFound
		}
		card = *updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// DeleteCard removes a card and persists.
func (s *Service) DeleteCard(ctx context.Context, cardID, ifMatch string) error {
	_, err := s.mutate(ctx, ifMatch, func(doc *models.Document) error {
		if !ordering.DeleteCard(doc, cardID) {
			return apperr.ErrNotFound
		}
		return nil
	})
	return err
}

// ReorderCards applies a card id sequence and persists.
func (s *Service) ReorderCards(ctx context.Context, orderedIDs []string, ifMatch string) (*DocumentState, error) {
	return s.mutate(ctx, ifMatch, func(doc *models.Document) error {
		if !ordering.ReorderCards(doc, orderedIDs) {
			return apperr.ErrNotFound
		}
		return nil
	})
}

// AddLink appends a new link to a card and persists.
func (s *Service) AddLink(ctx context.Context, cardID string, tmpl ordering.LinkTemplate, ifMatch string) (*models.Link, error) {
	var link models.Link
	_, err := s.mutate(ctx, ifMatch, func(doc *models.Document) error {
		added := ordering.AddLink(doc, cardID, tmpl)
		if added == nil {
			return apperr.ErrNotFound
		}
		link = *added
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// UpdateLink merges a patch into an existing link and persists.
func (s *Service) UpdateLink(ctx context.Context, cardID, linkID string, patch ordering.LinkPatch, ifMatch string) (*models.Link, error) {
	var link models.Link
	_, err := s.mutate(ctx, ifMatch, func(doc *models.Document) error {
		updated := ordering.UpdateLink(doc, cardID, linkID, patch)
		if updated == nil {
			return apperr.ErrNotFound
		}
		link = *updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteLink removes a link from a card and persists.
func (s *Service) DeleteLink(ctx context.Context, cardID, linkID, ifMatch string) error {
	_, err := s.mutate(ctx, ifMatch, func(doc *models.Document) error {
		if !ordering.DeleteLink(doc, cardID, linkID) {
			return apperr.ErrNotFound
		}
		return nil
	})
	return err
}

// ReorderLinks applies a link id sequence within one card and persists.
func (s *Service) ReorderLinks(ctx context.Context, cardID string, orderedIDs []string, ifMatch string) error {
	_, err := s.mutate(ctx, ifMatch, func(doc *models.Document) error {
		if !ordering.ReorderLinks(doc, cardID, orderedIDs) {
			return apperr.ErrNotFound
		}
		return nil
	})
	return err
}

// MoveLink moves a link between two different cards and persists.
func (s *Service) MoveLink(ctx context.Context, linkID, fromCardID, toCardID string, index int, ifMatch string) error {
	if fromCardID == toCardID {
		return fmt.Errorf("same-card moves go through reorder")
	}
	_, err := s.mutate(ctx, ifMatch, func(doc *models.Document) error {
		if !ordering.MoveLink(doc, linkID, fromCardID, toCardID, index) {
			return apperr.ErrNotFound
		}
		return nil
	})
	return err
}

// ExportPayload is the backup interchange format.
type ExportPayload struct {
	Version   string           `json:"version"`
	Timestamp string           `json:"timestamp"`
	Data      *models.Document `json:"data"`
	Settings  *models.Settings `json:"settings"`
}

// Export renders the current document and settings as an indented backup
// payload.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	state, err := s.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}
	payload := ExportPayload{
		Version:   models.SchemaVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      state.Document,
		Settings:  settings,
	}
	return json.MarshalIndent(payload, "", "  ")
}

// Import validates a backup payload, migrates both documents, and
// persists them. The previously persisted state is untouched on any
// validation failure.
func (s *Service) Import(ctx context.Context, payload []byte) error {
	var in ExportPayload
	if err := json.Unmarshal(payload, &in); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidImport, err)
	}
	if in.Data == nil || in.Settings == nil {
		return fmt.Errorf("%w: data and settings are required", apperr.ErrInvalidImport)
	}

	migrate.Document(in.Data)
	ordering.Normalize(in.Data)
	migrate.Settings(in.Settings)

	if err := s.saveDocument(ctx, in.Data); err != nil {
		return err
	}
	return s.saveSettings(ctx, in.Settings)
}

// Reset clears the store and seeds defaults for both documents.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	if err := s.saveDocument(ctx, models.DefaultDocument()); err != nil {
		return err
	}
	return s.saveSettings(ctx, models.DefaultSettings())
}

// mutate runs one load-check-mutate-save cycle. fn sees a migrated,
// normalized snapshot; the save only happens when fn succeeds, so a failed
// operation never leaves a partial write behind.
func (s *Service) mutate(ctx context.Context, ifMatch string, fn func(doc *models.Document) error) (*DocumentState, error) {
	doc, rev, err := s.loadDocument(ctx)
	if err != nil {
		return nil, err
	}
	if ifMatch != "" && ifMatch != rev {
		return nil, apperr.ErrConflict
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	if err := s.saveDocument(ctx, doc); err != nil {
		return nil, err
	}
	next, err := checksum.Revision(doc)
	if err != nil {
		return nil, err
	}
	return &DocumentState{Document: doc, Revision: next}, nil
}

func (s *Service) loadDocument(ctx context.Context) (*models.Document, string, error) {
	raw, ok, err := s.store.Load(ctx, store.KeyDashboard)
	if err != nil {
		return nil, "", fmt.Errorf("load document: %w", err)
	}

	var doc *models.Document
	if !ok {
		doc = models.DefaultDocument()
		if err := s.saveDocument(ctx, doc); err != nil {
			return nil, "", err
		}
	} else {
		doc = &models.Document{}
		if err := json.Unmarshal(raw, doc); err != nil {
			return nil, "", fmt.Errorf("decode document: %w", err)
		}
		if migrate.Document(doc) {
			ordering.Normalize(doc)
			if err := s.saveDocument(ctx, doc); err != nil {
				return nil, "", err
			}
		} else {
			ordering.Normalize(doc)
		}
	}

	rev, err := checksum.Revision(doc)
	if err != nil {
		return nil, "", err
	}
	return doc, rev, nil
}

func (s *Service) saveDocument(ctx context.Context, doc *models.Document) error {
	doc.Version = models.SchemaVersion
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.store.Save(ctx, store.KeyDashboard, data); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (s *Service) saveSettings(ctx context.Context, settings *models.Settings) error {
	settings.Version = models.SchemaVersion
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.store.Save(ctx, store.KeySettings, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
