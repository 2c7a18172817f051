// Package migrate upgrades persisted documents and settings from any
// prior schema version to the current one.
//
// Upgrades run as an ordered chain of version checks so a document frozen
// at any historical version replays forward step by step; the chain is
// idempotent, and running it on a current document changes nothing.
package migrate

import (
	"strings"

	"github.com/tesseralabs/tessera/internal/models"
)

// legacyColors maps the pre-0.0.2 bare family names to their shaded form.
var legacyColors = map[string]string{
	"slate":   "slate-500",
	"gray":    "gray-500",
	"zinc":    "zinc-500",
	"neutral": "neutral-500",
	"stone":   "stone-500",
	"red":     "red-500",
	"orange":  "orange-500",
	"amber":   "amber-500",
	"yellow":  "yellow-500",
	"lime":    "lime-500",
	"green":   "green-500",
	"emerald": "emerald-500",
	"teal":    "teal-500",
	"cyan":    "cyan-500",
	"sky":     "sky-500",
	"blue":    "blue-500",
	"indigo":  "indigo-500",
	"violet":  "violet-500",
	"purple":  "purple-500",
	"fuchsia": "fuchsia-500",
	"pink":    "pink-500",
	"rose":    "rose-500",
}

func shadedColor(c string) string {
	if c == "" || strings.Contains(c, "-") {
		return c
	}
	if mapped, ok := legacyColors[c]; ok {
		return mapped
	}
	return models.DefaultColor
}

// Document upgrades doc in place and reports whether anything changed.
func Document(doc *models.Document) bool {
	changed := false

	// 0.0.1 (or unversioned) -> 0.0.2: colors gained a "<family>-<shade>"
	// format; bare family names map through the fixed table.
	if doc.Version == "" || doc.Version == "0.0.1" {
		for i := range doc.Cards {
			card := &doc.Cards[i]
			if next := shadedColor(card.Color); next != card.Color {
				card.Color = next
			}
			for j := range card.Links {
				link := &card.Links[j]
				if next := shadedColor(link.Color); next != link.Color {
					link.Color = next
				}
			}
		}
		changed = true
	}

	// 0.0.2 -> 0.0.3: layout settings moved into the settings document;
	// nothing stored in the data document changed beyond the version.
	if doc.Version == "" || doc.Version == "0.0.1" || doc.Version == "0.0.2" {
		changed = true
	}

	if changed {
		doc.Version = models.SchemaVersion
	}
	return changed
}

// Settings upgrades s in place and reports whether anything changed.
// Missing fields are back-filled from defaults; present fields are never
// overwritten.
func Settings(s *models.Settings) bool {
	if s.Version == models.SchemaVersion {
		return false
	}

	defaults := models.DefaultSettings()
	if s.Theme == "" {
		s.Theme = defaults.Theme
	}
	if s.GridColumns == "" {
		s.GridColumns = defaults.GridColumns
	}
	if s.CardWidth == "" {
		s.CardWidth = defaults.CardWidth
	}
	if s.ContainerMargin == "" {
		s.ContainerMargin = defaults.ContainerMargin
	}
	s.Version = models.SchemaVersion
	return true
}
