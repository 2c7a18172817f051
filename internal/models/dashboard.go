// Package models defines the domain types for Tessera.
package models

// SchemaVersion is the current persisted schema version. It is stamped on
// every Document and Settings write; the migrate package replays older
// documents forward to it.
const SchemaVersion = "0.0.3"

// Document is the versioned root of the persisted dashboard. Card order in
// the slice is not authoritative; each card's Order field is.
type Document struct {
	Version string `json:"version"`
	Cards   []Card `json:"cards"`
}

// Card is a titled, ordered group of links.
type Card struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
	Order int    `json:"order"`
	Links []Link `json:"links"`
}

// Link is a single orderable entry within a card. IDs are unique within a
// card's link set, not across the whole document.
type Link struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

// Card width steps.
const (
	CardWidthXS = "xs"
	CardWidthSM = "sm"
	CardWidthMD = "md"
	CardWidthLG = "lg"
	CardWidthXL = "xl"
)

// Container margin steps.
const (
	MarginNone   = "none"
	MarginNarrow = "narrow"
	MarginMedium = "medium"
	MarginWide   = "wide"
	MarginXWide  = "xwide"
)

// Themes.
const (
	ThemeDark         = "dark"
	ThemeLight        = "light"
	ThemeLightMinimal = "light-minimal"
)

// Settings is the versioned layout/appearance settings object, persisted
// separately from the Document.
type Settings struct {
	Version           string `json:"version"`
	UniformCardHeight bool   `json:"uniformCardHeight"`
	Theme             string `json:"theme"`
	GridColumns       string `json:"gridColumns"`
	CardWidth         string `json:"cardWidth"`
	ContainerMargin   string `json:"containerMargin"`
}

// CardByID returns a pointer into the document's card slice, or nil.
func (d *Document) CardByID(id string) *Card {
	for i := range d.Cards {
		if d.Cards[i].ID == id {
			return &d.Cards[i]
		}
	}
	return nil
}

// LinkByID returns a pointer into the card's link slice, or nil.
func (c *Card) LinkByID(id string) *Link {
	for i := range c.Links {
		if c.Links[i].ID == id {
			return &c.Links[i]
		}
	}
	return nil
}

// ValidCardWidth reports whether w is a known card width step.
func ValidCardWidth(w string) bool {
	switch w {
	case CardWidthXS, CardWidthSM, CardWidthMD, CardWidthLG, CardWidthXL:
		return true
	}
	return false
}

// ValidMargin reports whether m is a known container margin step.
func ValidMargin(m string) bool {
	switch m {
	case MarginNone, MarginNarrow, MarginMedium, MarginWide, MarginXWide:
		return true
	}
	return false
}

// ValidTheme reports whether t is a known theme identifier.
func ValidTheme(t string) bool {
	switch t {
	case ThemeDark, ThemeLight, ThemeLightMinimal:
		return true
	}
	return false
}
