package models

// DefaultIcon is assigned to links created without an explicit icon.
const DefaultIcon = "link"

// IconCategory groups related icon identifiers for picker UIs.
type IconCategory struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Icons []string `json:"icons"`
}

// IconCategories is the fixed icon registry, in picker display order.
// Identifiers follow the heroicons naming scheme, plus a few custom marks.
var IconCategories = []IconCategory{
	{ID: "communication", Name: "Communication",
		Icons: []string{"mail", "chat-bubble-left-right", "phone", "video-camera", "users", "user", "user-group"}},
	{ID: "files", Name: "Files & Documents",
		Icons: []string{"folder", "document-text", "table", "photo", "musical-note"}},
	{ID: "technology", Name: "Technology",
		Icons: []string{"code-bracket", "code-bracket-square", "cpu-chip", "server", "globe-alt", "cloud"}},
	{ID: "business", Name: "Business & Finance",
		Icons: []string{"chart-bar", "currency-dollar", "building-office", "briefcase", "calendar-days", "clock"}},
	{ID: "social", Name: "Social & Media",
		Icons: []string{"users", "user-group", "shopping-cart", "shopping-bag", "tv", "play-circle"}},
	{ID: "navigation", Name: "Navigation",
		Icons: []string{"home", "link", "globe-alt", "magnifying-glass"}},
	{ID: "tools", Name: "Tools & Settings",
		Icons: []string{"wrench-screwdriver", "cog-6-tooth", "magnifying-glass", "puzzle-piece"}},
	{ID: "ai", Name: "AI & Innovation",
		Icons: []string{"brain", "rocket-launch", "sparkles", "cpu-chip"}},
	{ID: "custom", Name: "Custom Icons",
		Icons: []string{"salesforce"}},
	{ID: "general", Name: "General",
		Icons: []string{"star", "heart", "bookmark", "link"}},
}

var iconSet = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, cat := range IconCategories {
		for _, ic := range cat.Icons {
			m[ic] = struct{}{}
		}
	}
	return m
}()

// ValidIcon reports whether id is present in the icon registry.
func ValidIcon(id string) bool {
	_, ok := iconSet[id]
	return ok
}
