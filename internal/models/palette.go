package models

import "strings"

// DefaultColor is used when a color is unset or cannot be mapped.
const DefaultColor = "blue-500"

// ColorFamilies lists every palette family, in picker display order.
var ColorFamilies = []string{
	"slate", "gray", "zinc", "neutral", "stone",
	"red", "orange", "amber", "yellow", "lime",
	"green", "emerald", "teal", "cyan", "sky",
	"blue", "indigo", "violet", "purple", "fuchsia",
	"pink", "rose",
}

// ColorShades lists the shades available per family.
var ColorShades = []string{"300", "400", "500", "600", "700"}

var colorFamilySet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(ColorFamilies))
	for _, f := range ColorFamilies {
		m[f] = struct{}{}
	}
	return m
}()

// ValidColor reports whether c is a "<family>-<shade>" identifier from the
// fixed palette.
func ValidColor(c string) bool {
	family, shade, ok := strings.Cut(c, "-")
	if !ok {
		return false
	}
	if _, ok := colorFamilySet[family]; !ok {
		return false
	}
	for _, s := range ColorShades {
		if s == shade {
			return true
		}
	}
	return false
}

// Palette returns every valid color identifier, family-major.
func Palette() []string {
	out := make([]string, 0, len(ColorFamilies)*len(ColorShades))
	for _, f := range ColorFamilies {
		for _, s := range ColorShades {
			out = append(out, f+"-"+s)
		}
	}
	return out
}
