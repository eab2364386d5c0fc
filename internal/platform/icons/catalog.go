package icons

import "strings"

// Definition describes one catalogued icon.
type Definition struct {
	// Name is the Lucide icon name (e.g., "book-open").
	Name string
	// Label is the accessible text for the icon.
	Label string
	// Placeholder icons may stand in for untitled content.
	Placeholder bool
}

// DefaultName is rendered for names missing from the catalog.
const DefaultName = "sparkle"

var catalog = []Definition{
	{Name: "archive", Label: "Archive", Placeholder: true},
	{Name: "book-open", Label: "Book", Placeholder: true},
	{Name: "camera", Label: "Photograph", Placeholder: true},
	{Name: "feather", Label: "Manuscript", Placeholder: true},
	{Name: "file-text", Label: "Document", Placeholder: true},
	{Name: "image", Label: "Image", Placeholder: true},
	{Name: "landmark", Label: "Place", Placeholder: true},
	{Name: "map", Label: "Map", Placeholder: true},
	{Name: "music", Label: "Recording", Placeholder: true},
	{Name: "scroll", Label: "Record", Placeholder: true},
	{Name: DefaultName, Label: "Item"},
	{Name: "lock", Label: "Embargoed"},
	{Name: "shield-alert", Label: "Privacy flag"},
	{Name: "user-round", Label: "Contributor"},
	{Name: "trending-up", Label: "Trending"},
	{Name: "star", Label: "Featured"},
}

// Catalog returns a copy of the icon definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// PlaceholderNames returns the placeholder icon names in catalog order.
// Order is stable so hashed placeholder picks survive deploys.
func PlaceholderNames() []string {
	var names []string
	for _, def := range catalog {
		if def.Placeholder {
			names = append(names, def.Name)
		}
	}
	return names
}

// Lookup returns the definition for name.
func Lookup(name string) (Definition, bool) {
	name = strings.TrimSpace(name)
	for _, def := range catalog {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}
