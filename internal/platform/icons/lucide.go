package icons

const lucideSymbolPrefix = "lucide-"

// LucideSymbolID returns the sprite symbol ID for a catalogued icon name,
// falling back to DefaultName.
func LucideSymbolID(name string) string {
	if def, ok := Lookup(name); ok {
		return lucideSymbolPrefix + def.Name
	}
	return lucideSymbolPrefix + DefaultName
}
