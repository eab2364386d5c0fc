package viewmodel

import "hash/crc32"

// Pick returns palette[crc32(seed) mod len(palette)]. The IEEE checksum is
// stable across processes, so a seed always lands on the same entry for a
// given palette. An empty palette yields the zero value.
func Pick[T any](seed string, palette []T) T {
	var zero T
	if len(palette) == 0 {
		return zero
	}
	sum := crc32.ChecksumIEEE([]byte(seed))
	return palette[sum%uint32(len(palette))]
}

// PlaceholderColor picks the placeholder color for untitled content.
func PlaceholderColor(seed string) ColorToken {
	return Pick(seed, palette)
}

// PlaceholderIcon picks the placeholder icon for untitled content.
func PlaceholderIcon(seed string) string {
	return Pick(seed, iconPalette)
}
