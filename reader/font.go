package reader

import "strings"

// boldMarkers are substrings of font names that denote a heavy weight
var boldMarkers = []string{"bold", "black", "heavy", "semibold", "demibold"}

// isBold checks the font name for bold indicators
func isBold(fontName string) bool {
	fontLower := strings.ToLower(fontName)
	for _, marker := range boldMarkers {
		if strings.Contains(fontLower, marker) {
			return true
		}
	}
	return false
}
