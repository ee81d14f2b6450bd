package styles

import "strings"

const (
	fontCharWidth   = 0.55
	fontWidthRatio  = 0.85
	fontHeightRatio = 0.70
	fontLineHeight  = 1.3
	fontSizeBase    = 16.0
	fontSizeCap     = 20.0
	fontSizeMin     = 1.0

	textDefaultSize = 20.0

	familyRough = "Virgil, 'Comic Sans MS', cursive"
	familyClean = "Arial, 'Helvetica Neue', sans-serif"
	familyPro   = "'Inter', 'Segoe UI', sans-serif"
)

// FitFontSize returns the largest font size at which every line of label
// fits inside maxWidth x maxHeight: the longest line must stay within 85%
// of the width at an estimated 0.55 character advance, and the block of
// lines within 70% of the height at 1.3 line spacing. The result never
// exceeds base or the global cap and never drops to zero.
func FitFontSize(label string, maxWidth, maxHeight, base float64) float64 {
	if base <= 0 {
		base = fontSizeBase
	}
	limit := min(base, fontSizeCap)

	lines := strings.Split(label, "\n")
	longest := 0
	for _, ln := range lines {
		if n := len([]rune(ln)); n > longest {
			longest = n
		}
	}

	size := limit
	if longest > 0 {
		byWidth := (maxWidth * fontWidthRatio) / (float64(longest) * fontCharWidth)
		size = min(size, byWidth)
	}
	byHeight := (maxHeight * fontHeightRatio) / (float64(len(lines)) * fontLineHeight)
	size = min(size, byHeight)

	if size < fontSizeMin {
		return min(fontSizeMin, limit)
	}
	return size
}
