package catalog

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// splitIcon peels a leading run of pictographic grapheme clusters off s. The
// run may contain spaces between symbols but must be followed by whitespace
// before the name. It returns "" and s when there is no such run.
func splitIcon(s string) (icon, rest string) {
	end := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		_, to := gr.Positions()
		switch {
		case isIconCluster(cluster):
			end = to
			continue
		case strings.TrimSpace(cluster) == "":
			continue
		}
		break
	}
	if end == 0 || end >= len(s) {
		return "", s
	}
	r := []rune(s[end:])
	if len(r) == 0 || !unicode.IsSpace(r[0]) {
		return "", s
	}
	return strings.TrimSpace(s[:end]), strings.TrimSpace(s[end:])
}

// isIconCluster reports whether a grapheme cluster reads as a symbol: an
// emoji (with any modifiers or ZWJ parts), dingbat, private-use glyph or a
// non-ASCII math/technical symbol.
func isIconCluster(cluster string) bool {
	for _, r := range cluster {
		switch {
		case unicode.Is(unicode.So, r), unicode.Is(unicode.Co, r):
			return true
		case unicode.Is(unicode.Sm, r) && r >= 0x2000:
			return true
		case r >= 0x1F000 && r <= 0x1FAFF:
			return true
		}
		// Only the base rune decides; modifiers follow it.
		return false
	}
	return false
}
