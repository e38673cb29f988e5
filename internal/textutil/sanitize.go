package textutil

import "strings"

// Invisible runes that can reorder or hide parts of a path on screen. They are
// printed as ⟪NAME⟫ instead.
var invisibleRuneNames = map[rune]string{
	0x00AD: "SHY",
	0x061C: "ALM",
	0x180E: "MVS",
	0x200B: "ZWSP",
	0x200C: "ZWNJ",
	0x200D: "ZWJ",
	0x200E: "LRM",
	0x200F: "RLM",
	0x2028: "LSEP",
	0x2029: "PSEP",
	0x202A: "LRE",
	0x202B: "RLE",
	0x202C: "PDF",
	0x202D: "LRO",
	0x202E: "RLO",
	0x2060: "WJ",
	0x2066: "LRI",
	0x2067: "RLI",
	0x2068: "FSI",
	0x2069: "PDI",
	0x206A: "ISS",
	0x206B: "ASS",
	0x206C: "IAFS",
	0x206D: "AAFS",
	0x206E: "NADS",
	0x206F: "NODS",
	0xFEFF: "BOM",
}

// visibleRune returns what r should print as on a terminal, or ok=false when
// r can be printed as is. Tabs are kept.
func visibleRune(r rune) (string, bool) {
	if name, ok := invisibleRuneNames[r]; ok {
		return "⟪" + name + "⟫", true
	}
	switch {
	case r == '\t':
		return "", false
	case r == '\n' || r == '\r':
		return " ", true
	case r < 0x20 || r == 0x7f:
		return "?", true
	}
	return "", false
}

// VisiblePath rewrites a path read from input so printing it cannot emit
// escape sequences or hide characters. Paths that need no rewriting are
// returned unchanged without allocating.
func VisiblePath(path string) string {
	var b strings.Builder
	rewritten := false
	for i, r := range path {
		repl, ok := visibleRune(r)
		if !ok {
			if rewritten {
				b.WriteRune(r)
			}
			continue
		}
		if !rewritten {
			rewritten = true
			b.Grow(len(path) + 8)
			b.WriteString(path[:i])
		}
		b.WriteString(repl)
	}
	if !rewritten {
		return path
	}
	return b.String()
}
