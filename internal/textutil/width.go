package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 4

// DisplayWidth reports how many terminal columns text occupies.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// AlignColumn lays cells out as one left-aligned column: tabs become spaces
// on tabWidth stops and every cell is padded to the widest cell.
func AlignColumn(cells []string) []string {
	out := make([]string, len(cells))
	widest := 0
	for i, cell := range cells {
		out[i] = expandTabs(cell)
		if w := DisplayWidth(out[i]); w > widest {
			widest = w
		}
	}
	for i, cell := range out {
		if pad := widest - DisplayWidth(cell); pad > 0 {
			out[i] = cell + strings.Repeat(" ", pad)
		}
	}
	return out
}

func expandTabs(text string) string {
	if !strings.ContainsRune(text, '\t') {
		return text
	}
	var b strings.Builder
	col := 0
	for _, r := range text {
		if r != '\t' {
			b.WriteRune(r)
			col += max(runewidth.RuneWidth(r), 1)
			continue
		}
		spaces := tabWidth - col%tabWidth
		b.WriteString(strings.Repeat(" ", spaces))
		col += spaces
	}
	return b.String()
}
