package app

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/kk-code-lab/proxsort/internal/proximity"
	"github.com/kk-code-lab/proxsort/internal/textutil"
)

// writeExplain prints one "path  score" row per entry in rank order.
func writeExplain(w io.Writer, entries []proximity.Entry) error {
	scoreColor := terminalColor(w, color.FgCyan)

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = textutil.VisiblePath(e.Path)
	}

	for i, path := range textutil.AlignColumn(paths) {
		if _, err := fmt.Fprintf(w, "%s  %s\n", path, scoreColor.Sprintf("%4d", entries[i].Score)); err != nil {
			return fmt.Errorf("writing explain output: %w", err)
		}
	}
	return nil
}
