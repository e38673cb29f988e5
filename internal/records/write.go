package records

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/kk-code-lab/proxsort/internal/textutil"
	"github.com/mattn/go-isatty"
)

// Writer emits records terminated by a delimiter.
type Writer struct {
	bw       *bufio.Writer
	delim    byte
	sanitize bool
}

// NewWriter returns a Writer terminating every record with delim. When w is a
// terminal, control and formatting characters in records are made visible;
// pipes and files receive records verbatim.
func NewWriter(w io.Writer, delim byte) *Writer {
	return &Writer{
		bw:       bufio.NewWriter(w),
		delim:    delim,
		sanitize: IsTerminal(w),
	}
}

// Write emits one record followed by the delimiter.
func (w *Writer) Write(record string) error {
	if w.sanitize {
		record = textutil.VisiblePath(record)
	}
	if _, err := w.bw.WriteString(record); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if err := w.bw.WriteByte(w.delim); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Flush writes any buffered records to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
