package records

import (
	"bytes"
	"fmt"
	"io"
)

const (
	// Newline separates records by default.
	Newline byte = '\n'
	// NUL separates records for -0/--read0 and --print0.
	NUL byte = 0x00
)

// Read consumes r to EOF and splits it into records on delim. Bytes are never
// altered; empty records are kept so callers decide what to drop. A trailing
// delimiter does not produce a final empty record.
func Read(r io.Reader, delim byte) ([]string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Split(content, delim), nil
}

// ReadDecoded is Read for text that may carry a byte order mark: the BOM is
// removed and UTF-16 input is converted to UTF-8 before splitting.
func ReadDecoded(r io.Reader, delim byte) ([]string, error) {
	return Read(utf8FromBOM(r), delim)
}

// Split cuts content on delim.
func Split(content []byte, delim byte) []string {
	if len(content) == 0 {
		return nil
	}
	content = bytes.TrimSuffix(content, []byte{delim})

	records := make([]string, 0, bytes.Count(content, []byte{delim})+1)
	for {
		idx := bytes.IndexByte(content, delim)
		if idx < 0 {
			records = append(records, string(content))
			return records
		}
		records = append(records, string(content[:idx]))
		content = content[idx+1:]
	}
}
