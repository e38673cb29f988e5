package records

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// utf8FromBOM wraps r so a leading UTF-8 BOM is dropped and UTF-16 input with
// a BOM comes out as UTF-8. Input without a BOM passes through unchanged.
func utf8FromBOM(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}
