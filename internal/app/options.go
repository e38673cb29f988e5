package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kk-code-lab/proxsort/internal/records"
)

var (
	// ErrHelp is returned by ParseArgs when -h or --help is given.
	ErrHelp = errors.New("help requested")
	// ErrUsage wraps every command-line mistake.
	ErrUsage = errors.New("usage error")
)

// Options controls a single run.
type Options struct {
	Reference  string
	ReadDelim  byte
	PrintDelim byte
	Explain    bool
	DecodeBOM  bool
}

// DefaultOptions returns newline-delimited input and output.
func DefaultOptions() Options {
	return Options{
		ReadDelim:  records.Newline,
		PrintDelim: records.Newline,
	}
}

// ParseArgs parses command-line arguments, excluding the program name.
func ParseArgs(args []string) (Options, error) {
	opts := DefaultOptions()
	havePath := false

	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			return opts, ErrHelp
		case arg == "--print0":
			opts.PrintDelim = records.NUL
		case arg == "-0" || arg == "--read0":
			opts.ReadDelim = records.NUL
		case arg == "--explain":
			opts.Explain = true
		case arg == "--decode-bom":
			opts.DecodeBOM = true
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("%w: unrecognized argument %q", ErrUsage, arg)
		case havePath:
			return opts, fmt.Errorf("%w: unexpected argument %q", ErrUsage, arg)
		default:
			opts.Reference = arg
			havePath = true
		}
	}

	if opts.Reference == "" {
		return opts, fmt.Errorf("%w: missing path argument", ErrUsage)
	}
	return opts, nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `proxsort - Sort paths by proximity to a reference path

USAGE:
    proxsort [OPTIONS] <PATH>

Reads paths from standard input and writes them to standard output, closest
to PATH first. Paths sharing more leading segments with PATH rank higher;
paths with equal scores keep their input order. Empty lines are dropped.

OPTIONS:
    -h, --help      Show this help message and exit
    -0, --read0     Read NUL-separated input instead of newline-separated
        --print0    Separate output paths with NUL instead of newline
        --explain   Write each path's score to standard error
        --decode-bom
                    Treat input as text: drop a leading byte order mark and
                    convert UTF-16 input to UTF-8 before splitting. Without
                    this flag input bytes are never changed.

ENVIRONMENT:
    PROXSORT_DEBUG=1    Log debug information to standard error
`)
}
