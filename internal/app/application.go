package app

import (
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/kk-code-lab/proxsort/internal/proximity"
	"github.com/kk-code-lab/proxsort/internal/records"
)

// Application ranks one input stream.
type Application struct {
	opts   Options
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewApplication wires opts to the given streams.
func NewApplication(opts Options, stdin io.Reader, stdout, stderr io.Writer) *Application {
	return &Application{
		opts:   opts,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run reads every record, ranks them and writes the result. Nothing is
// written to stdout unless the whole input was read.
func (app *Application) Run() error {
	read := records.Read
	if app.opts.DecodeBOM {
		read = records.ReadDecoded
	}
	items, err := read(app.stdin, app.opts.ReadDelim)
	if err != nil {
		return err
	}
	debugf("read %d records (delim=%q decode=%v)", len(items), app.opts.ReadDelim, app.opts.DecodeBOM)

	ranker := proximity.NewRanker(app.opts.Reference)
	debugf("ranking against %q (%d segments)", ranker.Reference(), len(proximity.Segments(ranker.Reference())))
	dropped := 0
	for _, item := range items {
		e, ok := ranker.Add(item)
		if !ok {
			dropped++
			continue
		}
		debugf("scored %q score=%d index=%d", e.Path, e.Score, e.Index)
	}
	debugf("ranking %d entries, dropped %d empty records", ranker.Len(), dropped)

	entries := ranker.Drain()

	w := records.NewWriter(app.stdout, app.opts.PrintDelim)
	for _, e := range entries {
		if err := w.Write(e.Path); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if app.opts.Explain {
		return writeExplain(app.stderr, entries)
	}
	return nil
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := ParseArgs(args)
	switch {
	case errors.Is(err, ErrHelp):
		printUsage(stdout)
		return 0
	case err != nil:
		reportError(stderr, err)
		printUsage(stderr)
		return 1
	}

	if err := NewApplication(opts, stdin, stdout, stderr).Run(); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

func reportError(w io.Writer, err error) {
	prefix := terminalColor(w, color.FgRed, color.Bold)
	_, _ = prefix.Fprint(w, "proxsort:")
	_, _ = io.WriteString(w, " "+err.Error()+"\n")
}

// terminalColor returns a color that is only emitted when w is a terminal.
func terminalColor(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if records.IsTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
