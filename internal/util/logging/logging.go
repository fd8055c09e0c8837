package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/mattn/go-isatty"
)

// Level names accepted by ParseLevel.
const (
	LevelError = "error"
	LevelInfo  = "info"
	LevelDebug = "debug"
	LevelTrace = "trace"
)

// Format selects the log line encoding.
type Format string

const (
	// FormatAuto picks FormatText on a terminal and FormatJSON otherwise.
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options controls logger construction.
type Options struct {
	Level  string
	Format Format
	Output io.Writer
}

// ParseLevel maps a level name to a logr verbosity. Error-only logging is
// represented as -1, which suppresses every Info call.
func ParseLevel(level string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", LevelInfo:
		return 0, nil
	case LevelError:
		return -1, nil
	case LevelDebug:
		return 1, nil
	case LevelTrace:
		return 2, nil
	}
	return 0, fmt.Errorf("unknown log level %q: must be one of error, info, debug, trace", level)
}

// New returns a logger writing to opts.Output (stderr when nil).
func New(opts Options) (logr.Logger, error) {
	verbosity, err := ParseLevel(opts.Level)
	if err != nil {
		return logr.Discard(), err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	format := opts.Format
	if format == "" || format == FormatAuto {
		format = detectFormat(out)
	}

	fopts := funcr.Options{
		LogTimestamp: true,
		Verbosity:    verbosity,
	}

	switch format {
	case FormatJSON:
		return funcr.NewJSON(func(obj string) {
			_, _ = fmt.Fprintln(out, obj)
		}, fopts), nil
	case FormatText:
		return funcr.New(func(prefix, args string) {
			if prefix != "" {
				_, _ = fmt.Fprintf(out, "%s: %s\n", prefix, args)
				return
			}
			_, _ = fmt.Fprintln(out, args)
		}, fopts), nil
	}
	return logr.Discard(), fmt.Errorf("unknown log format %q", format)
}

// detectFormat uses text for terminals, JSON for everything else.
func detectFormat(out io.Writer) Format {
	f, ok := out.(*os.File)
	if !ok {
		return FormatJSON
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}
	return FormatJSON
}
